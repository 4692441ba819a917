// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connecting

Open takes a database type and DSN and returns a pooled *gorm.DB:

	gdb, err := db.Open(ctx, db.TypeSQLite, "habits.db")
	gdb, err := db.Open(ctx, db.TypePostgres, "postgres://...")

SQLite uses the pure-Go modernc.org/sqlite driver; PostgreSQL uses
lib/pq. In both cases the *sql.DB is handed to the matching gorm
dialector. In-memory SQLite DSNs are limited to a single connection.

Close releases the pool:

	defer db.Close(gdb)

# Schema Creation

CreateSchema migrates the habits table:

	if err := db.CreateSchema(gdb); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times.

# Tables

	habits
	  id              integer primary key
	  name            text not null
	  description     text not null
	  completed_days  integer not null
	  created_at      timestamp, indexed

# Logging

gorm messages (slow queries, errors) go through NewLogger to slog at
warn level. Record-not-found is not logged.
*/
package db
