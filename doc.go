// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the habit tracker API server.

Users create named habits, bump a completion counter (completedDays)
each day they keep the habit, reset it, edit it, and delete it. The web
UI talks to the JSON routes served here.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run .

PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3318 -t sqlite -d ./data/habits.db

A .env file in the working directory is loaded first.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): DSN (default for sqlite: habits.db)
  - LOG_LEVEL (-log-level): debug, info, warn, error
  - CORS_ORIGIN (-origin): allowed browser origin

# Architecture

  - handlers: HTTP request handlers for habits
  - store: HabitStore interface and its gorm implementation
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Habit entity, request/response types
  - db: Connection setup and schema migration
  - cliparse: Configuration parsing

The database pool is created once at startup, shared by all requests,
and closed on shutdown. SIGINT/SIGTERM drain in-flight requests for up
to ten seconds.
*/
package main
