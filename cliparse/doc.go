// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: DSN; defaults to habits.db for sqlite, required for postgres
  - LogLevel: slog level (default: info)
  - AllowedOrigin: CORS origin (default: reflect the request Origin)

# CLI Flags

	-p          Server port
	-t          Database type
	-d          Database URL
	-log-level  Log level
	-origin     Allowed CORS origin

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_TYPE → -t
	DATABASE_URL  → -d
	LOG_LEVEL     → -log-level
	CORS_ORIGIN   → -origin

CLI flags take precedence over environment variables. LoadEnvFiles
reads a .env file into the environment first; it never overrides
variables that are already set.

# Example

	// In main.go
	_ = cliparse.LoadEnvFiles()
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	gdb, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(store.NewGormStore(gdb), cfg)
*/
package cliparse
