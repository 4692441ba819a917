// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects to the database, verifies the connection and wraps it in gorm.
// The returned *gorm.DB pools connections and is safe for concurrent use;
// call Close at shutdown.
func Open(ctx context.Context, dbType, dsn string) (*gorm.DB, error) {
	var (
		sqlDB     *sql.DB
		dialector gorm.Dialector
		err       error
	)

	switch dbType {
	case TypeSQLite:
		if err := ensureDirForSQLite(dsn); err != nil {
			return nil, err
		}
		sqlDB, err = sql.Open("sqlite", sqliteDSN(dsn))
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// SQLite allows one writer at a time, and every connection to
		// :memory: is its own database. Handlers queue on the pool instead.
		sqlDB.SetMaxOpenConns(1)
		dialector = sqlite.Dialector{DriverName: "sqlite", Conn: sqlDB}
	case TypePostgres:
		sqlDB, err = sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		dialector = postgres.New(postgres.Config{Conn: sqlDB})
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewLogger(slog.Default()),
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	return gdb, nil
}

// Close releases the underlying connection pool.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// NewLogger routes gorm diagnostics into slog. Missing records are an
// expected outcome for the API and are not logged.
func NewLogger(l *slog.Logger) logger.Interface {
	return logger.New(slogWriter{l: l}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

type slogWriter struct {
	l *slog.Logger
}

func (w slogWriter) Printf(format string, args ...interface{}) {
	w.l.Warn("gorm", "msg", strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// sqliteDSN adds a busy timeout and WAL journaling to file databases unless
// the DSN already sets them.
func sqliteDSN(dsn string) string {
	if isMemoryDSN(dsn) {
		return dsn
	}
	var pragmas []string
	if !strings.Contains(dsn, "busy_timeout") {
		pragmas = append(pragmas, "_pragma=busy_timeout(5000)")
	}
	if !strings.Contains(dsn, "journal_mode") {
		pragmas = append(pragmas, "_pragma=journal_mode(WAL)")
	}
	if len(pragmas) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(pragmas, "&")
}

func isMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// ensureDirForSQLite creates the parent dir of a SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	if isMemoryDSN(dsn) {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
