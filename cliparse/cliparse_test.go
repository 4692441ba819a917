// cliparse/cliparse_test.go
package cliparse

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGIN", "http://localhost:3000")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "postgres://test" {
		t.Errorf("expected postgres://test, got %s", cfg.DatabaseURL)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
	if cfg.AllowedOrigin != "http://localhost:3000" {
		t.Errorf("expected origin from env, got %s", cfg.AllowedOrigin)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "env.db")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-log-level", "warn"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:test.db" {
		t.Errorf("CLI should override env: expected file:test.db, got %s", cfg.DatabaseURL)
	}
	if cfg.LogLevel != slog.LevelWarn {
		t.Errorf("expected warn level, got %v", cfg.LogLevel)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ORIGIN", "")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != DefaultSQLiteURL {
		t.Errorf("expected %s, got %s", DefaultSQLiteURL, cfg.DatabaseURL)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"invalid port env", map[string]string{"PORT": "abc"}, nil},
		{"unknown database type", nil, []string{"-t", "mysql"}},
		{"postgres without url", map[string]string{"DATABASE_URL": ""}, []string{"-t", "postgres"}},
		{"bad log level", nil, []string{"-log-level", "loud"}},
		{"unknown flag", nil, []string{"-x"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("PORT", "")
			t.Setenv("DATABASE_TYPE", "")
			t.Setenv("LOG_LEVEL", "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(tc.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("PORT=7777\nDATABASE_URL=from-dotenv.db\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PORT", "")
	os.Unsetenv("PORT")
	t.Setenv("DATABASE_URL", "already-set.db")

	if err := LoadEnvFiles(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 7777 {
		t.Errorf("expected port from .env, got %d", cfg.Port)
	}
	// godotenv.Load does not override existing variables
	if cfg.DatabaseURL != "already-set.db" {
		t.Errorf("expected existing DATABASE_URL to win, got %s", cfg.DatabaseURL)
	}
}
