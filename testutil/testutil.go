// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/danielhkuo/habit-tracker/cliparse"
	"github.com/danielhkuo/habit-tracker/db"
	"github.com/danielhkuo/habit-tracker/models"
	"github.com/danielhkuo/habit-tracker/store"
)

// TestDBURL is an in-memory SQLite database, private to each connection pool
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh in-memory database with the full schema.
// It is closed when the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return openTestDB(t, TestDBURL)
}

// SetupFileTestDB creates a database file in a temporary directory, opened
// the way the server opens its default database.
func SetupFileTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return openTestDB(t, filepath.Join(t.TempDir(), "habits.db"))
}

// SetupTestStore returns a GormStore over a fresh test database
func SetupTestStore(t *testing.T) (*store.GormStore, *gorm.DB) {
	t.Helper()
	gdb := SetupTestDB(t)
	return store.NewGormStore(gdb), gdb
}

func openTestDB(t *testing.T, dsn string) *gorm.DB {
	t.Helper()

	gdb, err := db.Open(context.Background(), db.TypeSQLite, dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close(gdb)
	})

	if err := db.CreateSchema(gdb); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return gdb
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  TestDBURL,
		DatabaseType: db.TypeSQLite,
	}
}

// CreateTestHabit inserts a habit directly and returns it.
// A zero createdAt lets the database assign the current time.
func CreateTestHabit(t *testing.T, gdb *gorm.DB, name string, completedDays int64, createdAt time.Time) models.Habit {
	t.Helper()

	habit := models.Habit{
		Name:          name,
		Description:   "test habit " + name,
		CompletedDays: completedDays,
		CreatedAt:     createdAt,
	}
	if err := gdb.Create(&habit).Error; err != nil {
		t.Fatalf("Failed to create test habit: %v", err)
	}

	return habit
}

// CountHabits returns the number of rows in the habits table
func CountHabits(t *testing.T, gdb *gorm.DB) int64 {
	t.Helper()

	var n int64
	if err := gdb.Model(&models.Habit{}).Count(&n).Error; err != nil {
		t.Fatalf("Failed to count habits: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request. A string body is sent verbatim,
// anything else is JSON encoded.
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewBufferString(b))
		req.Header.Set("Content-Type", "application/json")
	default:
		jsonBody, _ := json.Marshal(b)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertError checks the status and the error message of a JSON error response
func AssertError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	AssertStatus(t, w, status)

	var resp models.ErrorResponse
	AssertJSON(t, w, &resp)
	if resp.Error != message {
		t.Errorf("Expected error '%s', got '%s'", message, resp.Error)
	}
}
