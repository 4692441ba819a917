// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/danielhkuo/habit-tracker/db"
	"github.com/danielhkuo/habit-tracker/models"
	"github.com/danielhkuo/habit-tracker/store"
	"github.com/danielhkuo/habit-tracker/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	s, _ := testutil.SetupTestStore(t)
	return NewRouter(s, testutil.GetTestConfig())
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestHealthEndpoint_DatabaseDown(t *testing.T) {
	gdb := testutil.SetupTestDB(t)
	mux := NewRouter(store.NewGormStore(gdb), testutil.GetTestConfig())
	db.Close(gdb)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", w.Code)
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	expected := "habit-tracker API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/habits"},
		{"POST", "/habits"},
		{"GET", "/habits/1"},
		{"PUT", "/habits/1"},
		{"DELETE", "/habits/1"},
		{"GET", "/api/habits"},
		{"POST", "/api/habits"},
		{"GET", "/api/habits/1"},
		{"PUT", "/api/habits/1"},
		{"DELETE", "/api/habits/1"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			// 400 and 404 are valid handler answers here
			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/habits"},
		{"PUT", "/habits"},
		{"POST", "/habits/1"},
		{"PATCH", "/habits/1"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestUnknownPath(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/habits/1/streak", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestPreflight(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("OPTIONS", "/habits/1", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for preflight, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Error("Expected CORS headers on preflight")
	}
}

// TestHabitLifecycle walks one habit through create, read, update, delete
func TestHabitLifecycle(t *testing.T) {
	mux := newTestRouter(t)

	serve := func(method, path string, body interface{}) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest(method, path, body, nil))
		return w
	}

	// Create
	w := serve("POST", "/habits", map[string]any{"name": "Exercise", "description": "30 min"})
	testutil.AssertStatus(t, w, http.StatusCreated)
	var created models.Habit
	testutil.AssertJSON(t, w, &created)
	path := "/habits/" + strconv.FormatInt(created.ID, 10)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID on habit responses")
	}

	// Read back
	w = serve("GET", path, nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var got models.Habit
	testutil.AssertJSON(t, w, &got)
	if got.ID != created.ID || got.Name != "Exercise" || got.Description != "30 min" || got.CompletedDays != 0 {
		t.Errorf("Round trip mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("createdAt mismatch: %v vs %v", got.CreatedAt, created.CreatedAt)
	}

	// Increment the streak
	w = serve("PUT", path, map[string]any{"name": "Exercise", "description": "30 min", "completedDays": 1})
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &got)
	if got.CompletedDays != 1 {
		t.Errorf("Expected completedDays 1, got %d", got.CompletedDays)
	}

	// Same habit through the /api prefix
	w = serve("GET", "/api"+path, nil)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Listed
	w = serve("GET", "/habits", nil)
	var habits []models.Habit
	testutil.AssertJSON(t, w, &habits)
	if len(habits) != 1 || habits[0].ID != created.ID {
		t.Errorf("Expected the habit in the list, got %+v", habits)
	}

	// Delete twice
	w = serve("DELETE", path, nil)
	testutil.AssertStatus(t, w, http.StatusOK)

	w = serve("DELETE", path, nil)
	testutil.AssertError(t, w, http.StatusNotFound, models.MsgHabitNotFound)

	w = serve("GET", path, nil)
	testutil.AssertError(t, w, http.StatusNotFound, models.MsgHabitNotFound)
}
