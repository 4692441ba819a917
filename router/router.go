// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/habit-tracker/cliparse"
	"github.com/danielhkuo/habit-tracker/handlers"
	"github.com/danielhkuo/habit-tracker/middleware"
	"github.com/danielhkuo/habit-tracker/store"
)

// Prefixes under which the habit routes are mounted. /api matches the
// paths the web UI calls.
var Prefixes = []string{"", "/api"}

func NewRouter(s store.HabitStore, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	habitHandler := handlers.NewHabitHandler(s)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.Ping(ctx); err != nil {
			slog.Error("health check failed", "error", err)
			http.Error(w, "Database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	for _, prefix := range Prefixes {
		mux.HandleFunc("GET "+prefix+"/habits", middleware.WithLogging(habitHandler.ListHabits))
		mux.HandleFunc("POST "+prefix+"/habits", middleware.WithLogging(habitHandler.CreateHabit))
		mux.HandleFunc("GET "+prefix+"/habits/{id}", middleware.WithLogging(habitHandler.GetHabit))
		mux.HandleFunc("PUT "+prefix+"/habits/{id}", middleware.WithLogging(habitHandler.UpdateHabit))
		mux.HandleFunc("DELETE "+prefix+"/habits/{id}", middleware.WithLogging(habitHandler.DeleteHabit))
	}

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("habit-tracker API v1"))
	})

	return middleware.CORS(cfg.AllowedOrigin, mux)
}
