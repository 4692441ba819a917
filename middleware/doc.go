// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /habits", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
response size, duration_ms). Each request gets an ID from X-Request-ID
or a fresh UUID; it is echoed in the response header and available to
handlers through RequestID(r.Context()).

# CORS Middleware

Enable cross-origin requests for the web UI:

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigin, mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS. Preflight requests are
answered directly.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Name is required")
	middleware.ErrorResponseWithDetails(w, http.StatusInternalServerError, "Failed to fetch habits", err)

Errors have the shape {"error": "...", "details": "..."}; details is
only present for internal errors.

Parse JSON request bodies (capped at MaxBodyBytes):

	var req models.CreateHabitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
