// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the habit tracker API.

# Route Registration

NewRouter builds an http.ServeMux with all endpoints and wraps it in the
CORS middleware:

	handler := router.NewRouter(habitStore, cfg)

# Endpoints

Health:

	GET /health  - 200 OK, or 503 when the database does not answer

Habits (also mounted under /api):

	GET    /habits       - List habits, newest first
	POST   /habits       - Create habit
	GET    /habits/{id}  - Get habit
	PUT    /habits/{id}  - Update habit
	DELETE /habits/{id}  - Delete habit

Every habit route is wrapped with middleware.WithLogging. Unsupported
methods on a known path get 405 from the mux.
*/
package router
