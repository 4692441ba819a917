// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the habit tracker API.

HabitHandler depends only on a store.HabitStore:

	habitHandler := handlers.NewHabitHandler(store.NewGormStore(gdb))

# Operations

	GET    /habits       → ListHabits  (200)
	POST   /habits       → CreateHabit (201)
	GET    /habits/{id}  → GetHabit    (200)
	PUT    /habits/{id}  → UpdateHabit (200)
	DELETE /habits/{id}  → DeleteHabit (200, {"success":true,"message":...})

# Validation

Checks run before the store is touched:

  - {id} must parse as a base-10 int64, else 400 "Invalid ID format"
  - name must be a non-empty JSON string, else 400 "Name is required"
  - a body that is not valid JSON is 400 "Invalid JSON"
  - completedDays, when a whole number, must not be negative

On update, completedDays is written only when it is a whole JSON
number. Strings, booleans, null and absent fields leave the stored
value alone.

# Errors

Store errors are mapped by store.KindOf: KindNotFound becomes 404
"Habit not found"; anything else is logged and returned as 500 with the
underlying error text in "details".
*/
package handlers
