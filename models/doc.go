// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Habit: id, name, description, completedDays, createdAt
  - HabitPatch: validated update applied by the store

Habit doubles as the gorm model for the habits table.

# Request Types

Types for parsing incoming JSON:

  - CreateHabitRequest: name, description
  - UpdateHabitRequest: name, description, completedDays

Name and Description are pointers so that an absent field can be told
apart from an empty one. CompletedDays uses OptionalInt: anything other
than a whole JSON number leaves the stored counter untouched.

# Response Types

  - DeleteHabitResponse: success, message
  - ErrorResponse: error, details

# Messages

Client-facing messages are constants (MsgInvalidID, MsgNameRequired,
MsgHabitNotFound, ...) so handlers and tests agree on them.
*/
package models
