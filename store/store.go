// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/habit-tracker/models"
)

// HabitStore persists habits. Implementations must be safe for concurrent use.
type HabitStore interface {
	// List returns every habit, newest first
	List(ctx context.Context) ([]models.Habit, error)

	// Get returns ErrNotFound when no habit has the id
	Get(ctx context.Context, id int64) (*models.Habit, error)

	// Create assigns id and createdAt and starts completedDays at 0
	Create(ctx context.Context, name, description string) (*models.Habit, error)

	// Update applies the patch and returns the stored result, or ErrNotFound
	Update(ctx context.Context, id int64, patch models.HabitPatch) (*models.Habit, error)

	// Delete removes the habit permanently, or returns ErrNotFound
	Delete(ctx context.Context, id int64) error

	Ping(ctx context.Context) error
}

// Kind classifies store errors for callers.
type Kind int

const (
	KindNone Kind = iota
	KindNotFound
	KindFailure
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "record not found"
	case KindFailure:
		return "store failure"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ErrNotFound is returned when a requested habit doesn't exist
var ErrNotFound = errors.New("habit not found")

// Error wraps an unexpected failure of the underlying database.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func failure(op string, err error) error {
	return &Error{Op: op, Err: err}
}

// KindOf reports which kind of store error err is. Any non-nil error that is
// not ErrNotFound counts as a failure.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	default:
		return KindFailure
	}
}
