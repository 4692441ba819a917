package models

import (
	"bytes"
	"encoding/json"
	"math"
	"time"
)

// Messages returned to API clients
const (
	MsgInvalidID      = "Invalid ID format"
	MsgNameRequired   = "Name is required"
	MsgHabitNotFound  = "Habit not found"
	MsgInvalidJSON    = "Invalid JSON"
	MsgNegativeDays   = "completedDays must be non-negative"
	MsgHabitDeleted   = "Habit deleted successfully"
	MsgFetchFailed    = "Failed to fetch habits"
	MsgFetchOneFailed = "Failed to fetch habit"
	MsgCreateFailed   = "Failed to create habit"
	MsgUpdateFailed   = "Failed to update habit"
	MsgDeleteFailed   = "Failed to delete habit"
)

// Domain types

// Habit is the only persisted entity. ID and CreatedAt are assigned by the
// database and never change afterwards.
type Habit struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `gorm:"not null" json:"description"`
	CompletedDays int64     `gorm:"not null" json:"completedDays"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (Habit) TableName() string {
	return "habits"
}

// HabitPatch is the validated form of an update request.
// Name and Description are always written; CompletedDays only when Set.
type HabitPatch struct {
	Name          string
	Description   string
	CompletedDays OptionalInt
}

// OptionalInt holds an integer that may be absent from a JSON document.
// Any JSON value that is not an integral number (strings, booleans, null,
// objects, fractions) decodes to the unset state instead of failing.
type OptionalInt struct {
	Value int64
	Set   bool
}

// Some returns a set OptionalInt
func Some(v int64) OptionalInt {
	return OptionalInt{Value: v, Set: true}
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	*o = OptionalInt{}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	n, ok := v.(json.Number)
	if !ok {
		return nil
	}

	if i, err := n.Int64(); err == nil {
		*o = Some(i)
		return nil
	}
	// 5.0 and 1e2 are still whole numbers
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return nil
	}
	*o = Some(int64(f))
	return nil
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Request types

type CreateHabitRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type UpdateHabitRequest struct {
	Name          *string     `json:"name"`
	Description   *string     `json:"description"`
	CompletedDays OptionalInt `json:"completedDays"`
}

// Response types

type DeleteHabitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
