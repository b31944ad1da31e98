package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinPriority = 1
	MaxPriority = 5
	MaxNameLen  = 80
)

// Task is an owned todo item. ID is the storage key and never leaves the
// backend; PublicID is the only identifier external callers ever see.
type Task struct {
	ID          int64     `db:"id"`
	PublicID    uuid.UUID `db:"public_id"`
	OwnerID     int64     `db:"user_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Deadline    time.Time `db:"deadline"`
	Priority    int       `db:"priority"`
	Completed   bool      `db:"completed"`
	CreatedAt   time.Time `db:"created_at"`
}

// Validate enforces the field invariants before persistence. The deadline
// comparison is calendar-based: today is a valid deadline, yesterday is not.
func (t *Task) Validate(today time.Time) error {
	if t.Name == "" {
		return ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if len(t.Name) > MaxNameLen {
		return ValidationError{Field: "name", Reason: "80 characters max"}
	}
	if t.Priority < MinPriority || t.Priority > MaxPriority {
		return ValidationError{Field: "priority", Reason: "must be between 1 and 5"}
	}
	if DateOf(t.Deadline).Before(DateOf(today)) {
		return ValidationError{Field: "deadline", Reason: "must not be in the past"}
	}
	return nil
}

// DateOf truncates a timestamp to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
