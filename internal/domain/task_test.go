package domain

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var today = time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)

func validTask() Task {
	return Task{
		Name:     "write report",
		Deadline: today.AddDate(0, 0, 7),
		Priority: 3,
	}
}

func TestTaskValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Task)
		field  string // empty means valid
	}{
		{"valid", func(*Task) {}, ""},
		{"deadline today", func(task *Task) { task.Deadline = today }, ""},
		{"deadline yesterday", func(task *Task) { task.Deadline = today.AddDate(0, 0, -1) }, "deadline"},
		{"priority too low", func(task *Task) { task.Priority = 0 }, "priority"},
		{"priority too high", func(task *Task) { task.Priority = 6 }, "priority"},
		{"priority bounds", func(task *Task) { task.Priority = 5 }, ""},
		{"empty name", func(task *Task) { task.Name = "" }, "name"},
		{"name too long", func(task *Task) { task.Name = strings.Repeat("a", 81) }, "name"},
		{"name at limit", func(task *Task) { task.Name = strings.Repeat("a", 80) }, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := validTask()
			tc.mutate(&task)

			err := task.Validate(today)
			if tc.field == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, verr.Field)
			}
		})
	}
}

func TestTaskDeadlineIsCalendarBased(t *testing.T) {
	// A deadline at midnight today must pass even when "now" is later in
	// the same day.
	task := validTask()
	task.Deadline = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if err := task.Validate(today); err != nil {
		t.Fatalf("deadline today must be valid: %v", err)
	}
}

func TestValidateUsername(t *testing.T) {
	if err := ValidateUsername("alice"); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	if err := ValidateUsername(strings.Repeat("a", 60)); err != nil {
		t.Fatalf("60 chars must be valid: %v", err)
	}

	var verr ValidationError
	if err := ValidateUsername(""); !errors.As(err, &verr) || verr.Field != "username" {
		t.Fatalf("expected username ValidationError, got %v", err)
	}
	if err := ValidateUsername(strings.Repeat("a", 61)); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for 61 chars, got %v", err)
	}
}
