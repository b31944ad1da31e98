package domain

import (
	"errors"
	"fmt"
)

// Request-terminal error conditions. Handlers map each to exactly one
// status code and message; nothing here is retried.
var (
	// ErrInvalidCredentials covers both unknown username and wrong
	// password so a caller cannot tell which field was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrTokenInvalid covers malformed, forged and expired tokens alike.
	ErrTokenInvalid = errors.New("invalid token")

	ErrDuplicateUsername = errors.New("username already taken")

	// ErrNotFound is returned both when a task does not exist and when it
	// belongs to someone else. A single sentinel with a single message
	// means probing random public ids reveals nothing.
	ErrNotFound = errors.New("task not found")

	// ErrForbiddenSelf rejects deleting an account other than the one the
	// caller is authenticated as.
	ErrForbiddenSelf = errors.New("you can only delete your own account")
)

// ValidationError reports a field that failed validation before persistence.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
