package domain

import "time"

const MaxUsernameLen = 60

type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// ValidateUsername checks the registration constraints on a username.
func ValidateUsername(username string) error {
	if username == "" {
		return ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if len(username) > MaxUsernameLen {
		return ValidationError{Field: "username", Reason: "60 characters max"}
	}
	return nil
}
