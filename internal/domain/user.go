package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is the repository's translation of a unique-index
	// violation on username. It is the only repository failure the auth
	// service turns into a user-facing field error.
	ErrUsernameTaken = errors.New("username already taken")
)

type User struct {
	ID           uuid.UUID
	Username     string // unique, case-sensitive
	PasswordHash string // argon2id PHC string, never the plaintext
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Credentials is transient login/registration input. It is never persisted
// and must never appear in logs.
type Credentials struct {
	Username string
	Password string
}

// FieldError reports a user-correctable problem with a single input field.
// It travels in-band in a UserResponse, never as an error return.
type FieldError struct {
	Field   string
	Message string
}

// UserResponse is the result of register/login. Exactly one of Errors or
// User is set when the operation itself succeeded.
type UserResponse struct {
	Errors []FieldError
	User   *User
}
