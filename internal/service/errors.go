// Package service holds the business logic between the HTTP layer and
// the stores
package service

import "errors"

// The closed set of expected outcomes. Handlers map these onto HTTP
// statuses, anything else is an internal error that gets logged and
// reported as a 500.
var (
	// ErrConflict means a username or email is already registered.
	ErrConflict = errors.New("already registered")

	// ErrUnauthorized covers absent users, wrong passwords and logins
	// before email verification. Callers get no hint which one it was.
	ErrUnauthorized = errors.New("incorrect login or password")

	// ErrNotFound means the contact doesn't exist under that owner.
	ErrNotFound = errors.New("contact not found")

	// ErrDuplicate means another contact already uses that email or
	// phone number, regardless of owner.
	ErrDuplicate = errors.New("contact with this email or phone number already exists")
)
