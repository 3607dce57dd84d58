package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared across services; the API layer maps each one to a
// deterministic HTTP status in a single place.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("access denied")
	ErrEmailTaken         = errors.New("email already exists")
	ErrStoreEmailTaken    = errors.New("store email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrStoreNotFound      = errors.New("store not found")
	ErrInvalidOwner       = errors.New("invalid store owner")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// ValidationError carries one message per violated field constraint. It is
// always raised before any storage access is attempted.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// NewValidationError builds a ValidationError from the given messages.
func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
