package application

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned when sign-in credentials do not match a user.
	ErrInvalidCredentials = errors.New("application: invalid credentials")
	// ErrUnauthorized is returned when a session token is absent, unknown, or stale.
	ErrUnauthorized = errors.New("application: unauthorized")
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("application: not found")
	// ErrSessionExpired is returned when a session token is past its time-to-live.
	ErrSessionExpired = errors.New("application: session expired")
	// ErrSessionRevoked is returned when a session token was explicitly revoked.
	ErrSessionRevoked = errors.New("application: session revoked")
)

// ValidationError reports the first offending field detected during input
// validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if v == nil {
		return ""
	}
	if v.Field == "" {
		return v.Message
	}
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
