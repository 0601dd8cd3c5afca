package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike, so callers cannot tell which one it was
	ErrInvalidCredentials = errors.New("invalid login attempt")

	// ErrNotFound is returned when an administrative operation addresses a
	// leave request or employee that does not exist
	ErrNotFound = errors.New("not found")
)

// ValidationError reports bad input for a single field. The request is not applied.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
