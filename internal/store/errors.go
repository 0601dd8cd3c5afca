package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with errors.Is.
var (
	// ErrNotFound is returned when the addressed row does not exist
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken is returned when a write would duplicate a user's email
	ErrEmailTaken = errors.New("email already exists")
)
