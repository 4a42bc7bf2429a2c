// Package domain defines the core entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidLineCount is returned when lines do not form a complete cast:
	// exactly six lines with positions 1 through 6.
	ErrInvalidLineCount = errors.New("cast must contain six lines with positions 1 to 6")

	// ErrHexagramNotFound is returned when no reference record exists for a
	// hexagram number. It is a recoverable outcome, not a fatal one.
	ErrHexagramNotFound = errors.New("hexagram not found")
)
