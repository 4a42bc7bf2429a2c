package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/yijing-api/internal/domain"
)

// ErrNilDependency is returned by constructors when a required collaborator
// is missing.
var ErrNilDependency = errors.New("required dependency is nil")

// ReadingServiceError wraps unexpected failures of the reading service with
// the operation that failed.
type ReadingServiceError struct {
	// Operation is the operation that failed (e.g. "cast_reading")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error
	Err error
}

// Error implements the error interface.
func (e *ReadingServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("reading service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("reading service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ReadingServiceError) Unwrap() error {
	return e.Err
}

// NewReadingServiceError wraps err for operation. Expected domain outcomes
// (an incomplete cast, a missing hexagram) are returned unchanged so callers
// can match them with errors.Is.
func NewReadingServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrInvalidLineCount) || errors.Is(err, domain.ErrHexagramNotFound) {
		return err
	}

	return &ReadingServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
