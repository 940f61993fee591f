package job

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no record matches the given id for the
	// calling owner. A record owned by someone else reports the same error,
	// so existence never leaks across owners.
	ErrNotFound = errors.New("job not found")

	// ErrInvalidInput is returned for requests rejected before reaching the
	// store.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError reports per-field validation failures. It wraps
// ErrInvalidInput so callers can match either way.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
