package vocab

import (
	"errors"
	"fmt"
)

// Storage error taxonomy. Callers match with errors.Is.
var (
	// ErrNotFound means a write referenced an id that does not exist.
	// Reads report an absent row as (nil, nil), never as ErrNotFound.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable means a backend I/O failure (disk, network, service).
	ErrUnavailable = errors.New("storage unavailable")

	// ErrValidation means malformed input rejected before any write.
	ErrValidation = errors.New("validation failed")
)

// Unavailable wraps a backend I/O failure, keeping the cause in the message.
func Unavailable(op string, err error) error {
	return fmt.Errorf("%s > %w: %w", op, ErrUnavailable, err)
}

// NotFoundError reports a write against a missing row.
func NotFoundError(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
}

// ValidationError rejects input before it reaches a backend.
func ValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
