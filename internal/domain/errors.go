package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidReference marks a write that names a missing or mismatched
	// product, module, parent, version or requirement, or that breaks the
	// module hierarchy rules.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrConflict marks a write blocked by rows that depend on the target.
	ErrConflict = errors.New("conflict")

	// ErrValidation marks a request with missing or malformed fields.
	ErrValidation = errors.New("validation failed")
)

// InvalidReferencef returns an error wrapping ErrInvalidReference.
func InvalidReferencef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidReference, fmt.Sprintf(format, args...))
}

// Conflictf returns an error wrapping ErrConflict.
func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}
