package store

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when no active activity has the requested id.
	ErrNotFound = errors.New("not found")
	// ErrCapacity is returned when the store is at its configured maximum.
	ErrCapacity = errors.New("store at capacity")
	// ErrInvalidIndex is returned for an out-of-range trash buffer index.
	ErrInvalidIndex = errors.New("invalid index")
	// ErrCorruptSnapshot is returned when a restore target is missing
	// required fields.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)

// ValidationError carries the per-field messages from a failed
// business-rule check. The store state is untouched when it is returned.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Reasons, "; "))
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
