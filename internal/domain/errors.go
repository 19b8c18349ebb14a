// Package domain holds the error vocabulary shared by repositories, store
// bindings and callers.
package domain

import (
	"errors"
)

// Sentinel errors - match with errors.Is()
var (
	// ErrNotFound indicates the target document id does not exist. Read and
	// update paths translate it to a nil entity rather than surfacing it.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a caller-supplied input failed validation
	// before any write was issued.
	ErrValidation = errors.New("validation failed")

	// ErrConflict indicates a write collided with existing state.
	ErrConflict = errors.New("already exists")
)
