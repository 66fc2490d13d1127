package store

import "errors"

// Error Handling Guidelines:
// - Stores: return these sentinels (or fmt.Errorf("context: %w", err))
// - Services: translate to apperrors.* for the HTTP layer

var (
	// ErrNotFound indicates that a requested resource was not found.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict indicates a uniqueness or concurrent-write conflict.
	ErrConflict = errors.New("conflict")
)
