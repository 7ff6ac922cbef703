package services

import "errors"

// Error taxonomy for plan store operations. Persistence failures are not
// represented here: the override store degrades to "no override" and only
// logs them.
var (
	// ErrValidation rejects malformed input before any I/O happens.
	ErrValidation = errors.New("invalid request")

	// ErrNotFound reports that a plan or supplement no longer exists.
	ErrNotFound = errors.New("not found")

	// ErrRemote wraps any plan service failure. Callers see it only after
	// local state has been rolled back to the pre-operation snapshot.
	ErrRemote = errors.New("plan service unavailable")
)
