package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates caller input failed validation.
	ErrValidation = errors.New("validation failed")
	// ErrConflict indicates the operation is not allowed in the current state.
	ErrConflict = errors.New("conflict")
)
