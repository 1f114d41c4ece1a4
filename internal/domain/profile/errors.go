package profile

import "errors"

var (
	// ErrProfileNotFound indicates no profile exists for the tenant.
	ErrProfileNotFound = errors.New("business profile not found")
	// ErrInvalidInput indicates invalid input for profile operations.
	ErrInvalidInput = errors.New("invalid profile input")
	// ErrNoFields indicates a merge was requested with no fields.
	ErrNoFields = errors.New("no fields to merge")
)
