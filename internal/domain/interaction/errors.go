package interaction

import "errors"

var (
	// ErrMissingType indicates the interaction type was not provided.
	ErrMissingType = errors.New("interaction type is required")
	// ErrInvalidInput indicates invalid input for interaction operations.
	ErrInvalidInput = errors.New("invalid interaction input")
	// ErrMissingContact indicates a meeting request without name or email.
	ErrMissingContact = errors.New("meeting request requires name and email")
)
