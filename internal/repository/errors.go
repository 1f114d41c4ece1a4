package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist.
	// Callers must be able to tell "tenant has no data yet" apart from a
	// storage failure.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
)
