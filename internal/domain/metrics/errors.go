package metrics

import "errors"

var (
	// ErrInvalidInput indicates invalid input for metric operations.
	ErrInvalidInput = errors.New("invalid metric input")
	// ErrInvalidDate indicates a date that does not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date, use YYYY-MM-DD")
)
