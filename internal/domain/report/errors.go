package report

import "errors"

var (
	// ErrEmptyContent indicates the report text is empty.
	ErrEmptyContent = errors.New("report content cannot be empty")
	// ErrInvalidDate indicates a date that does not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid report date, use YYYY-MM-DD")
	// ErrInvalidInput indicates invalid input for report operations.
	ErrInvalidInput = errors.New("invalid report input")
)
