package mcp

import (
	"errors"
	"fmt"

	"github.com/smallbizpal/smallbizpal/internal/domain/asset"
	"github.com/smallbizpal/smallbizpal/internal/domain/interaction"
	"github.com/smallbizpal/smallbizpal/internal/domain/metrics"
	"github.com/smallbizpal/smallbizpal/internal/domain/profile"
	"github.com/smallbizpal/smallbizpal/internal/domain/report"
	"github.com/smallbizpal/smallbizpal/internal/repository"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// mapError maps domain errors to coded API errors. Unmapped errors pass
// through unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, profile.ErrNoFields):
		return &APIError{Code: "NO_FIELDS", Message: "no fields to merge", RecoveryHint: "Provide at least one field"}
	case errors.Is(err, asset.ErrEmptyContent):
		return &APIError{Code: "EMPTY_CONTENT", Message: "asset content cannot be empty"}
	case errors.Is(err, asset.ErrMissingType):
		return &APIError{Code: "MISSING_TYPE", Message: "asset type is required"}
	case errors.Is(err, interaction.ErrMissingType):
		return &APIError{Code: "MISSING_TYPE", Message: "interaction type is required"}
	case errors.Is(err, interaction.ErrMissingContact):
		return &APIError{Code: "MISSING_CONTACT", Message: "meeting request requires name and email"}
	case errors.Is(err, metrics.ErrInvalidDate), errors.Is(err, report.ErrInvalidDate):
		return &APIError{Code: "INVALID_DATE", Message: "invalid date", RecoveryHint: "Use YYYY-MM-DD format"}
	case errors.Is(err, report.ErrEmptyContent):
		return &APIError{Code: "EMPTY_CONTENT", Message: "report content cannot be empty"}
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, asset.ErrAssetNotFound), errors.Is(err, profile.ErrProfileNotFound):
		return &APIError{Code: "NOT_FOUND", Message: "not found", RecoveryHint: "Check ID spelling"}
	case errors.Is(err, profile.ErrInvalidInput),
		errors.Is(err, asset.ErrInvalidInput),
		errors.Is(err, interaction.ErrInvalidInput),
		errors.Is(err, metrics.ErrInvalidInput),
		errors.Is(err, report.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	default:
		return err
	}
}
