package mcp

import (
	"errors"
	"fmt"
	"testing"

	"github.com/smallbizpal/smallbizpal/internal/domain/asset"
	"github.com/smallbizpal/smallbizpal/internal/domain/interaction"
	"github.com/smallbizpal/smallbizpal/internal/domain/metrics"
	"github.com/smallbizpal/smallbizpal/internal/domain/profile"
	"github.com/smallbizpal/smallbizpal/internal/domain/report"
	"github.com/smallbizpal/smallbizpal/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestMapError_Codes(t *testing.T) {
	cases := []struct {
		err  error
		code string
	}{
		{profile.ErrNoFields, "NO_FIELDS"},
		{asset.ErrEmptyContent, "EMPTY_CONTENT"},
		{report.ErrEmptyContent, "EMPTY_CONTENT"},
		{asset.ErrMissingType, "MISSING_TYPE"},
		{interaction.ErrMissingType, "MISSING_TYPE"},
		{interaction.ErrMissingContact, "MISSING_CONTACT"},
		{metrics.ErrInvalidDate, "INVALID_DATE"},
		{report.ErrInvalidDate, "INVALID_DATE"},
		{repository.ErrNotFound, "NOT_FOUND"},
		{asset.ErrAssetNotFound, "NOT_FOUND"},
		{profile.ErrProfileNotFound, "NOT_FOUND"},
		{profile.ErrInvalidInput, "INVALID_INPUT"},
		{metrics.ErrInvalidInput, "INVALID_INPUT"},
	}

	for _, tc := range cases {
		mapped := mapError(tc.err)
		var apiErr *APIError
		require.ErrorAs(t, mapped, &apiErr, "error %v should map to APIError", tc.err)
		require.Equal(t, tc.code, apiErr.Code)
	}
}

func TestMapError_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("archiving asset: %w", repository.ErrNotFound)
	mapped := mapError(wrapped)

	var apiErr *APIError
	require.ErrorAs(t, mapped, &apiErr)
	require.Equal(t, "NOT_FOUND", apiErr.Code)
}

func TestMapError_UnknownPassthrough(t *testing.T) {
	unknown := errors.New("disk full")
	require.Equal(t, unknown, mapError(unknown))
	require.NoError(t, mapError(nil))
}
