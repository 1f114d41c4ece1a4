package asset

import "errors"

var (
	// ErrEmptyContent indicates the asset has no content.
	ErrEmptyContent = errors.New("asset content cannot be empty")
	// ErrMissingType indicates the asset type was not provided.
	ErrMissingType = errors.New("asset type is required")
	// ErrInvalidInput indicates invalid input for asset operations.
	ErrInvalidInput = errors.New("invalid asset input")
	// ErrAssetNotFound indicates the asset doesn't exist for the tenant.
	ErrAssetNotFound = errors.New("asset not found")
)
