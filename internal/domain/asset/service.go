package asset

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Repository provides persistence for marketing assets.
type Repository interface {
	Append(ctx context.Context, tenantID string, a *Asset) error
	List(ctx context.Context, tenantID string, opts ListOptions) ([]Asset, error)
	SetStatus(ctx context.Context, tenantID, id, status string) error
}

// Service handles marketing asset logic.
type Service struct {
	assets Repository
	logger *slog.Logger
}

// NewService creates a new asset service.
func NewService(assets Repository, logger *slog.Logger) *Service {
	return &Service{assets: assets, logger: logger}
}

// Append validates and stores a marketing asset. The asset keyset is
// immutable afterwards; only status can be toggled via SetStatus.
func (s *Service) Append(ctx context.Context, tenantID string, req AppendRequest) (*AppendResult, error) {
	if tenantID == "" {
		return nil, ErrInvalidInput
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if req.AssetType == "" {
		return nil, ErrMissingType
	}

	platform := req.Platform
	if platform == "" {
		platform = "universal"
	}

	createdAt := req.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	metadata := map[string]any{}
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	metadata["character_count"] = utf8.RuneCountInString(req.Content)
	metadata["word_count"] = len(strings.Fields(req.Content))
	metadata["has_hashtags"] = strings.Contains(req.Content, "#")

	validation := ValidateForPlatform(content, platform, req.AssetType)
	if !validation.Valid {
		metadata["validation_warnings"] = validation.Warnings
	}

	a := &Asset{
		ID:        newAssetID(req.AssetType, platform),
		TenantID:  tenantID,
		AssetType: req.AssetType,
		Platform:  platform,
		Content:   content,
		Status:    "active",
		Metadata:  metadata,
		CreatedAt: createdAt,
	}

	if err := s.assets.Append(ctx, tenantID, a); err != nil {
		return nil, fmt.Errorf("storing asset: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("stored marketing asset",
			"tenant_id", tenantID,
			"asset_id", a.ID,
			"asset_type", a.AssetType,
			"platform", a.Platform)
	}

	return &AppendResult{AssetID: a.ID, Validation: validation, Metadata: metadata}, nil
}

// List returns the tenant's assets, newest first, optionally filtered by
// asset type and platform.
func (s *Service) List(ctx context.Context, tenantID string, opts ListOptions) ([]Asset, error) {
	if tenantID == "" {
		return nil, ErrInvalidInput
	}
	return s.assets.List(ctx, tenantID, opts)
}

// SetStatus toggles the only mutable attribute of a stored asset.
func (s *Service) SetStatus(ctx context.Context, tenantID, id, status string) error {
	if tenantID == "" || id == "" || status == "" {
		return ErrInvalidInput
	}
	return s.assets.SetStatus(ctx, tenantID, id, status)
}

func newAssetID(assetType, platform string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%s_%s", assetType, platform, suffix)
}
