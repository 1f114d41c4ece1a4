package asset

import "time"

// Asset is one piece of generated marketing content. Assets are append-only:
// once stored, only Status may change.
type Asset struct {
	ID        string         `json:"id"`
	TenantID  string         `json:"tenant_id"`
	AssetType string         `json:"asset_type"`
	Platform  string         `json:"platform"`
	Content   string         `json:"content"`
	Status    string         `json:"status"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"created_at"`
}

// AppendRequest describes an asset to store.
type AppendRequest struct {
	Content   string
	AssetType string
	Platform  string
	Metadata  map[string]any
	CreatedAt time.Time // zero means now
}

// ListOptions filters asset listings.
type ListOptions struct {
	AssetType string
	Platform  string
}

// ValidationResult reports platform fit for a piece of content.
type ValidationResult struct {
	Valid          bool     `json:"valid"`
	Warnings       []string `json:"warnings"`
	CharacterCount int      `json:"character_count"`
	PlatformLimit  int      `json:"platform_limit"`
}

// AppendResult is returned after storing an asset.
type AppendResult struct {
	AssetID    string           `json:"asset_id"`
	Validation ValidationResult `json:"validation"`
	Metadata   map[string]any   `json:"metadata"`
}
