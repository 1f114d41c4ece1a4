package repository

import (
	"context"

	"github.com/smallbizpal/smallbizpal/internal/domain/asset"
	"github.com/smallbizpal/smallbizpal/internal/domain/interaction"
	"github.com/smallbizpal/smallbizpal/internal/domain/profile"
)

// ProfileRepository manages business profile persistence. Get reports a
// missing profile with profile.ErrProfileNotFound rather than ErrNotFound,
// keeping the profile package free of a dependency on this one.
type ProfileRepository interface {
	Get(ctx context.Context, tenantID string) (*profile.Profile, error)
	Save(ctx context.Context, tenantID string, p *profile.Profile) error
}

// AssetRepository manages the marketing asset log.
type AssetRepository interface {
	Append(ctx context.Context, tenantID string, a *asset.Asset) error
	List(ctx context.Context, tenantID string, opts asset.ListOptions) ([]asset.Asset, error)
	SetStatus(ctx context.Context, tenantID, id, status string) error
}

// InteractionRepository manages the customer interaction log.
type InteractionRepository interface {
	Append(ctx context.Context, tenantID string, in *interaction.Interaction) error
	List(ctx context.Context, tenantID string) ([]interaction.Interaction, error)
}

// LeadRepository manages the lead ledger.
type LeadRepository interface {
	Append(ctx context.Context, tenantID string, lead *interaction.Lead) error
	List(ctx context.Context, tenantID string) ([]interaction.Lead, error)
}

// MetricsRepository manages performance metric snapshots. Get returns an
// empty map for an absent metric; absence is not an error.
type MetricsRepository interface {
	Set(ctx context.Context, tenantID, name string, data map[string]any) error
	Get(ctx context.Context, tenantID, name string) (map[string]any, error)
	All(ctx context.Context, tenantID string) (map[string]map[string]any, error)
}

// TenantState is the full set of one tenant's persisted collections.
type TenantState struct {
	Profile      *profile.Profile          `json:"business_profile,omitempty"`
	Assets       []asset.Asset             `json:"marketing_assets"`
	Interactions []interaction.Interaction `json:"customer_interactions"`
	Leads        []interaction.Lead        `json:"leads"`
	Metrics      map[string]map[string]any `json:"performance_data"`
}

// TenantStateRepository loads, replaces, and destroys whole-tenant state.
// Save fully replaces the previous persisted state or fails outright; a
// partial write is never observable to a subsequent Load.
type TenantStateRepository interface {
	Load(ctx context.Context, tenantID string) (*TenantState, error)
	Save(ctx context.Context, tenantID string, state *TenantState) error
	Clear(ctx context.Context, tenantID string) error
}
