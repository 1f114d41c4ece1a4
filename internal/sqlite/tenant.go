package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/smallbizpal/smallbizpal/internal/domain/asset"
	"github.com/smallbizpal/smallbizpal/internal/domain/interaction"
	"github.com/smallbizpal/smallbizpal/internal/domain/profile"
	"github.com/smallbizpal/smallbizpal/internal/repository"
)

// TenantStateRepository implements repository.TenantStateRepository for
// SQLite. Save and Clear run in one transaction, so a subsequent Load sees
// either the full previous state or the full new one, never a mix.
type TenantStateRepository struct {
	db           *DB
	profiles     *ProfileRepository
	assets       *AssetRepository
	interactions *InteractionRepository
	leads        *LeadRepository
	metrics      *MetricsRepository
}

// NewTenantStateRepository creates a new TenantStateRepository.
func NewTenantStateRepository(db *DB) *TenantStateRepository {
	return &TenantStateRepository{
		db:           db,
		profiles:     NewProfileRepository(db),
		assets:       NewAssetRepository(db),
		interactions: NewInteractionRepository(db),
		leads:        NewLeadRepository(db),
		metrics:      NewMetricsRepository(db),
	}
}

// Load materializes the tenant's full state. Together with Save it gives
// operators a whole-tenant snapshot and restore path alongside Clear; the
// tools only expose Clear. A tenant with no data yields an empty state,
// not an error.
func (r *TenantStateRepository) Load(ctx context.Context, tenantID string) (*repository.TenantState, error) {
	state := &repository.TenantState{
		Assets:       []asset.Asset{},
		Interactions: []interaction.Interaction{},
		Leads:        []interaction.Lead{},
		Metrics:      map[string]map[string]any{},
	}

	p, err := r.profiles.Get(ctx, tenantID)
	if err != nil && !errors.Is(err, profile.ErrProfileNotFound) {
		return nil, err
	}
	state.Profile = p

	if state.Assets, err = r.listAssetsAscending(ctx, tenantID); err != nil {
		return nil, err
	}
	if state.Interactions, err = r.interactions.List(ctx, tenantID); err != nil {
		return nil, err
	}
	if state.Interactions == nil {
		state.Interactions = []interaction.Interaction{}
	}
	if state.Leads, err = r.leads.List(ctx, tenantID); err != nil {
		return nil, err
	}
	if state.Leads == nil {
		state.Leads = []interaction.Lead{}
	}
	if state.Metrics, err = r.metrics.All(ctx, tenantID); err != nil {
		return nil, err
	}
	return state, nil
}

// Save fully replaces the tenant's persisted state. It is the restore half
// of the Load snapshot contract; a Save followed by Load round-trips.
func (r *TenantStateRepository) Save(ctx context.Context, tenantID string, state *repository.TenantState) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin save: %w", err)
	}
	defer tx.Rollback()

	if err := clearTenantRows(ctx, tx, tenantID); err != nil {
		return err
	}

	if state.Profile != nil {
		fields, err := encodeJSONMap(state.Profile.Fields)
		if err != nil {
			return fmt.Errorf("failed to encode profile fields: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO profiles (tenant_id, fields, created_at, updated_at, update_count) VALUES (?, ?, ?, ?, ?)`,
			tenantID, fields, state.Profile.CreatedAt, state.Profile.UpdatedAt, state.Profile.UpdateCount); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
	}

	for i := range state.Assets {
		a := &state.Assets[i]
		metadata, err := encodeJSONMap(a.Metadata)
		if err != nil {
			return fmt.Errorf("failed to encode asset metadata: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO assets (id, tenant_id, asset_type, platform, content, status, metadata, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, tenantID, a.AssetType, a.Platform, a.Content, a.Status, metadata, a.CreatedAt); err != nil {
			return fmt.Errorf("failed to save asset: %w", err)
		}
	}

	for i := range state.Interactions {
		in := &state.Interactions[i]
		data, err := encodeJSONMap(in.Data)
		if err != nil {
			return fmt.Errorf("failed to encode interaction data: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO interactions (tenant_id, type, data, created_at) VALUES (?, ?, ?, ?)`,
			tenantID, in.Type, data, in.CreatedAt); err != nil {
			return fmt.Errorf("failed to save interaction: %w", err)
		}
	}

	for i := range state.Leads {
		lead := &state.Leads[i]
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO leads (tenant_id, name, email, topic, preferred_time, status, source, timestamp, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			tenantID, lead.Name, lead.Email, lead.Topic, lead.PreferredTime,
			lead.Status, lead.Source, lead.Timestamp, lead.CreatedAt); err != nil {
			return fmt.Errorf("failed to save lead: %w", err)
		}
	}

	now := time.Now().UTC()
	for name, data := range state.Metrics {
		encoded, err := encodeJSONMap(data)
		if err != nil {
			return fmt.Errorf("failed to encode metric data: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO metrics (tenant_id, name, data, updated_at) VALUES (?, ?, ?, ?)`,
			tenantID, name, encoded, now); err != nil {
			return fmt.Errorf("failed to save metric: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save: %w", err)
	}
	return nil
}

// Clear destroys all collections for one tenant.
func (r *TenantStateRepository) Clear(ctx context.Context, tenantID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin clear: %w", err)
	}
	defer tx.Rollback()

	if err := clearTenantRows(ctx, tx, tenantID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit clear: %w", err)
	}
	return nil
}

func clearTenantRows(ctx context.Context, tx *sql.Tx, tenantID string) error {
	for _, table := range []string{"profiles", "assets", "interactions", "leads", "metrics"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE tenant_id = ?", table), tenantID); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// listAssetsAscending returns assets in append order for state snapshots;
// repository listings are newest first, state round-trips keep log order.
func (r *TenantStateRepository) listAssetsAscending(ctx context.Context, tenantID string) ([]asset.Asset, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, tenant_id, asset_type, platform, content, status, metadata, created_at
		 FROM assets WHERE tenant_id = ? ORDER BY created_at, id`,
		tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	assets := []asset.Asset{}
	for rows.Next() {
		var a asset.Asset
		var rawMetadata string
		if err := rows.Scan(&a.ID, &a.TenantID, &a.AssetType, &a.Platform, &a.Content, &a.Status, &rawMetadata, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		a.Metadata = decodeJSONMap(r.db.logger, tenantID, "assets.metadata", rawMetadata)
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

var _ repository.TenantStateRepository = (*TenantStateRepository)(nil)
