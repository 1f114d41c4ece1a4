package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/smallbizpal/smallbizpal/internal/domain/asset"
	"github.com/smallbizpal/smallbizpal/internal/repository"
)

// AssetRepository implements repository.AssetRepository for SQLite.
type AssetRepository struct {
	db *DB
}

// NewAssetRepository creates a new AssetRepository.
func NewAssetRepository(db *DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Append inserts a new asset.
func (r *AssetRepository) Append(ctx context.Context, tenantID string, a *asset.Asset) error {
	metadata, err := encodeJSONMap(a.Metadata)
	if err != nil {
		return fmt.Errorf("failed to encode asset metadata: %w", err)
	}

	query := `
		INSERT INTO assets (id, tenant_id, asset_type, platform, content, status, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		a.ID,
		tenantID,
		a.AssetType,
		a.Platform,
		a.Content,
		a.Status,
		metadata,
		a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append asset: %w", err)
	}
	return nil
}

// List returns the tenant's assets, newest first, with optional filters.
func (r *AssetRepository) List(ctx context.Context, tenantID string, opts asset.ListOptions) ([]asset.Asset, error) {
	query := `
		SELECT id, tenant_id, asset_type, platform, content, status, metadata, created_at
		FROM assets
		WHERE tenant_id = ?
	`

	args := []any{tenantID}
	conditions := []string{}

	if opts.AssetType != "" {
		conditions = append(conditions, "asset_type = ?")
		args = append(args, opts.AssetType)
	}
	if opts.Platform != "" {
		conditions = append(conditions, "platform = ?")
		args = append(args, opts.Platform)
	}
	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at DESC, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []asset.Asset
	for rows.Next() {
		var a asset.Asset
		var rawMetadata string
		if err := rows.Scan(
			&a.ID,
			&a.TenantID,
			&a.AssetType,
			&a.Platform,
			&a.Content,
			&a.Status,
			&rawMetadata,
			&a.CreatedAt,
		); err != nil {
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

// SetStatus updates the only mutable attribute of a stored asset.
func (r *AssetRepository) SetStatus(ctx context.Context, tenantID, id, status string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE assets SET status = ? WHERE tenant_id = ? AND id = ?`,
		status, tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to set asset status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to set asset status: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
