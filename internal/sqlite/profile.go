package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/smallbizpal/smallbizpal/internal/domain/profile"
)

// ProfileRepository implements repository.ProfileRepository for SQLite.
type ProfileRepository struct {
	db *DB
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Get retrieves the tenant's profile. A corrupt fields column degrades to
// an empty field map with a logged warning.
func (r *ProfileRepository) Get(ctx context.Context, tenantID string) (*profile.Profile, error) {
	query := `
		SELECT tenant_id, fields, created_at, updated_at, update_count
		FROM profiles
		WHERE tenant_id = ?
	`

	var p profile.Profile
	var rawFields string
	err := r.db.QueryRowContext(ctx, query, tenantID).Scan(
		&p.TenantID,
		&rawFields,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.UpdateCount,
	)
	if err == sql.ErrNoRows {
		return nil, profile.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	p.Fields = decodeJSONMap(r.db.logger, tenantID, "profiles.fields", rawFields)
	return &p, nil
}

// Save upserts the tenant's profile, fully replacing the stored row.
func (r *ProfileRepository) Save(ctx context.Context, tenantID string, p *profile.Profile) error {
	fields, err := encodeJSONMap(p.Fields)
	if err != nil {
		return fmt.Errorf("failed to encode profile fields: %w", err)
	}

	query := `
		INSERT INTO profiles (tenant_id, fields, created_at, updated_at, update_count)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(tenant_id) DO UPDATE SET
			fields = excluded.fields,
			updated_at = excluded.updated_at,
			update_count = excluded.update_count
	`

	_, err = r.db.ExecContext(ctx, query,
		tenantID,
		fields,
		p.CreatedAt,
		p.UpdatedAt,
		p.UpdateCount,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}
