package sqlite

import (
	"context"
	"fmt"

	"github.com/smallbizpal/smallbizpal/internal/domain/interaction"
)

// InteractionRepository implements repository.InteractionRepository for SQLite.
type InteractionRepository struct {
	db *DB
}

// NewInteractionRepository creates a new InteractionRepository.
func NewInteractionRepository(db *DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// Append inserts a new interaction. The log has no update or delete.
func (r *InteractionRepository) Append(ctx context.Context, tenantID string, in *interaction.Interaction) error {
	data, err := encodeJSONMap(in.Data)
	if err != nil {
		return fmt.Errorf("failed to encode interaction data: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO interactions (tenant_id, type, data, created_at) VALUES (?, ?, ?, ?)`,
		tenantID, in.Type, data, in.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append interaction: %w", err)
	}

	if seq, err := result.LastInsertId(); err == nil {
		in.Seq = seq
	}
	in.TenantID = tenantID
	return nil
}

// List returns all interactions for the tenant in append order.
func (r *InteractionRepository) List(ctx context.Context, tenantID string) ([]interaction.Interaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT seq, tenant_id, type, data, created_at FROM interactions WHERE tenant_id = ? ORDER BY seq`,
		tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}
	defer rows.Close()

	var interactions []interaction.Interaction
	for rows.Next() {
		var in interaction.Interaction
		var rawData string
		if err := rows.Scan(&in.Seq, &in.TenantID, &in.Type, &rawData, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interaction: %w", err)
		}
		in.Data = decodeJSONMap(r.db.logger, tenantID, "interactions.data", rawData)
		interactions = append(interactions, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}
	return interactions, nil
}
