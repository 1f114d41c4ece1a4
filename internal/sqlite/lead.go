package sqlite

import (
	"context"
	"fmt"

	"github.com/smallbizpal/smallbizpal/internal/domain/interaction"
)

// LeadRepository implements repository.LeadRepository for SQLite.
type LeadRepository struct {
	db *DB
}

// NewLeadRepository creates a new LeadRepository.
func NewLeadRepository(db *DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Append inserts a new lead ledger entry.
func (r *LeadRepository) Append(ctx context.Context, tenantID string, lead *interaction.Lead) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO leads (tenant_id, name, email, topic, preferred_time, status, source, timestamp, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tenantID,
		lead.Name,
		lead.Email,
		lead.Topic,
		lead.PreferredTime,
		lead.Status,
		lead.Source,
		lead.Timestamp,
		lead.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append lead: %w", err)
	}

	if seq, err := result.LastInsertId(); err == nil {
		lead.Seq = seq
	}
	lead.TenantID = tenantID
	return nil
}

// List returns the tenant's leads in append order.
func (r *LeadRepository) List(ctx context.Context, tenantID string) ([]interaction.Lead, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT seq, tenant_id, name, email, topic, preferred_time, status, source, timestamp, created_at
		 FROM leads WHERE tenant_id = ? ORDER BY seq`,
		tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	var leads []interaction.Lead
	for rows.Next() {
		var lead interaction.Lead
		if err := rows.Scan(
			&lead.Seq,
			&lead.TenantID,
			&lead.Name,
			&lead.Email,
			&lead.Topic,
			&lead.PreferredTime,
			&lead.Status,
			&lead.Source,
			&lead.Timestamp,
			&lead.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}
