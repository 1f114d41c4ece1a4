package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// MetricsRepository implements repository.MetricsRepository for SQLite.
type MetricsRepository struct {
	db *DB
}

// NewMetricsRepository creates a new MetricsRepository.
func NewMetricsRepository(db *DB) *MetricsRepository {
	return &MetricsRepository{db: db}
}

// Set upserts one metric snapshot, last write wins per name.
func (r *MetricsRepository) Set(ctx context.Context, tenantID, name string, data map[string]any) error {
	encoded, err := encodeJSONMap(data)
	if err != nil {
		return fmt.Errorf("failed to encode metric data: %w", err)
	}

	query := `
		INSERT INTO metrics (tenant_id, name, data, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(tenant_id, name) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, tenantID, name, encoded, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to set metric: %w", err)
	}
	return nil
}

// Get returns one metric snapshot, empty if the name has no value yet.
func (r *MetricsRepository) Get(ctx context.Context, tenantID, name string) (map[string]any, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM metrics WHERE tenant_id = ? AND name = ?`,
		tenantID, name).Scan(&raw)
	if err == sql.ErrNoRows {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metric: %w", err)
	}
	return decodeJSONMap(r.db.logger, tenantID, "metrics.data", raw), nil
}

// All returns every metric snapshot for the tenant, keyed by name.
func (r *MetricsRepository) All(ctx context.Context, tenantID string) (map[string]map[string]any, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, data FROM metrics WHERE tenant_id = ? ORDER BY name`,
		tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list metrics: %w", err)
	}
	defer rows.Close()

	all := map[string]map[string]any{}
	for rows.Next() {
		var name, raw string
		if err := rows.Scan(&name, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan metric: %w", err)
		}
		all[name] = decodeJSONMap(r.db.logger, tenantID, "metrics.data", raw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list metrics: %w", err)
	}
	return all, nil
}
