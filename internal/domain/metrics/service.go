package metrics

import (
	"context"
	"log/slog"
	"strings"
)

// Repository provides persistence for performance metric snapshots.
// Snapshots are mutable per metric name, last write wins.
type Repository interface {
	Set(ctx context.Context, tenantID, name string, data map[string]any) error
	Get(ctx context.Context, tenantID, name string) (map[string]any, error)
	All(ctx context.Context, tenantID string) (map[string]map[string]any, error)
}

// Service handles performance metric snapshots and daily aggregation.
type Service struct {
	metrics      Repository
	interactions InteractionSource
	assets       AssetSource
	leads        LeadSource
	logger       *slog.Logger
}

// NewService creates a new metrics service.
func NewService(metrics Repository, interactions InteractionSource, assets AssetSource, leads LeadSource, logger *slog.Logger) *Service {
	return &Service{
		metrics:      metrics,
		interactions: interactions,
		assets:       assets,
		leads:        leads,
		logger:       logger,
	}
}

// Set stores one metric snapshot, replacing any prior value for the name.
func (s *Service) Set(ctx context.Context, tenantID, name string, data map[string]any) error {
	if tenantID == "" || strings.TrimSpace(name) == "" {
		return ErrInvalidInput
	}
	return s.metrics.Set(ctx, tenantID, name, data)
}

// Get returns one metric snapshot, or all snapshots when name is empty.
func (s *Service) Get(ctx context.Context, tenantID, name string) (map[string]map[string]any, error) {
	if tenantID == "" {
		return nil, ErrInvalidInput
	}
	if name == "" {
		return s.metrics.All(ctx, tenantID)
	}
	data, err := s.metrics.Get(ctx, tenantID, name)
	if err != nil {
		return nil, err
	}
	return map[string]map[string]any{name: data}, nil
}
