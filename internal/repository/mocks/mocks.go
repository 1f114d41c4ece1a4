package mocks

import (
	"context"

	"github.com/smallbizpal/smallbizpal/internal/domain/asset"
	"github.com/smallbizpal/smallbizpal/internal/domain/interaction"
	"github.com/smallbizpal/smallbizpal/internal/domain/profile"
	"github.com/stretchr/testify/mock"
)

// ProfileRepository is a mock for repository.ProfileRepository.
type ProfileRepository struct {
	mock.Mock
}

func (m *ProfileRepository) Get(ctx context.Context, tenantID string) (*profile.Profile, error) {
	args := m.Called(ctx, tenantID)
	if p, ok := args.Get(0).(*profile.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProfileRepository) Save(ctx context.Context, tenantID string, p *profile.Profile) error {
	args := m.Called(ctx, tenantID, p)
	return args.Error(0)
}

// AssetRepository is a mock for repository.AssetRepository.
type AssetRepository struct {
	mock.Mock
}

func (m *AssetRepository) Append(ctx context.Context, tenantID string, a *asset.Asset) error {
	args := m.Called(ctx, tenantID, a)
	return args.Error(0)
}

func (m *AssetRepository) List(ctx context.Context, tenantID string, opts asset.ListOptions) ([]asset.Asset, error) {
	args := m.Called(ctx, tenantID, opts)
	if list, ok := args.Get(0).([]asset.Asset); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AssetRepository) SetStatus(ctx context.Context, tenantID, id, status string) error {
	args := m.Called(ctx, tenantID, id, status)
	return args.Error(0)
}

// InteractionRepository is a mock for repository.InteractionRepository.
type InteractionRepository struct {
	mock.Mock
}

func (m *InteractionRepository) Append(ctx context.Context, tenantID string, in *interaction.Interaction) error {
	args := m.Called(ctx, tenantID, in)
	return args.Error(0)
}

func (m *InteractionRepository) List(ctx context.Context, tenantID string) ([]interaction.Interaction, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]interaction.Interaction); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// LeadRepository is a mock for repository.LeadRepository.
type LeadRepository struct {
	mock.Mock
}

func (m *LeadRepository) Append(ctx context.Context, tenantID string, lead *interaction.Lead) error {
	args := m.Called(ctx, tenantID, lead)
	return args.Error(0)
}

func (m *LeadRepository) List(ctx context.Context, tenantID string) ([]interaction.Lead, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]interaction.Lead); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// MetricsRepository is a mock for repository.MetricsRepository.
type MetricsRepository struct {
	mock.Mock
}

func (m *MetricsRepository) Set(ctx context.Context, tenantID, name string, data map[string]any) error {
	args := m.Called(ctx, tenantID, name, data)
	return args.Error(0)
}

func (m *MetricsRepository) Get(ctx context.Context, tenantID, name string) (map[string]any, error) {
	args := m.Called(ctx, tenantID, name)
	if data, ok := args.Get(0).(map[string]any); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MetricsRepository) All(ctx context.Context, tenantID string) (map[string]map[string]any, error) {
	args := m.Called(ctx, tenantID)
	if data, ok := args.Get(0).(map[string]map[string]any); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}
