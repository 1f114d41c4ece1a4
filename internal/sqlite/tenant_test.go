package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/smallbizpal/smallbizpal/internal/domain/asset"
	"github.com/smallbizpal/smallbizpal/internal/domain/interaction"
	"github.com/smallbizpal/smallbizpal/internal/domain/profile"
	"github.com/smallbizpal/smallbizpal/internal/repository"
	"github.com/stretchr/testify/require"
)

func testTenantState() *repository.TenantState {
	p := profile.New("tenant1")
	p.Fields["business_name"] = "Bloom Coffee"
	p.UpdateCount = 2

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return &repository.TenantState{
		Profile: p,
		Assets: []asset.Asset{
			{
				ID: "slogan_universal_aaaa1111", TenantID: "tenant1", AssetType: "slogan",
				Platform: "universal", Content: "Quality you can taste", Status: "active",
				Metadata: map[string]any{"character_count": float64(21)}, CreatedAt: base,
			},
		},
		Interactions: []interaction.Interaction{
			{
				TenantID: "tenant1", Type: "question",
				Data:      map[string]any{"question": "hours?", "timestamp": "2025-06-01T10:00:00Z"},
				CreatedAt: base,
			},
		},
		Leads: []interaction.Lead{
			{
				TenantID: "tenant1", Name: "Ana", Email: "ana@example.com",
				Status: "new", Source: "customer_engagement",
				Timestamp: "2025-06-01T10:00:00Z", CreatedAt: base,
			},
		},
		Metrics: map[string]map[string]any{
			"website": {"visits": float64(40)},
		},
	}
}

func TestTenantStateRepository_SaveLoadRoundTrip(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTenantStateRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "tenant1", testTenantState()))

	loaded, err := repo.Load(ctx, "tenant1")
	require.NoError(t, err)

	require.NotNil(t, loaded.Profile)
	require.Equal(t, "Bloom Coffee", loaded.Profile.Fields["business_name"])
	require.Equal(t, int64(2), loaded.Profile.UpdateCount)

	require.Len(t, loaded.Assets, 1)
	require.Equal(t, "slogan_universal_aaaa1111", loaded.Assets[0].ID)
	require.Equal(t, map[string]any{"character_count": float64(21)}, loaded.Assets[0].Metadata)

	require.Len(t, loaded.Interactions, 1)
	require.Equal(t, "hours?", loaded.Interactions[0].Data["question"])

	require.Len(t, loaded.Leads, 1)
	require.Equal(t, "ana@example.com", loaded.Leads[0].Email)

	require.Equal(t, float64(40), loaded.Metrics["website"]["visits"])
}

func TestTenantStateRepository_SaveReplacesPriorState(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTenantStateRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "tenant1", testTenantState()))

	replacement := &repository.TenantState{
		Metrics: map[string]map[string]any{"social": {"followers": float64(5)}},
	}
	require.NoError(t, repo.Save(ctx, "tenant1", replacement))

	loaded, err := repo.Load(ctx, "tenant1")
	require.NoError(t, err)
	require.Nil(t, loaded.Profile)
	require.Empty(t, loaded.Assets)
	require.Empty(t, loaded.Interactions)
	require.Empty(t, loaded.Leads)
	require.Equal(t, float64(5), loaded.Metrics["social"]["followers"])
}

func TestTenantStateRepository_LoadEmptyTenant(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTenantStateRepository(db)
	ctx := context.Background()

	loaded, err := repo.Load(ctx, "nobody")
	require.NoError(t, err)
	require.Nil(t, loaded.Profile)
	require.NotNil(t, loaded.Assets)
	require.NotNil(t, loaded.Interactions)
	require.NotNil(t, loaded.Leads)
	require.NotNil(t, loaded.Metrics)
	require.Empty(t, loaded.Assets)
}

func TestTenantStateRepository_ClearIsScopedToTenant(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTenantStateRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "tenant1", testTenantState()))

	other := testTenantState()
	other.Profile = profile.New("tenant2")
	other.Profile.Fields["business_name"] = "Other Shop"
	require.NoError(t, repo.Save(ctx, "tenant2", other))

	require.NoError(t, repo.Clear(ctx, "tenant1"))

	cleared, err := repo.Load(ctx, "tenant1")
	require.NoError(t, err)
	require.Nil(t, cleared.Profile)
	require.Empty(t, cleared.Interactions)
	require.Empty(t, cleared.Metrics)

	kept, err := repo.Load(ctx, "tenant2")
	require.NoError(t, err)
	require.NotNil(t, kept.Profile)
	require.Equal(t, "Other Shop", kept.Profile.Fields["business_name"])
}
