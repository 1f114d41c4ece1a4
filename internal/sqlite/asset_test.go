package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/smallbizpal/smallbizpal/internal/domain/asset"
	"github.com/smallbizpal/smallbizpal/internal/repository"
	"github.com/stretchr/testify/require"
)

func testAsset(id, assetType, platform string, createdAt time.Time) *asset.Asset {
	return &asset.Asset{
		ID:        id,
		TenantID:  "tenant1",
		AssetType: assetType,
		Platform:  platform,
		Content:   "content for " + id,
		Status:    "active",
		Metadata:  map[string]any{"character_count": float64(10)},
		CreatedAt: createdAt,
	}
}

func TestAssetRepository_AppendAndList(t *testing.T) {
	db := NewTestDB(t)
	repo := NewAssetRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, "tenant1", testAsset("slogan_universal_aaaa1111", "slogan", "universal", base)))
	require.NoError(t, repo.Append(ctx, "tenant1", testAsset("social_post_twitter_bbbb2222", "social_post", "twitter", base.Add(time.Hour))))

	assets, err := repo.List(ctx, "tenant1", asset.ListOptions{})
	require.NoError(t, err)
	require.Len(t, assets, 2)

	// Newest first.
	require.Equal(t, "social_post_twitter_bbbb2222", assets[0].ID)
	require.Equal(t, "slogan_universal_aaaa1111", assets[1].ID)
	require.Equal(t, map[string]any{"character_count": float64(10)}, assets[0].Metadata)
}

func TestAssetRepository_ListFilters(t *testing.T) {
	db := NewTestDB(t)
	repo := NewAssetRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, "tenant1", testAsset("slogan_universal_aaaa1111", "slogan", "universal", base)))
	require.NoError(t, repo.Append(ctx, "tenant1", testAsset("slogan_twitter_bbbb2222", "slogan", "twitter", base)))
	require.NoError(t, repo.Append(ctx, "tenant1", testAsset("ad_copy_twitter_cccc3333", "ad_copy", "twitter", base)))

	byType, err := repo.List(ctx, "tenant1", asset.ListOptions{AssetType: "slogan"})
	require.NoError(t, err)
	require.Len(t, byType, 2)

	byPlatform, err := repo.List(ctx, "tenant1", asset.ListOptions{Platform: "twitter"})
	require.NoError(t, err)
	require.Len(t, byPlatform, 2)

	both, err := repo.List(ctx, "tenant1", asset.ListOptions{AssetType: "slogan", Platform: "twitter"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	require.Equal(t, "slogan_twitter_bbbb2222", both[0].ID)
}

func TestAssetRepository_TenantIsolation(t *testing.T) {
	db := NewTestDB(t)
	repo := NewAssetRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "tenant1", testAsset("slogan_universal_aaaa1111", "slogan", "universal", time.Now().UTC())))

	assets, err := repo.List(ctx, "tenant2", asset.ListOptions{})
	require.NoError(t, err)
	require.Empty(t, assets)
}

func TestAssetRepository_SetStatus(t *testing.T) {
	db := NewTestDB(t)
	repo := NewAssetRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "tenant1", testAsset("slogan_universal_aaaa1111", "slogan", "universal", time.Now().UTC())))

	require.NoError(t, repo.SetStatus(ctx, "tenant1", "slogan_universal_aaaa1111", "archived"))

	assets, err := repo.List(ctx, "tenant1", asset.ListOptions{})
	require.NoError(t, err)
	require.Equal(t, "archived", assets[0].Status)

	// Unknown ID and wrong tenant both miss.
	require.Equal(t, repository.ErrNotFound, repo.SetStatus(ctx, "tenant1", "missing", "archived"))
	require.Equal(t, repository.ErrNotFound, repo.SetStatus(ctx, "tenant2", "slogan_universal_aaaa1111", "archived"))
}
