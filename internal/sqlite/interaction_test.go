package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/smallbizpal/smallbizpal/internal/domain/interaction"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestInteractionRepository_AppendAssignsSeq(t *testing.T) {
	db := NewTestDB(t)
	repo := NewInteractionRepository(db)
	ctx := context.Background()

	first := &interaction.Interaction{
		Type:      "question",
		Data:      map[string]any{"question": "hours?"},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Append(ctx, "tenant1", first))
	require.Equal(t, int64(1), first.Seq)

	second := &interaction.Interaction{
		Type:      "inquiry",
		Data:      map[string]any{"topic": "catering"},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Append(ctx, "tenant1", second))
	require.Equal(t, int64(2), second.Seq)
}

func TestInteractionRepository_ListAppendOrder(t *testing.T) {
	db := NewTestDB(t)
	repo := NewInteractionRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		in := &interaction.Interaction{
			Type:      "question",
			Data:      map[string]any{"question": fmt.Sprintf("q%d", i)},
			CreatedAt: time.Now().UTC(),
		}
		require.NoError(t, repo.Append(ctx, "tenant1", in))
	}

	interactions, err := repo.List(ctx, "tenant1")
	require.NoError(t, err)
	require.Len(t, interactions, 5)
	for i, in := range interactions {
		require.Equal(t, fmt.Sprintf("q%d", i), in.Data["question"])
		require.Equal(t, int64(i+1), in.Seq)
	}
}

func TestInteractionRepository_TenantIsolation(t *testing.T) {
	db := NewTestDB(t)
	repo := NewInteractionRepository(db)
	ctx := context.Background()

	in := &interaction.Interaction{Type: "question", Data: map[string]any{}, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Append(ctx, "tenant1", in))

	interactions, err := repo.List(ctx, "tenant2")
	require.NoError(t, err)
	require.Empty(t, interactions)
}

// TestInteractionRepository_ConcurrentAppends verifies no append is lost
// under concurrent writers.
func TestInteractionRepository_ConcurrentAppends(t *testing.T) {
	db := NewTestDB(t)
	repo := NewInteractionRepository(db)
	ctx := context.Background()

	const writers = 100
	var g errgroup.Group
	for i := 0; i < writers; i++ {
		i := i
		g.Go(func() error {
			in := &interaction.Interaction{
				Type:      "question",
				Data:      map[string]any{"question": fmt.Sprintf("q%d", i)},
				CreatedAt: time.Now().UTC(),
			}
			return repo.Append(ctx, "tenant1", in)
		})
	}
	require.NoError(t, g.Wait())

	interactions, err := repo.List(ctx, "tenant1")
	require.NoError(t, err)
	require.Len(t, interactions, writers)

	// Seq values are dense and unique.
	seen := map[int64]bool{}
	for _, in := range interactions {
		require.False(t, seen[in.Seq])
		seen[in.Seq] = true
	}
}

func TestLeadRepository_AppendAndList(t *testing.T) {
	db := NewTestDB(t)
	repo := NewLeadRepository(db)
	ctx := context.Background()

	lead := &interaction.Lead{
		Name:          "Ana",
		Email:         "ana@example.com",
		Topic:         "catering",
		PreferredTime: "Tuesday 3pm",
		Status:        "new",
		Source:        "customer_engagement",
		Timestamp:     "2025-06-01T10:00:00Z",
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, repo.Append(ctx, "tenant1", lead))
	require.Equal(t, int64(1), lead.Seq)

	leads, err := repo.List(ctx, "tenant1")
	require.NoError(t, err)
	require.Len(t, leads, 1)
	require.Equal(t, "Ana", leads[0].Name)
	require.Equal(t, "new", leads[0].Status)
	require.Equal(t, "2025-06-01T10:00:00Z", leads[0].Timestamp)

	leads, err = repo.List(ctx, "tenant2")
	require.NoError(t, err)
	require.Empty(t, leads)
}
