package metrics_test

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/smallbizpal/smallbizpal/internal/domain/asset"
	"github.com/smallbizpal/smallbizpal/internal/domain/interaction"
	"github.com/smallbizpal/smallbizpal/internal/domain/metrics"
	"github.com/smallbizpal/smallbizpal/internal/repository/mocks"
	"github.com/stretchr/testify/require"
)

const reportDate = "2025-06-01"

func newAggregateService(
	interactions []interaction.Interaction,
	leads []interaction.Lead,
	assets []asset.Asset,
) *metrics.Service {
	interactionRepo := &mocks.InteractionRepository{}
	interactionRepo.On("List", context.Background(), "tenant1").Return(interactions, nil)

	leadRepo := &mocks.LeadRepository{}
	leadRepo.On("List", context.Background(), "tenant1").Return(leads, nil)

	assetRepo := &mocks.AssetRepository{}
	assetRepo.On("List", context.Background(), "tenant1", asset.ListOptions{}).Return(assets, nil)

	return metrics.NewService(&mocks.MetricsRepository{}, interactionRepo, assetRepo, leadRepo, nil)
}

func question(text, timestamp string) interaction.Interaction {
	return interaction.Interaction{
		Type: interaction.TypeQuestion,
		Data: map[string]any{"question": text, "timestamp": timestamp},
	}
}

func TestAggregate_DailyCounts(t *testing.T) {
	ctx := context.Background()

	interactions := []interaction.Interaction{
		{
			Type: interaction.TypeMeetingRequest,
			Data: map[string]any{
				"customer_name":  "Ana",
				"customer_email": "ana@example.com",
				"topic":          "catering",
				"timestamp":      "2025-06-01T10:00:00Z",
			},
		},
		question("Do you ship overseas?", "2025-06-01T11:00:00Z"),
		question("Too late", "2025-06-02T09:00:00Z"),
	}

	svc := newAggregateService(interactions, nil, nil)
	rep, err := svc.Aggregate(ctx, "tenant1", reportDate)
	require.NoError(t, err)

	require.Equal(t, reportDate, rep.Date)
	require.Equal(t, 2, rep.InteractionsCount)
	require.Equal(t, 1, rep.LeadsCount)
	require.Equal(t, "Ana", rep.LeadsDetails[0].Name)
	require.Equal(t, []metrics.QuestionCount{
		{Question: "Do you ship overseas?", Frequency: 1},
	}, rep.TopQuestions)
}

func TestAggregate_EmptyDayYieldsZeroes(t *testing.T) {
	ctx := context.Background()

	svc := newAggregateService(nil, nil, nil)
	rep, err := svc.Aggregate(ctx, "tenant1", reportDate)
	require.NoError(t, err)

	require.Zero(t, rep.InteractionsCount)
	require.Zero(t, rep.LeadsCount)
	require.Zero(t, rep.MarketingAssetsCount)
	require.NotNil(t, rep.LeadsDetails)
	require.NotNil(t, rep.TopQuestions)
	require.NotNil(t, rep.MarketingAssets)
}

func TestAggregate_InvalidDate(t *testing.T) {
	ctx := context.Background()

	svc := newAggregateService(nil, nil, nil)
	_, err := svc.Aggregate(ctx, "tenant1", "06/01/2025")
	require.ErrorIs(t, err, metrics.ErrInvalidDate)
}

func TestAggregate_LedgerLeadsDedupedByEmail(t *testing.T) {
	ctx := context.Background()

	interactions := []interaction.Interaction{
		{
			Type: interaction.TypeMeetingRequest,
			Data: map[string]any{
				"customer_name":  "Ana",
				"customer_email": "ana@example.com",
				"timestamp":      "2025-06-01T10:00:00Z",
			},
		},
	}
	leads := []interaction.Lead{
		// Same person, different casing; must not double count.
		{Name: "Ana", Email: "Ana@Example.com", Timestamp: "2025-06-01T10:00:00Z"},
		{Name: "Ben", Email: "ben@example.com", Timestamp: "2025-06-01T12:00:00Z"},
		{Name: "Late", Email: "late@example.com", Timestamp: "2025-06-03T12:00:00Z"},
	}

	svc := newAggregateService(interactions, leads, nil)
	rep, err := svc.Aggregate(ctx, "tenant1", reportDate)
	require.NoError(t, err)

	require.Equal(t, 2, rep.LeadsCount)
	require.Equal(t, "ana@example.com", rep.LeadsDetails[0].Email)
	require.Equal(t, "ben@example.com", rep.LeadsDetails[1].Email)
}

func TestAggregate_LeadWithoutNameIsUnknown(t *testing.T) {
	ctx := context.Background()

	interactions := []interaction.Interaction{
		{
			Type: interaction.TypeMeetingRequest,
			Data: map[string]any{
				"customer_email": "anon@example.com",
				"timestamp":      "2025-06-01T10:00:00Z",
			},
		},
	}

	svc := newAggregateService(interactions, nil, nil)
	rep, err := svc.Aggregate(ctx, "tenant1", reportDate)
	require.NoError(t, err)
	require.Equal(t, "Unknown", rep.LeadsDetails[0].Name)
}

func TestAggregate_TopQuestionsRankingAndLimit(t *testing.T) {
	ctx := context.Background()

	var interactions []interaction.Interaction
	add := func(text string, times int) {
		for i := 0; i < times; i++ {
			interactions = append(interactions, question(text, "2025-06-01T10:00:00Z"))
		}
	}
	add("first", 2)
	add("second", 2)
	add("third", 5)
	add("fourth", 1)
	add("fifth", 1)
	add("sixth", 1)
	add("seventh", 1)

	svc := newAggregateService(interactions, nil, nil)
	rep, err := svc.Aggregate(ctx, "tenant1", reportDate)
	require.NoError(t, err)

	require.Len(t, rep.TopQuestions, 5)
	require.Equal(t, "third", rep.TopQuestions[0].Question)
	require.Equal(t, 5, rep.TopQuestions[0].Frequency)
	// Ties broken by first appearance.
	require.Equal(t, "first", rep.TopQuestions[1].Question)
	require.Equal(t, "second", rep.TopQuestions[2].Question)
	require.Equal(t, "fourth", rep.TopQuestions[3].Question)
	require.Equal(t, "fifth", rep.TopQuestions[4].Question)
}

func TestAggregate_InquiryTopicFallback(t *testing.T) {
	ctx := context.Background()

	interactions := []interaction.Interaction{
		{
			Type: interaction.TypeInquiry,
			Data: map[string]any{"topic": "wholesale pricing", "timestamp": "2025-06-01T10:00:00Z"},
		},
	}

	svc := newAggregateService(interactions, nil, nil)
	rep, err := svc.Aggregate(ctx, "tenant1", reportDate)
	require.NoError(t, err)
	require.Equal(t, "wholesale pricing", rep.TopQuestions[0].Question)
}

func TestAggregate_LenientTimestampBucketing(t *testing.T) {
	ctx := context.Background()

	interactions := []interaction.Interaction{
		// Local date in its own offset is 2025-06-01 even though it is
		// 2025-06-02 in UTC.
		question("offset", "2025-06-01T23:30:00+05:00"),
		question("bare seconds", "2025-06-01T08:00:00"),
		question("bare date", "2025-06-01"),
		question("garbage", "not a timestamp"),
	}

	svc := newAggregateService(interactions, nil, nil)
	rep, err := svc.Aggregate(ctx, "tenant1", reportDate)
	require.NoError(t, err)
	require.Equal(t, 3, rep.InteractionsCount)
}

func TestAggregate_AssetPreviewTruncation(t *testing.T) {
	ctx := context.Background()

	created, err := time.Parse(time.RFC3339, "2025-06-01T09:00:00Z")
	require.NoError(t, err)

	long := strings.Repeat("x", 150)
	assets := []asset.Asset{
		{ID: "slogan_universal_aaaa1111", AssetType: "slogan", Platform: "universal", Content: long, CreatedAt: created},
		{ID: "slogan_universal_bbbb2222", AssetType: "slogan", Platform: "universal", Content: "short", CreatedAt: created},
		{ID: "slogan_universal_cccc3333", AssetType: "slogan", Platform: "universal", Content: "other day", CreatedAt: created.AddDate(0, 0, 1)},
	}

	svc := newAggregateService(nil, nil, assets)
	rep, err := svc.Aggregate(ctx, "tenant1", reportDate)
	require.NoError(t, err)

	require.Equal(t, 2, rep.MarketingAssetsCount)
	require.Len(t, rep.MarketingAssets[0].Content, 103)
	require.True(t, strings.HasSuffix(rep.MarketingAssets[0].Content, "..."))
	require.Equal(t, "short", rep.MarketingAssets[1].Content)
}

func TestAggregate_AssetPreviewKeepsMultibyteRunesIntact(t *testing.T) {
	ctx := context.Background()

	created, err := time.Parse(time.RFC3339, "2025-06-01T09:00:00Z")
	require.NoError(t, err)

	// 120 runes but 180 bytes; a byte slice at 100 would split a rune.
	long := strings.Repeat("éa", 60)
	assets := []asset.Asset{
		{ID: "slogan_universal_dddd4444", AssetType: "slogan", Platform: "universal", Content: long, CreatedAt: created},
	}

	svc := newAggregateService(nil, nil, assets)
	rep, err := svc.Aggregate(ctx, "tenant1", reportDate)
	require.NoError(t, err)

	preview := rep.MarketingAssets[0].Content
	require.True(t, utf8.ValidString(preview))
	require.Equal(t, 103, utf8.RuneCountInString(preview))
	require.True(t, strings.HasSuffix(preview, "..."))
}
