package metrics

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/smallbizpal/smallbizpal/internal/domain/asset"
	"github.com/smallbizpal/smallbizpal/internal/domain/interaction"
)

const (
	topQuestionsLimit   = 5
	assetPreviewMaxLen  = 100
	assetPreviewEllipse = "..."
)

// InteractionSource reads the interaction log for aggregation.
type InteractionSource interface {
	List(ctx context.Context, tenantID string) ([]interaction.Interaction, error)
}

// AssetSource reads the asset log for aggregation.
type AssetSource interface {
	List(ctx context.Context, tenantID string, opts asset.ListOptions) ([]asset.Asset, error)
}

// LeadSource reads the lead ledger for aggregation.
type LeadSource interface {
	List(ctx context.Context, tenantID string) ([]interaction.Lead, error)
}

// Aggregate reduces the tenant's event logs into the daily report for the
// given date (YYYY-MM-DD). It is a pure function of the stored logs: an
// empty day yields zero counts and empty lists, never an error. Records
// with unparseable timestamps are excluded, not escalated.
func (s *Service) Aggregate(ctx context.Context, tenantID, date string) (*DailyReport, error) {
	if tenantID == "" {
		return nil, ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}

	report := &DailyReport{
		Date:            date,
		LeadsDetails:    []LeadDetail{},
		TopQuestions:    []QuestionCount{},
		MarketingAssets: []AssetPreview{},
	}

	interactions, err := s.interactions.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var questions []string
	for _, in := range interactions {
		if dateOf(in.Timestamp()) != date {
			continue
		}
		report.InteractionsCount++

		switch in.Type {
		case interaction.TypeMeetingRequest:
			report.LeadsDetails = append(report.LeadsDetails, leadFromInteraction(in))
		case interaction.TypeQuestion, interaction.TypeInquiry:
			text, _ := in.Data["question"].(string)
			if text == "" {
				text, _ = in.Data["topic"].(string)
			}
			if text != "" {
				questions = append(questions, text)
			}
		}
	}

	// Merge ledger leads recorded outside the interaction log. A lead whose
	// email already appears in the collected set is not added again.
	leads, err := s.leads.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	for _, d := range report.LeadsDetails {
		seen[normalizeEmail(d.Email)] = true
	}
	for _, lead := range leads {
		if dateOf(lead.Timestamp) != date {
			continue
		}
		key := normalizeEmail(lead.Email)
		if seen[key] {
			continue
		}
		seen[key] = true
		report.LeadsDetails = append(report.LeadsDetails, LeadDetail{
			Name:          orUnknown(lead.Name),
			Email:         lead.Email,
			Topic:         lead.Topic,
			PreferredTime: lead.PreferredTime,
			Timestamp:     lead.Timestamp,
		})
	}
	report.LeadsCount = len(report.LeadsDetails)

	report.TopQuestions = topQuestions(questions, topQuestionsLimit)

	assets, err := s.assets.List(ctx, tenantID, asset.ListOptions{})
	if err != nil {
		return nil, err
	}
	for _, a := range assets {
		created := a.CreatedAt.Format(time.RFC3339)
		if dateOf(created) != date {
			continue
		}
		report.MarketingAssets = append(report.MarketingAssets, AssetPreview{
			ID:        a.ID,
			AssetType: a.AssetType,
			Platform:  a.Platform,
			Content:   truncate(a.Content, assetPreviewMaxLen),
			CreatedAt: created,
		})
	}
	report.MarketingAssetsCount = len(report.MarketingAssets)

	if s.logger != nil {
		s.logger.Info("aggregated daily report",
			"tenant_id", tenantID,
			"date", date,
			"leads", report.LeadsCount,
			"interactions", report.InteractionsCount,
			"assets", report.MarketingAssetsCount)
	}
	return report, nil
}

// dateOf returns the calendar date of an ISO timestamp in the timestamp's
// own timezone, or "" if it does not parse. Accepts full timestamps with
// or without offset, and bare dates.
func dateOf(timestamp string) string {
	if timestamp == "" {
		return ""
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, timestamp); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

func leadFromInteraction(in interaction.Interaction) LeadDetail {
	name, _ := in.Data["customer_name"].(string)
	email, _ := in.Data["customer_email"].(string)
	topic, _ := in.Data["topic"].(string)
	preferred, _ := in.Data["preferred_time"].(string)
	return LeadDetail{
		Name:          orUnknown(name),
		Email:         email,
		Topic:         topic,
		PreferredTime: preferred,
		Timestamp:     in.Timestamp(),
	}
}

// topQuestions ranks questions by descending frequency, ties broken by
// first-seen order, and keeps the top n.
func topQuestions(questions []string, n int) []QuestionCount {
	counts := map[string]int{}
	var order []string
	for _, q := range questions {
		if counts[q] == 0 {
			order = append(order, q)
		}
		counts[q]++
	}

	ranked := make([]QuestionCount, 0, len(order))
	for _, q := range order {
		ranked = append(ranked, QuestionCount{Question: q, Frequency: counts[q]})
	}
	// Insertion order already breaks ties; the stable sort preserves it.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Frequency > ranked[j].Frequency
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func truncate(content string, max int) string {
	if utf8.RuneCountInString(content) <= max {
		return content
	}
	// Truncate on a rune boundary so multibyte content stays valid UTF-8.
	return string([]rune(content)[:max]) + assetPreviewEllipse
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func orUnknown(name string) string {
	if name == "" {
		return "Unknown"
	}
	return name
}
