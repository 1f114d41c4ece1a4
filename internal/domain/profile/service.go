package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/smallbizpal/smallbizpal/internal/tenantlock"
)

// Repository provides persistence for business profiles.
type Repository interface {
	Get(ctx context.Context, tenantID string) (*Profile, error)
	Save(ctx context.Context, tenantID string, p *Profile) error
}

// Service handles business profile logic.
type Service struct {
	profiles Repository
	locks    *tenantlock.Keyed
	logger   *slog.Logger
}

// NewService creates a new profile service.
func NewService(profiles Repository, locks *tenantlock.Keyed, logger *slog.Logger) *Service {
	if locks == nil {
		locks = tenantlock.New()
	}
	return &Service{profiles: profiles, locks: locks, logger: logger}
}

// Merge overlays newFields onto the tenant's profile, last-write-wins per
// field name at the top level only. The merge is not committed unless the
// save succeeds.
func (s *Service) Merge(ctx context.Context, tenantID string, newFields map[string]any) (*MergeResult, error) {
	if tenantID == "" {
		return nil, ErrInvalidInput
	}
	if len(newFields) == 0 {
		return nil, ErrNoFields
	}

	s.locks.Lock(tenantID)
	defer s.locks.Unlock(tenantID)

	current, err := s.profiles.Get(ctx, tenantID)
	if errors.Is(err, ErrProfileNotFound) {
		current = New(tenantID)
	} else if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	merged := New(tenantID)
	merged.CreatedAt = current.CreatedAt
	merged.UpdateCount = current.UpdateCount
	for name, value := range current.Fields {
		merged.Fields[name] = value
	}
	for name, value := range newFields {
		merged.Fields[name] = value
	}
	merged.UpdatedAt = time.Now().UTC()
	merged.UpdateCount++

	if err := s.profiles.Save(ctx, tenantID, merged); err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}

	updated := make([]string, 0, len(newFields))
	for name := range newFields {
		updated = append(updated, name)
	}
	sort.Strings(updated)

	if s.logger != nil {
		s.logger.Info("merged business profile",
			"tenant_id", tenantID,
			"updated_fields", len(updated),
			"total_fields", len(merged.Fields),
			"total_updates", merged.UpdateCount)
	}

	return &MergeResult{
		UpdatedFields: updated,
		TotalFields:   len(merged.Fields),
		TotalUpdates:  merged.UpdateCount,
	}, nil
}

// Get returns the tenant's profile, or ErrProfileNotFound if none exists.
func (s *Service) Get(ctx context.Context, tenantID string) (*Profile, error) {
	if tenantID == "" {
		return nil, ErrInvalidInput
	}
	return s.profiles.Get(ctx, tenantID)
}

// Search returns every field whose name or stringified value contains any
// of the terms as a case-insensitive substring. Pure read; no ranking.
func (s *Service) Search(ctx context.Context, tenantID string, terms []string) (map[string]any, error) {
	if tenantID == "" {
		return nil, ErrInvalidInput
	}

	current, err := s.profiles.Get(ctx, tenantID)
	if errors.Is(err, ErrProfileNotFound) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	matches := map[string]any{}
	for name, value := range current.Fields {
		haystack := strings.ToLower(name + " " + stringify(value))
		for _, term := range terms {
			term = strings.ToLower(strings.TrimSpace(term))
			if term == "" {
				continue
			}
			if strings.Contains(haystack, term) {
				matches[name] = value
				break
			}
		}
	}
	return matches, nil
}

// Summary returns profile metadata without field values.
func (s *Service) Summary(ctx context.Context, tenantID string) (*Summary, error) {
	if tenantID == "" {
		return nil, ErrInvalidInput
	}

	current, err := s.profiles.Get(ctx, tenantID)
	if errors.Is(err, ErrProfileNotFound) {
		return &Summary{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	updatedAt := current.UpdatedAt
	return &Summary{
		ProfileExists: true,
		TotalFields:   len(current.Fields),
		HasData:       len(current.Fields) > 0,
		TotalUpdates:  current.UpdateCount,
		UpdatedAt:     &updatedAt,
	}, nil
}

// stringify renders a field value for substring matching. JSON is used so
// nested lists and maps match on their element text.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}
