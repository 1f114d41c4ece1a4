package interaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Repository provides persistence for the interaction log.
type Repository interface {
	Append(ctx context.Context, tenantID string, in *Interaction) error
	List(ctx context.Context, tenantID string) ([]Interaction, error)
}

// LeadRepository provides persistence for the lead ledger.
type LeadRepository interface {
	Append(ctx context.Context, tenantID string, lead *Lead) error
	List(ctx context.Context, tenantID string) ([]Lead, error)
}

// Service handles customer interaction logic.
type Service struct {
	interactions Repository
	leads        LeadRepository
	logger       *slog.Logger
}

// NewService creates a new interaction service.
func NewService(interactions Repository, leads LeadRepository, logger *slog.Logger) *Service {
	return &Service{interactions: interactions, leads: leads, logger: logger}
}

// Append stores one interaction. A timestamp is assigned if the caller did
// not supply one; a supplied timestamp is kept verbatim so the record's
// original timezone survives for date bucketing.
func (s *Service) Append(ctx context.Context, tenantID, interactionType string, data map[string]any) (*Interaction, error) {
	if tenantID == "" {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(interactionType) == "" {
		return nil, ErrMissingType
	}

	now := time.Now().UTC()
	in := &Interaction{
		TenantID:  tenantID,
		Type:      interactionType,
		Data:      map[string]any{},
		CreatedAt: now,
	}
	for k, v := range data {
		in.Data[k] = v
	}
	if _, ok := in.Data["timestamp"].(string); !ok {
		in.Data["timestamp"] = now.Format(time.RFC3339)
	}

	if err := s.interactions.Append(ctx, tenantID, in); err != nil {
		return nil, fmt.Errorf("storing interaction: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("stored customer interaction",
			"tenant_id", tenantID, "type", interactionType)
	}
	return in, nil
}

// List returns all interactions for the tenant in append order.
func (s *Service) List(ctx context.Context, tenantID string) ([]Interaction, error) {
	if tenantID == "" {
		return nil, ErrInvalidInput
	}
	return s.interactions.List(ctx, tenantID)
}

// ScheduleMeeting records a customer meeting request in the lead ledger and
// mirrors it into the interaction log so both the ledger and the log can
// stand alone. The mirrored interaction is written first; a ledger failure
// does not lose the interaction.
func (s *Service) ScheduleMeeting(ctx context.Context, tenantID string, req MeetingRequest) (*Lead, error) {
	if tenantID == "" {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, ErrMissingContact
	}

	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339)

	_, err := s.Append(ctx, tenantID, TypeMeetingRequest, map[string]any{
		"customer_name":  req.Name,
		"customer_email": req.Email,
		"topic":          req.Topic,
		"preferred_time": req.PreferredTime,
		"timestamp":      timestamp,
		"status":         "scheduled",
	})
	if err != nil {
		return nil, err
	}

	lead := &Lead{
		TenantID:      tenantID,
		Name:          req.Name,
		Email:         req.Email,
		Topic:         req.Topic,
		PreferredTime: req.PreferredTime,
		Status:        "new",
		Source:        "customer_engagement",
		Timestamp:     timestamp,
		CreatedAt:     now,
	}
	if err := s.leads.Append(ctx, tenantID, lead); err != nil {
		return nil, fmt.Errorf("storing lead: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("captured lead", "tenant_id", tenantID, "email", req.Email)
	}
	return lead, nil
}

// Leads returns the tenant's lead ledger in append order.
func (s *Service) Leads(ctx context.Context, tenantID string) ([]Lead, error) {
	if tenantID == "" {
		return nil, ErrInvalidInput
	}
	return s.leads.List(ctx, tenantID)
}
