package profile

import "time"

// Profile holds a tenant's business profile. Fields is schema-free:
// the conversational interview that produces it cannot know in advance
// which fields a given business will supply, so values are anything JSON
// can carry (string, number, bool, list, nested map).
type Profile struct {
	TenantID    string         `json:"tenant_id"`
	Fields      map[string]any `json:"fields"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	UpdateCount int64          `json:"update_count"`
}

// New returns an empty profile for a tenant.
func New(tenantID string) *Profile {
	now := time.Now().UTC()
	return &Profile{
		TenantID:  tenantID,
		Fields:    map[string]any{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MergeResult summarizes one merge operation for observability.
type MergeResult struct {
	UpdatedFields []string `json:"updated_fields"`
	TotalFields   int      `json:"total_fields"`
	TotalUpdates  int64    `json:"total_updates"`
}

// Summary describes the profile without exposing its field values.
type Summary struct {
	ProfileExists bool       `json:"profile_exists"`
	TotalFields   int        `json:"total_fields"`
	HasData       bool       `json:"has_data"`
	TotalUpdates  int64      `json:"total_updates"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}
