package interaction

import "time"

// Interaction types with aggregation semantics. Any other type string is
// stored verbatim and counted as a generic interaction.
const (
	TypeMeetingRequest = "meeting_request"
	TypeQuestion       = "question"
	TypeInquiry        = "inquiry"
)

// Interaction is one append-only customer touchpoint. Data carries the
// type-specific free-form fields (customer_name, question, topic, ...)
// including the record's own "timestamp" string, which keeps the original
// timezone for date bucketing.
type Interaction struct {
	Seq       int64          `json:"seq"`
	TenantID  string         `json:"tenant_id"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"created_at"`
}

// Timestamp returns the record's own timestamp string, empty if absent.
func (i *Interaction) Timestamp() string {
	ts, _ := i.Data["timestamp"].(string)
	return ts
}

// Lead is one entry in the lead ledger, captured when a customer requests
// a meeting. Timestamp keeps the customer's original timezone as a string.
type Lead struct {
	Seq           int64     `json:"seq"`
	TenantID      string    `json:"tenant_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Topic         string    `json:"topic"`
	PreferredTime string    `json:"preferred_time"`
	Status        string    `json:"status"`
	Source        string    `json:"source"`
	Timestamp     string    `json:"timestamp"`
	CreatedAt     time.Time `json:"created_at"`
}

// MeetingRequest describes a customer meeting request to capture.
type MeetingRequest struct {
	Name          string
	Email         string
	Topic         string
	PreferredTime string
}
