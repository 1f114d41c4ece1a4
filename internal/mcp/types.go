package mcp

import (
	"time"

	"github.com/smallbizpal/smallbizpal/internal/domain/report"
)

type UpdateProfileParams struct {
	Fields map[string]any `json:"fields" jsonschema:"business fields to merge, last write wins per field name"`
}

type UpdateProfileResult struct {
	UpdatedFields []string `json:"updated_fields"`
	TotalFields   int      `json:"total_fields"`
	TotalUpdates  int64    `json:"total_updates"`
	Message       string   `json:"message"`
}

type GetProfileParams struct{}

type GetProfileResult struct {
	ProfileExists bool           `json:"profile_exists"`
	Fields        map[string]any `json:"fields"`
	CreatedAt     *time.Time     `json:"created_at,omitempty"`
	UpdatedAt     *time.Time     `json:"updated_at,omitempty"`
	UpdateCount   int64          `json:"update_count"`
}

type SearchProfileParams struct {
	Terms []string `json:"terms" jsonschema:"search terms, matched as case-insensitive substrings"`
}

type SearchProfileResult struct {
	Matches map[string]any `json:"matches"`
	Count   int            `json:"count"`
}

type GetProfileSummaryParams struct{}

type ProfileSummaryResult struct {
	ProfileExists bool       `json:"profile_exists"`
	TotalFields   int        `json:"total_fields"`
	HasData       bool       `json:"has_data"`
	TotalUpdates  int64      `json:"total_updates"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type StoreAssetParams struct {
	Content   string         `json:"content" jsonschema:"the generated marketing content"`
	AssetType string         `json:"asset_type" jsonschema:"type of content, e.g. slogan, social_post, ad_copy"`
	Platform  string         `json:"platform,omitempty" jsonschema:"target platform, defaults to universal"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type ListAssetsParams struct {
	AssetType       string `json:"asset_type,omitempty"`
	Platform        string `json:"platform,omitempty"`
	IncludeMetadata bool   `json:"include_metadata,omitempty"`
}

type AssetResponse struct {
	ID        string         `json:"id"`
	AssetType string         `json:"asset_type"`
	Platform  string         `json:"platform"`
	Content   string         `json:"content"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type ListAssetsResult struct {
	Assets     []AssetResponse `json:"assets"`
	TotalCount int             `json:"total_count"`
}

type SetAssetStatusParams struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type OKResult struct {
	OK bool `json:"ok"`
}

type StoreInteractionParams struct {
	Type string         `json:"type" jsonschema:"interaction type, e.g. question, inquiry, meeting_request"`
	Data map[string]any `json:"data,omitempty" jsonschema:"type-specific fields such as customer_name or question"`
}

type StoreInteractionResult struct {
	Seq       int64  `json:"seq"`
	Timestamp string `json:"timestamp"`
}

type ListInteractionsParams struct{}

type InteractionResponse struct {
	Seq       int64          `json:"seq"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"created_at"`
}

type ListInteractionsResult struct {
	Interactions []InteractionResponse `json:"interactions"`
	TotalCount   int                   `json:"total_count"`
}

type ScheduleMeetingParams struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Topic         string `json:"topic,omitempty"`
	PreferredTime string `json:"preferred_time,omitempty"`
}

type ScheduleMeetingResult struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Topic         string `json:"topic"`
	PreferredTime string `json:"preferred_time"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}

type SetMetricParams struct {
	Name string         `json:"name"`
	Data map[string]any `json:"data"`
}

type GetMetricsParams struct {
	Name string `json:"name,omitempty" jsonschema:"metric name, omit for all metrics"`
}

type GetMetricsResult struct {
	Metrics map[string]map[string]any `json:"metrics"`
}

type CollectMetricsParams struct {
	Date string `json:"date,omitempty" jsonschema:"report date as YYYY-MM-DD, defaults to today (UTC)"`
}

type StoreReportParams struct {
	Date    string `json:"date" jsonschema:"report date as YYYY-MM-DD"`
	Content string `json:"content" jsonschema:"rendered markdown report"`
}

type ListReportsParams struct{}

type ListReportsResult struct {
	Reports []report.Info `json:"reports"`
	Count   int           `json:"count"`
}

type ClearTenantParams struct{}
