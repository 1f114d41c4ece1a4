package mcp

import (
	"context"
	"log/slog"

	"github.com/smallbizpal/smallbizpal/internal/domain/asset"
	"github.com/smallbizpal/smallbizpal/internal/domain/interaction"
	"github.com/smallbizpal/smallbizpal/internal/domain/metrics"
	"github.com/smallbizpal/smallbizpal/internal/domain/profile"
	"github.com/smallbizpal/smallbizpal/internal/domain/report"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `smallbizpal stores one small business per tenant: a schema-free business
profile, append-only marketing asset and customer interaction logs, a lead
ledger, performance metrics, and daily report artifacts.

Typical flows:
- Discovery: update_business_profile with whatever fields the interview
  surfaced; get_business_profile / search_business_profile to answer
  customer questions.
- Marketing: store_marketing_asset for generated content;
  list_marketing_assets to review it.
- Engagement: store_customer_interaction for questions and inquiries;
  schedule_meeting to capture a lead.
- Reporting: collect_daily_metrics for a date, render the result, then
  store_report to persist the rendered markdown.

All tools operate on the authenticated tenant; no tool can read or write
another tenant's data.`

// ProfileService defines profile operations needed by MCP.
type ProfileService interface {
	Merge(ctx context.Context, tenantID string, fields map[string]any) (*profile.MergeResult, error)
	Get(ctx context.Context, tenantID string) (*profile.Profile, error)
	Search(ctx context.Context, tenantID string, terms []string) (map[string]any, error)
	Summary(ctx context.Context, tenantID string) (*profile.Summary, error)
}

// AssetService defines marketing asset operations needed by MCP.
type AssetService interface {
	Append(ctx context.Context, tenantID string, req asset.AppendRequest) (*asset.AppendResult, error)
	List(ctx context.Context, tenantID string, opts asset.ListOptions) ([]asset.Asset, error)
	SetStatus(ctx context.Context, tenantID, id, status string) error
}

// InteractionService defines interaction and lead operations needed by MCP.
type InteractionService interface {
	Append(ctx context.Context, tenantID, interactionType string, data map[string]any) (*interaction.Interaction, error)
	List(ctx context.Context, tenantID string) ([]interaction.Interaction, error)
	ScheduleMeeting(ctx context.Context, tenantID string, req interaction.MeetingRequest) (*interaction.Lead, error)
}

// MetricsService defines metric and aggregation operations needed by MCP.
type MetricsService interface {
	Set(ctx context.Context, tenantID, name string, data map[string]any) error
	Get(ctx context.Context, tenantID, name string) (map[string]map[string]any, error)
	Aggregate(ctx context.Context, tenantID, date string) (*metrics.DailyReport, error)
}

// ReportService defines report artifact operations needed by MCP.
type ReportService interface {
	Store(ctx context.Context, tenantID, date, content string) (*report.StoredReport, error)
	List(ctx context.Context, tenantID string) ([]report.Info, error)
}

// TenantAdmin destroys all of one tenant's collections (test/reset utility).
type TenantAdmin interface {
	Clear(ctx context.Context, tenantID string) error
}

// Services contains all domain services needed by MCP.
type Services struct {
	Profiles     ProfileService
	Assets       AssetService
	Interactions InteractionService
	Metrics      MetricsService
	Reports      ReportService
	Admin        TenantAdmin
}

// Config contains server configuration.
type Config struct {
	Services      Services
	Resolver      TenantResolver
	AuthEnabled   bool
	TransportMode string // "stdio" or "http"
	DefaultTenant string
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "smallbizpal",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	// Stdio mode is local single-tenant; auth only applies over HTTP.
	if cfg.TransportMode == "http" && cfg.AuthEnabled {
		server.AddReceivingMiddleware(authMiddleware(cfg.Resolver))
	} else {
		server.AddReceivingMiddleware(staticTenantMiddleware(cfg.DefaultTenant))
	}
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
