package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smallbizpal/smallbizpal/internal/domain/asset"
	"github.com/smallbizpal/smallbizpal/internal/domain/interaction"
	"github.com/smallbizpal/smallbizpal/internal/domain/metrics"
	"github.com/smallbizpal/smallbizpal/internal/domain/profile"
	"github.com/smallbizpal/smallbizpal/internal/domain/report"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

var errMissingTenant = &APIError{Code: "UNAUTHORIZED", Message: "no tenant in request context"}

func tenantFrom(ctx context.Context) (string, error) {
	tenantID := getTenantID(ctx)
	if tenantID == "" {
		return "", errMissingTenant
	}
	return tenantID, nil
}

// registerTools registers every tool of the knowledge-base surface.
func registerTools(server *sdkmcp.Server, svcs Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_business_profile",
		Description: "Merge new fields into the tenant's business profile (last write wins per field name)",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params UpdateProfileParams) (*sdkmcp.CallToolResult, UpdateProfileResult, error) {
		tenantID, err := tenantFrom(ctx)
		if err != nil {
			return nil, UpdateProfileResult{}, err
		}
		res, err := svcs.Profiles.Merge(ctx, tenantID, params.Fields)
		if err != nil {
			return nil, UpdateProfileResult{}, mapError(err)
		}
		return nil, UpdateProfileResult{
			UpdatedFields: res.UpdatedFields,
			TotalFields:   res.TotalFields,
			TotalUpdates:  res.TotalUpdates,
			Message:       fmt.Sprintf("Successfully updated business profile with %d fields", len(res.UpdatedFields)),
		}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_business_profile",
		Description: "Get the tenant's full business profile",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params GetProfileParams) (*sdkmcp.CallToolResult, GetProfileResult, error) {
		tenantID, err := tenantFrom(ctx)
		if err != nil {
			return nil, GetProfileResult{}, err
		}
		p, err := svcs.Profiles.Get(ctx, tenantID)
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, GetProfileResult{Fields: map[string]any{}}, nil
		}
		if err != nil {
			return nil, GetProfileResult{}, mapError(err)
		}
		createdAt, updatedAt := p.CreatedAt, p.UpdatedAt
		return nil, GetProfileResult{
			ProfileExists: true,
			Fields:        p.Fields,
			CreatedAt:     &createdAt,
			UpdatedAt:     &updatedAt,
			UpdateCount:   p.UpdateCount,
		}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_business_profile",
		Description: "Search profile fields by name or value substring (case-insensitive)",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params SearchProfileParams) (*sdkmcp.CallToolResult, SearchProfileResult, error) {
		tenantID, err := tenantFrom(ctx)
		if err != nil {
			return nil, SearchProfileResult{}, err
		}
		matches, err := svcs.Profiles.Search(ctx, tenantID, params.Terms)
		if err != nil {
			return nil, SearchProfileResult{}, mapError(err)
		}
		return nil, SearchProfileResult{Matches: matches, Count: len(matches)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_profile_summary",
		Description: "Get profile metadata (field count, update count) without field values",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params GetProfileSummaryParams) (*sdkmcp.CallToolResult, ProfileSummaryResult, error) {
		tenantID, err := tenantFrom(ctx)
		if err != nil {
			return nil, ProfileSummaryResult{}, err
		}
		summary, err := svcs.Profiles.Summary(ctx, tenantID)
		if err != nil {
			return nil, ProfileSummaryResult{}, mapError(err)
		}
		return nil, ProfileSummaryResult{
			ProfileExists: summary.ProfileExists,
			TotalFields:   summary.TotalFields,
			HasData:       summary.HasData,
			TotalUpdates:  summary.TotalUpdates,
			UpdatedAt:     summary.UpdatedAt,
		}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "store_marketing_asset",
		Description: "Store a piece of generated marketing content in the asset log",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params StoreAssetParams) (*sdkmcp.CallToolResult, asset.AppendResult, error) {
		tenantID, err := tenantFrom(ctx)
		if err != nil {
			return nil, asset.AppendResult{}, err
		}
		res, err := svcs.Assets.Append(ctx, tenantID, asset.AppendRequest{
			Content:   params.Content,
			AssetType: params.AssetType,
			Platform:  params.Platform,
			Metadata:  params.Metadata,
		})
		if err != nil {
			return nil, asset.AppendResult{}, mapError(err)
		}
		return nil, *res, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_marketing_assets",
		Description: "List stored marketing assets, newest first, optionally filtered by type and platform",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params ListAssetsParams) (*sdkmcp.CallToolResult, ListAssetsResult, error) {
		tenantID, err := tenantFrom(ctx)
		if err != nil {
			return nil, ListAssetsResult{}, err
		}
		assets, err := svcs.Assets.List(ctx, tenantID, asset.ListOptions{
			AssetType: params.AssetType,
			Platform:  params.Platform,
		})
		if err != nil {
			return nil, ListAssetsResult{}, mapError(err)
		}
		resp := make([]AssetResponse, 0, len(assets))
		for _, a := range assets {
			item := AssetResponse{
				ID:        a.ID,
				AssetType: a.AssetType,
				Platform:  a.Platform,
				Content:   a.Content,
				Status:    a.Status,
				CreatedAt: a.CreatedAt,
			}
			if params.IncludeMetadata {
				item.Metadata = a.Metadata
			}
			resp = append(resp, item)
		}
		return nil, ListAssetsResult{Assets: resp, TotalCount: len(resp)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_asset_status",
		Description: "Toggle the status of a stored marketing asset (the only mutable asset attribute)",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params SetAssetStatusParams) (*sdkmcp.CallToolResult, OKResult, error) {
		tenantID, err := tenantFrom(ctx)
		if err != nil {
			return nil, OKResult{}, err
		}
		if err := svcs.Assets.SetStatus(ctx, tenantID, params.ID, params.Status); err != nil {
			return nil, OKResult{}, mapError(err)
		}
		return nil, OKResult{OK: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "store_customer_interaction",
		Description: "Append a customer interaction to the event log",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params StoreInteractionParams) (*sdkmcp.CallToolResult, StoreInteractionResult, error) {
		tenantID, err := tenantFrom(ctx)
		if err != nil {
			return nil, StoreInteractionResult{}, err
		}
		in, err := svcs.Interactions.Append(ctx, tenantID, params.Type, params.Data)
		if err != nil {
			return nil, StoreInteractionResult{}, mapError(err)
		}
		return nil, StoreInteractionResult{Seq: in.Seq, Timestamp: in.Timestamp()}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_customer_interactions",
		Description: "List all customer interactions in append order",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params ListInteractionsParams) (*sdkmcp.CallToolResult, ListInteractionsResult, error) {
		tenantID, err := tenantFrom(ctx)
		if err != nil {
			return nil, ListInteractionsResult{}, err
		}
		interactions, err := svcs.Interactions.List(ctx, tenantID)
		if err != nil {
			return nil, ListInteractionsResult{}, mapError(err)
		}
		resp := make([]InteractionResponse, 0, len(interactions))
		for _, in := range interactions {
			resp = append(resp, InteractionResponse{
				Seq:       in.Seq,
				Type:      in.Type,
				Data:      in.Data,
				CreatedAt: in.CreatedAt,
			})
		}
		return nil, ListInteractionsResult{Interactions: resp, TotalCount: len(resp)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "schedule_meeting",
		Description: "Capture a customer meeting request as a lead and mirror it into the interaction log",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params ScheduleMeetingParams) (*sdkmcp.CallToolResult, ScheduleMeetingResult, error) {
		tenantID, err := tenantFrom(ctx)
		if err != nil {
			return nil, ScheduleMeetingResult{}, err
		}
		lead, err := svcs.Interactions.ScheduleMeeting(ctx, tenantID, interaction.MeetingRequest{
			Name:          params.Name,
			Email:         params.Email,
			Topic:         params.Topic,
			PreferredTime: params.PreferredTime,
		})
		if err != nil {
			return nil, ScheduleMeetingResult{}, mapError(err)
		}
		return nil, ScheduleMeetingResult{
			Name:          lead.Name,
			Email:         lead.Email,
			Topic:         lead.Topic,
			PreferredTime: lead.PreferredTime,
			Status:        lead.Status,
			Message:       fmt.Sprintf("Meeting request scheduled for %s; the team will follow up at %s", lead.Name, lead.Email),
		}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_performance_metric",
		Description: "Store a performance metric snapshot (last write wins per metric name)",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params SetMetricParams) (*sdkmcp.CallToolResult, OKResult, error) {
		tenantID, err := tenantFrom(ctx)
		if err != nil {
			return nil, OKResult{}, err
		}
		if err := svcs.Metrics.Set(ctx, tenantID, params.Name, params.Data); err != nil {
			return nil, OKResult{}, mapError(err)
		}
		return nil, OKResult{OK: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_performance_data",
		Description: "Get one performance metric snapshot or all of them",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params GetMetricsParams) (*sdkmcp.CallToolResult, GetMetricsResult, error) {
		tenantID, err := tenantFrom(ctx)
		if err != nil {
			return nil, GetMetricsResult{}, err
		}
		data, err := svcs.Metrics.Get(ctx, tenantID, params.Name)
		if err != nil {
			return nil, GetMetricsResult{}, mapError(err)
		}
		return nil, GetMetricsResult{Metrics: data}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "collect_daily_metrics",
		Description: "Aggregate the tenant's event logs into a daily performance report",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params CollectMetricsParams) (*sdkmcp.CallToolResult, metrics.DailyReport, error) {
		tenantID, err := tenantFrom(ctx)
		if err != nil {
			return nil, metrics.DailyReport{}, err
		}
		date := params.Date
		if date == "" {
			date = time.Now().UTC().Format("2006-01-02")
		}
		rep, err := svcs.Metrics.Aggregate(ctx, tenantID, date)
		if err != nil {
			return nil, metrics.DailyReport{}, mapError(err)
		}
		return nil, *rep, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "store_report",
		Description: "Persist a rendered daily report as the artifact for (tenant, date)",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params StoreReportParams) (*sdkmcp.CallToolResult, report.StoredReport, error) {
		tenantID, err := tenantFrom(ctx)
		if err != nil {
			return nil, report.StoredReport{}, err
		}
		stored, err := svcs.Reports.Store(ctx, tenantID, params.Date, params.Content)
		if err != nil {
			return nil, report.StoredReport{}, mapError(err)
		}
		return nil, *stored, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_reports",
		Description: "List the tenant's stored report artifacts, newest first",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params ListReportsParams) (*sdkmcp.CallToolResult, ListReportsResult, error) {
		tenantID, err := tenantFrom(ctx)
		if err != nil {
			return nil, ListReportsResult{}, err
		}
		reports, err := svcs.Reports.List(ctx, tenantID)
		if err != nil {
			return nil, ListReportsResult{}, mapError(err)
		}
		return nil, ListReportsResult{Reports: reports, Count: len(reports)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "clear_tenant",
		Description: "Destroy all collections for the tenant (test/reset utility)",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params ClearTenantParams) (*sdkmcp.CallToolResult, OKResult, error) {
		tenantID, err := tenantFrom(ctx)
		if err != nil {
			return nil, OKResult{}, err
		}
		if err := svcs.Admin.Clear(ctx, tenantID); err != nil {
			return nil, OKResult{}, mapError(err)
		}
		return nil, OKResult{OK: true}, nil
	})
}
