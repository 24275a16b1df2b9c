package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/wishlane/wishlane-cli/internal/api"
	"github.com/wishlane/wishlane-cli/internal/format"
)

// --- list_feature_requests ---

type ListFeatureRequestsInput struct {
	Status    string  `json:"status,omitempty"`     // pending, approved, planned, in_progress, completed, rejected
	Priority  string  `json:"priority,omitempty"`   // low, medium, high
	SortBy    string  `json:"sort_by,omitempty"`    // votes, mrr, newest, oldest
	Search    string  `json:"search,omitempty"`     // keyword search over title and description
	Limit     float64 `json:"limit,omitempty"`      // max results to return
	Offset    float64 `json:"offset,omitempty"`     // pagination offset
	ProjectID string  `json:"project_id,omitempty"` // explicit project; usually auto-detected
}

func handleListFeatureRequests(ctx context.Context, req *mcp.CallToolRequest, input ListFeatureRequestsInput) (*mcp.CallToolResult, any, error) {
	opts := api.ListOptions{
		ProjectID: strings.TrimSpace(input.ProjectID),
		Status:    strings.TrimSpace(input.Status),
		Priority:  strings.TrimSpace(input.Priority),
		SortBy:    strings.TrimSpace(input.SortBy),
		Search:    strings.TrimSpace(input.Search),
		Limit:     int(input.Limit),
		Offset:    int(input.Offset),
	}

	list, err := apiClient.ListFeatureRequests(opts)
	if err != nil {
		return nil, nil, err
	}

	return textResult(format.RequestList(list)), nil, nil
}

// --- get_stats ---

type GetStatsInput struct {
	ProjectID string `json:"project_id,omitempty"` // explicit project; usually auto-detected
}

func handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input GetStatsInput) (*mcp.CallToolResult, any, error) {
	stats, err := apiClient.GetStats(strings.TrimSpace(input.ProjectID))
	if err != nil {
		return nil, nil, err
	}

	return textResult(format.Stats(stats)), nil, nil
}

// --- analyze_feature_requests ---

type AnalyzeInput struct {
	GroupBy   string `json:"group_by,omitempty"`   // status or priority (default: status)
	ProjectID string `json:"project_id,omitempty"` // explicit project; usually auto-detected
}

func handleAnalyzeFeatureRequests(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, any, error) {
	groupBy := strings.TrimSpace(strings.ToLower(input.GroupBy))
	if groupBy == "" {
		groupBy = "status"
	}

	stats, err := apiClient.GetStats(strings.TrimSpace(input.ProjectID))
	if err != nil {
		return nil, nil, err
	}

	text, err := format.GroupAnalysis(stats, groupBy)
	if err != nil {
		return nil, nil, err
	}

	return textResult(text), nil, nil
}

// --- update_feature_request_status ---

type UpdateStatusInput struct {
	ID            string `json:"id"`                       // feature request id (required)
	Status        string `json:"status,omitempty"`         // new status
	Priority      string `json:"priority,omitempty"`       // new priority
	StatusMessage string `json:"status_message,omitempty"` // public note shown to voters
	ProjectID     string `json:"project_id,omitempty"`     // explicit project; usually auto-detected
}

func handleUpdateStatus(ctx context.Context, req *mcp.CallToolRequest, input UpdateStatusInput) (*mcp.CallToolResult, any, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, nil, errors.New("'id' is required: the feature request to update")
	}

	update := api.StatusUpdate{
		Status:        strings.TrimSpace(input.Status),
		Priority:      strings.TrimSpace(input.Priority),
		StatusMessage: strings.TrimSpace(input.StatusMessage),
	}
	if update.Status == "" && update.Priority == "" && update.StatusMessage == "" {
		return nil, nil, errors.New("nothing to update: provide status, priority and/or status_message")
	}

	fr, err := apiClient.UpdateFeatureRequest(id, strings.TrimSpace(input.ProjectID), update)
	if err != nil {
		return nil, nil, err
	}

	return textResult(format.UpdateResult(fr)), nil, nil
}

// guard converts a handler failure into a failure-flagged text result
// at the dispatch boundary, so errors never escape to the transport.
func guard[In any](fn func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, any, error)) func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input In) (*mcp.CallToolResult, any, error) {
		res, out, err := fn(ctx, req, input)
		if err != nil {
			return errorResult(err), nil, nil
		}
		return res, out, nil
	}
}

// registerTools registers all MCP tools with the server using go-sdk.
// The SDK infers each InputSchema from the handler's input struct type.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_feature_requests",
		Description: "List feature requests with optional filters. Supports status/priority filters, keyword search, sorting (votes|mrr|newest|oldest) and offset/limit pagination. 💡 Use sort_by: \"mrr\" to rank by revenue at stake.",
	}, guard(handleListFeatureRequests))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get board-wide stats: totals, per-status and per-priority breakdowns with MRR, plus top 10 requests by votes and by MRR. 💡 Call this first to understand the board.",
	}, guard(handleGetStats))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_feature_requests",
		Description: "Analyze demand grouped by one dimension: group_by (status|priority), default status. Shows request count and total MRR at stake per category.",
	}, guard(handleAnalyzeFeatureRequests))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_feature_request_status",
		Description: "Update a feature request. REQUIRED: id. Set status (pending|approved|planned|in_progress|completed|rejected), priority (low|medium|high) and/or a public status_message shown to voters.",
	}, guard(handleUpdateStatus))
}
