package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/wishlane/wishlane-cli/internal/api"
)

// apiClient holds the API client for tool handlers
var apiClient *api.Client

// SetClient installs the API client used by tool handlers. ServeStdio
// calls this; the `mcp call` CLI command uses it for one-shot dispatch.
func SetClient(client *api.Client) {
	apiClient = client
}

// ServeStdio starts the MCP server using the official go-sdk over stdio
func ServeStdio(client *api.Client, version string) error {
	if client == nil {
		return errors.New("api client is required")
	}
	SetClient(client)

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "wishlane",
			Version: version,
		},
		&mcp.ServerOptions{
			Instructions: `📣 WISHLANE - Feature Request Feedback Board

You are connected to a Wishlane feedback board. Users vote on feature
requests; votes from paying customers carry MRR (monthly recurring
revenue) so you can weigh demand by revenue at stake.

## Tools
- list_feature_requests: browse/filter/search requests
- get_stats: board overview, per-status/per-priority breakdowns, top 10 lists
- analyze_feature_requests: revenue at stake grouped by status or priority
- update_feature_request_status: change status/priority, post a public note

## Projects
One API key can span multiple projects. When a call is ambiguous the
server tries to match a project against your working directory name
automatically. If that fails you'll get the candidate list back - pass
an explicit 'project_id' from it.

## Tips
- Prefer get_stats first to understand the board before listing.
- Use sort_by: "mrr" to prioritize by revenue impact.
- When updating status, include a status_message - it's shown to voters.`,
		},
	)

	registerTools(server)

	return server.Run(context.Background(), &mcp.StdioTransport{})
}

// textResult wraps formatted text in a success result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// errorResult converts a handler failure into a failure-flagged text
// result. This is the only error shape that crosses the tool boundary;
// handler errors never surface as protocol faults.
func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("Error: %s", err.Error())},
		},
		IsError: true,
	}
}
