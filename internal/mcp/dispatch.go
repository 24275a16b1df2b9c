package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// rawHandler takes an untyped argument mapping, as received from the
// transport or the `mcp call` CLI command.
type rawHandler func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error)

// adapt normalizes an argument mapping into a handler's typed input
// via a JSON round-trip, coercing primitives the same way the stdio
// transport does.
func adapt[In any](fn func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, any, error)) rawHandler {
	return func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
		var input In
		if args != nil {
			raw, err := json.Marshal(args)
			if err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}
			if err := json.Unmarshal(raw, &input); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}
		}
		res, _, err := fn(ctx, nil, input)
		return res, err
	}
}

var dispatchTable = map[string]rawHandler{
	"list_feature_requests":         adapt(handleListFeatureRequests),
	"get_stats":                     adapt(handleGetStats),
	"analyze_feature_requests":      adapt(handleAnalyzeFeatureRequests),
	"update_feature_request_status": adapt(handleUpdateStatus),
}

// Dispatch routes a tool invocation by name and never lets an error
// escape: unknown tools and handler failures both come back as a
// failure-flagged text result.
func Dispatch(ctx context.Context, name string, args map[string]interface{}) *mcp.CallToolResult {
	handler, ok := dispatchTable[name]
	if !ok {
		return errorResult(fmt.Errorf("unknown tool '%s'", name))
	}

	res, err := handler(ctx, args)
	if err != nil {
		return errorResult(err)
	}
	return res
}
