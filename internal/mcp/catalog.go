package mcp

// Static tool catalog for the `wishlane mcp tools` CLI command. The
// live server infers schemas from the typed input structs in tools.go;
// this list is the documented contract and must stay in sync.

type toolDef struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var (
	statusEnum   = []string{"pending", "approved", "planned", "in_progress", "completed", "rejected"}
	priorityEnum = []string{"low", "medium", "high"}
	sortByEnum   = []string{"votes", "mrr", "newest", "oldest"}
)

func projectIDProp() map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": "Explicit project ID. Usually omitted: the server auto-detects the project from your working directory name."}
}

func ToolDefinitions() []toolDef {
	return []toolDef{
		{
			Name:        "list_feature_requests",
			Description: "List feature requests with optional filters. Supports status/priority filters, keyword search, sorting (votes|mrr|newest|oldest) and offset/limit pagination. 💡 Use sort_by: \"mrr\" to rank by revenue at stake.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"status":     map[string]interface{}{"type": "string", "description": "Filter by status", "enum": statusEnum},
					"priority":   map[string]interface{}{"type": "string", "description": "Filter by priority", "enum": priorityEnum},
					"sort_by":    map[string]interface{}{"type": "string", "description": "Sort order", "enum": sortByEnum},
					"search":     map[string]interface{}{"type": "string", "description": "Keyword search over title and description"},
					"limit":      map[string]interface{}{"type": "number", "description": "Max results to return"},
					"offset":     map[string]interface{}{"type": "number", "description": "Pagination offset"},
					"project_id": projectIDProp(),
				},
			},
		},
		{
			Name:        "get_stats",
			Description: "Get board-wide stats: totals, per-status and per-priority breakdowns with MRR, plus top 10 requests by votes and by MRR. 💡 Call this first to understand the board.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"project_id": projectIDProp(),
				},
			},
		},
		{
			Name:        "analyze_feature_requests",
			Description: "Analyze demand grouped by one dimension: group_by (status|priority), default status. Shows request count and total MRR at stake per category.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"group_by":   map[string]interface{}{"type": "string", "description": "Aggregation dimension (default: status)", "enum": []string{"status", "priority"}},
					"project_id": projectIDProp(),
				},
			},
		},
		{
			Name:        "update_feature_request_status",
			Description: "Update a feature request. REQUIRED: id. Set status (pending|approved|planned|in_progress|completed|rejected), priority (low|medium|high) and/or a public status_message shown to voters.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id":             map[string]interface{}{"type": "string", "description": "Feature request ID"},
					"status":         map[string]interface{}{"type": "string", "description": "New status", "enum": statusEnum},
					"priority":       map[string]interface{}{"type": "string", "description": "New priority", "enum": priorityEnum},
					"status_message": map[string]interface{}{"type": "string", "description": "Public note shown to voters"},
					"project_id":     projectIDProp(),
				},
				"required": []string{"id"},
			},
		},
	}
}
