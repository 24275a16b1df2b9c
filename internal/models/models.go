package models

import "time"

// Feature request lifecycle statuses as the backend reports them.
const (
	StatusPending    = "pending"
	StatusApproved   = "approved"
	StatusPlanned    = "planned"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusRejected   = "rejected"
)

// Priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Project represents a feedback board scoped to one API key.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FeatureRequest is a remote-owned record. It is never mutated locally;
// updates go through the PATCH endpoint and the response replaces it.
type FeatureRequest struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	VoteCount int    `json:"vote_count"`
	// Vote sub-counts are optional on older boards; nil means unknown.
	PayingCustomerVotes *int      `json:"paying_customer_votes,omitempty"`
	FreeVotes           *int      `json:"free_votes,omitempty"`
	TotalMRR            float64   `json:"total_mrr"`
	Description         string    `json:"description,omitempty"`
	StatusMessage       string    `json:"status_message,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// FeatureRequestList is the list endpoint envelope.
type FeatureRequestList struct {
	FeatureRequests []FeatureRequest `json:"feature_requests"`
	Total           int              `json:"total"`
	Project         Project          `json:"project"`
}

// CategoryStat aggregates one status or priority bucket.
type CategoryStat struct {
	Count    int     `json:"count"`
	TotalMRR float64 `json:"total_mrr"`
}

// Overview holds board-wide totals.
type Overview struct {
	TotalRequests int     `json:"total_requests"`
	TotalVotes    int     `json:"total_votes"`
	TotalMRR      float64 `json:"total_mrr"`
}

// Stats is the stats endpoint envelope.
type Stats struct {
	Project    Project                 `json:"project"`
	Overview   Overview                `json:"overview"`
	ByStatus   map[string]CategoryStat `json:"by_status"`
	ByPriority map[string]CategoryStat `json:"by_priority"`
	TopByVotes []FeatureRequest        `json:"top_by_votes"`
	TopByMRR   []FeatureRequest        `json:"top_by_mrr"`
}
