package format

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/wishlane/wishlane-cli/internal/models"
)

func intPtr(n int) *int { return &n }

func TestRequestListEmpty(t *testing.T) {
	out := RequestList(&models.FeatureRequestList{
		Project: models.Project{Name: "Board"},
		Total:   0,
	})
	if out != EmptyListMessage {
		t.Errorf("empty list output = %q, want %q", out, EmptyListMessage)
	}
}

func TestRequestListRendering(t *testing.T) {
	list := &models.FeatureRequestList{
		Project: models.Project{ID: "p1", Name: "Acme Feedback"},
		Total:   12,
		FeatureRequests: []models.FeatureRequest{
			{
				ID:                  "req-1",
				Title:               "Dark mode",
				Status:              models.StatusPlanned,
				Priority:            models.PriorityHigh,
				VoteCount:           42,
				PayingCustomerVotes: intPtr(30),
				FreeVotes:           intPtr(12),
				TotalMRR:            1234.5,
				Description:         "Please add dark mode",
				StatusMessage:       "On the roadmap",
				CreatedAt:           time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC),
			},
		},
	}

	out := RequestList(list)
	for _, want := range []string{
		"Acme Feedback feature requests (1 shown of 12 total)",
		"1. Dark mode",
		"ID: req-1",
		"Status: planned | Priority: high",
		"Votes: 42 (paying: 30, free: 12)",
		"MRR: $1234.50",
		"Description: Please add dark mode",
		"Note: On the roadmap",
		"Created: Mar 9, 2026",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestRequestListMissingSubCounts(t *testing.T) {
	list := &models.FeatureRequestList{
		Project: models.Project{Name: "Board"},
		Total:   1,
		FeatureRequests: []models.FeatureRequest{
			{ID: "req-1", Title: "Thing", VoteCount: 1, CreatedAt: time.Now()},
		},
	}

	out := RequestList(list)
	if !strings.Contains(out, "Votes: 1 (paying: ?, free: ?)") {
		t.Errorf("absent sub-counts should render as ?, got:\n%s", out)
	}
}

func TestRequestListDescriptionTruncation(t *testing.T) {
	long := strings.Repeat("x", 250)
	list := &models.FeatureRequestList{
		Project: models.Project{Name: "Board"},
		Total:   1,
		FeatureRequests: []models.FeatureRequest{
			{ID: "req-1", Title: "Long one", Description: long},
		},
	}

	out := RequestList(list)
	if !strings.Contains(out, strings.Repeat("x", 200)+"...") {
		t.Error("long description should be truncated to 200 chars with ellipsis")
	}
	if strings.Contains(out, strings.Repeat("x", 201)) {
		t.Error("truncated description leaked more than 200 chars")
	}

	// Exactly at the limit: no ellipsis
	list.FeatureRequests[0].Description = strings.Repeat("y", 200)
	out = RequestList(list)
	if strings.Contains(out, "y...") {
		t.Error("200-char description should not get an ellipsis")
	}

	// Multi-byte text straddling the limit must not be split mid-rune
	list.FeatureRequests[0].Description = strings.Repeat("z", 199) + "éé"
	out = RequestList(list)
	if !utf8.ValidString(out) {
		t.Error("truncated multi-byte description produced invalid UTF-8")
	}
	if !strings.Contains(out, strings.Repeat("z", 199)+"é...") {
		t.Error("truncation should count runes, keeping 200 characters plus ellipsis")
	}
}

func sampleStats() *models.Stats {
	return &models.Stats{
		Project:  models.Project{Name: "Acme Feedback"},
		Overview: models.Overview{TotalRequests: 7, TotalVotes: 120, TotalMRR: 8000},
		ByStatus: map[string]models.CategoryStat{
			models.StatusPending:   {Count: 1, TotalMRR: 99.9},
			models.StatusCompleted: {Count: 5, TotalMRR: 1500},
			"archived":             {Count: 1, TotalMRR: 0},
		},
		ByPriority: map[string]models.CategoryStat{
			models.PriorityHigh: {Count: 1, TotalMRR: 5000},
			models.PriorityLow:  {Count: 6, TotalMRR: 3000},
		},
		TopByVotes: []models.FeatureRequest{
			{Title: "Dark mode", Status: models.StatusPending, Priority: models.PriorityHigh, VoteCount: 42},
		},
		TopByMRR: []models.FeatureRequest{
			{Title: "SSO", Status: models.StatusPlanned, Priority: models.PriorityHigh, TotalMRR: 5000},
		},
	}
}

func TestStatsPluralization(t *testing.T) {
	out := Stats(sampleStats())

	if !strings.Contains(out, "pending: 1 request ($99.90 MRR)") {
		t.Errorf("count=1 should render singular, got:\n%s", out)
	}
	if !strings.Contains(out, "completed: 5 requests ($1500.00 MRR)") {
		t.Errorf("count=5 should render plural, got:\n%s", out)
	}
	if !strings.Contains(out, "high: 1 request ($5000.00 MRR)") {
		t.Errorf("priority singular broken, got:\n%s", out)
	}
}

func TestStatsSections(t *testing.T) {
	out := Stats(sampleStats())

	for _, want := range []string{
		"Feature request stats for Acme Feedback",
		"Overview: 7 requests, 120 votes, $8000.00 total MRR",
		"By status:",
		"By priority:",
		"Top 10 by votes:",
		"1. [pending/high] Dark mode — 42 votes",
		"Top 10 by MRR:",
		"1. [planned/high] SSO — $5000.00 MRR",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}

	// Canonical order: pending before completed, unknown categories last
	pending := strings.Index(out, "pending:")
	completed := strings.Index(out, "completed:")
	archived := strings.Index(out, "archived:")
	if !(pending < completed && completed < archived) {
		t.Errorf("status categories out of order:\n%s", out)
	}
}

func TestGroupAnalysis(t *testing.T) {
	out, err := GroupAnalysis(sampleStats(), "priority")
	if err != nil {
		t.Fatalf("GroupAnalysis() error = %v", err)
	}
	for _, want := range []string{
		"Feature requests by priority (Acme Feedback)",
		"high: 1 request, $5000.00 MRR at stake",
		"low: 6 requests, $3000.00 MRR at stake",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}

	if _, err := GroupAnalysis(sampleStats(), "votes"); err == nil {
		t.Error("invalid dimension should fail")
	}
}
