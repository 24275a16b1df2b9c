// Package format renders API responses as human-readable text for
// tool results and CLI output. All functions are pure.
package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wishlane/wishlane-cli/internal/models"
)

const descriptionExcerptLen = 200

// EmptyListMessage is returned verbatim when a list call matches
// nothing.
const EmptyListMessage = "No feature requests found."

// canonical rendering order for the aggregate maps; unknown categories
// follow alphabetically so output stays deterministic.
var (
	statusOrder   = []string{models.StatusPending, models.StatusApproved, models.StatusPlanned, models.StatusInProgress, models.StatusCompleted, models.StatusRejected}
	priorityOrder = []string{models.PriorityHigh, models.PriorityMedium, models.PriorityLow}
)

func money(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

func requests(count int) string {
	if count == 1 {
		return "1 request"
	}
	return fmt.Sprintf("%d requests", count)
}

func excerpt(s string) string {
	// Truncate on runes, not bytes, so multi-byte text is never split
	// mid-character.
	r := []rune(s)
	if len(r) <= descriptionExcerptLen {
		return s
	}
	return string(r[:descriptionExcerptLen]) + "..."
}

func subCount(n *int) string {
	if n == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *n)
}

// RequestList renders the list endpoint response.
func RequestList(list *models.FeatureRequestList) string {
	if len(list.FeatureRequests) == 0 {
		return EmptyListMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s feature requests (%d shown of %d total)\n",
		list.Project.Name, len(list.FeatureRequests), list.Total)

	for i, fr := range list.FeatureRequests {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, fr.Title)
		fmt.Fprintf(&b, "   ID: %s\n", fr.ID)
		fmt.Fprintf(&b, "   Status: %s | Priority: %s\n", fr.Status, fr.Priority)
		fmt.Fprintf(&b, "   Votes: %d (paying: %s, free: %s)\n",
			fr.VoteCount, subCount(fr.PayingCustomerVotes), subCount(fr.FreeVotes))
		fmt.Fprintf(&b, "   MRR: %s\n", money(fr.TotalMRR))
		if fr.Description != "" {
			fmt.Fprintf(&b, "   Description: %s\n", excerpt(fr.Description))
		}
		if fr.StatusMessage != "" {
			fmt.Fprintf(&b, "   Note: %s\n", fr.StatusMessage)
		}
		fmt.Fprintf(&b, "   Created: %s\n", fr.CreatedAt.Format("Jan 2, 2006"))
	}

	return b.String()
}

// orderedCategories returns canonical entries first, then anything the
// backend added that we don't know about, alphabetically.
func orderedCategories(stats map[string]models.CategoryStat, canonical []string) []string {
	var keys []string
	seen := map[string]bool{}
	for _, k := range canonical {
		if _, ok := stats[k]; ok {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	var extra []string
	for k := range stats {
		if !seen[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

func writeBreakdown(b *strings.Builder, title string, stats map[string]models.CategoryStat, canonical []string) {
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, k := range orderedCategories(stats, canonical) {
		s := stats[k]
		fmt.Fprintf(b, "  %s: %s (%s MRR)\n", k, requests(s.Count), money(s.TotalMRR))
	}
}

func writeTopList(b *strings.Builder, title string, items []models.FeatureRequest, metric func(models.FeatureRequest) string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for i, fr := range items {
		fmt.Fprintf(b, "  %d. [%s/%s] %s — %s\n", i+1, fr.Status, fr.Priority, fr.Title, metric(fr))
	}
}

// Stats renders the stats endpoint response.
func Stats(s *models.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Feature request stats for %s\n", s.Project.Name)
	fmt.Fprintf(&b, "\nOverview: %s, %d votes, %s total MRR\n",
		requests(s.Overview.TotalRequests), s.Overview.TotalVotes, money(s.Overview.TotalMRR))

	writeBreakdown(&b, "By status", s.ByStatus, statusOrder)
	writeBreakdown(&b, "By priority", s.ByPriority, priorityOrder)

	writeTopList(&b, "Top 10 by votes", s.TopByVotes, func(fr models.FeatureRequest) string {
		if fr.VoteCount == 1 {
			return "1 vote"
		}
		return fmt.Sprintf("%d votes", fr.VoteCount)
	})
	writeTopList(&b, "Top 10 by MRR", s.TopByMRR, func(fr models.FeatureRequest) string {
		return money(fr.TotalMRR) + " MRR"
	})

	return b.String()
}

// GroupAnalysis renders one aggregate dimension of the stats snapshot.
// dimension must be "status" or "priority".
func GroupAnalysis(s *models.Stats, dimension string) (string, error) {
	var (
		stats     map[string]models.CategoryStat
		canonical []string
	)
	switch dimension {
	case "status":
		stats = s.ByStatus
		canonical = statusOrder
	case "priority":
		stats = s.ByPriority
		canonical = priorityOrder
	default:
		return "", fmt.Errorf("invalid group_by '%s': must be 'status' or 'priority'", dimension)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Feature requests by %s (%s)\n\n", dimension, s.Project.Name)
	for _, k := range orderedCategories(stats, canonical) {
		st := stats[k]
		fmt.Fprintf(&b, "%s: %s, %s MRR at stake\n", k, requests(st.Count), money(st.TotalMRR))
	}
	return b.String(), nil
}

// UpdateResult renders the record returned by a successful PATCH.
func UpdateResult(fr *models.FeatureRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Updated feature request: %s\n", fr.Title)
	fmt.Fprintf(&b, "ID: %s\n", fr.ID)
	fmt.Fprintf(&b, "Status: %s | Priority: %s\n", fr.Status, fr.Priority)
	if fr.StatusMessage != "" {
		fmt.Fprintf(&b, "Note: %s\n", fr.StatusMessage)
	}
	return b.String()
}
