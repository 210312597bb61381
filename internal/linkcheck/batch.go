package linkcheck

import (
	"context"
	"fmt"
	"log"
	"sort"
)

// BrokenURL is one entry queued for a repair pass, carrying the descriptive
// metadata of the first opportunity that referenced the URL.
type BrokenURL struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Source  string `json:"source"`
	Country string `json:"country,omitempty"`
}

// IssueCount is one ranked entry of the common-issue breakdown.
type IssueCount struct {
	Issue      string `json:"issue"`
	Count      int    `json:"count"`
	Percentage string `json:"percentage"`
}

// FixSummary aggregates the outcome of one batch repair pass.
type FixSummary struct {
	TotalBroken     int          `json:"total_broken_urls"`
	Fixed           int          `json:"successfully_fixed"`
	AlreadyWorking  int          `json:"already_working"`
	NotFixed        int          `json:"not_fixed"`
	SuccessRate     float64      `json:"fix_success_rate"`
	CommonIssues    []IssueCount `json:"common_issues"`
	Recommendations []string     `json:"recommendations"`
}

// RepairAll repairs each broken URL independently and sequentially, in input
// order, and derives the aggregate summary.
func (r *Repairer) RepairAll(ctx context.Context, broken []BrokenURL) ([]FixResult, FixSummary) {
	results := make([]FixResult, 0, len(broken))
	summary := FixSummary{TotalBroken: len(broken)}

	for i, entry := range broken {
		log.Printf("Fixing URL %d/%d: %s", i+1, len(broken), truncate(entry.Title, 50))
		result := r.Repair(ctx, entry.URL, entry.Title, entry.Source)
		results = append(results, result)

		switch result.FinalStatus {
		case StatusFixed:
			summary.Fixed++
		case StatusAlreadyWorking:
			summary.AlreadyWorking++
		default:
			summary.NotFixed++
		}
	}

	if len(broken) > 0 {
		summary.SuccessRate = float64(summary.Fixed) / float64(len(broken)) * 100
	}

	issueCounts := map[string]int{}
	for _, result := range results {
		for _, issue := range result.IssuesFound {
			issueCounts[issue]++
		}
	}
	summary.CommonIssues = rankIssues(issueCounts, len(broken), 5)
	summary.Recommendations = fixRecommendations(summary, issueCounts)

	return results, summary
}

// rankIssues orders issue categories by frequency, most common first, capped
// at top entries. Ties break alphabetically so the ranking is deterministic.
func rankIssues(counts map[string]int, total, top int) []IssueCount {
	ranked := make([]IssueCount, 0, len(counts))
	for issue, count := range counts {
		pct := "0%"
		if total > 0 {
			pct = fmt.Sprintf("%.1f%%", float64(count)/float64(total)*100)
		}
		ranked = append(ranked, IssueCount{Issue: issue, Count: count, Percentage: pct})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Issue < ranked[j].Issue
	})
	if len(ranked) > top {
		ranked = ranked[:top]
	}
	return ranked
}

func fixRecommendations(summary FixSummary, issueCounts map[string]int) []string {
	recs := []string{}

	if summary.Fixed > 0 {
		recs = append(recs, fmt.Sprintf("Successfully fixed %d URLs - update database with new working URLs", summary.Fixed))
	}
	if summary.NotFixed > 0 {
		recs = append(recs, "Consider removing permanently broken URLs or finding alternative sources")
	}
	if summary.TotalBroken > 0 && issueCounts["Page no longer exists (404)"]*2 > summary.TotalBroken {
		recs = append(recs, "Many pages no longer exist - website restructuring likely occurred")
	}
	if issueCounts["Server unreachable"] > 0 {
		recs = append(recs, "Some servers are unreachable - check if organizations still exist")
	}

	return recs
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
