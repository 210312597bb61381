package analysis

import (
	"github.com/marie/subvention-scroller/internal/linkcheck"
	"github.com/marie/subvention-scroller/internal/models"
)

// Report is the full analysis of one search's results. Sections that were
// not requested (validation, auto-fix) stay nil.
type Report struct {
	GeneratedAt string              `json:"generated_at"`
	Params      models.SearchParams `json:"search_params"`

	Totals     Totals             `json:"totals"`
	Urgency    UrgencyBreakdown   `json:"urgency"`
	Funding    FundingStats       `json:"funding"`
	Geographic map[string]int     `json:"geographic_distribution"`
	Sources    SourceDistribution `json:"sources"`

	Validation *ValidationReport     `json:"validation,omitempty"`
	FixResults []linkcheck.FixResult `json:"fix_results,omitempty"`
	FixSummary *linkcheck.FixSummary `json:"fix_summary,omitempty"`

	Recommendations []string `json:"recommendations"`
}

// Totals counts opportunities per origin.
type Totals struct {
	French    int `json:"french"`
	European  int `json:"european"`
	Colombian int `json:"colombian"`
	Total     int `json:"total"`
}

// UrgencyBand is one deadline band of the urgency breakdown.
type UrgencyBand struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// UrgencyBreakdown partitions results by days until deadline. Opportunities
// without a parseable deadline land in the Later band.
type UrgencyBreakdown struct {
	Critical UrgencyBand `json:"within_7_days"`
	High     UrgencyBand `json:"within_30_days"`
	Medium   UrgencyBand `json:"within_90_days"`
	Later    UrgencyBand `json:"later"`

	CriticalOpportunities []OpportunitySummary `json:"critical_opportunities,omitempty"`
	HighOpportunities     []OpportunitySummary `json:"high_priority_opportunities,omitempty"`
}

// OpportunitySummary is the short listing form used inside reports.
type OpportunitySummary struct {
	Title             string `json:"title"`
	Source            string `json:"source"`
	Deadline          string `json:"deadline"`
	DaysUntilDeadline int    `json:"days_until_deadline"`
	Amount            string `json:"amount,omitempty"`
	URL               string `json:"url,omitempty"`
}

// FundingStats summarizes the machine-readable funding amounts. Entries
// without a parseable amount are excluded from every figure.
type FundingStats struct {
	CountWithAmounts int            `json:"opportunities_with_amounts"`
	TotalEUR         int            `json:"total_eur"`
	AverageEUR       float64        `json:"average_eur"`
	MaxEUR           int            `json:"max_eur"`
	MinEUR           int            `json:"min_eur"`
	Distribution     map[string]int `json:"distribution"`
}

// SourceDistribution counts results per named source.
type SourceDistribution struct {
	BySource  map[string]int `json:"by_source"`
	Diversity int            `json:"distinct_sources"`
}

// ValidationReport is the link-health section of a report.
type ValidationReport struct {
	TotalChecked int                          `json:"total_checked"`
	WorkingCount int                          `json:"working"`
	BrokenCount  int                          `json:"broken"`
	WorkingRate  float64                      `json:"working_rate"`
	ErrorsByType map[string]int               `json:"errors_by_type"`
	Broken       []linkcheck.ValidationResult `json:"broken_urls,omitempty"`
	Quality      QualityMetrics               `json:"quality"`
}

// QualityMetrics aggregates response behavior of the working URLs.
type QualityMetrics struct {
	AvgResponseMs      float64 `json:"avg_response_ms"`
	FastestResponseMs  float64 `json:"fastest_response_ms"`
	SlowestResponseMs  float64 `json:"slowest_response_ms"`
	FundingContentRate float64 `json:"funding_content_rate"`
}
