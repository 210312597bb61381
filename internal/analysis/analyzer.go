package analysis

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/marie/subvention-scroller/internal/linkcheck"
	"github.com/marie/subvention-scroller/internal/models"
	"github.com/marie/subvention-scroller/internal/search"
)

// Options selects the optional (and slow) analysis stages.
type Options struct {
	ValidateLinks bool
	AutoFix       bool
	Timeout       time.Duration
}

// Analyzer derives reports from search results. The zero value is unusable;
// construct with NewAnalyzer.
type Analyzer struct {
	Validator *linkcheck.Validator
	Repairer  *linkcheck.Repairer
}

func NewAnalyzer() *Analyzer {
	v := linkcheck.NewValidator()
	return &Analyzer{Validator: v, Repairer: linkcheck.NewRepairer(v)}
}

// Analyze builds the full report for one search. Validation and auto-fix run
// only when requested; everything else is pure in-memory aggregation.
func (a *Analyzer) Analyze(ctx context.Context, results models.SearchResults, params models.SearchParams, opts Options) *Report {
	all := results.All()

	report := &Report{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Params:      params,
		Totals: Totals{
			French:    len(results.French),
			European:  len(results.European),
			Colombian: len(results.Colombian),
			Total:     len(all),
		},
		Urgency:    urgencyBreakdown(all),
		Funding:    fundingStats(all),
		Geographic: geographicDistribution(all),
		Sources:    sourceDistribution(all),
	}

	if opts.ValidateLinks {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = linkcheck.DefaultTimeout
		}
		report.Validation = a.validateLinks(ctx, results, timeout)

		if opts.AutoFix && report.Validation.BrokenCount > 0 {
			broken := make([]linkcheck.BrokenURL, 0, report.Validation.BrokenCount)
			for _, r := range report.Validation.Broken {
				broken = append(broken, linkcheck.BrokenURL{
					URL: r.URL, Title: r.Title, Source: r.Source, Country: r.Country,
				})
			}
			fixes, summary := a.Repairer.RepairAll(ctx, broken)
			report.FixResults = fixes
			report.FixSummary = &summary
		}
	}

	report.Recommendations = recommendations(report)
	return report
}

func urgencyBreakdown(all []models.Opportunity) UrgencyBreakdown {
	var b UrgencyBreakdown
	total := len(all)

	for _, opp := range all {
		days := opp.DaysUntilDeadline
		summary := OpportunitySummary{
			Title:             opp.Title,
			Source:            opp.Source,
			Deadline:          opp.Deadline,
			DaysUntilDeadline: days,
			Amount:            opp.Amount,
			URL:               opp.URL,
		}
		switch {
		case days <= 7:
			b.Critical.Count++
			b.CriticalOpportunities = append(b.CriticalOpportunities, summary)
		case days <= 30:
			b.High.Count++
			b.HighOpportunities = append(b.HighOpportunities, summary)
		case days <= 90:
			b.Medium.Count++
		default:
			b.Later.Count++
		}
	}

	if total > 0 {
		b.Critical.Percentage = percent(b.Critical.Count, total)
		b.High.Percentage = percent(b.High.Count, total)
		b.Medium.Percentage = percent(b.Medium.Count, total)
		b.Later.Percentage = percent(b.Later.Count, total)
	}
	return b
}

func fundingStats(all []models.Opportunity) FundingStats {
	stats := FundingStats{Distribution: make(map[string]int)}

	for _, opp := range all {
		amount, ok := parseAmount(opp.AmountMax)
		if !ok {
			continue
		}
		if stats.CountWithAmounts == 0 || amount > stats.MaxEUR {
			stats.MaxEUR = amount
		}
		if stats.CountWithAmounts == 0 || amount < stats.MinEUR {
			stats.MinEUR = amount
		}
		stats.CountWithAmounts++
		stats.TotalEUR += amount
		stats.Distribution[amountBucket(amount)]++
	}

	if stats.CountWithAmounts > 0 {
		stats.AverageEUR = float64(stats.TotalEUR) / float64(stats.CountWithAmounts)
	}
	return stats
}

func geographicDistribution(all []models.Opportunity) map[string]int {
	dist := make(map[string]int)
	for _, opp := range all {
		perimeter := opp.Perimeter
		if perimeter == "" {
			perimeter = "Unspecified"
		}
		dist[perimeter]++
	}
	return dist
}

func sourceDistribution(all []models.Opportunity) SourceDistribution {
	bySource := make(map[string]int)
	for _, opp := range all {
		source := opp.Source
		if source == "" {
			source = "Unknown"
		}
		bySource[source]++
	}
	return SourceDistribution{BySource: bySource, Diversity: len(bySource)}
}

// validateLinks checks the deduplicated URL set sequentially, in result
// order, and partitions outcomes.
func (a *Analyzer) validateLinks(ctx context.Context, results models.SearchResults, timeout time.Duration) *ValidationReport {
	urls := search.CollectURLs(results)
	report := &ValidationReport{ErrorsByType: make(map[string]int)}

	var (
		working         []linkcheck.ValidationResult
		totalResponseMs float64
		withFunding     int
	)

	for i, entry := range urls {
		log.Printf("Validating URL %d/%d: %s", i+1, len(urls), entry.URL)
		result := a.Validator.Validate(ctx, entry.URL, timeout)
		result.Title = entry.Title
		result.Source = entry.Source
		result.Country = entry.Country
		report.TotalChecked++

		if result.Working {
			working = append(working, result)
			totalResponseMs += result.ResponseTimeMs
			if result.ContainsFundingKeywords {
				withFunding++
			}
			continue
		}
		report.Broken = append(report.Broken, result)
		report.ErrorsByType[result.Status]++
	}

	report.WorkingCount = len(working)
	report.BrokenCount = len(report.Broken)
	if report.TotalChecked > 0 {
		report.WorkingRate = percent(report.WorkingCount, report.TotalChecked)
	}

	if len(working) > 0 {
		report.Quality.AvgResponseMs = totalResponseMs / float64(len(working))
		report.Quality.FastestResponseMs = working[0].ResponseTimeMs
		report.Quality.SlowestResponseMs = working[0].ResponseTimeMs
		for _, r := range working[1:] {
			if r.ResponseTimeMs < report.Quality.FastestResponseMs {
				report.Quality.FastestResponseMs = r.ResponseTimeMs
			}
			if r.ResponseTimeMs > report.Quality.SlowestResponseMs {
				report.Quality.SlowestResponseMs = r.ResponseTimeMs
			}
		}
		report.Quality.FundingContentRate = percent(withFunding, len(working))
	}
	return report
}

func recommendations(r *Report) []string {
	var recs []string

	if n := r.Urgency.Critical.Count; n > 0 {
		recs = append(recs, fmt.Sprintf("IMMEDIATE ACTION: %d opportunities close within 7 days", n))
	}
	if n := r.Urgency.High.Count; n > 0 {
		recs = append(recs, fmt.Sprintf("HIGH PRIORITY: %d opportunities close within 30 days", n))
	}
	if r.Funding.AverageEUR > 50000 {
		recs = append(recs, fmt.Sprintf("High-value landscape: average maximum funding is €%.0f", r.Funding.AverageEUR))
	}
	if r.Totals.European > r.Totals.French {
		recs = append(recs, "European programs dominate these results; consider cross-border partnerships")
	} else if r.Totals.French > 0 {
		recs = append(recs, "French subventions dominate these results; regional applications are the fastest route")
	}
	if region, count := topRegion(r.Geographic); count > 1 {
		recs = append(recs, fmt.Sprintf("Most opportunities target %s (%d listings)", region, count))
	}

	if v := r.Validation; v != nil {
		if v.WorkingRate < 70 {
			recs = append(recs, fmt.Sprintf("Link quality needs improvement: only %.1f%% of URLs are working", v.WorkingRate))
		}
		if v.BrokenCount > 0 {
			recs = append(recs, fmt.Sprintf("Update the listing database: %d broken URLs found", v.BrokenCount))
			if status, count := topError(v.ErrorsByType); count > 0 {
				recs = append(recs, fmt.Sprintf("Most common link error: %s (%d URLs)", status, count))
			}
		}
	}
	return recs
}

func topRegion(dist map[string]int) (string, int) {
	best, bestCount := "", 0
	for region, count := range dist {
		if count > bestCount || (count == bestCount && region < best) {
			best, bestCount = region, count
		}
	}
	return best, bestCount
}

func topError(errs map[string]int) (string, int) {
	best, bestCount := "", 0
	for status, count := range errs {
		if count > bestCount || (count == bestCount && status < best) {
			best, bestCount = status, count
		}
	}
	return best, bestCount
}

func percent(part, total int) float64 {
	return float64(part) / float64(total) * 100
}
