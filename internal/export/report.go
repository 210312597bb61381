package export

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/marie/subvention-scroller/internal/analysis"
)

// WriteReport stores an analysis report as JSON with a human-readable .txt
// twin sharing the same stem, under the analysis export directory. It
// returns the JSON path.
func WriteReport(report *analysis.Report, name, baseDir string) (string, error) {
	base, err := EnsureDirs(baseDir)
	if err != nil {
		return "", err
	}
	stem := filepath.Join(base, AnalysisDir, timestampedName(name, time.Now()))

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	jsonPath := stem + ".json"
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return "", err
	}
	if err := os.WriteFile(stem+".txt", []byte(renderReport(report)), 0o644); err != nil {
		return "", err
	}

	log.Printf("Report written to %s", jsonPath)
	return jsonPath, nil
}

func renderReport(r *analysis.Report) string {
	var b strings.Builder
	line := strings.Repeat("=", 60)

	fmt.Fprintf(&b, "%s\nFUNDING OPPORTUNITY REPORT\nGenerated: %s\n%s\n\n", line, r.GeneratedAt, line)

	fmt.Fprintf(&b, "TOTALS\n")
	fmt.Fprintf(&b, "  French:    %d\n", r.Totals.French)
	fmt.Fprintf(&b, "  European:  %d\n", r.Totals.European)
	fmt.Fprintf(&b, "  Colombian: %d\n", r.Totals.Colombian)
	fmt.Fprintf(&b, "  Total:     %d\n\n", r.Totals.Total)

	fmt.Fprintf(&b, "DEADLINES\n")
	fmt.Fprintf(&b, "  Within 7 days:  %d (%.1f%%)\n", r.Urgency.Critical.Count, r.Urgency.Critical.Percentage)
	fmt.Fprintf(&b, "  Within 30 days: %d (%.1f%%)\n", r.Urgency.High.Count, r.Urgency.High.Percentage)
	fmt.Fprintf(&b, "  Within 90 days: %d (%.1f%%)\n", r.Urgency.Medium.Count, r.Urgency.Medium.Percentage)
	fmt.Fprintf(&b, "  Later/unknown:  %d (%.1f%%)\n\n", r.Urgency.Later.Count, r.Urgency.Later.Percentage)

	for _, opp := range r.Urgency.CriticalOpportunities {
		fmt.Fprintf(&b, "  ! %s (%s) closes in %d days\n", opp.Title, opp.Source, opp.DaysUntilDeadline)
	}
	if len(r.Urgency.CriticalOpportunities) > 0 {
		b.WriteString("\n")
	}

	if r.Funding.CountWithAmounts > 0 {
		fmt.Fprintf(&b, "FUNDING (from %d opportunities with machine-readable amounts)\n", r.Funding.CountWithAmounts)
		fmt.Fprintf(&b, "  Total:   €%d\n", r.Funding.TotalEUR)
		fmt.Fprintf(&b, "  Average: €%.0f\n", r.Funding.AverageEUR)
		fmt.Fprintf(&b, "  Range:   €%d - €%d\n\n", r.Funding.MinEUR, r.Funding.MaxEUR)
	}

	if v := r.Validation; v != nil {
		fmt.Fprintf(&b, "LINK HEALTH\n")
		fmt.Fprintf(&b, "  Checked: %d\n", v.TotalChecked)
		fmt.Fprintf(&b, "  Working: %d (%.1f%%)\n", v.WorkingCount, v.WorkingRate)
		fmt.Fprintf(&b, "  Broken:  %d\n", v.BrokenCount)
		for status, count := range v.ErrorsByType {
			fmt.Fprintf(&b, "    %s: %d\n", status, count)
		}
		b.WriteString("\n")
	}

	if fs := r.FixSummary; fs != nil {
		fmt.Fprintf(&b, "URL REPAIR\n")
		fmt.Fprintf(&b, "  Broken:          %d\n", fs.TotalBroken)
		fmt.Fprintf(&b, "  Fixed:           %d\n", fs.Fixed)
		fmt.Fprintf(&b, "  Already working: %d\n", fs.AlreadyWorking)
		fmt.Fprintf(&b, "  Not fixed:       %d\n", fs.NotFixed)
		fmt.Fprintf(&b, "  Success rate:    %.1f%%\n\n", fs.SuccessRate)
	}

	if len(r.Recommendations) > 0 {
		fmt.Fprintf(&b, "RECOMMENDATIONS\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&b, "  - %s\n", rec)
		}
	}
	return b.String()
}
