package export

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/marie/subvention-scroller/internal/linkcheck"
)

// fixLog is the persisted shape of one repair session.
type fixLog struct {
	GeneratedAt string                `json:"generated_at"`
	Summary     linkcheck.FixSummary  `json:"summary"`
	Results     []linkcheck.FixResult `json:"results"`
}

// WriteFixLog stores a repair session as JSON with a .txt twin under the
// fixed_logs export directory and returns the JSON path.
func WriteFixLog(results []linkcheck.FixResult, summary linkcheck.FixSummary, name, baseDir string) (string, error) {
	base, err := EnsureDirs(baseDir)
	if err != nil {
		return "", err
	}
	stem := filepath.Join(base, FixLogDir, timestampedName(name, time.Now()))

	payload := fixLog{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Summary:     summary,
		Results:     results,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding fix log: %w", err)
	}
	jsonPath := stem + ".json"
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return "", err
	}
	if err := os.WriteFile(stem+".txt", []byte(renderFixLog(payload)), 0o644); err != nil {
		return "", err
	}

	log.Printf("Fix log written to %s", jsonPath)
	return jsonPath, nil
}

func renderFixLog(l fixLog) string {
	var b strings.Builder
	line := strings.Repeat("=", 60)

	fmt.Fprintf(&b, "%s\nURL REPAIR LOG\nGenerated: %s\n%s\n\n", line, l.GeneratedAt, line)
	fmt.Fprintf(&b, "Broken URLs:     %d\n", l.Summary.TotalBroken)
	fmt.Fprintf(&b, "Fixed:           %d\n", l.Summary.Fixed)
	fmt.Fprintf(&b, "Already working: %d\n", l.Summary.AlreadyWorking)
	fmt.Fprintf(&b, "Not fixed:       %d\n", l.Summary.NotFixed)
	fmt.Fprintf(&b, "Success rate:    %.1f%%\n\n", l.Summary.SuccessRate)

	if len(l.Summary.CommonIssues) > 0 {
		b.WriteString("COMMON ISSUES\n")
		for _, issue := range l.Summary.CommonIssues {
			fmt.Fprintf(&b, "  %s: %d (%s)\n", issue.Issue, issue.Count, issue.Percentage)
		}
		b.WriteString("\n")
	}

	for _, r := range l.Results {
		fmt.Fprintf(&b, "[%s] %s\n", r.FinalStatus, r.OriginalURL)
		if r.WorkingURL != "" && r.WorkingURL != r.OriginalURL {
			fmt.Fprintf(&b, "  -> %s (%s)\n", r.WorkingURL, r.FixStrategy)
		}
		for _, issue := range r.IssuesFound {
			fmt.Fprintf(&b, "  issue: %s\n", issue)
		}
	}

	if len(l.Summary.Recommendations) > 0 {
		b.WriteString("\nRECOMMENDATIONS\n")
		for _, rec := range l.Summary.Recommendations {
			fmt.Fprintf(&b, "  - %s\n", rec)
		}
	}
	return b.String()
}
