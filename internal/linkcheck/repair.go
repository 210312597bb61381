package linkcheck

import (
	"context"
	"net/url"
	"strings"
	"time"
)

// Final statuses of a repair run.
const (
	StatusAlreadyWorking = "Already Working"
	StatusFixed          = "Fixed"
	StatusNotFixed       = "Not Fixed"
)

// fixStrategy is one named, total URL rewrite. Transforms never fail; a
// strategy that does not apply returns its input unchanged and is skipped.
type fixStrategy struct {
	name  string
	apply func(string) string
}

var fixStrategies = []fixStrategy{
	{"Add missing protocol", func(u string) string {
		if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			return "https://" + u
		}
		return u
	}},
	{"Fix common typos", func(u string) string {
		u = strings.ReplaceAll(u, "htpp://", "http://")
		u = strings.ReplaceAll(u, "htpps://", "https://")
		return strings.ReplaceAll(u, "www.www.", "www.")
	}},
	{"Try HTTPS instead of HTTP", func(u string) string {
		if strings.HasPrefix(u, "http://") {
			return "https://" + strings.TrimPrefix(u, "http://")
		}
		return u
	}},
	{"Try HTTP instead of HTTPS", func(u string) string {
		if strings.HasPrefix(u, "https://") {
			return "http://" + strings.TrimPrefix(u, "https://")
		}
		return u
	}},
	{"Remove duplicate slashes", func(u string) string {
		u = strings.ReplaceAll(u, "////", "//")
		return strings.ReplaceAll(u, "///", "//")
	}},
	{"Remove URL parameters", func(u string) string {
		if i := strings.Index(u, "?"); i >= 0 {
			return u[:i]
		}
		return u
	}},
	{"Try without www", func(u string) string {
		return strings.ReplaceAll(u, "www.", "")
	}},
	{"Try with www", func(u string) string {
		if strings.Contains(u, "://") && !strings.Contains(u, "://www.") {
			return strings.Replace(u, "://", "://www.", 1)
		}
		return u
	}},
	{"Remove trailing slash", func(u string) string {
		return strings.TrimRight(u, "/")
	}},
	{"Add trailing slash", func(u string) string {
		if !strings.HasSuffix(u, "/") && !strings.Contains(u, "?") && !strings.Contains(u, "#") {
			return u + "/"
		}
		return u
	}},
}

// FixAttempt records one candidate URL tried during a repair run.
type FixAttempt struct {
	Strategy       string  `json:"strategy"`
	URL            string  `json:"url"`
	Status         string  `json:"status"`
	Working        bool    `json:"working"`
	ResponseTimeMs float64 `json:"response_time_ms,omitempty"`
	PageTitle      string  `json:"page_title,omitempty"`
}

// FixResult aggregates every attempt made for one broken URL. Immutable once
// Repair returns.
type FixResult struct {
	OriginalURL string       `json:"original_url"`
	Title       string       `json:"title"`
	Source      string       `json:"source"`
	Attempts    []FixAttempt `json:"fix_attempts"`
	FinalStatus string       `json:"final_status"`
	WorkingURL  string       `json:"working_url,omitempty"`
	FixStrategy string       `json:"fix_strategy,omitempty"`
	IssuesFound []string     `json:"issues_found"`
}

func (r *FixResult) attempted(candidate string) bool {
	for _, a := range r.Attempts {
		if a.URL == candidate {
			return true
		}
	}
	return false
}

// Repairer drives the ordered repair strategies over broken URLs, validating
// each candidate with a short timeout and stopping at the first success.
type Repairer struct {
	Validator *Validator
	Timeout   time.Duration
}

// NewRepairer returns a Repairer around the given validator with the standard
// 5 second per-candidate timeout.
func NewRepairer(v *Validator) *Repairer {
	return &Repairer{Validator: v, Timeout: 5 * time.Second}
}

// Repair tries to recover a working URL from originalURL. It validates the
// original first, then each generic strategy in order, then the
// domain-specific substitutions, and never validates the same candidate
// string twice within one run.
func (r *Repairer) Repair(ctx context.Context, originalURL, title, source string) FixResult {
	result := FixResult{
		OriginalURL: originalURL,
		Title:       title,
		Source:      source,
		FinalStatus: StatusNotFixed,
		IssuesFound: []string{},
	}

	if originalURL == "" {
		result.IssuesFound = append(result.IssuesFound, "URL is empty")
		return result
	}

	original := r.Validator.Validate(ctx, originalURL, r.Timeout)
	result.Attempts = append(result.Attempts, FixAttempt{
		Strategy:       "Original URL",
		URL:            originalURL,
		Status:         original.Status,
		Working:        original.Working,
		ResponseTimeMs: original.ResponseTimeMs,
		PageTitle:      original.PageTitle,
	})
	if original.Working {
		result.FinalStatus = StatusAlreadyWorking
		result.WorkingURL = originalURL
		return result
	}

	for _, strategy := range fixStrategies {
		candidate := strategy.apply(originalURL)
		if candidate == originalURL || result.attempted(candidate) {
			continue
		}

		if r.tryCandidate(ctx, &result, strategy.name, candidate) {
			return result
		}
	}

	for _, candidate := range domainFixes(originalURL) {
		if result.attempted(candidate) {
			continue
		}
		if r.tryCandidate(ctx, &result, "Domain-specific fix", candidate) {
			return result
		}
	}

	result.IssuesFound = diagnoseIssues(originalURL, result.Attempts)
	return result
}

// tryCandidate validates one candidate and reports whether it terminated the
// repair run.
func (r *Repairer) tryCandidate(ctx context.Context, result *FixResult, strategy, candidate string) bool {
	validation := r.Validator.Validate(ctx, candidate, r.Timeout)
	result.Attempts = append(result.Attempts, FixAttempt{
		Strategy:       strategy,
		URL:            candidate,
		Status:         validation.Status,
		Working:        validation.Working,
		ResponseTimeMs: validation.ResponseTimeMs,
		PageTitle:      validation.PageTitle,
	})

	if validation.Working {
		result.FinalStatus = StatusFixed
		result.WorkingURL = candidate
		result.FixStrategy = strategy
		return true
	}
	return false
}

// domainFixes returns known-good landing pages for institutional domains whose
// deep links rot frequently.
func domainFixes(originalURL string) []string {
	parsed, err := url.Parse(originalURL)
	if err != nil {
		return nil
	}
	domain := strings.ToLower(parsed.Host)

	var fixes []string
	switch {
	case strings.Contains(domain, "ec.europa.eu"):
		if strings.Contains(originalURL, "/calls-for-proposals") {
			fixes = append(fixes, "https://ec.europa.eu/info/funding-tenders/opportunities/portal/screen/home")
		}
		if strings.Contains(originalURL, "/regional_policy") {
			fixes = append(fixes, "https://ec.europa.eu/regional_policy/funding_en")
		}
	case strings.Contains(domain, "culture.gouv.fr"):
		fixes = append(fixes,
			"https://www.culture.gouv.fr/Aides-demarches",
			"https://www.culture.gouv.fr/Thematiques/Soutien-a-la-creation-artistique")
	case strings.Contains(domain, "artscouncil"):
		if strings.Contains(domain, ".org.uk") {
			fixes = append(fixes, "https://www.artscouncil.org.uk/funding")
		}
	case strings.Contains(domain, "kulturfond") || strings.Contains(domain, "kultuur"):
		fixes = append(fixes, "https://www.nordiskkulturfond.org/en/funding")
	}
	return fixes
}

// diagnoseIssues inspects the original URL syntax and the attempt history to
// name what likely went wrong. Diagnostic metadata only; the repair run is
// already over.
func diagnoseIssues(originalURL string, attempts []FixAttempt) []string {
	issues := []string{}

	if strings.Count(originalURL, "//") > 1 {
		issues = append(issues, "Multiple slashes in URL")
	}
	if !strings.HasPrefix(originalURL, "http://") && !strings.HasPrefix(originalURL, "https://") {
		issues = append(issues, "Missing protocol")
	}
	if strings.Contains(originalURL, "www.www.") {
		issues = append(issues, "Duplicate www prefix")
	}

	sawStatus := func(status string) bool {
		for _, a := range attempts {
			if a.Status == status {
				return true
			}
		}
		return false
	}
	if sawStatus("404 Not Found") {
		issues = append(issues, "Page no longer exists (404)")
	}
	if sawStatus("Connection Error") {
		issues = append(issues, "Server unreachable")
	}
	if sawStatus("Timeout") {
		issues = append(issues, "Server too slow to respond")
	}
	if sawStatus("403 Forbidden") {
		issues = append(issues, "Access forbidden by server")
	}
	if len(attempts) > 5 {
		issues = append(issues, "Multiple fix strategies failed")
	}

	return issues
}
