package sources

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"github.com/marie/subvention-scroller/internal/models"
)

var htmlSanitizer = bluemonday.StrictPolicy()

// cleanText collapses whitespace runs and trims the string.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cleanHTML strips markup from untrusted source descriptions and truncates
// the plain text to maxLen.
func cleanHTML(html string, maxLen int) string {
	if html == "" {
		return ""
	}

	sanitized := htmlSanitizer.Sanitize(html)
	text := sanitized
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(sanitized)); err == nil {
		text = doc.Text()
	}
	text = cleanText(text)

	if maxLen > 0 && len(text) > maxLen {
		return text[:maxLen] + "..."
	}
	return text
}

// deadlineLayouts are the date shapes the catalogs and live APIs emit.
var deadlineLayouts = []string{
	"02/01/2006",
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z",
}

// daysUntil computes the non-negative day count until a deadline string, or
// the NoDeadline sentinel when the value is empty or unparseable.
func daysUntil(deadline string) int {
	return daysUntilAt(deadline, time.Now())
}

func daysUntilAt(deadline string, now time.Time) int {
	deadline = strings.TrimSpace(deadline)
	if deadline == "" {
		return models.NoDeadline
	}
	if len(deadline) > 19 {
		deadline = deadline[:19]
	}

	for _, layout := range deadlineLayouts {
		t, err := time.Parse(layout, deadline)
		if err != nil {
			continue
		}
		days := int(t.Sub(now).Hours() / 24)
		if days < 0 {
			return 0
		}
		return days
	}
	return models.NoDeadline
}

// formatDate renders a source-native date as dd/mm/yyyy, passing the input
// through untouched when it cannot be parsed.
func formatDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	value := raw
	if len(value) > 19 {
		value = value[:19]
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return raw
}

// matchesKeywords reports whether any comma-separated keyword occurs in the
// searchable text of an opportunity. An empty keyword set matches everything.
func matchesKeywords(opp models.Opportunity, keywords string) bool {
	keywords = strings.TrimSpace(keywords)
	if keywords == "" {
		return true
	}

	haystack := strings.ToLower(opp.Title + " " + opp.Description + " " + opp.Category)
	for _, kw := range strings.Split(keywords, ",") {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// capResults truncates a list to limit entries; limit <= 0 means unlimited.
func capResults(opps []models.Opportunity, limit int) []models.Opportunity {
	if limit > 0 && len(opps) > limit {
		return opps[:limit]
	}
	return opps
}
