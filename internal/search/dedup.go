package search

import (
	"github.com/marie/subvention-scroller/internal/linkcheck"
	"github.com/marie/subvention-scroller/internal/models"
)

// CollectURLs flattens search results into the unique URL set a validation
// pass operates on. Deduplication is by exact URL string; the first
// occurrence's title, source and country are kept.
func CollectURLs(results models.SearchResults) []linkcheck.BrokenURL {
	seen := make(map[string]bool)
	var out []linkcheck.BrokenURL

	collect := func(opps []models.Opportunity, country string) {
		for _, opp := range opps {
			if opp.URL == "" || seen[opp.URL] {
				continue
			}
			seen[opp.URL] = true
			out = append(out, linkcheck.BrokenURL{
				URL:     opp.URL,
				Title:   opp.Title,
				Source:  opp.Source,
				Country: country,
			})
		}
	}

	collect(results.French, "France")
	collect(results.European, "Europe")
	collect(results.Colombian, "Colombia")
	return out
}
