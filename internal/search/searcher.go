package search

import (
	"context"
	"log"
	"sort"

	"github.com/marie/subvention-scroller/internal/models"
	"github.com/marie/subvention-scroller/internal/sources"
)

// Searcher fans a query out to the configured source adapters and returns
// per-origin result lists. Adapters degrade internally; a search never fails.
type Searcher struct {
	French    sources.Adapter
	European  sources.Adapter
	Colombian sources.Adapter
}

// NewSearcher wires the adapter set from the source registry. Without a
// usable registry the adapters fall back to their built-in defaults.
func NewSearcher() *Searcher {
	reg, err := sources.LoadRegistry(sources.DefaultRegistryPath)
	if err != nil {
		log.Printf("Source registry unavailable, using built-in defaults: %v", err)
	}
	fr, eu, co := sources.BuildAdapters(reg)
	return &Searcher{French: fr, European: eu, Colombian: co}
}

// SearchAll queries every active source. The requested limit is split evenly
// across active sources so the combined result stays near the caller's cap.
func (s *Searcher) SearchAll(ctx context.Context, params models.SearchParams) models.SearchResults {
	active := 1
	if params.IncludeEuropean {
		active++
	}
	if params.IncludeColombian {
		active++
	}
	perSource := params.Limit / active
	if perSource < 1 {
		perSource = 1
	}

	var results models.SearchResults

	log.Printf("Searching French subventions (keywords=%q region=%q)", params.Keywords, params.Region)
	results.French = s.French.Search(ctx, params.Keywords, params.Region, perSource)

	if params.IncludeEuropean {
		log.Print("Searching European funding programs")
		results.European = s.European.Search(ctx, params.Keywords, params.EuropeanRegion, perSource)
	}
	if params.IncludeColombian {
		log.Print("Searching Colombian funding programs")
		results.Colombian = s.Colombian.Search(ctx, params.Keywords, params.ColombianRegion, perSource)
	}

	// Inactive or empty origins serialize as [], not null.
	if results.French == nil {
		results.French = []models.Opportunity{}
	}
	if results.European == nil {
		results.European = []models.Opportunity{}
	}
	if results.Colombian == nil {
		results.Colombian = []models.Opportunity{}
	}

	SortByUrgency(results.French)
	SortByUrgency(results.European)
	SortByUrgency(results.Colombian)

	log.Printf("Search complete: %d French, %d European, %d Colombian",
		len(results.French), len(results.European), len(results.Colombian))
	return results
}

// Run executes the session's query and stores the results back on it.
func (s *Searcher) Run(ctx context.Context, session models.SearchSession) models.SearchSession {
	session.Results = s.SearchAll(ctx, session.Params)
	return session
}

// urgencyBucket groups deadlines for ordering: closing within a month,
// within a quarter, later or unknown. The NoDeadline sentinel lands in the
// last bucket and sorts after every concrete deadline.
func urgencyBucket(days int) int {
	switch {
	case days < 30:
		return 1
	case days < 90:
		return 2
	default:
		return 3
	}
}

// SortByUrgency orders opportunities most urgent first: by bucket, then by
// ascending days until deadline. The sort is stable so same-deadline entries
// keep their source order.
func SortByUrgency(opps []models.Opportunity) {
	sort.SliceStable(opps, func(i, j int) bool {
		bi, bj := urgencyBucket(opps[i].DaysUntilDeadline), urgencyBucket(opps[j].DaysUntilDeadline)
		if bi != bj {
			return bi < bj
		}
		return opps[i].DaysUntilDeadline < opps[j].DaysUntilDeadline
	})
}
