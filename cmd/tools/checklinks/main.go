package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/marie/subvention-scroller/internal/linkcheck"
	"github.com/marie/subvention-scroller/internal/models"
	"github.com/marie/subvention-scroller/internal/search"
)

func main() {
	keywords := flag.String("keywords", "", "Run a search and check its result URLs")
	european := flag.Bool("european", false, "Include European sources in the search")
	colombian := flag.Bool("colombian", false, "Include Colombian sources in the search")
	limit := flag.Int("limit", 30, "Search result cap")
	timeout := flag.Duration("timeout", 10*time.Second, "Per-URL check timeout")
	flag.Parse()

	ctx := context.Background()
	urls := collectTargets(ctx, *keywords, *european, *colombian, *limit)
	if len(urls) == 0 {
		log.Fatal("Nothing to check: pass URLs as arguments or -keywords for a search")
	}

	validator := linkcheck.NewValidator()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"URL", "Status", "Code", "Time (ms)", "Funding Content"})

	working := 0
	for _, entry := range urls {
		res := validator.Validate(ctx, entry.URL, *timeout)
		if res.Working {
			working++
		}
		funding := ""
		if res.ContainsFundingKeywords {
			funding = "yes"
		}
		t.AppendRow(table.Row{entry.URL, res.Status, res.StatusCode, fmt.Sprintf("%.0f", res.ResponseTimeMs), funding})
	}
	t.Render()
	log.Printf("Checked %d URLs: %d working, %d broken", len(urls), working, len(urls)-working)
}

// collectTargets takes the positional arguments as URLs, or falls back to a
// fresh search when -keywords is set.
func collectTargets(ctx context.Context, keywords string, european, colombian bool, limit int) []linkcheck.BrokenURL {
	if args := flag.Args(); len(args) > 0 {
		out := make([]linkcheck.BrokenURL, 0, len(args))
		for _, u := range args {
			out = append(out, linkcheck.BrokenURL{URL: u})
		}
		return out
	}
	if keywords == "" {
		return nil
	}

	searcher := search.NewSearcher()
	results := searcher.SearchAll(ctx, models.SearchParams{
		Keywords:         keywords,
		IncludeEuropean:  european,
		IncludeColombian: colombian,
		Limit:            limit,
	})
	return search.CollectURLs(results)
}
