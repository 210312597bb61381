package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"

	"github.com/marie/subvention-scroller/internal/export"
	"github.com/marie/subvention-scroller/internal/models"
	"github.com/marie/subvention-scroller/internal/search"
)

func main() {
	keywords := flag.String("keywords", "", "Comma-separated search keywords (e.g. culture,art)")
	region := flag.String("region", "", "French region filter")
	euRegion := flag.String("eu-region", "", "European region filter (e.g. NORDIC, WESTERN)")
	coRegion := flag.String("co-region", "", "Colombian city filter (e.g. BOGOTA)")
	european := flag.Bool("european", false, "Include European sources")
	colombian := flag.Bool("colombian", false, "Include Colombian sources")
	limit := flag.Int("limit", 30, "Maximum results across all sources")
	xlsx := flag.String("xlsx", "", "Export results to an Excel workbook named after this value")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Print("No .env file found, using environment as-is")
	}

	params := models.SearchParams{
		Keywords:         *keywords,
		Region:           *region,
		EuropeanRegion:   *euRegion,
		ColombianRegion:  *coRegion,
		IncludeEuropean:  *european,
		IncludeColombian: *colombian,
		Limit:            *limit,
	}

	searcher := search.NewSearcher()
	results := searcher.SearchAll(context.Background(), params)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Origin", "Title", "Source", "Amount", "Deadline", "Days Left", "URL"})
	for _, opp := range results.All() {
		days := "-"
		if opp.DaysUntilDeadline != models.NoDeadline {
			days = strconv.Itoa(opp.DaysUntilDeadline)
		}
		t.AppendRow(table.Row{opp.Origin, truncate(opp.Title, 50), opp.Source, opp.Amount, opp.Deadline, days, opp.URL})
	}
	t.Render()
	log.Printf("Found %d opportunities (%d French, %d European, %d Colombian)",
		results.Total(), len(results.French), len(results.European), len(results.Colombian))

	if *xlsx != "" {
		path, err := export.WriteWorkbook(results.All(), *xlsx, "")
		if err != nil {
			log.Fatalf("Excel export failed: %v", err)
		}
		log.Printf("Workbook written to %s", path)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
