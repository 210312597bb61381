package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/marie/subvention-scroller/internal/export"
	"github.com/marie/subvention-scroller/internal/linkcheck"
)

func main() {
	file := flag.String("file", "", "File with one URL per line (blank lines and # comments skipped)")
	name := flag.String("name", "fixurls", "Stem for the fix log files")
	flag.Parse()

	urls := flag.Args()
	if *file != "" {
		fromFile, err := readURLFile(*file)
		if err != nil {
			log.Fatalf("Reading %s: %v", *file, err)
		}
		urls = append(urls, fromFile...)
	}
	if len(urls) == 0 {
		log.Fatal("Nothing to fix: pass URLs as arguments or with -file")
	}

	broken := make([]linkcheck.BrokenURL, 0, len(urls))
	for _, u := range urls {
		broken = append(broken, linkcheck.BrokenURL{URL: u})
	}

	repairer := linkcheck.NewRepairer(linkcheck.NewValidator())
	results, summary := repairer.RepairAll(context.Background(), broken)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Original URL", "Status", "Working URL", "Strategy"})
	for _, res := range results {
		t.AppendRow(table.Row{res.OriginalURL, res.FinalStatus, res.WorkingURL, res.FixStrategy})
	}
	t.Render()
	log.Printf("Repaired %d/%d broken URLs (%d already working, %.1f%% success)",
		summary.Fixed, summary.TotalBroken, summary.AlreadyWorking, summary.SuccessRate)

	path, err := export.WriteFixLog(results, summary, *name, "")
	if err != nil {
		log.Fatalf("Writing fix log failed: %v", err)
	}
	log.Printf("Fix log written to %s", path)
}

func readURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, scanner.Err()
}
