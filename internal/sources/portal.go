package sources

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/google/uuid"

	"github.com/marie/subvention-scroller/internal/models"
)

// PortalScraper discovers live call listings from an institutional funding
// portal page. Discovery is best-effort: any scrape failure yields an empty
// list, never an error.
type PortalScraper struct {
	StartURL  string
	UserAgent string
	Timeout   time.Duration
	MaxBody   int
}

func NewPortalScraper(startURL string) *PortalScraper {
	return &PortalScraper{
		StartURL:  startURL,
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		Timeout:   15 * time.Second,
		MaxBody:   5 * 1024 * 1024,
	}
}

// callLinkHints mark anchors that plausibly lead to an individual call page.
var callLinkHints = []string{"call", "proposal", "grant", "funding", "tender", "topic"}

// Discover scrapes the portal page and returns one opportunity stub per
// distinct call link found, capped at limit.
func (p *PortalScraper) Discover(ctx context.Context, keywords string, limit int) []models.Opportunity {
	c := colly.NewCollector(
		colly.UserAgent(p.UserAgent),
		colly.MaxBodySize(p.MaxBody),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(p.Timeout)

	if ctx.Err() != nil {
		return nil
	}

	seen := map[string]bool{}
	var found []models.Opportunity

	c.OnHTML("a[href]", func(el *colly.HTMLElement) {
		title := cleanText(el.Text)
		href := el.Request.AbsoluteURL(el.Attr("href"))
		if title == "" || href == "" || seen[href] {
			return
		}
		if len(title) < 15 || !looksLikeCallLink(title, href) {
			return
		}

		seen[href] = true
		found = append(found, models.Opportunity{
			ID:                uuid.New(),
			Origin:            models.OriginEuropean,
			Title:             title,
			Description:       "Live call discovered on the EU funding portal. Open the call page for full details.",
			URL:               href,
			Perimeter:         "European Union",
			Currency:          "EUR",
			DaysUntilDeadline: models.NoDeadline,
			Source:            "EU Funding Portal (Live)",
			Category:          "European Grant",
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		log.Printf("Portal discovery failed for %s: %v", p.StartURL, err)
	})

	if err := c.Visit(p.StartURL); err != nil {
		log.Printf("Portal discovery could not start: %v", err)
		return nil
	}
	c.Wait()

	return filterAndCap(found, keywords, limit)
}

func looksLikeCallLink(title, href string) bool {
	text := strings.ToLower(title + " " + href)
	for _, hint := range callLinkHints {
		if strings.Contains(text, hint) {
			return true
		}
	}
	return false
}
