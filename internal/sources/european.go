package sources

import (
	"context"
	"log"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/marie/subvention-scroller/internal/models"
)

// EuropeanDynamic composes several European funding feeds: the curated
// catalog, generated Horizon Europe calls, extended per-country programs and
// (when configured) a live portal discovery scrape. Each feed receives an
// even share of the requested limit.
type EuropeanDynamic struct {
	Portal  *PortalScraper
	limiter *rate.Limiter
}

func NewEuropeanDynamic() *EuropeanDynamic {
	return &EuropeanDynamic{
		// Advisory pacing between national endpoints, not a scheduler.
		limiter: rate.NewLimiter(rate.Every(300*time.Millisecond), 1),
	}
}

// ConfigurePortal attaches live portal discovery described by a
// portal_scrape registry entry. Other strategies are ignored.
func (e *EuropeanDynamic) ConfigurePortal(cfg *SourceConfig) {
	if cfg.Strategy != "portal_scrape" || cfg.BaseURL == "" {
		return
	}

	p := NewPortalScraper(cfg.BaseURL)
	if cfg.Fetch.TimeoutSeconds > 0 {
		p.Timeout = time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second
	}
	e.Portal = p

	if cfg.Fetch.RateLimitRPS > 0 {
		e.limiter = rate.NewLimiter(rate.Limit(cfg.Fetch.RateLimitRPS), 1)
	}
}

func (e *EuropeanDynamic) Name() string { return "European Funding (Dynamic)" }

func (e *EuropeanDynamic) Search(ctx context.Context, keywords, region string, limit int) []models.Opportunity {
	share := limit / 4
	if share < 1 {
		share = 1
	}

	var all []models.Opportunity
	all = append(all, filterAndCap(curatedEuropeanGrants(), keywords, share)...)
	e.pace(ctx)
	all = append(all, filterAndCap(horizonEuropeCalls(), keywords, share)...)
	e.pace(ctx)
	all = append(all, filterAndCap(extendedCountryFunding(), keywords, share)...)

	if e.Portal != nil {
		e.pace(ctx)
		all = append(all, e.Portal.Discover(ctx, keywords, share)...)
	}

	if region != "" {
		all = filterByEuropeanRegion(all, region)
	}
	all = dedupeByTitle(all)

	log.Printf("European search found %d opportunities", len(all))
	return capResults(all, limit)
}

func (e *EuropeanDynamic) pace(ctx context.Context) {
	if err := e.limiter.Wait(ctx); err != nil {
		log.Printf("rate limiter interrupted: %v", err)
	}
}

func filterAndCap(opps []models.Opportunity, keywords string, limit int) []models.Opportunity {
	var out []models.Opportunity
	for _, opp := range opps {
		if matchesKeywords(opp, keywords) {
			out = append(out, opp)
		}
	}
	return capResults(out, limit)
}

// dedupeByTitle drops later records whose lowercased title exactly matches an
// already-seen title; the first occurrence wins.
func dedupeByTitle(opps []models.Opportunity) []models.Opportunity {
	seen := make(map[string]bool, len(opps))
	out := make([]models.Opportunity, 0, len(opps))
	for _, opp := range opps {
		key := strings.ToLower(opp.Title)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, opp)
	}
	return out
}

// filterByEuropeanRegion keeps records mentioning any covered country code,
// country name or the region name itself.
func filterByEuropeanRegion(opps []models.Opportunity, region string) []models.Opportunity {
	codes := regionCountryCodes(region)
	if len(codes) == 0 {
		return opps
	}
	regionName := ""
	if r, ok := EuropeanRegions[strings.ToUpper(region)]; ok {
		regionName = strings.ToLower(r.Name)
	}

	var out []models.Opportunity
	for _, opp := range opps {
		haystack := strings.ToLower(opp.Title + " " + opp.Description + " " +
			opp.TargetedAudiences + " " + opp.Perimeter)

		matched := regionName != "" && strings.Contains(haystack, regionName)
		for _, code := range codes {
			if matched {
				break
			}
			countryName := strings.ToLower(EuropeanCountries[code])
			if strings.Contains(haystack, strings.ToLower(code)) ||
				(countryName != "" && strings.Contains(haystack, countryName)) {
				matched = true
			}
		}
		if matched {
			out = append(out, opp)
		}
	}
	return out
}
