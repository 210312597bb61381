package sources

import (
	"context"
	"strings"
	"testing"

	"github.com/marie/subvention-scroller/internal/models"
)

func TestColombianSearch_AllRegions(t *testing.T) {
	c := NewColombianFunding()
	opps := c.Search(context.Background(), "", "", 50)
	if len(opps) == 0 {
		t.Fatal("expected catalog results")
	}
	for _, opp := range opps {
		if opp.Origin != models.OriginColombian {
			t.Errorf("%q has origin %q", opp.Title, opp.Origin)
		}
		if opp.Currency == "" {
			t.Errorf("%q missing currency", opp.Title)
		}
	}
}

func TestColombianSearch_CityFilterKeepsNational(t *testing.T) {
	c := NewColombianFunding()
	opps := c.Search(context.Background(), "", "BOGOTA", 50)
	if len(opps) == 0 {
		t.Fatal("expected results for BOGOTA")
	}
	for _, opp := range opps {
		perimeter := strings.ToLower(opp.Perimeter)
		if !strings.Contains(perimeter, "bogotá") && !strings.Contains(perimeter, "nacional") {
			t.Errorf("%q has perimeter %q, want Bogotá or Nacional", opp.Title, opp.Perimeter)
		}
	}
}

func TestColombianSearch_RegionNarrows(t *testing.T) {
	c := NewColombianFunding()
	all := c.Search(context.Background(), "", "", 50)
	valle := c.Search(context.Background(), "", "VALLE", 50)
	if len(valle) >= len(all) {
		t.Errorf("VALLE returned %d of %d entries, expected a narrower set", len(valle), len(all))
	}
}

func TestColombianSearch_Keywords(t *testing.T) {
	c := NewColombianFunding()
	opps := c.Search(context.Background(), "cerámica, videoarte", "", 50)
	for _, opp := range opps {
		if !matchesKeywords(opp, "cerámica, videoarte") {
			t.Errorf("%q does not match the requested keywords", opp.Title)
		}
	}
}

func TestColombianSearch_Limit(t *testing.T) {
	c := NewColombianFunding()
	if opps := c.Search(context.Background(), "", "", 2); len(opps) > 2 {
		t.Errorf("got %d opportunities, limit was 2", len(opps))
	}
}
