package sources

import (
	"strings"
	"testing"

	"github.com/marie/subvention-scroller/internal/models"
)

func TestFrenchArts_ArtTypeFilter(t *testing.T) {
	s := NewFrenchVisualArts()

	photo := s.Query(ArtsFilter{ArtType: "photographie"})
	if len(photo) == 0 {
		t.Fatal("expected photography projects")
	}
	for _, opp := range photo {
		if !matchesArtType(opp, "photographie") {
			t.Errorf("%q is not a photography project", opp.Title)
		}
	}

	all := s.Query(ArtsFilter{})
	if len(photo) >= len(all) {
		t.Errorf("art type filter kept %d of %d projects", len(photo), len(all))
	}
}

func TestFrenchArts_AmountFilter(t *testing.T) {
	s := NewFrenchVisualArts()
	rich := s.Query(ArtsFilter{MinAmount: 30000})
	for _, opp := range rich {
		_, max, ok := amountBounds(opp)
		if ok && max < 30000 {
			t.Errorf("%q max amount %d below the requested minimum", opp.Title, max)
		}
	}
	if len(rich) == len(s.Query(ArtsFilter{})) {
		t.Error("min amount filter had no effect")
	}
}

func TestEuropeanArts_CountryFilter(t *testing.T) {
	s := NewEuropeanVisualArts()
	german := s.Query(ArtsFilter{Country: "germany"})
	if len(german) == 0 {
		t.Fatal("expected German results")
	}
	for _, opp := range german {
		perimeter := strings.ToLower(opp.Perimeter)
		if !strings.Contains(perimeter, "germany") && !strings.Contains(perimeter, "eu-wide") {
			t.Errorf("%q has perimeter %q", opp.Title, opp.Perimeter)
		}
	}

	// ISO codes resolve through the country table.
	byCode := s.Query(ArtsFilter{Country: "DE"})
	if len(byCode) != len(german) {
		t.Errorf("country code DE returned %d entries, name returned %d", len(byCode), len(german))
	}
}

func TestEuropeanArts_AmountFilterConvertsCurrency(t *testing.T) {
	gbpGrant := models.Opportunity{
		Title: "UK grant", AmountMin: "1000", AmountMax: "100000", Currency: "GBP",
	}
	// £100,000 converts above €100,000 at the fixed rate.
	if !withinAmountRange(gbpGrant, 110000, 0, toEUR) {
		t.Error("GBP range should satisfy a €110,000 minimum after conversion")
	}
	if withinAmountRange(gbpGrant, 200000, 0, toEUR) {
		t.Error("GBP range should not satisfy a €200,000 minimum")
	}

	dkkGrant := models.Opportunity{
		Title: "Nordic grant", AmountMin: "50000", AmountMax: "400000", Currency: "DKK",
	}
	// DKK 400,000 is roughly €53,600.
	if withinAmountRange(dkkGrant, 60000, 0, toEUR) {
		t.Error("DKK range should not satisfy a €60,000 minimum")
	}
}

func TestColombianArts_SortOrder(t *testing.T) {
	s := NewColombianVisualArts()
	opps := s.Query(ArtsFilter{})
	if len(opps) < 2 {
		t.Fatal("expected a populated catalog")
	}
	for i := 1; i < len(opps); i++ {
		prev, cur := opps[i-1], opps[i]
		rp, rc := artsUrgencyRank(prev), artsUrgencyRank(cur)
		if rp > rc {
			t.Fatalf("urgency order broken at %d: %q (rank %d) before %q (rank %d)",
				i, prev.Title, rp, cur.Title, rc)
		}
		if rp == rc {
			_, maxPrev, _ := amountBounds(prev)
			_, maxCur, _ := amountBounds(cur)
			if maxPrev < maxCur {
				t.Fatalf("amount order broken at %d: %d before %d within rank %d", i, maxPrev, maxCur, rp)
			}
		}
	}
}

func TestColombianArts_ArtTypeKeywordMap(t *testing.T) {
	s := NewColombianVisualArts()
	digital := s.Query(ArtsFilter{ArtType: "arte_digital"})
	if len(digital) == 0 {
		t.Fatal("expected digital art results")
	}
	for _, opp := range digital {
		if !matchesColombianArtType(opp, "arte_digital") {
			t.Errorf("%q is not a digital art call", opp.Title)
		}
	}
	if len(digital) == len(s.Query(ArtsFilter{})) {
		t.Error("art type filter had no effect")
	}
}

func TestColombianArts_CityAliases(t *testing.T) {
	s := NewColombianVisualArts()
	// Unaccented input matches the accented catalog perimeter.
	bogota := s.Query(ArtsFilter{City: "bogota"})
	if len(bogota) == 0 {
		t.Fatal("expected Bogotá results for unaccented input")
	}
	for _, opp := range bogota {
		perimeter := strings.ToLower(opp.Perimeter)
		if !strings.Contains(perimeter, "bogotá") && !strings.Contains(perimeter, "nacional") {
			t.Errorf("%q has perimeter %q", opp.Title, opp.Perimeter)
		}
	}
}

func TestColombianArts_EURAmountsConvert(t *testing.T) {
	eur := models.Opportunity{AmountMin: "15000", AmountMax: "35000", Currency: "EUR"}
	// EUR 35,000 at 4,500 COP/EUR is 157.5M COP.
	if !withinAmountRange(eur, 100000000, 0, toCOP) {
		t.Error("EUR grant should satisfy a 100M COP minimum after conversion")
	}
	if withinAmountRange(eur, 200000000, 0, toCOP) {
		t.Error("EUR grant should not satisfy a 200M COP minimum")
	}
}

func TestArtsFilterFromParams(t *testing.T) {
	f := ArtsFilter{}.FromParams(models.SearchParams{
		ArtType:   "photographie",
		Country:   "germany",
		City:      "bogota",
		MinAmount: 1000,
		MaxAmount: 50000,
	})
	want := ArtsFilter{ArtType: "photographie", Country: "germany", City: "bogota", MinAmount: 1000, MaxAmount: 50000}
	if f != want {
		t.Errorf("FromParams = %+v, want %+v", f, want)
	}
}
