package sources

import (
	"strconv"
	"strings"

	"github.com/marie/subvention-scroller/internal/models"
)

// ArtsFilter narrows a visual arts catalog query. Zero values mean
// "no constraint". Amounts are expressed in the catalog's reference
// currency (EUR for French and European, COP for Colombian).
type ArtsFilter struct {
	ArtType   string
	Country   string
	City      string
	MinAmount int
	MaxAmount int
}

func (f ArtsFilter) FromParams(p models.SearchParams) ArtsFilter {
	f.ArtType = p.ArtType
	f.Country = p.Country
	f.City = p.City
	f.MinAmount = p.MinAmount
	f.MaxAmount = p.MaxAmount
	return f
}

// matchesArtType checks the requested art type against the
// opportunity's declared art types, title and description.
func matchesArtType(opp models.Opportunity, artType string) bool {
	artType = strings.ToLower(strings.TrimSpace(artType))
	if artType == "" || artType == "all" {
		return true
	}
	haystack := strings.ToLower(strings.Join(opp.ArtTypes, " ") + " " + opp.Title + " " + opp.Description)
	return strings.Contains(haystack, artType)
}

// amountBounds parses the opportunity's numeric amount range. Entries
// without machine-readable amounts report ok=false and pass amount
// filters unharmed.
func amountBounds(opp models.Opportunity) (min, max int, ok bool) {
	min, err1 := strconv.Atoi(opp.AmountMin)
	max, err2 := strconv.Atoi(opp.AmountMax)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return min, max, true
}

// withinAmountRange keeps an opportunity when its converted range
// overlaps the requested one. rate converts the opportunity's currency
// into the filter's reference currency.
func withinAmountRange(opp models.Opportunity, minAmount, maxAmount int, rate func(currency string) float64) bool {
	if minAmount <= 0 && maxAmount <= 0 {
		return true
	}
	lo, hi, ok := amountBounds(opp)
	if !ok {
		return true
	}
	r := rate(opp.Currency)
	loC := int(float64(lo) * r)
	hiC := int(float64(hi) * r)
	if minAmount > 0 && hiC < minAmount {
		return false
	}
	if maxAmount > 0 && loC > maxAmount {
		return false
	}
	return true
}
