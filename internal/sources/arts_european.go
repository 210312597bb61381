package sources

import (
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/marie/subvention-scroller/internal/models"
)

// eurRates converts national currencies into EUR for amount filtering.
// Fixed reference rates; amount filters are coarse range checks, not
// financial calculations.
var eurRates = map[string]float64{
	"EUR": 1,
	"GBP": 1.17,
	"DKK": 0.134,
	"SEK": 0.088,
	"NOK": 0.086,
}

func toEUR(currency string) float64 {
	if r, ok := eurRates[currency]; ok {
		return r
	}
	return 1
}

// EuropeanVisualArts serves the curated European visual arts catalog:
// Creative Europe calls plus national arts-council programs. Amounts
// stay in the national currency; filters convert through eurRates.
type EuropeanVisualArts struct{}

func NewEuropeanVisualArts() *EuropeanVisualArts { return &EuropeanVisualArts{} }

func (s *EuropeanVisualArts) Name() string { return "European Visual Arts" }

func (s *EuropeanVisualArts) Query(f ArtsFilter) []models.Opportunity {
	var all []models.Opportunity
	all = append(all, creativeEuropeArtsGrants()...)
	all = append(all, nationalArtsGrants()...)

	var out []models.Opportunity
	for _, opp := range all {
		if !matchesArtsCountry(opp, f.Country) {
			continue
		}
		if !matchesArtType(opp, f.ArtType) {
			continue
		}
		if !withinAmountRange(opp, f.MinAmount, f.MaxAmount, toEUR) {
			continue
		}
		out = append(out, opp)
	}
	log.Printf("Found %d European visual arts funding opportunities", len(out))
	return out
}

func matchesArtsCountry(opp models.Opportunity, country string) bool {
	country = strings.ToLower(strings.TrimSpace(country))
	if country == "" || country == "all" {
		return true
	}
	perimeter := strings.ToLower(opp.Perimeter)
	// EU-wide programs match every country filter.
	if strings.Contains(perimeter, "eu-wide") {
		return true
	}
	if name, ok := EuropeanCountries[strings.ToUpper(country)]; ok {
		return strings.Contains(perimeter, strings.ToLower(name))
	}
	return strings.Contains(perimeter, country)
}

func stampEuropeanArts(opps []models.Opportunity) []models.Opportunity {
	for i := range opps {
		opps[i].ID = uuid.New()
		opps[i].Origin = models.OriginEuropean
		opps[i].Category = "Visual Arts"
		if opps[i].Currency == "" {
			opps[i].Currency = "EUR"
		}
		opps[i].DaysUntilDeadline = daysUntil(opps[i].Deadline)
	}
	return opps
}

func creativeEuropeArtsGrants() []models.Opportunity {
	return stampEuropeanArts([]models.Opportunity{
		{
			Title:          "Creative Europe - Visual Arts Mobility",
			Organization:   "European Commission - Creative Europe",
			Perimeter:      "EU-wide",
			Type:           "Photography, Visual Arts",
			ArtTypes:       []string{"Photography", "Visual Arts"},
			AidTypes:       "Direct Grant",
			Amount:         "€5,000 - €60,000",
			AmountMin:      "5000",
			AmountMax:      "60000",
			Currency:       "EUR",
			Deadline:       "2026-09-30",
			Description:    "Support for visual artists mobility and international collaboration projects",
			URL:            "https://culture.ec.europa.eu/calls-for-proposals",
			ContactEmail:   "creative-europe@ec.europa.eu",
			ContactPhone:   "+32 2 299 11 11",
			ContactInfo:    "European Commission Creative Europe Desk, Brussels",
			ProjectManager: "Creative Europe Program Director",
			Eligibility:    "EU citizen or long-term resident, professional visual artist, project involving at least 2 EU countries",
			Source:         "Creative Europe",
		},
		{
			Title:        "Creative Europe - Cultural Cooperation Photography",
			Organization: "European Commission",
			Perimeter:    "EU-wide",
			Type:         "Photography, Documentary",
			ArtTypes:     []string{"Photography", "Documentary"},
			AidTypes:     "Partnership Grant",
			Amount:       "€10,000 - €200,000",
			AmountMin:    "10000",
			AmountMax:    "200000",
			Currency:     "EUR",
			Deadline:     "2026-10-15",
			Description:  "Large-scale photography and visual documentation projects with European scope",
			URL:          "https://culture.ec.europa.eu/calls-for-proposals",
			ContactEmail: "cooperation-grants@ec.europa.eu",
			Eligibility:  "Minimum 3 partners from 3 different EU countries, legal entities with cultural track record",
			Source:       "Creative Europe",
		},
	})
}

func nationalArtsGrants() []models.Opportunity {
	return stampEuropeanArts([]models.Opportunity{
		{
			Title:          "Kulturstiftung des Bundes - Visual Arts",
			Organization:   "German Federal Cultural Foundation",
			Perimeter:      "Germany",
			Type:           "Visual Arts, Photography",
			ArtTypes:       []string{"Visual Arts", "Photography"},
			AidTypes:       "Project Grant",
			Amount:         "€15,000 - €250,000",
			AmountMin:      "15000",
			AmountMax:      "250000",
			Currency:       "EUR",
			Deadline:       "2026-11-01",
			Description:    "Support for innovative visual arts projects with international dimension",
			URL:            "https://www.kulturstiftung-des-bundes.de/en/funding",
			ContactEmail:   "info@kulturstiftung-des-bundes.de",
			ContactPhone:   "+49 345 2997 0",
			ProjectManager: "Director of Visual Arts Program",
			Eligibility:    "Artists or institutions based in Germany with an international cooperation component",
			Source:         "Kulturstiftung des Bundes",
		},
		{
			Title:        "DAAD Artist Residency - Visual Arts",
			Organization: "German Academic Exchange Service",
			Perimeter:    "Germany",
			Type:         "Photography, Sculpture, Installation",
			ArtTypes:     []string{"Photography", "Sculpture", "Installation"},
			AidTypes:     "Residency Stipend",
			Amount:       "€24,000 - €36,000",
			AmountMin:    "24000",
			AmountMax:    "36000",
			Currency:     "EUR",
			Deadline:     "2026-10-31",
			Description:  "Artist residency program for international visual artists in Germany",
			URL:          "https://www.daad.de/en/study-and-research-in-germany/scholarships/",
			ContactEmail: "artists@daad.de",
			Source:       "DAAD",
		},
		{
			Title:        "Arts Council England - Project Grants",
			Organization: "Arts Council England",
			Perimeter:    "United Kingdom",
			Type:         "Visual Arts, Photography",
			ArtTypes:     []string{"Visual Arts", "Photography"},
			AidTypes:     "Flexible Project Grant",
			Amount:       "£1,000 - £100,000",
			AmountMin:    "1000",
			AmountMax:    "100000",
			Currency:     "GBP",
			Deadline:     "2026-12-31",
			Description:  "Flexible funding for visual arts projects and professional development, rolling applications",
			URL:          "https://www.artscouncil.org.uk/funding/project-grants",
			ContactEmail: "enquiries@artscouncil.org.uk",
			Eligibility:  "UK-based artists and organizations with public benefit and engagement",
			Source:       "Arts Council England",
		},
		{
			Title:        "Netherlands Arts Council - Visual Arts Grant",
			Organization: "Raad voor Cultuur",
			Perimeter:    "Netherlands",
			Type:         "Visual Arts, Contemporary Art",
			ArtTypes:     []string{"Visual Arts", "Contemporary Art"},
			AidTypes:     "Artist Development Grant",
			Amount:       "€7,500 - €125,000",
			AmountMin:    "7500",
			AmountMax:    "125000",
			Currency:     "EUR",
			Deadline:     "2026-09-01",
			Description:  "Support for professional visual artists and art initiatives",
			URL:          "https://www.kunstraad.nl/subsidies",
			ContactEmail: "info@kunstraad.nl",
			Eligibility:  "Dutch artists or long-term residents with professional practice of at least 3 years",
			Source:       "Kunstraad",
		},
		{
			Title:        "Nordic Culture Fund - Visual Arts",
			Organization: "Nordic Culture Fund",
			Perimeter:    "Denmark, Sweden, Norway, Finland, Iceland",
			Type:         "Visual Arts, Photography",
			ArtTypes:     []string{"Visual Arts", "Photography"},
			AidTypes:     "Partnership Grant",
			Amount:       "DKK 50,000 - DKK 400,000",
			AmountMin:    "50000",
			AmountMax:    "400000",
			Currency:     "DKK",
			Deadline:     "2026-10-01",
			Description:  "Nordic collaboration in visual arts and culture, minimum 2 Nordic countries participation",
			URL:          "https://www.nordiskkulturfond.org/en/grants",
			ContactEmail: "nkf@nkf.dk",
			Source:       "Nordisk Kulturfond",
		},
		{
			Title:        "Italian Ministry of Culture - Visual Arts",
			Organization: "Ministero della Cultura",
			Perimeter:    "Italy",
			Type:         "Visual Arts, Photography",
			ArtTypes:     []string{"Visual Arts", "Photography"},
			AidTypes:     "Direct Grant",
			Amount:       "€5,000 - €80,000",
			AmountMin:    "5000",
			AmountMax:    "80000",
			Currency:     "EUR",
			Deadline:     "2026-09-15",
			Description:  "Support for contemporary visual arts projects in Italy",
			URL:          "https://cultura.gov.it/bandi",
			ContactEmail: "bandi.cultura@beniculturali.it",
			Eligibility:  "Italian artists or foreign residents with at least 5 years professional experience",
			Source:       "Ministero della Cultura",
		},
		{
			Title:        "Spanish Ministry of Culture - Arts Grants",
			Organization: "Ministerio de Cultura y Deporte",
			Perimeter:    "Spain",
			Type:         "Visual Arts, Photography",
			ArtTypes:     []string{"Visual Arts", "Photography"},
			AidTypes:     "Direct Grant",
			Amount:       "€3,000 - €60,000",
			AmountMin:    "3000",
			AmountMax:    "60000",
			Currency:     "EUR",
			Deadline:     "2026-10-30",
			Description:  "Grants for visual arts creation and promotion in Spain",
			URL:          "https://www.cultura.gob.es/cultura/areas/promocion.html",
			ContactEmail: "ayudas.cultura@cultura.gob.es",
			Eligibility:  "Spanish visual artists or legal residents with minimum 2 years professional experience",
			Source:       "Ministerio de Cultura",
		},
	})
}
