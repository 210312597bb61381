package sources

import (
	"github.com/google/uuid"

	"github.com/marie/subvention-scroller/internal/models"
)

func stampEuropean(opps []models.Opportunity) []models.Opportunity {
	for i := range opps {
		opps[i].ID = uuid.New()
		opps[i].Origin = models.OriginEuropean
		if opps[i].Currency == "" {
			opps[i].Currency = "EUR"
		}
		opps[i].DaysUntilDeadline = daysUntil(opps[i].Deadline)
	}
	return opps
}

// curatedEuropeanGrants are verified EU-wide opportunities kept current by
// hand; their URLs point at stable program landing pages.
func curatedEuropeanGrants() []models.Opportunity {
	return stampEuropean([]models.Opportunity{
		{
			Title:             "Creative Europe - Culture Cooperation Projects",
			Description:       "Support for transnational cultural cooperation projects involving organisations from at least three Creative Europe countries. Funding for cross-border artistic creation, circulation of works and capacity building.",
			Organization:      "European Commission - EACEA",
			URL:               "https://culture.ec.europa.eu/creative-europe/creative-europe-culture-strand",
			Deadline:          "2027-01-23",
			Amount:            "€200,000 - €2,000,000",
			AmountMin:         "200000",
			AmountMax:         "2000000",
			Perimeter:         "European Union",
			TargetedAudiences: "Cultural organisations, NGOs",
			Source:            "Creative Europe",
			Category:          "European Grant",
		},
		{
			Title:             "Erasmus+ Cooperation Partnerships in Culture",
			Description:       "Partnerships supporting exchange of practices and innovation between cultural and educational organisations across Europe, including Germany, France, Italy and Spain.",
			Organization:      "European Commission",
			URL:               "https://erasmus-plus.ec.europa.eu/opportunities/opportunities-for-organisations",
			Deadline:          "2026-10-05",
			Amount:            "€120,000 - €400,000",
			AmountMin:         "120000",
			AmountMax:         "400000",
			Perimeter:         "European Union",
			TargetedAudiences: "Education and culture organisations",
			Source:            "Erasmus+",
			Category:          "European Grant",
		},
		{
			Title:             "European Cultural Foundation - Culture of Solidarity Fund",
			Description:       "Grants for cross-border cultural initiatives of public interest that strengthen European solidarity and the idea of Europe as a shared public space.",
			Organization:      "European Cultural Foundation",
			URL:               "https://culturalfoundation.eu/activities/culture-of-solidarity-fund",
			Deadline:          "2026-11-15",
			Amount:            "€10,000 - €40,000",
			AmountMin:         "10000",
			AmountMax:         "40000",
			Perimeter:         "Europe",
			TargetedAudiences: "Cultural workers, collectives, NGOs",
			Source:            "European Cultural Foundation",
			Category:          "European Grant",
		},
	})
}

// horizonEuropeCalls mirrors the structure of the current Horizon Europe work
// programme; deadlines follow the published cluster calendars.
func horizonEuropeCalls() []models.Opportunity {
	return stampEuropean([]models.Opportunity{
		{
			Title:             "HORIZON-CL2-2027-HERITAGE: Cultural Heritage and the Arts",
			Description:       "Research and innovation actions on cultural heritage, creative industries and the role of the arts in European society. Cluster 2 of Horizon Europe.",
			Organization:      "European Commission - Horizon Europe",
			URL:               "https://ec.europa.eu/info/funding-tenders/opportunities/portal/screen/opportunities/topic-search",
			Deadline:          "2027-03-10",
			Amount:            "€1,500,000 - €4,000,000",
			AmountMin:         "1500000",
			AmountMax:         "4000000",
			Perimeter:         "European Union",
			TargetedAudiences: "Research consortia, universities",
			Source:            "Horizon Europe",
			Category:          "European Grant",
		},
		{
			Title:             "HORIZON-EIC-2026-ACCELERATOR: EIC Accelerator Open",
			Description:       "Funding and investment for startups and SMEs with breakthrough innovations, including creative technology applications. Blended finance up to €2.5M grant component.",
			Organization:      "European Innovation Council",
			URL:               "https://eic.ec.europa.eu/eic-funding-opportunities/eic-accelerator_en",
			Deadline:          "2026-10-01",
			Amount:            "Up to €2,500,000",
			AmountMax:         "2500000",
			Perimeter:         "European Union",
			TargetedAudiences: "Startups, SMEs",
			Source:            "Horizon Europe",
			Category:          "European Grant",
		},
	})
}

// extendedCountryFunding lists national programs, with alternative URLs
// substituted for links known to have rotted.
func extendedCountryFunding() []models.Opportunity {
	return stampEuropean([]models.Opportunity{
		{
			Title:             "Kulturstiftung des Bundes - General Project Funding",
			Description:       "The German Federal Cultural Foundation funds international projects in all artistic disciplines in Germany. Two application rounds per year.",
			Organization:      "Kulturstiftung des Bundes",
			URL:               "https://www.kulturstiftung-des-bundes.de/en/funding/general_project_funding.html",
			Deadline:          "2027-01-31",
			Amount:            "€50,000 - €250,000",
			AmountMin:         "50000",
			AmountMax:         "250000",
			Perimeter:         "Germany",
			TargetedAudiences: "Cultural institutions in Germany",
			Source:            "National Program (Germany)",
			Category:          "European Grant",
		},
		{
			Title:             "RVO Innovation Credit - Netherlands",
			Description:       "Dutch government credit for the development of innovative products, including creative industry technology. Alternative URL maintained after site restructuring.",
			Organization:      "Netherlands Enterprise Agency (RVO)",
			URL:               "https://english.rvo.nl/subsidies-financing/innovation-credit",
			Deadline:          "",
			Amount:            "€150,000 - €10,000,000",
			AmountMin:         "150000",
			AmountMax:         "10000000",
			Perimeter:         "Netherlands",
			TargetedAudiences: "Innovative companies in the Netherlands",
			Source:            "National Program (Netherlands)",
			Category:          "European Grant",
		},
		{
			Title:             "Arts Council England - National Lottery Project Grants",
			Description:       "Open-access program for arts, museums and libraries projects in England of the United Kingdom. Rolling applications.",
			Organization:      "Arts Council England",
			URL:               "https://www.artscouncil.org.uk/projectgrants",
			Deadline:          "",
			Amount:            "£1,000 - £100,000",
			AmountMin:         "1000",
			AmountMax:         "100000",
			Currency:          "GBP",
			Perimeter:         "United Kingdom",
			TargetedAudiences: "Artists and cultural organisations in England",
			Source:            "National Program (United Kingdom)",
			Category:          "European Grant",
		},
		{
			Title:             "Nordisk Kulturfond - Project Funding",
			Description:       "Support for Nordic cultural cooperation involving Denmark, Sweden, Norway, Finland and Iceland. Projects must involve at least three Nordic countries.",
			Organization:      "Nordisk Kulturfond",
			URL:               "https://www.nordiskkulturfond.org/en/funding",
			Deadline:          "2026-11-02",
			Amount:            "DKK 100,000 - DKK 500,000",
			AmountMin:         "100000",
			AmountMax:         "500000",
			Currency:          "DKK",
			Perimeter:         "Nordic Countries",
			TargetedAudiences: "Nordic cultural actors",
			Source:            "National Program (Nordic)",
			Category:          "European Grant",
		},
	})
}
