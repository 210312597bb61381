package sources

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/marie/subvention-scroller/internal/models"
)

// ColombianFunding serves the Colombian national and district funding
// catalog. The catalog is static; filtering and ordering happen per call.
type ColombianFunding struct{}

func NewColombianFunding() *ColombianFunding { return &ColombianFunding{} }

func (c *ColombianFunding) Name() string { return "Colombian Funding" }

func (c *ColombianFunding) Search(ctx context.Context, keywords, region string, limit int) []models.Opportunity {
	_ = ctx // static catalog, no network

	targetCities := colombianTargetCities(region)

	var out []models.Opportunity
	for _, opp := range colombianCatalog() {
		if !matchesColombianCity(opp, targetCities) {
			continue
		}
		if !matchesKeywords(opp, keywords) {
			continue
		}
		out = append(out, opp)
	}

	log.Printf("Found %d Colombian funding opportunities", len(out))
	return capResults(out, limit)
}

func colombianTargetCities(region string) []string {
	r, ok := ColombianRegions[strings.ToUpper(strings.TrimSpace(region))]
	if !ok {
		return nil
	}
	return r.Countries
}

// matchesColombianCity keeps national programs regardless of the requested
// region; city-scoped programs must match one of the target cities.
func matchesColombianCity(opp models.Opportunity, cities []string) bool {
	if len(cities) == 0 {
		return true
	}
	perimeter := strings.ToLower(opp.Perimeter)
	if strings.Contains(perimeter, "nacional") {
		return true
	}
	for _, city := range cities {
		if strings.Contains(perimeter, strings.ToLower(city)) {
			return true
		}
	}
	return false
}

func stampColombian(opps []models.Opportunity) []models.Opportunity {
	for i := range opps {
		opps[i].ID = uuid.New()
		opps[i].Origin = models.OriginColombian
		if opps[i].Currency == "" {
			opps[i].Currency = "COP"
		}
		opps[i].DaysUntilDeadline = daysUntil(opps[i].Deadline)
	}
	return opps
}

func colombianCatalog() []models.Opportunity {
	return stampColombian([]models.Opportunity{
		{
			Title:        "Programa Nacional de Estímulos - Artes Visuales",
			Description:  "Convocatoria anual del Ministerio de Cultura para apoyar proyectos de artes visuales, incluyendo pintura, escultura, fotografía, videoarte y nuevos medios.",
			Organization: "Ministerio de Cultura de Colombia",
			Perimeter:    "Nacional - Todas las ciudades",
			Category:     "Artes y Cultura",
			Type:         "Beca/Subsidio",
			Amount:       "COP 15,000,000 - COP 50,000,000",
			AmountMin:    "15000000",
			AmountMax:    "50000000",
			Deadline:     "2026-09-15",
			ContactEmail: "estimulos@mincultura.gov.co",
			URL:          "https://www.mincultura.gov.co/areas/artes/estimulos",
			Eligibility:  "Artistas colombianos o extranjeros residentes en Colombia",
			Source:       "Ministerio de Cultura",
		},
		{
			Title:        "Becas de Creación Artística - Bogotá",
			Description:  "Programa del IDARTES para apoyar procesos de creación en todas las disciplinas artísticas en Bogotá.",
			Organization: "IDARTES - Instituto Distrital de las Artes",
			Perimeter:    "Bogotá D.C.",
			Category:     "Artes y Cultura",
			Type:         "Beca",
			Amount:       "COP 25,000,000 - COP 80,000,000",
			AmountMin:    "25000000",
			AmountMax:    "80000000",
			Deadline:     "2026-10-30",
			ContactEmail: "convocatorias@idartes.gov.co",
			URL:          "https://www.idartes.gov.co/es/convocatorias",
			Eligibility:  "Artistas residentes en Bogotá",
			Source:       "IDARTES",
		},
		{
			Title:        "Convocatoria de Estímulos - Medellín",
			Description:  "Secretaría de Cultura Ciudadana de Medellín apoya proyectos culturales y artísticos con énfasis en innovación y participación comunitaria.",
			Organization: "Alcaldía de Medellín - Secretaría de Cultura Ciudadana",
			Perimeter:    "Medellín",
			Category:     "Artes y Cultura",
			Type:         "Estímulo",
			Amount:       "COP 10,000,000 - COP 40,000,000",
			AmountMin:    "10000000",
			AmountMax:    "40000000",
			Deadline:     "2026-11-20",
			ContactEmail: "cultura@medellin.gov.co",
			URL:          "https://www.medellin.gov.co/cultura/convocatorias",
			Eligibility:  "Artistas y colectivos de Medellín",
			Source:       "Alcaldía de Medellín",
		},
		{
			Title:        "Fondo Mixto de Cultura del Valle del Cauca",
			Description:  "Financiación de proyectos culturales, patrimonio y formación artística en el Valle del Cauca, con sede en Cali.",
			Organization: "Fondo Mixto de Cultura del Valle",
			Perimeter:    "Cali",
			Category:     "Artes y Cultura",
			Type:         "Subsidio",
			Amount:       "COP 8,000,000 - COP 30,000,000",
			AmountMin:    "8000000",
			AmountMax:    "30000000",
			Deadline:     "2026-12-10",
			ContactEmail: "info@fondomixtovalle.org",
			URL:          "https://www.fondomixtovalle.org/convocatorias",
			Eligibility:  "Gestores culturales del Valle del Cauca",
			Source:       "Fondo Mixto Valle",
		},
	})
}
