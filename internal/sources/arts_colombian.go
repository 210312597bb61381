package sources

import (
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/marie/subvention-scroller/internal/models"
)

// copPerEUR is the fixed reference rate used when amount filters mix
// EUR-denominated cooperation programs with COP catalogs.
const copPerEUR = 4500

// colombianArtKeywords expands the caller's art-type shorthand into the
// Spanish and English terms the catalog uses.
var colombianArtKeywords = map[string][]string{
	"pintura":            {"pintura", "painting"},
	"escultura":          {"escultura", "sculpture"},
	"fotografia":         {"fotografía", "fotografia", "photography"},
	"arte_digital":       {"arte digital", "digital", "nuevos medios", "nuevas tecnologías"},
	"arte_urbano":        {"arte urbano", "grafiti", "muralismo"},
	"performance":        {"performance", "arte conceptual"},
	"instalacion":        {"instalación", "installation"},
	"arte_contemporaneo": {"contemporáneo", "contemporary"},
	"arte_tradicional":   {"patrimonio", "tradicional", "étnico", "cultural"},
	"arte_ambiental":     {"ambiental", "sostenibilidad", "biodiversidad"},
}

// ColombianVisualArts serves the Colombian visual arts catalog with city,
// art-type and amount filters. Results are ordered most urgent first,
// ties broken by highest funding.
type ColombianVisualArts struct{}

func NewColombianVisualArts() *ColombianVisualArts { return &ColombianVisualArts{} }

func (s *ColombianVisualArts) Name() string { return "Colombian Visual Arts" }

func (s *ColombianVisualArts) Query(f ArtsFilter) []models.Opportunity {
	var out []models.Opportunity
	for _, opp := range colombianArtsCatalog() {
		if !matchesColombianArtsCity(opp, f.City) {
			continue
		}
		if !matchesColombianArtType(opp, f.ArtType) {
			continue
		}
		if !withinAmountRange(opp, f.MinAmount, f.MaxAmount, toCOP) {
			continue
		}
		out = append(out, opp)
	}

	sort.SliceStable(out, func(i, j int) bool {
		ui, uj := artsUrgencyRank(out[i]), artsUrgencyRank(out[j])
		if ui != uj {
			return ui < uj
		}
		_, maxI, _ := amountBounds(out[i])
		_, maxJ, _ := amountBounds(out[j])
		return maxI > maxJ
	})

	log.Printf("Found %d Colombian visual arts funding opportunities", len(out))
	return out
}

func toCOP(currency string) float64 {
	if currency == "EUR" {
		return copPerEUR
	}
	return 1
}

// artsUrgencyRank buckets deadlines for ordering: closing within a week,
// within a month, within a quarter, later.
func artsUrgencyRank(opp models.Opportunity) int {
	switch d := opp.DaysUntilDeadline; {
	case d <= 7:
		return 0
	case d <= 30:
		return 1
	case d <= 90:
		return 2
	default:
		return 3
	}
}

func matchesColombianArtsCity(opp models.Opportunity, city string) bool {
	city = strings.ToLower(strings.TrimSpace(city))
	if city == "" || city == "all" {
		return true
	}
	// Accents optional on input.
	aliases := map[string]string{"bogota": "bogotá", "medellin": "medellín", "all_cities": "nacional"}
	if target, ok := aliases[city]; ok {
		city = target
	}
	perimeter := strings.ToLower(opp.Perimeter)
	return strings.Contains(perimeter, city) || strings.Contains(perimeter, "nacional")
}

func matchesColombianArtType(opp models.Opportunity, artType string) bool {
	artType = strings.ToLower(strings.TrimSpace(artType))
	if artType == "" || artType == "all" {
		return true
	}
	keywords, ok := colombianArtKeywords[artType]
	if !ok {
		keywords = []string{artType}
	}
	haystack := strings.ToLower(strings.Join(opp.ArtTypes, " ") + " " + opp.Title + " " + opp.Description)
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

func stampColombianArts(opps []models.Opportunity) []models.Opportunity {
	for i := range opps {
		opps[i].ID = uuid.New()
		opps[i].Origin = models.OriginColombian
		opps[i].Category = "Artes Visuales"
		if opps[i].Currency == "" {
			opps[i].Currency = "COP"
		}
		opps[i].DaysUntilDeadline = daysUntil(opps[i].Deadline)
	}
	return opps
}

func colombianArtsCatalog() []models.Opportunity {
	return stampColombianArts([]models.Opportunity{
		{
			Title:        "Programa Nacional de Estímulos - Artes Visuales",
			Description:  "Convocatoria nacional del Ministerio de Cultura para apoyar la creación, investigación y circulación en artes visuales. Incluye categorías de creación individual, proyectos de investigación curatorial, y residencias artísticas.",
			Organization: "Ministerio de Cultura de Colombia",
			Perimeter:    "Nacional",
			Type:         "Beca de Creación",
			ArtTypes:     []string{"Creación", "Investigación Curatorial", "Residencias"},
			Amount:       "COP 25,000,000 - COP 80,000,000",
			AmountMin:    "25000000",
			AmountMax:    "80000000",
			Deadline:     "2026-09-30",
			URL:          "https://www.mincultura.gov.co/areas/artes/estimulos/Paginas/default.aspx",
			ContactEmail: "estimulos@mincultura.gov.co",
			ContactPhone: "+57 1 342 4100",
			Eligibility:  "Artistas colombianos mayores de 18 años, extranjeros residentes en Colombia por más de 5 años",
			Source:       "Ministerio de Cultura",
		},
		{
			Title:        "Becas de Creación IDARTES - Artes Visuales",
			Description:  "Programa del Instituto Distrital de las Artes de Bogotá para apoyar procesos de creación en artes visuales con énfasis en arte contemporáneo, arte digital y nuevos medios.",
			Organization: "IDARTES - Instituto Distrital de las Artes",
			Perimeter:    "Bogotá",
			Type:         "Beca Distrital",
			ArtTypes:     []string{"Arte Contemporáneo", "Arte Digital", "Instalación", "Performance"},
			Amount:       "COP 30,000,000 - COP 60,000,000",
			AmountMin:    "30000000",
			AmountMax:    "60000000",
			Deadline:     "2026-10-15",
			URL:          "https://www.idartes.gov.co/becas-estimulos",
			ContactEmail: "becas@idartes.gov.co",
			Eligibility:  "Residentes en Bogotá por mínimo 2 años",
			Source:       "IDARTES",
		},
		{
			Title:        "Programa de Estímulos Culturales - Medellín Artes Visuales",
			Description:  "Convocatoria de la Secretaría de Cultura Ciudadana de Medellín para fortalecer el sector de artes visuales con énfasis en arte urbano, fotografía documental y arte comunitario.",
			Organization: "Secretaría de Cultura Ciudadana - Medellín",
			Perimeter:    "Medellín",
			Type:         "Estímulo Municipal",
			ArtTypes:     []string{"Arte Urbano", "Fotografía Documental", "Arte Comunitario"},
			Amount:       "COP 20,000,000 - COP 45,000,000",
			AmountMin:    "20000000",
			AmountMax:    "45000000",
			Deadline:     "2026-08-20",
			URL:          "https://www.medellin.gov.co/irj/portal/medellin?NavigationTarget=navurl://cultura",
			ContactEmail: "cultura@medellin.gov.co",
			Source:       "Alcaldía de Medellín",
		},
		{
			Title:        "Becas de Arte y Creatividad - Valle del Cauca",
			Description:  "Programa del Instituto Municipal de Cultura y Turismo de Cali para el fomento de las artes visuales con enfoque en diversidad cultural y patrimonio afrodescendiente.",
			Organization: "Instituto Municipal de Cultura y Turismo - Cali",
			Perimeter:    "Cali",
			Type:         "Beca Cultural",
			ArtTypes:     []string{"Arte Afrodescendiente", "Patrimonio Cultural", "Arte Contemporáneo"},
			Amount:       "COP 18,000,000 - COP 40,000,000",
			AmountMin:    "18000000",
			AmountMax:    "40000000",
			Deadline:     "2026-11-10",
			URL:          "https://www.cali.gov.co/cultura/",
			ContactEmail: "cultura@cali.gov.co",
			Source:       "IMCT Cali",
		},
		{
			Title:        "Residencias Artísticas Cartagena - Arte Caribe",
			Description:  "Programa de residencias artísticas en Cartagena enfocado en el intercambio cultural caribeño, arte colonial contemporáneo y nuevas narrativas urbanas.",
			Organization: "Fundación Festival Internacional de Música de Cartagena",
			Perimeter:    "Cartagena",
			Type:         "Residencia Artística",
			ArtTypes:     []string{"Arte Caribeño", "Arte Colonial Contemporáneo", "Narrativas Urbanas"},
			Amount:       "COP 35,000,000 - COP 70,000,000",
			AmountMin:    "35000000",
			AmountMax:    "70000000",
			Deadline:     "2026-09-05",
			URL:          "https://www.festivaldemusica.org/residencias-artisticas",
			ContactEmail: "residencias@festivaldemusica.org",
			Source:       "Festival de Música Cartagena",
		},
		{
			Title:        "Programa de Arte Joven - Banco de la República",
			Description:  "Convocatoria anual del Banco de la República para apoyar artistas jóvenes menores de 35 años en todas las disciplinas visuales con énfasis en investigación y experimentación.",
			Organization: "Banco de la República - Área Cultural",
			Perimeter:    "Nacional",
			Type:         "Beca de Investigación",
			ArtTypes:     []string{"Investigación Artística", "Arte Experimental", "Nuevos Medios"},
			Amount:       "COP 40,000,000 - COP 90,000,000",
			AmountMin:    "40000000",
			AmountMax:    "90000000",
			Deadline:     "2026-12-01",
			URL:          "https://www.banrepcultural.org/convocatorias",
			ContactEmail: "convocatorias@banrep.gov.co",
			Eligibility:  "Artistas menores de 35 años, proyectos de investigación en artes visuales",
			Source:       "Banco de la República",
		},
		{
			Title:        "Becas Distritales de Arte - Barranquilla Caribe",
			Description:  "Programa distrital de Barranquilla para el fomento de las artes visuales con enfoque en cultura caribeña, carnaval contemporáneo y arte popular.",
			Organization: "Secretaría de Cultura y Patrimonio - Barranquilla",
			Perimeter:    "Barranquilla",
			Type:         "Beca Distrital",
			ArtTypes:     []string{"Arte Caribeño", "Carnaval Contemporáneo", "Arte Popular"},
			Amount:       "COP 22,000,000 - COP 50,000,000",
			AmountMin:    "22000000",
			AmountMax:    "50000000",
			Deadline:     "2026-10-20",
			URL:          "https://www.barranquilla.gov.co/cultura",
			ContactEmail: "cultura@barranquilla.gov.co",
			Source:       "Alcaldía de Barranquilla",
		},
		{
			Title:        "Programa de Cooperación Artística Colombia-España",
			Description:  "Convocatoria bilateral para intercambio artístico entre Colombia y España, residencias, exposiciones y proyectos curatoriales conjuntos.",
			Organization: "Embajada de España en Colombia - AECID",
			Perimeter:    "Nacional",
			Type:         "Cooperación Internacional",
			ArtTypes:     []string{"Intercambio Cultural", "Arte Contemporáneo", "Curaduría"},
			Amount:       "EUR 15,000 - EUR 35,000",
			AmountMin:    "15000",
			AmountMax:    "35000",
			Currency:     "EUR",
			Deadline:     "2026-11-25",
			URL:          "https://www.aecid.es/ES/Paginas/Inicio.aspx",
			ContactEmail: "cultura.bogota@aecid.es",
			Source:       "AECID",
		},
		{
			Title:        "Programa de Arte Digital y Nuevos Medios",
			Description:  "Convocatoria especializada en arte digital, realidad virtual, arte interactivo y nuevas tecnologías aplicadas al arte contemporáneo colombiano.",
			Organization: "Fundación Gilberto Alzate Avendaño",
			Perimeter:    "Bogotá",
			Type:         "Beca Especializada",
			ArtTypes:     []string{"Arte Digital", "Realidad Virtual", "Arte Interactivo", "Nuevas Tecnologías"},
			Amount:       "COP 45,000,000 - COP 85,000,000",
			AmountMin:    "45000000",
			AmountMax:    "85000000",
			Deadline:     "2026-08-15",
			URL:          "https://fgaa.gov.co/convocatorias",
			ContactEmail: "convocatorias@fgaa.gov.co",
			Source:       "FGAA",
		},
		{
			Title:        "Programa Joven Crea - Arte Visual Juvenil",
			Description:  "Convocatoria nacional para artistas jóvenes entre 18 y 28 años enfocada en arte urbano, grafiti legal, muralismo y expresiones juveniles contemporáneas.",
			Organization: "Instituto Nacional de la Juventud - INJUV",
			Perimeter:    "Nacional",
			Type:         "Beca Juvenil",
			ArtTypes:     []string{"Arte Urbano", "Grafiti Legal", "Muralismo", "Arte Juvenil"},
			Amount:       "COP 15,000,000 - COP 35,000,000",
			AmountMin:    "15000000",
			AmountMax:    "35000000",
			Deadline:     "2026-08-30",
			URL:          "https://www.injuv.gov.co/convocatorias",
			ContactEmail: "joven.crea@injuv.gov.co",
			Eligibility:  "Jóvenes entre 18 y 28 años",
			Source:       "INJUV",
		},
		{
			Title:        "Becas de Arte Étnico y Diversidad Cultural",
			Description:  "Programa especial para promover el arte visual de comunidades indígenas, afrocolombianas, raizales y ROM con enfoque en preservación e innovación cultural.",
			Organization: "Ministerio del Interior - Dirección de Asuntos Étnicos",
			Perimeter:    "Nacional",
			Type:         "Beca Étnica",
			ArtTypes:     []string{"Arte Indígena", "Arte Afrocolombiano", "Arte Raizal", "Diversidad Cultural"},
			Amount:       "COP 30,000,000 - COP 65,000,000",
			AmountMin:    "30000000",
			AmountMax:    "65000000",
			Deadline:     "2026-11-15",
			URL:          "https://www.mininterior.gov.co/grupos-etnicos",
			ContactEmail: "etnicos@mininterior.gov.co",
			Source:       "Ministerio del Interior",
		},
		{
			Title:        "Arte y Medio Ambiente - Colombia Verde",
			Description:  "Convocatoria para proyectos de arte visual que aborden temáticas ambientales, sostenibilidad, cambio climático y biodiversidad colombiana.",
			Organization: "Ministerio de Ambiente y Desarrollo Sostenible",
			Perimeter:    "Nacional",
			Type:         "Beca Ambiental",
			ArtTypes:     []string{"Arte Ambiental", "Sostenibilidad", "Biodiversidad"},
			Amount:       "COP 25,000,000 - COP 60,000,000",
			AmountMin:    "25000000",
			AmountMax:    "60000000",
			Deadline:     "2026-12-10",
			URL:          "https://www.minambiente.gov.co/cultura-ambiental",
			ContactEmail: "cultura.ambiental@minambiente.gov.co",
			Source:       "Minambiente",
		},
	})
}
