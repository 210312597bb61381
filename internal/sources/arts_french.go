package sources

import (
	"log"

	"github.com/google/uuid"

	"github.com/marie/subvention-scroller/internal/models"
)

// FrenchVisualArts serves the curated French visual arts catalog:
// photography, painting and drawing, sculpture and installation,
// graphic arts and applied arts. Performing arts are out of scope.
type FrenchVisualArts struct{}

func NewFrenchVisualArts() *FrenchVisualArts { return &FrenchVisualArts{} }

func (s *FrenchVisualArts) Name() string { return "French Visual Arts" }

func (s *FrenchVisualArts) Query(f ArtsFilter) []models.Opportunity {
	var all []models.Opportunity
	all = append(all, photographyProjects()...)
	all = append(all, paintingDrawingProjects()...)
	all = append(all, sculptureInstallationProjects()...)
	all = append(all, graphicArtsProjects()...)
	all = append(all, appliedArtsProjects()...)

	var out []models.Opportunity
	for _, opp := range all {
		if !matchesArtType(opp, f.ArtType) {
			continue
		}
		if !withinAmountRange(opp, f.MinAmount, f.MaxAmount, func(string) float64 { return 1 }) {
			continue
		}
		out = append(out, opp)
	}
	log.Printf("Found %d French visual arts projects", len(out))
	return out
}

func stampFrenchArts(opps []models.Opportunity) []models.Opportunity {
	for i := range opps {
		opps[i].ID = uuid.New()
		opps[i].Origin = models.OriginFrench
		opps[i].Category = "Arts Visuels"
		opps[i].Currency = "EUR"
		opps[i].Perimeter = "France"
		opps[i].DaysUntilDeadline = daysUntil(opps[i].Deadline)
	}
	return opps
}

func photographyProjects() []models.Opportunity {
	return stampFrenchArts([]models.Opportunity{
		{
			Title:        "Bourse de création photographique",
			Organization: "Centre National de la Photographie",
			Type:         "Photographie",
			ArtTypes:     []string{"Photographie"},
			Amount:       "8 000 € - 20 000 €",
			AmountMin:    "8000",
			AmountMax:    "20000",
			Deadline:     "2026-11-15",
			Description:  "Soutien financier pour projets photographiques documentaires ou artistiques",
			URL:          "https://www.cnp-photographie.com/bourses",
			ContactEmail: "bourses@cnp-photographie.com",
			ContactPhone: "01 44 78 75 00",
			Eligibility:  "Photographe professionnel ou étudiant en fin de cursus, résidence en France, projet inédit",
			Source:       "CNP",
		},
		{
			Title:        "Prix de photographie contemporaine",
			Organization: "Fondation Henri Cartier-Bresson",
			Type:         "Photographie",
			ArtTypes:     []string{"Photographie"},
			Amount:       "10 000 € - 25 000 €",
			AmountMin:    "10000",
			AmountMax:    "25000",
			Deadline:     "2026-12-01",
			Description:  "Prix annuel pour photographes émergents et confirmés",
			URL:          "https://www.henricartierbresson.org/prix/",
			ContactEmail: "prix@henricartierbresson.org",
			Eligibility:  "Photographe de moins de 35 ans, première exposition personnelle",
			Source:       "Fondation HCB",
		},
		{
			Title:        "Résidence photographique - Villa Médicis",
			Organization: "Académie de France à Rome",
			Type:         "Photographie",
			ArtTypes:     []string{"Photographie", "Résidence"},
			Amount:       "15 000 € - 30 000 €",
			AmountMin:    "15000",
			AmountMax:    "30000",
			Deadline:     "2026-10-30",
			Description:  "Résidence de 12 mois pour photographes artistiques",
			URL:          "https://www.villamedici.it/fr/residences/",
			ContactEmail: "residences@villamedici.it",
			Eligibility:  "Nationalité française ou résidence française 5 ans, formation artistique supérieure",
			Source:       "Villa Médicis",
		},
	})
}

func paintingDrawingProjects() []models.Opportunity {
	return stampFrenchArts([]models.Opportunity{
		{
			Title:        "Prix de peinture contemporaine",
			Organization: "Fondation Taylor",
			Type:         "Peinture",
			ArtTypes:     []string{"Peinture"},
			Amount:       "3 000 € - 15 000 €",
			AmountMin:    "3000",
			AmountMax:    "15000",
			Deadline:     "2026-12-01",
			Description:  "Concours annuel pour peintres émergents et confirmés",
			URL:          "https://www.fondationtaylor.fr/prix-peinture",
			ContactEmail: "prix@fondationtaylor.fr",
			Eligibility:  "Peintre de toute nationalité, œuvres réalisées dans les 3 dernières années",
			Source:       "Fondation Taylor",
		},
		{
			Title:        "Bourse de création - Arts plastiques",
			Organization: "Ministère de la Culture",
			Type:         "Peinture/Dessin",
			ArtTypes:     []string{"Peinture", "Dessin"},
			Amount:       "5 000 € - 25 000 €",
			AmountMin:    "5000",
			AmountMax:    "25000",
			Deadline:     "2026-10-15",
			Description:  "Soutien aux artistes plasticiens pour leurs projets de création",
			URL:          "https://www.culture.gouv.fr/Aides-demarches/Aides-aux-particuliers/Aide-a-la-creation-artistique",
			Source:       "Ministère de la Culture",
		},
		{
			Title:        "Prix du dessin contemporain",
			Organization: "Fondation Daniel et Nina Carasso",
			Type:         "Dessin",
			ArtTypes:     []string{"Dessin", "Arts graphiques"},
			Amount:       "4 000 € - 12 000 €",
			AmountMin:    "4000",
			AmountMax:    "12000",
			Deadline:     "2026-11-30",
			Description:  "Prix dédié aux arts graphiques et au dessin contemporain",
			URL:          "https://www.fondationcarasso.org/fr/prix-dessin",
			Source:       "Fondation Carasso",
		},
	})
}

func sculptureInstallationProjects() []models.Opportunity {
	return stampFrenchArts([]models.Opportunity{
		{
			Title:        "Résidence de sculpture - Institut français",
			Organization: "Institut français",
			Type:         "Sculpture",
			ArtTypes:     []string{"Sculpture"},
			Amount:       "10 000 € - 18 000 €",
			AmountMin:    "10000",
			AmountMax:    "18000",
			Deadline:     "2026-11-30",
			Description:  "Programme de résidence pour sculpteurs et artistes 3D",
			URL:          "https://www.institutfrancais.com/fr/artist-residency",
			Source:       "Institut français",
		},
		{
			Title:        "Bourse d'installation artistique",
			Organization: "Fondation de France",
			Type:         "Installation",
			ArtTypes:     []string{"Installation"},
			Amount:       "6 000 € - 25 000 €",
			AmountMin:    "6000",
			AmountMax:    "25000",
			Deadline:     "2026-12-15",
			Description:  "Financement pour créations d'installations artistiques",
			URL:          "https://www.fondationdefrance.org/fr/bourses-installation-artistique",
			Source:       "Fondation de France",
		},
		{
			Title:        "Prix de sculpture publique",
			Organization: "CNAP (Centre National des Arts Plastiques)",
			Type:         "Sculpture",
			ArtTypes:     []string{"Sculpture", "Espace public"},
			Amount:       "15 000 € - 40 000 €",
			AmountMin:    "15000",
			AmountMax:    "40000",
			Deadline:     "2026-10-01",
			Description:  "Commande publique pour œuvres sculpturales",
			URL:          "https://www.cnap.fr/commandes-publiques",
			Source:       "CNAP",
		},
	})
}

func graphicArtsProjects() []models.Opportunity {
	return stampFrenchArts([]models.Opportunity{
		{
			Title:        "Aide aux arts graphiques",
			Organization: "CNAP",
			Type:         "Arts graphiques",
			ArtTypes:     []string{"Arts graphiques", "Illustration", "Gravure", "Estampe"},
			Amount:       "2 000 € - 12 000 €",
			AmountMin:    "2000",
			AmountMax:    "12000",
			Deadline:     "2026-10-30",
			Description:  "Soutien pour projets d'illustration, gravure, estampe",
			URL:          "https://www.cnap.fr/aides-aux-artistes",
			Source:       "CNAP",
		},
		{
			Title:        "Prix de l'illustration",
			Organization: "Salon du livre et de la presse jeunesse",
			Type:         "Illustration",
			ArtTypes:     []string{"Illustration"},
			Amount:       "3 000 € - 8 000 €",
			AmountMin:    "3000",
			AmountMax:    "8000",
			Deadline:     "2026-09-15",
			Description:  "Prix pour illustrateurs émergents",
			URL:          "https://www.salon-livre-presse-jeunesse.net/prix-illustration",
			Source:       "SLPJ",
		},
		{
			Title:        "Bourse de gravure traditionnelle",
			Organization: "Atelier Populaire de Gravure",
			Type:         "Gravure",
			ArtTypes:     []string{"Gravure"},
			Amount:       "1 500 € - 6 000 €",
			AmountMin:    "1500",
			AmountMax:    "6000",
			Deadline:     "2026-11-15",
			Description:  "Soutien aux techniques de gravure traditionnelle",
			URL:          "https://www.atelier-gravure.fr/bourses",
			Source:       "Atelier Gravure",
		},
	})
}

func appliedArtsProjects() []models.Opportunity {
	return stampFrenchArts([]models.Opportunity{
		{
			Title:        "Bourse de création céramique",
			Organization: "Centre Céramique Contemporaine",
			Type:         "Céramique",
			ArtTypes:     []string{"Céramique", "Arts appliqués"},
			Amount:       "4 000 € - 15 000 €",
			AmountMin:    "4000",
			AmountMax:    "15000",
			Deadline:     "2026-12-10",
			Description:  "Soutien aux créateurs céramistes",
			URL:          "https://www.ceramique-contemporaine.fr/bourses",
			Source:       "CCC",
		},
		{
			Title:        "Prix du textile artistique",
			Organization: "Cité internationale de la tapisserie",
			Type:         "Textile",
			ArtTypes:     []string{"Textile", "Arts appliqués"},
			Amount:       "5 000 € - 18 000 €",
			AmountMin:    "5000",
			AmountMax:    "18000",
			Deadline:     "2026-11-01",
			Description:  "Prix pour créations textiles contemporaines",
			URL:          "https://www.cite-tapisserie.fr/prix-textile",
			Source:       "Cité Tapisserie",
		},
	})
}
