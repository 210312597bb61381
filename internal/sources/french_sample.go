package sources

import (
	"github.com/google/uuid"

	"github.com/marie/subvention-scroller/internal/models"
)

// frenchSampleAids is the offline fallback catalog served when the live
// Aides-Territoires API is unavailable or requires authentication.
func frenchSampleAids() []models.Opportunity {
	aids := []models.Opportunity{
		{
			Title:             "Aide à l'innovation numérique",
			Description:       "Subvention destinée aux entreprises développant des solutions numériques innovantes. Montant jusqu'à 50 000€ pour financer la R&D et le développement de prototypes.",
			URL:               "https://aides-territoires.beta.gouv.fr",
			DateCreated:       "15/07/2025",
			DateUpdated:       "20/07/2025",
			Deadline:          "31/12/2026",
			AidTypes:          "Subvention",
			TargetedAudiences: "TPE, PME, Startups",
			Financers:         "Région Île-de-France",
			Perimeter:         "Île-de-France",
			Amount:            "Jusqu'à €50,000",
			AmountMin:         "10000",
			AmountMax:         "50000",
			Currency:          "EUR",
			ProjectManager:    "Marie Dubois - Chargée de mission innovation",
			ContactInfo:       "Email: marie.dubois@iledefrance.fr | Tél: 01.42.33.44.55",
			ContactEmail:      "marie.dubois@iledefrance.fr",
			ContactPhone:      "01.42.33.44.55",
		},
		{
			Title:             "Fonds pour la transition écologique",
			Description:       "Accompagnement financier pour les projets de transition énergétique et environnementale. Soutien aux énergies renouvelables et à l'efficacité énergétique.",
			URL:               "https://aides-territoires.beta.gouv.fr",
			DateCreated:       "01/06/2025",
			DateUpdated:       "10/07/2025",
			Deadline:          "30/11/2026",
			AidTypes:          "Prêt, Subvention",
			TargetedAudiences: "Entreprises, Collectivités",
			Financers:         "ADEME, Banque des Territoires",
			Perimeter:         "France entière",
			Amount:            "Jusqu'à €100,000",
			AmountMin:         "25000",
			AmountMax:         "100000",
			Currency:          "EUR",
			ProjectManager:    "Jean-Pierre Martin - Directeur des programmes verts",
			ContactInfo:       "Email: jp.martin@ademe.fr | Tél: 01.47.65.20.00",
			ContactEmail:      "jp.martin@ademe.fr",
			ContactPhone:      "01.47.65.20.00",
		},
		{
			Title:             "Bourse French Tech",
			Description:       "Programme de financement pour les startups technologiques en phase d'amorçage. Accompagnement personnalisé et accès au réseau French Tech.",
			URL:               "https://www.lafrenchtech.com",
			DateCreated:       "20/05/2025",
			DateUpdated:       "01/07/2025",
			Deadline:          "15/10/2026",
			AidTypes:          "Bourse, Accompagnement",
			TargetedAudiences: "Startups tech",
			Financers:         "Mission French Tech",
			Perimeter:         "Métropoles French Tech",
			Amount:            "Jusqu'à €30,000",
			AmountMin:         "15000",
			AmountMax:         "30000",
			Currency:          "EUR",
			ProjectManager:    "Sophie Leroy - Responsable startup",
			ContactInfo:       "Email: sophie.leroy@missionfrenchtech.fr | Tél: 01.53.18.50.00",
			ContactEmail:      "sophie.leroy@missionfrenchtech.fr",
			ContactPhone:      "01.53.18.50.00",
		},
	}

	for i := range aids {
		aids[i].ID = uuid.New()
		aids[i].Origin = models.OriginFrench
		aids[i].Source = "Aides-Territoires (Sample)"
		aids[i].Category = "French Subvention"
		aids[i].DaysUntilDeadline = daysUntil(aids[i].Deadline)
	}
	return aids
}
