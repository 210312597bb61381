package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marie/subvention-scroller/internal/models"
)

const aidesTerritoiresBaseURL = "https://aides-territoires.beta.gouv.fr/api"

// AidesTerritoires searches the French national subvention catalog. When the
// live API requires authentication or is unreachable the adapter falls back
// to a bundled sample set; a rate-limit response yields an empty list.
type AidesTerritoires struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewAidesTerritoires() *AidesTerritoires {
	return &AidesTerritoires{
		BaseURL: aidesTerritoiresBaseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Configure applies the registry entry: base URL, API key and client timeout.
func (a *AidesTerritoires) Configure(cfg *SourceConfig) {
	if cfg.BaseURL != "" {
		a.BaseURL = cfg.BaseURL
	}
	a.APIKey = cfg.APIKey
	if cfg.Fetch.TimeoutSeconds > 0 {
		a.Client.Timeout = time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second
	}
}

func (a *AidesTerritoires) Name() string { return "Aides-Territoires (France)" }

// Search queries the live API and normalizes each aid into the canonical
// opportunity shape. It never returns an error past this boundary.
func (a *AidesTerritoires) Search(ctx context.Context, keywords, region string, limit int) []models.Opportunity {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("ordering", "-date_created")
	params.Set("is_live", "true")
	if keywords != "" {
		params.Set("text", keywords)
	}
	if region != "" {
		params.Set("perimeter", region)
	}

	endpoint := a.BaseURL + "/aids/?" + params.Encode()
	log.Printf("Searching Aides-Territoires: %s", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Printf("Aides-Territoires request build failed: %v", err)
		return a.sampleData(keywords, region, limit)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")
	if a.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.APIKey)
	}

	resp, err := a.Client.Do(req)
	if err != nil {
		log.Printf("Error fetching from Aides-Territoires: %v", err)
		return a.sampleData(keywords, region, limit)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		log.Print("Aides-Territoires API requires authentication, providing sample data")
		return a.sampleData(keywords, region, limit)
	case resp.StatusCode == http.StatusTooManyRequests:
		log.Print("Rate limit exceeded for Aides-Territoires API")
		return nil
	case resp.StatusCode != http.StatusOK:
		log.Printf("Aides-Territoires returned HTTP %d, providing sample data", resp.StatusCode)
		return a.sampleData(keywords, region, limit)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Error reading Aides-Territoires response: %v", err)
		return a.sampleData(keywords, region, limit)
	}

	var payload aidesResponse
	if err := json.Unmarshal(bytes.TrimSpace(body), &payload); err != nil {
		log.Printf("Error decoding Aides-Territoires response: %v", err)
		return a.sampleData(keywords, region, limit)
	}

	opps := make([]models.Opportunity, 0, len(payload.Results))
	for _, aid := range payload.Results {
		opps = append(opps, aid.toOpportunity())
	}
	log.Printf("Found %d French subventions", len(opps))
	return capResults(opps, limit)
}

func (a *AidesTerritoires) sampleData(keywords, region string, limit int) []models.Opportunity {
	samples := frenchSampleAids()
	opps := make([]models.Opportunity, 0, len(samples))
	for _, opp := range samples {
		if matchesKeywords(opp, keywords) {
			opps = append(opps, opp)
		}
	}
	_ = region // samples are national; the perimeter filter only applies live
	return capResults(opps, limit)
}

type aidesResponse struct {
	Results []aidRecord `json:"results"`
}

type namedRef struct {
	Name string `json:"name"`
}

type aidRecord struct {
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	URL                string     `json:"url"`
	DateCreated        string     `json:"date_created"`
	DateUpdated        string     `json:"date_updated"`
	SubmissionDeadline string     `json:"submission_deadline"`
	AidTypes           []namedRef `json:"aid_types"`
	TargetedAudiences  []namedRef `json:"targeted_audiences"`
	Financers          []namedRef `json:"financers"`
	Perimeter          namedRef   `json:"perimeter"`
	RateLowerBound     flexString `json:"subvention_rate_lower_bound"`
	RateUpperBound     flexString `json:"subvention_rate_upper_bound"`
	ContactEmail       string     `json:"contact_email"`
	ContactPhone       string     `json:"contact_phone"`
	ContactDetail      string     `json:"contact_detail"`
	ContactName        string     `json:"contact_name"`
}

// toOpportunity canonicalizes one live aid record; every duck-typed field
// fallback of the upstream API is resolved here, once, at the boundary.
func (r aidRecord) toOpportunity() models.Opportunity {
	deadline := formatDate(r.SubmissionDeadline)

	title := r.Name
	if title == "" {
		title = "N/A"
	}

	return models.Opportunity{
		ID:                uuid.New(),
		Origin:            models.OriginFrench,
		Title:             title,
		Description:       cleanHTML(r.Description, 500),
		URL:               r.URL,
		DateCreated:       formatDate(r.DateCreated),
		DateUpdated:       formatDate(r.DateUpdated),
		Deadline:          deadline,
		AidTypes:          joinNames(r.AidTypes),
		TargetedAudiences: joinNames(r.TargetedAudiences),
		Financers:         joinNames(r.Financers),
		Perimeter:         r.Perimeter.Name,
		Amount:            formatFrenchAmount(string(r.RateLowerBound), string(r.RateUpperBound)),
		AmountMin:         string(r.RateLowerBound),
		AmountMax:         string(r.RateUpperBound),
		Currency:          "EUR",
		ProjectManager:    r.projectManager(),
		ContactInfo:       r.contactInfo(),
		ContactEmail:      r.ContactEmail,
		ContactPhone:      r.ContactPhone,
		DaysUntilDeadline: daysUntil(deadline),
		Source:            "Aides-Territoires (France)",
		Category:          "French Subvention",
	}
}

func (r aidRecord) contactInfo() string {
	var contacts []string
	if r.ContactEmail != "" {
		contacts = append(contacts, "Email: "+r.ContactEmail)
	}
	if r.ContactPhone != "" {
		contacts = append(contacts, "Tél: "+r.ContactPhone)
	}
	if r.ContactDetail != "" {
		contacts = append(contacts, r.ContactDetail)
	}
	if len(contacts) == 0 {
		return "Contact non disponible"
	}
	return strings.Join(contacts, " | ")
}

func (r aidRecord) projectManager() string {
	if r.ContactName != "" {
		return r.ContactName
	}
	if len(r.Financers) > 0 && r.Financers[0].Name != "" {
		return "Géré par " + r.Financers[0].Name
	}
	return "Gestionnaire non spécifié"
}

func joinNames(refs []namedRef) string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref.Name != "" {
			names = append(names, ref.Name)
		}
	}
	return strings.Join(names, ", ")
}

func formatFrenchAmount(minAmount, maxAmount string) string {
	switch {
	case minAmount != "" && maxAmount != "":
		return fmt.Sprintf("€%s - €%s", minAmount, maxAmount)
	case maxAmount != "":
		return "Jusqu'à €" + maxAmount
	case minAmount != "":
		return "À partir de €" + minAmount
	default:
		return "Montant non spécifié"
	}
}

// flexString tolerates upstream fields that arrive as string, number or null.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}
