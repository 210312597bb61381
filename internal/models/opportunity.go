package models

import (
	"github.com/google/uuid"
)

// Origin identifies which family of sources produced an opportunity.
type Origin string

const (
	OriginFrench    Origin = "french"
	OriginEuropean  Origin = "european"
	OriginColombian Origin = "colombian"
)

// NoDeadline is the sentinel for opportunities whose deadline is absent or
// unparseable. Records carrying it sort after every concrete deadline.
const NoDeadline = 999

// Opportunity is the canonical funding listing. Every source adapter maps its
// native record shape into this struct at its own boundary, so downstream code
// never inspects source-specific field conventions.
type Opportunity struct {
	ID                uuid.UUID `json:"id"`
	Origin            Origin    `json:"origin"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Organization      string    `json:"organization"`
	Source            string    `json:"source"`
	Category          string    `json:"category"`
	Type              string    `json:"type"`
	ArtTypes          []string  `json:"art_types,omitempty"`
	Perimeter         string    `json:"perimeter"`
	Amount            string    `json:"amount"`
	AmountMin         string    `json:"amount_min"`
	AmountMax         string    `json:"amount_max"`
	Currency          string    `json:"currency"`
	Deadline          string    `json:"deadline"`
	DaysUntilDeadline int       `json:"days_until_deadline"`
	URL               string    `json:"url"`
	ContactEmail      string    `json:"contact_email,omitempty"`
	ContactPhone      string    `json:"contact_phone,omitempty"`
	ContactInfo       string    `json:"contact_info,omitempty"`
	ProjectManager    string    `json:"project_manager,omitempty"`
	Financers         string    `json:"financers,omitempty"`
	TargetedAudiences string    `json:"targeted_audiences,omitempty"`
	AidTypes          string    `json:"aid_types,omitempty"`
	Eligibility       string    `json:"eligibility,omitempty"`
	DateCreated       string    `json:"date_created,omitempty"`
	DateUpdated       string    `json:"date_updated,omitempty"`

	// Validation enrichment, appended after a link-check pass.
	LinkStatus string `json:"link_status,omitempty"`
	LinkActive bool   `json:"link_active,omitempty"`
}

// SearchResults groups opportunities by origin, preserving the per-source
// ordering produced by the aggregator.
type SearchResults struct {
	French    []Opportunity `json:"french"`
	European  []Opportunity `json:"european"`
	Colombian []Opportunity `json:"colombian"`
}

// All returns the three origin lists concatenated, French first.
func (r SearchResults) All() []Opportunity {
	out := make([]Opportunity, 0, len(r.French)+len(r.European)+len(r.Colombian))
	out = append(out, r.French...)
	out = append(out, r.European...)
	out = append(out, r.Colombian...)
	return out
}

// Total is the number of opportunities across all origins.
func (r SearchResults) Total() int {
	return len(r.French) + len(r.European) + len(r.Colombian)
}

// SearchParams is a plain configuration value describing one search request.
type SearchParams struct {
	Keywords         string `json:"keywords"`
	Region           string `json:"region"`
	EuropeanRegion   string `json:"european_region"`
	ColombianRegion  string `json:"colombian_region"`
	IncludeEuropean  bool   `json:"include_european"`
	IncludeColombian bool   `json:"include_colombian"`
	Limit            int    `json:"limit"`

	// Visual-arts filters.
	ArtType   string `json:"art_type,omitempty"`
	Country   string `json:"country,omitempty"`
	City      string `json:"city,omitempty"`
	MinAmount int    `json:"min_amount,omitempty"`
	MaxAmount int    `json:"max_amount,omitempty"`
}

// SearchSession carries the state of one caller-owned search exchange. The
// aggregator reads and returns it explicitly; no package holds ambient state.
type SearchSession struct {
	Params  SearchParams  `json:"params"`
	Results SearchResults `json:"results"`
}
