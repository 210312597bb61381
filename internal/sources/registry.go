package sources

import (
	"embed"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed config/sources.yaml
var sourcesYAML embed.FS

// Registry holds the configuration for all funding sources.
type Registry struct {
	Sources []SourceConfig `yaml:"sources"`
}

// FetchConfig defines HTTP fetching configuration for a live source.
type FetchConfig struct {
	TimeoutSeconds int     `yaml:"timeout_seconds,omitempty"` // Default: 30
	RateLimitRPS   float64 `yaml:"rate_limit_rps,omitempty"`  // Requests per second
	AcceptLanguage string  `yaml:"accept_language,omitempty"`
}

// SourceConfig describes a single funding source.
type SourceConfig struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Origin      string `yaml:"origin"`   // "french", "european", "colombian"
	Strategy    string `yaml:"strategy"` // "api", "catalog", "portal_scrape"
	BaseURL     string `yaml:"base_url,omitempty"`
	APIKey      string `yaml:"api_key,omitempty"`
	Description string `yaml:"description,omitempty"`

	Fetch FetchConfig `yaml:"fetch,omitempty"`
}

// LoadRegistry reads the source registry. A file at the given path wins over
// the embedded sources.yaml, for local development; the embedded copy is the
// fallback when no override exists.
func LoadRegistry(path string) (*Registry, error) {
	var data []byte
	var err error
	if path != "" {
		data, err = os.ReadFile(path)
	}
	if path == "" || err != nil {
		data, err = sourcesYAML.ReadFile("config/sources.yaml")
		if err != nil {
			return nil, err
		}
	}

	// Expand environment variables within the YAML content (e.g. ${API_KEY})
	expanded := os.ExpandEnv(string(data))

	var reg Registry
	if err := yaml.Unmarshal([]byte(expanded), &reg); err != nil {
		return nil, err
	}

	return &reg, nil
}

// DefaultRegistryPath is where a local override of the embedded registry is
// looked up at startup.
const DefaultRegistryPath = "config/sources.yaml"

// BuildAdapters constructs the three origin adapters from registry
// configuration. Missing or unknown entries keep the built-in defaults, so a
// broken registry still yields a working adapter set.
func BuildAdapters(reg *Registry) (french, european, colombian Adapter) {
	if reg == nil {
		reg = &Registry{}
	}

	fr := NewAidesTerritoires()
	if cfg := reg.ByID("aides_territoires"); cfg != nil {
		fr.Configure(cfg)
	}

	eu := NewEuropeanDynamic()
	if cfg := reg.ByID("eu_funding_portal"); cfg != nil {
		eu.ConfigurePortal(cfg)
	}

	return fr, eu, NewColombianFunding()
}

// ByID returns the source config with the given id, or nil.
func (r *Registry) ByID(id string) *SourceConfig {
	for i := range r.Sources {
		if r.Sources[i].ID == id {
			return &r.Sources[i]
		}
	}
	return nil
}
