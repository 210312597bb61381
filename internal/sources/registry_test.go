package sources

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadRegistry_Embedded(t *testing.T) {
	reg, err := LoadRegistry("")
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if len(reg.Sources) == 0 {
		t.Fatal("embedded registry is empty")
	}

	for _, id := range []string{"aides_territoires", "european_dynamic", "colombian_funding", "eu_funding_portal"} {
		if reg.ByID(id) == nil {
			t.Errorf("source %q missing from registry", id)
		}
	}
	if reg.ByID("nope") != nil {
		t.Error("ByID should return nil for unknown ids")
	}

	for _, src := range reg.Sources {
		if src.ID == "" || src.Name == "" || src.Origin == "" || src.Strategy == "" {
			t.Errorf("incomplete source config: %+v", src)
		}
	}
}

func TestLoadRegistry_ExpandsEnv(t *testing.T) {
	os.Setenv("AIDES_TERRITOIRES_API_KEY", "secret-key")
	defer os.Unsetenv("AIDES_TERRITOIRES_API_KEY")

	reg, err := LoadRegistry("")
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	src := reg.ByID("aides_territoires")
	if src == nil {
		t.Fatal("aides_territoires missing")
	}
	if src.APIKey != "secret-key" {
		t.Errorf("APIKey = %q, want the expanded env value", src.APIKey)
	}
}

func TestLoadRegistry_FilesystemOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	override := `sources:
  - id: override_only
    name: Override
    origin: french
    strategy: catalog
`
	if err := os.WriteFile(path, []byte(override), 0o644); err != nil {
		t.Fatalf("writing override: %v", err)
	}

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if len(reg.Sources) != 1 || reg.ByID("override_only") == nil {
		t.Fatalf("filesystem override ignored; got %d sources", len(reg.Sources))
	}
}

func TestLoadRegistry_MissingOverrideFallsBackToEmbedded(t *testing.T) {
	reg, err := LoadRegistry(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if reg.ByID("aides_territoires") == nil {
		t.Error("embedded fallback not used for a missing override file")
	}
}

func TestBuildAdapters_FromEmbeddedRegistry(t *testing.T) {
	reg, err := LoadRegistry("")
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}

	french, european, _ := BuildAdapters(reg)

	fr, ok := french.(*AidesTerritoires)
	if !ok {
		t.Fatalf("french adapter is %T", french)
	}
	if want := reg.ByID("aides_territoires").BaseURL; fr.BaseURL != want {
		t.Errorf("French BaseURL = %q, want %q from the registry", fr.BaseURL, want)
	}
	if fr.Client.Timeout != 15*time.Second {
		t.Errorf("French client timeout = %v, want 15s from the registry", fr.Client.Timeout)
	}

	eu, ok := european.(*EuropeanDynamic)
	if !ok {
		t.Fatalf("european adapter is %T", european)
	}
	if eu.Portal == nil {
		t.Fatal("portal scraper not attached from the eu_funding_portal entry")
	}
	if want := reg.ByID("eu_funding_portal").BaseURL; eu.Portal.StartURL != want {
		t.Errorf("portal StartURL = %q, want %q", eu.Portal.StartURL, want)
	}
	if eu.Portal.Timeout != 20*time.Second {
		t.Errorf("portal timeout = %v, want 20s from the registry", eu.Portal.Timeout)
	}
}

func TestBuildAdapters_NilRegistryKeepsDefaults(t *testing.T) {
	french, european, colombian := BuildAdapters(nil)

	fr := french.(*AidesTerritoires)
	if fr.BaseURL != aidesTerritoiresBaseURL {
		t.Errorf("French BaseURL = %q, want the built-in default", fr.BaseURL)
	}
	if eu := european.(*EuropeanDynamic); eu.Portal != nil {
		t.Error("portal scraper attached without a registry entry")
	}
	if colombian == nil {
		t.Error("Colombian adapter missing")
	}
}
