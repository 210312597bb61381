package sources

import "strings"

// Region describes one selectable geographic filter and the country codes it
// covers.
type Region struct {
	Name      string
	Countries []string
}

// EuropeanRegions maps region codes to country groupings used by the European
// adapter's geographic filter.
var EuropeanRegions = map[string]Region{
	"WESTERN":  {Name: "Western Europe", Countries: []string{"DE", "FR", "NL", "BE", "AT", "CH", "LU"}},
	"NORDIC":   {Name: "Nordic Countries", Countries: []string{"DK", "SE", "NO", "FI", "IS"}},
	"SOUTHERN": {Name: "Southern Europe", Countries: []string{"IT", "ES", "PT", "GR"}},
	"EASTERN":  {Name: "Eastern Europe", Countries: []string{"PL", "CZ", "HU", "RO", "BG"}},
	"UK_IE":    {Name: "UK and Ireland", Countries: []string{"GB", "IE"}},
}

// EuropeanCountries maps ISO country codes to display names.
var EuropeanCountries = map[string]string{
	"DE": "Germany", "FR": "France", "NL": "Netherlands", "BE": "Belgium",
	"AT": "Austria", "CH": "Switzerland", "LU": "Luxembourg",
	"DK": "Denmark", "SE": "Sweden", "NO": "Norway", "FI": "Finland", "IS": "Iceland",
	"IT": "Italy", "ES": "Spain", "PT": "Portugal", "GR": "Greece",
	"PL": "Poland", "CZ": "Czech Republic", "HU": "Hungary", "RO": "Romania", "BG": "Bulgaria",
	"GB": "United Kingdom", "IE": "Ireland",
}

// ColombianRegions maps region codes to the cities they cover. "Nacional"
// entries always match regardless of the requested region.
var ColombianRegions = map[string]Region{
	"BOGOTA":    {Name: "Bogotá D.C.", Countries: []string{"Bogotá"}},
	"ANTIOQUIA": {Name: "Antioquia", Countries: []string{"Medellín"}},
	"VALLE":     {Name: "Valle del Cauca", Countries: []string{"Cali"}},
	"CARIBE":    {Name: "Región Caribe", Countries: []string{"Barranquilla", "Cartagena"}},
	"NACIONAL":  {Name: "Nacional", Countries: []string{"Nacional"}},
}

// regionCountryCodes resolves a European region code (or bare country code)
// into the country codes it should match.
func regionCountryCodes(region string) []string {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		return nil
	}
	if r, ok := EuropeanRegions[region]; ok {
		return r.Countries
	}
	return []string{region}
}
