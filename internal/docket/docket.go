// Package docket derives persisted case metadata (the docket record) from a
// case slug and an optional content page.
package docket

import (
	"strings"
	"time"
)

// CaseType classifies a case for the docket record.
type CaseType string

const (
	TypeCivil        CaseType = "civil"
	TypeCriminal     CaseType = "criminal"
	TypeSpecialCivil CaseType = "special civil"
	TypeMunicipal    CaseType = "municipal"
)

// Record is the derived, persisted docket metadata for one case. It is
// fully regenerated on every run, never merged.
type Record struct {
	Docket      string   `yaml:"docket"`
	County      string   `yaml:"county"`
	Type        CaseType `yaml:"type"`
	Parties     []string `yaml:"parties"`
	LastUpdated string   `yaml:"last_updated"`
}

// Metadata is the optional, read-only front matter of a case's content
// page. A missing or unparsable page degrades to the zero value.
type Metadata struct {
	ID            string   `yaml:"id"`
	Dockets       []string `yaml:"dockets"`
	PrimaryDocket string   `yaml:"primary_docket"`
	Venue         string   `yaml:"venue"`
	CaseType      string   `yaml:"case_type"`
	Parties       []string `yaml:"parties"`
	Summary       string   `yaml:"summary"`
	Overview      string   `yaml:"overview"`

	// Body is the markdown below the front matter, kept for summary fallback.
	Body string `yaml:"-"`
}

// countyHints maps the venue token (the part of a case slug before the
// first hyphen) to a county name. NJ vicinage codes plus the federal and
// appellate prefixes. Never mutated at runtime.
var countyHints = map[string]string{
	"atl":  "Atlantic County",
	"ber":  "Bergen County",
	"bur":  "Burlington County",
	"cam":  "Camden County",
	"cpm":  "Cape May County",
	"cum":  "Cumberland County",
	"esx":  "Essex County",
	"glo":  "Gloucester County",
	"hud":  "Hudson County",
	"hnt":  "Hunterdon County",
	"mer":  "Mercer County",
	"mid":  "Middlesex County",
	"mon":  "Monmouth County",
	"mrs":  "Morris County",
	"ocn":  "Ocean County",
	"pas":  "Passaic County",
	"slm":  "Salem County",
	"som":  "Somerset County",
	"ssx":  "Sussex County",
	"unn":  "Union County",
	"wrn":  "Warren County",
	"usdj": "District of New Jersey",
	"a":    "Statewide (Appellate Division)",
}

// Synthesize builds the docket record for slug from optional metadata and
// naming-convention heuristics. Metadata fields win over heuristics;
// extraHints overlays the builtin county table (config-supplied).
func Synthesize(slug string, meta Metadata, extraHints map[string]string, now time.Time) Record {
	return Record{
		Docket:      strings.ToUpper(docketID(slug, meta)),
		County:      county(slug, meta, extraHints),
		Type:        caseType(slug, meta),
		Parties:     parties(meta),
		LastUpdated: now.Format(time.RFC3339),
	}
}

func docketID(slug string, meta Metadata) string {
	if meta.PrimaryDocket != "" {
		return meta.PrimaryDocket
	}
	if len(meta.Dockets) > 0 {
		return meta.Dockets[0]
	}
	return slug
}

func county(slug string, meta Metadata, extraHints map[string]string) string {
	if meta.Venue != "" {
		return meta.Venue
	}
	if strings.HasPrefix(slug, "usdj") {
		return countyHints["usdj"]
	}
	if strings.HasPrefix(slug, "a-") {
		return countyHints["a"]
	}
	token, _, _ := strings.Cut(slug, "-")
	if name, ok := extraHints[token]; ok {
		return name
	}
	if name, ok := countyHints[token]; ok {
		return name
	}
	return "Unknown"
}

func caseType(slug string, meta Metadata) CaseType {
	hint := strings.ToLower(meta.CaseType)
	switch {
	case strings.Contains(hint, "special"):
		return TypeSpecialCivil
	case strings.Contains(hint, "municipal"):
		return TypeMunicipal
	case strings.Contains(hint, "criminal"), strings.Contains(hint, "post-conviction"):
		return TypeCriminal
	}

	// No usable metadata hint: fall back to slug conventions.
	switch {
	case strings.Contains(slug, "-dc-"), strings.Contains(slug, "-sc-"):
		return TypeSpecialCivil
	case strings.HasPrefix(slug, "atl-") && !strings.Contains(slug, "-l-"):
		return TypeCriminal
	}
	return TypeCivil
}

func parties(meta Metadata) []string {
	if len(meta.Parties) > 0 {
		return meta.Parties
	}
	return []string{}
}

// Equivalent reports whether two records carry the same derived fields,
// ignoring LastUpdated. Used to keep the previous timestamp (and therefore
// the previous file bytes) when nothing actually changed.
func Equivalent(a, b Record) bool {
	if a.Docket != b.Docket || a.County != b.County || a.Type != b.Type {
		return false
	}
	if len(a.Parties) != len(b.Parties) {
		return false
	}
	for i := range a.Parties {
		if a.Parties[i] != b.Parties[i] {
			return false
		}
	}
	return true
}
