package docket

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

func TestSynthesizeHeuristicOnly(t *testing.T) {
	tests := []struct {
		name       string
		slug       string
		wantCounty string
		wantType   CaseType
	}{
		{"atlantic law division", "atl-l-002794-25", "Atlantic County", TypeCivil},
		{"federal district", "usdj-1-22-cv-06206", "District of New Jersey", TypeCivil},
		{"appellate", "a-000123-25", "Statewide (Appellate Division)", TypeCivil},
		{"atlantic criminal", "atl-25-001234", "Atlantic County", TypeCriminal},
		{"special civil dc", "atl-dc-004321-25", "Atlantic County", TypeSpecialCivil},
		{"special civil sc", "mer-sc-000777-25", "Mercer County", TypeSpecialCivil},
		{"unknown venue", "zzz-l-000001-25", "Unknown", TypeCivil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Synthesize(tt.slug, Metadata{}, nil, testNow)
			if rec.County != tt.wantCounty {
				t.Errorf("County = %q, want %q", rec.County, tt.wantCounty)
			}
			if rec.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", rec.Type, tt.wantType)
			}
		})
	}
}

func TestSynthesizeDocketID(t *testing.T) {
	slug := "atl-l-002794-25"

	rec := Synthesize(slug, Metadata{}, nil, testNow)
	if rec.Docket != "ATL-L-002794-25" {
		t.Errorf("Docket = %q, want upper-cased slug", rec.Docket)
	}

	rec = Synthesize(slug, Metadata{Dockets: []string{"atl-l-000001-24", "atl-l-000002-24"}}, nil, testNow)
	if rec.Docket != "ATL-L-000001-24" {
		t.Errorf("Docket = %q, want first listed docket", rec.Docket)
	}

	rec = Synthesize(slug, Metadata{
		PrimaryDocket: "atl-l-009999-25",
		Dockets:       []string{"atl-l-000001-24"},
	}, nil, testNow)
	if rec.Docket != "ATL-L-009999-25" {
		t.Errorf("Docket = %q, want primary docket", rec.Docket)
	}
}

func TestSynthesizeMetadataWins(t *testing.T) {
	meta := Metadata{
		Venue:    "Atlantic County (Criminal Division)",
		CaseType: "Post-Conviction Relief",
		Parties:  []string{"State of New Jersey", "J. Smith"},
	}
	rec := Synthesize("atl-l-002794-25", meta, nil, testNow)
	if rec.County != "Atlantic County (Criminal Division)" {
		t.Errorf("County = %q, metadata venue should win", rec.County)
	}
	if rec.Type != TypeCriminal {
		t.Errorf("Type = %q, want criminal from post-conviction hint", rec.Type)
	}
	if len(rec.Parties) != 2 {
		t.Errorf("Parties = %v, want metadata parties", rec.Parties)
	}
}

func TestSynthesizeCaseTypeHints(t *testing.T) {
	tests := []struct {
		hint string
		want CaseType
	}{
		{"Special Civil Part", TypeSpecialCivil},
		{"municipal", TypeMunicipal},
		{"CRIMINAL", TypeCriminal},
		{"post-conviction", TypeCriminal},
		{"landlord-tenant", TypeCivil}, // unrecognized hint falls back to slug inference
	}
	for _, tt := range tests {
		rec := Synthesize("mer-l-000001-25", Metadata{CaseType: tt.hint}, nil, testNow)
		if rec.Type != tt.want {
			t.Errorf("case_type %q → %q, want %q", tt.hint, rec.Type, tt.want)
		}
	}
}

func TestSynthesizeExtraHintsOverlay(t *testing.T) {
	extra := map[string]string{"zzz": "Test County"}
	rec := Synthesize("zzz-l-000001-25", Metadata{}, extra, testNow)
	if rec.County != "Test County" {
		t.Errorf("County = %q, want config-supplied hint", rec.County)
	}
}

func TestSynthesizeTimestampAndParties(t *testing.T) {
	rec := Synthesize("atl-l-002794-25", Metadata{}, nil, testNow)
	if rec.LastUpdated != "2026-08-23T12:00:00Z" {
		t.Errorf("LastUpdated = %q, want RFC 3339 run time", rec.LastUpdated)
	}
	if rec.Parties == nil || len(rec.Parties) != 0 {
		t.Errorf("Parties = %#v, want empty non-nil list", rec.Parties)
	}
}

func TestEquivalent(t *testing.T) {
	base := Synthesize("atl-l-002794-25", Metadata{Parties: []string{"A", "B"}}, nil, testNow)

	same := base
	same.LastUpdated = "2001-01-01T00:00:00Z"
	if !Equivalent(base, same) {
		t.Error("records differing only in LastUpdated should be equivalent")
	}

	diff := base
	diff.County = "Mercer County"
	if Equivalent(base, diff) {
		t.Error("records with different counties should not be equivalent")
	}

	parties := base
	parties.Parties = []string{"A"}
	if Equivalent(base, parties) {
		t.Error("records with different parties should not be equivalent")
	}
}
