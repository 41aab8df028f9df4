package cv

import (
	"strings"
	"testing"
)

func TestExtractAviationLicensesFromSection(t *testing.T) {
	t.Parallel()

	text := `LICENSES

EASA ATPL License - issued by the European Aviation Safety Agency
Boeing 737 Type Rating

EDUCATION
`

	licenses := extractAviationLicenses(text)
	if len(licenses) == 0 {
		t.Fatal("no licenses extracted")
	}

	var atpl *LicenseEntry
	for i := range licenses {
		if licenses[i].Category == CategoryATPL {
			atpl = &licenses[i]
			break
		}
	}
	if atpl == nil {
		t.Fatalf("no ATPL entry in %+v", licenses)
	}
	if atpl.IssuingAuthority != "EASA" {
		t.Errorf("IssuingAuthority = %q, want EASA", atpl.IssuingAuthority)
	}

	foundRating := false
	for _, l := range licenses {
		if l.Category == CategoryAircraftRating && l.Aircraft == "Boeing 737" {
			foundRating = true
		}
	}
	if !foundRating {
		t.Errorf("Boeing 737 type rating not detected in %+v", licenses)
	}
}

func TestExtractAviationLicensesDedup(t *testing.T) {
	t.Parallel()

	text := `CERTIFICATIONS
CPL License (2015)
CPL License (2015)
`

	licenses := extractAviationLicenses(text)
	count := 0
	for _, l := range licenses {
		if strings.Contains(l.Type, "CPL") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("duplicate CPL lines yielded %d entries, want 1", count)
	}
}

func TestExtractAviationLicensesSkipsEmploymentText(t *testing.T) {
	t.Parallel()

	text := `WORK EXPERIENCE
Trained cadets for the ATPL License (2019) program at a flight school.
`

	for _, l := range extractAviationLicenses(text) {
		if strings.Contains(l.Type, "ATPL") {
			t.Errorf("license extracted from employment section: %+v", l)
		}
	}
}

func TestCategorizeLicense(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want LicenseCategory
	}{
		{"ATPL", CategoryATPL},
		{"Airline Transport Pilot Licence", CategoryATPL},
		{"Commercial Pilot License", CategoryCPL},
		{"PPL", CategoryPPL},
		{"Certified Flight Instructor", CategoryInstructor},
		{"A320 Type Rating", CategoryTypeRating},
		{"Instrument Rating", CategoryInstrumentRating},
		{"Multi-Crew Cooperation Course", CategoryMCC},
		{"Cabin Crew Certificate", CategoryCabinCrew},
		{"Drone Operator Permit", CategoryOtherAviation},
	}
	for _, tt := range tests {
		if got := categorizeLicense(tt.in); got != tt.want {
			t.Errorf("categorizeLicense(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractAuthority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"EASA ATPL", "EASA"},
		{"Federal Aviation Administration Commercial Certificate", "FAA"},
		{"issued under ICAO standards", "ICAO"},
		{"Transport Canada Civil Aviation rating", "TCCA"},
		{"no authority named", "Unknown"},
	}
	for _, tt := range tests {
		if got := extractAuthority(tt.in); got != tt.want {
			t.Errorf("extractAuthority(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
