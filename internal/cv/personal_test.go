package cv

import "testing"

func TestExtractPersonalInfo(t *testing.T) {
	t.Parallel()

	text := `John Smith
Email: john.smith@example.com
Phone: 555-123-4567
Location: Dubai, United Arab Emirates
Nationality: British, dual citizenship
Date of Birth: 12 March 1985
`

	info := extractPersonalInfo(text)

	if info.Name != "John Smith" {
		t.Errorf("Name = %q, want John Smith", info.Name)
	}
	if info.Email != "john.smith@example.com" {
		t.Errorf("Email = %q", info.Email)
	}
	if info.PhoneNumber != "555-123-4567" {
		t.Errorf("PhoneNumber = %q", info.PhoneNumber)
	}
	if info.City != "Dubai" {
		t.Errorf("City = %q, want Dubai", info.City)
	}
	if info.Country != "United Arab Emirates" {
		t.Errorf("Country = %q, want United Arab Emirates", info.Country)
	}
	// Nationality keeps only the text before the first comma.
	if info.Nationality != "British" {
		t.Errorf("Nationality = %q, want British", info.Nationality)
	}
	if info.DateOfBirth != "12 March 1985" {
		t.Errorf("DateOfBirth = %q", info.DateOfBirth)
	}
}

func TestExtractPersonalInfoScenario(t *testing.T) {
	t.Parallel()

	text := `Reach me at john.doe@example.com or +1 415-555-0100 for opportunities.
Some more filler text so the document is not trivially short.`

	info := extractPersonalInfo(text)
	if info.Email != "john.doe@example.com" {
		t.Errorf("Email = %q, want john.doe@example.com", info.Email)
	}
	// The number is found modulo formatting; the country-code prefix may be
	// dropped by the first pattern family.
	if info.PhoneNumber == "" {
		t.Fatal("PhoneNumber empty, want a match")
	}
	if got := info.PhoneNumber; got != "415-555-0100" && got != "+1 415-555-0100" {
		t.Errorf("PhoneNumber = %q, want the 415-555-0100 number", got)
	}
}

func TestExtractPersonalInfoMissingFields(t *testing.T) {
	t.Parallel()

	info := extractPersonalInfo("completely unstructured text with no contact details in it at all")
	if info.Email != "" || info.PhoneNumber != "" {
		t.Errorf("expected empty contact fields, got email=%q phone=%q", info.Email, info.PhoneNumber)
	}
}

func TestFindName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"simple header", []string{"Jane Doe", "Pilot"}, "Jane Doe"},
		{"skips labeled lines", []string{"Email: x@y.com", "Jane Doe"}, "Jane Doe"},
		{"skips single letter words", []string{"A B C D", "Jane Doe"}, "Jane Doe"},
		{"too many words", []string{"one two three four five six", "Jane Doe"}, "Jane Doe"},
		{"nothing plausible", []string{"a", ":", ""}, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := findName(tt.lines); got != tt.want {
				t.Errorf("findName() = %q, want %q", got, tt.want)
			}
		})
	}
}
