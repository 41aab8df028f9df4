package cv

import (
	"strings"
	"testing"
)

func TestExtractQualificationsDegreeLine(t *testing.T) {
	t.Parallel()

	text := `EDUCATION

Bachelor of Science, MIT, 2014-2018
`

	quals := extractQualifications(text)
	if len(quals) != 1 {
		t.Fatalf("got %d qualifications, want 1: %+v", len(quals), quals)
	}

	q := quals[0]
	if q.Level != LevelDegree {
		t.Errorf("Level = %q, want %q", q.Level, LevelDegree)
	}
	if q.Institution != "MIT" {
		t.Errorf("Institution = %q, want MIT", q.Institution)
	}
	// The first 4-digit group of a range is taken, a documented quirk.
	if q.GraduationYear != "2014" {
		t.Errorf("GraduationYear = %q, want 2014", q.GraduationYear)
	}
	if !strings.HasPrefix(q.CourseOfStudy, "Bachelor of Science") {
		t.Errorf("CourseOfStudy = %q", q.CourseOfStudy)
	}
}

func TestExtractQualificationsDedup(t *testing.T) {
	t.Parallel()

	text := `Bachelor of Aviation Management, Riddle University, 2012
Bachelor of Aviation Management, Riddle University, 2012
`

	quals := extractQualifications(text)
	count := 0
	for _, q := range quals {
		if strings.HasPrefix(q.CourseOfStudy, "Bachelor of Aviation Management") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("duplicate degree yielded %d entries, want 1", count)
	}
}

func TestExtractQualificationsSkipsEmploymentSections(t *testing.T) {
	t.Parallel()

	// The degree-shaped line sits inside a work-history section and must
	// not become a qualification.
	text := `WORK EXPERIENCE
Master of Ceremonies, Grand Hotel, 2019
Hosted corporate events.
`

	for _, q := range extractQualifications(text) {
		if strings.Contains(q.CourseOfStudy, "Ceremonies") {
			t.Errorf("employment-section line extracted as qualification: %+v", q)
		}
	}
}

func TestExtractQualificationsGPA(t *testing.T) {
	t.Parallel()

	text := `EDUCATION

Bachelor of Aviation Management, Riddle University, 2016
GPA: 3.75
`

	quals := extractQualifications(text)
	if len(quals) == 0 {
		t.Fatal("no qualifications extracted")
	}
	if quals[0].GPA != 3.75 {
		t.Errorf("GPA = %v, want 3.75", quals[0].GPA)
	}
}

func TestDetermineEducationLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want EducationLevel
	}{
		{"ATPL", LevelAviationCert},
		{"Flight Instructor Certification", LevelAviationCert},
		{"PhD in Aerospace", LevelPhD},
		{"Master of Science", LevelMasters},
		{"MBA", LevelMasters},
		{"Bachelor of Arts", LevelDegree},
		{"BSc Physics", LevelDegree},
		{"Certificate of Completion", LevelCertificate},
		{"something unrecognizable", LevelOtherEducation},
	}
	for _, tt := range tests {
		if got := determineEducationLevel(tt.in); got != tt.want {
			t.Errorf("determineEducationLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractQualificationsExcludingLicenses(t *testing.T) {
	t.Parallel()

	text := `EDUCATION

Bachelor of Aviation Management, Riddle University, 2016

CERTIFICATIONS
ATPL License (2018)
`

	licenses := []LicenseEntry{{Type: "ATPL License", Category: CategoryATPL}}
	quals := extractQualificationsExcludingLicenses(text, licenses)

	for _, q := range quals {
		if q.Level == LevelAviationCert {
			t.Errorf("aviation certification not filtered: %+v", q)
		}
		if strings.Contains(strings.ToLower(q.CourseOfStudy), "atpl") {
			t.Errorf("license-overlapping qualification not filtered: %+v", q)
		}
	}

	found := false
	for _, q := range quals {
		if strings.HasPrefix(q.CourseOfStudy, "Bachelor of Aviation Management") {
			found = true
		}
	}
	if !found {
		t.Error("academic degree was filtered out along with licenses")
	}
}
