package cv

import (
	"strings"
	"testing"
	"time"
)

func TestExtractEmploymentHistoryCurrentPosition(t *testing.T) {
	t.Parallel()

	text := `WORK EXPERIENCE

Software Engineer - Acme Corp (Jan 2019 - Present)
Built and operated the billing platform.

EDUCATION
`

	entries := extractEmploymentHistory(text)
	if len(entries) == 0 {
		t.Fatal("no employment entries extracted")
	}

	entry := entries[0]
	if entry.CompanyName != "Acme Corp" {
		t.Errorf("CompanyName = %q, want Acme Corp", entry.CompanyName)
	}
	if entry.JobTitle != "Software Engineer" {
		t.Errorf("JobTitle = %q, want Software Engineer", entry.JobTitle)
	}
	if !entry.IsCurrent {
		t.Error("IsCurrent = false, want true")
	}
	if entry.EndDate != nil {
		t.Errorf("EndDate = %v, want nil for current position", entry.EndDate)
	}
	want := time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC)
	if entry.StartDate == nil || !entry.StartDate.Equal(want) {
		t.Errorf("StartDate = %v, want %v", entry.StartDate, want)
	}
	if !strings.Contains(entry.Responsibilities, "billing platform") {
		t.Errorf("Responsibilities = %q, want billing platform text", entry.Responsibilities)
	}
}

func TestExtractEmploymentHistoryLiteralShapes(t *testing.T) {
	t.Parallel()

	text := `EMPLOYMENT HISTORY

First Officer at Qatar Airways (Mar 2010 - Dec 2014)
Flew regional routes across the Gulf.

SKILLS
`

	entries := extractEmploymentHistory(text)
	if len(entries) == 0 {
		t.Fatal("no employment entries extracted")
	}

	entry := entries[0]
	if entry.JobTitle != "First Officer" {
		t.Errorf("JobTitle = %q, want First Officer", entry.JobTitle)
	}
	if entry.CompanyName != "Qatar Airways" {
		t.Errorf("CompanyName = %q, want Qatar Airways", entry.CompanyName)
	}
	if entry.IsCurrent {
		t.Error("IsCurrent = true, want false")
	}
	if entry.EndDate == nil || entry.EndDate.Year() != 2014 || entry.EndDate.Month() != time.December {
		t.Errorf("EndDate = %v, want Dec 2014", entry.EndDate)
	}
}

func TestExtractEmploymentHistorySkeletonFallback(t *testing.T) {
	t.Parallel()

	text := `WORK EXPERIENCE

2015 - 2018 worked abroad on various unstructured assignments

EDUCATION
`

	entries := extractEmploymentHistory(text)
	if len(entries) == 0 {
		t.Fatal("expected skeleton entries for bare date range")
	}
	entry := entries[0]
	if entry.JobTitle != "Unknown Position" || entry.CompanyName != "Unknown Company" {
		t.Errorf("skeleton entry = %q at %q, want placeholders", entry.JobTitle, entry.CompanyName)
	}
	if entry.Responsibilities != "Details not extractable from CV format" {
		t.Errorf("Responsibilities = %q", entry.Responsibilities)
	}
	if entry.StartDate == nil || entry.StartDate.Year() != 2015 {
		t.Errorf("StartDate = %v, want 2015", entry.StartDate)
	}
}

func TestClassifyCompanyAndTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		x, y        string
		wantCompany string
		wantTitle   string
	}{
		{"corporate suffix wins", "Software Engineer", "Acme Corp", "Acme Corp", "Software Engineer"},
		{"title word wins", "Emirates Group", "Operations Manager", "Emirates Group", "Operations Manager"},
		{"inconclusive keeps capture order", "Alpha Beta", "Gamma Delta", "Alpha Beta", "Gamma Delta"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			company, title := classifyCompanyAndTitle(tt.x, tt.y)
			if company != tt.wantCompany || title != tt.wantTitle {
				t.Errorf("classifyCompanyAndTitle(%q, %q) = (%q, %q), want (%q, %q)",
					tt.x, tt.y, company, title, tt.wantCompany, tt.wantTitle)
			}
		})
	}
}

func TestLooksLikeCompany(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"Acme Inc", true},
		{"Global Holdings", true},
		{"Emirates Airlines", true},
		{"a small shop", false},
		{"Pilot", false}, // single word
	}
	for _, tt := range tests {
		if got := looksLikeCompany(tt.in); got != tt.want {
			t.Errorf("looksLikeCompany(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
