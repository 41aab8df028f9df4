package cv

import (
	"regexp"
	"testing"
)

func TestFindSections(t *testing.T) {
	t.Parallel()

	text := `INTRO
some preamble

SKILLS
skill one
skill two

EDUCATION
a degree
`

	header := regexp.MustCompile(`(?i)\bSKILLS\b`)
	sections := findSections(text, []*regexp.Regexp{header})
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	sec := sections[0]
	if want := "\nskill one\nskill two"; sec.text != want {
		t.Errorf("section text = %q, want %q", sec.text, want)
	}
	if text[sec.start:sec.end] != sec.text {
		t.Error("section offsets do not slice back to the section text")
	}
}

func TestEmploymentSpansContains(t *testing.T) {
	t.Parallel()

	text := `SUMMARY
A line before.

WORK EXPERIENCE
Pilot, Some Airline, 2012
More employment prose.

EDUCATION
Bachelor of Things, Some School, 2008
`

	spans := employmentSpans(text)
	if len(spans) == 0 {
		t.Fatal("no employment spans found")
	}

	jobPos := regexp.MustCompile(`Pilot, Some Airline`).FindStringIndex(text)
	if jobPos == nil {
		t.Fatal("fixture broken")
	}
	if !spans.contains(jobPos[0], jobPos[1]) {
		t.Error("employment line not inside employment span")
	}

	eduPos := regexp.MustCompile(`Bachelor of Things`).FindStringIndex(text)
	if spans.contains(eduPos[0], eduPos[1]) {
		t.Error("education line wrongly inside employment span")
	}
}

func TestNonWhitespaceLen(t *testing.T) {
	t.Parallel()

	if got := nonWhitespaceLen(" a\tb\nc "); got != 3 {
		t.Errorf("nonWhitespaceLen = %d, want 3", got)
	}
	if got := nonWhitespaceLen(""); got != 0 {
		t.Errorf("nonWhitespaceLen(empty) = %d, want 0", got)
	}
}
