package cv

import "regexp"

// span is one located document section: offsets into the source text plus
// the sliced section body.
type span struct {
	start int
	end   int
	text  string
}

// spanIndex answers "is this match inside one of these sections" for the
// extractors that must hard-exclude employment text.
type spanIndex []span

func (idx spanIndex) contains(start, end int) bool {
	for _, s := range idx {
		if start >= s.start && end <= s.end {
			return true
		}
	}
	return false
}

// Generic terminators: an all-caps line or a title-case "X & Y" heading
// ends the current section. Callers add their own named-section terminator.
var genericTerminators = []*regexp.Regexp{
	regexp.MustCompile(`(?m)\n\s*[A-Z][A-Z\s]{4,}\s*(:|$|\n)`),
	regexp.MustCompile(`(?m)\n\s*[A-Z][a-z]+\s*&\s*[A-Z][a-z]+\s*(:|$|\n)`),
}

// findSections locates every occurrence of any header pattern and slices the
// text from the end of the header to the nearest following terminator (or
// end of document). A document repeating a header yields multiple spans.
func findSections(text string, headers []*regexp.Regexp, extraTerminators ...*regexp.Regexp) []span {
	terminators := append([]*regexp.Regexp{}, genericTerminators...)
	terminators = append(terminators, extraTerminators...)

	var spans []span
	for _, header := range headers {
		for _, loc := range header.FindAllStringIndex(text, -1) {
			start := loc[1]
			end := len(text)
			for _, term := range terminators {
				if pos := term.FindStringIndex(text[start:]); pos != nil && start+pos[0] < end {
					end = start + pos[0]
				}
			}
			spans = append(spans, span{start: start, end: end, text: text[start:end]})
		}
	}
	return spans
}

// Employment-section capture: everything between a work-history header and
// the next education/skills/certifications header (or end of text).
var employmentSectionPattern = regexp.MustCompile(
	`(?si)(?:EXPERIENCE|WORK HISTORY|EMPLOYMENT|PROFESSIONAL BACKGROUND|JOB HISTORY|CAREER HISTORY|WORK EXPERIENCE)(?:\s*:)?(.*?)(?:EDUCATION|SKILLS|CERTIFICATIONS|ACHIEVEMENTS|\z)`)

// employmentSpans builds the exclusion index used by the education and
// license extractors so job titles are never misread as degrees.
func employmentSpans(text string) spanIndex {
	var idx spanIndex
	for _, m := range employmentSectionPattern.FindAllStringSubmatchIndex(text, -1) {
		// m[2],m[3] bound the first capture group.
		if m[2] >= 0 && m[3] >= m[2] {
			idx = append(idx, span{start: m[2], end: m[3], text: text[m[2]:m[3]]})
		}
	}
	return idx
}
