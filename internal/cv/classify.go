package cv

import (
	"regexp"
	"strings"
	"sync"
)

var (
	licenseAbbreviationRe = regexp.MustCompile(`(?i)\b(?:ATPL|CPL|PPL|Type Rating|Flight Instructor)\b`)
	flightHoursPhraseRe   = regexp.MustCompile(`(?i)(?:flight|flying) hours`)

	keywordReMu    sync.RWMutex
	keywordReCache = map[string]*regexp.Regexp{}
)

// IsAviationCV decides whether aviation-specialized extraction should run.
// The rules trade recall for precision: a false negative just falls back to
// generic extraction, while a false positive would suppress it.
func IsAviationCV(text string) bool {
	keywordCount := countAviationKeywords(text)

	// Two or more explicit license abbreviations is decisive on its own.
	if len(licenseAbbreviationRe.FindAllString(text, -1)) >= 2 {
		return true
	}

	// A flight-hours phrase plus a handful of supporting keywords.
	if flightHoursPhraseRe.MatchString(text) && keywordCount >= 5 {
		return true
	}

	// High overall keyword frequency.
	if keywordCount >= 10 {
		return true
	}

	// An aviation job title near the top of the document plus some support.
	head := text
	if len(head) > 500 {
		head = head[:500]
	}
	titleMatches := 0
	for _, title := range aviationJobTitles {
		if wordBoundaryRe(title).MatchString(head) {
			titleMatches++
		}
	}
	if titleMatches >= 1 && keywordCount >= 3 {
		return true
	}

	return false
}

func countAviationKeywords(text string) int {
	count := 0
	for _, group := range [][]string{
		aviationLicenseKeywords,
		aviationExperienceKeywords,
		aviationTechnicalSkills,
		aviationComplianceKeywords,
		aircraftTypes,
	} {
		for _, keyword := range group {
			count += len(wordBoundaryRe(keyword).FindAllString(text, -1))
		}
	}
	return count
}

// wordBoundaryRe compiles a case-insensitive whole-word matcher for a
// literal keyword. Compiled matchers are cached since the keyword tables
// are scanned for every document.
func wordBoundaryRe(keyword string) *regexp.Regexp {
	keywordReMu.RLock()
	re, ok := keywordReCache[keyword]
	keywordReMu.RUnlock()
	if ok {
		return re
	}
	re = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
	keywordReMu.Lock()
	keywordReCache[keyword] = re
	keywordReMu.Unlock()
	return re
}

// containsAnyWord reports whether any of the whole-word terms occurs in s.
func containsAnyWord(s string, terms []string) bool {
	for _, term := range terms {
		if wordBoundaryRe(term).MatchString(s) {
			return true
		}
	}
	return false
}

// containsAnyFold reports whether any term occurs as a case-insensitive
// substring of s.
func containsAnyFold(s string, terms []string) bool {
	lower := strings.ToLower(s)
	for _, term := range terms {
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
