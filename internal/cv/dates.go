package cv

import (
	"log"
	"strconv"
	"strings"
	"time"
)

// Synonyms for an open-ended employment period. A date token matching one of
// these parses to nil and marks the entry as current.
var ongoingSynonyms = map[string]bool{
	"present":    true,
	"current":    true,
	"now":        true,
	"to date":    true,
	"today":      true,
	"ongoing":    true,
	"to present": true,
}

// IsOngoing reports whether the token is a synonym for "still employed".
func IsOngoing(token string) bool {
	return ongoingSynonyms[strings.ToLower(strings.TrimSpace(token))]
}

// Layouts tried in order after the structural forms below.
var dateLayouts = []string{
	"January 2006", // January 2020
	"Jan 2006",     // Jan 2020
	"01/2006",      // 01/2020
	"01-2006",      // 01-2020
	"2006",         // 2020
}

// ParseDate normalizes a heterogeneous date token to the first day of the
// month (or of the year when only a year is given). Ongoing synonyms and
// unparseable tokens return nil; the caller treats nil as "no date".
func ParseDate(token string) *time.Time {
	token = strings.TrimSpace(token)
	if token == "" || IsOngoing(token) {
		return nil
	}

	// MM/YYYY
	if parts := strings.Split(token, "/"); len(parts) == 2 {
		if d := monthYear(parts[0], parts[1]); d != nil {
			return d
		}
	}

	// MM-YYYY, but not YYYY-YYYY ranges
	if parts := strings.Split(token, "-"); len(parts) == 2 && len(parts[0]) <= 2 {
		if d := monthYear(parts[0], parts[1]); d != nil {
			return d
		}
	}

	// Bare YYYY
	if len(token) == 4 {
		if year, err := strconv.Atoi(token); err == nil {
			d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
			return &d
		}
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, token); err == nil {
			d := time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.UTC)
			return &d
		}
	}

	log.Printf("could not parse date: %q", token)
	return nil
}

func monthYear(monthStr, yearStr string) *time.Time {
	month, err := strconv.Atoi(strings.TrimSpace(monthStr))
	if err != nil || month < 1 || month > 12 {
		return nil
	}
	year, err := strconv.Atoi(strings.TrimSpace(yearStr))
	if err != nil || year < 1000 || year > 9999 {
		return nil
	}
	d := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return &d
}
