package cv

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Work-experience section headers, most specific first.
var experienceHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:WORK|EMPLOYMENT) (?:EXPERIENCE|HISTORY)`),
	regexp.MustCompile(`(?i)PROFESSIONAL EXPERIENCE`),
	regexp.MustCompile(`(?i)CAREER HISTORY`),
	regexp.MustCompile(`(?i)PROFESSIONAL BACKGROUND`),
	regexp.MustCompile(`(?i)EXPERIENCE`),
	regexp.MustCompile(`(?i)WORK HISTORY`),
	regexp.MustCompile(`(?i)CAREER SUMMARY`),
	regexp.MustCompile(`(?i)EMPLOYMENT RECORD`),
	regexp.MustCompile(`(?i)JOB HISTORY`),
	regexp.MustCompile(`(?i)PROFESSIONAL SUMMARY`),
	regexp.MustCompile(`(?i)CAREER PROFILE`),
}

var experienceSectionTerminator = regexp.MustCompile(
	`(?i)\n\s*(?:EDUCATION|QUALIFICATIONS|SKILLS|CERTIFICATIONS|TRAINING|ACHIEVEMENTS|PROJECTS|LANGUAGES|REFERENCES)`)

// Date tokens accepted inside entry patterns: "Jan 2020", "01/2020", "2020".
const dateTok = `\w+\s+\d{4}|/?\d{1,2}/?\d{4}|/?\d{4}`
const endTok = dateTok + `|Present|Current|Now`

// entryPattern is one job-entry shape. Patterns run in order; datesFirst
// flips the group layout from (x, y, start, end) to (start, end, x, y), and
// literal fixes x as the title and y as the company instead of running the
// disambiguation heuristic.
type entryPattern struct {
	re         *regexp.Regexp
	datesFirst bool
	literal    bool
}

var jobEntryPatterns = []entryPattern{
	// Company - Position (Date - Date)
	{re: regexp.MustCompile(`(?im)([\w\s&.,'\-]+)\s*[-–]\s*([\w\s&.,'()\-]+)\s*\((` + dateTok + `)\s*[-–]\s*(` + endTok + `)\)`)},
	// Position at Company (Date - Date)
	{re: regexp.MustCompile(`(?im)([\w\s&.,'()\-]+)\s+(?:at|with|for)\s+([\w\s&.,'\-]+)\s*\((` + dateTok + `)\s*[-–]\s*(` + endTok + `)\)`), literal: true},
	// Date - Date: Position at Company
	{re: regexp.MustCompile(`(?im)(` + dateTok + `)\s*[-–]\s*(` + endTok + `)[:\s]+?([\w\s&.,'()\-]+)\s+(?:at|with|for)\s+([\w\s&.,'\-]+)`), datesFirst: true, literal: true},
	// Date - Date: Company - Position
	{re: regexp.MustCompile(`(?im)(` + dateTok + `)\s*[-–]\s*(` + endTok + `)[:\s]+?([\w\s&.,'\-]+)\s*[-–]\s*([\w\s&.,'()\-]+)`), datesFirst: true},
	// Date - Date / Position / Company on consecutive lines
	{re: regexp.MustCompile(`(?i)(` + dateTok + `)\s*[-–]\s*(` + endTok + `)\s*\n\s*([\w\s&.,'()\-]+)\s*\n\s*([\w\s&.,'\-]+)`), datesFirst: true},
	// Company / Position / Date - Date on consecutive lines
	{re: regexp.MustCompile(`(?i)([\w\s&.,'\-]+)\s*\n\s*([\w\s&.,'()\-]+)\s*\n\s*(` + dateTok + `)\s*[-–]\s*(` + endTok + `)`)},
	// Position, Company (Date - Date)
	{re: regexp.MustCompile(`(?im)([\w\s&.,'()\-]+),\s*([\w\s&.,'\-]+)\s*\((` + dateTok + `)\s*[-–]\s*(` + endTok + `)\)`), literal: true},
	// Bullet: • Position, Company (Date - Date)
	{re: regexp.MustCompile(`(?im)[•*\-]\s*([\w\s&.,'()\-]+),\s*([\w\s&.,'\-]+)\s*[(|](` + dateTok + `)\s*[-–]\s*(` + endTok + `)[)|]`), literal: true},
}

// Bare date ranges used by the skeleton-entry fallback when none of the
// structured shapes matched.
var bareDateRangePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(` + dateTok + `)\s*[-–]\s*(` + endTok + `)`),
	regexp.MustCompile(`(?i)(\d{2}/\d{2,4})\s*[-–]\s*(\d{2}/\d{2,4}|Present|Current|Now)`),
	regexp.MustCompile(`(?i)(\d{2}\.\d{2,4})\s*[-–]\s*(\d{2}\.\d{2,4}|Present|Current|Now)`),
}

var bulletPrefixRe = regexp.MustCompile(`(?m)^\s*[•\-*]\s*`)
var parensRe = regexp.MustCompile(`[()]`)

// extractEmploymentHistory pulls job entries out of experience sections,
// falling back to a whole-document scan and finally to skeleton entries
// built around bare date ranges.
func extractEmploymentHistory(text string) []EmploymentEntry {
	entries := []EmploymentEntry{}

	sections := findSections(text, experienceHeaderPatterns, experienceSectionTerminator)
	searchSpans := sections
	if len(searchSpans) == 0 {
		// No header found: treat the whole document as one weak section.
		searchSpans = []span{{start: 0, end: len(text), text: text}}
	}

	for _, section := range searchSpans {
		for _, pattern := range jobEntryPatterns {
			matches := pattern.re.FindAllStringSubmatchIndex(section.text, -1)
			for i, m := range matches {
				entry, ok := buildEmploymentEntry(section.text, pattern, m, matches, i)
				if ok {
					entries = append(entries, entry)
				}
			}
		}
	}

	if len(entries) == 0 {
		entries = append(entries, skeletonEntries(searchSpans)...)
	}

	return entries
}

func buildEmploymentEntry(sectionText string, pattern entryPattern, m []int, all [][]int, idx int) (EmploymentEntry, bool) {
	group := func(n int) string {
		if m[2*n] < 0 {
			return ""
		}
		return strings.TrimSpace(sectionText[m[2*n]:m[2*n+1]])
	}

	var x, y, startStr, endStr string
	if pattern.datesFirst {
		startStr, endStr, x, y = group(1), group(2), group(3), group(4)
	} else {
		x, y, startStr, endStr = group(1), group(2), group(3), group(4)
	}
	if x == "" || y == "" || startStr == "" || endStr == "" {
		return EmploymentEntry{}, false
	}

	var company, title string
	if pattern.literal {
		title, company = x, y
	} else {
		company, title = classifyCompanyAndTitle(x, y)
	}

	entry := EmploymentEntry{
		CompanyName:   truncate(company, maxCompanyLen),
		JobTitle:      truncate(parensRe.ReplaceAllString(title, ""), maxCompanyLen),
		StartDate:     ParseDate(startStr),
		IsCurrent:     IsOngoing(endStr),
		ReasonLeaving: "Not specified in CV",
	}
	if !entry.IsCurrent {
		entry.EndDate = ParseDate(endStr)
	}

	// Responsibilities: the text between this match and the next one of the
	// same shape (or the section end), bullets stripped.
	respStart := m[1]
	respEnd := len(sectionText)
	for _, other := range all[idx+1:] {
		if other[0] > respStart {
			respEnd = other[0]
			break
		}
	}
	resp := strings.TrimSpace(sectionText[respStart:respEnd])
	resp = bulletPrefixRe.ReplaceAllString(resp, "")
	entry.Responsibilities = truncate(resp, maxResponsibilitiesLen)

	return entry, true
}

// skeletonEntries surfaces at least a timeline when no structured entry
// shape matched: every bare date range becomes a placeholder entry.
func skeletonEntries(spans []span) []EmploymentEntry {
	var entries []EmploymentEntry
	for _, section := range spans {
		for _, pattern := range bareDateRangePatterns {
			for _, m := range pattern.FindAllStringSubmatch(section.text, -1) {
				startStr := strings.TrimSpace(m[1])
				endStr := strings.TrimSpace(m[2])
				entry := EmploymentEntry{
					JobTitle:         "Unknown Position",
					CompanyName:      "Unknown Company",
					StartDate:        ParseDate(startStr),
					IsCurrent:        IsOngoing(endStr),
					Responsibilities: "Details not extractable from CV format",
					ReasonLeaving:    "Not specified in CV",
				}
				if !entry.IsCurrent {
					entry.EndDate = ParseDate(endStr)
				}
				entries = append(entries, entry)
			}
			if len(entries) > 0 {
				break
			}
		}
		if len(entries) > 0 {
			break
		}
	}
	return entries
}

// classifyCompanyAndTitle decides which captured string is the employer and
// which the role. Heuristics run in order; when both are inconclusive the
// pattern's capture order stands, so callers should treat the result as
// best-effort.
func classifyCompanyAndTitle(x, y string) (company, title string) {
	xCompany, yCompany := looksLikeCompany(x), looksLikeCompany(y)
	if xCompany && !yCompany {
		return x, y
	}
	if yCompany && !xCompany {
		return y, x
	}

	xTitle := containsAnyFold(x, jobTitleWords)
	yTitle := containsAnyFold(y, jobTitleWords)
	if xTitle && !yTitle {
		return y, x
	}
	if yTitle && !xTitle {
		return x, y
	}

	return x, y
}

// looksLikeCompany checks for corporate suffixes, then for the
// every-word-capitalized shape typical of company names.
func looksLikeCompany(s string) bool {
	for _, suffix := range companySuffixes {
		if strings.Contains(s, suffix) {
			return true
		}
	}
	words := strings.Fields(s)
	if len(words) < 2 {
		return false
	}
	for _, w := range words {
		if len(w) <= 1 {
			continue
		}
		r, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
