package cv

import (
	"regexp"
	"strconv"
	"strings"
)

const degreeTok = `(?:Bachelor|Master|PhD|Doctorate|BSc|MSc|BA|MA|MBA|Certificate|Diploma|Associate|Degree)`
const yearTok = `\d{4}(?:[-–]\d{4}|[-–]Present)?`

// qualShape tells the entry builder which capture group carries which field.
type qualShape int

const (
	qualDegreeInstYear      qualShape = iota // Degree, Institution, Year
	qualDegreeInSubject                      // Degree in Subject at Institution (Year)
	qualYearDegreeInst                       // Year: Degree from Institution
	qualInstDegreeYear                       // Institution / Degree / Year lines
	qualDegreeFromInst                       // Degree from Institution
	qualInstDegreeParenYear                  // Institution, Degree (Year)
	qualHyphenTriple                         // A - B - Year, education sections only
)

type qualPattern struct {
	re    *regexp.Regexp
	shape qualShape
	// strict patterns require a degree keyword and may run over the whole
	// document; the loose hyphen triple runs only inside a confirmed
	// education section.
	strict bool
}

var qualificationPatterns = []qualPattern{
	{regexp.MustCompile(`(?im)(` + degreeTok + `[^,\n]*),\s*([^,\n]*),\s*(` + yearTok + `)`), qualDegreeInstYear, true},
	{regexp.MustCompile(`(?im)(` + degreeTok + `[^,\n]*)\s+in\s+([^,\n]*)\s+(?:at|from)\s+([^(\n]*)(?:\((` + yearTok + `)\))?`), qualDegreeInSubject, true},
	{regexp.MustCompile(`(?im)(` + yearTok + `):\s*(` + degreeTok + `[^,\n]*)\s+from\s+([^\n]*)`), qualYearDegreeInst, true},
	{regexp.MustCompile(`(?im)([^\n]{5,})\n\s*(` + degreeTok + `[^\n]*)\n\s*(` + yearTok + `)`), qualInstDegreeYear, true},
	{regexp.MustCompile(`(?im)(` + degreeTok + `[^,\n]*)\s+from\s+([^\n,]*)`), qualDegreeFromInst, true},
	{regexp.MustCompile(`(?im)([^,\n]*),\s*(` + degreeTok + `[^(\n]*)\((` + yearTok + `)\)`), qualInstDegreeParenYear, true},
	{regexp.MustCompile(`(?im)([^-\n]*)\s*[-–]\s*([^-\n]*)\s*[-–]\s*(` + yearTok + `)`), qualHyphenTriple, false},
}

var educationHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:EDUCATION|QUALIFICATIONS|ACADEMIC|EDUCATIONAL) (?:BACKGROUND|HISTORY|QUALIFICATIONS)\b`),
	regexp.MustCompile(`(?i)\bACADEMIC CREDENTIALS\b`),
	regexp.MustCompile(`(?i)\bEDUCATIONAL QUALIFICATIONS\b`),
	regexp.MustCompile(`(?i)\bEDUCATION\b`),
	regexp.MustCompile(`(?i)\bACADEMIC BACKGROUND\b`),
	regexp.MustCompile(`(?i)\bACADEMIC HISTORY\b`),
	regexp.MustCompile(`(?i)\bACADEMIC EDUCATION\b`),
	regexp.MustCompile(`(?i)\bEDUCATIONAL HISTORY\b`),
	regexp.MustCompile(`(?i)\bQUALIFICATIONS\b`),
}

var educationSectionTerminator = regexp.MustCompile(
	`(?i)\n\s*(?:EXPERIENCE|EMPLOYMENT|SKILLS|PROFESSIONAL|CERTIFICATIONS|TRAINING|ACHIEVEMENTS|PROJECTS|LANGUAGES|REFERENCES)`)

var certificationHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)CERTIFICATIONS`),
	regexp.MustCompile(`(?i)LICENSES`),
	regexp.MustCompile(`(?i)PROFESSIONAL QUALIFICATIONS`),
	regexp.MustCompile(`(?i)PROFESSIONAL CERTIFICATIONS`),
	regexp.MustCompile(`(?i)TECHNICAL QUALIFICATIONS`),
}

var aviationCertPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Pilot|Aviation|Flight) (?:License|Licence|Certification)[:\s]+(.*?)(?:\n\n|\z)`),
	regexp.MustCompile(`(?i)(?:Commercial|Private|PPL|CPL|ATPL) (?:Pilot|License|Licence)[:\s]+(.*?)(?:\n\n|\z)`),
	regexp.MustCompile(`(?i)(?:FAA|EASA|CAA) (?:Certificate|License|Licence|Rating)[:\s]+(.*?)(?:\n\n|\z)`),
	regexp.MustCompile(`(?i)Type Rating[:\s]+(.*?)(?:\n\n|\z)`),
}

var (
	gpaRe          = regexp.MustCompile(`(?i)GPA[:\s]+(\d+\.\d+)`)
	fourDigitRe    = regexp.MustCompile(`\d{4}`)
	calendarYearRe = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	licenseTypeRe  = regexp.MustCompile(`(?i)\b(ATPL|CPL|PPL|Type Rating|Flight Instructor)\b`)
	sectionBreakRe = regexp.MustCompile(`\n\s*[A-Z\s]{5,}\s*\n`)
)

// extractQualifications pulls education and certification entries. The
// whole-document pass uses the strict degree-keyword patterns with hard
// employment-section exclusion; a confirmed education section is re-scanned
// with all patterns and lighter validation. Results are deduplicated by a
// normalized prefix of the course of study.
func extractQualifications(text string) []QualificationEntry {
	empSpans := employmentSpans(text)
	var quals []QualificationEntry

	for _, p := range qualificationPatterns {
		if !p.strict {
			continue
		}
		for _, m := range p.re.FindAllStringSubmatchIndex(text, -1) {
			if empSpans.contains(m[0], m[1]) {
				continue
			}
			if containsAnyWord(text[m[0]:m[1]], jobTerms) {
				continue
			}
			if q, ok := buildQualification(text, p, m, true); ok {
				quals = append(quals, q)
			}
		}
	}

	for _, sec := range educationSections(text, empSpans) {
		for _, p := range qualificationPatterns {
			for _, m := range p.re.FindAllStringSubmatchIndex(sec.text, -1) {
				if p.shape == qualHyphenTriple && !containsAnyWord(sec.text[m[0]:m[1]], educationKeywords) {
					continue
				}
				if q, ok := buildQualification(sec.text, p, m, false); ok {
					quals = append(quals, q)
				}
			}
		}
	}

	if len(quals) == 0 {
		quals = append(quals, certificationFallback(text, empSpans)...)
	}
	quals = append(quals, aviationCertQualifications(text, empSpans)...)

	return dedupQualifications(quals)
}

// extractQualificationsExcludingLicenses filters out entries already
// captured as aviation licenses so the same rating is not reported twice.
func extractQualificationsExcludingLicenses(text string, licenses []LicenseEntry) []QualificationEntry {
	all := extractQualifications(text)

	licenseTexts := make([]string, 0, len(licenses))
	for _, l := range licenses {
		if t := strings.ToLower(strings.TrimSpace(l.Type)); t != "" {
			licenseTexts = append(licenseTexts, t)
		}
	}

	filtered := []QualificationEntry{}
	for _, q := range all {
		if q.Level == LevelAviationCert {
			continue
		}
		course := strings.ToLower(q.CourseOfStudy)
		overlaps := false
		for _, lt := range licenseTexts {
			if strings.Contains(course, lt) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

func buildQualification(searchText string, p qualPattern, m []int, strict bool) (QualificationEntry, bool) {
	group := func(n int) string {
		if 2*n+1 >= len(m) || m[2*n] < 0 {
			return ""
		}
		return strings.TrimSpace(searchText[m[2*n]:m[2*n+1]])
	}

	var degree, course, institution, yearGroup string
	switch p.shape {
	case qualDegreeInstYear:
		degree, institution, yearGroup = group(1), group(2), group(3)
		course = degree
	case qualDegreeInSubject:
		degree = group(1)
		course = degree + " in " + group(2)
		institution, yearGroup = group(3), group(4)
	case qualYearDegreeInst:
		yearGroup, degree, institution = group(1), group(2), group(3)
		course = degree
	case qualInstDegreeYear:
		institution, degree, yearGroup = group(1), group(2), group(3)
		course = degree
	case qualDegreeFromInst:
		degree, institution = group(1), group(2)
		course = degree
	case qualInstDegreeParenYear:
		institution, degree, yearGroup = group(1), group(2), group(3)
		course = degree
	case qualHyphenTriple:
		a, b := group(1), group(2)
		yearGroup = group(3)
		// The first part is usually the institution unless it already names
		// a degree.
		if len(strings.Fields(a)) >= 2 && !containsAnyFold(a, []string{"bachelor", "master", "phd", "doctorate", "bsc", "msc", "diploma"}) {
			institution, degree = a, b
		} else {
			degree, institution = a, b
		}
		course = degree
	}

	if strict && containsAnyWord(degree, jobTerms) {
		return QualificationEntry{}, false
	}
	if institution == "" || course == "" {
		return QualificationEntry{}, false
	}

	q := QualificationEntry{
		Level:         determineEducationLevel(degree),
		CourseOfStudy: truncate(course, maxCourseLen),
		Institution:   truncate(institution, maxInstitutionLen),
	}

	if yearGroup != "" {
		// First 4-digit group wins; for a range like 2014-2018 that is the
		// start year, a known quirk of this heuristic.
		q.GraduationYear = fourDigitRe.FindString(yearGroup)
	}

	// GPA, if mentioned near the entry.
	ctxStart := max(0, m[0]-100)
	ctxEnd := min(len(searchText), m[1]+100)
	if gm := gpaRe.FindStringSubmatch(searchText[ctxStart:ctxEnd]); gm != nil {
		if gpa, err := strconv.ParseFloat(gm[1], 64); err == nil && gpa > 0 && gpa <= 4 {
			q.GPA = gpa
		}
	}

	if strict {
		if containsAnyFold(q.CourseOfStudy, jobTerms) {
			return QualificationEntry{}, false
		}
		inst := strings.ToLower(q.Institution)
		if strings.Contains(inst, "company") || strings.Contains(inst, "corporation") || strings.Contains(inst, "inc.") {
			return QualificationEntry{}, false
		}
	}

	return q, true
}

// educationSections returns the first education section that is neither part
// of an employment header (e.g. "Work Experience & Qualifications") nor
// located inside an employment span.
func educationSections(text string, empSpans spanIndex) []span {
	for _, header := range educationHeaderPatterns {
		for _, loc := range header.FindAllStringIndex(text, -1) {
			ctxStart := max(0, loc[0]-20)
			ctxEnd := min(len(text), loc[1]+20)
			if containsAnyFold(text[ctxStart:ctxEnd], employmentHeaderTerms) {
				continue
			}
			if empSpans.contains(loc[0], loc[1]) {
				continue
			}
			secs := findSections(text[loc[0]:], []*regexp.Regexp{header}, educationSectionTerminator)
			if len(secs) == 0 {
				continue
			}
			sec := secs[0]
			return []span{{start: loc[0] + sec.start, end: loc[0] + sec.end, text: sec.text}}
		}
	}
	return nil
}

// certificationFallback emits certificate entries from labeled
// certification/license sections when no structured education entry
// matched.
func certificationFallback(text string, empSpans spanIndex) []QualificationEntry {
	var quals []QualificationEntry
	for _, header := range certificationHeaderPatterns {
		for _, loc := range header.FindAllStringIndex(text, -1) {
			if empSpans.contains(loc[0], loc[1]) {
				continue
			}
			section := text[loc[1]:]
			if next := sectionBreakRe.FindStringIndex(section); next != nil {
				section = section[:next[0]]
			}
			for _, line := range strings.Split(section, "\n") {
				line = strings.TrimSpace(line)
				if len(line) <= 5 || strings.ContainsAny(line, "•*") {
					continue
				}
				if containsAnyWord(line, jobTerms) {
					continue
				}
				q := QualificationEntry{
					Level:         LevelCertificate,
					CourseOfStudy: truncate(line, maxCourseLen),
					Institution:   "Not specified",
				}
				if year := calendarYearRe.FindString(line); year != "" {
					q.GraduationYear = year
				}
				quals = append(quals, q)
			}
			if len(quals) > 0 {
				return quals
			}
		}
	}
	return quals
}

// aviationCertQualifications captures explicitly labeled aviation
// certifications anywhere outside employment sections.
func aviationCertQualifications(text string, empSpans spanIndex) []QualificationEntry {
	var quals []QualificationEntry
	for _, pattern := range aviationCertPatterns {
		for _, m := range pattern.FindAllStringSubmatchIndex(text, -1) {
			if empSpans.contains(m[0], m[1]) {
				continue
			}
			certText := strings.TrimSpace(text[m[2]:m[3]])
			if certText == "" {
				continue
			}
			q := QualificationEntry{
				Level:         LevelAviationCert,
				CourseOfStudy: "Aviation Certification: " + truncate(certText, 180),
				Institution:   "Aviation Authority",
			}
			if lm := licenseTypeRe.FindString(certText); lm != "" {
				q.CourseOfStudy = "Aviation License: " + lm + " - " + truncate(certText, 160)
			}
			if year := calendarYearRe.FindString(certText); year != "" {
				q.GraduationYear = year
			}
			quals = append(quals, q)
		}
	}
	return quals
}

// determineEducationLevel classifies degree text via the ordered rule
// table; aviation certifications are checked first so an ATPL never lands
// in an academic bucket.
func determineEducationLevel(degreeText string) EducationLevel {
	lower := strings.ToLower(degreeText)
	for _, rule := range educationLevelRules {
		for _, term := range rule.terms {
			if strings.Contains(lower, term) {
				return rule.level
			}
		}
	}
	return LevelOtherEducation
}

// dedupQualifications keeps the first entry per normalized course prefix.
func dedupQualifications(quals []QualificationEntry) []QualificationEntry {
	seen := map[string]bool{}
	unique := []QualificationEntry{}
	for _, q := range quals {
		key := strings.ToLower(q.CourseOfStudy)
		if len(key) > 50 {
			key = key[:50]
		}
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, q)
	}
	return unique
}
