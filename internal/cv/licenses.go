package cv

import (
	"regexp"
	"strings"
)

var licenseSectionHeaders = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bLICENSES & CERTIFICATIONS\b`),
	regexp.MustCompile(`(?i)\bPILOT LICENSES\b`),
	regexp.MustCompile(`(?i)\bAVIATION LICENSES\b`),
	regexp.MustCompile(`(?i)\bAVIATION QUALIFICATIONS\b`),
	regexp.MustCompile(`(?i)\bPILOT QUALIFICATIONS\b`),
	regexp.MustCompile(`(?i)\bLICENSES\b`),
	regexp.MustCompile(`(?i)\bCERTIFICATIONS\b`),
	regexp.MustCompile(`(?i)\bRATINGS\b`),
}

var licenseSectionTerminator = regexp.MustCompile(
	`(?i)\n\s*(?:EDUCATION|EXPERIENCE|EMPLOYMENT|SKILLS|PROFESSIONAL|TRAINING|PROJECTS|LANGUAGES|REFERENCES)`)

// licensePattern is one license line shape. yearGroups name capture groups
// that may carry an issue year; detailsGroup names the free-text details
// group, 0 when the shape has none.
type licensePattern struct {
	re           *regexp.Regexp
	yearGroups   []int
	detailsGroup int
}

var licensePatterns = []licensePattern{
	// License Type (Year) / License Type Year
	{re: regexp.MustCompile(`(?i)((?:ATPL|CPL|PPL|Type Rating|[A-Z]+\s+License).*?)(?:\((\d{4})\)|\s+(\d{4}))`), yearGroups: []int{2, 3}},
	// License Type: Details
	{re: regexp.MustCompile(`(?i)((?:ATPL|CPL|PPL|Type Rating|[A-Z]+\s+License).*?):\s*(.*?)(?:\n|\z)`), detailsGroup: 2},
	// Authority-prefixed certification: EASA ... License - Details
	{re: regexp.MustCompile(`(?i)((?:EASA|FAA|ICAO|DGCA|CAA).*?(?:License|Rating|Certificate))(?:\s+-\s+|\s*:\s*)(.*?)(?:\n|\z)`), detailsGroup: 2},
	// Bullet point license line
	{re: regexp.MustCompile(`(?i)[•*\-]\s*((?:ATPL|CPL|PPL|Type Rating|[A-Z]+\s+License|EASA|FAA|ICAO|DGCA|CAA).*?)(?:\((\d{4})\)|\s+(\d{4})|\n|\z)`), yearGroups: []int{2, 3}},
}

var authorityRules = []struct {
	re        *regexp.Regexp
	authority string
}{
	{regexp.MustCompile(`(?i)\b(?:EASA|European Aviation Safety Agency)\b`), "EASA"},
	{regexp.MustCompile(`(?i)\b(?:FAA|Federal Aviation Administration)\b`), "FAA"},
	{regexp.MustCompile(`(?i)\b(?:ICAO|International Civil Aviation Organization)\b`), "ICAO"},
	{regexp.MustCompile(`(?i)\b(?:DGCA|Directorate General of Civil Aviation)\b`), "DGCA"},
	{regexp.MustCompile(`(?i)\b(?:CAA|Civil Aviation Authority)\b`), "CAA"},
	{regexp.MustCompile(`(?i)\b(?:TCCA|Transport Canada Civil Aviation)\b`), "TCCA"},
	{regexp.MustCompile(`(?i)\b(?:CASA|Civil Aviation Safety Authority)\b`), "CASA"},
}

// extractAviationLicenses collects licenses and ratings in a fixed cascade:
// dedicated license sections, then a whole-document scan excluding
// employment text, then a keyword-context fallback, and finally aircraft
// type-rating mentions. Duplicates collapse on type plus details.
func extractAviationLicenses(text string) []LicenseEntry {
	empSpans := employmentSpans(text)
	var licenses []LicenseEntry

	licenseSections := findLicenseSections(text, empSpans)
	for _, sec := range licenseSections {
		for _, p := range licensePatterns {
			for _, m := range p.re.FindAllStringSubmatchIndex(sec.text, -1) {
				licenses = append(licenses, buildLicense(sec.text, p, m))
			}
		}
	}

	if len(licenses) == 0 {
		for _, p := range licensePatterns {
			for _, m := range p.re.FindAllStringSubmatchIndex(text, -1) {
				if empSpans.contains(m[0], m[1]) {
					continue
				}
				licenses = append(licenses, buildLicense(text, p, m))
			}
		}
	}

	if len(licenses) == 0 {
		licenses = append(licenses, keywordContextLicenses(text, empSpans)...)
	}

	licenses = append(licenses, typeRatingLicenses(text, empSpans, licenseSections)...)

	return dedupLicenses(licenses)
}

func buildLicense(searchText string, p licensePattern, m []int) LicenseEntry {
	group := func(n int) string {
		if 2*n+1 >= len(m) || m[2*n] < 0 {
			return ""
		}
		return strings.TrimSpace(searchText[m[2*n]:m[2*n+1]])
	}

	typ := group(1)
	entry := LicenseEntry{
		Type:             typ,
		Category:         categorizeLicense(typ),
		IssuingAuthority: extractAuthority(typ),
	}
	for _, g := range p.yearGroups {
		if year := group(g); year != "" {
			entry.IssueYear = year
			break
		}
	}
	if p.detailsGroup > 0 {
		entry.Details = group(p.detailsGroup)
	}
	return entry
}

// findLicenseSections locates dedicated license/certification sections
// outside employment spans.
func findLicenseSections(text string, empSpans spanIndex) []span {
	var sections []span
	for _, header := range licenseSectionHeaders {
		for _, loc := range header.FindAllStringIndex(text, -1) {
			if empSpans.contains(loc[0], loc[1]) {
				continue
			}
			secs := findSections(text[loc[0]:], []*regexp.Regexp{header}, licenseSectionTerminator)
			if len(secs) == 0 {
				continue
			}
			sec := secs[0]
			sections = append(sections, span{start: loc[0] + sec.start, end: loc[0] + sec.end, text: sec.text})
		}
	}
	return sections
}

// keywordContextLicenses is the last structured fallback: any known license
// keyword with its trailing context becomes an entry.
func keywordContextLicenses(text string, empSpans spanIndex) []LicenseEntry {
	var licenses []LicenseEntry
	for _, keyword := range aviationLicenseKeywords {
		re := regexp.MustCompile(`(?im)(?:^|\s)(` + regexp.QuoteMeta(keyword) + `[\s\-:]+[^.,:;]*)`)
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			if empSpans.contains(m[0], m[1]) {
				continue
			}
			details := strings.TrimSpace(text[m[2]:m[3]])
			licenses = append(licenses, LicenseEntry{
				Type:             keyword,
				Category:         categorizeLicense(keyword),
				IssuingAuthority: extractAuthority(details),
				Details:          details,
			})
		}
	}
	return licenses
}

// typeRatingLicenses surfaces aircraft type ratings: explicit
// "<aircraft> ... Rating/Qualified/Certified" phrases outside employment
// text, else a bare aircraft mention inside a license section.
func typeRatingLicenses(text string, empSpans spanIndex, licenseSections []span) []LicenseEntry {
	var licenses []LicenseEntry
	for _, aircraft := range aircraftTypes {
		if !wordBoundaryRe(aircraft).MatchString(text) {
			continue
		}
		ratingRe := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(aircraft) + `[^.,:;]*(?:Type Rating|Rating|Qualified|Certified)`)
		found := false
		for _, m := range ratingRe.FindAllStringIndex(text, -1) {
			if empSpans.contains(m[0], m[1]) {
				continue
			}
			licenses = append(licenses, LicenseEntry{
				Type:     "Type Rating",
				Category: CategoryAircraftRating,
				Details:  strings.TrimSpace(text[m[0]:m[1]]),
				Aircraft: aircraft,
			})
			found = true
		}
		if found {
			continue
		}
		for _, sec := range licenseSections {
			if wordBoundaryRe(aircraft).MatchString(sec.text) {
				licenses = append(licenses, LicenseEntry{
					Type:     "Type Rating",
					Category: CategoryAircraftRating,
					Details:  aircraft + " Type Rating",
					Aircraft: aircraft,
				})
				break
			}
		}
	}
	return licenses
}

// categorizeLicense maps license text onto a category via the ordered rule
// table; unmatched text falls into the other bucket.
func categorizeLicense(licenseText string) LicenseCategory {
	lower := strings.ToLower(licenseText)
	for _, rule := range licenseCategoryRules {
		for _, term := range rule.terms {
			if strings.Contains(lower, term) {
				return rule.category
			}
		}
	}
	return CategoryOtherAviation
}

func extractAuthority(licenseText string) string {
	for _, rule := range authorityRules {
		if rule.re.MatchString(licenseText) {
			return rule.authority
		}
	}
	return "Unknown"
}

func dedupLicenses(licenses []LicenseEntry) []LicenseEntry {
	seen := map[string]bool{}
	unique := []LicenseEntry{}
	for _, l := range licenses {
		key := l.Type + "-" + l.Details
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, l)
	}
	return unique
}
