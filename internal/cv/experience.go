package cv

import (
	"regexp"
	"strconv"
	"strings"
)

// Job-title pattern families, tried in order against the whole document.
var jobTitlePatterns = []*regexp.Regexp{
	// Explicit current-position labels
	regexp.MustCompile(`(?im)(?:Current|Present) (?:Job|Position|Role|Title)[:\s]+([A-Za-z\s()\-,./&]+)`),
	regexp.MustCompile(`(?im)(?:Job|Position|Role|Title|Designation)[:\s]+([A-Za-z\s()\-,./&]+)`),
	// Resume header "Name - Job Title" line
	regexp.MustCompile(`(?im)^[A-Z][a-z]+\s+[A-Z][a-z]+(?: [A-Z][a-z]+)?\s*[-–]\s*([A-Za-z\s()\-,./&]+)$`),
	regexp.MustCompile(`(?im)(?:Current|Present|Recent) (?:Position|Role|Job)[:\s]+([A-Za-z\s()\-,./&]+)`),
}

// Years-of-experience phrasings, tried in order; the first match with a
// plausible value (0,100) wins.
var yearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+? years? of experience`),
	regexp.MustCompile(`(?i)experience[:\s]+(\d+)\+? years?`),
	regexp.MustCompile(`(?i)worked for (\d+) years?`),
	regexp.MustCompile(`(?i)(\d+)\+? years? in`),
	regexp.MustCompile(`(?i)(\d+) years experience`),
	regexp.MustCompile(`(?i)experience of (\d+)\+? years?`),
	regexp.MustCompile(`(?i)(\d+)\+?[+\s-]*year`), // "10+ year", "15-year", "20 year"
	regexp.MustCompile(`(?i)career spanning (\d+)\+? years?`),
	regexp.MustCompile(`(?i)over (\d+) years?`),
}

// Date shapes that mark a line as a job entry when hunting for a title
// inside an experience section.
var titleDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d{4}\s*[-–]\s*(?:\d{4}|Present|Current|Now)`),
	regexp.MustCompile(`(?i)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}\b`),
}

var experienceSectionHeaders = []string{
	"WORK EXPERIENCE", "EMPLOYMENT HISTORY", "PROFESSIONAL EXPERIENCE",
	"CAREER HISTORY", "WORK HISTORY", "EXPERIENCE",
}

var aviationSpecIndicators = []string{"Aviation Specialization:", "Aviation Focus:", "Aviation Expertise:"}

// extractExperience builds the aggregate experience summary: current job
// title, years of experience and industry specialization.
func extractExperience(text string) ExperienceSummary {
	var summary ExperienceSummary

	lines := strings.Split(text, "\n")
	sentences := splitSentences(text)

	summary.CurrentJobTitle = truncate(findJobTitle(text, lines), maxTitleLen)
	summary.YearsOfExperience = findYearsOfExperience(text)

	industry := topIndustry(text)
	if industry == "" {
		return summary
	}
	summary.IndustrySpecialization = capitalizeWord(industry)

	if industry == "aviation" {
		if v, ok := labeledValue(sentences, aviationSpecIndicators); ok && v != "" {
			summary.AviationSpecialization = truncate(v, maxTitleLen)
		} else {
			// Fall back to the first sentence mentioning aviation.
			for _, s := range sentences {
				if strings.Contains(strings.ToLower(s), "aviation") {
					summary.AviationSpecialization = truncate(s, maxTitleLen)
					break
				}
			}
		}
	}

	return summary
}

func findJobTitle(text string, lines []string) string {
	for _, pattern := range jobTitlePatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			title := strings.TrimSpace(m[1])
			if len(title) > 2 && len(strings.Fields(title)) <= 8 {
				return title
			}
		}
	}
	return titleFromExperienceSection(lines)
}

// titleFromExperienceSection locates a work-experience header and scans the
// following lines for one that sits within five lines of a date-range,
// treating that line (minus the dates) as the title candidate.
func titleFromExperienceSection(lines []string) string {
	for i, line := range lines {
		if !containsAnyFold(line, experienceSectionHeaders) || i >= len(lines)-1 {
			continue
		}
		for j := i + 1; j < min(i+15, len(lines)); j++ {
			if strings.TrimSpace(lines[j]) == "" || len(strings.Fields(lines[j])) < 2 {
				continue
			}
			for k := j; k < min(j+5, len(lines)); k++ {
				if !lineHasDate(lines[k]) {
					continue
				}
				if title := cleanTitleCandidate(lines[k]); title != "" {
					return title
				}
				if k > j {
					prev := strings.TrimSpace(lines[k-1])
					if prev != "" && len(strings.Fields(prev)) <= 5 {
						return prev
					}
				}
			}
		}
		// Only the first experience header is examined.
		break
	}
	return ""
}

func lineHasDate(line string) bool {
	for _, pattern := range titleDatePatterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}

func cleanTitleCandidate(line string) string {
	for _, pattern := range titleDatePatterns {
		line = pattern.ReplaceAllString(line, "")
	}
	line = strings.TrimSpace(line)
	// Keep only the text before the first separator.
	if cut := strings.IndexAny(line, "(),|:-–"); cut >= 0 {
		line = strings.TrimSpace(line[:cut])
	}
	if len(line) > 2 && len(strings.Fields(line)) <= 5 {
		return line
	}
	return ""
}

func findYearsOfExperience(text string) int {
	for _, pattern := range yearsPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			years, err := strconv.Atoi(m[1])
			if err == nil && years > 0 && years < 100 {
				return years
			}
		}
	}
	return 0
}

// topIndustry returns the single most-mentioned industry keyword, ties
// resolved by table order.
func topIndustry(text string) string {
	best := ""
	bestCount := 0
	for _, keyword := range industryKeywords {
		count := len(wordBoundaryRe(keyword).FindAllString(text, -1))
		if count > bestCount {
			best = keyword
			bestCount = count
		}
	}
	return best
}

func capitalizeWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
