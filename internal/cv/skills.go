package cv

import (
	"regexp"
	"strings"
)

var skillsSectionHeaders = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bTECHNICAL SKILLS\b`),
	regexp.MustCompile(`(?i)\bAVIATION SKILLS\b`),
	regexp.MustCompile(`(?i)\bPROFESSIONAL SKILLS\b`),
	regexp.MustCompile(`(?i)\bOPERATIONAL SKILLS\b`),
	regexp.MustCompile(`(?i)\bSKILLS\b`),
	regexp.MustCompile(`(?i)\bCOMPETENCIES\b`),
	regexp.MustCompile(`(?i)\bCAPABILITIES\b`),
}

var skillsSectionTerminator = regexp.MustCompile(
	`(?i)\n\s*(?:EDUCATION|EXPERIENCE|EMPLOYMENT|LICENSES|CERTIFICATIONS|TRAINING|PROJECTS|LANGUAGES|REFERENCES)`)

// Bullet markers include the exotic glyphs word processors emit.
var skillBulletRe = regexp.MustCompile(`(?m)(?:^|\n)(?:\s*[•\-*♦◦‣⁃◘◙◉○●■□▪▫]\s*|\s*\d+\.\s*)([^\n*•\-]+)`)

var skillCommaListRe = regexp.MustCompile(`(?i)(?:skills|competencies|capabilities)[:\s]+((?:[^,\n]+,\s*){2,}[^,\n]+)`)

// extractAviationSkills parses the skills section into category buckets.
// Bulleted items are preferred; a sparse section falls back to
// comma-separated lists. Known technical and compliance keywords found
// anywhere in the document supplement the buckets with their surrounding
// context.
func extractAviationSkills(text string) AviationSkills {
	var skills AviationSkills

	section := skillsSection(text)

	var items []string
	for _, m := range skillBulletRe.FindAllStringSubmatch(section, -1) {
		if item := strings.TrimSpace(m[1]); len(item) > 3 {
			items = append(items, item)
		}
	}
	if len(items) < 3 {
		for _, m := range skillCommaListRe.FindAllStringSubmatch(section, -1) {
			for _, part := range strings.Split(m[1], ",") {
				if item := strings.TrimSpace(part); len(item) > 3 {
					items = append(items, item)
				}
			}
		}
	}

	for _, item := range items {
		switch {
		case containsAnyFold(item, aviationTechnicalSkills):
			skills.TechnicalSkills = append(skills.TechnicalSkills, item)
		case containsAnyFold(item, aviationComplianceKeywords):
			skills.ComplianceKnowledge = append(skills.ComplianceKnowledge, item)
		case containsAnyFold(item, aviationSoftSkills):
			skills.SoftSkills = append(skills.SoftSkills, item)
		default:
			skills.OperationalSkills = append(skills.OperationalSkills, item)
		}
	}

	for _, keyword := range aviationTechnicalSkills {
		if ctx := keywordContext(text, keyword, 50); ctx != "" && !containsString(skills.TechnicalSkills, ctx) {
			skills.TechnicalSkills = append(skills.TechnicalSkills, ctx)
		}
	}
	for _, keyword := range aviationComplianceKeywords {
		if ctx := keywordContext(text, keyword, 50); ctx != "" && !containsString(skills.ComplianceKnowledge, ctx) {
			skills.ComplianceKnowledge = append(skills.ComplianceKnowledge, ctx)
		}
	}

	return skills
}

// skillsSection returns the first labeled skills section, or the whole
// document when no header is present.
func skillsSection(text string) string {
	for _, header := range skillsSectionHeaders {
		secs := findSections(text, []*regexp.Regexp{header}, skillsSectionTerminator)
		if len(secs) > 0 {
			return secs[0].text
		}
	}
	return text
}

var sentenceStartRe = regexp.MustCompile(`[.!?]\s+[A-Z]`)
var sentenceEndRe = regexp.MustCompile(`[.!?]\s+`)

// keywordContext returns the text surrounding the first occurrence of a
// keyword, trimmed toward sentence boundaries when they fall inside the
// window.
func keywordContext(text, keyword string, contextChars int) string {
	loc := wordBoundaryRe(keyword).FindStringIndex(text)
	if loc == nil {
		return ""
	}
	start := max(0, loc[0]-contextChars)
	end := min(len(text), loc[1]+contextChars)
	context := text[start:end]

	if m := sentenceStartRe.FindStringIndex(context); m != nil && m[1] < len(context)-10 {
		context = context[m[1]-1:]
	}
	if m := sentenceEndRe.FindStringIndex(context); m != nil {
		context = context[:m[1]-1]
	}
	return strings.TrimSpace(context)
}

func containsString(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
