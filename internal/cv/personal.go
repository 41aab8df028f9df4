package cv

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// Phone pattern families in fixed priority order; the first family that
// matches anywhere in the document wins.
var phonePatterns = []*regexp.Regexp{
	// Standard format: +123 456-7890
	regexp.MustCompile(`\b(?:\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`),
	// International format with country code: +1 234 567 8901
	regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{1,4}[-.\s]?\d{1,4}[-.\s]?\d{1,9}\b`),
	// Parenthesized area code: (123) 456-7890
	regexp.MustCompile(`\(\d{3,5}\)[-.\s]?\d{3,4}[-.\s]?\d{3,4}\b`),
	// Compact digit groups: 123-456-7890
	regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`),
}

// Loose "word, word[, word]" shape used when no labeled location is found.
var addressShapeRe = regexp.MustCompile(`\b[A-Za-z\s]+,\s*[A-Za-z\s]+,?\s*[A-Za-z\s]*\b`)

var (
	locationIndicators    = []string{"Location:", "Address:", "City:", "Country:", "Based in:", "Location/Address:"}
	nationalityIndicators = []string{"Nationality:", "Citizenship:", "Citizen:", "Nationality/Citizenship:"}
	dobIndicators         = []string{"Date of Birth:", "DOB:", "Born:", "Birth Date:"}
)

// extractPersonalInfo runs the contact detection passes in a fixed order:
// email, phone, name, location, nationality, birth date. Fields not found
// stay empty.
func extractPersonalInfo(text string) PersonalInfo {
	var info PersonalInfo

	lines := strings.Split(text, "\n")
	sentences := splitSentences(text)

	if m := emailRe.FindString(text); m != "" {
		info.Email = m
	}

	for _, pattern := range phonePatterns {
		if m := pattern.FindString(text); m != "" {
			info.PhoneNumber = m
			break
		}
	}

	info.Name = truncate(findName(lines), maxNameLen)

	extractLocation(&info, lines, sentences)

	if v, ok := labeledValue(sentences, nationalityIndicators); ok && v != "" {
		// Keep the text up to the first comma or period.
		if cut := strings.IndexAny(v, ",."); cut >= 0 {
			v = v[:cut]
		}
		if v = strings.TrimSpace(v); v != "" {
			info.Nationality = truncate(v, maxShortFieldLen)
		}
	}

	if v, ok := labeledValue(sentences, dobIndicators); ok && v != "" {
		// Kept as a raw string; CV birth dates are too messy to parse.
		info.DateOfBirth = truncate(v, maxShortFieldLen)
	}

	return info
}

// findName inspects the first few lines for a 1-4 word candidate with no
// colon or at-sign and no single-letter words, the typical shape of a name
// heading a résumé.
func findName(lines []string) string {
	limit := 5
	if len(lines) < limit {
		limit = len(lines)
	}
	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if len(line) <= 3 || strings.ContainsAny(line, ":@") {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 1 || len(words) > 4 {
			continue
		}
		ok := true
		for _, w := range words {
			if len(w) <= 1 {
				ok = false
				break
			}
		}
		if ok {
			return line
		}
	}
	return ""
}

// extractLocation first tries explicit labeled indicators, splitting on
// comma into city/country when possible, then falls back to an
// address-shaped scan over lines.
func extractLocation(info *PersonalInfo, lines, sentences []string) {
	if v, ok := labeledValue(sentences, locationIndicators); ok {
		setLocation(info, v)
		return
	}

	for _, line := range lines {
		m := addressShapeRe.FindString(line)
		if m == "" || !strings.Contains(m, ",") || len(strings.Fields(m)) < 3 {
			continue
		}
		setLocation(info, m)
		return
	}
}

func setLocation(info *PersonalInfo, location string) {
	parts := strings.Split(location, ",")
	if len(parts) >= 2 {
		info.City = truncate(strings.TrimSpace(parts[0]), maxShortFieldLen)
		info.Country = truncate(strings.TrimSpace(parts[len(parts)-1]), maxShortFieldLen)
		return
	}
	info.Location = truncate(strings.TrimSpace(location), maxLocationLen)
}
