package cv

import (
	"regexp"
	"strings"
)

var sentenceBoundaryRe = regexp.MustCompile(`[.!?]\s+|\n+`)

// splitSentences breaks text into rough sentence/line units for the labeled
// "Indicator: value" scans. Precision does not matter here: the indicators
// are explicit labels and a line is as good a unit as a sentence.
func splitSentences(text string) []string {
	parts := sentenceBoundaryRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// labeledValue scans sentences in order for the first occurrence of any
// indicator label and returns the text following it.
func labeledValue(sentences []string, indicators []string) (string, bool) {
	for _, s := range sentences {
		for _, indicator := range indicators {
			if i := strings.Index(s, indicator); i >= 0 {
				return strings.TrimSpace(s[i+len(indicator):]), true
			}
		}
	}
	return "", false
}
