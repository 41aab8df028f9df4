package cv

import (
	"regexp"
	"strconv"
	"strings"
)

const hourQualifier = `(?:approx\.?|approximately|~|>|about|over)?`
const hourValue = `(\d{1,6}(?:,\d{3})*(?:\.\d+)?)`

// Labeled hour metrics, specific phrasings before the generic catch-all.
// The generic pattern derives its key from the captured label.
var flightHourPatterns = []struct {
	re  *regexp.Regexp
	key string
}{
	{regexp.MustCompile(`(?i)(?:total|flying|flight)\s+(?:hours|hrs|time)[:\s]+` + hourQualifier + `\s*` + hourValue), "total_flight_hours"},
	{regexp.MustCompile(`(?i)(?:PIC|pilot\s+in\s+command)\s+(?:hours|hrs|time)[:\s]+` + hourQualifier + `\s*` + hourValue), "pic_hours"},
	{regexp.MustCompile(`(?i)(?:SIC|second\s+in\s+command|co-pilot)\s+(?:hours|hrs|time)[:\s]+` + hourQualifier + `\s*` + hourValue), "sic_hours"},
	{regexp.MustCompile(`(?i)(?:IFR|instrument(?:\s+flight)?(?:\s+rules)?)\s+(?:hours|hrs|time)[:\s]+` + hourQualifier + `\s*` + hourValue), "ifr_hours"},
	{regexp.MustCompile(`(?i)night\s+(?:hours|hrs|time)[:\s]+` + hourQualifier + `\s*` + hourValue), "night_hours"},
	{regexp.MustCompile(`(?i)(?:multi[\s-]engine|ME)\s+(?:hours|hrs|time)[:\s]+` + hourQualifier + `\s*` + hourValue), "multi_engine_hours"},
	{regexp.MustCompile(`(?i)sim(?:ulator)?\s+(?:hours|hrs|time)[:\s]+` + hourQualifier + `\s*` + hourValue), "simulator_hours"},
	{regexp.MustCompile(`(?i)(\w+(?:\s+\w+)?)\s+hours[:\s]+` + hourValue), ""},
}

var aircraftListPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)aircraft\s+(?:types?|flown)[:\s]+((?:[A-Za-z0-9\-]+(?:[,\s]+|/)){1,10})`),
	regexp.MustCompile(`(?i)experience\s+on[:\s]+((?:[A-Za-z0-9\-]+(?:[,\s]+|/)){1,10})`),
	regexp.MustCompile(`(?i)qualified\s+on[:\s]+((?:[A-Za-z0-9\-]+(?:[,\s]+|/)){1,10})`),
}

var aircraftListSeparatorRe = regexp.MustCompile(`[,/\s]+`)

var aircraftListStopwords = map[string]bool{
	"and": true, "the": true, "with": true, "on": true,
}

// extractFlightExperience pulls labeled hour metrics and aircraft types
// flown. Generic "<label> hours: N" lines keep their snake_cased label as
// the metric key; later matches of the same metric overwrite earlier ones.
func extractFlightExperience(text string) FlightExperience {
	exp := FlightExperience{Hours: map[string]float64{}}

	for _, p := range flightHourPatterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			key := p.key
			valueStr := m[1]
			if key == "" {
				key = strings.ToLower(strings.TrimSpace(m[1]))
				key = strings.ReplaceAll(key, " ", "_") + "_hours"
				valueStr = m[2]
			}
			value, err := strconv.ParseFloat(strings.ReplaceAll(valueStr, ",", ""), 64)
			if err != nil {
				continue
			}
			exp.Hours[key] = value
		}
	}

	exp.AircraftTypesFlown = aircraftTypesFlown(text)
	return exp
}

// aircraftTypesFlown merges explicit "aircraft flown:" style lists with any
// known aircraft type mentioned anywhere in the document.
func aircraftTypesFlown(text string) []string {
	seen := map[string]bool{}
	var types []string

	add := func(t string) {
		if t == "" || seen[strings.ToLower(t)] {
			return
		}
		seen[strings.ToLower(t)] = true
		types = append(types, t)
	}

	for _, pattern := range aircraftListPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			for _, t := range aircraftListSeparatorRe.Split(strings.TrimSpace(m[1]), -1) {
				t = strings.TrimSpace(t)
				if len(t) > 2 && !aircraftListStopwords[strings.ToLower(t)] {
					add(t)
				}
			}
		}
	}

	for _, aircraft := range aircraftTypes {
		if wordBoundaryRe(aircraft).MatchString(text) {
			add(aircraft)
		}
	}

	return types
}
