package cv

import (
	"io"
	"log"
	"os"
)

// Extractor runs the full CV pipeline: text extraction with OCR escalation,
// aviation classification, and the entity extraction passes.
type Extractor struct {
	caps        Capabilities
	ocrLanguage string
	tmpDir      string
}

// NewExtractor builds an extractor. Empty ocrLanguage defaults to English,
// empty tmpDir to the system temp directory.
func NewExtractor(caps Capabilities, ocrLanguage, tmpDir string) *Extractor {
	if ocrLanguage == "" {
		ocrLanguage = "eng"
	}
	if tmpDir == "" {
		tmpDir = os.TempDir()
	}
	return &Extractor{caps: caps, ocrLanguage: ocrLanguage, tmpDir: tmpDir}
}

// ExtractText runs only the text-extraction stage, including the OCR
// escalation path. Callers that persist the raw text use this and feed the
// result to ExtractFromText.
func (e *Extractor) ExtractText(name string, r io.Reader) string {
	return e.loadAndExtractText(name, r)
}

// Extract reads one uploaded document and returns its structured profile.
// Failures at any stage degrade to an empty or partial profile, never an
// error: a CV we cannot read is a CV with nothing extracted.
func (e *Extractor) Extract(name string, r io.Reader) *Profile {
	return e.ExtractFromText(e.loadAndExtractText(name, r))
}

// ExtractFromText runs entity extraction over already-extracted text.
// Documents below the meaningful-content threshold yield an empty profile.
func (e *Extractor) ExtractFromText(text string) *Profile {
	profile := NewProfile()

	if nonWhitespaceLen(text) < minMeaningfulChars {
		log.Println("extracted text too short for meaningful extraction")
		return profile
	}

	guarded("personal info", func() { profile.PersonalInfo = extractPersonalInfo(text) })
	guarded("experience", func() { profile.Experience = extractExperience(text) })
	guarded("employment history", func() { profile.EmploymentHistory = extractEmploymentHistory(text) })

	if IsAviationCV(text) {
		log.Println("aviation cv detected, running specialized extraction")
		guarded("aviation licenses", func() { profile.AviationData.Licenses = extractAviationLicenses(text) })
		guarded("qualifications", func() {
			profile.Qualifications = extractQualificationsExcludingLicenses(text, profile.AviationData.Licenses)
		})
		guarded("flight experience", func() { profile.AviationData.FlightExperience = extractFlightExperience(text) })
		guarded("aviation skills", func() { profile.AviationData.AviationSkills = extractAviationSkills(text) })
	} else {
		guarded("qualifications", func() { profile.Qualifications = extractQualifications(text) })
	}

	return profile
}

// guarded runs one extraction step and contains any panic inside it, so a
// single misbehaving pattern costs its own fields and nothing else.
func guarded(step string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("%s extraction failed: %v", step, r)
		}
	}()
	fn()
}
