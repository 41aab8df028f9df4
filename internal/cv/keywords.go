package cv

// Keyword tables driving classification and category lookup. Order matters
// wherever a table feeds a first-match-wins rule chain.

var aviationLicenseKeywords = []string{
	"ATPL", "Airline Transport Pilot License", "Airline Transport Pilot Licence",
	"CPL", "Commercial Pilot License", "Commercial Pilot Licence",
	"PPL", "Private Pilot License", "Private Pilot Licence",
	"EASA license", "FAA license", "ICAO license", "DGCA license", "CAA license",
	"Type Rating", "Flight Instructor", "FI ", "Instrument Rating", "IRI ",
	"Multi-Crew Cooperation", "MCC", "Cabin Crew Certificate",
	"Safety & Emergency Procedures", "SEP Certificate",
}

var aviationExperienceKeywords = []string{
	"Flight Hours", "Total flight hours", "PIC hours", "Pilot in Command",
	"SIC hours", "Second in Command", "Multi-engine hours",
	"IFR hours", "Instrument Flight Rules", "VFR hours", "Visual Flight Rules",
	"Simulator training", "Sim hours", "Aircraft types flown",
}

var aviationTechnicalSkills = []string{
	"Flight planning", "Aircraft performance", "Navigation systems", "FMS", "GPS",
	"RNAV", "ILS", "Crew Resource Management", "CRM", "Safety Management System", "SMS",
	"Human Factors", "Emergency handling", "Maintenance awareness", "Ground operations",
}

var aviationComplianceKeywords = []string{
	"ICAO standards", "EASA Part-FCL", "FAA Part 61", "FAA Part 141",
	"DGCA compliance", "CAA compliance", "Aviation security",
	"Quality assurance", "Risk management", "Fatigue management",
}

var aviationSoftSkills = []string{
	"Leadership", "Decision making under pressure", "Teamwork in multi-crew",
	"Communication skills", "Situational awareness", "Problem solving",
	"Passenger safety", "Customer service",
}

var aircraftTypes = []string{
	"Boeing 737", "Boeing 747", "Boeing 757", "Boeing 767", "Boeing 777", "Boeing 787",
	"Airbus A320", "Airbus A330", "Airbus A340", "Airbus A350", "Airbus A380",
	"Embraer", "Bombardier", "Cessna", "ATR", "Fokker", "McDonnell Douglas",
	"Beechcraft", "Piper", "Dash 8", "CRJ", "Saab", "Dornier", "Learjet",
}

var aviationJobTitles = []string{
	"pilot", "first officer", "captain", "flight instructor",
	"flight attendant", "cabin crew", "aviation", "aircrew",
}

var industryKeywords = []string{
	"aviation", "aerospace", "airline", "flight", "aircraft",
	"healthcare", "medical", "pharmaceutical", "finance", "banking",
	"technology", "software", "IT", "engineering", "construction",
	"education", "teaching", "hospitality", "retail", "manufacturing",
	"transportation", "logistics", "marketing", "sales", "consulting",
	"legal", "insurance", "real estate", "telecommunications",
}

// Corporate suffixes used to recognize employer names.
var companySuffixes = []string{
	"Inc", "LLC", "Ltd", "Limited", "Corp", "Corporation", "Co", "Company",
	"GmbH", "AG", "LLP", "Group", "PLC", "Holdings", "International",
	"Incorporated", "Systems", "Solutions", "Services", "Technologies", "Partners",
}

// Job-title substrings used by the company/title disambiguation heuristic.
var jobTitleWords = []string{
	"manager", "director", "engineer", "analyst", "assistant",
	"pilot", "officer", "specialist", "coordinator", "developer",
}

// Job terms rejected inside degree text: a "degree" containing one of these
// is almost certainly a misread employment line.
var jobTerms = []string{
	"Manager", "Director", "Officer", "Specialist", "Pilot", "Engineer",
	"Analyst", "Consultant", "Representative", "Agent", "Assistant",
	"Coordinator", "Supervisor", "Lead", "Head of", "Chief", "Developer",
	"Administrator", "Executive", "Associate", "Team Lead", "Architect",
}

var educationKeywords = []string{
	"Bachelor", "Master", "PhD", "Doctorate", "BSc", "MSc", "BA", "MA", "MBA",
	"Certificate", "Diploma", "Associate", "Degree", "University", "College",
	"School of", "Institute of", "Academy", "Education", "Graduate", "Student",
}

// Terms marking a header as employment-related so education extraction can
// skip headers like "Work Experience & Qualifications".
var employmentHeaderTerms = []string{
	"work experience", "employment history", "professional experience", "career history",
	"job history", "professional background", "work history", "position", "positions",
	"job title", "job position", "job role", "job function",
}

// Education-level rule table, evaluated in order: aviation certifications
// win over academic buckets so an ATPL never classifies as a degree.
var educationLevelRules = []struct {
	level EducationLevel
	terms []string
}{
	{LevelAviationCert, []string{"atpl", "cpl", "ppl", "type rating", "flight instructor", "pilot license"}},
	{LevelPhD, []string{"phd", "doctorate", "doctoral"}},
	{LevelMasters, []string{"master", "msc", "ma", "mba", "meng"}},
	{LevelDegree, []string{"bachelor", "bsc", "ba", "beng", "degree"}},
	{LevelDiploma, []string{"diploma"}},
	{LevelCertificate, []string{"certificate"}},
}

// License category rule table, first match wins.
var licenseCategoryRules = []struct {
	category LicenseCategory
	terms    []string
}{
	{CategoryATPL, []string{"atpl", "airline transport pilot"}},
	{CategoryCPL, []string{"cpl", "commercial pilot"}},
	{CategoryPPL, []string{"ppl", "private pilot"}},
	{CategoryInstructor, []string{"instructor", "fi ", "cfi "}},
	{CategoryTypeRating, []string{"type rating", "aircraft rating"}},
	{CategoryInstrumentRating, []string{"instrument", "ir ", "iri "}},
	{CategoryMCC, []string{"mcc", "multi-crew"}},
	{CategoryCabinCrew, []string{"cabin crew", "flight attendant"}},
	{CategorySEP, []string{"sep", "safety & emergency", "safety and emergency"}},
}
