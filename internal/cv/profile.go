package cv

import "time"

// Profile is the structured result of one extraction call. All collection
// fields are always non-nil so callers can treat empty as "nothing
// extracted" rather than an error.
type Profile struct {
	PersonalInfo      PersonalInfo         `json:"personal_info"`
	Experience        ExperienceSummary    `json:"experience"`
	EmploymentHistory []EmploymentEntry    `json:"employment_history"`
	Qualifications    []QualificationEntry `json:"qualifications"`
	AviationData      AviationData         `json:"aviation_data"`
}

// NewProfile returns a profile with all collections initialized.
func NewProfile() *Profile {
	return &Profile{
		EmploymentHistory: []EmploymentEntry{},
		Qualifications:    []QualificationEntry{},
		AviationData: AviationData{
			Licenses: []LicenseEntry{},
		},
	}
}

// IsEmpty reports whether extraction produced nothing usable.
func (p *Profile) IsEmpty() bool {
	return p.PersonalInfo.IsEmpty() && p.Experience.IsEmpty() &&
		len(p.EmploymentHistory) == 0 && len(p.Qualifications) == 0 &&
		len(p.AviationData.Licenses) == 0
}

// PersonalInfo holds independently detected contact fields. An empty string
// means the field was not found; none of the fields are required.
type PersonalInfo struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Location    string `json:"location,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	// Source CVs are too unreliable to parse this into a date.
	DateOfBirth string `json:"date_of_birth,omitempty"`
}

// IsEmpty reports whether no personal field was detected.
func (p PersonalInfo) IsEmpty() bool {
	return p == PersonalInfo{}
}

// ExperienceSummary aggregates whole-document experience signals.
type ExperienceSummary struct {
	CurrentJobTitle        string `json:"current_job_title,omitempty"`
	YearsOfExperience      int    `json:"years_of_experience,omitempty"`
	IndustrySpecialization string `json:"industry_specialization,omitempty"`
	AviationSpecialization string `json:"aviation_specialization,omitempty"`
}

// IsEmpty reports whether no experience field was detected.
func (e ExperienceSummary) IsEmpty() bool {
	return e == ExperienceSummary{}
}

// EmploymentEntry is one job in the employment history. EndDate is nil for
// a current position; IsCurrent true implies EndDate nil.
type EmploymentEntry struct {
	CompanyName      string     `json:"company_name"`
	JobTitle         string     `json:"job_title"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	IsCurrent        bool       `json:"is_current"`
	Responsibilities string     `json:"responsibilities"`
	ReasonLeaving    string     `json:"reason_leaving"`
}

// EducationLevel classifies a qualification entry.
type EducationLevel string

const (
	LevelPhD            EducationLevel = "phd"
	LevelMasters        EducationLevel = "masters"
	LevelDegree         EducationLevel = "degree"
	LevelDiploma        EducationLevel = "diploma"
	LevelCertificate    EducationLevel = "certificate"
	LevelAviationCert   EducationLevel = "aviation_certification"
	LevelOtherEducation EducationLevel = "other"
)

// QualificationEntry is one education or certification record.
type QualificationEntry struct {
	Level          EducationLevel `json:"highest_education_level"`
	CourseOfStudy  string         `json:"course_of_study"`
	Institution    string         `json:"institution"`
	GraduationYear string         `json:"expected_graduation_year,omitempty"`
	GPA            float64        `json:"gpa,omitempty"`
}

// LicenseCategory classifies an aviation license or rating.
type LicenseCategory string

const (
	CategoryATPL             LicenseCategory = "ATPL"
	CategoryCPL              LicenseCategory = "CPL"
	CategoryPPL              LicenseCategory = "PPL"
	CategoryInstructor       LicenseCategory = "instructor"
	CategoryTypeRating       LicenseCategory = "type_rating"
	CategoryInstrumentRating LicenseCategory = "instrument_rating"
	CategoryMCC              LicenseCategory = "MCC"
	CategoryCabinCrew        LicenseCategory = "cabin_crew"
	CategorySEP              LicenseCategory = "SEP"
	CategoryAircraftRating   LicenseCategory = "aircraft_type_rating"
	CategoryOtherAviation    LicenseCategory = "other_aviation_qualification"
)

// LicenseEntry is one aviation license, rating or certificate.
type LicenseEntry struct {
	Type             string          `json:"type"`
	Category         LicenseCategory `json:"category"`
	IssuingAuthority string          `json:"issuing_authority,omitempty"`
	IssueYear        string          `json:"issue_year,omitempty"`
	Details          string          `json:"details,omitempty"`
	Aircraft         string          `json:"aircraft,omitempty"`
}

// AviationData groups the aviation-only extraction results.
type AviationData struct {
	Licenses         []LicenseEntry   `json:"licenses"`
	FlightExperience FlightExperience `json:"flight_experience"`
	AviationSkills   AviationSkills   `json:"aviation_skills"`
}

// FlightExperience carries labeled hour metrics plus aircraft types flown.
// Hour keys are snake_case metric names (total_flight_hours, pic_hours, ...);
// generic labeled hours keep their source label as the key.
type FlightExperience struct {
	Hours              map[string]float64 `json:"hours,omitempty"`
	AircraftTypesFlown []string           `json:"aircraft_types_flown,omitempty"`
}

// AviationSkills buckets extracted skills by category.
type AviationSkills struct {
	TechnicalSkills     []string `json:"technical_skills,omitempty"`
	OperationalSkills   []string `json:"operational_skills,omitempty"`
	ComplianceKnowledge []string `json:"compliance_knowledge,omitempty"`
	SoftSkills          []string `json:"soft_skills,omitempty"`
}

// IsEmpty reports whether no skill bucket has entries.
func (s AviationSkills) IsEmpty() bool {
	return len(s.TechnicalSkills) == 0 && len(s.OperationalSkills) == 0 &&
		len(s.ComplianceKnowledge) == 0 && len(s.SoftSkills) == 0
}

// Field length caps applied before values are placed on the profile.
const (
	maxNameLen             = 200
	maxShortFieldLen       = 100
	maxLocationLen         = 255
	maxTitleLen            = 200
	maxCompanyLen          = 255
	maxCourseLen           = 200
	maxInstitutionLen      = 200
	maxResponsibilitiesLen = 2000
)

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
