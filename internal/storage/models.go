package storage

import "time"

// Candidate is one stored professional profile. Scalar fields mirror the
// extraction result; empty means never filled, which is what the fill-empty
// merge keys on.
type Candidate struct {
	ID                     int       `json:"id"`
	Email                  string    `json:"email"`
	Name                   string    `json:"name"`
	PhoneNumber            string    `json:"phone_number"`
	Location               string    `json:"location"`
	City                   string    `json:"city"`
	Country                string    `json:"country"`
	Nationality            string    `json:"nationality"`
	DateOfBirth            string    `json:"date_of_birth"`
	CurrentJobTitle        string    `json:"current_job_title"`
	YearsOfExperience      int       `json:"years_of_experience"`
	IndustrySpecialization string    `json:"industry_specialization"`
	AviationSpecialization string    `json:"aviation_specialization"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// CVFile is the stored upload record with its extracted text.
type CVFile struct {
	ID          int       `json:"id"`
	CandidateID int       `json:"candidate_id"`
	Filename    string    `json:"filename"`
	FilePath    string    `json:"file_path"`
	FileType    string    `json:"file_type"`
	FileSize    int64     `json:"file_size"`
	ParsedText  string    `json:"parsed_text"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
