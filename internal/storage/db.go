package storage

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver

	"cv-extract/internal/cv"
)

type DB struct {
	connection *sql.DB
}

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &DB{connection: db}, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		log.Println("Error closing the database connection:", err)
	}
}

// GetConnection returns the underlying database connection for advanced queries
func (db *DB) GetConnection() *sql.DB {
	return db.connection
}

// UpsertCandidateByEmail returns the candidate id for an email, creating the
// row if it does not exist yet. A CV with no extractable email gets a fresh
// anonymous row keyed by a generated placeholder address; the schema carries
// a unique index on email, so a literal empty string would collide on the
// second anonymous upload.
func (db *DB) UpsertCandidateByEmail(ctx context.Context, email string) (int, error) {
	if email == "" {
		email = "anonymous-" + uuid.NewString() + "@cv-extract.invalid"
	}
	var id int
	query := `
		INSERT INTO candidates (email) VALUES ($1)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id
	`
	err := db.connection.QueryRowContext(ctx, query, email).Scan(&id)
	return id, err
}

// SaveCVFile stores CV file metadata and the extracted text.
func (db *DB) SaveCVFile(ctx context.Context, candidateID int, filename, filePath, fileType, parsedText string, fileSize int64) (int, error) {
	var cvID int
	query := `
		INSERT INTO cv_files (candidate_id, filename, file_path, file_type, file_size, parsed_text, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id
	`
	err := db.connection.QueryRowContext(ctx, query,
		candidateID, filename, filePath, fileType, fileSize, parsedText,
	).Scan(&cvID)

	return cvID, err
}

// ListCVFiles returns stored CV files, newest first, for reprocessing.
func (db *DB) ListCVFiles(ctx context.Context, limit int) ([]CVFile, error) {
	query := `
		SELECT id, candidate_id, filename, file_path, file_type, file_size, parsed_text, uploaded_at
		FROM cv_files ORDER BY uploaded_at DESC
	`
	var args []interface{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := db.connection.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []CVFile
	for rows.Next() {
		var f CVFile
		if err := rows.Scan(&f.ID, &f.CandidateID, &f.Filename, &f.FilePath,
			&f.FileType, &f.FileSize, &f.ParsedText, &f.UploadedAt); err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// MergeProfile applies an extracted profile onto a candidate. Scalar fields
// fill only where the stored value is still empty; collection entries insert
// only when no row with the same natural key exists. Extraction never
// overwrites data a user already has.
func (db *DB) MergeProfile(ctx context.Context, candidateID int, profile *cv.Profile) error {
	tx, err := db.connection.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := mergeScalarFields(ctx, tx, candidateID, profile); err != nil {
		return err
	}
	if err := insertEmployment(ctx, tx, candidateID, profile.EmploymentHistory); err != nil {
		return err
	}
	if err := insertQualifications(ctx, tx, candidateID, profile.Qualifications); err != nil {
		return err
	}
	if err := insertLicenses(ctx, tx, candidateID, profile.AviationData.Licenses); err != nil {
		return err
	}
	if err := upsertFlightHours(ctx, tx, candidateID, profile.AviationData.FlightExperience); err != nil {
		return err
	}
	if err := insertAviationSkills(ctx, tx, candidateID, profile.AviationData.AviationSkills); err != nil {
		return err
	}

	return tx.Commit()
}

func mergeScalarFields(ctx context.Context, tx *sql.Tx, candidateID int, profile *cv.Profile) error {
	query := `
		UPDATE candidates SET
			name = COALESCE(NULLIF(name, ''), $2),
			phone_number = COALESCE(NULLIF(phone_number, ''), $3),
			location = COALESCE(NULLIF(location, ''), $4),
			city = COALESCE(NULLIF(city, ''), $5),
			country = COALESCE(NULLIF(country, ''), $6),
			nationality = COALESCE(NULLIF(nationality, ''), $7),
			date_of_birth = COALESCE(NULLIF(date_of_birth, ''), $8),
			current_job_title = COALESCE(NULLIF(current_job_title, ''), $9),
			years_of_experience = CASE WHEN years_of_experience = 0 THEN $10 ELSE years_of_experience END,
			industry_specialization = COALESCE(NULLIF(industry_specialization, ''), $11),
			aviation_specialization = COALESCE(NULLIF(aviation_specialization, ''), $12),
			updated_at = NOW()
		WHERE id = $1
	`
	p := profile.PersonalInfo
	e := profile.Experience
	_, err := tx.ExecContext(ctx, query, candidateID,
		p.Name, p.PhoneNumber, p.Location, p.City, p.Country, p.Nationality, p.DateOfBirth,
		e.CurrentJobTitle, e.YearsOfExperience, e.IndustrySpecialization, e.AviationSpecialization,
	)
	return err
}

func insertEmployment(ctx context.Context, tx *sql.Tx, candidateID int, entries []cv.EmploymentEntry) error {
	query := `
		INSERT INTO employment_history
			(candidate_id, company_name, job_title, start_date, end_date, is_current, responsibilities, reason_leaving)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8
		WHERE NOT EXISTS (
			SELECT 1 FROM employment_history
			WHERE candidate_id = $1 AND company_name = $2 AND job_title = $3
		)
	`
	for _, entry := range entries {
		if _, err := tx.ExecContext(ctx, query, candidateID,
			entry.CompanyName, entry.JobTitle, entry.StartDate, entry.EndDate,
			entry.IsCurrent, entry.Responsibilities, entry.ReasonLeaving); err != nil {
			return err
		}
	}
	return nil
}

func insertQualifications(ctx context.Context, tx *sql.Tx, candidateID int, entries []cv.QualificationEntry) error {
	query := `
		INSERT INTO qualifications
			(candidate_id, education_level, course_of_study, institution, graduation_year, gpa)
		SELECT $1, $2, $3, $4, $5, $6
		WHERE NOT EXISTS (
			SELECT 1 FROM qualifications
			WHERE candidate_id = $1 AND institution = $4 AND course_of_study = $3
		)
	`
	for _, entry := range entries {
		if _, err := tx.ExecContext(ctx, query, candidateID,
			string(entry.Level), entry.CourseOfStudy, entry.Institution,
			entry.GraduationYear, entry.GPA); err != nil {
			return err
		}
	}
	return nil
}

func insertLicenses(ctx context.Context, tx *sql.Tx, candidateID int, entries []cv.LicenseEntry) error {
	query := `
		INSERT INTO aviation_licenses
			(candidate_id, license_type, category, issuing_authority, issue_year, details, aircraft)
		SELECT $1, $2, $3, $4, $5, $6, $7
		WHERE NOT EXISTS (
			SELECT 1 FROM aviation_licenses
			WHERE candidate_id = $1 AND license_type = $2 AND details = $6
		)
	`
	for _, entry := range entries {
		if _, err := tx.ExecContext(ctx, query, candidateID,
			entry.Type, string(entry.Category), entry.IssuingAuthority,
			entry.IssueYear, entry.Details, entry.Aircraft); err != nil {
			return err
		}
	}
	return nil
}

func upsertFlightHours(ctx context.Context, tx *sql.Tx, candidateID int, exp cv.FlightExperience) error {
	hoursQuery := `
		INSERT INTO flight_hours (candidate_id, metric, hours)
		VALUES ($1, $2, $3)
		ON CONFLICT (candidate_id, metric) DO UPDATE SET hours = EXCLUDED.hours
	`
	for metric, hours := range exp.Hours {
		if _, err := tx.ExecContext(ctx, hoursQuery, candidateID, metric, hours); err != nil {
			return err
		}
	}

	aircraftQuery := `
		INSERT INTO aircraft_flown (candidate_id, aircraft)
		SELECT $1, $2
		WHERE NOT EXISTS (
			SELECT 1 FROM aircraft_flown WHERE candidate_id = $1 AND aircraft = $2
		)
	`
	for _, aircraft := range exp.AircraftTypesFlown {
		if _, err := tx.ExecContext(ctx, aircraftQuery, candidateID, aircraft); err != nil {
			return err
		}
	}
	return nil
}

func insertAviationSkills(ctx context.Context, tx *sql.Tx, candidateID int, skills cv.AviationSkills) error {
	query := `
		INSERT INTO aviation_skills (candidate_id, skill_category, skill)
		SELECT $1, $2, $3
		WHERE NOT EXISTS (
			SELECT 1 FROM aviation_skills WHERE candidate_id = $1 AND skill_category = $2 AND skill = $3
		)
	`
	buckets := map[string][]string{
		"technical_skills":     skills.TechnicalSkills,
		"operational_skills":   skills.OperationalSkills,
		"compliance_knowledge": skills.ComplianceKnowledge,
		"soft_skills":          skills.SoftSkills,
	}
	for category, items := range buckets {
		for _, skill := range items {
			if _, err := tx.ExecContext(ctx, query, candidateID, category, skill); err != nil {
				return err
			}
		}
	}
	return nil
}
