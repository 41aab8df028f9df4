package main

import (
	"context"
	"flag"
	"log"
	"os"

	"cv-extract/internal/config"
	"cv-extract/internal/cv"
	"cv-extract/internal/storage"
)

// Re-runs entity extraction over stored CV texts. Useful after rule-table
// updates: the parsed text is already in the database, so no file access or
// OCR is needed.
func main() {
	var dryRun bool
	var limit int
	flag.BoolVar(&dryRun, "dry-run", true, "If true, do not persist updates; just print changes")
	flag.IntVar(&limit, "limit", 200, "Max number of CV files to process in one run")
	flag.Parse()

	cfg := config.LoadConfig()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	log.Printf("Connecting to DB...")
	db, err := storage.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer db.Close()

	// Extraction runs from stored text only, so no capabilities are needed.
	extractor := cv.NewExtractor(cv.Capabilities{}, cfg.OCRLanguage, "")

	ctx := context.Background()

	files, err := db.ListCVFiles(ctx, limit)
	if err != nil {
		log.Fatalf("query failed: %v", err)
	}
	log.Printf("Found %d stored CV files (limit %d)", len(files), limit)

	updated := 0
	for _, f := range files {
		profile := extractor.ExtractFromText(f.ParsedText)
		if profile.IsEmpty() {
			log.Printf("cv %d (%s): nothing extracted, skipping", f.ID, f.Filename)
			continue
		}

		if dryRun {
			log.Printf("cv %d (%s): would merge profile (name=%q, %d jobs, %d qualifications, %d licenses)",
				f.ID, f.Filename, profile.PersonalInfo.Name,
				len(profile.EmploymentHistory), len(profile.Qualifications),
				len(profile.AviationData.Licenses))
			continue
		}

		if err := db.MergeProfile(ctx, f.CandidateID, profile); err != nil {
			log.Printf("cv %d (%s): merge failed: %v", f.ID, f.Filename, err)
			continue
		}
		updated++
	}

	if dryRun {
		log.Println("Dry run complete; re-run with -dry-run=false to persist")
		os.Exit(0)
	}
	log.Printf("Updated %d candidate profiles", updated)
}
