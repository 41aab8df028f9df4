package api

import (
	"context"

	"cv-extract/internal/cv"
	"cv-extract/internal/storage"
)

// Store is the subset of the storage layer the handlers use.
type Store interface {
	UpsertCandidateByEmail(ctx context.Context, email string) (int, error)
	SaveCVFile(ctx context.Context, candidateID int, filename, filePath, fileType, parsedText string, fileSize int64) (int, error)
	MergeProfile(ctx context.Context, candidateID int, profile *cv.Profile) error
}

var _ Store = (*storage.DB)(nil)

type API struct {
	db         Store
	extractor  *cv.Extractor
	uploadsDir string
}

func NewAPI(db Store, extractor *cv.Extractor, uploadsDir string) *API {
	return &API{
		db:         db,
		extractor:  extractor,
		uploadsDir: uploadsDir,
	}
}
