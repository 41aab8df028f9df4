package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"cv-extract/internal/cv"
)

// memStore emulates the storage contract in memory: one candidate row per
// distinct email, a fresh row per anonymous upsert.
type memStore struct {
	nextID  int
	byEmail map[string]int
	upserts []string
}

func newMemStore() *memStore {
	return &memStore{byEmail: map[string]int{}}
}

func (s *memStore) UpsertCandidateByEmail(_ context.Context, email string) (int, error) {
	s.upserts = append(s.upserts, email)
	if email != "" {
		if id, ok := s.byEmail[email]; ok {
			return id, nil
		}
	}
	s.nextID++
	if email != "" {
		s.byEmail[email] = s.nextID
	}
	return s.nextID, nil
}

func (s *memStore) SaveCVFile(_ context.Context, candidateID int, _, _, _, _ string, _ int64) (int, error) {
	return candidateID, nil
}

func (s *memStore) MergeProfile(_ context.Context, _ int, _ *cv.Profile) error {
	return nil
}

func uploadTxt(t *testing.T, router http.Handler, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	io.WriteString(part, content)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/cv/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCVUploadWithoutEmailCreatesFreshCandidates(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	extractor := cv.NewExtractor(cv.Capabilities{}, "", t.TempDir())
	router := NewRouter(NewAPI(store, extractor, t.TempDir()))

	const noContactCV = `Jane Doe

Senior accountant with 9 years of experience in finance and banking.
Responsible for audits, reporting and compliance reviews.

EDUCATION

Bachelor of Commerce, State University, 2010
`

	ids := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		rec := uploadTxt(t, router, "note.txt", noContactCV)
		if rec.Code != http.StatusOK {
			t.Fatalf("upload %d: status = %d, body %s", i+1, rec.Code, rec.Body.String())
		}
		var resp struct {
			CandidateID int `json:"candidate_id"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("upload %d: bad response body: %v", i+1, err)
		}
		ids = append(ids, resp.CandidateID)
	}

	if ids[0] == ids[1] {
		t.Errorf("both anonymous uploads landed on candidate %d, want distinct rows", ids[0])
	}
	for i, email := range store.upserts {
		if email != "" {
			t.Errorf("upsert %d used email %q, want empty for a CV without contact details", i+1, email)
		}
	}
}

func TestCVUploadWithEmailReusesCandidate(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	extractor := cv.NewExtractor(cv.Capabilities{}, "", t.TempDir())
	router := NewRouter(NewAPI(store, extractor, t.TempDir()))

	const contactCV = `John Smith
Email: john.smith@example.com

Senior accountant with 9 years of experience in finance and banking.

EDUCATION

Bachelor of Commerce, State University, 2010
`

	ids := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		rec := uploadTxt(t, router, "cv.txt", contactCV)
		if rec.Code != http.StatusOK {
			t.Fatalf("upload %d: status = %d, body %s", i+1, rec.Code, rec.Body.String())
		}
		var resp struct {
			CandidateID int `json:"candidate_id"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("upload %d: bad response body: %v", i+1, err)
		}
		ids = append(ids, resp.CandidateID)
	}

	if ids[0] != ids[1] {
		t.Errorf("uploads with the same email got candidates %d and %d, want one row", ids[0], ids[1])
	}
}
