package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var supportedExtensions = map[string]bool{
	".pdf": true, ".docx": true, ".txt": true, ".text": true, ".md": true, ".rtf": true,
	".png": true, ".jpg": true, ".jpeg": true, ".tiff": true, ".tif": true, ".bmp": true, ".gif": true,
}

// CVUploadHandler handles CV file uploads and extraction
// @Summary Upload and process CV
// @Description Upload a CV file (PDF/DOCX/image/text), extract a structured profile and merge it into the candidate record
// @Tags cv
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CV file"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /cv/upload [post]
func (a *API) CVUploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	startTime := time.Now()

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "file too large or invalid (max 10MB)", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !supportedExtensions[ext] {
		http.Error(w, "invalid file type (supported: PDF, DOCX, TXT, images)", http.StatusBadRequest)
		return
	}

	savedPath, err := a.saveUpload(file, ext)
	if err != nil {
		log.Printf("Failed to store upload: %v", err)
		http.Error(w, "failed to store upload", http.StatusInternalServerError)
		return
	}

	stored, err := os.Open(savedPath)
	if err != nil {
		http.Error(w, "failed to read stored upload", http.StatusInternalServerError)
		return
	}
	text := a.extractor.ExtractText(header.Filename, stored)
	stored.Close()

	profile := a.extractor.ExtractFromText(text)

	candidateID, err := a.db.UpsertCandidateByEmail(r.Context(), profile.PersonalInfo.Email)
	if err != nil {
		log.Printf("Failed to upsert candidate: %v", err)
		http.Error(w, "failed to save candidate", http.StatusInternalServerError)
		return
	}

	cvID, err := a.db.SaveCVFile(r.Context(), candidateID, header.Filename,
		savedPath, ext, text, header.Size)
	if err != nil {
		log.Printf("Failed to save CV: %v", err)
		http.Error(w, "failed to save CV", http.StatusInternalServerError)
		return
	}

	log.Printf("CV saved to database with ID: %d (%d bytes text)", cvID, len(text))

	if err := a.db.MergeProfile(r.Context(), candidateID, profile); err != nil {
		log.Printf("Failed to merge profile: %v", err)
		http.Error(w, "failed to update profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if profile.IsEmpty() {
		// The file is stored either way; the caller just gets nothing merged.
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":       "partial_success",
			"message":      "CV uploaded but could not extract all information. Please update your profile manually.",
			"cv_file_id":   cvID,
			"candidate_id": candidateID,
		})
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":           "success",
		"message":          "CV processed successfully and profile updated",
		"cv_file_id":       cvID,
		"candidate_id":     candidateID,
		"extracted_fields": profile,
		"processing_ms":    time.Since(startTime).Milliseconds(),
	})
}

// saveUpload persists the upload under a uuid name in the uploads directory.
func (a *API) saveUpload(file io.Reader, ext string) (string, error) {
	if err := os.MkdirAll(a.uploadsDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(a.uploadsDir, uuid.New().String()+ext)
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
