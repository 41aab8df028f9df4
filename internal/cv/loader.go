package cv

import (
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Capabilities describes the optional external tooling the pipeline may
// use. It is passed in explicitly (rather than probed at load time) so
// tests can exercise both the OCR and no-OCR branches deterministically.
type Capabilities struct {
	OCR        bool // tesseract is usable through gosseract
	Rasterizer bool // pdftoppm is available for image-based PDFs
}

// DetectCapabilities probes PATH for the external tools.
func DetectCapabilities() Capabilities {
	_, tessErr := exec.LookPath("tesseract")
	_, popplerErr := exec.LookPath("pdftoppm")
	return Capabilities{OCR: tessErr == nil, Rasterizer: popplerErr == nil}
}

var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".tiff": true,
	".tif": true, ".bmp": true, ".gif": true,
}

var textExtensions = map[string]bool{
	".txt": true, ".text": true, ".md": true, ".rtf": true,
}

const (
	// Below this many non-whitespace characters a PDF is assumed to be
	// image-based and escalated to OCR.
	minDirectPDFChars = 100
	// Below this the aggregator skips entity extraction entirely.
	minMeaningfulChars = 50
	// Rasterization resolution for the OCR escalation path.
	ocrDPI = 300
)

// loadAndExtractText persists the upload to a transient uuid-named file for
// the duration of extraction and runs the extension-selected extractor,
// escalating PDFs to OCR when direct extraction yields too little. The
// transient file is removed on every exit path. Unrecognized extensions
// yield empty text; the aggregator turns that into an empty profile.
func (e *Extractor) loadAndExtractText(name string, r io.Reader) string {
	ext := strings.ToLower(filepath.Ext(name))

	tmpPath := filepath.Join(e.tmpDir, uuid.New().String()+ext)
	f, err := os.Create(tmpPath)
	if err != nil {
		log.Printf("cv loader: create transient file: %v", err)
		return ""
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(tmpPath)
		log.Printf("cv loader: save upload %s: %v", name, err)
		return ""
	}
	f.Close()
	defer os.Remove(tmpPath)

	switch {
	case ext == ".pdf":
		text := extractPDFText(tmpPath)
		if nonWhitespaceLen(text) < minDirectPDFChars && e.caps.OCR {
			log.Println("pdf appears image-based or has little text, attempting ocr")
			if ocrText := e.ocrPDFPages(tmpPath); len(ocrText) > len(text) {
				log.Printf("ocr extracted %d characters vs %d from direct extraction",
					len(ocrText), len(text))
				text = ocrText
			}
		}
		return text

	case ext == ".docx":
		return extractDOCXText(tmpPath)

	case imageExtensions[ext]:
		if !e.caps.OCR {
			log.Println("ocr unavailable, cannot extract text from image files")
			return ""
		}
		return extractImageText(tmpPath, e.ocrLanguage, true)

	case textExtensions[ext]:
		return extractPlainText(tmpPath)

	default:
		log.Printf("unsupported file format: %s", ext)
		return ""
	}
}

// ocrPDFPages rasterizes every page at 300 DPI via pdftoppm and OCRs each
// page image, concatenating the page texts. Page images are deleted
// unconditionally once recognized.
func (e *Extractor) ocrPDFPages(pdfPath string) string {
	if !e.caps.Rasterizer {
		log.Println("pdftoppm unavailable, cannot ocr image-based pdf")
		return ""
	}

	prefix := pdfPath + "_page"
	cmd := exec.Command("pdftoppm", "-r", strconv.Itoa(ocrDPI), "-png", pdfPath, prefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		log.Printf("pdftoppm failed: %v (%s)", err, strings.TrimSpace(string(out)))
		return ""
	}

	pages, err := filepath.Glob(prefix + "-*.png")
	if err != nil || len(pages) == 0 {
		return ""
	}
	sort.Strings(pages)
	defer func() {
		for _, p := range pages {
			os.Remove(p)
		}
	}()

	texts := make([]string, 0, len(pages))
	for _, page := range pages {
		texts = append(texts, extractImageText(page, e.ocrLanguage, true))
	}
	return strings.Join(texts, "\n\n")
}

// nonWhitespaceLen counts non-whitespace runes, the measure behind both the
// OCR-escalation and meaningful-content thresholds.
func nonWhitespaceLen(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
