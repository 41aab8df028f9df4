package cv

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"
	"strings"

	"code.sajari.com/docconv"
	"github.com/otiai10/gosseract/v2"
)

// Format-specific text extractors. Each one is path → text and never lets an
// error escape: underlying tool failures are logged and degrade to whatever
// partial text (possibly none) was obtained.

// extractPDFText extracts the text layer of a PDF. Document metadata
// (title/author/subject) is prepended when present because it often carries
// the applicant's name, which helps the personal-info pass downstream.
func extractPDFText(path string) string {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("pdf extraction: open %s: %v", path, err)
		return ""
	}
	defer f.Close()

	body, meta, err := docconv.ConvertPDF(f)
	if err != nil {
		log.Printf("pdf extraction failed: %v", err)
		return ""
	}

	var metaLines []string
	for _, key := range []string{"Title", "Author", "Subject"} {
		if v := strings.TrimSpace(meta[key]); v != "" {
			metaLines = append(metaLines, key+": "+v)
		}
	}
	if len(metaLines) == 0 {
		return body
	}
	return strings.Join(metaLines, "\n") + "\n\n" + body
}

// extractDOCXText extracts paragraph text from a DOCX in document order.
func extractDOCXText(path string) string {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("docx extraction: open %s: %v", path, err)
		return ""
	}
	defer f.Close()

	body, _, err := docconv.ConvertDocx(f)
	if err != nil {
		log.Printf("docx extraction failed: %v", err)
		return ""
	}
	return body
}

// extractImageText runs OCR over an image file. When preprocess is set the
// image is converted to grayscale first, which measurably improves
// recognition on photographed documents.
func extractImageText(path, lang string, preprocess bool) string {
	client := gosseract.NewClient()
	defer client.Close()

	if lang == "" {
		lang = "eng"
	}
	if err := client.SetLanguage(lang); err != nil {
		log.Printf("ocr: set language %q: %v", lang, err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_AUTO_OSD); err != nil {
		log.Printf("ocr: set page segmentation mode: %v", err)
	}

	imageSet := false
	if preprocess {
		if data, ok := grayscalePNG(path); ok {
			if err := client.SetImageFromBytes(data); err == nil {
				imageSet = true
			}
		}
	}
	if !imageSet {
		if err := client.SetImage(path); err != nil {
			log.Printf("ocr: set image %s: %v", path, err)
			return ""
		}
	}

	text, err := client.Text()
	if err != nil {
		log.Printf("ocr failed on %s: %v", path, err)
		return ""
	}
	log.Printf("ocr extracted %d characters from image", len(text))
	return text
}

// grayscalePNG re-encodes the image as grayscale PNG. Formats the stdlib
// cannot decode (tiff, bmp) report !ok and the caller OCRs the original.
func grayscalePNG(path string) ([]byte, bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, false
	}

	gray := image.NewGray(src.Bounds())
	draw.Draw(gray, gray.Bounds(), src, src.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}

// extractPlainText reads a text-like file, dropping invalid UTF-8 bytes.
func extractPlainText(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		log.Printf("text extraction: read %s: %v", path, err)
		return ""
	}
	return strings.ToValidUTF8(string(content), "")
}
