package utils

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// DocumentExtractor extracts text from uploaded resume documents
type DocumentExtractor struct {
	maxBytes int64
}

// NewDocumentExtractor creates an extractor that rejects files larger than
// maxBytes
func NewDocumentExtractor(maxBytes int64) *DocumentExtractor {
	return &DocumentExtractor{maxBytes: maxBytes}
}

// allowedExtensions is the upload allow-list. Anything else is rejected
// before reading the content.
var allowedExtensions = map[string]string{
	".txt":  "text/plain",
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ExtractText extracts text from a file based on its extension. The file is
// rejected when its extension is not allow-listed or it exceeds the size cap.
func (e *DocumentExtractor) ExtractText(file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("unsupported file type %q: allowed types are txt, pdf, doc, docx", ext)
	}
	if e.maxBytes > 0 && header.Size > e.maxBytes {
		return "", fmt.Errorf("file too large: %d bytes exceeds the %d byte limit", header.Size, e.maxBytes)
	}

	buf := new(bytes.Buffer)
	limited := io.LimitReader(file, e.maxBytes+1)
	n, err := io.Copy(buf, limited)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	if e.maxBytes > 0 && n > e.maxBytes {
		return "", fmt.Errorf("file too large: content exceeds the %d byte limit", e.maxBytes)
	}
	content := buf.Bytes()

	switch ext {
	case ".txt":
		return string(content), nil
	case ".pdf":
		return e.extractPDFBasic(content)
	case ".doc", ".docx":
		return e.extractDocxBasic(content)
	default:
		return string(content), nil
	}
}

// extractPDFBasic pulls readable text out of a PDF without a full parser.
// Scanned or image-only PDFs yield a hint to paste text directly.
func (e *DocumentExtractor) extractPDFBasic(content []byte) (string, error) {
	text := string(content)

	if strings.Contains(text, "%PDF") {
		var cleanText strings.Builder
		for _, r := range text {
			if r >= 32 && r <= 126 || r == '\n' || r == '\r' || r == '\t' {
				cleanText.WriteRune(r)
			}
		}

		extracted := cleanText.String()
		if len(extracted) < 100 {
			return "[PDF document - please paste resume text directly for best results]", nil
		}
		return extracted, nil
	}

	return string(content), nil
}

// extractDocxBasic handles Word documents. DOCX is a ZIP archive, so without
// an XML pass the user is asked to paste text; legacy .doc gets an ASCII
// sweep.
func (e *DocumentExtractor) extractDocxBasic(content []byte) (string, error) {
	if len(content) > 4 && content[0] == 'P' && content[1] == 'K' {
		return "[DOCX document - please paste resume text directly for best results]", nil
	}

	var cleanText strings.Builder
	for _, r := range string(content) {
		if r >= 32 && r <= 126 || r == '\n' || r == '\r' || r == '\t' {
			cleanText.WriteRune(r)
		}
	}
	return cleanText.String(), nil
}

// IsSupportedFormat checks if the file format is supported
func (e *DocumentExtractor) IsSupportedFormat(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := allowedExtensions[ext]
	return ok
}
