package utils

import (
	"bytes"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memFile adapts a byte slice to multipart.File
type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func newMemFile(content string) (multipart.File, *multipart.FileHeader) {
	return memFile{bytes.NewReader([]byte(content))}, &multipart.FileHeader{
		Size: int64(len(content)),
	}
}

func TestExtractText_Matrix(t *testing.T) {
	const sizeCap = int64(64)

	tests := []struct {
		name     string
		filename string
		content  string
		want     string
		wantErr  string
	}{
		{
			name:     "plain text passes through",
			filename: "resume.txt",
			content:  "Jane Smith\nBackend engineer",
			want:     "Jane Smith\nBackend engineer",
		},
		{
			name:     "extension check is case insensitive",
			filename: "resume.TXT",
			content:  "Jane Smith",
			want:     "Jane Smith",
		},
		{
			name:     "unsupported extension rejected",
			filename: "resume.exe",
			content:  "Jane Smith",
			wantErr:  "unsupported file type",
		},
		{
			name:     "no extension rejected",
			filename: "resume",
			content:  "Jane Smith",
			wantErr:  "unsupported file type",
		},
		{
			name:     "oversized file rejected",
			filename: "resume.txt",
			content:  strings.Repeat("x", int(sizeCap)+1),
			wantErr:  "file too large",
		},
		{
			name:     "file at the cap accepted",
			filename: "resume.txt",
			content:  strings.Repeat("x", int(sizeCap)),
			want:     strings.Repeat("x", int(sizeCap)),
		},
		{
			name:     "image-only pdf yields paste hint",
			filename: "resume.pdf",
			content:  "%PDF-1.4\x01\x02\x03",
			want:     "[PDF document - please paste resume text directly for best results]",
		},
		{
			name:     "docx zip yields paste hint",
			filename: "resume.docx",
			content:  "PK\x03\x04 compressed body",
			want:     "[DOCX document - please paste resume text directly for best results]",
		},
	}

	extractor := NewDocumentExtractor(sizeCap)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, header := newMemFile(tt.content)
			header.Filename = tt.filename

			got, err := extractor.ExtractText(file, header)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractText_ContentLargerThanDeclaredSize(t *testing.T) {
	extractor := NewDocumentExtractor(16)

	// Declared size is within the cap but the actual content is not
	file := memFile{bytes.NewReader([]byte(strings.Repeat("x", 32)))}
	header := &multipart.FileHeader{Filename: "resume.txt", Size: 8}

	_, err := extractor.ExtractText(file, header)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file too large")
}

func TestIsSupportedFormat(t *testing.T) {
	extractor := NewDocumentExtractor(1 << 20)

	assert.True(t, extractor.IsSupportedFormat("resume.txt"))
	assert.True(t, extractor.IsSupportedFormat("resume.pdf"))
	assert.True(t, extractor.IsSupportedFormat("resume.doc"))
	assert.True(t, extractor.IsSupportedFormat("Resume.DOCX"))
	assert.False(t, extractor.IsSupportedFormat("resume.exe"))
	assert.False(t, extractor.IsSupportedFormat("resume"))
}
