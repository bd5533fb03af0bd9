// Package report renders scan results into downloadable formats.
package report

import (
	"fmt"
	"io"

	"github.com/neujobscan/backend/models"
)

// Renderer writes one scan in a specific export format
type Renderer interface {
	// ContentType is the MIME type of the rendered output
	ContentType() string
	// FileExtension is the suggested filename extension, without the dot
	FileExtension() string
	// Render writes the scan to w
	Render(w io.Writer, scan *models.ATSResponse) error
}

// ForFormat returns the renderer for a format name, defaulting to JSON
func ForFormat(format string) (Renderer, error) {
	switch format {
	case "csv":
		return &CSVRenderer{}, nil
	case "json", "":
		return &JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}
