package report

import (
	"encoding/json"
	"io"

	"github.com/neujobscan/backend/models"
)

// JSONRenderer writes the full scan document as indented JSON
type JSONRenderer struct{}

func (r *JSONRenderer) ContentType() string {
	return "application/json"
}

func (r *JSONRenderer) FileExtension() string {
	return "json"
}

func (r *JSONRenderer) Render(w io.Writer, scan *models.ATSResponse) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(scan)
}
