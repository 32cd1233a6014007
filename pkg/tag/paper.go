package tag

import (
	"strings"

	"github.com/matzehuels/tagsheet/pkg/errors"
)

// PaperSize names a sheet format.
type PaperSize string

// Supported paper sizes.
const (
	PaperA4 PaperSize = "a4"
	PaperA3 PaperSize = "a3"
)

// DefaultPaper is used when no paper is configured.
const DefaultPaper = PaperA4

// Paper holds the physical dimensions of a sheet format.
type Paper struct {
	Name     PaperSize `json:"name"`
	Label    string    `json:"label"`
	WidthMm  float64   `json:"width_mm"`
	HeightMm float64   `json:"height_mm"`
}

var papers = [...]Paper{
	{Name: PaperA4, Label: "A4", WidthMm: 210, HeightMm: 297},
	{Name: PaperA3, Label: "A3", WidthMm: 297, HeightMm: 420},
}

// Papers returns a copy of the paper table.
func Papers() []Paper {
	out := make([]Paper, len(papers))
	copy(out, papers[:])
	return out
}

// PaperByName resolves a paper size name, ignoring case and surrounding space.
func PaperByName(name string) (Paper, error) {
	key := PaperSize(strings.ToLower(strings.TrimSpace(name)))
	for _, p := range papers {
		if p.Name == key {
			return p, nil
		}
	}
	return Paper{}, errors.New(errors.ErrCodeInvalidPaper, "invalid paper size: %q (must be 'a4' or 'a3')", name)
}
