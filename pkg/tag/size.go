package tag

import (
	"fmt"

	"github.com/matzehuels/tagsheet/pkg/errors"
)

// MmPerInch converts inch catalogue dimensions to millimetres.
const MmPerInch = 25.4

// TagSize is one physical label size from the catalogue.
type TagSize struct {
	ID       int     `json:"id"`
	Label    string  `json:"label"`
	WidthIn  float64 `json:"width_in"`
	HeightIn float64 `json:"height_in"`
	WidthMm  float64 `json:"width_mm"`
	HeightMm float64 `json:"height_mm"`
}

// String returns the label together with the metric size.
func (s TagSize) String() string {
	return fmt.Sprintf("%s (%.2f × %.2f mm)", s.Label, s.WidthMm, s.HeightMm)
}

// Small reports whether faces on this size use compact typography.
func (s TagSize) Small() bool {
	return s.WidthMm < 50
}

// catalogue is ordered from small to large; suggestion buckets index into it.
var catalogue = [...]TagSize{
	{ID: 15, Label: `1" × 1"`, WidthIn: 1, HeightIn: 1, WidthMm: 25.4, HeightMm: 25.4},
	{ID: 12, Label: `1" × 2"`, WidthIn: 1, HeightIn: 2, WidthMm: 25.4, HeightMm: 50.8},
	{ID: 16, Label: `1.3" × 1.3"`, WidthIn: 1.3, HeightIn: 1.3, WidthMm: 33.02, HeightMm: 33.02},
	{ID: 17, Label: `1.3" × 2"`, WidthIn: 1.3, HeightIn: 2, WidthMm: 33.02, HeightMm: 50.8},
	{ID: 13, Label: `1.375" × 2"`, WidthIn: 1.375, HeightIn: 2, WidthMm: 34.93, HeightMm: 50.8},
	{ID: 1, Label: "Size 1", WidthIn: 1.375, HeightIn: 2.75, WidthMm: 34.93, HeightMm: 69.85},
	{ID: 2, Label: "Size 2", WidthIn: 1.625, HeightIn: 3.25, WidthMm: 41.28, HeightMm: 82.55},
	{ID: 3, Label: "Size 3", WidthIn: 1.875, HeightIn: 3.75, WidthMm: 47.63, HeightMm: 95.25},
	{ID: 14, Label: `2" × 2"`, WidthIn: 2, HeightIn: 2, WidthMm: 50.8, HeightMm: 50.8},
	{ID: 4, Label: "Size 4", WidthIn: 2.125, HeightIn: 4.25, WidthMm: 53.98, HeightMm: 107.95},
	{ID: 5, Label: "Size 5", WidthIn: 2.375, HeightIn: 4.75, WidthMm: 60.33, HeightMm: 120.65},
	{ID: 6, Label: "Size 6", WidthIn: 2.625, HeightIn: 5.25, WidthMm: 66.68, HeightMm: 133.35},
	{ID: 7, Label: "Size 7", WidthIn: 2.875, HeightIn: 5.75, WidthMm: 73.03, HeightMm: 146.05},
	{ID: 8, Label: "Size 8", WidthIn: 3.125, HeightIn: 6.25, WidthMm: 79.38, HeightMm: 158.75},
	{ID: 9, Label: "Size 9", WidthIn: 3.625, HeightIn: 7.25, WidthMm: 92.08, HeightMm: 184.15},
	{ID: 10, Label: "Size 10", WidthIn: 4.125, HeightIn: 8.25, WidthMm: 104.78, HeightMm: 209.55},
	{ID: 11, Label: "Size 11", WidthIn: 4.625, HeightIn: 9.25, WidthMm: 117.48, HeightMm: 234.95},
}

// Sizes returns a copy of the tag-size catalogue in catalogue order.
func Sizes() []TagSize {
	out := make([]TagSize, len(catalogue))
	copy(out, catalogue[:])
	return out
}

// SizeByID looks up a catalogue entry by its ID.
func SizeByID(id int) (TagSize, error) {
	for _, s := range catalogue {
		if s.ID == id {
			return s, nil
		}
	}
	return TagSize{}, errors.New(errors.ErrCodeUnknownSize, "unknown tag size: %d", id)
}

// DefaultSizeID is the size preselected when nothing else is configured.
const DefaultSizeID = 17
