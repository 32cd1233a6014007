package layout

import (
	"fmt"
	"math"

	"github.com/matzehuels/tagsheet/pkg/tag"
)

// Dimensions is a width and height in millimetres.
type Dimensions struct {
	WidthMm  float64 `json:"width_mm"`
	HeightMm float64 `json:"height_mm"`
}

// PaperDimensions returns the dimensions of a paper size.
func PaperDimensions(p tag.Paper) Dimensions {
	return Dimensions{WidthMm: p.WidthMm, HeightMm: p.HeightMm}
}

// TagDimensions returns the dimensions of a tag size.
func TagDimensions(s tag.TagSize) Dimensions {
	return Dimensions{WidthMm: s.WidthMm, HeightMm: s.HeightMm}
}

// Capacity is the grid of tags that fits on one page.
type Capacity struct {
	Columns int `json:"columns"`
	Rows    int `json:"rows"`
}

// PerPage returns the number of tags one page holds.
func (c Capacity) PerPage() int {
	return c.Columns * c.Rows
}

// Zero reports whether not even one tag fits.
func (c Capacity) Zero() bool {
	return c.PerPage() == 0
}

// String renders the capacity as "6×5 (30/page)".
func (c Capacity) String() string {
	return fmt.Sprintf("%d×%d (%d/page)", c.Columns, c.Rows, c.PerPage())
}

// ComputeCapacity returns how many tags of size t fit on paper p.
//
// Columns is floor(p.Width / t.Width) and Rows is floor(p.Height / t.Height).
// Sheet margins are ignored. It panics if any dimension is not strictly
// positive.
func ComputeCapacity(p, t Dimensions) Capacity {
	mustPositive("paper", p)
	mustPositive("tag", t)
	return Capacity{
		Columns: fit(p.WidthMm, t.WidthMm),
		Rows:    fit(p.HeightMm, t.HeightMm),
	}
}

func fit(outer, inner float64) int {
	return int(math.Floor(outer / inner))
}

func mustPositive(what string, d Dimensions) {
	if !(d.WidthMm > 0) || !(d.HeightMm > 0) {
		panic(fmt.Sprintf("layout: malformed %s dimensions %.2f×%.2f mm", what, d.WidthMm, d.HeightMm))
	}
}
