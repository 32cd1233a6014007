package layout

import (
	"github.com/matzehuels/tagsheet/pkg/errors"
	"github.com/matzehuels/tagsheet/pkg/tag"
)

// Instance binds one product to one printed tag.
type Instance struct {
	Product *tag.Product // Source product (points into the caller's slice)
	Copy    int          // Zero-based copy number for products printed more than once
}

// MaxTags bounds the number of tag instances one sheet may hold.
const MaxTags = 100_000

// CountTags sums Product.TagCount over products. It fails with
// ErrCodeInvalidInput as soon as the total would exceed MaxTags.
func CountTags(products []tag.Product) (int, error) {
	n := 0
	for i := range products {
		c := products[i].TagCount()
		if c > MaxTags-n {
			return 0, errors.New(errors.ErrCodeInvalidInput,
				"selection expands to more than %d tags", MaxTags)
		}
		n += c
	}
	return n, nil
}

// ExpandSelection returns the tag instances for products, in input order.
//
// Each product yields Product.TagCount instances. Instances reference the
// elements of products rather than copying them, so the slice must not be
// modified while the result is in use.
func ExpandSelection(products []tag.Product) ([]Instance, error) {
	n, err := CountTags(products)
	if err != nil {
		return nil, err
	}
	out := make([]Instance, 0, n)
	for i := range products {
		for c := range products[i].TagCount() {
			out = append(out, Instance{Product: &products[i], Copy: c})
		}
	}
	return out, nil
}

// Slot is the grid cell a tag occupies on its page.
// Coordinates are millimetres from the top-left corner of the sheet.
type Slot struct {
	Index  int     `json:"index"`
	Column int     `json:"column"`
	Row    int     `json:"row"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
}

// Placement is a tag instance at its slot.
type Placement struct {
	Instance
	Slot Slot
}

// Page is one sheet worth of placements.
type Page struct {
	Number     int // One-based
	Placements []Placement
}

// Sheet is the complete layout of a selection.
type Sheet struct {
	Paper    tag.Paper
	Size     tag.TagSize
	Capacity Capacity
	Pages    []Page
}

// TagCount returns the number of placed tags across all pages.
func (s *Sheet) TagCount() int {
	n := 0
	for _, p := range s.Pages {
		n += len(p.Placements)
	}
	return n
}

// Plan lays out products with the given tag size on the given paper.
//
// If the tag does not fit on the paper, Plan returns an ErrCodeZeroCapacity
// error without paginating. An empty product list is not an error and yields
// a sheet with zero pages.
func Plan(products []tag.Product, size tag.TagSize, paper tag.Paper) (*Sheet, error) {
	capacity := ComputeCapacity(PaperDimensions(paper), TagDimensions(size))
	if capacity.Zero() {
		return nil, errors.New(errors.ErrCodeZeroCapacity,
			"tag %s does not fit on %s paper (%g × %g mm)", size.Label, paper.Label, paper.WidthMm, paper.HeightMm)
	}

	instances, err := ExpandSelection(products)
	if err != nil {
		return nil, err
	}
	chunks, err := Paginate(instances, capacity.PerPage())
	if err != nil {
		return nil, err
	}

	sheet := &Sheet{
		Paper:    paper,
		Size:     size,
		Capacity: capacity,
		Pages:    make([]Page, len(chunks)),
	}
	for i, chunk := range chunks {
		page := Page{Number: i + 1, Placements: make([]Placement, len(chunk))}
		for j, inst := range chunk {
			page.Placements[j] = Placement{Instance: inst, Slot: SlotAt(j, capacity, size)}
		}
		sheet.Pages[i] = page
	}
	return sheet, nil
}

// SlotAt returns the grid cell of the index-th tag on a page, filling rows
// left to right from the top.
func SlotAt(index int, c Capacity, size tag.TagSize) Slot {
	col, row := 0, 0
	if c.Columns > 0 {
		col, row = index%c.Columns, index/c.Columns
	}
	return Slot{
		Index:  index,
		Column: col,
		Row:    row,
		X:      float64(col) * size.WidthMm,
		Y:      float64(row) * size.HeightMm,
		W:      size.WidthMm,
		H:      size.HeightMm,
	}
}
