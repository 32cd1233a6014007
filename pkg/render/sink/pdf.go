package sink

import (
	"math"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/matzehuels/tagsheet/pkg/errors"
	"github.com/matzehuels/tagsheet/pkg/layout"
	"github.com/matzehuels/tagsheet/pkg/render"
	"github.com/matzehuels/tagsheet/pkg/tag"
)

// pdfRupee replaces the rupee sign, which the built-in PDF fonts lack.
const pdfRupee = "Rs."

// gridPerMm is the maroto grid resolution: one column unit is 0.1 mm.
const gridPerMm = 10

var (
	outlineColor = &props.Color{Red: 160, Green: 160, Blue: 160}
	struckColor  = &props.Color{Red: 120, Green: 120, Blue: 120}
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	face     render.FaceOptions
	outlines bool
}

// WithPDFCurrency sets the currency symbol printed before prices.
func WithPDFCurrency(c string) PDFOption { return func(r *pdfRenderer) { r.face.Currency = c } }

// WithoutPDFOutlines omits the cut lines around each tag.
func WithoutPDFOutlines() PDFOption { return func(r *pdfRenderer) { r.outlines = false } }

// RenderPDF renders every page of s into one PDF sized to the paper, with
// Code128 barcodes and QR codes. A sheet without pages is rejected.
func RenderPDF(s *layout.Sheet, content []tag.Content, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{outlines: true}
	for _, opt := range opts {
		opt(&r)
	}
	if r.face.Currency == "" || r.face.Currency == render.DefaultCurrency {
		r.face.Currency = pdfRupee
	}
	if len(s.Pages) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nothing to render: sheet has no pages")
	}

	grid := gridUnits(s.Paper.WidthMm)
	cfg := config.NewBuilder().
		WithDimensions(s.Paper.WidthMm, s.Paper.HeightMm).
		WithLeftMargin(0).
		WithTopMargin(0).
		WithRightMargin(0).
		WithBottomMargin(0).
		WithMaxGridSize(grid).
		Build()

	m := maroto.New(cfg)
	for _, p := range s.Pages {
		m.AddPages(r.page(s, p, content, grid))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "generate pdf")
	}
	return doc.GetBytes(), nil
}

func (r pdfRenderer) page(s *layout.Sheet, p layout.Page, content []tag.Content, grid int) core.Page {
	tagUnits := gridUnits(s.Size.WidthMm)
	pg := page.New()

	for start := 0; start < len(p.Placements); start += s.Capacity.Columns {
		end := min(start+s.Capacity.Columns, len(p.Placements))
		cols := make([]core.Col, 0, end-start+1)
		for _, pl := range p.Placements[start:end] {
			cols = append(cols, r.tagCol(pl, s.Size, content, tagUnits))
		}
		if rest := grid - tagUnits*(end-start); rest > 0 {
			cols = append(cols, col.New(rest))
		}
		pg.Add(row.New(s.Size.HeightMm).Add(cols...))
	}
	return pg
}

func (r pdfRenderer) tagCol(pl layout.Placement, size tag.TagSize, content []tag.Content, units int) core.Col {
	c := col.New(units)
	if r.outlines {
		c = c.WithStyle(&props.Cell{BorderType: border.Full, BorderColor: outlineColor, BorderThickness: 0.1})
	}

	face := render.BuildFace(pl.Product, content, size, r.face)
	w, h := pl.Slot.W, pl.Slot.H
	for _, el := range render.Arrange(face, w, h) {
		switch el.Kind {
		case render.ElementBarcode:
			c.Add(code.NewBar(el.Text, props.Barcode{
				Left:       el.X,
				Top:        el.Y,
				Percent:    percent(el.W, w),
				Proportion: props.Proportion{Width: el.W, Height: el.H},
			}))
		case render.ElementQRCode:
			c.Add(code.NewQr(el.Text, props.Rect{
				Left:    el.X,
				Top:     el.Y,
				Percent: percent(el.W, min(w, h)),
			}))
		case render.ElementPrice:
			if el.Struck != "" {
				c.Add(text.New(el.Struck, props.Text{
					Top: el.Y, Left: el.X, Size: el.FontSize * 0.8,
					Style: fontstyle.Italic, Align: align.Left, Color: struckColor,
				}))
				c.Add(text.New(el.Text, props.Text{
					Top: el.Y, Right: el.X, Size: el.FontSize,
					Style: fontstyle.Bold, Align: align.Right,
				}))
				continue
			}
			c.Add(text.New(el.Text, props.Text{Top: el.Y, Size: el.FontSize, Style: fontstyle.Bold, Align: align.Center}))
		default:
			style := fontstyle.Normal
			if el.Bold {
				style = fontstyle.Bold
			}
			c.Add(text.New(el.Text, props.Text{Top: el.Y, Size: el.FontSize, Style: style, Align: align.Center}))
		}
	}
	return c
}

func gridUnits(mm float64) int {
	return int(math.Round(mm * gridPerMm))
}

func percent(part, whole float64) float64 {
	if whole <= 0 {
		return 100
	}
	return min(100, part/whole*100)
}
