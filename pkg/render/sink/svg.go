package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/tagsheet/pkg/layout"
	"github.com/matzehuels/tagsheet/pkg/render"
	"github.com/matzehuels/tagsheet/pkg/tag"
)

const svgStyle = `
    .tag { fill: #fff; stroke: #999; stroke-width: 0.2; stroke-dasharray: 1 0.6; }
    .txt { font-family: Helvetica, Arial, sans-serif; fill: #111; text-anchor: middle; dominant-baseline: middle; }
    .bold { font-weight: bold; }
    .struck { fill: #777; text-decoration: line-through; }
    .sym { fill: #111; }
    .sym-label { font-family: monospace; fill: #111; text-anchor: middle; dominant-baseline: hanging; }`

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	face     render.FaceOptions
	outlines bool
}

// WithCurrency sets the currency symbol printed before prices.
func WithCurrency(c string) SVGOption { return func(r *svgRenderer) { r.face.Currency = c } }

// WithoutOutlines omits the dashed cut lines around each tag.
func WithoutOutlines() SVGOption { return func(r *svgRenderer) { r.outlines = false } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{outlines: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG renders each page of s as a standalone SVG document sized to the
// paper. A sheet without pages yields no documents.
func RenderSVG(s *layout.Sheet, content []tag.Content, opts ...SVGOption) [][]byte {
	r := newSVGRenderer(opts...)
	out := make([][]byte, 0, len(s.Pages))
	for _, p := range s.Pages {
		out = append(out, r.page(s, p, content))
	}
	return out
}

func (r svgRenderer) page(s *layout.Sheet, p layout.Page, content []tag.Content) []byte {
	var buf bytes.Buffer
	w, h := s.Paper.WidthMm, s.Paper.HeightMm
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %g %g" width="%gmm" height="%gmm">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", svgStyle)
	fmt.Fprintf(&buf, `  <rect width="%g" height="%g" fill="#fff"/>`+"\n", w, h)

	for _, pl := range p.Placements {
		face := render.BuildFace(pl.Product, content, s.Size, r.face)
		fmt.Fprintf(&buf, `  <g id="tag-%d-%d" transform="translate(%.2f %.2f)">`+"\n", p.Number, pl.Slot.Index, pl.Slot.X, pl.Slot.Y)
		if r.outlines {
			fmt.Fprintf(&buf, `    <rect class="tag" width="%.2f" height="%.2f"/>`+"\n", pl.Slot.W, pl.Slot.H)
		}
		for _, el := range render.Arrange(face, pl.Slot.W, pl.Slot.H) {
			renderElement(&buf, el)
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderElement(buf *bytes.Buffer, el render.Element) {
	cx, cy := el.X+el.W/2, el.Y+el.H/2
	size := el.FontSize * render.PtToMm
	switch el.Kind {
	case render.ElementBarcode:
		renderBarcode(buf, el)
	case render.ElementQRCode:
		renderQRCode(buf, el)
	case render.ElementPrice:
		if el.Struck == "" {
			fmt.Fprintf(buf, `    <text class="txt bold" x="%.2f" y="%.2f" font-size="%.2f">%s</text>`+"\n",
				cx, cy, size, render.EscapeXML(el.Text))
			return
		}
		fmt.Fprintf(buf, `    <text class="txt" x="%.2f" y="%.2f" font-size="%.2f"><tspan class="struck">%s</tspan> <tspan class="bold">%s</tspan></text>`+"\n",
			cx, cy, size, render.EscapeXML(el.Struck), render.EscapeXML(el.Text))
	default:
		class := "txt"
		if el.Bold {
			class += " bold"
		}
		fmt.Fprintf(buf, `    <text class="%s" x="%.2f" y="%.2f" font-size="%.2f">%s</text>`+"\n",
			class, cx, cy, size, render.EscapeXML(el.Text))
	}
}

// renderBarcode draws stripes derived from the payload bytes with the payload
// printed underneath. The stripes are not a decodable symbology.
func renderBarcode(buf *bytes.Buffer, el render.Element) {
	labelH := el.H * 0.25
	barsH := el.H - labelH
	bits := stripeBits(el.Text)
	unit := el.W / float64(len(bits))
	for i, on := range bits {
		if on {
			fmt.Fprintf(buf, `    <rect class="sym" x="%.2f" y="%.2f" width="%.3f" height="%.2f"/>`+"\n",
				el.X+float64(i)*unit, el.Y, unit, barsH)
		}
	}
	fmt.Fprintf(buf, `    <text class="sym-label" x="%.2f" y="%.2f" font-size="%.2f">%s</text>`+"\n",
		el.X+el.W/2, el.Y+barsH, labelH*0.9, render.EscapeXML(el.Text))
}

// stripeBits expands payload bytes into guard-framed on/off modules.
func stripeBits(payload string) []bool {
	bits := []bool{true, false, true}
	for _, b := range []byte(payload) {
		for i := 7; i >= 0; i-- {
			bits = append(bits, b&(1<<i) != 0)
		}
	}
	return append(bits, true, false, true)
}

// renderQRCode draws the three finder patterns of a QR symbol and the payload
// as a tooltip.
func renderQRCode(buf *bytes.Buffer, el render.Element) {
	side := el.W
	finder := side * 0.3
	fmt.Fprintf(buf, `    <g><title>%s</title>`+"\n", render.EscapeXML(el.Text))
	fmt.Fprintf(buf, `      <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="#111" stroke-width="0.2"/>`+"\n",
		el.X, el.Y, side, side)
	for _, c := range [][2]float64{{0, 0}, {side - finder, 0}, {0, side - finder}} {
		x, y := el.X+c[0], el.Y+c[1]
		fmt.Fprintf(buf, `      <rect class="sym" x="%.2f" y="%.2f" width="%.2f" height="%.2f"/>`+"\n", x, y, finder, finder)
		fmt.Fprintf(buf, `      <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="#fff"/>`+"\n",
			x+finder/7, y+finder/7, finder*5/7, finder*5/7)
		fmt.Fprintf(buf, `      <rect class="sym" x="%.2f" y="%.2f" width="%.2f" height="%.2f"/>`+"\n",
			x+finder*2/7, y+finder*2/7, finder*3/7, finder*3/7)
	}
	buf.WriteString("    </g>\n")
}
