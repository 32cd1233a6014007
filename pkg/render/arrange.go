package render

// ElementKind identifies a drawable part of a tag face.
type ElementKind int

const (
	ElementBrand ElementKind = iota
	ElementName
	ElementCode
	ElementBarcode
	ElementQRCode
	ElementPrice
)

// Element is one positioned part of a tag face.
// Offsets are millimetres relative to the tag's top-left corner.
type Element struct {
	Kind     ElementKind
	Text     string  // Text or symbol payload; for prices the sale price
	Struck   string  // Struck-through base price, prices only
	X, Y     float64 // Top-left of the element box
	W, H     float64
	FontSize float64 // Points, text and prices only
	Bold     bool
}

type metrics struct {
	pad      float64
	brandPt  float64
	namePt   float64
	codePt   float64
	pricePt  float64
	barcodeH float64
}

var (
	regularMetrics = metrics{pad: 2, brandPt: 7, namePt: 10, codePt: 8, pricePt: 12, barcodeH: 10}
	smallMetrics   = metrics{pad: 1.2, brandPt: 5.5, namePt: 7, codePt: 6, pricePt: 9, barcodeH: 7}
)

// lineHeight is the box height for text at sizePt.
func lineHeight(sizePt float64) float64 {
	return sizePt * PtToMm * 1.35
}

// Arrange stacks the visible parts of f inside a w × h millimetre tag in the
// order brand, name, code, barcode, QR code, prices. When the natural height
// exceeds the tag the stack is scaled down uniformly.
func Arrange(f Face, w, h float64) []Element {
	if f.Empty() {
		return nil
	}
	m := regularMetrics
	if f.Small {
		m = smallMetrics
	}
	inner := w - 2*m.pad

	var els []Element
	text := func(kind ElementKind, s string, pt float64, bold bool) {
		if s == "" {
			return
		}
		pt = FitFontSize(inner, len([]rune(s)), pt)
		els = append(els, Element{
			Kind: kind, Text: Truncate(s, inner, pt),
			W: inner, H: lineHeight(pt), FontSize: pt, Bold: bold,
		})
	}

	text(ElementBrand, f.Brand, m.brandPt, true)
	text(ElementName, f.Name, m.namePt, true)
	text(ElementCode, f.Code, m.codePt, false)
	if f.Barcode != "" {
		els = append(els, Element{Kind: ElementBarcode, Text: f.Barcode, W: inner, H: m.barcodeH})
	}
	if f.QRCode != "" {
		side := min(inner, h*0.35)
		els = append(els, Element{Kind: ElementQRCode, Text: f.QRCode, W: side, H: side})
	}
	if f.BasePrice != "" || f.SalePrice != "" {
		pt := FitFontSize(inner, len([]rune(f.PriceLine())), m.pricePt)
		el := Element{Kind: ElementPrice, Text: f.SalePrice, W: inner, H: lineHeight(pt), FontSize: pt, Bold: true}
		if f.Struck {
			el.Struck = f.BasePrice
		} else if f.SalePrice == "" {
			el.Text = f.BasePrice
		}
		els = append(els, el)
	}

	gap := m.pad / 2
	total := gap * float64(len(els)-1)
	for _, e := range els {
		total += e.H
	}
	scale := 1.0
	if avail := h - 2*m.pad; total > avail && total > 0 {
		scale = avail / total
	}

	y := m.pad
	for i := range els {
		e := &els[i]
		e.H *= scale
		e.W *= scale
		e.FontSize *= scale
		e.Y = y
		e.X = (w - e.W) / 2
		y += e.H + gap*scale
	}
	return els
}
