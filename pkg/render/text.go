package render

import (
	"bytes"
	"encoding/xml"
)

// PtToMm converts typographic points to millimetres.
const PtToMm = 0.352778

const (
	fontCharWidth = 0.55 // Average glyph advance relative to font size
	fontSizeMinPt = 5.0
)

// FitFontSize shrinks sizePt until text of n characters fits in widthMm.
func FitFontSize(widthMm float64, n int, sizePt float64) float64 {
	n = max(1, n)
	byWidth := widthMm / (float64(n) * fontCharWidth * PtToMm)
	return max(fontSizeMinPt, min(sizePt, byWidth))
}

// Truncate shortens s so it fits widthMm at sizePt, marking the cut with "..".
func Truncate(s string, widthMm, sizePt float64) string {
	runes := []rune(s)
	maxChars := max(3, int(widthMm/(sizePt*fontCharWidth*PtToMm)))
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars-2]) + ".."
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
