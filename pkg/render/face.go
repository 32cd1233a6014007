package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/tagsheet/pkg/tag"
)

// DefaultCurrency prefixes prices on tag faces.
const DefaultCurrency = "₹"

// fallbackBarcode is encoded when a product has no code.
const fallbackBarcode = "000000"

// brandMark is printed in place of the brand logo. The logo itself is a
// reference (URL or asset id) that is passed through but never drawn.
const brandMark = "BRAND"

// Face is everything printed on one tag.
// Empty strings mean the field is not shown.
type Face struct {
	Brand     string
	Logo      string // Brand logo reference, carried for consumers that resolve it
	Name      string
	Code      string
	Barcode   string // Barcode payload
	QRCode    string // QR payload
	BasePrice string
	SalePrice string
	Struck    bool // Base price is shown struck through next to the sale price
	Small     bool // Compact typography for narrow tags
}

// FaceOptions tunes face construction.
type FaceOptions struct {
	Currency string
}

// BuildFace decides what a tag for p shows given the selected content.
func BuildFace(p *tag.Product, content []tag.Content, size tag.TagSize, opts FaceOptions) Face {
	currency := opts.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	f := Face{Small: size.Small()}
	if tag.Has(content, tag.ContentBrandLogo) {
		f.Brand = brandMark
		f.Logo = p.BrandLogo
	}
	if tag.Has(content, tag.ContentProductName) {
		f.Name = p.Name
	}
	if tag.Has(content, tag.ContentProductCode) {
		f.Code = p.Code
	}
	if tag.Has(content, tag.ContentBarcode) {
		f.Barcode = BarcodePayload(p)
	}
	if tag.Has(content, tag.ContentQRCode) {
		f.QRCode = QRPayload(p)
	}
	showBase := tag.Has(content, tag.ContentBasePrice)
	showSale := tag.Has(content, tag.ContentSalePrice)
	if showBase {
		f.BasePrice = FormatPrice(currency, p.BasePrice)
	}
	if showSale {
		f.SalePrice = FormatPrice(currency, p.SalePrice)
	}
	f.Struck = showBase && showSale
	return f
}

// Empty reports whether the face shows nothing at all.
func (f Face) Empty() bool {
	return f.Brand == "" && f.Name == "" && f.Code == "" && f.Barcode == "" &&
		f.QRCode == "" && f.BasePrice == "" && f.SalePrice == ""
}

// PriceLine joins the visible prices.
func (f Face) PriceLine() string {
	return strings.TrimSpace(f.BasePrice + " " + f.SalePrice)
}

// BarcodePayload is the string encoded in a product's barcode.
func BarcodePayload(p *tag.Product) string {
	if p.Code != "" {
		return p.Code
	}
	return fallbackBarcode
}

// QRPayload is the string encoded in a product's QR code.
func QRPayload(p *tag.Product) string {
	if p.Code != "" {
		return p.Code
	}
	return p.Name
}

// FormatPrice renders a price rounded to whole units, as printed on tags.
func FormatPrice(currency string, v float64) string {
	return fmt.Sprintf("%s%.0f", currency, math.Round(v))
}
