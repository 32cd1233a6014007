package tag

import (
	"slices"
	"strings"

	"github.com/matzehuels/tagsheet/pkg/errors"
)

// Content is a field that can be printed on a tag face.
type Content string

// Selectable tag content, in display order.
const (
	ContentBrandLogo   Content = "brandLogo"
	ContentQRCode      Content = "qrCode"
	ContentBarcode     Content = "barcode"
	ContentProductName Content = "productName"
	ContentProductCode Content = "productCode"
	ContentBasePrice   Content = "basePrice"
	ContentSalePrice   Content = "salePrice"
)

var allContent = [...]Content{
	ContentBrandLogo,
	ContentQRCode,
	ContentBarcode,
	ContentProductName,
	ContentProductCode,
	ContentBasePrice,
	ContentSalePrice,
}

var contentLabels = map[Content]string{
	ContentBrandLogo:   "Brand Logo",
	ContentQRCode:      "QR Code",
	ContentBarcode:     "Barcode",
	ContentProductName: "Product Name",
	ContentProductCode: "Product Code",
	ContentBasePrice:   "Base Price",
	ContentSalePrice:   "Sale Price",
}

// AllContent returns every content kind in display order.
func AllContent() []Content {
	return slices.Clone(allContent[:])
}

// Label returns the human readable name of the content kind.
func (c Content) Label() string {
	if l, ok := contentLabels[c]; ok {
		return l
	}
	return string(c)
}

// Valid reports whether c is one of the known content kinds.
func (c Content) Valid() bool {
	_, ok := contentLabels[c]
	return ok
}

// ParseContent resolves a content name. Matching ignores case, dashes and
// underscores, so "product-name" and "PRODUCT_NAME" both yield ContentProductName.
func ParseContent(name string) (Content, error) {
	key := canonical(name)
	for _, c := range allContent {
		if canonical(string(c)) == key {
			return c, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidContent, "invalid tag content: %q", name)
}

// ParseContentList parses a comma separated list of content names.
// An empty string yields an empty selection.
func ParseContentList(s string) ([]Content, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []Content
	for _, part := range strings.Split(s, ",") {
		c, err := ParseContent(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return NormalizeContent(out), nil
}

// NormalizeContent drops duplicates and unknown kinds and returns the
// selection in display order.
func NormalizeContent(sel []Content) []Content {
	out := make([]Content, 0, len(sel))
	for _, c := range allContent {
		if slices.Contains(sel, c) {
			out = append(out, c)
		}
	}
	return out
}

// Has reports whether the selection contains c.
func Has(sel []Content, c Content) bool {
	return slices.Contains(sel, c)
}

func canonical(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}
