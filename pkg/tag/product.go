package tag

// Product is a catalogue item that can be printed on a tag.
//
// ID is the identity. Code is a human-facing SKU and is not checked for
// uniqueness. Copies is the number of tags to print for this product; zero
// and one both mean a single tag.
type Product struct {
	ID        string  `json:"id" toml:"id"`
	Name      string  `json:"name" toml:"name"`
	Code      string  `json:"code" toml:"code"`
	BasePrice float64 `json:"base_price" toml:"base_price"`
	SalePrice float64 `json:"sale_price" toml:"sale_price"`
	BrandLogo string  `json:"brand_logo,omitempty" toml:"brand_logo,omitempty"`
	Copies    int     `json:"copies,omitempty" toml:"copies,omitempty"`
}

// TagCount returns how many tag instances the product expands to.
func (p Product) TagCount() int {
	if p.Copies > 1 {
		return p.Copies
	}
	return 1
}

// OnSale reports whether the sale price differs from the base price.
func (p Product) OnSale() bool {
	return p.SalePrice != p.BasePrice
}
