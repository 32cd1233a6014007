package sink

import (
	"testing"

	"github.com/matzehuels/tagsheet/pkg/layout"
	"github.com/matzehuels/tagsheet/pkg/tag"
)

var testContent = []tag.Content{tag.ContentProductName, tag.ContentProductCode, tag.ContentBarcode, tag.ContentSalePrice}

func testSheet(t *testing.T, n, sizeID int) *layout.Sheet {
	t.Helper()
	products := make([]tag.Product, n)
	for i := range products {
		products[i] = tag.Product{
			ID:        string(rune('a' + i%26)),
			Name:      "Product & Co",
			Code:      "P-1",
			BasePrice: 120,
			SalePrice: 99,
		}
	}
	size, err := tag.SizeByID(sizeID)
	if err != nil {
		t.Fatal(err)
	}
	paper, err := tag.PaperByName("a4")
	if err != nil {
		t.Fatal(err)
	}
	s, err := layout.Plan(products, size, paper)
	if err != nil {
		t.Fatal(err)
	}
	return s
}
