package layout_test

import (
	"fmt"

	"github.com/matzehuels/tagsheet/pkg/layout"
	"github.com/matzehuels/tagsheet/pkg/tag"
)

func ExampleComputeCapacity() {
	c := layout.ComputeCapacity(
		layout.Dimensions{WidthMm: 210, HeightMm: 297},
		layout.Dimensions{WidthMm: 34.93, HeightMm: 50.8},
	)
	fmt.Println(c.Columns, c.Rows, c.PerPage())
	// Output:
	// 6 5 30
}

func ExamplePaginate() {
	pages, _ := layout.Paginate([]string{"a", "b", "c", "d", "e"}, 2)
	fmt.Println(pages)
	// Output:
	// [[a b] [c d] [e]]
}

func ExamplePlan() {
	products := []tag.Product{
		{ID: "1", Name: "Espresso", Code: "ESP-1"},
		{ID: "2", Name: "Lungo", Code: "LUN-2"},
	}
	size, _ := tag.SizeByID(17)
	paper, _ := tag.PaperByName("a4")

	sheet, err := layout.Plan(products, size, paper)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Capacity:", sheet.Capacity)
	fmt.Println("Pages:", len(sheet.Pages))
	for _, pl := range sheet.Pages[0].Placements {
		fmt.Printf("%s at column %d row %d\n", pl.Product.Name, pl.Slot.Column, pl.Slot.Row)
	}
	// Output:
	// Capacity: 6×5 (30/page)
	// Pages: 1
	// Espresso at column 0 row 0
	// Lungo at column 1 row 0
}
