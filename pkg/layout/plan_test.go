package layout

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/matzehuels/tagsheet/pkg/errors"
	"github.com/matzehuels/tagsheet/pkg/tag"
)

func products(n int) []tag.Product {
	out := make([]tag.Product, n)
	for i := range out {
		out[i] = tag.Product{
			ID:        fmt.Sprintf("p%d", i),
			Name:      fmt.Sprintf("Product %d", i),
			Code:      fmt.Sprintf("SKU-%03d", i),
			BasePrice: 10,
			SalePrice: 8,
		}
	}
	return out
}

func mustSize(t *testing.T, id int) tag.TagSize {
	t.Helper()
	s, err := tag.SizeByID(id)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func mustPaper(t *testing.T, name string) tag.Paper {
	t.Helper()
	p, err := tag.PaperByName(name)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestExpandSelection(t *testing.T) {
	ps := products(3)
	inst, err := ExpandSelection(ps)
	if err != nil {
		t.Fatal(err)
	}
	if len(inst) != 3 {
		t.Fatalf("len(ExpandSelection) = %d, want 3", len(inst))
	}
	for i := range inst {
		if inst[i].Product != &ps[i] {
			t.Errorf("instance %d does not reference product %d", i, i)
		}
	}
}

func TestExpandSelectionCopies(t *testing.T) {
	ps := products(2)
	ps[0].Copies = 3
	inst, err := ExpandSelection(ps)
	if err != nil {
		t.Fatal(err)
	}

	wantIDs := []string{"p0", "p0", "p0", "p1"}
	wantCopies := []int{0, 1, 2, 0}
	if len(inst) != len(wantIDs) {
		t.Fatalf("len(ExpandSelection) = %d, want %d", len(inst), len(wantIDs))
	}
	for i := range inst {
		if inst[i].Product.ID != wantIDs[i] || inst[i].Copy != wantCopies[i] {
			t.Errorf("instance %d = %s#%d, want %s#%d", i, inst[i].Product.ID, inst[i].Copy, wantIDs[i], wantCopies[i])
		}
	}
}

func TestExpandSelectionTooManyTags(t *testing.T) {
	tests := []struct {
		name   string
		copies []int
	}{
		{"single product over limit", []int{MaxTags + 1}},
		{"sum over limit", []int{MaxTags / 2, MaxTags/2 + 1}},
		{"int overflow", []int{1 << 62, 1 << 62}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := products(len(tt.copies))
			for i, c := range tt.copies {
				ps[i].Copies = c
			}
			if _, err := ExpandSelection(ps); !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Fatalf("ExpandSelection error = %v, want INVALID_INPUT", err)
			}
			if _, err := Plan(ps, mustSize(t, 17), mustPaper(t, "a4")); !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Fatalf("Plan error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestCountTagsAtLimit(t *testing.T) {
	ps := products(2)
	ps[0].Copies = MaxTags - 1
	n, err := CountTags(ps)
	if err != nil {
		t.Fatal(err)
	}
	if n != MaxTags {
		t.Errorf("CountTags = %d, want %d", n, MaxTags)
	}
}

func TestPlanEndToEnd(t *testing.T) {
	ps := products(5)
	sheet, err := Plan(ps, mustSize(t, 17), mustPaper(t, "a4"))
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}

	if sheet.Capacity.Columns != 6 || sheet.Capacity.Rows != 5 {
		t.Errorf("Capacity = %v, want 6×5", sheet.Capacity)
	}
	if len(sheet.Pages) != 1 {
		t.Fatalf("len(Pages) = %d, want 1", len(sheet.Pages))
	}
	page := sheet.Pages[0]
	if page.Number != 1 {
		t.Errorf("Number = %d, want 1", page.Number)
	}
	for i, pl := range page.Placements {
		if pl.Product.ID != ps[i].ID {
			t.Errorf("placement %d = %s, want %s", i, pl.Product.ID, ps[i].ID)
		}
	}
	if sheet.TagCount() != 5 {
		t.Errorf("TagCount() = %d, want 5", sheet.TagCount())
	}
}

func TestPlanMultiplePages(t *testing.T) {
	ps := products(65)
	sheet, err := Plan(ps, mustSize(t, 13), mustPaper(t, "a4"))
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if got := len(sheet.Pages); got != 3 {
		t.Fatalf("len(Pages) = %d, want 3", got)
	}
	if got := len(sheet.Pages[2].Placements); got != 5 {
		t.Errorf("last page has %d tags, want 5", got)
	}

	i := 0
	for _, page := range sheet.Pages {
		for _, pl := range page.Placements {
			if pl.Product != &ps[i] {
				t.Fatalf("placement order broken at %d", i)
			}
			i++
		}
	}
}

func TestPlanEmptySelection(t *testing.T) {
	sheet, err := Plan(nil, mustSize(t, 17), mustPaper(t, "a4"))
	if err != nil {
		t.Fatalf("Plan(nil) error: %v", err)
	}
	if len(sheet.Pages) != 0 {
		t.Errorf("len(Pages) = %d, want 0", len(sheet.Pages))
	}
	if sheet.Capacity.PerPage() != 30 {
		t.Errorf("capacity should still be reported, got %v", sheet.Capacity)
	}
}

func TestPlanZeroCapacity(t *testing.T) {
	huge := tag.TagSize{ID: 99, Label: "huge", WidthMm: 100, HeightMm: 300}
	_, err := Plan(products(3), huge, mustPaper(t, "a4"))
	if !errors.Is(err, errors.ErrCodeZeroCapacity) {
		t.Fatalf("Plan() error = %v, want ZERO_CAPACITY", err)
	}

	// Zero capacity is reported even with nothing selected.
	_, err = Plan(nil, huge, mustPaper(t, "a4"))
	if !errors.Is(err, errors.ErrCodeZeroCapacity) {
		t.Errorf("Plan(nil) error = %v, want ZERO_CAPACITY", err)
	}
}

func TestPlanDeterministic(t *testing.T) {
	ps := products(40)
	size, paper := mustSize(t, 16), mustPaper(t, "a3")

	a, err := Plan(ps, size, paper)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Plan(ps, size, paper)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("Plan() is not deterministic")
	}
}

func TestSlotAt(t *testing.T) {
	size := mustSize(t, 17)
	c := Capacity{Columns: 6, Rows: 5}

	tests := []struct {
		index    int
		col, row int
	}{
		{0, 0, 0},
		{5, 5, 0},
		{6, 0, 1},
		{29, 5, 4},
	}
	for _, tt := range tests {
		s := SlotAt(tt.index, c, size)
		if s.Column != tt.col || s.Row != tt.row {
			t.Errorf("SlotAt(%d) = (%d,%d), want (%d,%d)", tt.index, s.Column, s.Row, tt.col, tt.row)
		}
		if s.X != float64(tt.col)*size.WidthMm || s.Y != float64(tt.row)*size.HeightMm {
			t.Errorf("SlotAt(%d) origin = (%v,%v)", tt.index, s.X, s.Y)
		}
		if s.W != size.WidthMm || s.H != size.HeightMm {
			t.Errorf("SlotAt(%d) size = %vx%v", tt.index, s.W, s.H)
		}
	}
}
