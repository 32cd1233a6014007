package catalog

import (
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/matzehuels/tagsheet/pkg/errors"
	"github.com/matzehuels/tagsheet/pkg/tag"
)

func counterIDs() IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func seeded(t *testing.T, names ...string) []tag.Product {
	t.Helper()
	gen := counterIDs()
	var list []tag.Product
	for _, name := range names {
		var err error
		list, _, err = AddWithID(list, Draft{Name: name, Code: "C-" + name, BasePrice: 10, SalePrice: 9}, gen)
		if err != nil {
			t.Fatalf("AddWithID(%q) error: %v", name, err)
		}
	}
	return list
}

func TestAdd(t *testing.T) {
	var empty []tag.Product
	list, p, err := Add(empty, Draft{Name: "  Espresso  ", Code: "ESP-1", BasePrice: 4.5, SalePrice: 3.9})
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}
	if _, err := uuid.Parse(p.ID); err != nil {
		t.Errorf("Add() id %q is not a UUID: %v", p.ID, err)
	}
	if p.Name != "Espresso" {
		t.Errorf("Name = %q, want trimmed %q", p.Name, "Espresso")
	}
	if len(empty) != 0 {
		t.Error("Add() modified the input list")
	}
}

func TestAddDoesNotShareBackingArray(t *testing.T) {
	base := make([]tag.Product, 1, 10)
	base[0] = tag.Product{ID: "a", Name: "A"}

	gen := counterIDs()
	l1, _, err := AddWithID(base, Draft{Name: "B"}, gen)
	if err != nil {
		t.Fatal(err)
	}
	l2, _, err := AddWithID(base, Draft{Name: "C"}, gen)
	if err != nil {
		t.Fatal(err)
	}
	if l1[1].Name != "B" || l2[1].Name != "C" {
		t.Errorf("independent adds interfered: %q, %q", l1[1].Name, l2[1].Name)
	}
}

func TestAddValidation(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
	}{
		{"empty name", Draft{Name: ""}},
		{"negative base price", Draft{Name: "x", BasePrice: -1}},
		{"negative sale price", Draft{Name: "x", SalePrice: -1}},
		{"code with space", Draft{Name: "x", Code: "A B"}},
		{"negative copies", Draft{Name: "x", Copies: -1}},
		{"too many copies", Draft{Name: "x", Copies: MaxCopies + 1}},
		{"huge copies", Draft{Name: "x", Copies: 1 << 62}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, _, err := Add(nil, tt.draft)
			if !errors.Is(err, errors.ErrCodeInvalidProduct) {
				t.Errorf("Add() error = %v, want INVALID_PRODUCT", err)
			}
			if len(list) != 0 {
				t.Error("failed Add() should return the original list")
			}
		})
	}
}

func TestAddDuplicateID(t *testing.T) {
	list := seeded(t, "a")
	_, _, err := AddWithID(list, Draft{Name: "b"}, func() string { return "id-1" })
	if !errors.Is(err, errors.ErrCodeInvalidProduct) {
		t.Errorf("AddWithID(duplicate) error = %v, want INVALID_PRODUCT", err)
	}
}

func TestUpdate(t *testing.T) {
	list := seeded(t, "a", "b", "c")
	p := list[1]
	p.SalePrice = 5

	next, err := Update(list, p)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if next[1].SalePrice != 5 {
		t.Errorf("updated SalePrice = %v, want 5", next[1].SalePrice)
	}
	if list[1].SalePrice != 9 {
		t.Error("Update() modified the input list")
	}
	if next[0] != list[0] || next[2] != list[2] {
		t.Error("Update() changed other products")
	}

	_, err = Update(list, tag.Product{ID: "nope", Name: "x"})
	if !errors.Is(err, errors.ErrCodeProductNotFound) {
		t.Errorf("Update(unknown) error = %v, want PRODUCT_NOT_FOUND", err)
	}

	bad := list[0]
	bad.Name = ""
	if _, err := Update(list, bad); !errors.Is(err, errors.ErrCodeInvalidProduct) {
		t.Errorf("Update(invalid) error = %v, want INVALID_PRODUCT", err)
	}
}

func TestRemove(t *testing.T) {
	list := seeded(t, "a", "b", "c")
	next, err := Remove(list, "id-2")
	if err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if len(next) != 2 || next[0].ID != "id-1" || next[1].ID != "id-3" {
		t.Errorf("Remove() = %v", next)
	}
	if len(list) != 3 || list[1].ID != "id-2" {
		t.Error("Remove() modified the input list")
	}

	if _, err := Remove(list, "nope"); !errors.Is(err, errors.ErrCodeProductNotFound) {
		t.Errorf("Remove(unknown) error = %v, want PRODUCT_NOT_FOUND", err)
	}
}

func TestSelect(t *testing.T) {
	list := seeded(t, "a", "b", "c", "d")

	got := Select(list, []string{"id-4", "id-2", "missing"})
	if len(got) != 2 || got[0].ID != "id-2" || got[1].ID != "id-4" {
		t.Errorf("Select() = %v, want catalogue order [id-2 id-4]", got)
	}

	if all := Select(list, nil); len(all) != 4 {
		t.Errorf("Select(nil) = %d products, want 4", len(all))
	}
	if none := Select(list, []string{}); len(none) != 0 {
		t.Errorf("Select(empty) = %d products, want 0", len(none))
	}
}

func TestFind(t *testing.T) {
	list := seeded(t, "a", "b")
	if p, ok := Find(list, "id-2"); !ok || p.Name != "b" {
		t.Errorf("Find(id-2) = %v, %v", p, ok)
	}
	if _, ok := Find(list, "nope"); ok {
		t.Error("Find(nope) should fail")
	}
}

func TestValidateAll(t *testing.T) {
	list := seeded(t, "a", "b")
	if err := ValidateAll(list); err != nil {
		t.Errorf("ValidateAll() error: %v", err)
	}

	dup := append(list, list[0])
	if err := ValidateAll(dup); !errors.Is(err, errors.ErrCodeInvalidProduct) {
		t.Errorf("ValidateAll(duplicate) error = %v, want INVALID_PRODUCT", err)
	}

	bad := []tag.Product{{ID: "x", Name: "ok", BasePrice: -3}}
	if err := ValidateAll(bad); !errors.Is(err, errors.ErrCodeInvalidProduct) {
		t.Errorf("ValidateAll(negative price) error = %v, want INVALID_PRODUCT", err)
	}
}

func TestValidateCopiesLimit(t *testing.T) {
	p := tag.Product{ID: "x", Name: "ok", Copies: MaxCopies}
	if err := Validate(p); err != nil {
		t.Errorf("Validate(copies=%d) error: %v", MaxCopies, err)
	}
	p.Copies++
	if err := Validate(p); !errors.Is(err, errors.ErrCodeInvalidProduct) {
		t.Errorf("Validate(copies=%d) error = %v, want INVALID_PRODUCT", p.Copies, err)
	}
}

func TestAssignIDs(t *testing.T) {
	list := []tag.Product{{Name: "a"}, {ID: "keep", Name: "b"}}
	next := AssignIDs(list)
	if next[0].ID == "" {
		t.Error("AssignIDs() left an empty id")
	}
	if next[1].ID != "keep" {
		t.Errorf("AssignIDs() replaced existing id: %q", next[1].ID)
	}
	if list[0].ID != "" {
		t.Error("AssignIDs() modified the input list")
	}
}
