// Package catalog implements product list edits as pure state transitions.
//
// Every operation takes the current list and returns a new one; the input
// slice is never modified. Callers therefore only ever observe committed
// product values:
//
//	list, p, err := catalog.Add(list, catalog.Draft{Name: "Espresso", Code: "ESP-1", BasePrice: 4.5, SalePrice: 4.5})
//	list, err = catalog.Update(list, p)
//	list, err = catalog.Remove(list, p.ID)
//	selected := catalog.Select(list, []string{p.ID})
package catalog

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/tagsheet/pkg/errors"
	"github.com/matzehuels/tagsheet/pkg/tag"
)

// Draft holds the fields of a product that does not have an ID yet.
type Draft struct {
	Name      string
	Code      string
	BasePrice float64
	SalePrice float64
	BrandLogo string
	Copies    int
}

// IDFunc generates product IDs. Tests replace it for stable output.
type IDFunc func() string

// NewID returns a random UUID string.
func NewID() string {
	return uuid.NewString()
}

// Add validates d and appends it as a new product with a fresh ID.
func Add(list []tag.Product, d Draft) ([]tag.Product, tag.Product, error) {
	return AddWithID(list, d, NewID)
}

// AddWithID is Add with a caller supplied ID generator.
func AddWithID(list []tag.Product, d Draft, newID IDFunc) ([]tag.Product, tag.Product, error) {
	p := tag.Product{
		ID:        newID(),
		Name:      strings.TrimSpace(d.Name),
		Code:      strings.TrimSpace(d.Code),
		BasePrice: d.BasePrice,
		SalePrice: d.SalePrice,
		BrandLogo: d.BrandLogo,
		Copies:    d.Copies,
	}
	if err := Validate(p); err != nil {
		return list, tag.Product{}, err
	}
	if indexOf(list, p.ID) >= 0 {
		return list, tag.Product{}, errors.New(errors.ErrCodeInvalidProduct, "duplicate product id %q", p.ID)
	}
	next := make([]tag.Product, len(list), len(list)+1)
	copy(next, list)
	return append(next, p), p, nil
}

// Update replaces the product with p.ID by p, keeping its position.
func Update(list []tag.Product, p tag.Product) ([]tag.Product, error) {
	i := indexOf(list, p.ID)
	if i < 0 {
		return list, errors.New(errors.ErrCodeProductNotFound, "product %q not found", p.ID)
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Code = strings.TrimSpace(p.Code)
	if err := Validate(p); err != nil {
		return list, err
	}
	next := slices.Clone(list)
	next[i] = p
	return next, nil
}

// Remove returns list without the product with the given ID.
func Remove(list []tag.Product, id string) ([]tag.Product, error) {
	i := indexOf(list, id)
	if i < 0 {
		return list, errors.New(errors.ErrCodeProductNotFound, "product %q not found", id)
	}
	next := make([]tag.Product, 0, len(list)-1)
	next = append(next, list[:i]...)
	return append(next, list[i+1:]...), nil
}

// Select returns the products whose IDs are in ids, in catalogue order.
// Unknown IDs are ignored. A nil ids selects everything.
func Select(list []tag.Product, ids []string) []tag.Product {
	if ids == nil {
		return slices.Clone(list)
	}
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := make([]tag.Product, 0, len(ids))
	for _, p := range list {
		if _, ok := want[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Find returns the product with the given ID.
func Find(list []tag.Product, id string) (tag.Product, bool) {
	if i := indexOf(list, id); i >= 0 {
		return list[i], true
	}
	return tag.Product{}, false
}

// MaxCopies is the most tags a single product may request.
const MaxCopies = 10_000

// Validate checks the fields of a single product.
func Validate(p tag.Product) error {
	if p.ID == "" {
		return errors.New(errors.ErrCodeInvalidProduct, "product id cannot be empty")
	}
	if err := errors.ValidateProductName(p.Name); err != nil {
		return err
	}
	if err := errors.ValidateProductCode(p.Code); err != nil {
		return err
	}
	if err := errors.ValidatePrice("base price", p.BasePrice); err != nil {
		return err
	}
	if err := errors.ValidatePrice("sale price", p.SalePrice); err != nil {
		return err
	}
	if p.Copies < 0 {
		return errors.New(errors.ErrCodeInvalidProduct, "copies cannot be negative: %d", p.Copies)
	}
	if p.Copies > MaxCopies {
		return errors.New(errors.ErrCodeInvalidProduct, "copies cannot exceed %d: %d", MaxCopies, p.Copies)
	}
	return nil
}

// ValidateAll validates every product and rejects duplicate IDs.
func ValidateAll(list []tag.Product) error {
	seen := make(map[string]struct{}, len(list))
	for i, p := range list {
		if err := Validate(p); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "product %d", i+1)
		}
		if _, dup := seen[p.ID]; dup {
			return errors.New(errors.ErrCodeInvalidProduct, "duplicate product id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// AssignIDs returns a copy of list where products without an ID get one.
func AssignIDs(list []tag.Product) []tag.Product {
	next := slices.Clone(list)
	for i := range next {
		if next[i].ID == "" {
			next[i].ID = NewID()
		}
	}
	return next
}

func indexOf(list []tag.Product, id string) int {
	return slices.IndexFunc(list, func(p tag.Product) bool { return p.ID == id })
}
