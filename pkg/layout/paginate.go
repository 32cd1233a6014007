package layout

import (
	"github.com/matzehuels/tagsheet/pkg/errors"
)

// Paginate splits items into consecutive pages of exactly capacity items;
// the last page holds the remainder.
//
// Order is preserved and nothing is dropped or duplicated. An empty input
// yields zero pages. A capacity of zero or less returns an ErrCodeZeroCapacity
// error. Pages share the backing array of items.
func Paginate[T any](items []T, capacity int) ([][]T, error) {
	if capacity <= 0 {
		return nil, errors.New(errors.ErrCodeZeroCapacity, "page capacity is %d", capacity)
	}
	if len(items) == 0 {
		return [][]T{}, nil
	}

	pages := make([][]T, 0, (len(items)+capacity-1)/capacity)
	for start := 0; start < len(items); start += capacity {
		end := min(start+capacity, len(items))
		pages = append(pages, items[start:end:end])
	}
	return pages, nil
}
