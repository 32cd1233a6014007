// Package suggest recommends tag sizes for a content selection.
//
// The recommendation is a step function on the number of selected content
// fields, not on which fields they are:
//
//	0-2 fields  → catalogue[0:5]   (the smallest sizes)
//	3-4 fields  → catalogue[2:8]
//	5+  fields  → catalogue[4:]
//
// Suggestions are advisory. They only bias how a size picker presents the
// catalogue; layout works for every catalogue entry.
package suggest

import (
	"slices"

	"github.com/matzehuels/tagsheet/pkg/tag"
)

// bucket is a half-open catalogue index range; end < 0 means "to the end".
type bucket struct {
	start, end int
}

func bucketFor(count int) bucket {
	switch {
	case count <= 2:
		return bucket{0, 5}
	case count <= 4:
		return bucket{2, 8}
	default:
		return bucket{4, -1}
	}
}

// Sizes returns the entries of catalogue suggested for the selected content,
// in catalogue order. Duplicate selections count once. The returned slice is
// a fresh copy.
func Sizes(selected []tag.Content, catalogue []tag.TagSize) []tag.TagSize {
	b := bucketFor(countDistinct(selected))
	start, end := b.start, b.end
	if end < 0 || end > len(catalogue) {
		end = len(catalogue)
	}
	if start > end {
		start = end
	}
	return slices.Clone(catalogue[start:end])
}

// Default is Sizes over the built-in catalogue.
func Default(selected []tag.Content) []tag.TagSize {
	return Sizes(selected, tag.Sizes())
}

// IsSuggested reports whether the size with the given ID is among suggested.
func IsSuggested(id int, suggested []tag.TagSize) bool {
	return slices.ContainsFunc(suggested, func(s tag.TagSize) bool { return s.ID == id })
}

func countDistinct(selected []tag.Content) int {
	seen := make(map[tag.Content]struct{}, len(selected))
	for _, c := range selected {
		seen[c] = struct{}{}
	}
	return len(seen)
}
