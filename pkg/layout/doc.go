// Package layout places product tags on paper sheets.
//
// # Overview
//
// Tags are packed as a uniform grid of equal rectangles starting at the
// top-left corner of the sheet. No margins, gutters or bleed are modelled:
// the number of columns is the paper width divided by the tag width, rounded
// down, and likewise for rows. This matches what the print preview draws.
//
// Laying out a selection happens in three steps, each available on its own:
//
//  1. [ComputeCapacity] turns paper and tag dimensions into a [Capacity].
//  2. [ExpandSelection] turns products into tag instances (one per product,
//     or [tag.Product.Copies] when set). Selections that expand to more than
//     [MaxTags] instances are rejected with ErrCodeInvalidInput.
//  3. [Paginate] splits the instances into pages of at most Capacity.PerPage.
//
// [Plan] composes the three and assigns every instance a [Slot] on its page.
//
// # Degenerate Cases
//
// A tag larger than the paper in either axis yields a zero capacity. [Plan]
// reports that as an ErrCodeZeroCapacity error before paginating, so callers
// can distinguish it from an empty selection, which simply yields a sheet with
// zero pages.
//
// Non-positive dimensions are a programming error (the catalogue is trusted
// constant data) and make [ComputeCapacity] panic.
//
// Every function here is pure and deterministic: the same inputs always give
// structurally identical output.
package layout
