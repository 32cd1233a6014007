// Package tag defines the data model shared by every tagsheet component:
// products, the fixed tag-size catalogue, the paper table and the selectable
// tag content fields.
//
// # Catalogue
//
// The tag-size catalogue holds 17 physical label sizes, ordered roughly from
// smallest to largest. The order is significant: size suggestions are index
// ranges into it (see package suggest). The paper table holds A4 and A3.
//
// Both tables are process-wide constants. [Sizes] and [Papers] return copies
// so no caller can mutate them:
//
//	for _, s := range tag.Sizes() {
//	    fmt.Println(s.ID, s.Label, s.WidthMm, s.HeightMm)
//	}
//
//	size, err := tag.SizeByID(17)  // 1.3" × 2"
//	paper, err := tag.PaperByName("a4")
//
// # Content
//
// [Content] enumerates the seven fields that can be printed on a tag face.
// A selection is a set; [NormalizeContent] deduplicates it and puts it in
// display order.
package tag
