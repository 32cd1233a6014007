// Package render turns planned tag sheets into printable output.
//
// # Overview
//
// A [layout.Sheet] says where each tag goes. This package decides what each
// tag shows ([BuildFace]) and hosts the format conversion shared by the
// output sinks in the [sink] subpackage:
//
//   - SVG: one vector page per sheet (the base for PNG)
//   - PDF: a multi-page document with real barcode and QR symbols
//   - PNG: a rasterised SVG page
//   - JSON: the plan itself, for external renderers
//   - XLSX: a spreadsheet listing every placed tag
//
// # Tag Faces
//
// [BuildFace] applies the selected content to one product. Fields are stacked
// in a fixed order (brand, name, code, barcode, QR code, prices) regardless
// of the order in which they were selected. Barcode payloads fall back to
// "000000" when a product has no code; QR payloads fall back to the product
// name.
//
// # Format Conversion
//
// [ToPNG] converts an SVG document with the external rsvg-convert tool
// (from librsvg):
//
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [sink]: github.com/matzehuels/tagsheet/pkg/render/sink
// [layout.Sheet]: github.com/matzehuels/tagsheet/pkg/layout.Sheet
package render
