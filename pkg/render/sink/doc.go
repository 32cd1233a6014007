// Package sink renders a planned [layout.Sheet] into output formats.
//
// # Overview
//
// A "sink" turns the pages of a sheet into bytes. This package provides:
//
//   - SVG: one document per page, in millimetre units
//   - PNG: SVG pages rasterised with rsvg-convert
//   - PDF: a single print-ready document with real barcodes and QR codes
//   - JSON: the placement data for external tools
//   - XLSX: one spreadsheet row per placed tag
//
// Every sink draws the same tag faces: content selection and currency are
// turned into a [render.Face] per placement and stacked with [render.Arrange].
//
// # SVG Output
//
// [RenderSVG] barcodes and QR codes are drawn as labelled stand-ins. Use the
// PDF sink when scannable symbols are required.
//
// # Raster Output
//
// [RenderPNG] requires librsvg:
//
//	brew install librsvg       # macOS
//	apt install librsvg2-bin   # Debian/Ubuntu
package sink
