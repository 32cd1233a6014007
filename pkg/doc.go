// Package pkg provides the core libraries for tagsheet price tag layout.
//
// # Overview
//
// Tagsheet prints product price tags on A4 and A3 paper. Given a product
// catalogue, a tag size and the fields to print, it computes how many tags
// fit on one page, splits the tags into pages and renders the sheets.
//
// # Architecture
//
// Data flows one way:
//
//	Product file (JSON, TOML, CSV)
//	         ↓
//	    [io] / [catalog] (read, validate, edit)
//	         ↓
//	    [layout] (capacity grid + pagination)
//	         ↓
//	    [render] (tag faces) → [render/sink] (SVG, PNG, PDF, JSON, XLSX)
//
// [pipeline] wraps the last two steps with caching and hooks and is the
// single entry point for the CLI and the HTTP API.
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/tagsheet/pkg/io"
//	    "github.com/matzehuels/tagsheet/pkg/layout"
//	    "github.com/matzehuels/tagsheet/pkg/render/sink"
//	    "github.com/matzehuels/tagsheet/pkg/tag"
//	)
//
//	products, _ := io.Import("products.csv")
//	size, _ := tag.SizeByID(17)
//	paper, _ := tag.PaperByName("a4")
//
//	sheet, err := layout.Plan(products, size, paper)
//	if errors.Is(err, errors.ErrCodeZeroCapacity) {
//	    // the tag is larger than the paper
//	}
//	pages := sink.RenderSVG(sheet, tag.AllContent())
//
// # Main Packages
//
// ## Domain
//
// [tag] - Products, the 17-entry tag-size catalogue, paper sizes and content
// kinds.
//
// [layout] - Grid capacity and pagination. Pure and deterministic.
//
// [suggest] - Suggested tag sizes for a content selection.
//
// [catalog] - Immutable add, update, remove and select over product lists.
//
// ## Rendering
//
// [render] - Tag faces: which lines, codes and prices a tag shows and where
// they go inside the tag.
//
// [render/sink] - Output formats. SVG and PNG produce one document per page;
// PDF, JSON and XLSX produce one document per sheet.
//
// ## Infrastructure
//
// [pipeline] - Plan and render with caching. Used by CLI and API.
//
// [cache] - Content-addressed artifact cache with file, Redis and null
// backends.
//
// [observability] - Hook interfaces with a Prometheus implementation.
//
// [config] - Defaults, tagsheet.toml and TAGSHEET_* environment overrides.
//
// [api] - HTTP API.
//
// [errors] - Coded errors shared by every package.
//
// # Testing
//
//	go test ./...                        # All tests
//	go test ./pkg/layout/...             # Specific package
//	go test -run Example ./pkg/...       # Examples only
//
// [tag]: https://pkg.go.dev/github.com/matzehuels/tagsheet/pkg/tag
// [layout]: https://pkg.go.dev/github.com/matzehuels/tagsheet/pkg/layout
// [suggest]: https://pkg.go.dev/github.com/matzehuels/tagsheet/pkg/suggest
// [catalog]: https://pkg.go.dev/github.com/matzehuels/tagsheet/pkg/catalog
// [io]: https://pkg.go.dev/github.com/matzehuels/tagsheet/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/tagsheet/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/tagsheet/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/tagsheet/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/tagsheet/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/tagsheet/pkg/observability
// [config]: https://pkg.go.dev/github.com/matzehuels/tagsheet/pkg/config
// [api]: https://pkg.go.dev/github.com/matzehuels/tagsheet/pkg/api
// [errors]: https://pkg.go.dev/github.com/matzehuels/tagsheet/pkg/errors
package pkg
