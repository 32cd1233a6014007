// Package pipeline provides the plan → render pipeline for tagsheet.
//
// This package is the single entry point used by both the CLI and the HTTP
// API. Centralizing it keeps validation, defaults and caching identical
// across entry points.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Plan: resolve tag size and paper, expand copies, paginate
//  2. Render: turn the planned sheet into SVG, PNG, PDF, JSON or XLSX
//
// Planning is pure and cheap, so only rendered artifacts are cached.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Render(ctx, products, pipeline.Options{
//	    Paper:   "a4",
//	    SizeID:  17,
//	    Formats: []string{"pdf"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pdf := result.Artifacts["pdf"][0]
//
// SVG and PNG yield one document per page; every other format yields one.
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tagsheet/pkg/cache"
	"github.com/matzehuels/tagsheet/pkg/errors"
	"github.com/matzehuels/tagsheet/pkg/layout"
	"github.com/matzehuels/tagsheet/pkg/render"
	"github.com/matzehuels/tagsheet/pkg/tag"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultScale is the PNG resolution multiplier.
	DefaultScale = 2.0

	// DefaultTTL is how long rendered artifacts stay cached.
	DefaultTTL = 24 * time.Hour
)

// DefaultContent is printed when no content selection is given.
var DefaultContent = []tag.Content{
	tag.ContentProductName,
	tag.ContentProductCode,
	tag.ContentBarcode,
	tag.ContentSalePrice,
}

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatXLSX: true,
}

// pageFormats draw tag faces and need at least one page.
var pageFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
}

// ContentTypes maps formats to MIME types.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Plan options
	Paper  string `json:"paper,omitempty"`
	SizeID int    `json:"size_id,omitempty"`

	// Content selection. Nil selects DefaultContent; an empty, non-nil
	// selection plans zero pages.
	Content []tag.Content `json:"content"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	Currency   string   `json:"currency,omitempty"`
	NoOutlines bool     `json:"no_outlines,omitempty"`
	Faces      bool     `json:"faces,omitempty"` // Include tag faces in JSON output
	Refresh    bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Sheet is the planned layout.
	Sheet *layout.Sheet

	// PlanHash identifies the plan inputs; artifact cache keys derive from it.
	PlanHash string

	// Artifacts contains rendered outputs keyed by format, one entry per file.
	Artifacts map[string][][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which formats hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Products   int
	Tags       int
	Pages      int
	PlanTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits during rendering.
type CacheInfo struct {
	Hits      []string // Formats served from cache
	RenderHit bool     // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, xlsx)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma separated format list, dropping blanks and
// duplicates.
func ParseFormats(s string) ([]string, error) {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || slices.Contains(out, f) {
			continue
		}
		if err := ValidateFormat(f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForPlan(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForPlan applies plan defaults and checks paper, size and content.
func (o *Options) ValidateForPlan() error {
	if o.Paper == "" {
		o.Paper = string(tag.DefaultPaper)
	}
	if o.SizeID == 0 {
		o.SizeID = tag.DefaultSizeID
	}
	if o.Content == nil {
		o.Content = slices.Clone(DefaultContent)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	paper, err := tag.PaperByName(o.Paper)
	if err != nil {
		return err
	}
	o.Paper = string(paper.Name)
	if _, err := tag.SizeByID(o.SizeID); err != nil {
		return err
	}
	for _, c := range o.Content {
		if !c.Valid() {
			return errors.New(errors.ErrCodeInvalidContent, "invalid tag content: %q", string(c))
		}
	}
	o.Content = tag.NormalizeContent(o.Content)
	return nil
}

// ValidateForRender applies render defaults and checks formats.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.Currency == "" {
		o.Currency = render.DefaultCurrency
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return ValidateFormats(o.Formats)
}

// PlanKeyOpts returns cache key options for planning.
func (o *Options) PlanKeyOpts() cache.PlanKeyOpts {
	return cache.PlanKeyOpts{Paper: o.Paper, SizeID: o.SizeID}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	content := make([]string, len(o.Content))
	for i, c := range o.Content {
		content[i] = string(c)
	}
	k := cache.ArtifactKeyOpts{
		Format:   format,
		Content:  content,
		Currency: o.Currency,
		Outlines: !o.NoOutlines,
	}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	if format == FormatJSON && o.Faces {
		k.Format = "json+faces"
	}
	return k
}
