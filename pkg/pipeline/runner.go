package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tagsheet/pkg/cache"
	"github.com/matzehuels/tagsheet/pkg/layout"
	"github.com/matzehuels/tagsheet/pkg/observability"
	"github.com/matzehuels/tagsheet/pkg/tag"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    DefaultTTL,
	}
}

// Plan lays out products without rendering.
//
// An empty product list or an empty content selection yields a sheet with
// zero pages; a tag that does not fit the paper is an ErrCodeZeroCapacity
// error.
func (r *Runner) Plan(ctx context.Context, products []tag.Product, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForPlan(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	size, err := tag.SizeByID(opts.SizeID)
	if err != nil {
		return nil, err
	}
	paper, err := tag.PaperByName(opts.Paper)
	if err != nil {
		return nil, err
	}

	result := &Result{Artifacts: make(map[string][][]byte)}
	result.Stats.Products = len(products)

	selection := products
	if len(opts.Content) == 0 {
		opts.Logger.Warn("no tag content selected, nothing to print")
		selection = nil
	}
	tagCount, err := layout.CountTags(selection)
	if err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnPlanStart(ctx, opts.Paper, opts.SizeID, tagCount)
	start := time.Now()
	sheet, err := layout.Plan(selection, size, paper)
	result.Stats.PlanTime = time.Since(start)
	pages := 0
	if sheet != nil {
		pages = len(sheet.Pages)
	}
	hooks.OnPlanComplete(ctx, opts.Paper, opts.SizeID, pages, result.Stats.PlanTime, err)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}

	result.Sheet = sheet
	result.Stats.Tags = sheet.TagCount()
	result.Stats.Pages = pages

	productsHash, err := cache.HashJSON(products)
	if err != nil {
		return nil, fmt.Errorf("hash products: %w", err)
	}
	result.PlanHash = cache.Hash([]byte(r.Keyer.PlanKey(productsHash, opts.PlanKeyOpts())))

	opts.Logger.Info("planned layout",
		"size", size.Label,
		"paper", paper.Label,
		"capacity", sheet.Capacity.String(),
		"tags", result.Stats.Tags,
		"pages", pages)

	return result, nil
}

// Render plans products and renders every requested format, reusing cached
// artifacts where possible.
func (r *Runner) Render(ctx context.Context, products []tag.Product, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result, err := r.Plan(ctx, products, opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	artifacts, hits, err := r.renderWithCache(ctx, result, opts)
	result.Stats.RenderTime = time.Since(start)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}

	result.Artifacts = artifacts
	result.CacheInfo.Hits = hits
	result.CacheInfo.RenderHit = len(hits) == len(opts.Formats)

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", len(hits),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderWithCache serves each format from cache or renders and stores it.
func (r *Runner) renderWithCache(ctx context.Context, result *Result, opts Options) (map[string][][]byte, []string, error) {
	cacheHooks := observability.Cache()
	artifacts := make(map[string][][]byte, len(opts.Formats))
	var hits, missing []string

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(result.PlanHash, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				var files [][]byte
				if err := json.Unmarshal(data, &files); err == nil {
					cacheHooks.OnCacheHit(ctx, "artifact")
					hits = append(hits, format)
					if len(files) > 0 {
						artifacts[format] = files
					}
					continue
				}
			} else if err != nil {
				opts.Logger.Warn("cache read failed", "format", format, "error", err)
			}
		}
		cacheHooks.OnCacheMiss(ctx, "artifact")
		missing = append(missing, format)
	}

	if len(missing) == 0 {
		return artifacts, hits, nil
	}

	renderOpts := opts
	renderOpts.Formats = missing
	rendered, err := RenderSheet(result.Sheet, renderOpts)
	if err != nil {
		return nil, nil, err
	}

	for _, format := range missing {
		files := rendered[format]
		if len(files) > 0 {
			artifacts[format] = files
		}
		data, err := json.Marshal(files)
		if err != nil {
			continue
		}
		key := r.Keyer.ArtifactKey(result.PlanHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "error", err)
			continue
		}
		cacheHooks.OnCacheSet(ctx, "artifact", len(data))
	}

	return artifacts, hits, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
