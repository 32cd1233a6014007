// Package cli implements the tagsheet command-line interface.
package cli

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tagsheet/pkg/cache"
	"github.com/matzehuels/tagsheet/pkg/config"
	"github.com/matzehuels/tagsheet/pkg/pipeline"
	"github.com/matzehuels/tagsheet/pkg/tag"
)

// appName is the application name used for directories and display.
const appName = "tagsheet"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any subcommand runs.
	Config *config.Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	c.verbose = level == log.DebugLevel
}

// loadConfig reads the config file and applies its log level unless
// --verbose was given.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	if !c.verbose && cfg.Log.Level != "" {
		level, err := log.ParseLevel(cfg.Log.Level)
		if err != nil {
			return err
		}
		c.Logger.SetLevel(level)
	}
	if cfg.File != "" {
		c.Logger.Debug("loaded config", "file", cfg.File)
	}
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if ns := c.Config.Cache.Namespace; ns != "" {
		keyer = cache.NewScopedKeyer(nil, ns)
	}
	r := pipeline.NewRunner(cc, keyer, c.Logger)
	if c.Config.Cache.TTL > 0 {
		r.TTL = c.Config.Cache.TTL
	}
	return r, nil
}

// newCache opens the configured cache backend. A file cache that cannot be
// created degrades to no caching.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	cfg := c.Config.Cache
	if noCache || cfg.Backend == config.CacheNone {
		return cache.NewNullCache(), nil
	}
	if cfg.Backend == config.CacheRedis {
		rc, err := cache.NewRedisCache(ctx, cfg.Redis.Addr, cfg.Redis.Prefix)
		if err != nil {
			return nil, err
		}
		return rc, nil
	}

	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("cache disabled", "dir", dir, "error", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// cacheDir returns the configured cache directory or the per-user default.
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return cache.DefaultDir()
}

// =============================================================================
// Options Helpers
// =============================================================================

// layoutFlags are the plan options shared by plan, render and sizes.
type layoutFlags struct {
	paper    string
	size     int
	content  string
	currency string
	ids      string // plan and render only
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.paper, "paper", "", "paper size: a4 (default), a3")
	fs.IntVar(&f.size, "size", 0, "tag size id from 'tagsheet sizes'")
	fs.StringVar(&f.content, "content", "", "tag content (comma-separated, 'none' for an empty selection)")
	fs.StringVar(&f.currency, "currency", "", "currency symbol printed before prices")
	registerLayoutCompletions(cmd)
}

// options merges the flags of cmd over the configured defaults.
func (c *CLI) options(cmd *cobra.Command, f layoutFlags) (pipeline.Options, error) {
	opts, err := c.Config.Options()
	if err != nil {
		return opts, err
	}
	opts.Logger = c.Logger
	if f.paper != "" {
		opts.Paper = f.paper
	}
	if f.size != 0 {
		opts.SizeID = f.size
	}
	if f.currency != "" {
		opts.Currency = f.currency
	}
	if cmd.Flags().Changed("content") {
		content, err := parseContentFlag(f.content)
		if err != nil {
			return opts, err
		}
		opts.Content = content
	}
	return opts, nil
}

// parseContentFlag parses --content. "none" and the empty string select
// nothing, which plans zero pages.
func parseContentFlag(s string) ([]tag.Content, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return []tag.Content{}, nil
	}
	return tag.ParseContentList(s)
}
