// Package config loads tagsheet settings from defaults, an optional
// tagsheet.toml file and TAGSHEET_* environment variables, in increasing
// order of precedence. Command-line flags are applied on top by the CLI.
//
// Environment keys mirror the file structure with dots replaced by
// underscores, e.g. TAGSHEET_CACHE_BACKEND=redis or
// TAGSHEET_LAYOUT_CONTENT=productName,salePrice.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	tserrors "github.com/matzehuels/tagsheet/pkg/errors"
	"github.com/matzehuels/tagsheet/pkg/pipeline"
	"github.com/matzehuels/tagsheet/pkg/tag"
)

// FileName is the config file looked up in the search paths.
const FileName = "tagsheet"

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "TAGSHEET"

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Config is the full tagsheet configuration.
type Config struct {
	Layout Layout `mapstructure:"layout"`
	Render Render `mapstructure:"render"`
	Server Server `mapstructure:"server"`
	Cache  Cache  `mapstructure:"cache"`
	Log    Log    `mapstructure:"log"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// Layout holds the default plan options.
type Layout struct {
	Paper    string   `mapstructure:"paper"`
	Size     int      `mapstructure:"size"`
	Content  []string `mapstructure:"content"`
	Currency string   `mapstructure:"currency"`
}

// Render holds the default output options of the render command.
type Render struct {
	Formats  []string `mapstructure:"formats"`
	Scale    float64  `mapstructure:"scale"`
	Output   string   `mapstructure:"output"`
	Outlines bool     `mapstructure:"outlines"`
}

// Server configures the HTTP API.
type Server struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Metrics      bool          `mapstructure:"metrics"`
}

// Cache selects and tunes the artifact cache backend.
type Cache struct {
	Backend string        `mapstructure:"backend"`
	Dir     string        `mapstructure:"dir"` // File backend; empty uses the user cache dir
	TTL     time.Duration `mapstructure:"ttl"`

	// Namespace prefixes every cache key, so deployments sharing a
	// backend do not serve each other's artifacts.
	Namespace string `mapstructure:"namespace"`

	Redis Redis `mapstructure:"redis"`
}

// Redis configures the redis cache backend.
type Redis struct {
	Addr   string `mapstructure:"addr"`
	Prefix string `mapstructure:"prefix"`
}

// Log configures the CLI logger.
type Log struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration. When path is empty, tagsheet.toml is searched
// in the working directory and the user config directory; a missing file is
// not an error. An explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "tagsheet"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration without reading files or
// environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	content := make([]string, len(pipeline.DefaultContent))
	for i, c := range pipeline.DefaultContent {
		content[i] = string(c)
	}

	v.SetDefault("layout.paper", string(tag.DefaultPaper))
	v.SetDefault("layout.size", tag.DefaultSizeID)
	v.SetDefault("layout.content", content)
	v.SetDefault("layout.currency", "₹")

	v.SetDefault("render.formats", []string{pipeline.FormatSVG})
	v.SetDefault("render.scale", pipeline.DefaultScale)
	v.SetDefault("render.output", ".")
	v.SetDefault("render.outlines", true)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.metrics", true)

	v.SetDefault("cache.backend", CacheFile)
	v.SetDefault("cache.dir", "")
	v.SetDefault("cache.ttl", pipeline.DefaultTTL)
	v.SetDefault("cache.namespace", "")
	v.SetDefault("cache.redis.addr", "")
	v.SetDefault("cache.redis.prefix", "tagsheet:")

	v.SetDefault("log.level", "info")
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case CacheFile, CacheNone:
	case CacheRedis:
		if c.Cache.Redis.Addr == "" {
			return tserrors.New(tserrors.ErrCodeInvalidInput, "cache.redis.addr is required for the redis backend")
		}
	default:
		return tserrors.New(tserrors.ErrCodeInvalidInput,
			"invalid cache backend: %q (must be one of: file, redis, none)", c.Cache.Backend)
	}
	_, err := c.Options()
	return err
}

// Options converts layout and render settings into pipeline options.
// The options are checked but left unvalidated so callers can still
// override fields.
func (c *Config) Options() (pipeline.Options, error) {
	content, err := tag.ParseContentList(strings.Join(c.Layout.Content, ","))
	if err != nil {
		return pipeline.Options{}, err
	}
	if content == nil {
		content = []tag.Content{}
	}
	opts := pipeline.Options{
		Paper:      c.Layout.Paper,
		SizeID:     c.Layout.Size,
		Content:    content,
		Formats:    c.Render.Formats,
		Scale:      c.Render.Scale,
		Currency:   c.Layout.Currency,
		NoOutlines: !c.Render.Outlines,
	}
	check := opts
	if err := check.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}
