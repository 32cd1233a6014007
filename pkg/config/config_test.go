package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/matzehuels/tagsheet/pkg/errors"
	"github.com/matzehuels/tagsheet/pkg/tag"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.File != "" {
		t.Errorf("File = %q, want none", cfg.File)
	}
	if cfg.Layout.Paper != "a4" || cfg.Layout.Size != 17 {
		t.Errorf("Layout = %+v", cfg.Layout)
	}
	if want := []string{"productName", "productCode", "barcode", "salePrice"}; !reflect.DeepEqual(cfg.Layout.Content, want) {
		t.Errorf("Content = %v, want %v", cfg.Layout.Content, want)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Cache.Backend != CacheFile || cfg.Cache.TTL != 24*time.Hour || cfg.Cache.Redis.Addr != "" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if !reflect.DeepEqual(cfg.Render.Formats, []string{"svg"}) {
		t.Errorf("Formats = %v", cfg.Render.Formats)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	toml := `
[layout]
paper = "a3"
size = 14
content = ["qrCode", "basePrice"]

[cache]
backend = "none"
ttl = "1h"
`
	if err := os.WriteFile(filepath.Join(dir, "tagsheet.toml"), []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if filepath.Base(cfg.File) != "tagsheet.toml" {
		t.Errorf("File = %q", cfg.File)
	}
	if cfg.Layout.Paper != "a3" || cfg.Layout.Size != 14 {
		t.Errorf("Layout = %+v", cfg.Layout)
	}
	if cfg.Cache.Backend != CacheNone || cfg.Cache.TTL != time.Hour {
		t.Errorf("Cache = %+v", cfg.Cache)
	}

	opts, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	if want := []tag.Content{tag.ContentQRCode, tag.ContentBasePrice}; !reflect.DeepEqual(opts.Content, want) {
		t.Errorf("Options().Content = %v, want %v", opts.Content, want)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TAGSHEET_LAYOUT_PAPER", "a3")
	t.Setenv("TAGSHEET_LAYOUT_SIZE", "12")
	t.Setenv("TAGSHEET_SERVER_ADDR", ":9090")
	t.Setenv("TAGSHEET_CACHE_BACKEND", "redis")
	t.Setenv("TAGSHEET_CACHE_REDIS_ADDR", "localhost:6379")
	t.Setenv("TAGSHEET_CACHE_NAMESPACE", "staging:")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Layout.Paper != "a3" || cfg.Layout.Size != 12 {
		t.Errorf("Layout = %+v", cfg.Layout)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Cache.Backend != CacheRedis || cfg.Cache.Redis.Addr != "localhost:6379" || cfg.Cache.Namespace != "staging:" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("explicit missing config should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		code   errors.Code
	}{
		{"backend", func(c *Config) { c.Cache.Backend = "memcached" }, errors.ErrCodeInvalidInput},
		{"redis addr", func(c *Config) { c.Cache.Backend = CacheRedis }, errors.ErrCodeInvalidInput},
		{"paper", func(c *Config) { c.Layout.Paper = "legal" }, errors.ErrCodeInvalidPaper},
		{"size", func(c *Config) { c.Layout.Size = 42 }, errors.ErrCodeUnknownSize},
		{"content", func(c *Config) { c.Layout.Content = []string{"logo"} }, errors.ErrCodeInvalidContent},
		{"format", func(c *Config) { c.Render.Formats = []string{"bmp"} }, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.code) {
				t.Errorf("Validate() = %v, want %s", err, tt.code)
			}
		})
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestOptionsEmptyContent(t *testing.T) {
	cfg := Default()
	cfg.Layout.Content = nil
	opts, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Content == nil || len(opts.Content) != 0 {
		t.Errorf("Content = %#v, want empty selection", opts.Content)
	}
}
