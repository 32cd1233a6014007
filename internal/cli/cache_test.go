package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/tagsheet/pkg/cache"
	"github.com/matzehuels/tagsheet/pkg/config"
)

func TestCacheDirFromConfig(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	c.Config.Cache.Dir = "/tmp/tags"
	if dir, err := c.cacheDir(); err != nil || dir != "/tmp/tags" {
		t.Errorf("cacheDir() = %q, %v", dir, err)
	}

	c.Config.Cache.Dir = ""
	dir, err := c.cacheDir()
	if err != nil {
		t.Skipf("no user cache dir: %v", err)
	}
	if filepath.Base(dir) != appName {
		t.Errorf("cacheDir() = %q, should end with %q", dir, appName)
	}
}

func TestNewCacheBackends(t *testing.T) {
	ctx := context.Background()
	c := New(&bytes.Buffer{}, LogInfo)
	c.Config.Cache.Dir = t.TempDir()

	tests := []struct {
		name    string
		backend string
		noCache bool
		want    string
	}{
		{"file", config.CacheFile, false, "*cache.FileCache"},
		{"none", config.CacheNone, false, "*cache.NullCache"},
		{"no-cache flag", config.CacheFile, true, "*cache.NullCache"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.Config.Cache.Backend = tt.backend
			cc, err := c.newCache(ctx, tt.noCache)
			if err != nil {
				t.Fatal(err)
			}
			defer cc.Close()
			switch cc.(type) {
			case *cache.FileCache:
				if tt.want != "*cache.FileCache" {
					t.Errorf("got FileCache, want %s", tt.want)
				}
			case *cache.NullCache:
				if tt.want != "*cache.NullCache" {
					t.Errorf("got NullCache, want %s", tt.want)
				}
			}
		})
	}
}

func TestNewRunnerNamespace(t *testing.T) {
	ctx := context.Background()
	c := New(&bytes.Buffer{}, LogInfo)
	c.Config.Cache.Backend = config.CacheNone

	r, err := c.newRunner(ctx, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.Keyer.(cache.DefaultKeyer); !ok {
		t.Errorf("Keyer = %T, want cache.DefaultKeyer", r.Keyer)
	}

	c.Config.Cache.Namespace = "shop-2:"
	r, err = c.newRunner(ctx, false)
	if err != nil {
		t.Fatal(err)
	}
	key := r.Keyer.ArtifactKey("h", cache.ArtifactKeyOpts{Format: "svg"})
	if !strings.HasPrefix(key, "shop-2:artifact:") {
		t.Errorf("ArtifactKey = %q, want shop-2: prefix", key)
	}
}

func TestCacheClearCommand(t *testing.T) {
	c := newTestCLI(t)
	dir := t.TempDir()
	t.Setenv("TAGSHEET_CACHE_DIR", dir)

	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"artifact:a", "artifact:b"} {
		if err := fc.Set(context.Background(), key, []byte("x"), time.Hour); err != nil {
			t.Fatal(err)
		}
	}

	if err := run(t, c, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if _, ok, _ := fc.Get(context.Background(), "artifact:a"); ok {
		t.Error("entry should be gone after cache clear")
	}
}
