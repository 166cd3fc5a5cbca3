package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/comiccon2025/comicpage/pkg/cache"
)

func TestClearCache(t *testing.T) {
	c := newTestCLI(t)
	c.Config.CacheDir = t.TempDir()

	fc, err := cache.NewFileCache(c.Config.CacheDir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, k := range []string{"a", "b", "c"} {
		if err := fc.Set(ctx, k, []byte(k), time.Hour); err != nil {
			t.Fatal(err)
		}
	}

	if err := c.clearCache(ctx); err != nil {
		t.Fatalf("clearCache: %v", err)
	}
	if _, hit, _ := fc.Get(ctx, "a"); hit {
		t.Error("entry survived clear")
	}
}

func TestClearCacheMissingDir(t *testing.T) {
	c := newTestCLI(t)
	c.Config.CacheDir = filepath.Join(t.TempDir(), "never-created")
	if err := c.clearCache(context.Background()); err != nil {
		t.Fatalf("clearCache: %v", err)
	}
	if _, err := os.Stat(c.Config.CacheDir); !os.IsNotExist(err) {
		t.Error("clear should not create the directory")
	}
}

func TestNewCacheSelectsBackend(t *testing.T) {
	c := newTestCLI(t)
	c.Config.CacheDir = t.TempDir()

	cc, err := c.newCache(true)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cc.(*cache.NullCache); !ok {
		t.Errorf("noCache gave %T", cc)
	}

	cc, err = c.newCache(false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cc.(*cache.FileCache); !ok {
		t.Errorf("default gave %T", cc)
	}

	c.Config.RedisURL = "redis://localhost:6379/0"
	cc, err = c.newCache(false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cc.(*cache.RedisCache); !ok {
		t.Errorf("redis url gave %T", cc)
	}
	cc.Close()
}
