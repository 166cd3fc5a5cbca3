// Package config loads comicpage settings from an optional TOML file and
// COMICPAGE_* environment variables. The environment wins over the file.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/comiccon2025/comicpage/pkg/errors"
	"github.com/comiccon2025/comicpage/pkg/render/pulse"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "COMICPAGE_"

type Config struct {
	Addr string `toml:"addr"`

	// Catalog is a scene catalog file. Empty means the built-in issue.
	Catalog string `toml:"catalog"`

	// Cache
	CacheDir string        `toml:"cache_dir"`
	RedisURL string        `toml:"redis_url"`
	CacheTTL time.Duration `toml:"-"`
	TTL      string        `toml:"cache_ttl"`
	NoCache  bool          `toml:"no_cache"`

	// Rendering
	Style          string `toml:"style"`
	Seed           uint64 `toml:"seed"`
	Viewport       string `toml:"viewport"`
	ResizeEndpoint string `toml:"resize_endpoint"`

	LogLevel string `toml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:     ":8080",
		CacheDir: DefaultCacheDir(),
		CacheTTL: 24 * time.Hour,
		Style:    "simple",
		Seed:     42,
		LogLevel: "info",
	}
}

// DefaultCacheDir is ~/.cache/comicpage, or a temp dir when there is no home.
func DefaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "comicpage")
	}
	return filepath.Join(os.TempDir(), "comicpage")
}

// Load reads path (if non-empty) over the defaults, then applies the
// environment. A missing path is an error; an empty path is not.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return cfg, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
			}
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
		}
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return cfg, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, keys[0].String())
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if cfg.TTL != "" {
		d, err := time.ParseDuration(cfg.TTL)
		if err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cache_ttl")
		}
		cfg.CacheTTL = d
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	str("ADDR", &c.Addr)
	str("CATALOG", &c.Catalog)
	str("CACHE_DIR", &c.CacheDir)
	str("REDIS_URL", &c.RedisURL)
	str("CACHE_TTL", &c.TTL)
	str("STYLE", &c.Style)
	str("VIEWPORT", &c.Viewport)
	str("RESIZE_ENDPOINT", &c.ResizeEndpoint)
	str("LOG_LEVEL", &c.LogLevel)

	if v, ok := lookup(EnvPrefix + "SEED"); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%sSEED", EnvPrefix)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvPrefix + "NO_CACHE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%sNO_CACHE", EnvPrefix)
		}
		c.NoCache = b
	}
	return nil
}

// Validate checks the values the file and environment can get wrong.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "addr is required")
	}
	if c.CacheTTL <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache_ttl must be positive")
	}
	if c.Style != "simple" && c.Style != "handdrawn" {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style %q (must be one of: simple, handdrawn)", c.Style)
	}
	if _, err := c.DefaultViewport(); err != nil {
		return err
	}
	return nil
}

// DefaultViewport parses Viewport; nil when unset.
func (c Config) DefaultViewport() (*pulse.Viewport, error) {
	if c.Viewport == "" {
		return nil, nil
	}
	vp, err := pulse.ParseViewport(c.Viewport)
	if err != nil {
		return nil, err
	}
	return &vp, nil
}
