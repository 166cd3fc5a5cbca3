// Package cache stores rendered artifacts so repeated renders of an
// unchanged catalog skip the generators.
//
// # Backends
//
//   - [NullCache]: never stores anything (--no-cache, tests)
//   - [FileCache]: one JSON file per entry under a directory (CLI)
//   - [RedisCache]: shared cache for `comicpage serve` replicas
//
// # Keys
//
// Keys come from a [Keyer] so that every backend sees the same layout:
//
//	k := cache.NewDefaultKeyer()
//	key := k.ArtifactKey(doc.Hash(), cache.ArtifactKeyOpts{Format: "svg", Style: "handdrawn"})
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional per-entry expiry. A zero ttl means
// the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
