package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/comiccon2025/comicpage/pkg/cache"
	"github.com/comiccon2025/comicpage/pkg/errors"
	"github.com/comiccon2025/comicpage/pkg/observability"
	"github.com/comiccon2025/comicpage/pkg/scene"
)

// Runner executes the pipeline with caching. It holds no per-run state, so
// one Runner can serve concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// means the default keyer.
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
	return &Runner{Cache: c, Keyer: keyer, Logger: logger, TTL: DefaultTTL}
}

// DocumentHash identifies doc's content for cache keys.
func DocumentHash(doc *scene.Document) (string, error) {
	data, err := doc.Encode(scene.FormatJSON)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}

// Execute renders every requested format of doc. Formats render in
// parallel; each is looked up in the cache first unless opts.Refresh is set.
func (r *Runner) Execute(ctx context.Context, doc *scene.Document, opts Options) (*Result, error) {
	if doc == nil || doc.Catalog == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no scene document")
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	hash, err := DocumentHash(doc)
	if err != nil {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
		return nil, err
	}

	layoutStart := time.Now()
	rd := newRenderer(doc, opts)
	hooks.OnLayout(ctx, "procgraph", len(rd.layout.Capsules)+len(rd.layout.Segments), time.Since(layoutStart))
	hooks.OnLayout(ctx, "spectral", len(rd.panel.Bars), 0)
	hooks.OnLayout(ctx, "pulse", len(rd.cells), 0)

	result := &Result{
		DocumentHash: hash,
		Artifacts:    make(map[string][]byte, len(opts.Formats)),
		Stats: Stats{
			Scenes:       doc.Catalog.Len(),
			Nodes:        len(rd.layout.Capsules),
			Segments:     len(rd.layout.Segments),
			DroppedEdges: rd.layout.Dropped,
			Bars:         len(rd.panel.Bars),
			PulseCells:   len(rd.cells),
		},
	}
	if rd.layout.Dropped > 0 {
		r.Logger.Warn("skipped edges with unknown endpoints", "count", rd.layout.Dropped)
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			data, hit, err := r.artifact(gctx, rd, hash, format)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			result.Artifacts[format] = data
			if hit {
				result.CacheInfo.Hits = append(result.CacheInfo.Hits, format)
			}
			return nil
		})
	}
	err = g.Wait()
	result.Stats.RenderTime = time.Since(start)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("rendered",
		"formats", opts.Formats,
		"cached", result.CacheInfo.Hits,
		"duration", result.Stats.RenderTime)
	return result, nil
}

func (r *Runner) artifact(ctx context.Context, rd *renderer, hash, format string) ([]byte, bool, error) {
	key := r.Keyer.ArtifactKey(hash, rd.opts.ArtifactKeyOpts(format))
	ch := observability.Cache()

	if !rd.opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Debug("cache read failed", "format", format, "err", err)
		} else if hit {
			ch.OnCacheHit(ctx, format)
			return data, true, nil
		}
		ch.OnCacheMiss(ctx, format)
	}

	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	data, err := rd.render(format)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Debug("cache write failed", "format", format, "err", err)
	} else {
		ch.OnCacheSet(ctx, format, len(data))
	}
	return data, false, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
