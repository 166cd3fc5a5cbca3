package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/comiccon2025/comicpage/pkg/errors"
	"github.com/comiccon2025/comicpage/pkg/observability"
	"github.com/comiccon2025/comicpage/pkg/pipeline"
	"github.com/comiccon2025/comicpage/pkg/render/pulse"
	"github.com/comiccon2025/comicpage/pkg/scene"
)

// renderOptions reads the per-request overrides (?style=, ?seed=).
func (s *Server) renderOptions(r *http.Request, format string) (pipeline.Options, error) {
	opts := pipeline.Options{
		Formats:        []string{format},
		Style:          s.opts.Style,
		Seed:           s.opts.Seed,
		Viewport:       s.opts.Viewport,
		Title:          s.opts.Title,
		ResizeEndpoint: PulsePath,
	}
	q := r.URL.Query()
	if v := q.Get("style"); v != "" {
		opts.Style = v
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid seed %q", v)
		}
		opts.Seed = seed
	}
	return opts, opts.ValidateAndSetDefaults()
}

// render runs the pipeline for one format. Identical concurrent requests
// share a run; the run outlives a cancelled caller so the others still get
// their bytes.
func (s *Server) render(ctx context.Context, key string, doc *scene.Document, opts pipeline.Options) ([]byte, error) {
	format := opts.Formats[0]
	key = format + "|" + opts.Style + "|" + strconv.FormatUint(opts.Seed, 10) + "|" + key
	v, err, _ := s.renders.Do(key, func() (any, error) {
		res, err := s.runner.Execute(context.WithoutCancel(ctx), doc, opts)
		if err != nil {
			return nil, err
		}
		return res.Artifacts[format], nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (s *Server) artifactHandler(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := s.renderOptions(r, format)
		if err != nil {
			writeError(w, err)
			return
		}
		data, err := s.render(r.Context(), "", s.doc, opts)
		if err != nil {
			s.log.Error("render failed", "format", format, "err", err)
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(data)
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.artifactHandler(pipeline.FormatHTML, "text/html; charset=utf-8")(w, r)
}

// handleScene renders a page holding a single scene.
func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sceneID")
	sc, ok := s.doc.Catalog.Lookup(id)
	if !ok {
		writeError(w, errors.New(errors.ErrCodeNotFound, "scene %q not found", id))
		return
	}
	opts, err := s.renderOptions(r, pipeline.FormatHTML)
	if err != nil {
		writeError(w, err)
		return
	}
	opts.NoNav = true
	opts.Title = sc.Title

	doc := *s.doc
	doc.Catalog = scene.MustCatalog(sc)
	data, err := s.render(r.Context(), "scene:"+id, &doc, opts)
	if err != nil {
		s.log.Error("render failed", "scene", id, "err", err)
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}

func (s *Server) handleListScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"scenes": pipeline.SceneEntries(s.doc.Catalog),
	})
}

func (s *Server) handleGetScene(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sceneID")
	sc, ok := s.doc.Catalog.Lookup(id)
	if !ok {
		writeError(w, errors.New(errors.ErrCodeNotFound, "scene %q not found", id))
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

// handlePulse answers the page's resize requests with a fresh cell set.
// Without w and h there is no viewport and the set is empty.
func (s *Server) handlePulse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	seed := s.opts.Seed
	if v := q.Get("seed"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid seed %q", v))
			return
		}
		seed = parsed
	}

	var vp *pulse.Viewport
	width, height := strings.TrimSpace(q.Get("w")), strings.TrimSpace(q.Get("h"))
	if width != "" || height != "" {
		parsed, err := pulse.ParseViewport(width + "x" + height)
		if err != nil {
			writeError(w, err)
			return
		}
		vp = &parsed
	}

	cells, err := s.pulseCells(r.Context(), seed, vp)
	if err != nil {
		s.log.Error("pulse failed", "err", err)
		writeError(w, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, pipeline.PulseFrame{
		Generation: uuid.NewString(),
		Viewport:   vp,
		Cells:      cells,
	})
}

func (s *Server) pulseCells(ctx context.Context, seed uint64, vp *pulse.Viewport) ([]pipeline.PulseCell, error) {
	if vp == nil {
		return []pipeline.PulseCell{}, nil
	}
	key := s.runner.Keyer.PulseKey(seed, vp.String())
	v, err, _ := s.renders.Do(key, func() (any, error) {
		ctx := context.WithoutCancel(ctx)
		hooks := observability.Cache()
		if data, hit, err := s.runner.Cache.Get(ctx, key); err == nil && hit {
			var cells []pipeline.PulseCell
			if err := json.Unmarshal(data, &cells); err == nil {
				hooks.OnCacheHit(ctx, "pulse")
				return cells, nil
			}
		}
		hooks.OnCacheMiss(ctx, "pulse")

		cells := pipeline.PulseCells(pipeline.Pulse(s.doc, seed, vp))
		data, err := json.Marshal(cells)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode pulse cells")
		}
		if err := s.runner.Cache.Set(ctx, key, data, s.runner.TTL); err != nil {
			s.log.Debug("cache write failed", "key", key, "err", err)
		} else {
			hooks.OnCacheSet(ctx, "pulse", len(data))
		}
		return cells, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]pipeline.PulseCell), nil
}
