// Package api serves the comic page and its generators over HTTP.
package api

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/singleflight"

	"github.com/comiccon2025/comicpage/pkg/buildinfo"
	"github.com/comiccon2025/comicpage/pkg/pipeline"
	"github.com/comiccon2025/comicpage/pkg/render/pulse"
	"github.com/comiccon2025/comicpage/pkg/scene"
)

// PulsePath is the route the page script polls on resize.
const PulsePath = "/api/pulse"

// Options are the server-wide render defaults. Query parameters override
// style and seed per request.
type Options struct {
	Style    string
	Seed     uint64
	Title    string
	Viewport *pulse.Viewport
}

// Server is the HTTP server for comicpage.
type Server struct {
	router chi.Router
	runner *pipeline.Runner
	doc    *scene.Document
	opts   Options
	log    *log.Logger

	// renders collapses concurrent identical requests into one pipeline run.
	renders singleflight.Group
}

// NewServer creates and configures the HTTP server.
func NewServer(runner *pipeline.Runner, doc *scene.Document, opts Options, logger *log.Logger) *Server {
	if opts.Style == "" {
		opts.Style = pipeline.DefaultStyle
	}
	if opts.Seed == 0 {
		opts.Seed = pipeline.DefaultSeed
	}
	s := &Server{
		runner: runner,
		doc:    doc,
		opts:   opts,
		log:    logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Get("/", s.handlePage)
	r.Get("/scenes/{sceneID}", s.handleScene)

	r.Get("/graph.svg", s.artifactHandler(pipeline.FormatSVG, "image/svg+xml"))
	r.Get("/graph.dot", s.artifactHandler(pipeline.FormatDOT, "text/vnd.graphviz; charset=utf-8"))
	r.Get("/graph.png", s.artifactHandler(pipeline.FormatPNG, "image/png"))
	r.Get("/spectral.svg", s.artifactHandler(pipeline.FormatSpectral, "image/svg+xml"))
	r.Get("/manifest.json", s.artifactHandler(pipeline.FormatJSON, "application/json"))

	r.Route("/api", func(r chi.Router) {
		r.Get("/scenes", s.handleListScenes)
		r.Get("/scenes/{sceneID}", s.handleGetScene)
		r.Get("/pulse", s.handlePulse)
	})

	s.router = r
}

type pinger interface {
	Ping(ctx context.Context) error
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	body := map[string]string{"status": "ok", "version": buildinfo.Version}
	status := http.StatusOK
	if p, ok := s.runner.Cache.(pinger); ok {
		if err := p.Ping(r.Context()); err != nil {
			body["status"] = "degraded"
			body["cache"] = err.Error()
			status = http.StatusServiceUnavailable
		} else {
			body["cache"] = "ok"
		}
	}
	writeJSON(w, status, body)
}
