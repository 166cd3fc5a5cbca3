// Package pipeline turns a scene document into rendered artifacts.
//
// It is shared by the CLI (`comicpage render`) and the HTTP server so both
// produce identical bytes and share one cache layout.
//
// # Formats
//
//   - html: the full comic page
//   - svg: the process graph
//   - spectral: the spectral bar panel
//   - dot: the process graph as Graphviz source
//   - png: the process graph rendered by Graphviz
//   - json: a manifest of scenes, graph statistics and pulse cells
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, doc, pipeline.Options{Formats: []string{"html", "svg"}})
//	page := result.Artifacts["html"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/comiccon2025/comicpage/pkg/cache"
	"github.com/comiccon2025/comicpage/pkg/errors"
	"github.com/comiccon2025/comicpage/pkg/render/pulse"
	"github.com/comiccon2025/comicpage/pkg/render/styles"
	"github.com/comiccon2025/comicpage/pkg/render/styles/handdrawn"
)

const (
	FormatHTML     = "html"
	FormatSVG      = "svg"
	FormatSpectral = "spectral"
	FormatDOT      = "dot"
	FormatPNG      = "png"
	FormatJSON     = "json"
)

// AllFormats lists every format in a stable order.
var AllFormats = []string{FormatHTML, FormatSVG, FormatSpectral, FormatDOT, FormatPNG, FormatJSON}

// Extensions maps a format to its output file extension.
var Extensions = map[string]string{
	FormatHTML:     ".html",
	FormatSVG:      ".svg",
	FormatSpectral: ".spectral.svg",
	FormatDOT:      ".dot",
	FormatPNG:      ".png",
	FormatJSON:     ".json",
}

const (
	// DefaultSeed drives the hand-drawn wobble and the pulse grid.
	DefaultSeed = uint64(42)

	DefaultStyle = styles.NameSimple

	// DefaultTTL is how long rendered artifacts stay cached.
	DefaultTTL = 24 * time.Hour
)

// Options configures one pipeline run.
type Options struct {
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Seed    uint64   `json:"seed,omitempty"`

	// Viewport pre-renders the pulse grid into the page. Nil leaves the
	// pulse layer empty.
	Viewport *pulse.Viewport `json:"viewport,omitempty"`

	NoNav          bool   `json:"no_nav,omitempty"`
	ResizeEndpoint string `json:"resize_endpoint,omitempty"`
	Title          string `json:"title,omitempty"`

	// Refresh bypasses cache reads. Results are still written.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result is the output of Execute.
type Result struct {
	DocumentHash string
	Artifacts    map[string][]byte
	Stats        Stats
	CacheInfo    CacheInfo
}

// Stats describes what the generators produced.
type Stats struct {
	Scenes       int
	Nodes        int
	Segments     int
	DroppedEdges int
	Bars         int
	PulseCells   int
	RenderTime   time.Duration
}

// CacheInfo lists which formats were served from the cache.
type CacheInfo struct {
	Hits []string
}

// AllHit reports whether every requested format came from the cache.
func (c CacheInfo) AllHit(formats []string) bool {
	for _, f := range formats {
		if !slices.Contains(c.Hits, f) {
			return false
		}
	}
	return len(formats) > 0
}

// ParseFormats splits a comma-separated list, trimming blanks and
// dropping duplicates.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

func ValidateFormat(format string) error {
	if _, ok := Extensions[format]; !ok {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be one of: %s)", format, strings.Join(AllFormats, ", "))
	}
	return nil
}

func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

func ValidateStyle(style string) error {
	if style != styles.NameSimple && style != styles.NameHanddrawn {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style %q (must be one of: simple, handdrawn)", style)
	}
	return nil
}

// StyleFor returns the process-graph style called name.
func StyleFor(name string, seed uint64) (styles.Style, error) {
	switch name {
	case styles.NameSimple, "":
		return styles.Simple{}, nil
	case styles.NameHanddrawn:
		return handdrawn.New(seed), nil
	}
	return nil, ValidateStyle(name)
}

// ValidateAndSetDefaults checks the options and fills defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatHTML}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ArtifactKeyOpts returns the cache key options for format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatHTML:
		k.Style, k.Seed, k.NoNav = o.Style, o.Seed, o.NoNav
		k.Endpoint, k.Title = o.ResizeEndpoint, o.Title
		if o.Viewport != nil {
			k.Viewport = o.Viewport.String()
		}
	case FormatSVG:
		k.Style, k.Seed = o.Style, o.Seed
	case FormatJSON:
		k.Seed = o.Seed
		if o.Viewport != nil {
			k.Viewport = o.Viewport.String()
		}
	}
	return k
}
