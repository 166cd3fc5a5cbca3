package pipeline

import (
	"encoding/json"
	"strconv"

	"github.com/comiccon2025/comicpage/pkg/buildinfo"
	"github.com/comiccon2025/comicpage/pkg/errors"
	"github.com/comiccon2025/comicpage/pkg/page"
	"github.com/comiccon2025/comicpage/pkg/render/nodelink"
	"github.com/comiccon2025/comicpage/pkg/render/procgraph"
	"github.com/comiccon2025/comicpage/pkg/render/pulse"
	"github.com/comiccon2025/comicpage/pkg/render/spectral"
	"github.com/comiccon2025/comicpage/pkg/scene"
)

// SceneEntry is one row of the scene manifest.
type SceneEntry struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
	Title string `json:"title"`
	Href  string `json:"href"`
	Decor string `json:"decor"`
}

// SceneEntries lists the catalog in order, as the navigation strip sees it.
func SceneEntries(c *scene.Catalog) []SceneEntry {
	out := make([]SceneEntry, 0, c.Len())
	for s := range c.All() {
		out = append(out, SceneEntry{
			ID:    s.ID,
			Label: s.Label,
			Title: s.Title,
			Href:  s.Fragment(),
			Decor: s.Decor().String(),
		})
	}
	return out
}

// PulseCell is a cell as the page script consumes it.
type PulseCell struct {
	pulse.Cell
	Class string `json:"class"`
	Style string `json:"style"`
}

// PulseCells annotates cells with their class and inline style.
func PulseCells(cells []pulse.Cell) []PulseCell {
	out := make([]PulseCell, len(cells))
	for i, c := range cells {
		out[i] = PulseCell{Cell: c, Class: c.Class(), Style: c.Style()}
	}
	return out
}

// Manifest is the json artifact.
type Manifest struct {
	Generator string       `json:"generator"`
	Scenes    []SceneEntry `json:"scenes"`
	Graph     GraphSummary `json:"graph"`
	Pulse     *PulseFrame  `json:"pulse,omitempty"`
}

type GraphSummary struct {
	Nodes    int    `json:"nodes"`
	Segments int    `json:"segments"`
	Dropped  int    `json:"dropped"`
	Caption  string `json:"caption"`
}

// PulseFrame is one generation of pulse cells.
type PulseFrame struct {
	Generation string          `json:"generation"`
	Viewport   *pulse.Viewport `json:"viewport,omitempty"`
	Cells      []PulseCell     `json:"cells"`
}

// Pulse computes the cells for vp; nil gives none.
func Pulse(doc *scene.Document, seed uint64, vp *pulse.Viewport) []pulse.Cell {
	if vp == nil {
		return nil
	}
	return pulse.Generate(vp, doc.PulseConfig, pulse.NewRand(seed, *vp))
}

// renderer renders every format of one document. Layouts are built once
// up front; each format function is then pure and safe to run in parallel.
type renderer struct {
	doc    *scene.Document
	opts   Options
	layout procgraph.Layout
	panel  spectral.Panel
	cells  []pulse.Cell
}

func newRenderer(doc *scene.Document, opts Options) *renderer {
	return &renderer{
		doc:    doc,
		opts:   opts,
		layout: doc.GraphLayout(),
		panel:  doc.SpectralPanel(),
		cells:  Pulse(doc, opts.Seed, opts.Viewport),
	}
}

func (r *renderer) render(format string) ([]byte, error) {
	switch format {
	case FormatHTML:
		return r.html()
	case FormatSVG:
		style, err := StyleFor(r.opts.Style, r.opts.Seed)
		if err != nil {
			return nil, err
		}
		return procgraph.RenderSVG(r.layout, procgraph.WithStyle(style)), nil
	case FormatSpectral:
		return spectral.RenderSVG(r.panel), nil
	case FormatDOT:
		return []byte(nodelink.ToDOT(r.layout, nodelink.Options{})), nil
	case FormatPNG:
		data, err := nodelink.RenderPNG(nodelink.ToDOT(r.layout, nodelink.Options{}))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render png")
		}
		return data, nil
	case FormatJSON:
		return r.manifest()
	}
	return nil, ValidateFormat(format)
}

func (r *renderer) html() ([]byte, error) {
	style, err := StyleFor(r.opts.Style, r.opts.Seed)
	if err != nil {
		return nil, err
	}
	opts := []page.Option{
		page.WithParts(page.PartsFor(r.doc, style)),
		page.WithPulse(r.cells),
	}
	if r.opts.Viewport != nil {
		opts = append(opts, page.WithGeneration(strconv.FormatUint(r.opts.Seed, 10)))
	}
	if r.opts.Title != "" {
		opts = append(opts, page.WithTitle(r.opts.Title))
	}
	if r.opts.NoNav {
		opts = append(opts, page.WithoutNav())
	}
	if r.opts.ResizeEndpoint != "" {
		opts = append(opts, page.WithResizeEndpoint(r.opts.ResizeEndpoint))
	}

	out, err := page.RenderString(page.Compose(r.doc.Catalog, opts...))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render html")
	}
	return []byte(out), nil
}

func (r *renderer) manifest() ([]byte, error) {
	m := Manifest{
		Generator: buildinfo.Generator(),
		Scenes:    SceneEntries(r.doc.Catalog),
		Graph: GraphSummary{
			Nodes:    len(r.layout.Capsules),
			Segments: len(r.layout.Segments),
			Dropped:  r.layout.Dropped,
			Caption:  r.layout.Caption.Text,
		},
	}
	if r.opts.Viewport != nil {
		m.Pulse = &PulseFrame{
			Generation: strconv.FormatUint(r.opts.Seed, 10),
			Viewport:   r.opts.Viewport,
			Cells:      PulseCells(r.cells),
		}
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode manifest")
	}
	return data, nil
}
