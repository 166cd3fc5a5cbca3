package page

import (
	_ "embed"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/comiccon2025/comicpage/pkg/buildinfo"
	"github.com/comiccon2025/comicpage/pkg/render/pulse"
	"github.com/comiccon2025/comicpage/pkg/scene"
)

//go:embed assets/page.css
var pageCSS string

//go:embed assets/pulse.js
var pulseJS string

// DefaultTitle is the document title when none is given.
const DefaultTitle = "Цифровой Криминалист — выпуск 01"

// RootID is the id of the primary mount point.
const RootID = "root"

type composer struct {
	title    string
	parts    Parts
	cells    []pulse.Cell
	nav      bool
	endpoint string
	gen      string
}

type Option func(*composer)

func WithTitle(t string) Option { return func(c *composer) { c.title = t } }

// WithParts sets the pre-rendered decorations. Without it panels get the
// frame only.
func WithParts(p Parts) Option { return func(c *composer) { c.parts = p } }

// WithPulse fills the pulse overlay with server-side cells.
func WithPulse(cells []pulse.Cell) Option { return func(c *composer) { c.cells = cells } }

// WithGeneration records the pulse generation the cells belong to.
func WithGeneration(gen string) Option { return func(c *composer) { c.gen = gen } }

// WithoutNav leaves out the secondary mount point.
func WithoutNav() Option { return func(c *composer) { c.nav = false } }

// WithResizeEndpoint adds the script that refetches pulse cells from url
// whenever the window is resized.
func WithResizeEndpoint(url string) Option { return func(c *composer) { c.endpoint = url } }

// Compose builds the whole document for c.
func Compose(cat *scene.Catalog, opts ...Option) *html.Node {
	c := composer{
		title: DefaultTitle,
		parts: Parts{Frame: []byte(FrameSVG)},
		nav:   true,
	}
	for _, opt := range opts {
		opt(&c)
	}

	root := el(atom.Div, attrs("id", RootID))
	for s := range cat.All() {
		root.AppendChild(Panel(s, c.parts))
	}

	var nav *html.Node
	if c.nav {
		nav = el(atom.Nav, attrs("class", NavClass, "aria-label", "Сцены"), Nav(cat)...)
	}

	var script *html.Node
	if c.endpoint != "" {
		script = el(atom.Script, attrs("data-endpoint", c.endpoint), text(pulseJS))
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(el(atom.Html, attrs("lang", "ru"),
		el(atom.Head, nil,
			el(atom.Meta, attrs("charset", "utf-8")),
			el(atom.Meta, attrs("name", "viewport", "content", "width=device-width, initial-scale=1")),
			el(atom.Meta, attrs("name", "generator", "content", buildinfo.Generator())),
			el(atom.Title, nil, text(c.title)),
			el(atom.Style, nil, text(pageCSS)),
		),
		el(atom.Body, nil,
			pulseLayer(c.cells, c.gen),
			root,
			nav,
			script,
		),
	))
	return doc
}

// pulseLayer builds the overlay holding cells.
func pulseLayer(cells []pulse.Cell, gen string) *html.Node {
	a := attrs("class", "grid-pulses", "aria-hidden", "true")
	if gen != "" {
		a = append(a, html.Attribute{Key: "data-generation", Val: gen})
	}
	layer := el(atom.Div, a)
	for _, cell := range cells {
		layer.AppendChild(el(atom.Span, attrs(
			"class", cell.Class(),
			"style", cell.Style(),
			"data-id", strconv.Itoa(cell.ID),
		)))
	}
	return layer
}
