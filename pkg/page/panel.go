package page

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/comiccon2025/comicpage/pkg/render/procgraph"
	"github.com/comiccon2025/comicpage/pkg/render/spectral"
	"github.com/comiccon2025/comicpage/pkg/render/styles"
	"github.com/comiccon2025/comicpage/pkg/scene"
)

// FrameSVG is the dashed border drawn around every comic image.
const FrameSVG = `<svg xmlns="http://www.w3.org/2000/svg" class="comic-frame-svg" viewBox="0 0 100 60" preserveAspectRatio="none" aria-hidden="true"><rect x="2" y="2" width="96" height="56" rx="4" ry="4" fill="none" stroke="rgba(148,163,184,0.7)" stroke-width="1.2" stroke-dasharray="1.5 2.5"/></svg>`

// Parts are the pre-rendered decorations shared by every panel.
type Parts struct {
	Frame    []byte
	Graph    []byte
	Spectral []byte
}

// PartsFor renders doc's process graph and spectral panel with style.
func PartsFor(doc *scene.Document, style styles.Style) Parts {
	return Parts{
		Frame:    []byte(FrameSVG),
		Graph:    procgraph.RenderSVG(doc.GraphLayout(), procgraph.WithStyle(style)),
		Spectral: spectral.RenderSVG(doc.SpectralPanel()),
	}
}

// PlaceholderText is shown in the image slot of a scene without an image.
func PlaceholderText(title string) string {
	return "Здесь будет основное комикс-изображение для сцены «" + title + "»."
}

// Panel builds the section for one scene.
func Panel(s scene.Scene, parts Parts) *html.Node {
	return el(atom.Section, attrs("id", s.AnchorID(), "class", "scene"),
		el(atom.Div, class("scene-inner"),
			visualColumn(s, parts),
			textColumn(s, parts),
		),
	)
}

func visualColumn(s scene.Scene, parts Parts) *html.Node {
	var slot *html.Node
	if s.HasImage() {
		slot = el(atom.Img, attrs("src", s.Image, "alt", s.Title, "class", "comic-image"))
	} else {
		slot = el(atom.Span, nil, text(PlaceholderText(s.Title)))
	}

	var spectrum *html.Node
	if s.Spectral {
		spectrum = raw(parts.Spectral)
	}

	return el(atom.Div, class("comic-visual-column"),
		raw(parts.Frame),
		el(atom.Div, class("comic-image-slot"), slot),
		spectrum,
	)
}

func textColumn(s scene.Scene, parts Parts) *html.Node {
	var subtitle, description *html.Node
	if s.HasSubtitle() {
		subtitle = el(atom.Div, class("scene-subtitle"), text(s.Subtitle))
	}
	if s.HasDescription() {
		description = el(atom.P, class("scene-description"), text(s.Description))
	}

	return el(atom.Div, class("comic-text-column"),
		el(atom.Div, class("scene-label"), text("СЦЕНА "+s.Label)),
		el(atom.H2, class("scene-title"), text(s.Title)),
		subtitle,
		description,
		decorBlock(s, parts),
	)
}

// decorBlock is the process graph or the code listing, each followed by the
// explanation. It is omitted when it would be empty.
func decorBlock(s scene.Scene, parts Parts) *html.Node {
	if s.ProcessGraph {
		return el(atom.Div, class("code-block code-block-graph"),
			raw(parts.Graph),
			explanation(s.Explanation, "code-explanation code-explanation-graph"),
		)
	}

	var listing *html.Node
	if s.HasCode() {
		listing = el(atom.Pre, nil, el(atom.Code, nil, text(s.Code)))
	}
	expl := explanation(s.Explanation, "code-explanation")
	if listing == nil && expl == nil {
		return nil
	}
	return el(atom.Div, class("code-block"), listing, expl)
}
