package procgraph

import (
	"bytes"
	"fmt"

	"github.com/comiccon2025/comicpage/pkg/render/styles"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style styles.Style
	class string
}

// WithStyle selects how capsules, connectors and labels are drawn.
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithClass replaces the root element class ("process-graph").
func WithClass(class string) SVGOption { return func(r *svgRenderer) { r.class = class } }

// RenderSVG draws the layout as a standalone SVG document scaled to fit its
// container without distortion.
func RenderSVG(l Layout, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Simple{}, class: "process-graph"}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" class="%s" viewBox="0 0 %s %s" preserveAspectRatio="xMidYMid meet" role="img" aria-label="%s">`+"\n",
		styles.EscapeXML(r.class), num(l.Width), num(l.Height), styles.EscapeXML(l.Caption.Text))
	r.style.RenderDefs(&buf)

	fmt.Fprintf(&buf, `  <rect class="pg-bg" x="0" y="0" width="%s" height="%s"/>`+"\n", num(l.Width), num(l.Height))
	if l.GuideRows != "" {
		fmt.Fprintf(&buf, `  <path class="pg-grid" d="%s"/>`+"\n", l.GuideRows)
	}
	if l.GuideCols != "" {
		fmt.Fprintf(&buf, `  <path class="pg-grid" d="%s"/>`+"\n", l.GuideCols)
	}

	for _, s := range l.Segments {
		r.style.RenderEdge(&buf, styles.Edge{
			FromID: s.From, ToID: s.To,
			X1: s.X1, Y1: s.Y1, X2: s.X2, Y2: s.Y2,
		})
	}

	for _, c := range l.Capsules {
		sc := toStyleCapsule(c)
		fmt.Fprintf(&buf, `  <g class="pg-node-group" data-node="%s">`+"\n", styles.EscapeXML(c.ID))
		r.style.RenderCapsule(&buf, sc)
		r.style.RenderText(&buf, sc)
		buf.WriteString("  </g>\n")
	}

	if l.Caption.Text != "" {
		fmt.Fprintf(&buf, `  <text class="pg-caption" x="%s" y="%s" text-anchor="middle">%s</text>`+"\n",
			num(l.Caption.X), num(l.Caption.Y), styles.EscapeXML(l.Caption.Text))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func toStyleCapsule(c Capsule) styles.Capsule {
	return styles.Capsule{
		ID:    c.ID,
		Label: c.Label,
		Level: c.Level,
		X:     c.Left,
		Y:     c.Top,
		W:     c.W,
		H:     c.H,
		R:     c.R,
		CX:    c.X,
		CY:    c.Y,
		TextY: c.TextY,
	}
}
