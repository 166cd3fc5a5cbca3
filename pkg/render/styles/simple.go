package styles

import (
	"bytes"
	"fmt"
)

// Simple draws the graph the way the page stylesheet expects: plain lines
// and rounded rectangles carrying pg-* classes, no inline colors.
type Simple struct{}

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderEdge(buf *bytes.Buffer, e Edge) {
	fmt.Fprintf(buf, `  <line class="pg-edge" data-from="%s" data-to="%s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n",
		EscapeXML(e.FromID), EscapeXML(e.ToID), e.X1, e.Y1, e.X2, e.Y2)
}

func (Simple) RenderCapsule(buf *bytes.Buffer, c Capsule) {
	fmt.Fprintf(buf, `  <rect data-node="%s" class="pg-node%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" ry="%.2f"/>`+"\n",
		EscapeXML(c.ID), LevelClass("pg-node", c.Level), c.X, c.Y, c.W, c.H, c.R, c.R)
}

func (Simple) RenderText(buf *bytes.Buffer, c Capsule) {
	fmt.Fprintf(buf, `  <text class="pg-label%s" x="%.2f" y="%.2f" text-anchor="middle">%s</text>`+"\n",
		LevelClass("pg-label", c.Level), c.CX, c.TextY, EscapeXML(c.Label))
}
