package handdrawn

import (
	"bytes"
	"fmt"

	"github.com/comiccon2025/comicpage/pkg/render/styles"
)

const (
	fontFamily   = `'Comic Neue', 'Comic Sans MS', cursive`
	edgeDash     = "2.4 1.6"
	strokeWidth  = 0.6
	filterID     = "pgWobble"
	filterScale  = 0.8
	filterFreq   = 0.04
	textMaxTiltD = 1.5
)

// HandDrawn renders process-graph elements with deterministic jitter.
type HandDrawn struct {
	seed uint64
}

// New returns a hand-drawn style seeded with seed.
func New(seed uint64) *HandDrawn {
	return &HandDrawn{seed: seed}
}

func (h *HandDrawn) RenderDefs(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <defs>
    <filter id="%s" x="-5%%" y="-5%%" width="110%%" height="110%%">
      <feTurbulence type="fractalNoise" baseFrequency="%.2f" numOctaves="2" seed="%d" result="noise"/>
      <feDisplacementMap in="SourceGraphic" in2="noise" scale="%.2f" xChannelSelector="R" yChannelSelector="G"/>
    </filter>
  </defs>
`, filterID, filterFreq, h.seed%1000, filterScale)
}

func (h *HandDrawn) RenderEdge(buf *bytes.Buffer, e styles.Edge) {
	fmt.Fprintf(buf, `  <path class="pg-edge" data-from="%s" data-to="%s" d="%s" fill="none" stroke-width="%.2f" stroke-dasharray="%s" stroke-linecap="round" filter="url(#%s)"/>`+"\n",
		styles.EscapeXML(e.FromID), styles.EscapeXML(e.ToID),
		curvedEdge(e.X1, e.Y1, e.X2, e.Y2), strokeWidth, edgeDash, filterID)
}

func (h *HandDrawn) RenderCapsule(buf *bytes.Buffer, c styles.Capsule) {
	fmt.Fprintf(buf, `  <path data-node="%s" class="pg-node%s" d="%s" fill="%s" fill-opacity="0.18" stroke-width="%.2f" stroke-linejoin="round" filter="url(#%s)"/>`+"\n",
		styles.EscapeXML(c.ID), styles.LevelClass("pg-node", c.Level),
		wobbledCapsule(c.X, c.Y, c.W, c.H, h.seed, c.ID), greyForID(c.ID), strokeWidth, filterID)
}

func (h *HandDrawn) RenderText(buf *bytes.Buffer, c styles.Capsule) {
	rot := rotationFor(c.ID, c.W, c.H)
	fmt.Fprintf(buf, `  <text class="pg-label%s" x="%.2f" y="%.2f" text-anchor="middle" font-family="%s" transform="rotate(%.2f %.2f %.2f)">%s</text>`+"\n",
		styles.LevelClass("pg-label", c.Level), c.CX, c.TextY, fontFamily,
		rot, c.CX, c.CY, styles.EscapeXML(c.Label))
}

var _ styles.Style = (*HandDrawn)(nil)
