package styles

import (
	"bytes"
	"strings"
)

// Style names accepted by the CLI --style flag and the config file.
const (
	NameSimple    = "simple"
	NameHanddrawn = "handdrawn"
)

// Style defines the visual appearance of the process graph.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, markers, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderEdge writes the SVG for one connector line.
	RenderEdge(buf *bytes.Buffer, e Edge)
	// RenderCapsule writes the SVG for one node pill.
	RenderCapsule(buf *bytes.Buffer, c Capsule)
	// RenderText writes the SVG for a capsule label.
	RenderText(buf *bytes.Buffer, c Capsule)
}

// Capsule contains all data needed to render a single graph node.
type Capsule struct {
	ID         string  // Node identifier
	Label      string  // Display text
	Level      string  // Category tag ("top", "mid", ...), styling only
	X, Y, W, H float64 // Top-left corner and size
	R          float64 // Corner radius (H/2 for a pill)
	CX, CY     float64 // Node center
	TextY      float64 // Label baseline
}

// Edge contains positioning data for rendering a connector.
type Edge struct {
	FromID, ToID   string  // Connected node IDs
	X1, Y1, X2, Y2 float64 // Line coordinates (node centers)
}

// LevelClass returns the CSS modifier class for a capsule level, or "" when
// the level is empty. Characters outside [A-Za-z0-9_-] are dropped so the
// result is always a plain class name.
func LevelClass(prefix, level string) string {
	level = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return -1
	}, level)
	if level == "" {
		return ""
	}
	return " " + prefix + "-" + level
}
