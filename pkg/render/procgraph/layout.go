package procgraph

import (
	"strconv"
	"strings"
)

// Node is a labeled point of the diagram. Level is a styling tag only.
type Node struct {
	ID    string  `toml:"id" yaml:"id" json:"id"`
	X     float64 `toml:"x" yaml:"x" json:"x"`
	Y     float64 `toml:"y" yaml:"y" json:"y"`
	Label string  `toml:"label" yaml:"label" json:"label"`
	Level string  `toml:"level" yaml:"level" json:"level"`
}

// Edge is a directed pair of node IDs.
type Edge struct {
	From string `toml:"from" yaml:"from" json:"from"`
	To   string `toml:"to" yaml:"to" json:"to"`
}

// Segment is a resolved edge running between two node centers.
type Segment struct {
	From, To       string
	X1, Y1, X2, Y2 float64
}

// Capsule is a sized and positioned node.
type Capsule struct {
	Node
	Size
	Left, Top float64 // top-left corner of the pill
	TextY     float64 // label baseline
}

// Caption is the single line of text under the diagram.
type Caption struct {
	Text string
	X, Y float64
}

// Layout is everything needed to draw the diagram, in draw order.
type Layout struct {
	Width, Height float64
	GuideRows     string // path data for the horizontal guides
	GuideCols     string // path data for the vertical guides
	Segments      []Segment
	Capsules      []Capsule
	Caption       Caption
	Dropped       int // edges skipped because an endpoint was missing
}

// Build sizes every node and resolves every edge against the node set.
// Duplicate node IDs resolve to the first occurrence.
func Build(nodes []Node, edges []Edge, cfg Config) Layout {
	byID := make(map[string]Node, len(nodes))
	for _, n := range nodes {
		if _, ok := byID[n.ID]; !ok {
			byID[n.ID] = n
		}
	}

	l := Layout{
		Width:     cfg.Width,
		Height:    cfg.Height,
		GuideRows: guidePath(cfg.GuideRows, 'H', cfg.Width),
		GuideCols: guidePath(cfg.GuideCols, 'V', cfg.Height),
		Caption:   Caption{Text: cfg.Caption, X: cfg.CaptionX, Y: cfg.CaptionY},
		Segments:  make([]Segment, 0, len(edges)),
		Capsules:  make([]Capsule, 0, len(nodes)),
	}

	for _, e := range edges {
		a, okA := byID[e.From]
		b, okB := byID[e.To]
		if !okA || !okB {
			l.Dropped++
			continue
		}
		l.Segments = append(l.Segments, Segment{
			From: e.From, To: e.To,
			X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y,
		})
	}

	for _, n := range nodes {
		sz := SizeCapsule(n.Label, cfg)
		l.Capsules = append(l.Capsules, Capsule{
			Node:  n,
			Size:  sz,
			Left:  n.X - sz.W/2,
			Top:   n.Y - sz.H/2,
			TextY: n.Y + cfg.LabelOffset,
		})
	}
	return l
}

// guidePath builds "M0 40 H240 M0 82 H240" style path data. For vertical
// guides dir is 'V' and the positions are x coordinates.
func guidePath(at []float64, dir byte, extent float64) string {
	var b strings.Builder
	for i, v := range at {
		if i > 0 {
			b.WriteByte(' ')
		}
		p := num(v)
		if dir == 'H' {
			b.WriteString("M0 " + p + " H" + num(extent))
		} else {
			b.WriteString("M" + p + " 0 V" + num(extent))
		}
	}
	return b.String()
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
