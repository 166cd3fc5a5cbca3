package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/comiccon2025/comicpage/pkg/render/procgraph"
)

// DefaultScale maps one canvas unit to four points.
const DefaultScale = 4.0

// Options configures DOT generation.
type Options struct {
	// Scale is points per canvas unit. Zero means DefaultScale.
	Scale float64
	// Detailed appends the node level and ID under each label.
	Detailed bool
}

var levelColors = map[string]string{
	procgraph.LevelTop:    "#f97316",
	procgraph.LevelMid:    "#22d3ee",
	procgraph.LevelMid2:   "#3b82f6",
	procgraph.LevelBottom: "#a855f7",
}

// ToDOT converts a process graph layout to Graphviz DOT.
func ToDOT(l procgraph.Layout, opts Options) string {
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"#020617\";\n")
	fmt.Fprintf(&buf, "  label=%q;\n", l.Caption.Text)
	buf.WriteString("  labelloc=b;\n")
	buf.WriteString("  fontcolor=\"#94a3b8\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=\"#0f172a\", fontcolor=\"#e2e8f0\", fixedsize=true];\n")
	buf.WriteString("  edge [color=\"#475569\", arrowsize=0.6];\n")
	buf.WriteString("\n")

	for _, c := range l.Capsules {
		attrs := []string{
			fmt.Sprintf("label=%q", fmtLabel(c, opts.Detailed)),
			fmt.Sprintf("pos=\"%s,%s!\"", num(c.X*scale), num((l.Height-c.Y)*scale)),
			fmt.Sprintf("width=%s", num(c.W*scale/72)),
			fmt.Sprintf("height=%s", num(c.H*scale/72)),
			fmt.Sprintf("fontsize=%s", num(c.H*scale*0.5)),
		}
		if color, ok := levelColors[c.Level]; ok {
			attrs = append(attrs, fmt.Sprintf("color=%q", color))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", c.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, s := range l.Segments {
		fmt.Fprintf(&buf, "  %q -> %q;\n", s.From, s.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(c procgraph.Capsule, detailed bool) string {
	if !detailed {
		return c.Label
	}
	return c.Label + "\n" + c.Level + " · " + c.ID
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	out, err := render(dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders DOT source to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's root tag with a plain one whose
// viewBox starts at the origin.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
