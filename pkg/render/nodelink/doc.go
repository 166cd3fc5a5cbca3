// Package nodelink exports the process graph as a Graphviz diagram.
//
// # Overview
//
// [ToDOT] writes the layout as DOT source with every node pinned to its
// canvas position, so Graphviz reproduces the page diagram instead of
// laying it out again:
//
//	dot := nodelink.ToDOT(layout, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//	png, err := nodelink.RenderPNG(dot)
//
// Positions are scaled by [Options.Scale] (points per canvas unit) and the
// y axis is flipped, since Graphviz grows upward.
//
// # Dependencies
//
// Rendering runs in-process through [github.com/goccy/go-graphviz] with the
// neato engine, which honors pinned positions.
package nodelink
