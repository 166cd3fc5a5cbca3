// Package handdrawn provides a sketchbook style for the process graph.
//
// # Overview
//
// Capsules are drawn as slightly wobbly pills, connectors as dashed strokes
// that bow a little when they are long, and labels sit at a tiny tilt. The
// whole diagram passes through an SVG turbulence filter so straight lines
// look traced by hand.
//
// # Reproducible Randomness
//
// Every irregularity derives from the style seed and the node or edge
// identifier:
//
//	style := handdrawn.New(42)  // Same seed = same wobble pattern
//
// Rendering the same graph twice with the same seed yields identical bytes,
// which keeps pipeline artifacts cacheable.
//
// # Usage
//
//	svg := procgraph.RenderSVG(layout, procgraph.WithStyle(handdrawn.New(seed)))
package handdrawn
