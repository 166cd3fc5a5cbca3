// Package styles defines visual styles for the process graph.
//
// # Overview
//
// The process graph is drawn in three passes: connectors, capsules and
// labels (see [procgraph.RenderSVG]). A [Style] decides how each pass looks:
//
//   - [Simple]: clean lines and pill-shaped rectangles styled by CSS classes
//   - [handdrawn]: wobbly capsule outlines and sketched, dashed connectors
//
// # Style Data
//
// Styles receive plain value types that are already positioned in canvas
// units:
//
//   - [Capsule]: one node pill with its label and category level
//   - [Edge]: one connector between two node centers
//
// Styles write SVG fragments into a bytes.Buffer and must be deterministic:
// rendering the same capsule twice writes the same bytes.
//
// [procgraph.RenderSVG]: github.com/comiccon2025/comicpage/pkg/render/procgraph
// [handdrawn]: github.com/comiccon2025/comicpage/pkg/render/styles/handdrawn
package styles
