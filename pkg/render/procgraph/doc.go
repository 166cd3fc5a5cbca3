// Package procgraph lays out the process graph: a small node-link diagram of
// labeled capsules joined by straight connectors over a faint guide grid.
//
// # Overview
//
// Nodes carry fixed canvas positions, so layout here means sizing each
// capsule to its label and resolving edge endpoints to node centers:
//
//	layout := procgraph.Build(procgraph.DefaultNodes(), procgraph.DefaultEdges(), procgraph.DefaultConfig())
//	svg := procgraph.RenderSVG(layout)
//
// Edges that name a missing node are skipped and counted in
// [Layout.Dropped]. They are never reported as errors.
//
// # Capsule Sizing
//
// A capsule is a pill whose width follows the label length in runes:
//
//	width  = runes(label) * CharWidth + 2 * PaddingX
//	height = FontSize + 2 * PaddingY
//	radius = height / 2
//
// # Styles
//
// [RenderSVG] delegates drawing to a [styles.Style]. The default is
// [styles.Simple], which emits class-only markup for the page stylesheet.
// Pass [WithStyle] with a hand-drawn style for a sketchbook look.
package procgraph
