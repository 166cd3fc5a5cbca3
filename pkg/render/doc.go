// Package render groups the generators behind the comic page's decorative
// panels. Each subpackage turns plain data into SVG (or Graphviz input)
// without touching the page markup.
//
//   - [procgraph]: the "process graph", labeled capsules on a fixed grid
//     joined by straight edges
//   - [spectral]: spectral bars with caps and an optional waveform
//   - [pulse]: the blinking pulse grid and the layer that owns it across
//     viewport resizes
//   - [nodelink]: the process graph as Graphviz DOT, SVG and PNG
//   - [styles]: how capsules, edges and labels are drawn
//
// Output is deterministic: equal inputs (and, where randomness is involved,
// equal seeds) produce byte-identical results.
//
// [procgraph]: github.com/comiccon2025/comicpage/pkg/render/procgraph
// [spectral]: github.com/comiccon2025/comicpage/pkg/render/spectral
// [pulse]: github.com/comiccon2025/comicpage/pkg/render/pulse
// [nodelink]: github.com/comiccon2025/comicpage/pkg/render/nodelink
// [styles]: github.com/comiccon2025/comicpage/pkg/render/styles
package render
