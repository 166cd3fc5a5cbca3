// Package spectral synthesizes the decorative spectrum panel: a row of
// evenly spaced bars rising from a shared baseline, each topped by a thin
// cap, with an optional filled waveform drawn over them.
//
// The panel is purely ornamental. No audio is analyzed; heights come from a
// fixed table ([DefaultHeights]) or a seeded generator ([RandomHeights]).
//
//	p := spectral.Build(spectral.DefaultHeights(), spectral.DefaultConfig())
//	p = p.WithWaveform(spectral.Envelope(p))
//	svg := spectral.RenderSVG(p)
package spectral
