// Package pulse places the blinking squares of the page background.
//
// # Overview
//
// The viewport is divided into a grid of square cells. Some columns grow a
// short vertical stack of squares, like an equalizer, whose base sits in the
// lower part of the screen:
//
//	vp := &pulse.Viewport{Width: 1280, Height: 720}
//	cells := pulse.Generate(vp, pulse.DefaultConfig(), rng)
//
// Without a viewport (a static render, a test) the result is empty.
//
// # Layer
//
// A [Layer] owns the current cell set. Each resize replaces the whole set
// atomically, so readers see either the old set or the new one. When resizes
// race, the most recent one wins:
//
//	layer := pulse.NewLayer(pulse.DefaultConfig(), seed)
//	release := layer.Mount(src)
//	defer release()
//
// The same seed and viewport always produce the same cells.
package pulse
