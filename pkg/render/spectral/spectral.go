package spectral

import (
	"math/rand/v2"
	"slices"
)

// Config holds the bar geometry of the panel.
type Config struct {
	BaselineY float64 `toml:"baseline_y" yaml:"baseline_y" json:"baseline_y"`
	OffsetX   float64 `toml:"offset_x" yaml:"offset_x" json:"offset_x"`
	Step      float64 `toml:"step" yaml:"step" json:"step"`
	BarWidth  float64 `toml:"bar_width" yaml:"bar_width" json:"bar_width"`
	CapHeight float64 `toml:"cap_height" yaml:"cap_height" json:"cap_height"`
	Width     float64 `toml:"width" yaml:"width" json:"width"`
	Height    float64 `toml:"height" yaml:"height" json:"height"`
}

// DefaultConfig returns the geometry used on the page.
func DefaultConfig() Config {
	return Config{
		BaselineY: 70,
		OffsetX:   4,
		Step:      6,
		BarWidth:  2.5,
		CapHeight: 1.2,
		Width:     240,
		Height:    80,
	}
}

var defaultHeights = []float64{
	10, 18, 12, 22, 16, 20, 14, 24, 18, 12, 26, 16,
	14, 22, 10, 20, 18, 24, 16, 12, 22, 18, 14, 26,
	16, 20, 12, 24, 18, 14, 22, 16, 10, 20, 18, 24,
}

// DefaultHeights returns the fixed 36-bar table.
func DefaultHeights() []float64 { return slices.Clone(defaultHeights) }

// RandomHeights draws n heights uniformly from [lo, hi).
func RandomHeights(rng *rand.Rand, n int, lo, hi float64) []float64 {
	if n <= 0 {
		return nil
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out
}

// Bar is one column of the panel and its cap.
type Bar struct {
	X, Y, W, H float64
	CapY, CapH float64
}

// Point is a waveform vertex in canvas units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Waveform is a polygon closed back down to the baseline.
type Waveform struct {
	Points    []Point
	BaselineY float64
}

// Panel is a built spectrum ready to draw.
type Panel struct {
	Width, Height float64
	BaselineY     float64
	Bars          []Bar
	Waveform      *Waveform
}

// Build lays out one bar per height. Negative heights are drawn as zero.
func Build(heights []float64, cfg Config) Panel {
	p := Panel{
		Width:     cfg.Width,
		Height:    cfg.Height,
		BaselineY: cfg.BaselineY,
		Bars:      make([]Bar, len(heights)),
	}
	for i, h := range heights {
		h = max(h, 0)
		x := cfg.OffsetX + float64(i)*cfg.Step
		y := cfg.BaselineY - h
		p.Bars[i] = Bar{
			X: x, Y: y, W: cfg.BarWidth, H: h,
			CapY: y - cfg.CapHeight, CapH: cfg.CapHeight,
		}
	}
	return p
}

// WithWaveform returns a copy of p carrying a waveform through points. An
// empty point list removes the waveform.
func (p Panel) WithWaveform(points []Point) Panel {
	if len(points) == 0 {
		p.Waveform = nil
		return p
	}
	p.Waveform = &Waveform{Points: slices.Clone(points), BaselineY: p.BaselineY}
	return p
}

// Envelope returns the points joining the top centers of p's bars.
func Envelope(p Panel) []Point {
	pts := make([]Point, len(p.Bars))
	for i, b := range p.Bars {
		pts[i] = Point{X: b.X + b.W/2, Y: b.Y}
	}
	return pts
}
