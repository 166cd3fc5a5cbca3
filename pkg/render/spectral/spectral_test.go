package spectral

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestBuild_Default(t *testing.T) {
	p := Build(DefaultHeights(), DefaultConfig())

	if len(p.Bars) != 36 {
		t.Fatalf("bars = %d, want 36", len(p.Bars))
	}

	first := p.Bars[0]
	if first.X != 4 || first.Y != 60 || first.H != 10 || first.W != 2.5 {
		t.Errorf("first bar = %+v", first)
	}
	if math.Abs(first.CapY-58.8) > 1e-9 || first.CapH != 1.2 {
		t.Errorf("first cap = (%v, %v)", first.CapY, first.CapH)
	}
	if last := p.Bars[35]; last.X != 4+35*6 {
		t.Errorf("last bar X = %v, want %v", last.X, 4+35*6)
	}

	for i, b := range p.Bars {
		if b.Y+b.H != 70 {
			t.Errorf("bar %d does not sit on baseline: y+h = %v", i, b.Y+b.H)
		}
		if i > 0 && b.X-p.Bars[i-1].X != 6 {
			t.Errorf("bar %d step = %v, want 6", i, b.X-p.Bars[i-1].X)
		}
	}
}

func TestBuild_NegativeHeight(t *testing.T) {
	p := Build([]float64{-5}, DefaultConfig())
	if p.Bars[0].H != 0 || p.Bars[0].Y != 70 {
		t.Errorf("negative height should draw as zero, got %+v", p.Bars[0])
	}
}

func TestDefaultHeights_IsCopy(t *testing.T) {
	h := DefaultHeights()
	h[0] = 999
	if DefaultHeights()[0] != 10 {
		t.Error("DefaultHeights() should return a fresh copy")
	}
}

func TestRandomHeights(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	hs := RandomHeights(rng, 50, 8, 26)
	if len(hs) != 50 {
		t.Fatalf("len = %d, want 50", len(hs))
	}
	for i, h := range hs {
		if h < 8 || h >= 26 {
			t.Errorf("height %d = %v outside [8, 26)", i, h)
		}
	}

	again := RandomHeights(rand.New(rand.NewPCG(1, 2)), 50, 8, 26)
	for i := range hs {
		if hs[i] != again[i] {
			t.Fatal("RandomHeights should be deterministic for the same source")
		}
	}

	if RandomHeights(rng, 0, 1, 2) != nil {
		t.Error("n = 0 should return nil")
	}
}

func TestWaveformPath(t *testing.T) {
	p := Build([]float64{10, 20}, DefaultConfig()).WithWaveform([]Point{{4, 60}, {10, 50}, {16, 55}})

	want := "M4 70 L4 60 L10 50 L16 55 L16 70 Z"
	if got := p.Waveform.Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}

	if p.WithWaveform(nil).Waveform != nil {
		t.Error("empty points should remove the waveform")
	}
}

func TestEnvelope(t *testing.T) {
	p := Build([]float64{10, 20}, DefaultConfig())
	pts := Envelope(p)
	if len(pts) != 2 || pts[0] != (Point{X: 5.25, Y: 60}) || pts[1] != (Point{X: 11.25, Y: 50}) {
		t.Errorf("Envelope() = %+v", pts)
	}
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(Build(DefaultHeights(), DefaultConfig())))

	for _, want := range []string{
		`class="spectral-panel"`,
		`viewBox="0 0 240 80"`,
		`<rect class="sp-bar" x="4" y="60" width="2.5" height="10"/>`,
		`<rect class="sp-bar-cap" x="4" y="58.8" width="2.5" height="1.2"/>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("RenderSVG() missing %q", want)
		}
	}
	if strings.Count(svg, `class="sp-bar"`) != 36 || strings.Count(svg, `class="sp-bar-cap"`) != 36 {
		t.Error("expected 36 bars and 36 caps")
	}
	if strings.Contains(svg, "sp-wave") {
		t.Error("no waveform expected")
	}

	p := Build(DefaultHeights(), DefaultConfig())
	withWave := string(RenderSVG(p.WithWaveform(Envelope(p))))
	if !strings.Contains(withWave, `<path class="sp-wave" d="M5.25 70 L5.25 60`) {
		t.Error("waveform path missing or malformed")
	}
}

func TestNum(t *testing.T) {
	tests := map[float64]string{0: "0", 4: "4", 2.5: "2.5", 58.8: "58.8", 1.234: "1.23", -0.001: "0"}
	for in, want := range tests {
		if got := num(in); got != want {
			t.Errorf("num(%v) = %q, want %q", in, got, want)
		}
	}
}
