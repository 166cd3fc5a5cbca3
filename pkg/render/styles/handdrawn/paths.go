package handdrawn

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"strings"
)

const (
	wobbleRatio    = 0.08 // jitter as a fraction of capsule height
	wobbleMax      = 0.9
	straightEdgeLn = 24.0 // edges shorter than this are drawn straight
	edgeBow        = 0.06 // perpendicular control offset as a fraction of length
	greyMin        = 0x9a
	greyMax        = 0xd4
)

type rng struct{ r *rand.Rand }

func newRNG(seed uint64) *rng {
	return &rng{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// next returns a value in [0, 1).
func (g *rng) next() float64 { return g.r.Float64() }

// jitter returns a value in [-amp, amp).
func (g *rng) jitter(amp float64) float64 { return (g.next()*2 - 1) * amp }

func hash(s string, seed uint64) uint64 {
	h := fnv.New64a()
	var b [8]byte
	for i := range b {
		b[i] = byte(seed >> (8 * i))
	}
	h.Write(b[:])
	h.Write([]byte(s))
	return h.Sum64()
}

// wobbledCapsule traces a pill whose corners are approximated by quadratic
// curves with jittered control points.
func wobbledCapsule(x, y, w, h float64, seed uint64, id string) string {
	g := newRNG(hash(id, seed))
	amp := min(wobbleMax, h*wobbleRatio)
	r := min(h/2, w/2)
	j := func() float64 { return g.jitter(amp) }

	var b strings.Builder
	fmt.Fprintf(&b, "M%.2f,%.2f", x+r, y+j())
	fmt.Fprintf(&b, " Q%.2f,%.2f %.2f,%.2f", x+w/2, y+j(), x+w-r, y+j())
	fmt.Fprintf(&b, " Q%.2f,%.2f %.2f,%.2f", x+w+j(), y+j(), x+w+j(), y+h/2)
	fmt.Fprintf(&b, " Q%.2f,%.2f %.2f,%.2f", x+w+j(), y+h+j(), x+w-r, y+h+j())
	fmt.Fprintf(&b, " Q%.2f,%.2f %.2f,%.2f", x+w/2, y+h+j(), x+r, y+h+j())
	fmt.Fprintf(&b, " Q%.2f,%.2f %.2f,%.2f", x+j(), y+h+j(), x+j(), y+h/2)
	fmt.Fprintf(&b, " Q%.2f,%.2f %.2f,%.2f", x+j(), y+j(), x+r, y)
	b.WriteString(" Z")
	return b.String()
}

// curvedEdge draws short edges straight and bows long ones slightly to one
// side with a cubic curve.
func curvedEdge(x1, y1, x2, y2 float64) string {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length < straightEdgeLn {
		return fmt.Sprintf("M%.2f,%.2f L%.2f,%.2f", x1, y1, x2, y2)
	}
	nx, ny := -dy/length, dx/length
	off := length * edgeBow
	c1x, c1y := x1+dx/3+nx*off, y1+dy/3+ny*off
	c2x, c2y := x1+2*dx/3+nx*off*0.5, y1+2*dy/3+ny*off*0.5
	return fmt.Sprintf("M%.2f,%.2f C%.2f,%.2f %.2f,%.2f %.2f,%.2f", x1, y1, c1x, c1y, c2x, c2y, x2, y2)
}

// rotationFor returns a small label tilt in degrees. Wider capsules tilt less
// so long labels do not poke out of their pill.
func rotationFor(id string, w, h float64) float64 {
	g := newRNG(hash(id, 0))
	damp := 1.0
	if w > 0 && h > 0 {
		damp = min(1, 4*h/w)
	}
	return g.jitter(textMaxTiltD) * damp
}

// greyForID returns a stable light grey fill for a node.
func greyForID(id string) string {
	v := greyMin + int(hash(id, 7)%uint64(greyMax-greyMin+1))
	return fmt.Sprintf("#%02x%02x%02x", v, v, v)
}
