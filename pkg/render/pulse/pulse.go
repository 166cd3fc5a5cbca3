package pulse

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/comiccon2025/comicpage/pkg/errors"
)

// MaxViewport is the largest accepted viewport side, in CSS pixels.
const MaxViewport = 16384

// MaxGrid caps the number of grid columns and rows Generate visits.
const MaxGrid = 1024

// Viewport is the visible area in CSS pixels.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (v Viewport) String() string {
	return strconv.FormatFloat(v.Width, 'f', -1, 64) + "x" + strconv.FormatFloat(v.Height, 'f', -1, 64)
}

// ParseViewport parses "WIDTHxHEIGHT", e.g. "1280x720".
func ParseViewport(s string) (Viewport, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Viewport{}, errors.New(errors.ErrCodeInvalidViewport, "viewport %q: want WIDTHxHEIGHT", s)
	}
	width, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return Viewport{}, errors.Wrap(errors.ErrCodeInvalidViewport, err, "viewport width %q", w)
	}
	height, err := strconv.ParseFloat(h, 64)
	if err != nil {
		return Viewport{}, errors.Wrap(errors.ErrCodeInvalidViewport, err, "viewport height %q", h)
	}
	if width < 0 || height < 0 || math.IsNaN(width) || math.IsNaN(height) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return Viewport{}, errors.New(errors.ErrCodeInvalidViewport, "viewport %q out of range", s)
	}
	if width > MaxViewport || height > MaxViewport {
		return Viewport{}, errors.New(errors.ErrCodeInvalidViewport, "viewport %q larger than %dx%d", s, MaxViewport, MaxViewport)
	}
	return Viewport{Width: width, Height: height}, nil
}

// Variant selects the color of a square.
type Variant int

const (
	Orange Variant = iota
	Cyan
	Blue
)

// Class returns the CSS modifier class of the variant.
func (v Variant) Class() string {
	switch v {
	case Orange:
		return "grid-pulse-orange"
	case Cyan:
		return "grid-pulse-cyan"
	default:
		return "grid-pulse-blue"
	}
}

// Cell is one blinking square. Top and Left are pixels, Delay and Duration
// are seconds.
type Cell struct {
	ID       int     `json:"id"`
	Col      int     `json:"col"`
	Row      int     `json:"row"`
	BaseRow  int     `json:"base_row"`
	Top      float64 `json:"top"`
	Left     float64 `json:"left"`
	Variant  Variant `json:"variant"`
	Delay    float64 `json:"delay"`
	Duration float64 `json:"duration"`
}

// Class returns the full class attribute of the cell's element.
func (c Cell) Class() string { return "grid-pulse " + c.Variant.Class() }

// Style returns the inline style of the cell's element.
func (c Cell) Style() string {
	return fmt.Sprintf("top: %gpx; left: %gpx; animation-delay: %gs; animation-duration: %gs",
		c.Top, c.Left, round(c.Delay), round(c.Duration))
}

// Generate places pulse cells for vp. Columns are visited left to right and
// draw from rng in a fixed order, so equal sources give equal cells. The
// grid is clipped to MaxGrid columns and rows.
func Generate(vp *Viewport, cfg Config, rng *rand.Rand) []Cell {
	if vp == nil || !(vp.Width > 0) || !(vp.Height > 0) || !(cfg.CellSize > 0) || cfg.ColumnProbability <= 0 {
		return nil
	}
	cols := int(math.Min(math.Floor(vp.Width/cfg.CellSize), MaxGrid))
	rows := int(math.Min(math.Floor(vp.Height/cfg.CellSize), MaxGrid))
	if cols < 1 || rows < 2 {
		return nil
	}

	minBase := int(math.Floor(float64(rows) * cfg.MinBaseFraction))
	maxBase := rows - 2
	stackSpan := max(cfg.MaxStack-cfg.MinStack+1, 1)
	offset := (cfg.CellSize - cfg.SquareSize) / 2

	var cells []Cell
	for col := 0; col < cols; col++ {
		if rng.Float64() > cfg.ColumnProbability {
			continue
		}
		stack := cfg.MinStack + rng.IntN(stackSpan)

		base := rng.IntN(rows)
		if base < minBase {
			base = minBase
		}
		if base > maxBase {
			base = maxBase
		}

		for k := 0; k < stack; k++ {
			row := base - k
			if row < 0 {
				break
			}
			cells = append(cells, Cell{
				ID:       len(cells),
				Col:      col,
				Row:      row,
				BaseRow:  base,
				Top:      float64(row)*cfg.CellSize + offset,
				Left:     float64(col)*cfg.CellSize + offset,
				Variant:  Variant((col + k) % 3),
				Delay:    delay(col, k, cfg),
				Duration: cfg.DurationMin + rng.Float64()*cfg.DurationSpread,
			})
		}
	}
	return cells
}

// NewRand returns the generator used for a seed and viewport.
func NewRand(seed uint64, vp Viewport) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^(uint64(vp.Width)<<32|uint64(vp.Height))))
}

func delay(col, k int, cfg Config) float64 {
	d := float64(col)*cfg.DelayColStep + float64(k)*cfg.DelayRowStep
	if cfg.DelayPeriod > 0 {
		d = math.Mod(d, cfg.DelayPeriod)
	}
	return d
}

func round(v float64) float64 { return math.Round(v*1000) / 1000 }
