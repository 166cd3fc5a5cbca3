package procgraph

import "unicode/utf8"

// Size is the extent of one capsule.
type Size struct {
	W, H, R float64
}

// SizeCapsule computes the pill that fits label. Length is counted in runes
// so Cyrillic labels size the same as Latin ones of equal length.
func SizeCapsule(label string, cfg Config) Size {
	n := float64(utf8.RuneCountInString(label))
	h := cfg.FontSize + 2*cfg.PaddingY
	return Size{
		W: n*cfg.CharWidth + 2*cfg.PaddingX,
		H: h,
		R: h / 2,
	}
}
