package procgraph

import (
	"math"
	"strings"
	"testing"
)

func TestSizeCapsule(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		label string
		wantW float64
	}{
		{"", 8},
		{"АУДИО", 5*3.1 + 8},
		{"ТЕКСТ", 5*3.1 + 8},
		{"ЦИФРОВОЙ КРИМИНАЛИСТ", 20*3.1 + 8},
		{"ui", 2*3.1 + 8},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got := SizeCapsule(tt.label, cfg)
			if math.Abs(got.W-tt.wantW) > 1e-9 {
				t.Errorf("W = %v, want %v", got.W, tt.wantW)
			}
			if got.H != 10 {
				t.Errorf("H = %v, want 10", got.H)
			}
			if got.R != 5 {
				t.Errorf("R = %v, want 5", got.R)
			}
		})
	}
}

func TestSizeCapsule_WidthIncreasesWithLength(t *testing.T) {
	cfg := DefaultConfig()
	prev := SizeCapsule("", cfg).W
	for n := 1; n <= 40; n++ {
		w := SizeCapsule(strings.Repeat("Ж", n), cfg).W
		if w <= prev {
			t.Fatalf("width for %d runes = %v, not greater than %v", n, w, prev)
		}
		prev = w
	}
}

func TestSizeCapsule_CountsRunesNotBytes(t *testing.T) {
	cfg := DefaultConfig()
	if SizeCapsule("АБВ", cfg) != SizeCapsule("abc", cfg) {
		t.Error("Cyrillic and Latin labels of equal rune length should size equally")
	}
}
