package scene

import (
	"slices"
	"testing"
)

func TestScene_Decor(t *testing.T) {
	tests := []struct {
		graph, spectral bool
		want            Decor
	}{
		{false, false, DecorCode},
		{true, false, DecorGraph},
		{false, true, DecorSpectral},
		{true, true, DecorGraphSpectral},
	}
	for _, tt := range tests {
		s := Scene{ProcessGraph: tt.graph, Spectral: tt.spectral}
		if got := s.Decor(); got != tt.want {
			t.Errorf("Decor(graph=%v, spectral=%v) = %v, want %v", tt.graph, tt.spectral, got, tt.want)
		}
	}
}

func TestScene_Anchor(t *testing.T) {
	s := Scene{ID: "hero"}
	if s.AnchorID() != "scene-hero" {
		t.Errorf("AnchorID() = %q", s.AnchorID())
	}
	if s.Fragment() != "#scene-hero" {
		t.Errorf("Fragment() = %q", s.Fragment())
	}
}

func TestScene_Optional(t *testing.T) {
	s := Scene{ID: "x", Title: "T"}
	if s.HasSubtitle() || s.HasDescription() || s.HasCode() || s.HasExplanation() || s.HasImage() {
		t.Error("empty optional fields should report absent")
	}
	if !Hero().HasImage() || !Hero().HasExplanation() || Hero().HasCode() {
		t.Error("hero optional fields reported wrongly")
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	var ids []string
	for _, s := range c.Scenes() {
		ids = append(ids, s.ID)
	}
	if !slices.Equal(ids, []string{"hero", "station"}) {
		t.Errorf("order = %q, want [hero station]", ids)
	}
	if c.At(0).Decor() != DecorGraphSpectral {
		t.Errorf("hero decor = %v", c.At(0).Decor())
	}
	if !Station().HasCode() {
		t.Error("station should carry a code listing")
	}
}
