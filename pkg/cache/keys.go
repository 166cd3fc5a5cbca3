package cache

// Keyer builds cache keys for the artifacts the pipeline and server store.
type Keyer interface {
	// ArtifactKey identifies one rendered output of a catalog.
	ArtifactKey(catalogHash string, opts ArtifactKeyOpts) string
	// PulseKey identifies a pulse cell set for a seed and viewport.
	PulseKey(seed uint64, viewport string) string
}

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	Style    string `json:"style,omitempty"`
	Seed     uint64 `json:"seed,omitempty"`
	Viewport string `json:"viewport,omitempty"`
	NoNav    bool   `json:"no_nav,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`
	Title    string `json:"title,omitempty"`
}

// DefaultKeyer produces "kind:sha256" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ArtifactKey(catalogHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", catalogHash, opts)
}

func (DefaultKeyer) PulseKey(seed uint64, viewport string) string {
	return hashKey("pulse", seed, viewport)
}
