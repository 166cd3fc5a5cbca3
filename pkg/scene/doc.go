// Package scene defines the comic's scene records and the immutable,
// ordered catalog they live in.
//
// A [Catalog] is built once, validated, and then only read. Panels and the
// navigation strip are both derived from the same catalog, so their order
// and anchors always agree:
//
//	cat, err := scene.NewCatalog(scenes...)
//	for s := range cat.All() {
//	    fmt.Println(s.Fragment()) // "#scene-hero"
//	}
//
// Catalog files ([Load]) may be TOML, YAML or JSON. Besides the scenes they
// can override the process graph, the spectral heights and the pulse-grid
// constants; anything left out falls back to [DefaultDocument].
package scene
