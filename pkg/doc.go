// Package pkg holds the public packages of comicpage.
//
// # Packages
//
//   - scene: the scene catalog and the document file formats (TOML, YAML,
//     JSON)
//   - render/...: the process graph, spectral panel and pulse grid
//     generators
//   - page: the HTML composer (scene panels, navigation strip, pulse layer)
//   - pipeline: renders a document to every output format with caching
//   - cache: the artifact cache (null, file, Redis)
//   - observability: hooks for load, render, cache and HTTP events
//   - errors: coded errors shared by the CLI and the HTTP server
//   - buildinfo: version information injected at build time
//
// # Example
//
//	doc := scene.DefaultDocument()
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, err := runner.Execute(ctx, doc, pipeline.Options{Formats: []string{"html"}})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("index.html", res.Artifacts["html"], 0o644)
package pkg
