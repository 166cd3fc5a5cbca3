// Package page assembles the comic page as an [html.Node] tree.
//
// # Overview
//
// Nothing here builds markup by string concatenation. Panels, the
// navigation strip and the surrounding document are element trees, and
// [Render] serializes them with [html.Render], which handles escaping:
//
//	parts := page.PartsFor(doc, styles.Simple{})
//	root := page.Compose(doc.Catalog,
//	    page.WithParts(parts),
//	    page.WithResizeEndpoint("/api/pulse"),
//	)
//	err := page.Render(w, root)
//
// Generated SVG (process graph, spectral panel, frame) is attached as raw
// nodes so it is emitted byte for byte.
//
// # Optional Fields
//
// A scene field that is empty produces no element at all: no empty
// subtitle div, no empty code listing.
//
// # Mount Points
//
// Panels go into the primary mount (#root). The navigation strip goes into
// the secondary mount (.scene-nav). [MountNav] fills an existing secondary
// mount in a host document and does nothing if there is none.
package page
