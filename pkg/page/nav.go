package page

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/comiccon2025/comicpage/pkg/scene"
)

// NavClass marks the secondary mount point.
const NavClass = "scene-nav"

// Nav returns one text-less anchor per scene, in catalog order.
func Nav(c *scene.Catalog) []*html.Node {
	links := make([]*html.Node, 0, c.Len())
	for s := range c.All() {
		links = append(links, el(atom.A, attrs(
			"href", s.Fragment(),
			"title", s.Title,
			"aria-label", s.Title,
		)))
	}
	return links
}

// MountNav replaces the children of the first .scene-nav element under doc
// with the navigation strip. It reports whether a mount point was found.
func MountNav(doc *html.Node, c *scene.Catalog) bool {
	target := find(doc, func(n *html.Node) bool { return hasClass(n, NavClass) })
	if target == nil {
		return false
	}
	for target.FirstChild != nil {
		target.RemoveChild(target.FirstChild)
	}
	for _, a := range Nav(c) {
		target.AppendChild(a)
	}
	return true
}
