package page

import (
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// el builds an element. Nil children are skipped, which is how optional
// fields disappear from the tree.
func el(a atom.Atom, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

func attrs(kv ...string) []html.Attribute {
	out := make([]html.Attribute, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return out
}

func class(c string) []html.Attribute { return attrs("class", c) }

func text(s string) *html.Node { return &html.Node{Type: html.TextNode, Data: s} }

// raw attaches pre-rendered markup that Render writes unescaped.
func raw(b []byte) *html.Node {
	if len(b) == 0 {
		return nil
	}
	return &html.Node{Type: html.RawNode, Data: strings.TrimSpace(string(b))}
}

// Render serializes n.
func Render(w io.Writer, n *html.Node) error { return html.Render(w, n) }

// RenderString serializes n to a string.
func RenderString(n *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

// hasClass reports whether n's class attribute contains c.
func hasClass(n *html.Node, c string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" && slices.Contains(strings.Fields(a.Val), c) {
			return true
		}
	}
	return false
}

// find returns the first element in n's subtree, n included, matching fn.
func find(n *html.Node, fn func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && fn(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if m := find(c, fn); m != nil {
			return m
		}
	}
	return nil
}
