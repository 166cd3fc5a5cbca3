package page

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Explanations are Markdown. Raw HTML in them is dropped by goldmark's
// default (safe) renderer.
var markdown = goldmark.New()

// explanation renders md into the explanation element. A single paragraph
// is unwrapped into a <p class=...>; anything richer goes into a <div>.
func explanation(md, cls string) *html.Node {
	if strings.TrimSpace(md) == "" {
		return nil
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return el(atom.P, class(cls), text(md))
	}

	ctx := &html.Node{Type: html.ElementNode, DataAtom: atom.Div, Data: "div"}
	nodes, err := html.ParseFragment(&buf, ctx)
	if err != nil {
		return el(atom.P, class(cls), text(md))
	}

	var blocks []*html.Node
	for _, n := range nodes {
		switch {
		case n.Type == html.CommentNode:
		case n.Type == html.TextNode && strings.TrimSpace(n.Data) == "":
		default:
			blocks = append(blocks, n)
		}
	}

	if len(blocks) == 1 && blocks[0].DataAtom == atom.P {
		p := el(atom.P, class(cls))
		moveChildren(p, blocks[0])
		return p
	}
	div := el(atom.Div, class(cls))
	for _, b := range blocks {
		div.AppendChild(b)
	}
	return div
}

func moveChildren(dst, src *html.Node) {
	for c := src.FirstChild; c != nil; {
		next := c.NextSibling
		src.RemoveChild(c)
		if c.Type != html.CommentNode {
			dst.AppendChild(c)
		}
		c = next
	}
}
