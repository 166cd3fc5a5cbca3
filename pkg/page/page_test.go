package page

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/comiccon2025/comicpage/pkg/render/pulse"
	"github.com/comiccon2025/comicpage/pkg/render/styles"
	"github.com/comiccon2025/comicpage/pkg/scene"
)

// parse renders n and parses it back, so assertions run against what a
// browser would see.
func parse(t *testing.T, n *html.Node) *html.Node {
	t.Helper()
	s, err := RenderString(n)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func visibleText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style" || n.Data == "svg") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findAll(n *html.Node, fn func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && fn(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func byClass(c string) func(*html.Node) bool {
	return func(n *html.Node) bool { return hasClass(n, c) }
}

func testParts() Parts { return PartsFor(scene.DefaultDocument(), styles.Simple{}) }

func TestPanel_HeroRoundTrip(t *testing.T) {
	hero := scene.Hero()
	doc := parse(t, Panel(hero, testParts()))

	section := find(doc, func(n *html.Node) bool { return n.Data == "section" })
	if section == nil || attr(section, "id") != "scene-hero" || attr(section, "class") != "scene" {
		t.Fatalf("section = %+v", section)
	}

	for cls, want := range map[string]string{
		"scene-title":       hero.Title,
		"scene-subtitle":    hero.Subtitle,
		"scene-description": hero.Description,
		"scene-label":       "СЦЕНА 01",
	} {
		n := find(doc, byClass(cls))
		if n == nil {
			t.Errorf("missing .%s", cls)
			continue
		}
		if got := visibleText(n); got != want {
			t.Errorf(".%s text = %q, want %q", cls, got, want)
		}
	}

	if expl := find(doc, byClass("code-explanation-graph")); expl == nil || visibleText(expl) != hero.Explanation {
		t.Error("explanation not reproduced verbatim")
	}

	img := find(doc, func(n *html.Node) bool { return n.Data == "img" })
	if img == nil || attr(img, "src") != scene.HeroImage || attr(img, "alt") != hero.Title {
		t.Errorf("img = %+v", img)
	}

	for _, cls := range []string{"comic-frame-svg", "process-graph", "spectral-panel", "code-block-graph"} {
		if find(doc, byClass(cls)) == nil {
			t.Errorf("missing .%s", cls)
		}
	}
	if find(doc, func(n *html.Node) bool { return n.Data == "pre" }) != nil {
		t.Error("graph scene should not render a code listing")
	}
}

func TestPanel_OptionalFieldsOmitted(t *testing.T) {
	s := scene.Scene{ID: "bare", Label: "09", Title: "Пусто"}
	doc := parse(t, Panel(s, testParts()))

	for _, cls := range []string{"scene-subtitle", "scene-description", "code-block", "code-explanation", "spectral-panel", "comic-image"} {
		if find(doc, byClass(cls)) != nil {
			t.Errorf(".%s should be absent", cls)
		}
	}

	slot := find(doc, byClass("comic-image-slot"))
	if slot == nil || visibleText(slot) != PlaceholderText("Пусто") {
		t.Errorf("placeholder = %q", visibleText(slot))
	}
}

func TestPanel_CodeListing(t *testing.T) {
	st := scene.Station()
	doc := parse(t, Panel(st, testParts()))

	code := find(doc, func(n *html.Node) bool { return n.Data == "code" })
	if code == nil || visibleText(code) != st.Code {
		t.Errorf("code listing = %q", visibleText(code))
	}
	if find(doc, byClass("process-graph")) != nil {
		t.Error("code scene should not render the process graph")
	}
	if expl := find(doc, byClass("code-explanation")); expl == nil || expl.Data != "p" {
		t.Error("single-paragraph explanation should be a <p>")
	}
}

func TestPanel_EscapesText(t *testing.T) {
	s := scene.Scene{ID: "x", Label: "1", Title: `<script>alert("x")</script>`, Code: "a < b && c"}
	out, err := RenderString(Panel(s, Parts{}))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "<script>") {
		t.Error("title must be escaped")
	}
	if !strings.Contains(out, "a &lt; b &amp;&amp; c") {
		t.Errorf("code not escaped: %s", out)
	}
}

func TestExplanation_Markdown(t *testing.T) {
	n := explanation("Первый **абзац**.\n\nВторой <b>raw</b> абзац.", "code-explanation")
	if n == nil || n.Data != "div" {
		t.Fatalf("multi-paragraph explanation should be a div, got %+v", n)
	}
	out, _ := RenderString(n)
	if !strings.Contains(out, "<strong>абзац</strong>") {
		t.Errorf("markdown not rendered: %s", out)
	}
	if strings.Contains(out, "<b>") {
		t.Errorf("raw HTML should be dropped: %s", out)
	}

	if explanation("   ", "x") != nil {
		t.Error("blank explanation should produce no node")
	}
}

func TestNav_MatchesSections(t *testing.T) {
	cat := scene.MustCatalog(
		scene.Scene{ID: "one", Title: "Один"},
		scene.Scene{ID: "two", Title: "Два"},
		scene.Scene{ID: "three", Title: "Три"},
	)
	doc := parse(t, Compose(cat))

	sections := findAll(doc, func(n *html.Node) bool { return n.Data == "section" })
	nav := find(doc, byClass(NavClass))
	if nav == nil {
		t.Fatal("missing nav mount")
	}
	links := findAll(nav, func(n *html.Node) bool { return n.Data == "a" })

	if len(sections) != 3 || len(links) != 3 {
		t.Fatalf("sections = %d, links = %d", len(sections), len(links))
	}
	for i := range sections {
		if attr(links[i], "href") != "#"+attr(sections[i], "id") {
			t.Errorf("link %d href %q does not match section id %q", i, attr(links[i], "href"), attr(sections[i], "id"))
		}
		if visibleText(links[i]) != "" {
			t.Errorf("link %d has visible text", i)
		}
		if attr(links[i], "title") == "" || attr(links[i], "title") != attr(links[i], "aria-label") {
			t.Errorf("link %d title/aria-label = %q/%q", i, attr(links[i], "title"), attr(links[i], "aria-label"))
		}
	}
}

func TestCompose_Options(t *testing.T) {
	cat := scene.DefaultCatalog()
	cells := []pulse.Cell{{ID: 0, Top: 11, Left: 43, Variant: pulse.Blue, Delay: 0.25, Duration: 3}}

	doc := parse(t, Compose(cat,
		WithTitle("Тест"),
		WithParts(testParts()),
		WithPulse(cells),
		WithGeneration("gen-1"),
		WithoutNav(),
		WithResizeEndpoint("/api/pulse"),
	))

	if title := find(doc, func(n *html.Node) bool { return n.Data == "title" }); visibleText(title) != "Тест" {
		t.Errorf("title = %q", visibleText(title))
	}
	if find(doc, byClass(NavClass)) != nil {
		t.Error("WithoutNav should omit the nav mount")
	}

	layer := find(doc, byClass("grid-pulses"))
	if layer == nil || attr(layer, "data-generation") != "gen-1" {
		t.Fatal("missing pulse layer or generation")
	}
	spans := findAll(layer, byClass("grid-pulse"))
	if len(spans) != 1 || !hasClass(spans[0], "grid-pulse-blue") || !strings.Contains(attr(spans[0], "style"), "top: 11px") {
		t.Errorf("pulse spans = %+v", spans)
	}

	script := find(doc, func(n *html.Node) bool { return n.Data == "script" })
	if script == nil || attr(script, "data-endpoint") != "/api/pulse" {
		t.Error("resize script missing")
	}

	root := find(doc, func(n *html.Node) bool { return attr(n, "id") == RootID })
	if root == nil || len(findAll(root, func(n *html.Node) bool { return n.Data == "section" })) != cat.Len() {
		t.Error("root mount should hold one section per scene")
	}
}

func TestCompose_StaticHasNoPulseOrScript(t *testing.T) {
	doc := parse(t, Compose(scene.DefaultCatalog()))
	if layer := find(doc, byClass("grid-pulses")); layer == nil || layer.FirstChild != nil {
		t.Error("static render should have an empty pulse layer")
	}
	if find(doc, func(n *html.Node) bool { return n.Data == "script" }) != nil {
		t.Error("static render should have no script")
	}
}

func TestMountNav(t *testing.T) {
	host, _ := html.Parse(strings.NewReader(`<html><body><div id="root"></div><aside class="scene-nav old">stale</aside></body></html>`))
	if !MountNav(host, scene.DefaultCatalog()) {
		t.Fatal("MountNav should find .scene-nav")
	}
	nav := find(host, byClass(NavClass))
	if visibleText(nav) != "" {
		t.Error("stale content should be replaced")
	}
	if n := len(findAll(nav, func(n *html.Node) bool { return n.Data == "a" })); n != 2 {
		t.Errorf("links = %d, want 2", n)
	}

	bare, _ := html.Parse(strings.NewReader(`<html><body><div id="root"></div></body></html>`))
	if MountNav(bare, scene.DefaultCatalog()) {
		t.Error("MountNav without a mount point should report false")
	}
}

func TestCompose_UniqueIDsWithRepeatedGraph(t *testing.T) {
	cat := scene.MustCatalog(
		scene.Scene{ID: "one", Title: "Один", ProcessGraph: true},
		scene.Scene{ID: "two", Title: "Два", ProcessGraph: true},
	)
	doc := parse(t, Compose(cat, WithParts(testParts())))

	seen := map[string]bool{}
	for _, n := range findAll(doc, func(n *html.Node) bool { return attr(n, "id") != "" }) {
		id := attr(n, "id")
		if seen[id] {
			t.Errorf("duplicate id %q", id)
		}
		seen[id] = true
	}
	if n := len(findAll(doc, func(n *html.Node) bool { return attr(n, "data-node") == "brand" })); n < 2 {
		t.Errorf("data-node=brand found %d times, want one per graph panel", n)
	}
}
