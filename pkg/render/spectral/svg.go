package spectral

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// RenderSVG draws the panel on a transparent canvas with no axes.
func RenderSVG(p Panel) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" class="spectral-panel" viewBox="0 0 %s %s" preserveAspectRatio="xMidYMid meet" aria-hidden="true">`+"\n",
		num(p.Width), num(p.Height))

	for _, b := range p.Bars {
		fmt.Fprintf(&buf, `  <g><rect class="sp-bar" x="%s" y="%s" width="%s" height="%s"/><rect class="sp-bar-cap" x="%s" y="%s" width="%s" height="%s"/></g>`+"\n",
			num(b.X), num(b.Y), num(b.W), num(b.H),
			num(b.X), num(b.CapY), num(b.W), num(b.CapH))
	}

	if p.Waveform != nil {
		fmt.Fprintf(&buf, `  <path class="sp-wave" d="%s"/>`+"\n", p.Waveform.Path())
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// Path returns "M x0 base L x0 y0 L … L xn yn L xn base Z".
func (w Waveform) Path() string {
	if len(w.Points) == 0 {
		return ""
	}
	base := num(w.BaselineY)
	first, last := w.Points[0], w.Points[len(w.Points)-1]

	var b strings.Builder
	b.WriteString("M" + num(first.X) + " " + base)
	for _, pt := range w.Points {
		b.WriteString(" L" + num(pt.X) + " " + num(pt.Y))
	}
	b.WriteString(" L" + num(last.X) + " " + base + " Z")
	return b.String()
}

// num formats v with at most two decimals and no trailing zeros.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
