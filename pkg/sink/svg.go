package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/qrlabels/pkg/errors"
	"github.com/matzehuels/qrlabels/pkg/fonts"
	"github.com/matzehuels/qrlabels/pkg/label"
	"github.com/matzehuels/qrlabels/pkg/layout"
)

// cutLineDash is the dotted stroke pattern of cut lines, in dots.
const cutLineDash = "1,5"

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title string
}

// WithSVGTitle sets the document <title>.
func WithSVGTitle(title string) SVGOption {
	return func(r *svgRenderer) { r.title = title }
}

// RenderSVG renders one page of l as a standalone SVG document sized to the
// page in inches. Every code on the page must be present in labels.
func RenderSVG(l layout.Layout, page layout.Page, labels *label.Set, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	geom := l.Geometry
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%sin" height="%sin" font-family="%s">`+"\n",
		num(geom.PageWidth), num(geom.PageHeight),
		num(geom.PageWidth/layout.DPI), num(geom.PageHeight/layout.DPI),
		escapeXML(fonts.FallbackFontFamily))

	if r.title != "" {
		fmt.Fprintf(&buf, "<title>%s</title>\n", escapeXML(r.title))
	}

	buf.WriteString("<defs>\n")
	fmt.Fprintf(&buf, "<style>@font-face{font-family:'%s';src:url(data:font/ttf;base64,%s) format('truetype');}</style>\n",
		fonts.FontFamily, fonts.MonoTTFBase64())

	defined := map[string]bool{}
	for _, c := range page.Cells {
		if defined[c.Code] {
			continue
		}
		lb, ok := labels.Get(c.Code)
		if !ok {
			return nil, errors.New(errors.ErrCodeInternal, "no rendered label for code %q", c.Code)
		}
		renderLabelDef(&buf, lb)
		defined[c.Code] = true
	}
	buf.WriteString("</defs>\n")

	for _, c := range page.Cells {
		x, y := geom.CellOrigin(c.Row, c.Col)
		fmt.Fprintf(&buf, `<use href="#%s" x="%s" y="%s"/>`+"\n", labelID(c.Code), num(x), num(y))
	}

	renderCutLines(&buf, l.CutLines)

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func labelID(code string) string {
	return "label-" + code
}

func renderLabelDef(buf *bytes.Buffer, lb label.Label) {
	d := lb.Drawing
	fmt.Fprintf(buf, `<g id="%s">`+"\n", escapeXML(labelID(lb.Code)))
	fmt.Fprintf(buf, `<rect width="%s" height="%s" fill="white"/>`+"\n", num(d.Width), num(d.Height))

	buf.WriteString(`<path fill="black" d="`)
	for _, m := range d.Modules {
		fmt.Fprintf(buf, "M%s %sh%sv%sh-%sz", num(m.X), num(m.Y), num(m.W), num(m.H), num(m.W))
	}
	buf.WriteString(`"/>` + "\n")

	c := d.Caption
	fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" fill="white" stroke="black" stroke-width="%d"/>`+"\n",
		num(c.Box.X), num(c.Box.Y), num(c.Box.W), num(c.Box.H), label.StrokeWidth)
	fmt.Fprintf(buf, `<text x="%s" y="%s" font-size="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		num(c.CenterX), num(c.CenterY), num(c.FontSize), escapeXML(c.Text))
	buf.WriteString("</g>\n")
}

func renderCutLines(buf *bytes.Buffer, lines []layout.Line) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(buf, `<g id="cut-lines" stroke="black" stroke-width="1" stroke-dasharray="%s">`+"\n", cutLineDash)
	for _, l := range lines {
		fmt.Fprintf(buf, `<line x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n", num(l.X1), num(l.Y1), num(l.X2), num(l.Y2))
	}
	buf.WriteString("</g>\n")
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
