package sink

import (
	"bytes"
	"strings"

	"github.com/signintech/gopdf"

	"github.com/matzehuels/qrlabels/pkg/errors"
	"github.com/matzehuels/qrlabels/pkg/fonts"
	"github.com/matzehuels/qrlabels/pkg/label"
	"github.com/matzehuels/qrlabels/pkg/layout"
)

// pointsPerDot converts layout dots to PDF points.
const pointsPerDot = 72.0 / layout.DPI

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	title    string
	producer string
	codes    []string
}

// WithTitle sets the document title.
func WithTitle(title string) PDFOption {
	return func(r *pdfRenderer) { r.title = title }
}

// WithProducer sets the creator and producer recorded in the document info.
func WithProducer(producer string) PDFOption {
	return func(r *pdfRenderer) { r.producer = producer }
}

// WithCodes records the generated codes in the document subject so the
// code list travels with the printout.
func WithCodes(codes []string) PDFOption {
	return func(r *pdfRenderer) { r.codes = codes }
}

// RenderPDF renders every page of l, in order, into one PDF document.
func RenderPDF(l layout.Layout, labels *label.Set, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if len(l.Pages) == 0 {
		return nil, errors.New(errors.ErrCodeInternal, "layout has no pages")
	}

	geom := l.Geometry
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{
		PageSize: gopdf.Rect{W: pt(geom.PageWidth), H: pt(geom.PageHeight)},
		Unit:     gopdf.UnitPT,
	})
	pdf.SetInfo(gopdf.PdfInfo{
		Title:    r.title,
		Subject:  strings.Join(r.codes, " "),
		Creator:  r.producer,
		Producer: r.producer,
	})

	if err := pdf.AddTTFFontData(fonts.FontFamily, fonts.MonoTTF()); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load caption font")
	}

	for _, page := range l.Pages {
		pdf.AddPage()
		for _, c := range page.Cells {
			lb, ok := labels.Get(c.Code)
			if !ok {
				return nil, errors.New(errors.ErrCodeInternal, "no rendered label for code %q", c.Code)
			}
			x, y := geom.CellOrigin(c.Row, c.Col)
			if err := drawLabel(pdf, lb.Drawing, x, y); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "draw label %s on page %d", c.Code, page.Number+1)
			}
		}
		drawCutLines(pdf, l.CutLines)
	}

	var buf bytes.Buffer
	if err := pdf.Write(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write pdf")
	}
	return buf.Bytes(), nil
}

// drawLabel draws d with its top-left corner at (x, y) dots.
func drawLabel(pdf *gopdf.GoPdf, d label.Drawing, x, y float64) error {
	pdf.SetFillColor(255, 255, 255)
	pdf.RectFromUpperLeftWithStyle(pt(x), pt(y), pt(d.Width), pt(d.Height), "F")

	pdf.SetFillColor(0, 0, 0)
	for _, m := range d.Modules {
		pdf.RectFromUpperLeftWithStyle(pt(x+m.X), pt(y+m.Y), pt(m.W), pt(m.H), "F")
	}

	c := d.Caption
	pdf.SetLineType("solid")
	pdf.SetLineWidth(pt(label.StrokeWidth))
	pdf.SetStrokeColor(0, 0, 0)
	pdf.SetFillColor(255, 255, 255)
	pdf.RectFromUpperLeftWithStyle(pt(x+c.Box.X), pt(y+c.Box.Y), pt(c.Box.W), pt(c.Box.H), "FD")

	if err := pdf.SetFont(fonts.FontFamily, "", pt(c.FontSize)); err != nil {
		return err
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(pt(x+c.Box.X), pt(y+c.Box.Y))
	return pdf.CellWithOption(&gopdf.Rect{W: pt(c.Box.W), H: pt(c.Box.H)}, c.Text, gopdf.CellOption{
		Align: gopdf.Center | gopdf.Middle,
	})
}

func drawCutLines(pdf *gopdf.GoPdf, lines []layout.Line) {
	if len(lines) == 0 {
		return
	}
	pdf.SetStrokeColor(0, 0, 0)
	pdf.SetLineWidth(pt(1))
	pdf.SetCustomLineType([]float64{pt(1), pt(5)}, 0)
	for _, l := range lines {
		pdf.Line(pt(l.X1), pt(l.Y1), pt(l.X2), pt(l.Y2))
	}
	pdf.SetLineType("solid")
}

func pt(dots float64) float64 {
	return dots * pointsPerDot
}
