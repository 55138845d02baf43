package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/qrlabels/pkg/errors"
	"github.com/matzehuels/qrlabels/pkg/fonts"
	"github.com/matzehuels/qrlabels/pkg/label"
	"github.com/matzehuels/qrlabels/pkg/layout"
)

// DefaultPNGResolution is the preview resolution in pixels per inch.
const DefaultPNGResolution = 100

// cutLinePeriod is the dotted cut line pattern length: one dark dot
// followed by five light ones.
const cutLinePeriod = 6

type PNGOption func(*pngRenderer)

type pngRenderer struct {
	dpi int
}

// WithPNGResolution sets the output resolution in pixels per inch, between
// 1 and layout.DPI.
func WithPNGResolution(dpi int) PNGOption {
	return func(r *pngRenderer) { r.dpi = dpi }
}

// RenderPNG rasterizes one page of l as a PNG preview. The page is drawn at
// full layout resolution and then downsampled.
func RenderPNG(l layout.Layout, page layout.Page, labels *label.Set, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{dpi: DefaultPNGResolution}
	for _, opt := range opts {
		opt(&r)
	}
	if r.dpi < 1 || r.dpi > layout.DPI {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png resolution %d must be between 1 and %d", r.dpi, layout.DPI)
	}

	geom := l.Geometry
	canvas := imaging.New(int(geom.PageWidth), int(geom.PageHeight), color.White)

	tiles := map[string]*image.NRGBA{}
	for _, c := range page.Cells {
		tile, ok := tiles[c.Code]
		if !ok {
			lb, found := labels.Get(c.Code)
			if !found {
				return nil, errors.New(errors.ErrCodeInternal, "no rendered label for code %q", c.Code)
			}
			var err error
			if tile, err = rasterizeLabel(lb.Drawing); err != nil {
				return nil, err
			}
			tiles[c.Code] = tile
		}
		x, y := geom.CellOrigin(c.Row, c.Col)
		at := image.Pt(int(x), int(y))
		draw.Draw(canvas, tile.Bounds().Add(at), tile, image.Point{}, draw.Src)
	}

	rasterizeCutLines(canvas, l.CutLines)

	var img image.Image = canvas
	if r.dpi != layout.DPI {
		w := int(math.Round(geom.PageWidth * float64(r.dpi) / layout.DPI))
		h := int(math.Round(geom.PageHeight * float64(r.dpi) / layout.DPI))
		img = imaging.Resize(canvas, w, h, imaging.Box)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// rasterizeLabel draws a label at one pixel per dot.
func rasterizeLabel(d label.Drawing) (*image.NRGBA, error) {
	size := int(d.Width)
	tile := imaging.New(size, size, color.White)

	for _, m := range d.Modules {
		fillRect(tile, m, color.Black)
	}

	c := d.Caption
	fillRect(tile, c.Box, color.White)
	strokeRect(tile, c.Box, color.Black)

	if c.FontSize < 1 {
		return tile, nil
	}
	face, err := fonts.MonoFace(c.FontSize)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load caption font")
	}
	defer face.Close()

	dr := &font.Drawer{Dst: tile, Src: image.Black, Face: face}
	m := face.Metrics()
	dr.Dot = fixed.Point26_6{
		X: fixed.Int26_6(c.CenterX*64) - dr.MeasureString(c.Text)/2,
		Y: fixed.Int26_6(c.CenterY*64) + (m.Ascent-m.Descent)/2,
	}
	dr.DrawString(c.Text)
	return tile, nil
}

func pixelRect(r label.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.X)), int(math.Round(r.Y)),
		int(math.Round(r.X+r.W)), int(math.Round(r.Y+r.H)),
	)
}

func fillRect(dst draw.Image, r label.Rect, c color.Color) {
	draw.Draw(dst, pixelRect(r), image.NewUniform(c), image.Point{}, draw.Src)
}

func strokeRect(dst draw.Image, r label.Rect, c color.Color) {
	px := pixelRect(r)
	src := image.NewUniform(c)
	for _, edge := range []image.Rectangle{
		image.Rect(px.Min.X, px.Min.Y, px.Max.X, px.Min.Y+label.StrokeWidth),
		image.Rect(px.Min.X, px.Max.Y-label.StrokeWidth, px.Max.X, px.Max.Y),
		image.Rect(px.Min.X, px.Min.Y, px.Min.X+label.StrokeWidth, px.Max.Y),
		image.Rect(px.Max.X-label.StrokeWidth, px.Min.Y, px.Max.X, px.Max.Y),
	} {
		draw.Draw(dst, edge, src, image.Point{}, draw.Src)
	}
}

// rasterizeCutLines draws the guides as dotted one-pixel lines.
func rasterizeCutLines(dst *image.NRGBA, lines []layout.Line) {
	for _, ln := range lines {
		x1, y1 := int(ln.X1), int(ln.Y1)
		x2, y2 := int(ln.X2), int(ln.Y2)
		switch {
		case x1 == x2:
			for y := y1; y < y2; y += cutLinePeriod {
				dst.Set(x1, y, color.Black)
			}
		case y1 == y2:
			for x := x1; x < x2; x += cutLinePeriod {
				dst.Set(x, y1, color.Black)
			}
		}
	}
}
