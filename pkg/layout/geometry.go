package layout

import (
	"fmt"
	"math"
)

// Page dimensions in dots.
const (
	DPI        = 300
	PageWidth  = 8.5 * DPI
	PageHeight = 11 * DPI
	PageMargin = 0.5 * DPI
)

// cutLineGap is the space reserved between cells for a cut line.
const cutLineGap = 1

// Grid is the number of label cells on a page.
type Grid struct {
	Columns int
	Rows    int
}

// Capacity returns the number of cells per page.
func (g Grid) Capacity() int {
	return g.Columns * g.Rows
}

// Empty reports whether not a single label fits.
func (g Grid) Empty() bool {
	return g.Columns < 1 || g.Rows < 1
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Columns, g.Rows)
}

// Line is a straight guide line in page dots.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Geometry describes the page and label dimensions of a layout.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	LabelSize  int // label edge length in dots
	CutLines   bool
}

// NewGeometry returns the LETTER geometry for labels of scale inches.
func NewGeometry(scale float64, cutLines bool) Geometry {
	return Geometry{
		PageWidth:  PageWidth,
		PageHeight: PageHeight,
		Margin:     PageMargin,
		LabelSize:  int(scale * DPI),
		CutLines:   cutLines,
	}
}

// Pitch returns the distance between the origins of adjacent cells.
func (g Geometry) Pitch() int {
	if g.CutLines {
		return g.LabelSize + cutLineGap
	}
	return g.LabelSize
}

// Printable returns the page area inside the margins available to cells.
func (g Geometry) Printable() (w, h float64) {
	w = g.PageWidth - 2*g.Margin
	h = g.PageHeight - 2*g.Margin
	if g.CutLines {
		w -= cutLineGap
		h -= cutLineGap
	}
	return w, h
}

// Grid returns how many cells fit on a page.
func (g Geometry) Grid() Grid {
	pitch := g.Pitch()
	if pitch <= 0 {
		return Grid{}
	}
	w, h := g.Printable()
	return Grid{
		Columns: int(math.Floor(w / float64(pitch))),
		Rows:    int(math.Floor(h / float64(pitch))),
	}
}

// Canvas returns the size of the occupied grid, including the trailing cut
// line when cut lines are drawn.
func (g Geometry) Canvas() (w, h float64) {
	grid := g.Grid()
	pitch := float64(g.Pitch())
	w = float64(grid.Columns) * pitch
	h = float64(grid.Rows) * pitch
	if g.CutLines {
		w += cutLineGap
		h += cutLineGap
	}
	return w, h
}

// Offset returns the top-left corner of the canvas, centering it on the page.
func (g Geometry) Offset() (x, y float64) {
	w, h := g.Canvas()
	return math.Floor((g.PageWidth - w) / 2), math.Floor((g.PageHeight - h) / 2)
}

// CellOrigin returns the top-left corner of the label in the given cell.
// With cut lines the label sits just past the guide preceding it.
func (g Geometry) CellOrigin(row, col int) (x, y float64) {
	ox, oy := g.Offset()
	pitch := float64(g.Pitch())
	x = ox + float64(col)*pitch
	y = oy + float64(row)*pitch
	if g.CutLines {
		x += cutLineGap
		y += cutLineGap
	}
	return x, y
}

// Guides returns the dotted cut lines for one page: a vertical line at every
// column boundary and a horizontal line at every row boundary, each
// spanning the printable area. Lines sit in the gaps between cells and
// around the grid, never on the paper edge. It returns nil when the
// geometry has no cut lines.
func (g Geometry) Guides() []Line {
	if !g.CutLines {
		return nil
	}
	grid := g.Grid()
	if grid.Empty() {
		return nil
	}

	ox, oy := g.Offset()
	pitch := float64(g.Pitch())
	half := float64(cutLineGap) / 2
	left, right := g.Margin, g.PageWidth-g.Margin
	top, bottom := g.Margin, g.PageHeight-g.Margin

	lines := make([]Line, 0, grid.Columns+grid.Rows+2)
	for c := 0; c <= grid.Columns; c++ {
		x := ox + float64(c)*pitch + half
		lines = append(lines, Line{X1: x, Y1: top, X2: x, Y2: bottom})
	}
	for r := 0; r <= grid.Rows; r++ {
		y := oy + float64(r)*pitch + half
		lines = append(lines, Line{X1: left, Y1: y, X2: right, Y2: y})
	}
	return lines
}
