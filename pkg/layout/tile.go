package layout

import (
	"math"

	"github.com/matzehuels/qrlabels/pkg/errors"
)

// MaxPlacements is the largest number of labels a single layout may place.
const MaxPlacements = 100_000

// Options controls how codes are placed on the grid.
type Options struct {
	Repeat int  // copies of each code, >= 1
	Group  bool // start every code on a new row
	Fill   bool // pad each code's last row with more copies (implies Group)
}

func (o Options) normalize() Options {
	if o.Fill {
		o.Group = true
	}
	return o
}

func (o Options) validate(grid Grid) error {
	if err := errors.ValidateCount("repeat", o.Repeat); err != nil {
		return err
	}
	if o.Repeat > MaxPlacements {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid value for \"repeat\": %d exceeds the limit of %d labels per run", o.Repeat, MaxPlacements)
	}
	if grid.Empty() {
		return errors.New(errors.ErrCodeInvalidInput,
			"no label fits on the page (grid %dx%d)", grid.Columns, grid.Rows)
	}
	return nil
}

// Cell is one label placement.
type Cell struct {
	Index int    // position in the placement sequence, across all pages
	Code  string // code printed in this cell
	Row   int    // 0-based row on the page
	Col   int    // 0-based column on the page
}

// Page is one sheet of placements in row-major order.
type Page struct {
	Number int // 0-based
	Cells  []Cell
}

// Row returns the cells placed in row r.
func (p Page) Row(r int) []Cell {
	var row []Cell
	for _, c := range p.Cells {
		if c.Row == r {
			row = append(row, c)
		}
	}
	return row
}

// RowCount returns the number of rows holding at least one cell.
func (p Page) RowCount() int {
	if len(p.Cells) == 0 {
		return 0
	}
	return p.Cells[len(p.Cells)-1].Row + 1
}

// Expand repeats each code repeat times in a row, preserving order.
func Expand(codes []string, repeat int) []string {
	if repeat < 1 {
		return nil
	}
	out := make([]string, 0, len(codes)*repeat)
	for _, code := range codes {
		for range repeat {
			out = append(out, code)
		}
	}
	return out
}

// CopiesPerCode returns how many cells each code occupies: Repeat, rounded
// up to a multiple of the column count when filling rows.
func CopiesPerCode(grid Grid, opts Options) int {
	opts = opts.normalize()
	if opts.Fill && grid.Columns > 0 && opts.Repeat > 0 {
		rows := rowsFor(opts.Repeat, grid.Columns)
		if rows > math.MaxInt/grid.Columns {
			return math.MaxInt
		}
		return rows * grid.Columns
	}
	return opts.Repeat
}

// rowsFor returns the number of rows n cells span, rounded up.
func rowsFor(n, cols int) int {
	rows := n / cols
	if n%cols != 0 {
		rows++
	}
	return rows
}

// ValidatePlacements checks that count codes fit within MaxPlacements
// labels under opts.
func ValidatePlacements(count int, grid Grid, opts Options) error {
	if err := opts.validate(grid); err != nil {
		return err
	}
	copies := CopiesPerCode(grid, opts)
	if count > 0 && copies > MaxPlacements/count {
		return errors.New(errors.ErrCodeInvalidInput,
			"%d codes with %d copies each exceed the limit of %d labels per run", count, copies, MaxPlacements)
	}
	return nil
}

// slots walks the placement sequence for count codes and calls place with
// the code index and the absolute slot (page*capacity + row*columns + col).
// Grouped codes skip the rest of a partially used row.
func slots(count int, grid Grid, opts Options, place func(code, slot int)) {
	opts = opts.normalize()
	cols := grid.Columns
	copies := CopiesPerCode(grid, opts)

	slot := 0
	for i := 0; i < count; i++ {
		if opts.Group && i > 0 && slot%cols != 0 {
			slot += cols - slot%cols
		}
		for range copies {
			place(i, slot)
			slot++
		}
	}
}

// Tile places codes on pages of the given grid.
//
// Pages are filled to capacity before a new page is started, and a page is
// only created once a cell is placed on it, so the result never ends with
// an empty page. A code whose copies overflow the current page continues
// on the next one; later codes never move ahead to fill earlier gaps.
func Tile(codes []string, grid Grid, opts Options) ([]Page, error) {
	if err := ValidatePlacements(len(codes), grid, opts); err != nil {
		return nil, err
	}

	capacity := grid.Capacity()
	var pages []Page
	index := 0
	slots(len(codes), grid, opts, func(code, slot int) {
		n := slot / capacity
		for len(pages) <= n {
			pages = append(pages, Page{Number: len(pages)})
		}
		within := slot % capacity
		pages[n].Cells = append(pages[n].Cells, Cell{
			Index: index,
			Code:  codes[code],
			Row:   within / grid.Columns,
			Col:   within % grid.Columns,
		})
		index++
	})
	return pages, nil
}

// PageCount returns how many pages Tile would produce for count codes,
// without needing the codes themselves.
func PageCount(count int, grid Grid, opts Options) (int, error) {
	if err := ValidatePlacements(count, grid, opts); err != nil {
		return 0, err
	}
	if count < 1 {
		return 0, nil
	}

	// Grouped codes start on a fresh row, so every code but the last
	// occupies whole rows. Nothing is padded after the final code.
	opts = opts.normalize()
	copies := CopiesPerCode(grid, opts)
	used := count * copies
	if opts.Group {
		used = (count-1)*rowsFor(copies, grid.Columns)*grid.Columns + copies
	}
	return rowsFor(used, grid.Capacity()), nil
}
