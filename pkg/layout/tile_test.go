package layout

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/qrlabels/pkg/errors"
)

func codes(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("C%04d", i)
	}
	return out
}

// positions flattens pages into "page:row:col=code" entries.
func positions(pages []Page) []string {
	var out []string
	for _, p := range pages {
		for _, c := range p.Cells {
			out = append(out, fmt.Sprintf("%d:%d:%d=%s", p.Number, c.Row, c.Col, c.Code))
		}
	}
	return out
}

func TestExpand(t *testing.T) {
	got := Expand([]string{"A", "B"}, 3)
	want := []string{"A", "A", "A", "B", "B", "B"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Expand mismatch (-want +got):\n%s", diff)
	}

	if got := Expand([]string{"A"}, 0); got != nil {
		t.Errorf("Expand(repeat=0) = %v, want nil", got)
	}
}

func TestTileSingleLabel(t *testing.T) {
	pages, err := Tile([]string{"ABCDE"}, Grid{Columns: 7, Rows: 10}, Options{Repeat: 1})
	if err != nil {
		t.Fatal(err)
	}
	want := []Page{{Number: 0, Cells: []Cell{{Index: 0, Code: "ABCDE", Row: 0, Col: 0}}}}
	if diff := cmp.Diff(want, pages); diff != "" {
		t.Errorf("Tile mismatch (-want +got):\n%s", diff)
	}
}

func TestTileFitsOnePage(t *testing.T) {
	grid := Grid{Columns: 4, Rows: 5}
	pages, err := Tile(codes(10), grid, Options{Repeat: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 1 {
		t.Fatalf("len(pages) = %d, want 1", len(pages))
	}
	if got := len(pages[0].Cells); got != 20 {
		t.Errorf("placements = %d, want 20", got)
	}
	last := pages[0].Cells[19]
	if last.Row != 4 || last.Col != 3 {
		t.Errorf("last cell at (%d, %d), want (4, 3)", last.Row, last.Col)
	}
}

func TestTileOverflow(t *testing.T) {
	grid := Grid{Columns: 4, Rows: 5}
	pages, err := Tile(codes(11), grid, Options{Repeat: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 2 {
		t.Fatalf("len(pages) = %d, want 2", len(pages))
	}
	if len(pages[0].Cells) != 20 || len(pages[1].Cells) != 2 {
		t.Errorf("placements per page = %d, %d; want 20, 2", len(pages[0].Cells), len(pages[1].Cells))
	}
	if c := pages[1].Cells[0]; c.Row != 0 || c.Col != 0 || c.Index != 20 {
		t.Errorf("first cell of page 2 = %+v, want index 20 at (0, 0)", c)
	}
}

func TestTilePolicies(t *testing.T) {
	tests := []struct {
		name  string
		codes []string
		grid  Grid
		opts  Options
		want  []string
	}{
		{
			name:  "ungrouped shares rows",
			codes: []string{"A", "B"},
			grid:  Grid{Columns: 4, Rows: 2},
			opts:  Options{Repeat: 3},
			want:  []string{"0:0:0=A", "0:0:1=A", "0:0:2=A", "0:0:3=B", "0:1:0=B", "0:1:1=B"},
		},
		{
			name:  "grouped starts new row",
			codes: []string{"A", "B"},
			grid:  Grid{Columns: 4, Rows: 2},
			opts:  Options{Repeat: 3, Group: true},
			want:  []string{"0:0:0=A", "0:0:1=A", "0:0:2=A", "0:1:0=B", "0:1:1=B", "0:1:2=B"},
		},
		{
			name:  "fill pads row with same code",
			codes: []string{"A", "B"},
			grid:  Grid{Columns: 4, Rows: 2},
			opts:  Options{Repeat: 3, Group: true, Fill: true},
			want: []string{
				"0:0:0=A", "0:0:1=A", "0:0:2=A", "0:0:3=A",
				"0:1:0=B", "0:1:1=B", "0:1:2=B", "0:1:3=B",
			},
		},
		{
			name:  "fill implies group",
			codes: []string{"A", "B"},
			grid:  Grid{Columns: 2, Rows: 3},
			opts:  Options{Repeat: 1, Fill: true},
			want:  []string{"0:0:0=A", "0:0:1=A", "0:1:0=B", "0:1:1=B"},
		},
		{
			name:  "fill rounds to whole rows",
			codes: []string{"A"},
			grid:  Grid{Columns: 2, Rows: 3},
			opts:  Options{Repeat: 3, Fill: true},
			want:  []string{"0:0:0=A", "0:0:1=A", "0:1:0=A", "0:1:1=A"},
		},
		{
			name:  "fill remainder starts new page",
			codes: []string{"A", "B", "C"},
			grid:  Grid{Columns: 2, Rows: 2},
			opts:  Options{Repeat: 1, Fill: true},
			want:  []string{"0:0:0=A", "0:0:1=A", "0:1:0=B", "0:1:1=B", "1:0:0=C", "1:0:1=C"},
		},
		{
			name:  "grouped code rolls onto next page",
			codes: []string{"A", "B"},
			grid:  Grid{Columns: 3, Rows: 2},
			opts:  Options{Repeat: 4, Group: true},
			want: []string{
				"0:0:0=A", "0:0:1=A", "0:0:2=A", "0:1:0=A",
				"1:0:0=B", "1:0:1=B", "1:0:2=B", "1:1:0=B",
			},
		},
		{
			name:  "grouped code ending on row boundary adds no blank row",
			codes: []string{"A", "B"},
			grid:  Grid{Columns: 2, Rows: 3},
			opts:  Options{Repeat: 2, Group: true},
			want:  []string{"0:0:0=A", "0:0:1=A", "0:1:0=B", "0:1:1=B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, err := Tile(tt.codes, tt.grid, tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, positions(pages)); diff != "" {
				t.Errorf("placement mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTileProperties(t *testing.T) {
	grids := []Grid{{Columns: 1, Rows: 1}, {Columns: 3, Rows: 2}, {Columns: 4, Rows: 5}, {Columns: 7, Rows: 10}}
	for _, grid := range grids {
		for _, n := range []int{1, 2, 5, 13, 40} {
			for _, repeat := range []int{1, 2, 3, 8} {
				for _, opts := range []Options{
					{Repeat: repeat},
					{Repeat: repeat, Group: true},
					{Repeat: repeat, Group: true, Fill: true},
				} {
					name := fmt.Sprintf("%dx%d/n=%d/%+v", grid.Columns, grid.Rows, n, opts)
					t.Run(name, func(t *testing.T) {
						checkTileProperties(t, codes(n), grid, opts)
					})
				}
			}
		}
	}
}

func checkTileProperties(t *testing.T, in []string, grid Grid, opts Options) {
	t.Helper()

	pages, err := Tile(in, grid, opts)
	if err != nil {
		t.Fatal(err)
	}

	counts := map[string]int{}
	index := 0
	for i, p := range pages {
		if p.Number != i {
			t.Errorf("page %d has Number %d", i, p.Number)
		}
		if len(p.Cells) == 0 {
			t.Errorf("page %d is empty", i)
		}
		if len(p.Cells) > grid.Capacity() {
			t.Errorf("page %d holds %d cells, capacity %d", i, len(p.Cells), grid.Capacity())
		}
		if !opts.Group && !opts.Fill && i < len(pages)-1 && len(p.Cells) != grid.Capacity() {
			t.Errorf("non-final page %d holds %d cells, want %d", i, len(p.Cells), grid.Capacity())
		}

		occupied := map[[2]int]bool{}
		for _, c := range p.Cells {
			if c.Index != index {
				t.Errorf("cell index %d, want %d", c.Index, index)
			}
			index++
			if c.Row < 0 || c.Row >= grid.Rows || c.Col < 0 || c.Col >= grid.Columns {
				t.Errorf("cell %+v outside grid %+v", c, grid)
			}
			key := [2]int{c.Row, c.Col}
			if occupied[key] {
				t.Errorf("page %d cell (%d, %d) used twice", i, c.Row, c.Col)
			}
			occupied[key] = true
			counts[c.Code]++
		}

		if opts.Fill {
			for r := 0; r < p.RowCount(); r++ {
				row := p.Row(r)
				for _, c := range row {
					if c.Code != row[0].Code {
						t.Errorf("page %d row %d mixes %s and %s", i, r, row[0].Code, c.Code)
					}
				}
				if len(row) != grid.Columns {
					t.Errorf("page %d row %d has %d cells, want a full row of %d", i, r, len(row), grid.Columns)
				}
			}
		}
	}

	want := CopiesPerCode(grid, opts)
	for _, code := range in {
		if counts[code] != want {
			t.Errorf("code %s placed %d times, want %d", code, counts[code], want)
		}
	}
	if !opts.Fill && want != opts.Repeat {
		t.Errorf("CopiesPerCode = %d without fill, want %d", want, opts.Repeat)
	}

	n, err := PageCount(len(in), grid, opts)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(pages) {
		t.Errorf("PageCount = %d, Tile produced %d pages", n, len(pages))
	}
}

func TestTileDeterministic(t *testing.T) {
	in := codes(37)
	grid := Grid{Columns: 5, Rows: 6}
	opts := Options{Repeat: 3, Group: true, Fill: true}

	a, err := Tile(in, grid, opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Tile(in, grid, opts)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Tile is not deterministic (-first +second):\n%s", diff)
	}
}

func TestTileInvalid(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
		opts Options
	}{
		{"zero repeat", Grid{Columns: 2, Rows: 2}, Options{Repeat: 0}},
		{"negative repeat", Grid{Columns: 2, Rows: 2}, Options{Repeat: -2}},
		{"empty grid", Grid{Columns: 0, Rows: 4}, Options{Repeat: 1}},
		{"repeat over limit", Grid{Columns: 2, Rows: 2}, Options{Repeat: MaxPlacements + 1}},
		{"huge repeat with fill", Grid{Columns: 5, Rows: 6}, Options{Repeat: math.MaxInt, Fill: true}},
		{"huge repeat", Grid{Columns: 5, Rows: 6}, Options{Repeat: math.MaxInt32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Tile(codes(3), tt.grid, tt.opts); !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Tile error = %v, want INVALID_INPUT", err)
			}
			if _, err := PageCount(3, tt.grid, tt.opts); !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("PageCount error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestPageCountNoCodes(t *testing.T) {
	n, err := PageCount(0, Grid{Columns: 2, Rows: 2}, Options{Repeat: 1})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("PageCount(0) = %d, want 0", n)
	}
}

func TestCopiesPerCodeLargeRepeat(t *testing.T) {
	grid := Grid{Columns: 5, Rows: 6}
	if got := CopiesPerCode(grid, Options{Repeat: math.MaxInt, Fill: true}); got < math.MaxInt-grid.Columns {
		t.Errorf("CopiesPerCode(MaxInt, fill) = %d, want a saturated positive count", got)
	}
	if got := CopiesPerCode(grid, Options{Repeat: 12, Fill: true}); got != 15 {
		t.Errorf("CopiesPerCode(12, fill) = %d, want 15", got)
	}
}

func TestValidatePlacements(t *testing.T) {
	grid := Grid{Columns: 5, Rows: 6}
	tests := []struct {
		name    string
		count   int
		opts    Options
		wantErr bool
	}{
		{"at limit", MaxPlacements / 10, Options{Repeat: 10}, false},
		{"fill at limit", MaxPlacements / 5, Options{Repeat: 3, Fill: true}, false},
		{"single code at limit", 1, Options{Repeat: MaxPlacements}, false},

		{"over limit", MaxPlacements/10 + 1, Options{Repeat: 10}, true},
		{"fill rounding over limit", MaxPlacements / 3, Options{Repeat: 3, Fill: true}, true},
		{"product overflows int", math.MaxInt / 2, Options{Repeat: 4}, true},
		{"max repeat with fill", 1, Options{Repeat: math.MaxInt, Fill: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlacements(tt.count, grid, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePlacements() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("ValidatePlacements() code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestPageCountLargeRun(t *testing.T) {
	grid := Grid{Columns: 5, Rows: 6}
	tests := []struct {
		name  string
		count int
		opts  Options
		want  int
	}{
		// 100000 labels at 30 per page.
		{"one code", 1, Options{Repeat: MaxPlacements}, 3334},
		// 7 copies take 2 rows each when grouped: 9 codes span 18 rows, the last adds 7 cells.
		{"grouped", 10, Options{Repeat: 7, Group: true}, 4},
		{"filled", 10, Options{Repeat: 7, Fill: true}, 4},
		{"ungrouped", 10, Options{Repeat: 7}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PageCount(tt.count, grid, tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("PageCount() = %d, want %d", got, tt.want)
			}
		})
	}
}
