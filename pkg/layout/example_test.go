package layout_test

import (
	"fmt"

	"github.com/matzehuels/qrlabels/pkg/layout"
)

func ExamplePlan() {
	codes := []string{"AAAAA", "BBBBB", "CCCCC"}

	l, err := layout.Plan(codes, layout.NewGeometry(1.5, false), layout.Options{Repeat: 4, Fill: true})
	if err != nil {
		panic(err)
	}

	fmt.Println("Grid:", l.Grid.Columns, "x", l.Grid.Rows)
	fmt.Println("Pages:", len(l.Pages))
	fmt.Println("Placements:", l.Placements())
	for r := 0; r < l.Pages[0].RowCount(); r++ {
		row := l.Pages[0].Row(r)
		fmt.Println("Row", r, row[0].Code, len(row))
	}
	// Output:
	// Grid: 5 x 6
	// Pages: 1
	// Placements: 15
	// Row 0 AAAAA 5
	// Row 1 BBBBB 5
	// Row 2 CCCCC 5
}

func ExampleTile() {
	pages, err := layout.Tile([]string{"AAAAA", "BBBBB"}, layout.Grid{Columns: 3, Rows: 1}, layout.Options{Repeat: 2})
	if err != nil {
		panic(err)
	}

	for _, p := range pages {
		for _, c := range p.Cells {
			fmt.Printf("page %d row %d col %d: %s\n", p.Number, c.Row, c.Col, c.Code)
		}
	}
	// Output:
	// page 0 row 0 col 0: AAAAA
	// page 0 row 0 col 1: AAAAA
	// page 0 row 0 col 2: BBBBB
	// page 1 row 0 col 0: BBBBB
}
