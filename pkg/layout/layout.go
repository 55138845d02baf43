package layout

import (
	"github.com/matzehuels/qrlabels/pkg/errors"
)

// Layout is the complete placement plan for a run.
type Layout struct {
	Geometry Geometry
	Grid     Grid
	Pages    []Page
	CutLines []Line // guides drawn on every page; nil without cut lines
}

// Placements returns the total number of placed cells.
func (l Layout) Placements() int {
	n := 0
	for _, p := range l.Pages {
		n += len(p.Cells)
	}
	return n
}

// Plan computes the grid for geom and tiles codes onto it.
func Plan(codes []string, geom Geometry, opts Options) (Layout, error) {
	if geom.LabelSize < 1 {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput, "label size must be at least one dot")
	}
	grid := geom.Grid()
	if grid.Empty() {
		w, h := geom.Printable()
		return Layout{}, errors.New(errors.ErrCodeInvalidInput,
			"label of %.2fin does not fit the printable area of %.2fin x %.2fin",
			float64(geom.LabelSize)/DPI, w/DPI, h/DPI)
	}

	pages, err := Tile(codes, grid, opts)
	if err != nil {
		return Layout{}, err
	}

	return Layout{
		Geometry: geom,
		Grid:     grid,
		Pages:    pages,
		CutLines: geom.Guides(),
	}, nil
}
