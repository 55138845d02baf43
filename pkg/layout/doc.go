// Package layout tiles labels onto LETTER pages.
//
// Layout is a pure computation: given the ordered codes, the page
// [Geometry] and the placement [Options], [Plan] returns the pages with
// every label's row and column, plus the optional cut-line guides. Nothing
// here renders or touches the filesystem.
//
// # Geometry
//
// All distances are in dots (1/300 inch). A LETTER page is 2550×3300 dots
// with a 150-dot (half inch) margin on every side. Labels are squares of
// ⌊300×scale⌋ dots. When cut lines are requested every cell gets a 1-dot
// gap for the guide, so the pitch grows by one dot and the grid loses one
// dot of usable area. The resulting grid is centered on the page.
//
// # Placement
//
// Labels are placed row-major, filling a page before starting the next:
//
//   - Each code is placed Repeat times in a row.
//   - With Group, every code starts at the beginning of a row.
//   - With Fill (which implies Group), each code's copies are rounded up to
//     a whole number of rows so no row mixes codes.
//
// The last page may be partially filled; empty cells are left blank.
package layout
