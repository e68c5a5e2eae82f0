// Package geometry builds the fixed 8-connectivity neighbor tables shared by
// the board and solver packages.
package geometry

// Point is a zero-based row/column coordinate.
type Point struct {
	Row, Col int
}

// Table holds the neighbor list for every cell of a fixed-size rectangular
// grid. It is built once per board shape and never mutated afterward, so it
// is safe to share by reference across goroutines.
type Table struct {
	Rows, Cols int
	neighbors  [][]Point
}

// Build computes the neighbor table for a rows x cols grid. Offsets are
// walked dy outer, dx inner, ascending, skipping the origin cell and any
// coordinate outside the grid.
func Build(rows, cols int) *Table {
	t := &Table{
		Rows:      rows,
		Cols:      cols,
		neighbors: make([][]Point, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			var ns []Point
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dy == 0 && dx == 0 {
						continue
					}
					nr, nc := r+dy, c+dx
					if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
						continue
					}
					ns = append(ns, Point{Row: nr, Col: nc})
				}
			}
			t.neighbors[r*cols+c] = ns
		}
	}
	return t
}

// Of returns the (immutable) neighbor list of cell (row, col).
func (t *Table) Of(row, col int) []Point {
	return t.neighbors[row*t.Cols+col]
}
