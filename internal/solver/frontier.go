package solver

import "github.com/avrly/mineprob/internal/geometry"

// frontier collects the backtracking variables: closed cells that remain
// Undetermined after preprocessing and border at least one revealed cell.
// Order is deterministic row-major, matching the iteration order of the
// grid itself — correctness never depends on it, but it keeps test outputs
// reproducible.
//
// interior reports the count of closed cells with no revealed neighbor at
// all; these are indistinguishable from one another by any clue and are
// never reachable by preprocessing, so by construction they stay
// Undetermined and are excluded from the frontier.
func frontier(s [][]int, nbrs *geometry.Table, class []Classification) (cells []geometry.Point, interior int) {
	rows, cols := len(s), len(s[0])
	idx := func(r, c int) int { return r*cols + c }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if s[r][c] != -1 {
				continue
			}
			hasRevealedNeighbor := false
			for _, n := range nbrs.Of(r, c) {
				if s[n.Row][n.Col] != -1 {
					hasRevealedNeighbor = true
					break
				}
			}
			if !hasRevealedNeighbor {
				interior++
				continue
			}
			if class[idx(r, c)] == Undetermined {
				cells = append(cells, geometry.Point{Row: r, Col: c})
			}
		}
	}
	return cells, interior
}
