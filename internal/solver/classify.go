package solver

import "github.com/avrly/mineprob/internal/geometry"

// preprocess runs the two forced-mine / forced-safe propagation passes
// described in the constraint preprocessor component. It returns a
// row-major Classification slice for closed cells only; revealed cells are
// left Undetermined in this slice since they are handled separately (they
// are implicitly safe and never enter the frontier).
//
// Only a single pass of each rule is applied; the design does not iterate
// to a fixpoint. Stronger, iterated propagation would shrink the frontier
// and speed up the search but would not change the final probabilities, so
// it is not part of the contract.
func preprocess(s [][]int, nbrs *geometry.Table) []Classification {
	rows, cols := len(s), len(s[0])
	class := make([]Classification, rows*cols)

	idx := func(r, c int) int { return r*cols + c }

	// Pass 1 — forced mines: a revealed cell whose closed-neighbor count
	// equals its clue has every closed neighbor as a mine.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			k := s[r][c]
			if k < 1 {
				continue
			}
			closed := closedNeighbors(s, nbrs, r, c)
			if len(closed) != k {
				continue
			}
			for _, p := range closed {
				class[idx(p.Row, p.Col)] = ForcedMine
			}
		}
	}

	// Pass 2 — forced safes: a revealed cell whose forced-mine neighbor
	// count equals its clue has every other neighbor safe.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			k := s[r][c]
			if k < 0 {
				continue
			}
			mines := 0
			for _, n := range nbrs.Of(r, c) {
				if s[n.Row][n.Col] == -1 && class[idx(n.Row, n.Col)] == ForcedMine {
					mines++
				}
			}
			if mines != k {
				continue
			}
			for _, n := range nbrs.Of(r, c) {
				if s[n.Row][n.Col] != -1 {
					continue
				}
				if class[idx(n.Row, n.Col)] != ForcedMine {
					class[idx(n.Row, n.Col)] = ForcedSafe
				}
			}
		}
	}

	return class
}

// closedNeighbors returns the closed neighbors of a revealed cell.
func closedNeighbors(s [][]int, nbrs *geometry.Table, r, c int) []geometry.Point {
	var closed []geometry.Point
	for _, n := range nbrs.Of(r, c) {
		if s[n.Row][n.Col] == -1 {
			closed = append(closed, n)
		}
	}
	return closed
}
