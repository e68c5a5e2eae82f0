package solver

import (
	"math/big"

	"github.com/avrly/mineprob/internal/combinatorics"
	"github.com/avrly/mineprob/internal/geometry"
)

// enumerator carries the state threaded through the backtracking recursion.
// It is passed around as an explicit receiver rather than closed-over
// package globals, per the spec's design notes: the classification grid is
// shared and mutated in place, then restored on unwind.
type enumerator struct {
	s        [][]int
	nbrs     *geometry.Table
	comb     *combinatorics.Table
	class    []Classification
	cells    []geometry.Point // frontier, row-major
	interior int
	mines    int // total declared mine count B

	cols int

	accum []*big.Float // len(cells)+1
	total *big.Float
}

func (e *enumerator) idx(p geometry.Point) int { return p.Row*e.cols + p.Col }

// classOf returns the effective classification of any cell: revealed cells
// are implicitly ForcedSafe, closed cells use the shared classification
// grid.
func (e *enumerator) classOf(r, c int) Classification {
	if e.s[r][c] != -1 {
		return ForcedSafe
	}
	return e.class[r*e.cols+c]
}

// run starts the depth-first search from the first frontier cell with the
// preprocessor's forced-mine count as the initial running total.
func (e *enumerator) run(initialMines int) {
	e.accum = make([]*big.Float, len(e.cells)+1)
	for i := range e.accum {
		e.accum[i] = newZero()
	}
	e.total = newZero()
	e.recurse(0, initialMines)
}

func newZero() *big.Float {
	return new(big.Float).SetPrec(200)
}

func (e *enumerator) recurse(i, d int) {
	if i == len(e.cells) {
		e.leaf(d)
		return
	}

	p := e.cells[i]
	ci := e.idx(p)
	u := len(e.cells) - i - 1

	// Branch A: tentative mine.
	e.class[ci] = ForcedMine
	if e.prune(p, d+1, u) {
		e.recurse(i+1, d+1)
	}

	// Branch B: tentative safe.
	e.class[ci] = ForcedSafe
	if e.prune(p, d, u) {
		e.recurse(i+1, d)
	}

	e.class[ci] = Undetermined
}

// prune applies the global capacity bounds and local per-clue consistency
// check after a tentative assignment to cell p.
func (e *enumerator) prune(p geometry.Point, d, u int) bool {
	if d > e.mines {
		return false
	}
	if e.interior+u < e.mines-d {
		return false
	}

	for _, n := range e.nbrs.Of(p.Row, p.Col) {
		if e.s[n.Row][n.Col] == -1 {
			continue
		}
		k := e.s[n.Row][n.Col]
		mb, sb, total := 0, 0, 0
		for _, nn := range e.nbrs.Of(n.Row, n.Col) {
			total++
			switch e.classOf(nn.Row, nn.Col) {
			case ForcedMine:
				mb++
			case ForcedSafe:
				sb++
			}
		}
		if mb > k {
			return false
		}
		if total-sb < k {
			return false
		}
	}
	return true
}

// leaf accumulates the weighted count of a complete, consistent assignment
// into the running total and per-cell accumulators.
func (e *enumerator) leaf(d int) {
	r := e.mines - d
	weight := e.comb.C(e.interior, r)
	e.total.Add(e.total, weight)

	for j, p := range e.cells {
		if e.class[e.idx(p)] == ForcedMine {
			e.accum[j].Add(e.accum[j], weight)
		}
	}

	if e.interior >= 1 && r >= 1 {
		share := e.comb.C(e.interior-1, r-1)
		e.accum[len(e.cells)].Add(e.accum[len(e.cells)], share)
	}
}
