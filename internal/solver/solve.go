// Package solver implements the exact mine-probability constraint solver:
// preprocessing, frontier selection, backtracking enumeration with
// consistency pruning, and probability assembly. Solve is its single entry
// point and is a pure, synchronous function of its inputs.
package solver

import (
	"fmt"
	"math/big"

	"github.com/avrly/mineprob/internal/combinatorics"
	"github.com/avrly/mineprob/internal/geometry"
)

// Solve computes, for every cell of grid, the exact probability that it
// holds a mine given the revealed clues and the total declared mine count.
//
// grid[r][c] must be -1 (closed) or 0..8 (a revealed clue — the count of
// mines among its 8 neighbors). mines must be in [0, rows*cols]. The
// returned grid has the same shape, each entry in [0, 1].
//
// Solve returns ErrMalformedInput if the preconditions above are violated,
// and ErrUnsatisfiable if no mine placement is consistent with the revealed
// clues and mine count.
func Solve(grid [][]int, mines int) ([][]float64, error) {
	if err := validate(grid, mines); err != nil {
		return nil, err
	}

	rows, cols := len(grid), len(grid[0])
	nbrs := geometry.Build(rows, cols)

	class := preprocess(grid, nbrs)
	cells, interior := frontier(grid, nbrs, class)

	initialMines := 0
	for _, c := range class {
		if c == ForcedMine {
			initialMines++
		}
	}

	comb := combinatorics.Build(rows * cols)
	e := &enumerator{
		s:        grid,
		nbrs:     nbrs,
		comb:     comb,
		class:    append([]Classification(nil), class...),
		cells:    cells,
		interior: interior,
		mines:    mines,
		cols:     cols,
	}
	e.run(initialMines)

	if e.total.Sign() == 0 {
		return nil, ErrUnsatisfiable
	}

	probs := make([]cellProb, len(cells))
	for j, p := range cells {
		ratio := new(big.Float).SetPrec(200).Quo(e.accum[j], e.total)
		v, _ := ratio.Float64()
		probs[j] = cellProb{row: p.Row, col: p.Col, prob: v}
	}
	interiorRatio := new(big.Float).SetPrec(200).Quo(e.accum[len(cells)], e.total)
	interiorP, _ := interiorRatio.Float64()

	return assemble(grid, class, probs, interiorP), nil
}

func validate(grid [][]int, mines int) error {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return fmt.Errorf("%w: empty grid", ErrMalformedInput)
	}
	cols := len(grid[0])
	for _, row := range grid {
		if len(row) != cols {
			return fmt.Errorf("%w: non-rectangular grid", ErrMalformedInput)
		}
		for _, v := range row {
			if v < -1 || v > 8 {
				return fmt.Errorf("%w: cell value %d out of range", ErrMalformedInput, v)
			}
		}
	}
	if mines < 0 || mines > len(grid)*cols {
		return fmt.Errorf("%w: mine count %d out of range", ErrMalformedInput, mines)
	}
	return nil
}
