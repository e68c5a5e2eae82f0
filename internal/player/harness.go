// Package player implements the autonomous player harness described in the
// spec: a loop that repeatedly reads board state, propagates forced-safe
// openings, and falls back to the probability solver only when no safe
// move is available.
package player

import (
	"context"
	"errors"

	"github.com/avrly/mineprob/internal/board"
	"github.com/avrly/mineprob/internal/geometry"
	"github.com/avrly/mineprob/internal/solver"
)

// certainty is the tolerance at or below which the harness treats a
// probability as exactly 0 (a certain-safe cell), matching the spec's 1e-6
// threshold.
const certainty = 1e-6

// Result summarizes a finished (or cancelled) autonomous game.
type Result struct {
	Outcome board.Outcome
	Moves   int
}

// Run drives b with the autonomous harness until the game ends or ctx is
// cancelled. The initial move opens the board's center cell.
func Run(ctx context.Context, b *board.Board) (Result, error) {
	moves := 0

	nbrs := geometry.Build(b.Rows, b.Cols)

	center := geometry.Point{Row: b.Rows / 2, Col: b.Cols / 2}
	if _, err := b.Reveal(center.Row, center.Col); err != nil {
		return Result{}, err
	}
	moves++

	flagged := make(map[geometry.Point]bool)

	for {
		select {
		case <-ctx.Done():
			return Result{Outcome: b.Outcome(), Moves: moves}, ctx.Err()
		default:
		}

		if b.Outcome() != board.InProgress {
			return Result{Outcome: b.Outcome(), Moves: moves}, nil
		}

		opened, err := propagateSafe(b, nbrs, flagged)
		if err != nil {
			return Result{}, err
		}
		if !opened {
			n, err := step(b, flagged)
			if err != nil {
				return Result{}, err
			}
			moves += n
		} else {
			moves++
		}

		flagMines(b, nbrs, flagged)
	}
}

// propagateSafe opens, for every revealed clue whose flagged-neighbor count
// equals its clue, all remaining unflagged closed neighbors. Reports
// whether any cell was opened this round.
func propagateSafe(b *board.Board, nbrs *geometry.Table, flagged map[geometry.Point]bool) (bool, error) {
	grid := b.Grid()
	opened := false

	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if grid[r][c] < 0 {
				continue
			}
			k := grid[r][c]
			flagCount := 0
			for _, n := range nbrs.Of(r, c) {
				if flagged[n] {
					flagCount++
				}
			}
			if flagCount != k {
				continue
			}
			for _, n := range nbrs.Of(r, c) {
				if grid[n.Row][n.Col] != -1 || flagged[n] {
					continue
				}
				if b.Outcome() != board.InProgress {
					return opened, nil
				}
				if _, err := b.Reveal(n.Row, n.Col); err != nil {
					return opened, err
				}
				opened = true
			}
		}
	}
	return opened, nil
}

// flagMines flags, for every revealed clue whose closed-neighbor count
// equals its clue, those neighbors.
func flagMines(b *board.Board, nbrs *geometry.Table, flagged map[geometry.Point]bool) {
	grid := b.Grid()

	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if grid[r][c] < 0 {
				continue
			}
			k := grid[r][c]
			var closed []geometry.Point
			for _, n := range nbrs.Of(r, c) {
				if grid[n.Row][n.Col] == -1 {
					closed = append(closed, n)
				}
			}
			if len(closed) != k {
				continue
			}
			for _, n := range closed {
				if !flagged[n] {
					flagged[n] = true
					_ = b.ToggleFlag(n.Row, n.Col)
				}
			}
		}
	}
}

// step invokes the solver when no safe move is available: every cell with
// probability at or below the certainty threshold is opened as a certain
// safe move; failing that, the single lowest-probability closed cell is
// opened.
func step(b *board.Board, flagged map[geometry.Point]bool) (int, error) {
	grid := b.Grid()
	probs, err := solver.Solve(grid, b.MineCount)
	if err != nil {
		return 0, err
	}

	var safest []geometry.Point
	best := geometry.Point{Row: -1, Col: -1}
	bestP := 2.0

	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if grid[r][c] != -1 {
				continue
			}
			p := probs[r][c]
			if p <= certainty {
				safest = append(safest, geometry.Point{Row: r, Col: c})
				continue
			}
			if p < bestP {
				bestP = p
				best = geometry.Point{Row: r, Col: c}
			}
		}
	}

	if len(safest) > 0 {
		opened := 0
		for _, p := range safest {
			if b.Outcome() != board.InProgress {
				break
			}
			if _, err := b.Reveal(p.Row, p.Col); err != nil {
				return opened, err
			}
			opened++
		}
		return opened, nil
	}

	if best.Row < 0 {
		return 0, errors.New("player: no closed cell available to open")
	}
	if _, err := b.Reveal(best.Row, best.Col); err != nil {
		return 0, err
	}
	return 1, nil
}
