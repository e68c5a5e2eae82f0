// Package board owns the live game state a player (human or the autonomous
// harness) interacts with: mine placement, flood-fill reveal, flagging, and
// win/loss detection. It is the concrete counterpart to the abstract S grid
// the solver package consumes.
package board

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/avrly/mineprob/internal/geometry"
)

// Outcome is the terminal state of a game, or InProgress while it continues.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in progress"
	}
}

// Cell is the state of a single board position.
type Cell struct {
	Mine     bool
	Revealed bool
	Flagged  bool
	Adjacent int // valid once Revealed; count of mines among the 8 neighbors
}

// ErrOutOfBounds is returned by Reveal/ToggleFlag for coordinates outside
// the board.
var ErrOutOfBounds = errors.New("board: coordinate out of bounds")

// Board is a rectangular Minesweeper board. Mines are placed lazily on the
// first Reveal call so the first click is never a mine (and never borders
// one), matching the reference implementation's _fill_bombs.
type Board struct {
	mu sync.Mutex

	Rows, Cols, MineCount int

	cells   [][]Cell
	nbrs    *geometry.Table
	started bool
	closed  int // remaining unrevealed, non-mine cells
	outcome Outcome
}

// NewBoard allocates a closed rows x cols board with mineCount mines to be
// placed on first reveal.
func NewBoard(rows, cols, mineCount int) *Board {
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	return &Board{
		Rows:      rows,
		Cols:      cols,
		MineCount: mineCount,
		cells:     cells,
		nbrs:      geometry.Build(rows, cols),
		closed:    rows*cols - mineCount,
	}
}

// NewSeededBoard allocates a board with mines placed at exactly the given
// coordinates rather than chosen by the RNG on first reveal. Intended for
// deterministic tests of the player harness and UI, where a reproducible
// layout matters more than first-click safety.
func NewSeededBoard(rows, cols int, mines []geometry.Point) *Board {
	b := NewBoard(rows, cols, len(mines))
	for _, p := range mines {
		b.cells[p.Row][p.Col].Mine = true
	}
	b.computeAdjacent()
	b.started = true
	return b
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.Rows && col >= 0 && col < b.Cols
}

// Reveal opens the cell at (row, col). If it is the first reveal of the
// game, mines are placed first, excluding this cell and its neighbors. If
// the opened cell has no adjacent mines, all reachable zero-clue cells are
// flood-filled open as well. Returns the resulting game outcome.
func (b *Board) Reveal(row, col int) (Outcome, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.inBounds(row, col) {
		return b.outcome, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	if b.outcome != InProgress {
		return b.outcome, nil
	}
	if !b.started {
		b.placeMines(row, col)
		b.computeAdjacent()
		b.started = true
	}

	c := &b.cells[row][col]
	if c.Revealed || c.Flagged {
		return b.outcome, nil
	}

	b.open(row, col)
	b.updateOutcome()
	return b.outcome, nil
}

// open reveals a single cell and, if it has no adjacent mines, iteratively
// floods outward to every reachable zero-clue cell. Iterative rather than
// recursive so large boards (e.g. the 30x16 preset) don't grow the call
// stack the way the teacher's recursive showCell does.
func (b *Board) open(row, col int) {
	queue := []geometry.Point{{Row: row, Col: col}}
	visited := make(map[geometry.Point]bool)

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if visited[p] {
			continue
		}
		visited[p] = true

		c := &b.cells[p.Row][p.Col]
		if c.Revealed {
			continue
		}
		c.Revealed = true
		if c.Mine {
			b.outcome = Lost
			continue
		}
		b.closed--

		if c.Adjacent == 0 {
			for _, n := range b.nbrs.Of(p.Row, p.Col) {
				if !b.cells[n.Row][n.Col].Revealed && !b.cells[n.Row][n.Col].Flagged {
					queue = append(queue, n)
				}
			}
		}
	}
}

// updateOutcome checks the win condition: every non-mine cell revealed.
func (b *Board) updateOutcome() {
	if b.outcome == Lost {
		return
	}
	if b.closed == 0 {
		b.outcome = Won
	}
}

// ToggleFlag flips the flagged state of a closed cell.
func (b *Board) ToggleFlag(row, col int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.inBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	c := &b.cells[row][col]
	if !c.Revealed {
		c.Flagged = !c.Flagged
	}
	return nil
}

// Outcome reports the current game outcome.
func (b *Board) Outcome() Outcome {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.outcome
}

// Cell returns a copy of the cell state at (row, col), for rendering.
func (b *Board) Cell(row, col int) Cell {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cells[row][col]
}

// Grid returns the solver-shaped S grid: -1 for any unrevealed cell
// (flagged or not — flags are a UI/player concern, not a solver input), and
// the cached clue 0..8 for revealed cells.
func (b *Board) Grid() [][]int {
	b.mu.Lock()
	defer b.mu.Unlock()

	g := make([][]int, b.Rows)
	for r := 0; r < b.Rows; r++ {
		g[r] = make([]int, b.Cols)
		for c := 0; c < b.Cols; c++ {
			if b.cells[r][c].Revealed {
				g[r][c] = b.cells[r][c].Adjacent
			} else {
				g[r][c] = -1
			}
		}
	}
	return g
}

// placeMines scatters MineCount mines uniformly at random, excluding the
// given cell and its neighbors (first-click safety), matching
// original_source/MineSweeper.h's _fill_bombs. If fewer candidate cells
// remain than MineCount, only that many mines are placed, and MineCount and
// the closed-cell count are lowered to match.
func (b *Board) placeMines(safeRow, safeCol int) {
	excluded := map[geometry.Point]bool{{Row: safeRow, Col: safeCol}: true}
	for _, n := range b.nbrs.Of(safeRow, safeCol) {
		excluded[n] = true
	}

	var candidates []geometry.Point
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			p := geometry.Point{Row: r, Col: c}
			if !excluded[p] {
				candidates = append(candidates, p)
			}
		}
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	n := b.MineCount
	if n > len(candidates) {
		n = len(candidates)
		b.MineCount = n
		b.closed = b.Rows*b.Cols - n
	}
	for i := 0; i < n; i++ {
		p := candidates[i]
		b.cells[p.Row][p.Col].Mine = true
	}
}

// computeAdjacent fills the cached clue for every cell once mines are
// placed.
func (b *Board) computeAdjacent() {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			count := 0
			for _, n := range b.nbrs.Of(r, c) {
				if b.cells[n.Row][n.Col].Mine {
					count++
				}
			}
			b.cells[r][c].Adjacent = count
		}
	}
}
