package game

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/avrly/mineprob/internal/board"
)

// Renderer draws a board.Board onto a tview.Table.
type Renderer struct {
	boardTable *tview.Table
}

// NewRenderer allocates a Renderer over a fresh table.
func NewRenderer() *Renderer {
	return &Renderer{
		boardTable: tview.NewTable(),
	}
}

// DrawBoard repaints every cell of b.
func (r *Renderer) DrawBoard(b *board.Board) {
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			r.RenderCell(b, row, col)
		}
	}
	r.boardTable.SetSelectable(true, true)
	r.boardTable.SetFixed(b.Rows, b.Cols)
}

// RenderCell repaints a single cell.
func (r *Renderer) RenderCell(b *board.Board, row, col int) {
	cell := b.Cell(row, col)

	cellText := "."
	switch {
	case cell.Revealed && cell.Mine:
		cellText = "*"
	case cell.Revealed:
		cellText = fmt.Sprintf("%d", cell.Adjacent)
	case cell.Flagged:
		cellText = "F"
	}

	r.boardTable.SetCell(row, col, tview.NewTableCell(cellText).SetAlign(tview.AlignCenter))
}
