package game

import (
	"fmt"

	"github.com/avrly/mineprob/internal/board"
)

// GameController is the thin entry point the CLI drives: it owns nothing
// but a MinesweeperService and translates a requested difficulty into a
// running game.
type GameController struct {
	service *MinesweeperService
}

// NewGameController wraps service.
func NewGameController(service *MinesweeperService) *GameController {
	return &GameController{service: service}
}

// StartGame blocks until the game started at difficulty ends.
func (c *GameController) StartGame(difficulty board.Difficulty) {
	c.service.InitGame(difficulty)
}

// StartCustomGame blocks until a game over a caller-sized board ends,
// for the CLI's rows/cols/mines override flags.
func (c *GameController) StartCustomGame(difficulty board.Difficulty, b *board.Board) {
	c.service.InitCustomGame(difficulty, b)
}

// TerminateGame reports that the game is shutting down.
func (c *GameController) TerminateGame() {
	fmt.Println("Terminating the game...")
}
