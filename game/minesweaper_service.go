package game

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/avrly/mineprob/internal/board"
	"github.com/avrly/mineprob/internal/player"
	"github.com/avrly/mineprob/internal/scoreboard"
)

// ShowTask is a pending reveal request for a single cell.
type ShowTask struct {
	Row int
	Col int
}

// NewShowTask builds a ShowTask for (row, col).
func NewShowTask(row, col int) *ShowTask {
	return &ShowTask{Row: row, Col: col}
}

// MinesweeperService owns the tview application and drives a board.Board,
// either from direct key input or by handing control to the autonomous
// player harness.
type MinesweeperService struct {
	game       *board.Board
	difficulty board.Difficulty
	renderer   *Renderer
	app        *tview.Application
	scores     *scoreboard.Store
	autoStart  bool

	baseCtx    context.Context
	cancelFunc context.CancelFunc

	autoPlayMu     sync.Mutex
	autoPlayCancel context.CancelFunc

	moveMu sync.Mutex
	moves  int

	showTasks       chan *ShowTask
	flagTasks       chan *ShowTask
	rerenderTasks   chan struct{}
	checkGameStatus chan struct{}
	revealAllBoard  chan struct{}
}

// NewMinesweeperService constructs a service that records outcomes into
// scores; the board is supplied later by InitGame or InitCustomGame.
// autoStart, when true, hands the game straight to
// the autonomous player harness instead of waiting for an 'a' keypress,
// matching the CLI's -auto flag.
func NewMinesweeperService(scores *scoreboard.Store, autoStart bool) *MinesweeperService {
	return &MinesweeperService{
		renderer:  NewRenderer(),
		scores:    scores,
		autoStart: autoStart,
	}
}

// InitGame allocates a board for difficulty and runs the UI until the game
// ends or the player quits.
func (s *MinesweeperService) InitGame(difficulty board.Difficulty) {
	b, ok := board.NewPresetBoard(difficulty)
	if !ok {
		panic(fmt.Sprintf("unknown difficulty %q", difficulty))
	}
	s.initWith(difficulty, b)
}

// InitCustomGame runs the UI over a caller-built board, for the CLI's
// rows/cols/mines override flags. The outcome is recorded under the
// scoreboard entry for difficulty, whatever the board's shape.
func (s *MinesweeperService) InitCustomGame(difficulty board.Difficulty, b *board.Board) {
	s.initWith(difficulty, b)
}

func (s *MinesweeperService) initWith(difficulty board.Difficulty, b *board.Board) {
	s.game = b
	s.difficulty = difficulty

	s.renderer.DrawBoard(s.game)
	s.app = tview.NewApplication()
	s.app.SetRoot(s.renderer.boardTable, true)

	s.showTasks = make(chan *ShowTask)
	s.flagTasks = make(chan *ShowTask)
	s.rerenderTasks = make(chan struct{})
	s.checkGameStatus = make(chan struct{})
	s.revealAllBoard = make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	s.baseCtx = ctx
	s.cancelFunc = cancel
	go s.run(ctx)

	s.handleInput()

	if s.autoStart {
		s.startAutoPlay(s.baseCtx)
	}

	if err := s.app.Run(); err != nil {
		panic(err)
	}
}

// EndGame stops the UI, cancels background work, persists the scoreboard,
// and exits the process.
func (s *MinesweeperService) EndGame() {
	s.app.Stop()
	s.cancelFunc()
	if s.scores != nil {
		_ = s.scores.Save()
	}
	os.Exit(0)
}

func (s *MinesweeperService) showCell(row, col int) {
	if _, err := s.game.Reveal(row, col); err != nil {
		return
	}
	s.moveMu.Lock()
	s.moves++
	s.moveMu.Unlock()
	s.rerenderTasks <- struct{}{}
	s.checkGameStatus <- struct{}{}
}

func (s *MinesweeperService) flagCell(row, col int) {
	if err := s.game.ToggleFlag(row, col); err != nil {
		return
	}
	s.rerenderTasks <- struct{}{}
}

// startAutoPlay hands the rest of the game to the autonomous player harness
// in its own goroutine, under a child context any later keypress cancels.
// A no-op if the harness is already running.
func (s *MinesweeperService) startAutoPlay(ctx context.Context) {
	s.autoPlayMu.Lock()
	if s.autoPlayCancel != nil {
		s.autoPlayMu.Unlock()
		return
	}
	childCtx, cancel := context.WithCancel(ctx)
	s.autoPlayCancel = cancel
	s.autoPlayMu.Unlock()

	go func() {
		defer func() {
			s.autoPlayMu.Lock()
			s.autoPlayCancel = nil
			s.autoPlayMu.Unlock()
		}()

		result, err := player.Run(childCtx, s.game)
		s.moveMu.Lock()
		s.moves += result.Moves
		s.moveMu.Unlock()
		if err != nil && childCtx.Err() == nil {
			return
		}
		s.rerenderTasks <- struct{}{}
		s.checkGameStatus <- struct{}{}
	}()
}

// cancelAutoPlay stops a running player-harness goroutine, if any.
func (s *MinesweeperService) cancelAutoPlay() {
	s.autoPlayMu.Lock()
	defer s.autoPlayMu.Unlock()
	if s.autoPlayCancel != nil {
		s.autoPlayCancel()
		s.autoPlayCancel = nil
	}
}

func (s *MinesweeperService) revealAll() {
	for row := 0; row < s.game.Rows; row++ {
		for col := 0; col < s.game.Cols; col++ {
			s.game.Reveal(row, col) //nolint:errcheck // best-effort reveal-all at game end
		}
	}
	s.rerenderTasks <- struct{}{}
}

// handleInput wires tcell key events to the service's internal task
// channels.
func (s *MinesweeperService) handleInput() {
	s.renderer.boardTable.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		row, col := s.renderer.boardTable.GetSelection()

		s.cancelAutoPlay()

		switch event.Key() {
		case tcell.KeyEnter:
			s.showTasks <- NewShowTask(row, col)
		case tcell.KeyRune:
			switch event.Rune() {
			case 'f', 'F':
				s.flagTasks <- NewShowTask(row, col)
			case 'a', 'A':
				s.startAutoPlay(s.baseCtx)
			case 'q', 'Q':
				s.EndGame()
			}
		}
		return event
	})
}

// run starts the background goroutines that drain the service's task
// channels until ctx is cancelled.
func (s *MinesweeperService) run(ctx context.Context) {
	go func(ctx context.Context) {
		for {
			select {
			case <-ctx.Done():
				return
			case task := <-s.showTasks:
				s.showCell(task.Row, task.Col)
			case task := <-s.flagTasks:
				s.flagCell(task.Row, task.Col)
			}
		}
	}(ctx)

	go func(ctx context.Context) {
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.rerenderTasks:
				s.app.QueueUpdateDraw(func() {
					s.renderer.DrawBoard(s.game)
				})
			}
		}
	}(ctx)

	go func(ctx context.Context) {
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.revealAllBoard:
				s.revealAll()
			}
		}
	}(ctx)

	go func(ctx context.Context) {
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.checkGameStatus:
				outcome := s.game.Outcome()
				if outcome == board.InProgress {
					continue
				}

				if s.scores != nil {
					s.moveMu.Lock()
					moves := s.moves
					s.moveMu.Unlock()
					s.scores.Record(s.difficulty, outcome, moves)
				}
				s.revealAllBoard <- struct{}{}
				time.Sleep(2 * time.Second)
				s.app.Stop()
				if outcome == board.Won {
					fmt.Println("Congratulations! You won the game!")
				} else {
					fmt.Println("Game Over! You hit a mine.")
				}
				if s.scores != nil {
					_ = s.scores.Save()
				}
				os.Exit(0)
			}
		}
	}(ctx)
}
