// Command mineprob plays Minesweeper in a terminal, optionally handing
// control to the probability-driven player harness.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/avrly/mineprob/game"
	"github.com/avrly/mineprob/internal/board"
	"github.com/avrly/mineprob/internal/scoreboard"
	"github.com/avrly/mineprob/internal/settings"
)

func main() {
	difficultyFlag := flag.String("difficulty", "", "beginner, intermediate, or expert (default: from saved settings)")
	rows := flag.Int("rows", 0, "override board row count (requires -cols and -mines)")
	cols := flag.Int("cols", 0, "override board column count (requires -rows and -mines)")
	mines := flag.Int("mines", 0, "override mine count (requires -rows and -cols)")
	autoPlay := flag.Bool("auto", false, "hand the game to the player harness immediately")
	flag.Parse()

	cfg, err := settings.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load settings: %v\n", err)
	}

	difficulty := cfg.Config.DefaultDifficulty
	if *difficultyFlag != "" {
		difficulty = board.Difficulty(*difficultyFlag)
	}
	if _, ok := board.PresetFor(difficulty); !ok {
		fmt.Fprintf(os.Stderr, "unknown difficulty %q, falling back to %q\n", difficulty, board.Beginner)
		difficulty = board.Beginner
	}
	if *autoPlay {
		cfg.Config.AutoPlay = true
	}

	scores, err := scoreboard.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load scoreboard: %v\n", err)
	}

	service := game.NewMinesweeperService(scores, cfg.Config.AutoPlay)
	controller := game.NewGameController(service)

	if *rows > 0 && *cols > 0 && *mines > 0 {
		if *mines >= *rows**cols {
			fmt.Fprintln(os.Stderr, "the number of mines must be less than the total number of cells")
			os.Exit(1)
		}
		controller.StartCustomGame(difficulty, board.NewBoard(*rows, *cols, *mines))
		return
	}

	controller.StartGame(difficulty)
}
