package player

import (
	"context"
	"testing"

	"github.com/avrly/mineprob/internal/board"
	"github.com/avrly/mineprob/internal/geometry"
)

// A 5x5 board with a single mine tucked in a corner far from the center.
// The center is a zero cell, so the initial reveal's flood fill opens every
// non-mine cell; the harness must report that terminal outcome and count
// the initial move.
func TestRunReachesTerminalOutcome(t *testing.T) {
	mines := []geometry.Point{{Row: 0, Col: 0}}
	b := board.NewSeededBoard(5, 5, mines)

	res, err := Run(context.Background(), b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome == board.InProgress {
		t.Fatalf("harness must reach a terminal outcome")
	}
	if res.Moves == 0 {
		t.Fatalf("expected at least the initial move to be recorded")
	}
}

// A single mine in a corner of a 9x9 board, opened from the center, should
// reliably win: the center is a zero cell, so the initial reveal's flood
// fill opens every non-mine cell and no guess is ever needed.
func TestRunWithObviousLayoutWins(t *testing.T) {
	mines := []geometry.Point{{Row: 0, Col: 0}}
	b := board.NewSeededBoard(9, 9, mines)

	res, err := Run(context.Background(), b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != board.Won {
		t.Fatalf("expected Won against a single isolated mine, got %v", res.Outcome)
	}
}

func TestRunRespectsCancellation(t *testing.T) {
	mines := []geometry.Point{{Row: 0, Col: 0}}
	b := board.NewSeededBoard(9, 9, mines)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, b)
	if err == nil {
		t.Fatalf("expected context cancellation error")
	}
	if res.Moves == 0 {
		t.Fatalf("expected the initial reveal to have happened before cancellation was observed")
	}
}
