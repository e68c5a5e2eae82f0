package scoreboard

import (
	"path/filepath"
	"testing"

	"github.com/avrly/mineprob/internal/board"
)

func TestLoadMissingReturnsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Board) != 0 {
		t.Fatalf("expected empty scoreboard, got %+v", s.Board)
	}
}

func TestRecordAndRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Record(board.Beginner, board.Won, 12)
	s.Record(board.Beginner, board.Lost, 3)
	s.Record(board.Beginner, board.Won, 9)

	if err := s.Save(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := reloaded.Board[board.Beginner]
	if e == nil {
		t.Fatalf("expected an entry for Beginner")
	}
	if e.Wins != 2 || e.Losses != 1 {
		t.Fatalf("expected 2 wins / 1 loss, got %+v", e)
	}
	if e.BestMoves != 9 {
		t.Fatalf("expected best moves 9, got %d", e.BestMoves)
	}
}
