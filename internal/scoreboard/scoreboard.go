// Package scoreboard persists per-difficulty win/loss records between runs,
// following the same load/save conventions as the teacher pack's scores
// store.
package scoreboard

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/avrly/mineprob/internal/board"
)

// Entry tracks outcomes for one difficulty.
type Entry struct {
	Wins      int `json:"wins"`
	Losses    int `json:"losses"`
	BestMoves int `json:"best_moves,omitempty"` // 0 means "no win recorded yet"
}

// Scoreboard holds one Entry per difficulty played.
type Scoreboard map[board.Difficulty]*Entry

// Store manages scoreboard persistence.
type Store struct {
	path  string
	Board Scoreboard
}

// Load reads the scoreboard from the default location,
// ~/.mineprob/scores.json.
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads the scoreboard from a specific path. If path is empty,
// uses the default location. A missing file is not an error: an empty
// scoreboard is returned.
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Store{Board: Scoreboard{}}, err
		}
		path = filepath.Join(home, ".mineprob", "scores.json")
	}

	s := &Store{path: path, Board: Scoreboard{}}

	data, err := os.ReadFile(path) //nolint:gosec // path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s.Board); err != nil {
		return s, err
	}
	return s, nil
}

// Save writes the scoreboard to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Board, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Record updates the scoreboard with the outcome of one finished game.
func (s *Store) Record(d board.Difficulty, outcome board.Outcome, moves int) {
	e, ok := s.Board[d]
	if !ok {
		e = &Entry{}
		s.Board[d] = e
	}
	switch outcome {
	case board.Won:
		e.Wins++
		if e.BestMoves == 0 || moves < e.BestMoves {
			e.BestMoves = moves
		}
	case board.Lost:
		e.Losses++
	}
}
