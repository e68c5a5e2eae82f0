package settings

import (
	"path/filepath"
	"testing"

	"github.com/avrly/mineprob/internal/board"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Config != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", s.Config)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Config.DefaultDifficulty = board.Expert
	s.Config.AutoPlay = true
	s.Config.Theme = "amber"
	if err := s.Save(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reloaded.Config != s.Config {
		t.Fatalf("round trip mismatch: got %+v, want %+v", reloaded.Config, s.Config)
	}
}

func TestNormalizeFallsBackOnInvalidDifficulty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	s, _ := LoadFrom(path)
	s.Config.DefaultDifficulty = board.Difficulty("nonsense")
	if err := s.Save(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reloaded.Config.DefaultDifficulty != board.Beginner {
		t.Fatalf("expected fallback to Beginner, got %v", reloaded.Config.DefaultDifficulty)
	}
}
