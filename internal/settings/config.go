// Package settings persists user preferences between runs, following the
// load/save conventions of the teacher pack's own settings store.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/avrly/mineprob/internal/board"
)

// Config stores user preferences persisted to disk.
type Config struct {
	DefaultDifficulty board.Difficulty `json:"default_difficulty"`
	AutoPlay          bool             `json:"auto_play"`
	Theme             string           `json:"theme"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultDifficulty: board.Beginner,
		AutoPlay:          false,
		Theme:             "classic",
	}
}

// Store manages settings persistence.
type Store struct {
	path   string
	Config Config
}

// Load reads settings from the default location, ~/.mineprob/settings.json.
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads settings from a specific path. If path is empty, uses the
// default location. A missing file is not an error: defaults are returned.
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Store{Config: DefaultConfig()}, err
		}
		path = filepath.Join(home, ".mineprob", "settings.json")
	}

	s := &Store{path: path, Config: DefaultConfig()}

	data, err := os.ReadFile(path) //nolint:gosec // path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s.Config); err != nil {
		return s, err
	}
	s.normalize()
	return s, nil
}

// Save writes the settings to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// normalize falls back to defaults for any recognized-but-invalid field.
func (s *Store) normalize() {
	switch s.Config.DefaultDifficulty {
	case board.Beginner, board.Intermediate, board.Expert:
	default:
		s.Config.DefaultDifficulty = board.Beginner
	}
	if s.Config.Theme == "" {
		s.Config.Theme = "classic"
	}
}
