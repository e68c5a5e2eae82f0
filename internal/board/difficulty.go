package board

// Difficulty names one of the three fixed presets the player harness and
// CLI are tested against.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Expert       Difficulty = "expert"
)

// Preset describes the board shape and mine count for a Difficulty.
type Preset struct {
	Rows, Cols, Mines int
}

var presets = map[Difficulty]Preset{
	Beginner:     {Rows: 9, Cols: 9, Mines: 10},
	Intermediate: {Rows: 16, Cols: 16, Mines: 40},
	Expert:       {Rows: 16, Cols: 30, Mines: 100},
}

// PresetFor returns the board shape for a named difficulty, and whether the
// name was recognized.
func PresetFor(d Difficulty) (Preset, bool) {
	p, ok := presets[d]
	return p, ok
}

// NewPresetBoard allocates a board sized for the given difficulty.
func NewPresetBoard(d Difficulty) (*Board, bool) {
	p, ok := PresetFor(d)
	if !ok {
		return nil, false
	}
	return NewBoard(p.Rows, p.Cols, p.Mines), true
}
