package solver

import "errors"

// ErrMalformedInput is returned when the input grid or mine count violates
// Solve's preconditions: a cell value outside {-1..8}, a non-rectangular
// grid, or a mine count outside [0, rows*cols].
var ErrMalformedInput = errors.New("solver: malformed input")

// ErrUnsatisfiable is returned when no mine assignment is consistent with
// the revealed clues and the declared mine count (total weight is zero
// after enumeration).
var ErrUnsatisfiable = errors.New("solver: no consistent mine assignment")
