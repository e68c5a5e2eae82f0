package solver

// Classification is the tagged state of a closed cell during a solve. It is
// deliberately a single enum rather than a pair of booleans: a bomb/safe
// boolean pair would admit an illegal "both true" state.
type Classification uint8

const (
	Undetermined Classification = iota
	ForcedMine
	ForcedSafe
)
