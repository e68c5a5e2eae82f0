package solver

// assemble converts the normalized accumulators into the full probability
// grid: revealed and forced-safe cells are 0, forced-mine cells are 1,
// frontier cells get their own accumulator, and every other closed cell
// (the interior) shares the single interior probability.
func assemble(s [][]int, class []Classification, cells []cellProb, interiorP float64) [][]float64 {
	rows, cols := len(s), len(s[0])
	p := make([][]float64, rows)
	for r := range p {
		p[r] = make([]float64, cols)
	}

	frontierIdx := make(map[[2]int]float64, len(cells))
	for _, cp := range cells {
		frontierIdx[[2]int{cp.row, cp.col}] = cp.prob
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if s[r][c] != -1 {
				p[r][c] = 0
				continue
			}
			switch class[r*cols+c] {
			case ForcedMine:
				p[r][c] = 1
			case ForcedSafe:
				p[r][c] = 0
			default:
				if prob, ok := frontierIdx[[2]int{r, c}]; ok {
					p[r][c] = prob
				} else {
					p[r][c] = interiorP
				}
			}
		}
	}
	return p
}

type cellProb struct {
	row, col int
	prob     float64
}
