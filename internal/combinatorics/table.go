// Package combinatorics builds a binomial coefficient table in extended
// precision, the weighting primitive the solver leans on to count mine
// arrangements over the unconstrained interior.
package combinatorics

import "math/big"

// precision is the big.Float mantissa width, in bits. No Go standard type
// matches the 80-bit extended float the reference implementation used, and
// no arbitrary-precision decimal library is available in this repo's
// dependency set, so big.Float stands in. 200 bits leaves enormous headroom
// over the 64-bit floor the table's accuracy bound requires, even at the
// largest preset (C[480][100]).
const precision = 200

// Table is a triangular table of binomial coefficients C[n][k] for
// 0 <= k <= n <= size, built once and read many times during a solve.
type Table struct {
	size int
	rows [][]*big.Float
}

// Build constructs C[n][k] for 0 <= k <= n <= size using the multiplicative
// recurrence C[i][j] = C[i][j-1] * (i+1-j) / j, dividing before multiplying
// so intermediate products stay bounded.
func Build(size int) *Table {
	t := &Table{size: size, rows: make([][]*big.Float, size+1)}
	for i := 0; i <= size; i++ {
		row := make([]*big.Float, i+1)
		row[0] = newFloat(1)
		for j := 1; j <= i; j++ {
			factor := zeroFloat().Quo(newFloat(float64(i+1-j)), newFloat(float64(j)))
			row[j] = zeroFloat().Mul(row[j-1], factor)
		}
		t.rows[i] = row
	}
	return t
}

func newFloat(v float64) *big.Float {
	return new(big.Float).SetPrec(precision).SetFloat64(v)
}

func zeroFloat() *big.Float {
	return new(big.Float).SetPrec(precision)
}

// C returns C(n, k), or zero outside the valid range (k < 0, k > n, or
// n < 0), matching the reference's nCk boundary handling.
func (t *Table) C(n, k int) *big.Float {
	if n < 0 || k < 0 || k > n {
		return newFloat(0)
	}
	return t.rows[n][k]
}

// Size reports the largest n this table was built for.
func (t *Table) Size() int {
	return t.size
}
