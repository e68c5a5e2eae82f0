package combinatorics

import "testing"

func TestSmallValues(t *testing.T) {
	tbl := Build(6)
	cases := []struct {
		n, k int
		want float64
	}{
		{0, 0, 1},
		{1, 0, 1},
		{1, 1, 1},
		{4, 2, 6},
		{5, 2, 10},
		{6, 3, 20},
		{6, 0, 1},
		{6, 6, 1},
	}
	for _, c := range cases {
		got, _ := tbl.C(c.n, c.k).Float64()
		if got != c.want {
			t.Errorf("C(%d,%d) = %v, want %v", c.n, c.k, got, c.want)
		}
	}
}

func TestOutOfRangeIsZero(t *testing.T) {
	tbl := Build(5)
	for _, c := range [][2]int{{5, 6}, {5, -1}, {-1, 0}} {
		got, _ := tbl.C(c[0], c[1]).Float64()
		if got != 0 {
			t.Errorf("C(%d,%d) = %v, want 0", c[0], c[1], got)
		}
	}
}

func TestPascalSymmetry(t *testing.T) {
	tbl := Build(20)
	for n := 0; n <= 20; n++ {
		for k := 0; k <= n; k++ {
			a, _ := tbl.C(n, k).Float64()
			b, _ := tbl.C(n, n-k).Float64()
			if a != b {
				t.Errorf("C(%d,%d)=%v != C(%d,%d)=%v", n, k, a, n, n-k, b)
			}
		}
	}
}
