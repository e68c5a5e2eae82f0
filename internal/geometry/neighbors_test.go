package geometry

import "testing"

func TestBuildCorner(t *testing.T) {
	tbl := Build(3, 3)
	ns := tbl.Of(0, 0)
	if len(ns) != 3 {
		t.Fatalf("corner cell should have 3 neighbors, got %d: %v", len(ns), ns)
	}
}

func TestBuildEdge(t *testing.T) {
	tbl := Build(3, 3)
	ns := tbl.Of(0, 1)
	if len(ns) != 5 {
		t.Fatalf("edge cell should have 5 neighbors, got %d: %v", len(ns), ns)
	}
}

func TestBuildInterior(t *testing.T) {
	tbl := Build(3, 3)
	ns := tbl.Of(1, 1)
	if len(ns) != 8 {
		t.Fatalf("interior cell should have 8 neighbors, got %d: %v", len(ns), ns)
	}
}

func TestBuildSingleCell(t *testing.T) {
	tbl := Build(1, 1)
	ns := tbl.Of(0, 0)
	if len(ns) != 0 {
		t.Fatalf("single cell board should have no neighbors, got %v", ns)
	}
}

func TestBuildExcludesOrigin(t *testing.T) {
	tbl := Build(5, 5)
	for _, n := range tbl.Of(2, 2) {
		if n.Row == 2 && n.Col == 2 {
			t.Fatalf("neighbor list includes origin cell")
		}
	}
}
