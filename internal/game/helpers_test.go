package game

import "testing"

// mustGrid parses a grid (wall ring included) or fails the test.
func mustGrid(t *testing.T, rows ...string) *Level {
	t.Helper()
	l, err := ParseGrid(Info{Name: t.Name()}, rows)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	return l
}

// nodeAt returns the node on (row, col) or fails the test.
func nodeAt(t *testing.T, l *Level, row, col int) *Node {
	t.Helper()
	i, ok := l.NodeAt(P(row, col))
	if !ok {
		t.Fatalf("no node at (%d,%d)", row, col)
	}
	return &l.Nodes[i]
}

func samePositions(a, b []Pos) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
