package life

import "testing"

func TestCellSize(t *testing.T) {
	if got := CellSize(820, 670, Cols, Rows); got != 10 {
		t.Fatalf("CellSize(820, 670) = %d, want 10", got)
	}
	if got := CellSize(420, 670, Cols, Rows); got != 5 {
		t.Fatalf("CellSize(420, 670) = %d, want 5", got)
	}
	if got := CellSize(1620, 370, Cols, Rows); got != 5 {
		t.Fatalf("CellSize(1620, 370) = %d, want 5", got)
	}
	if got := CellSize(829, 679, Cols, Rows); got != 10 {
		t.Fatalf("CellSize must floor, got %d", got)
	}
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		x, y   int
		r, c   int
		inside bool
	}{
		{0, 0, 0, 0, true},
		{9, 9, 0, 0, true},
		{10, 25, 2, 1, true},
		{799, 599, 59, 79, true},
		{800, 10, 0, 0, false},
		{10, 600, 0, 0, false},
		{-1, 5, 0, 0, false},
	}
	for _, tc := range cases {
		r, c, ok := CellAt(tc.x, tc.y, 10, Rows, Cols)
		if ok != tc.inside || r != tc.r || c != tc.c {
			t.Fatalf("CellAt(%d,%d) = (%d,%d,%v), want (%d,%d,%v)", tc.x, tc.y, r, c, ok, tc.r, tc.c, tc.inside)
		}
	}
	if _, _, ok := CellAt(5, 5, 0, Rows, Cols); ok {
		t.Fatal("zero cell size must never hit")
	}
}
