package core

import "testing"

func TestCellAdd(t *testing.T) {
	origin := Cell{Row: 5, Col: 5}

	tests := []struct {
		dir      Direction
		expected Cell
	}{
		{DirUp, Cell{Row: 4, Col: 5}},
		{DirDown, Cell{Row: 6, Col: 5}},
		{DirLeft, Cell{Row: 5, Col: 4}},
		{DirRight, Cell{Row: 5, Col: 6}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			got := origin.Add(tc.dir)
			if got != tc.expected {
				t.Errorf("Add(%v) = %v, expected %v", tc.dir, got, tc.expected)
			}
			if !got.Adjacent(origin) {
				t.Errorf("%v should be adjacent to %v", got, origin)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := [][2]Direction{
		{DirUp, DirDown},
		{DirLeft, DirRight},
	}

	for _, p := range pairs {
		if p[0].Opposite() != p[1] || p[1].Opposite() != p[0] {
			t.Errorf("%v and %v should be opposites", p[0], p[1])
		}
		if !p[0].IsOpposite(p[1]) {
			t.Errorf("IsOpposite(%v, %v) = false, expected true", p[0], p[1])
		}
	}

	if DirUp.IsOpposite(DirLeft) {
		t.Error("up and left are not opposite")
	}
	if DirRight.IsOpposite(DirRight) {
		t.Error("a direction is not its own opposite")
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Rows: 10, Cols: 8}

	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"origin", Cell{0, 0}, true},
		{"last cell", Cell{9, 7}, true},
		{"row above", Cell{-1, 3}, false},
		{"row below", Cell{10, 3}, false},
		{"col left", Cell{3, -1}, false},
		{"col right", Cell{3, 8}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Contains(tc.cell); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.cell, got, tc.expected)
			}
		})
	}
}

func TestGridIndexRoundTrip(t *testing.T) {
	g := Grid{Rows: 4, Cols: 7}
	seen := make(map[int]bool)

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cell := Cell{Row: r, Col: c}
			i := g.Index(cell)
			if i < 0 || i >= g.Area() {
				t.Fatalf("Index(%v) = %d out of range", cell, i)
			}
			if seen[i] {
				t.Fatalf("Index(%v) = %d collides", cell, i)
			}
			seen[i] = true
			if back := g.CellAt(i); back != cell {
				t.Errorf("CellAt(%d) = %v, expected %v", i, back, cell)
			}
		}
	}
}

func TestGridValid(t *testing.T) {
	if !(Grid{Rows: 1, Cols: 1}).Valid() {
		t.Error("1x1 grid should be valid")
	}
	if (Grid{Rows: 0, Cols: 5}).Valid() {
		t.Error("grid with zero rows should be invalid")
	}
	if (Grid{Rows: 5, Cols: -1}).Valid() {
		t.Error("grid with negative cols should be invalid")
	}
}

func TestRectCentered(t *testing.T) {
	r := NewRect(0, 0, 20, 10)
	c := r.Centered(6, 4)

	if c.X != 7 || c.Y != 3 || c.W != 6 || c.H != 4 {
		t.Errorf("Centered() = %+v, expected {7 3 6 4}", c)
	}
	if !r.Contains(c.X, c.Y) || !r.Contains(c.Right()-1, c.Bottom()-1) {
		t.Error("centered rect should lie inside the outer rect")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestSwipe(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   Direction
		ok     bool
	}{
		{"right", 10, 2, DirRight, true},
		{"left", -7, 3, DirLeft, true},
		{"down", 1, 9, DirDown, true},
		{"up", -2, -9, DirUp, true},
		{"tie resolves vertically", 4, -4, DirUp, true},
		{"no movement", 0, 0, DirRight, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Swipe(tc.dx, tc.dy)
			if ok != tc.ok {
				t.Fatalf("Swipe(%d, %d) ok = %v, expected %v", tc.dx, tc.dy, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("Swipe(%d, %d) = %v, expected %v", tc.dx, tc.dy, got, tc.want)
			}
		})
	}
}

func TestActionDirection(t *testing.T) {
	if d, ok := ActionLeft.Direction(); !ok || d != DirLeft {
		t.Errorf("ActionLeft.Direction() = %v, %v", d, ok)
	}
	if _, ok := ActionRestart.Direction(); ok {
		t.Error("ActionRestart should not carry a direction")
	}
}
