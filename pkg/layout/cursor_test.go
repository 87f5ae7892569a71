package layout

import "testing"

func TestNewCursor(t *testing.T) {
	c := NewCursor()
	if c.X != 40 || c.Y != 40 {
		t.Errorf("NewCursor() = (%d, %d); want (40, 40)", c.X, c.Y)
	}
	if c.Line() != 1 {
		t.Errorf("Line() = %d; want 1", c.Line())
	}
}

func TestViewportEdges(t *testing.T) {
	if RightEdge != 920 {
		t.Errorf("RightEdge = %d; want 920", RightEdge)
	}
	if BottomEdge != 500 {
		t.Errorf("BottomEdge = %d; want 500", BottomEdge)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		x, y     int
		wantWrap bool
		wantX    int
		wantY    int
	}{
		{40, 40, false, 40, 40},
		{919, 40, false, 919, 40},
		{920, 40, true, 40, 41},
		{925, 57, true, 40, 58},
	}

	for _, tc := range tests {
		c := &Cursor{X: tc.x, Y: tc.y}
		got := c.Wrap()
		if got != tc.wantWrap || c.X != tc.wantX || c.Y != tc.wantY {
			t.Errorf("Wrap() at (%d, %d) = %t -> (%d, %d); want %t -> (%d, %d)",
				tc.x, tc.y, got, c.X, c.Y, tc.wantWrap, tc.wantX, tc.wantY)
		}
	}
}

func TestNewLineAndAdvance(t *testing.T) {
	c := NewCursor()
	c.Advance(5)
	if c.X != 45 {
		t.Fatalf("Advance(5): X = %d; want 45", c.X)
	}
	c.NewLine()
	if c.X != 40 || c.Y != 41 {
		t.Errorf("NewLine(): (%d, %d); want (40, 41)", c.X, c.Y)
	}
	if c.Line() != 2 {
		t.Errorf("Line() = %d; want 2", c.Line())
	}
}

func TestPastBottom(t *testing.T) {
	c := &Cursor{X: 40, Y: 499}
	if c.PastBottom() {
		t.Error("row 499 reported past bottom")
	}
	c.NewLine()
	if !c.PastBottom() {
		t.Error("row 500 not reported past bottom")
	}
}
