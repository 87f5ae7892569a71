// Package layout tracks the write position of a recipe pass inside the
// margin-inset viewport of the canvas.
package layout

import "baguette/pkg/canvas"

// Margin is the fixed inset of the viewport on every side of the canvas.
const Margin = 40

const (
	ViewportWidth  = canvas.Width - 2*Margin  // 880
	ViewportHeight = canvas.Height - 2*Margin // 460

	RightEdge  = ViewportWidth + Margin  // first column outside the viewport
	BottomEdge = ViewportHeight + Margin // first row outside the viewport
)

// Cursor is the typewriter-style write position of a pass. A pass owns exactly
// one Cursor and threads the same pointer through every step.
type Cursor struct {
	X, Y int
}

// NewCursor returns a cursor at the top-left corner of the viewport.
func NewCursor() *Cursor {
	return &Cursor{X: Margin, Y: Margin}
}

// Advance moves the cursor n columns to the right.
func (c *Cursor) Advance(n int) {
	c.X += n
}

// NewLine moves the cursor to the start of the next row.
func (c *Cursor) NewLine() {
	c.Y++
	c.X = Margin
}

// Wrap starts a new row if the cursor has reached the right edge and reports
// whether it did.
func (c *Cursor) Wrap() bool {
	if !c.PastRight() {
		return false
	}
	c.NewLine()
	return true
}

func (c *Cursor) PastRight() bool {
	return c.X >= RightEdge
}

func (c *Cursor) PastBottom() bool {
	return c.Y >= BottomEdge
}

// Line is the 1-based recipe line the cursor row corresponds to.
func (c *Cursor) Line() int {
	return c.Y - Margin + 1
}
