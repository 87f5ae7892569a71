// Package canvas holds the fixed-size RGBA pixel grid a recipe is drawn into.
package canvas

import (
	"image"
	"image/color"
)

const (
	Width  = 960
	Height = 540
)

// DefaultBackground is the light gray every cell starts with.
var DefaultBackground = color.RGBA{R: 211, G: 211, B: 211, A: 255}

// Buffer is a Width×Height RGBA8888 canvas plus the current background color.
type Buffer struct {
	pix        []byte
	background color.RGBA

	// paintBackground lets Draw write cells in the current background color.
	paintBackground bool
}

func NewBuffer() *Buffer {
	b := &Buffer{pix: make([]byte, Width*Height*4)}
	b.SetBackground(DefaultBackground)
	return b
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

func offset(x, y int) int {
	return (y*Width + x) * 4
}

// Draw writes c at (x, y). Writes outside the canvas are ignored, as are
// writes of the current background color unless SetPaintBackground(true).
func (b *Buffer) Draw(x, y int, c color.RGBA) {
	if !inBounds(x, y) {
		return
	}
	if c == b.background && !b.paintBackground {
		return
	}
	i := offset(x, y)
	b.pix[i+0] = c.R
	b.pix[i+1] = c.G
	b.pix[i+2] = c.B
	b.pix[i+3] = c.A
}

// SetBackground replaces the background color and repaints every cell with
// it, discarding everything drawn so far.
func (b *Buffer) SetBackground(c color.RGBA) {
	b.background = c
	for i := 0; i < len(b.pix); i += 4 {
		b.pix[i+0] = c.R
		b.pix[i+1] = c.G
		b.pix[i+2] = c.B
		b.pix[i+3] = c.A
	}
}

func (b *Buffer) Background() color.RGBA {
	return b.background
}

// SetPaintBackground controls whether Draw may write the current background color.
func (b *Buffer) SetPaintBackground(on bool) {
	b.paintBackground = on
}

// At returns the color of the cell at (x, y), or the zero color outside the canvas.
func (b *Buffer) At(x, y int) color.RGBA {
	if !inBounds(x, y) {
		return color.RGBA{}
	}
	i := offset(x, y)
	return color.RGBA{R: b.pix[i+0], G: b.pix[i+1], B: b.pix[i+2], A: b.pix[i+3]}
}

// Pix returns the raw RGBA bytes in row-major order. Callers must not modify them.
func (b *Buffer) Pix() []byte {
	return b.pix
}

// Image wraps a copy of the buffer as an *image.RGBA.
func (b *Buffer) Image() *image.RGBA {
	pix := make([]byte, len(b.pix))
	copy(pix, b.pix)
	return &image.RGBA{
		Pix:    pix,
		Stride: Width * 4,
		Rect:   image.Rect(0, 0, Width, Height),
	}
}
