package recipe

import (
	"fmt"
	"image/color"
	"strings"
)

// Kind is a drawable pastry.
type Kind int

const (
	Baguette Kind = iota
	Croissant
)

func (k Kind) String() string {
	if k == Croissant {
		return "Croissant"
	}
	return "Baguette"
}

// Color is the default color a pastry is drawn with.
func (k Kind) Color() color.RGBA {
	if k == Croissant {
		return color.RGBA{R: 0, G: 0, B: 0, A: 255}
	}
	return color.RGBA{R: 179, G: 145, B: 103, A: 255}
}

// pastryKind matches a word against the pastry names, case-insensitively and
// by containment so "croissants" or "BAGUETTE" still resolve.
func pastryKind(word string) (Kind, bool) {
	lower := strings.ToLower(word)
	switch {
	case strings.Contains(lower, "roissant"):
		return Croissant, true
	case strings.Contains(lower, "aguette"):
		return Baguette, true
	}
	return Baguette, false
}

// Op identifies the instruction a token resolves to.
type Op int

const (
	LineBreak     Op = iota // end of a recipe line
	SolidPixel              // Baguette / Croissant
	ColoredPixel            // Baguette(r,g,b[,a])
	RepeatedPixel           // Boulangerie(n,kind[(r,g,b[,a])])
	SetBackground           // Patisserie(r,g,b[,a])
)

var opNames = [...]string{
	LineBreak:     "LineBreak",
	SolidPixel:    "SolidPixel",
	ColoredPixel:  "ColoredPixel",
	RepeatedPixel: "RepeatedPixel",
	SetBackground: "SetBackground",
}

func (op Op) String() string {
	if int(op) >= 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Directive is one recognized instruction derived from a token.
type Directive struct {
	Op    Op
	Kind  Kind       // pixel ops only
	Color color.RGBA // pixel color or new background
	Count int        // RepeatedPixel only

	// Inert marks a SetBackground with fewer than three components; it
	// leaves the canvas untouched.
	Inert bool

	// Malformed lists the color components that did not parse and were
	// replaced by 255.
	Malformed []string
}

func (d Directive) String() string {
	c := d.Color
	rgba := fmt.Sprintf("(%d,%d,%d,%d)", c.R, c.G, c.B, c.A)
	switch d.Op {
	case LineBreak:
		return d.Op.String()
	case SolidPixel, ColoredPixel:
		return fmt.Sprintf("%s %s %s", d.Op, d.Kind, rgba)
	case RepeatedPixel:
		return fmt.Sprintf("%s %dx%s %s", d.Op, d.Count, d.Kind, rgba)
	case SetBackground:
		if d.Inert {
			return d.Op.String() + " (inert)"
		}
		return fmt.Sprintf("%s %s", d.Op, rgba)
	}
	return d.Op.String()
}
