package recipe

import (
	"image/color"
	"log"

	"baguette/pkg/canvas"
	"baguette/pkg/layout"
)

// Options tune a pass.
type Options struct {
	// Strict turns a color component that fails to parse into a fatal
	// MalformedColor diagnostic instead of a NumericFallback warning.
	Strict bool

	// PaintBackground allows pixels in the current background color to be drawn.
	PaintBackground bool

	// Logger, if set, receives one line per processed token.
	Logger *log.Logger
}

// Pass is a single left-to-right, top-to-bottom run over a token stream. It
// owns the cursor and mutates buf in place.
type Pass struct {
	buf      *canvas.Buffer
	cursor   *layout.Cursor
	opts     Options
	warnings []*Diagnostic
}

func NewPass(buf *canvas.Buffer, opts Options) *Pass {
	buf.SetPaintBackground(opts.PaintBackground)
	return &Pass{buf: buf, cursor: layout.NewCursor(), opts: opts}
}

// Position returns the current cursor coordinates.
func (p *Pass) Position() (x, y int) {
	return p.cursor.X, p.cursor.Y
}

// Warnings returns the non-fatal diagnostics collected so far.
func (p *Pass) Warnings() []*Diagnostic {
	return p.warnings
}

// Run processes tokens in order and stops at the first fatal diagnostic.
func (p *Pass) Run(tokens []Token) error {
	for _, tok := range tokens {
		if err := p.Step(tok); err != nil {
			return err
		}
	}
	return nil
}

// Step processes a single token.
func (p *Pass) Step(tok Token) error {
	line := p.cursor.Line()
	d, err := ParseDirective(tok, p.cursor)
	if err != nil {
		return err
	}
	for _, s := range d.Malformed {
		if p.opts.Strict {
			return diagf(MalformedColor, line, "color component %q is not a number in 0-255", s)
		}
		w := diagf(NumericFallback, line, "color component %q is not a number in 0-255, using 255", s)
		p.warnings = append(p.warnings, w)
	}
	if p.opts.Logger != nil {
		p.opts.Logger.Printf("line %d col %d: %-28q %s", line, p.cursor.X-layout.Margin+1, tok.Lexeme, d)
	}

	switch d.Op {
	case LineBreak:
		p.cursor.NewLine()
	case SolidPixel, ColoredPixel:
		p.plot(d.Color)
		p.cursor.Advance(1)
	case RepeatedPixel:
		for i := 0; i < d.Count; i++ {
			if p.cursor.PastRight() {
				return diagf(WidthOverflow, line, "%dx%s does not fit in %d columns", d.Count, d.Kind, layout.ViewportWidth)
			}
			p.plot(d.Color)
			p.cursor.Advance(1)
		}
	case SetBackground:
		if !d.Inert {
			p.buf.SetBackground(d.Color)
		}
		p.cursor.Advance(1)
	}

	if d.Op != LineBreak {
		p.cursor.Wrap()
	}
	if p.cursor.PastBottom() {
		return diagf(HeightOverflow, p.cursor.Line(), "recipe does not fit in %d rows", layout.ViewportHeight)
	}
	return nil
}

func (p *Pass) plot(c color.RGBA) {
	p.buf.Draw(p.cursor.X, p.cursor.Y, c)
}

// Result is the outcome of a successful Compile.
type Result struct {
	Canvas   *canvas.Buffer
	Warnings []*Diagnostic
}

// Compile lexes src and runs a full pass over a fresh canvas. On a fatal
// diagnostic no canvas is returned.
func Compile(src string, opts Options) (*Result, error) {
	buf := canvas.NewBuffer()
	p := NewPass(buf, opts)
	if err := p.Run(Lex(src)); err != nil {
		return nil, err
	}
	return &Result{Canvas: buf, Warnings: p.Warnings()}, nil
}
