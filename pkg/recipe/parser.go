package recipe

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"baguette/pkg/layout"
)

// directiveLexer splits a single bracketed word into punctuation and the
// text between it. Tokens never contain whitespace, so every rune matches.
var directiveLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Open", Pattern: `\(`},
	{Name: "Close", Pattern: `\)`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Word", Pattern: `[^(),]+`},
})

var (
	openTok  = directiveLexer.Symbols()["Open"]
	closeTok = directiveLexer.Symbols()["Close"]
	commaTok = directiveLexer.Symbols()["Comma"]
	wordTok  = directiveLexer.Symbols()["Word"]
)

const (
	loopHead       = "Boulangerie"
	backgroundHead = "Patisserie"
)

// ParseDirective resolves tok into a Directive. Diagnostics carry the recipe
// line of cur; the cursor itself is not moved.
func ParseDirective(tok Token, cur *layout.Cursor) (Directive, error) {
	line := cur.Line()
	if tok.Type == NEWLINE {
		return Directive{Op: LineBreak}, nil
	}

	word := tok.Lexeme
	switch {
	case strings.Contains(word, loopHead+"("):
		return parseLoop(word, line)
	case strings.Contains(word, backgroundHead+"("):
		return parseBackground(word, line)
	case strings.Contains(word, "(") && strings.Contains(word, ")") && hasPastry(word):
		return parseColored(word, line)
	}

	for _, k := range []Kind{Croissant, Baguette} {
		if strings.EqualFold(word, k.String()) {
			return Directive{Op: SolidPixel, Kind: k, Color: k.Color()}, nil
		}
	}
	return Directive{}, diagf(UnknownToken, line, "unknown token %q", word)
}

func hasPastry(word string) bool {
	_, ok := pastryKind(word)
	return ok
}

// unterminated reports whether word opens more brackets than it closes.
func unterminated(word string) bool {
	return strings.Count(word, "(") > strings.Count(word, ")")
}

// parseLoop handles Boulangerie(n,kind) and Boulangerie(n,kind(r,g,b[,a])).
func parseLoop(word string, line int) (Directive, error) {
	if unterminated(word) {
		return Directive{}, diagf(UnterminatedDirective, line, "no space supported inside of the loop")
	}
	header := diagf(MalformedLoopHeader, line, "Boulangerie(val,type) expected, got %q", word)

	p, err := lexWord(word)
	if err != nil {
		return Directive{}, header
	}
	if head, ok := p.expect(wordTok); !ok || head != loopHead {
		return Directive{}, header
	}
	if !p.accept(openTok) {
		return Directive{}, header
	}
	countText, ok := p.expect(wordTok)
	if !ok {
		return Directive{}, header
	}
	count, err := strconv.Atoi(countText)
	if err != nil || count < 1 {
		return Directive{}, header
	}
	if !p.accept(commaTok) {
		return Directive{}, header
	}
	kindText, ok := p.expect(wordTok)
	if !ok {
		return Directive{}, header
	}
	kind, ok := pastryKind(kindText)
	if !ok {
		return Directive{}, diagf(UnrecognizedPastryKind, line, "unknown pastry %q in loop", kindText)
	}

	d := Directive{Op: RepeatedPixel, Kind: kind, Count: count, Color: kind.Color()}
	if p.accept(openTok) {
		comps, ok := p.components()
		if !ok {
			return Directive{}, header
		}
		if d.Color, d.Malformed, err = pixelColor(comps, line); err != nil {
			return Directive{}, err
		}
	}
	if !p.accept(closeTok) || !p.done() {
		return Directive{}, header
	}
	return d, nil
}

// parseBackground handles Patisserie(r,g,b[,a]). Fewer than three components
// yield an inert directive.
func parseBackground(word string, line int) (Directive, error) {
	if unterminated(word) {
		return Directive{}, diagf(UnterminatedDirective, line, "no space supported inside of the color specification")
	}
	shape := diagf(MalformedColor, line, "Patisserie(r,g,b[,a]) expected, got %q", word)

	p, err := lexWord(word)
	if err != nil {
		return Directive{}, shape
	}
	if head, ok := p.expect(wordTok); !ok || head != backgroundHead || !p.accept(openTok) {
		return Directive{}, shape
	}
	comps, ok := p.components()
	if !ok || !p.done() {
		return Directive{}, shape
	}

	d := Directive{Op: SetBackground}
	switch {
	case len(comps) < 3:
		d.Inert = true
	case len(comps) > 4:
		return Directive{}, diagf(MalformedColor, line, "color takes 3 or 4 components, got %d", len(comps))
	default:
		d.Color, d.Malformed = parseColor(comps)
	}
	return d, nil
}

// parseColored handles Baguette(r,g,b[,a]) and Croissant(r,g,b[,a]).
func parseColored(word string, line int) (Directive, error) {
	shape := diagf(MalformedColor, line, "pastry(r,g,b[,a]) expected, got %q", word)

	p, err := lexWord(word)
	if err != nil {
		return Directive{}, shape
	}
	head, ok := p.expect(wordTok)
	if !ok {
		return Directive{}, shape
	}
	kind, ok := pastryKind(head)
	if !ok {
		return Directive{}, diagf(UnrecognizedPastryKind, line, "unknown pastry %q", head)
	}
	if !p.accept(openTok) {
		return Directive{}, shape
	}
	comps, ok := p.components()
	if !ok || !p.done() {
		return Directive{}, shape
	}

	d := Directive{Op: ColoredPixel, Kind: kind}
	if d.Color, d.Malformed, err = pixelColor(comps, line); err != nil {
		return Directive{}, err
	}
	return d, nil
}

// pixelColor parses a pixel color, which must have 3 or 4 components.
func pixelColor(comps []string, line int) (color.RGBA, []string, error) {
	if len(comps) < 3 || len(comps) > 4 {
		return color.RGBA{}, nil, diagf(MalformedColor, line, "color takes 3 or 4 components, got %d", len(comps))
	}
	c, malformed := parseColor(comps)
	return c, malformed, nil
}

// parseColor converts 3 or 4 decimal components to a color. Alpha defaults to
// 255 when omitted. Components that fail to parse become 255 and are
// returned as malformed.
func parseColor(comps []string) (color.RGBA, []string) {
	vals := [4]uint8{0, 0, 0, 255}
	var malformed []string
	for i, s := range comps {
		v, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			malformed = append(malformed, s)
			v = 255
		}
		vals[i] = uint8(v)
	}
	return color.RGBA{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, malformed
}

// wordParser walks the punctuation tokens of one bracketed word.
type wordParser struct {
	toks []lexer.Token
	pos  int
}

func lexWord(word string) (*wordParser, error) {
	lex, err := directiveLexer.LexString("", word)
	if err != nil {
		return nil, err
	}
	p := &wordParser{}
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF() {
			return p, nil
		}
		p.toks = append(p.toks, tok)
	}
}

func (p *wordParser) done() bool {
	return p.pos >= len(p.toks)
}

// accept consumes the next token if it has type tt.
func (p *wordParser) accept(tt lexer.TokenType) bool {
	if p.done() || p.toks[p.pos].Type != tt {
		return false
	}
	p.pos++
	return true
}

// expect consumes the next token if it has type tt and returns its text.
func (p *wordParser) expect(tt lexer.TokenType) (string, bool) {
	if p.done() || p.toks[p.pos].Type != tt {
		return "", false
	}
	p.pos++
	return p.toks[p.pos-1].Value, true
}

// components reads a comma-separated list up to and including the closing
// bracket. Empty entries are kept as empty strings.
func (p *wordParser) components() ([]string, bool) {
	var comps []string
	cur := ""
	for !p.done() {
		tok := p.toks[p.pos]
		p.pos++
		switch tok.Type {
		case wordTok:
			cur += tok.Value
		case commaTok:
			comps = append(comps, cur)
			cur = ""
		case closeTok:
			return append(comps, cur), true
		default:
			return nil, false
		}
	}
	return nil, false
}
