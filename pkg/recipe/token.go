package recipe

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	WORD    TokenType = iota // whitespace-free word
	NEWLINE                  // end of a source line
)

var tokenNames = [...]string{
	WORD:    "WORD",
	NEWLINE: "NEWLINE",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single word or line boundary produced by Lex.
type Token struct {
	Type   TokenType
	Lexeme string // the word; empty for NEWLINE
	Line   int    // 1-based source line
}

func (t Token) String() string {
	return fmt.Sprintf("%-8s %-24q  line %d", t.Type, t.Lexeme, t.Line)
}
