package recipe

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "Empty",
			input:    "",
			expected: nil,
		},
		{
			name:  "Single Word",
			input: "Baguette",
			expected: []Token{
				{Type: WORD, Lexeme: "Baguette", Line: 1},
				{Type: NEWLINE, Line: 1},
			},
		},
		{
			name:  "Trailing Newline",
			input: "Baguette Croissant\n",
			expected: []Token{
				{Type: WORD, Lexeme: "Baguette", Line: 1},
				{Type: WORD, Lexeme: "Croissant", Line: 1},
				{Type: NEWLINE, Line: 1},
			},
		},
		{
			name:  "Empty Lines Keep Their Boundary",
			input: "Baguette\n\n\nCroissant",
			expected: []Token{
				{Type: WORD, Lexeme: "Baguette", Line: 1},
				{Type: NEWLINE, Line: 1},
				{Type: NEWLINE, Line: 2},
				{Type: NEWLINE, Line: 3},
				{Type: WORD, Lexeme: "Croissant", Line: 4},
				{Type: NEWLINE, Line: 4},
			},
		},
		{
			name:  "Mixed Whitespace",
			input: "  Baguette\t\tCroissant   \r\nBoulangerie(3,baguette)\r\n",
			expected: []Token{
				{Type: WORD, Lexeme: "Baguette", Line: 1},
				{Type: WORD, Lexeme: "Croissant", Line: 1},
				{Type: NEWLINE, Line: 1},
				{Type: WORD, Lexeme: "Boulangerie(3,baguette)", Line: 2},
				{Type: NEWLINE, Line: 2},
			},
		},
		{
			name:  "Only Newline",
			input: "\n",
			expected: []Token{
				{Type: NEWLINE, Line: 1},
			},
		},
		{
			name:  "Space Inside Directive Splits It",
			input: "Patisserie(255, 0,0)",
			expected: []Token{
				{Type: WORD, Lexeme: "Patisserie(255,", Line: 1},
				{Type: WORD, Lexeme: "0,0)", Line: 1},
				{Type: NEWLINE, Line: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lex(tt.input)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Lex(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

// TestLexIdempotent verifies Lex is a pure function of its input.
func TestLexIdempotent(t *testing.T) {
	src := "Baguette Croissant\n\nBoulangerie(4,croissant(1,2,3))   Patisserie(9,9,9)\nbaguette"
	first := Lex(src)
	second := Lex(src)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Lex not idempotent (-first +second):\n%s", diff)
	}
}

func TestLexNoEmbeddedWhitespace(t *testing.T) {
	for _, tok := range Lex("a b\tc\n d  e \r\n\tf") {
		if tok.Type != WORD {
			continue
		}
		for _, r := range tok.Lexeme {
			if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
				t.Errorf("token %q contains whitespace", tok.Lexeme)
			}
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	if WORD.String() != "WORD" || NEWLINE.String() != "NEWLINE" {
		t.Errorf("unexpected names %q %q", WORD, NEWLINE)
	}
	if got := TokenType(42).String(); got != "TokenType(42)" {
		t.Errorf("TokenType(42).String() = %q", got)
	}
}
