package recipe

import "strings"

// Lex splits src into words and line boundaries. Every source line yields its
// words followed by exactly one NEWLINE, so empty lines still produce a
// boundary. A single trailing newline does not start another line.
func Lex(src string) []Token {
	if src == "" {
		return nil
	}
	src = strings.TrimSuffix(src, "\n")

	var tokens []Token
	for i, line := range strings.Split(src, "\n") {
		lineNo := i + 1
		for _, word := range strings.Fields(line) {
			tokens = append(tokens, Token{Type: WORD, Lexeme: word, Line: lineNo})
		}
		tokens = append(tokens, Token{Type: NEWLINE, Line: lineNo})
	}
	return tokens
}
