package recipe

import "fmt"

// Category classifies a Diagnostic.
type Category int

const (
	UnterminatedDirective  Category = iota // bracketed directive without its closing ")"
	MalformedLoopHeader                    // Boulangerie( with a bad count or shape
	UnrecognizedPastryKind                 // loop or colored pixel naming no known pastry
	UnknownToken                           // word matching no directive form
	MalformedColor                         // wrong component count, or a fallback in strict mode
	WidthOverflow                          // loop crossed the right viewport edge
	HeightOverflow                         // cursor reached the bottom viewport edge
	NumericFallback                        // color component replaced by 255; not fatal
)

var categoryNames = [...]string{
	UnterminatedDirective:  "UnterminatedDirective",
	MalformedLoopHeader:    "MalformedLoopHeader",
	UnrecognizedPastryKind: "UnrecognizedPastryKind",
	UnknownToken:           "UnknownToken",
	MalformedColor:         "MalformedColor",
	WidthOverflow:          "WidthOverflow",
	HeightOverflow:         "HeightOverflow",
	NumericFallback:        "NumericFallback",
}

func (c Category) String() string {
	if int(c) >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// label is the user-facing prefix of a diagnostic message.
func (c Category) label() string {
	switch c {
	case WidthOverflow:
		return "Linelimit out of bounce width"
	case HeightOverflow:
		return "Linelimit out of bounce height"
	case NumericFallback:
		return "warning"
	default:
		return "syntax error"
	}
}

// Fatal reports whether a diagnostic of this category halts the pass.
func (c Category) Fatal() bool {
	return c != NumericFallback
}

// Diagnostic is a line-numbered report of a violated recipe rule. Line is
// derived from the cursor row, not from the source position of the token.
type Diagnostic struct {
	Category Category
	Line     int
	Detail   string
}

func (d *Diagnostic) Error() string {
	if d.Detail == "" {
		return fmt.Sprintf("%s in line: %d", d.Category.label(), d.Line)
	}
	return fmt.Sprintf("%s in line: %d %s", d.Category.label(), d.Line, d.Detail)
}

func diagf(cat Category, line int, format string, args ...any) *Diagnostic {
	return &Diagnostic{Category: cat, Line: line, Detail: fmt.Sprintf(format, args...)}
}
