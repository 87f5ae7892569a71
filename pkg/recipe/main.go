// Package recipe translates Baguette/Croissant recipes into a canvas.Buffer.
//
// Pipeline: recipe text → Lex → ParseDirective per token → Pass (cursor + canvas)
package recipe
