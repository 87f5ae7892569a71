// Command inspect prints the token stream of a recipe and the directive each
// token resolves to, stopping at the first fatal diagnostic.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"baguette/pkg/canvas"
	"baguette/pkg/config"
	"baguette/pkg/recipe"
)

func main() {
	flags := config.BindFlags(pflag.CommandLine)
	pflag.Parse()
	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: inspect [flags] <file>")
		os.Exit(2)
	}
	cfg, err := flags.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(2)
	}

	data, err := os.ReadFile(pflag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "read error:", err)
		os.Exit(1)
	}

	tokens := recipe.Lex(string(data))
	fmt.Printf("Tokens (%d)\n", len(tokens))
	for _, tok := range tokens {
		fmt.Println(" ", tok)
	}
	fmt.Println()

	fmt.Println("Directives")
	pass := recipe.NewPass(canvas.NewBuffer(), recipe.Options{
		Strict:          cfg.Strict,
		PaintBackground: cfg.PaintBackground,
		Logger:          log.New(os.Stdout, "  ", 0),
	})
	err = pass.Run(tokens)
	for _, w := range pass.Warnings() {
		fmt.Println(" ", w)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	x, y := pass.Position()
	fmt.Printf("\ncursor ends at (%d, %d)\n", x, y)
}
