//go:build !js

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"baguette/pkg/canvas"
	"baguette/pkg/config"
	"baguette/pkg/recipe"
	"baguette/pkg/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("baguette", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := config.BindFlags(fs)
	outPath := fs.StringP("out", "o", "", "output PNG path (default: input with .png extension)")
	verbose := fs.BoolP("verbose", "v", false, "trace every directive on stderr")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Usage: baguette [flags] <file.baguette|file.croissant>")
		fs.PrintDefaults()
		return 2
	}
	inPath := fs.Arg(0)

	cfg, err := flags.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}
	if err := utils.CheckRecipeExtension(inPath); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	source, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to read recipe %q: %v\n", inPath, err)
		return 1
	}

	opts := recipe.Options{Strict: cfg.Strict, PaintBackground: cfg.PaintBackground}
	if *verbose {
		opts.Logger = log.New(stderr, "", 0)
	}
	res, err := recipe.Compile(string(source), opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	for _, w := range res.Warnings {
		fmt.Fprintln(stderr, w)
	}

	output := *outPath
	if output == "" {
		output = cfg.OutputPath(inPath)
	}
	if err := canvas.SavePNG(output, res.Canvas, cfg.Scale); err != nil {
		fmt.Fprintf(stderr, "failed to write image %q: %v\n", output, err)
		return 1
	}

	fmt.Fprintf(stdout, "baked %s -> %s\n", inPath, output)
	return 0
}
