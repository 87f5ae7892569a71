package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/pflag"

	"baguette/pkg/canvas"
	"baguette/pkg/config"
	"baguette/pkg/recipe"
	"baguette/pkg/utils"
)

type Game struct {
	buf      *canvas.Buffer
	img      *ebiten.Image // uploaded once; the buffer is final before the window opens
	scale    int
	shotPath string
}

func newGame(buf *canvas.Buffer, scale int, shotPath string) *Game {
	return &Game{buf: buf, scale: scale, shotPath: shotPath}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.saveScreenshot()
	}
	return nil
}

func (g *Game) saveScreenshot() {
	if err := canvas.SavePNG(g.shotPath, g.buf, g.scale); err != nil {
		log.Printf("screenshot failed: %v", err)
		return
	}
	log.Printf("saved %s", g.shotPath)
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(canvas.Width, canvas.Height)
		g.img.WritePixels(g.buf.Pix())
	}

	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return canvas.Width * g.scale, canvas.Height * g.scale
}

func main() {
	flags := config.BindFlags(pflag.CommandLine)
	pflag.Parse()
	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: desktop [flags] <file.baguette|file.croissant>")
		pflag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := flags.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	fullPath, _, err := utils.GetPathInfo(pflag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to resolve %s: %v", pflag.Arg(0), err)
	}
	if err := utils.CheckRecipeExtension(fullPath); err != nil {
		log.Fatal(err)
	}
	source, err := os.ReadFile(fullPath)
	if err != nil {
		log.Fatalf("Failed to read recipe: %v", err)
	}

	res, err := recipe.Compile(string(source), recipe.Options{
		Strict:          cfg.Strict,
		PaintBackground: cfg.PaintBackground,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, w := range res.Warnings {
		fmt.Fprintln(os.Stderr, w)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowSize(canvas.Width*cfg.Scale, canvas.Height*cfg.Scale)
	ebiten.SetWindowTitle(cfg.Title)

	game := newGame(res.Canvas, cfg.Scale, cfg.OutputPath(filepath.Clean(fullPath)))
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
