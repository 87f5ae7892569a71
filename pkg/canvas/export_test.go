package canvas

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestEncodePNG(t *testing.T) {
	tests := []struct {
		name   string
		factor int
		wantW  int
		wantH  int
	}{
		{"native", 1, Width, Height},
		{"zero factor", 0, Width, Height},
		{"double", 2, Width * 2, Height * 2},
	}

	b := NewBuffer()
	b.Draw(40, 40, tan)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := EncodePNG(&out, b, tc.factor); err != nil {
				t.Fatalf("EncodePNG: %v", err)
			}
			img, err := png.Decode(&out)
			if err != nil {
				t.Fatalf("png.Decode: %v", err)
			}
			if img.Bounds().Dx() != tc.wantW || img.Bounds().Dy() != tc.wantH {
				t.Errorf("size: expected %dx%d, got %dx%d", tc.wantW, tc.wantH, img.Bounds().Dx(), img.Bounds().Dy())
			}
		})
	}
}

// TestScaleNearestNeighbor verifies each cell becomes a factor×factor block.
func TestScaleNearestNeighbor(t *testing.T) {
	b := NewBuffer()
	b.Draw(3, 4, tan)

	scaled, ok := Scale(b.Image(), 3).(*image.RGBA)
	if !ok {
		t.Fatalf("Scale returned %T, want *image.RGBA", scaled)
	}
	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 3; dx++ {
			if got := scaled.RGBAAt(9+dx, 12+dy); got != tan {
				t.Errorf("RGBAAt(%d, %d): expected %v, got %v", 9+dx, 12+dy, tan, got)
			}
		}
	}
	if got := scaled.RGBAAt(12, 12); got != DefaultBackground {
		t.Errorf("RGBAAt(12, 12): expected background, got %v", got)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(path, NewBuffer(), 1); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != Width || cfg.Height != Height {
		t.Errorf("size: expected %dx%d, got %dx%d", Width, Height, cfg.Width, cfg.Height)
	}
}

func TestSavePNGBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	if err := SavePNG(path, NewBuffer(), 1); err == nil {
		t.Error("expected error for missing directory")
	}
}
