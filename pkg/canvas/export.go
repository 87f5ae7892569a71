package canvas

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Scale upscales img by an integer factor using nearest-neighbor sampling so
// every cell stays a crisp square. Factors below 2 return img unchanged.
func Scale(img image.Image, factor int) image.Image {
	if factor < 2 {
		return img
	}
	src := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, src.Dx()*factor, src.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, src, xdraw.Src, nil)
	return dst
}

// EncodePNG writes the buffer as a PNG, upscaled by factor.
func EncodePNG(w io.Writer, b *Buffer, factor int) error {
	return png.Encode(w, Scale(b.Image(), factor))
}

// SavePNG encodes the buffer as a PNG and writes it to filename.
func SavePNG(filename string, b *Buffer, factor int) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := EncodePNG(f, b, factor); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	return f.Close()
}
