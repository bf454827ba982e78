package render

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/BourgeoisBear/rasterm"
	"github.com/mattn/go-sixel"
	xdraw "golang.org/x/image/draw"
)

// LoadPNG reads a PNG file from disk.
func LoadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// Scale resizes the image to fit within maxWidth x maxHeight, preserving
// aspect ratio. Images already inside the bounds are returned unchanged.
func Scale(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= maxWidth && height <= maxHeight {
		return img
	}

	scale := float64(maxWidth) / float64(width)
	if s := float64(maxHeight) / float64(height); s < scale {
		scale = s
	}
	scaled := image.NewRGBA(image.Rect(0, 0, int(float64(width)*scale), int(float64(height)*scale)))
	xdraw.BiLinear.Scale(scaled, scaled.Bounds(), img, bounds, xdraw.Over, nil)
	return scaled
}

// WriteInline writes the image to the terminal using the richest protocol it
// supports: kitty, then iTerm, then sixel.
func WriteInline(w io.Writer, img image.Image) error {
	if rasterm.IsKittyCapable() {
		return rasterm.KittyWriteImage(w, img, rasterm.KittyImgOpts{})
	}
	if rasterm.IsItermCapable() {
		return rasterm.ItermWriteImage(w, img)
	}
	return writeSixel(w, img)
}

// writeSixel dithers to a paletted image and encodes it with go-sixel, which
// older DEC-compatible terminals understand.
func writeSixel(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	paletted := image.NewPaletted(bounds, palette.Plan9)
	draw.FloydSteinberg.Draw(paletted, bounds, img, bounds.Min)
	return sixel.NewEncoder(w).Encode(paletted)
}
