package dmd

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// DrawSVG rasterizes an SVG document into a w x h box at (x, y) and
// thresholds it onto the plane: any pixel with majority coverage is treated
// as lit and written through the given mode. Signage icons drawn next to
// text is the intended use; there is no grayscale, the display is binary.
func (d *Display) DrawSVG(svg []byte, x, y, w, h int, mode Mode) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("invalid svg target box: %dx%d", w, h)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return fmt.Errorf("parse svg: %v", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			_, _, _, a := img.At(px, py).RGBA()
			d.plane.SetPixel(x+px, y+py, mode, a >= 0x8000)
		}
	}
	return nil
}
