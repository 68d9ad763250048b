// Command fontgen renders a TrueType font into the binary DMD font format
// used by pkg/dmd. The glyph catalog covers ASCII plus the shaped Arabic
// repertoire: Arabic letters are rendered from their Unicode presentation
// forms so the runtime shaper can select isolated/initial/medial/final
// glyphs by code.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"log"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

const (
	firstCode = 0x20
	lastCode  = 0xFF
	charCount = lastCode - firstCode + 1

	canvasSize = 80
)

var (
	ttfPath   = flag.String("ttf", "", "Path to an Arabic-capable TrueType font")
	outPath   = flag.String("o", "arabic.fnt", "Output font file")
	maxHeight = flag.Int("height", 11, "Target maximum glyph height in pixels")
	threshold = flag.Int("threshold", 80, "Grayscale cutoff for lit pixels (lower is bolder)")
)

// glyphMap assigns a source rune to each glyph code. Arabic letters appear
// as presentation forms (U+FE80..), four positional variants per joining
// letter starting at 0x80; one-sided joiners repeat their two forms. 0xF0
// is the synthesized space and has no source rune.
var glyphMap = map[byte]rune{
	0xEF: 0x0640, // tatweel
	0xFB: 0x060C, // arabic comma
	0xFC: '.',
	0xFD: 0x061F, // arabic question mark
	0xFE: 0xFEFB, // lam-alef isolated
	0xFF: 0xFEFC, // lam-alef final
}

func init() {
	// ASCII passthrough.
	for code := byte(0x20); code <= 0x7E; code++ {
		glyphMap[code] = rune(code)
	}

	// Western digit glyphs reachable from Arabic-Indic digit folding.
	for i := byte(0); i < 10; i++ {
		glyphMap[0xF1+i] = rune('0' + i)
	}

	// Positional form blocks, in the presentation form B order the shaper's
	// letter table encodes: iso/final pairs for one-sided joiners, full
	// iso/final/initial/medial quads for dual joiners.
	glyphMap[0x80] = 0xFE80 // hamza, isolated only
	pairs := []struct {
		code  byte
		start rune
		n     int
	}{
		{0x81, 0xFE81, 2}, {0x83, 0xFE83, 2}, {0x85, 0xFE87, 2}, {0x87, 0xFE8D, 2}, // alef variants
		{0x89, 0xFE8F, 4},                    // beh
		{0x8D, 0xFE93, 2},                    // teh marbuta
		{0x8F, 0xFE95, 4}, {0x93, 0xFE99, 4}, // teh, theh
		{0x97, 0xFE9D, 4}, {0x9B, 0xFEA1, 4}, // jeem, hah
		{0x9F, 0xFEA5, 4},                    // khah
		{0xA3, 0xFEA9, 2}, {0xA5, 0xFEAB, 2}, // dal, thal
		{0xA7, 0xFEAD, 2}, {0xA9, 0xFEAF, 2}, // reh, zain
		{0xAB, 0xFEB1, 4}, {0xAF, 0xFEB5, 4}, // seen, sheen
		{0xB3, 0xFEB9, 4}, {0xB7, 0xFEBD, 4}, // sad, dad
		{0xBB, 0xFEC1, 4}, {0xBF, 0xFEC5, 4}, // tah, zah
		{0xC3, 0xFEC9, 4}, {0xC7, 0xFECD, 4}, // ain, ghain
		{0xCB, 0xFED1, 4}, {0xCF, 0xFED5, 4}, // feh, qaf
		{0xD3, 0xFED9, 4}, {0xD7, 0xFEDD, 4}, // kaf, lam
		{0xDB, 0xFEE1, 4}, {0xDF, 0xFEE5, 4}, // meem, noon
		{0xE3, 0xFEE9, 4},                    // heh
		{0xE7, 0xFEED, 2}, {0xE9, 0xFEEF, 2}, // waw, alef maksura
		{0xEB, 0xFEF1, 4}, // yeh
	}
	for _, p := range pairs {
		for i := 0; i < p.n; i++ {
			glyphMap[p.code+byte(i)] = p.start + rune(i)
		}
	}
}

type renderer struct {
	ctx *freetype.Context
	img *image.Gray
}

func newRenderer(f *truetype.Font, size int) *renderer {
	img := image.NewGray(image.Rect(0, 0, canvasSize, canvasSize))
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(float64(size))
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingNone)
	return &renderer{ctx: ctx, img: img}
}

// render draws one rune onto a cleared canvas with the baseline at a fixed
// position, so vertical bounds are comparable across glyphs.
func (r *renderer) render(ch rune) *image.Gray {
	draw.Draw(r.img, r.img.Bounds(), image.Black, image.Point{}, draw.Src)
	pt := freetype.Pt(canvasSize/4, canvasSize/2)
	if _, err := r.ctx.DrawString(string(ch), pt); err != nil {
		log.Printf("render U+%04X: %v", ch, err)
	}
	return r.img
}

// bounds finds the bounding box of pixels above the threshold. ok is false
// for a blank canvas.
func bounds(img *image.Gray, cutoff int) (minX, maxX, minY, maxY int, ok bool) {
	minX, minY = canvasSize, canvasSize
	maxX, maxY = -1, -1
	for y := 0; y < canvasSize; y++ {
		for x := 0; x < canvasSize; x++ {
			if int(img.GrayAt(x, y).Y) > cutoff {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}
	return minX, maxX, minY, maxY, maxY >= minY
}

// globalExtent measures the vertical span of the whole catalog at one size.
func globalExtent(f *truetype.Font, size int) (top, bottom int, ok bool) {
	r := newRenderer(f, size)
	top, bottom = canvasSize, -1
	for code := firstCode; code <= lastCode; code++ {
		ch, mapped := glyphMap[byte(code)]
		if !mapped {
			continue
		}
		_, _, minY, maxY, lit := bounds(r.render(ch), *threshold)
		if !lit {
			continue
		}
		if minY < top {
			top = minY
		}
		if maxY > bottom {
			bottom = maxY
		}
	}
	return top, bottom, bottom >= top
}

// bestSize finds the largest point size whose tallest glyph fits maxHeight.
func bestSize(f *truetype.Font) int {
	best := 8
	for size := 6; size < 50; size++ {
		top, bottom, ok := globalExtent(f, size)
		if !ok {
			continue
		}
		if bottom-top+1 <= *maxHeight {
			best = size
		} else {
			break
		}
	}
	return best
}

func main() {
	flag.Parse()
	if *ttfPath == "" {
		log.Fatal("fontgen: -ttf is required")
	}

	ttf, err := os.ReadFile(*ttfPath)
	if err != nil {
		log.Fatalf("Failed to read TTF: %v", err)
	}
	f, err := freetype.ParseFont(ttf)
	if err != nil {
		log.Fatalf("Failed to parse TTF: %v", err)
	}

	size := bestSize(f)
	log.Printf("Using %s at %dpt", *ttfPath, size)

	r := newRenderer(f, size)
	globalTop, globalBottom, ok := globalExtent(f, size)
	if !ok {
		log.Fatal("Font renders no glyphs at all")
	}
	height := globalBottom - globalTop + 1
	if height > *maxHeight {
		height = *maxHeight
	}
	layers := (height + 7) / 8
	log.Printf("Font height: %dpx (%d byte layers)", height, layers)

	blank := func(width int) [][]byte {
		cols := make([][]byte, width)
		for i := range cols {
			cols[i] = make([]byte, layers)
		}
		return cols
	}

	var widths []int
	var glyphs [][][]byte // per glyph, per column, per layer
	for code := firstCode; code <= lastCode; code++ {
		if byte(code) == 0xF0 {
			// Synthesized space.
			w := max(3, height/3)
			widths = append(widths, w)
			glyphs = append(glyphs, blank(w))
			continue
		}
		ch, mapped := glyphMap[byte(code)]
		if !mapped {
			widths = append(widths, 2)
			glyphs = append(glyphs, blank(2))
			continue
		}

		img := r.render(ch)
		minX, maxX, _, _, lit := bounds(img, *threshold)
		if !lit {
			widths = append(widths, 2)
			glyphs = append(glyphs, blank(2))
			continue
		}

		// Latin glyphs get 1px side bearings; shaped Arabic glyphs must
		// touch their neighbours to join.
		pad := 0
		if code >= 0x20 && code <= 0x7E {
			pad = 1
		}
		cols := blank(maxX - minX + 1 + 2*pad)
		for cx := minX; cx <= maxX; cx++ {
			col := cols[pad+cx-minX]
			for row := 0; row < height; row++ {
				srcY := globalTop + row
				if srcY >= canvasSize || int(img.GrayAt(cx, srcY).Y) <= *threshold {
					continue
				}
				switch {
				case layers == 1 || row < 8:
					col[0] |= 1 << row
				default:
					if bit := row - (height - 8); bit >= 0 {
						col[1] |= 1 << bit
					}
				}
			}
		}
		widths = append(widths, len(cols))
		glyphs = append(glyphs, cols)
	}

	data := encodeFont(height, widths, glyphs)
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		log.Fatalf("Failed to write font: %v", err)
	}
	fmt.Printf("Wrote %s: %d glyphs, %d bytes\n", *outPath, charCount, len(data))
}

// encodeFont assembles the binary font: header, width table, then per glyph
// all layer-0 column bytes followed by the layer-1 column bytes.
func encodeFont(height int, widths []int, glyphs [][][]byte) []byte {
	layers := (height + 7) / 8
	total := 6 + charCount
	for _, w := range widths {
		total += w * layers
	}

	data := make([]byte, 0, total)
	data = append(data,
		byte(total), byte(total>>8),
		0, // variable width
		byte(height),
		firstCode,
		byte(charCount),
	)
	for _, w := range widths {
		data = append(data, byte(w))
	}
	for g, cols := range glyphs {
		for layer := 0; layer < layers; layer++ {
			for col := 0; col < widths[g]; col++ {
				data = append(data, cols[col][layer])
			}
		}
	}
	return data
}
