package dmd

import (
	"github.com/ledsign/dmdgo/pkg/shaping"
)

// A Display ties a Plane to the active Font and carries out all text
// rendering. It holds no other state; marquee state lives in Marquee.
type Display struct {
	plane *Plane
	font  *Font
}

// NewDisplay creates a display drawing onto plane. The builtin System5x7
// font is selected until SetFont replaces it.
func NewDisplay(plane *Plane) *Display {
	return &Display{plane: plane, font: System5x7}
}

// Plane returns the framebuffer the display draws onto.
func (d *Display) Plane() *Plane { return d.plane }

// Font returns the active font.
func (d *Display) Font() *Font { return d.font }

// SetFont selects the font used by subsequent text calls. Fonts are
// swappable at runtime; glyphs already on the plane are unaffected.
func (d *Display) SetFont(f *Font) {
	if f != nil {
		d.font = f
	}
}

// DrawChar draws one glyph with its top-left corner at (x, y) and returns
// its advance width. A code outside the font's range draws nothing and
// returns 0; a glyph fully past the negative edge returns its width without
// drawing; a start position past the positive edge returns -1 so string
// loops can stop early. The ASCII space is synthesized as a blank box of the
// space glyph's width instead of a bitmap lookup, which lets it act as a
// separator even in compact layout.
func (d *Display) DrawChar(x, y int, code byte, mode Mode) int {
	if x > d.plane.width || y > d.plane.height {
		return -1
	}
	height := d.font.height
	if code == ' ' {
		w := d.font.Width(' ')
		d.DrawFilledBox(x, y, x+w, y+height, ModeInverse)
		return w
	}

	bitmap, width, ok := d.font.glyph(code)
	if !ok {
		return 0
	}
	if x < -width || y < -height {
		return width
	}

	layers := d.font.bytesPerCol
	for j := 0; j < width; j++ {
		for i := layers - 1; i >= 0; i-- {
			data := bitmap[j+i*width]
			offset := i * 8
			if i == layers-1 && layers > 1 {
				// Last layer is bottom-aligned for heights that are not a
				// multiple of 8.
				offset = height - 8
			}
			for k := 0; k < 8; k++ {
				if offset+k >= i*8 && offset+k <= height {
					d.plane.SetPixel(x+j, y+offset+k, mode, data&(1<<k) != 0)
				}
			}
		}
	}
	return width
}

// DrawString draws glyph codes left to right starting at (x, y) in the
// boxed style: a 1px gap after every glyph and vertical separator lines
// drawn in inverse mode on both sides of each glyph.
func (d *Display) DrawString(x, y int, codes []byte, mode Mode) {
	if x >= d.plane.width || y >= d.plane.height {
		return
	}
	height := d.font.height
	if y+height < 0 {
		return
	}

	strWidth := 0
	d.DrawLine(x-1, y, x-1, y+height, ModeInverse)
	for _, c := range codes {
		w := d.DrawChar(x+strWidth, y, c, mode)
		if w > 0 {
			strWidth += w
			d.DrawLine(x+strWidth, y, x+strWidth, y+height, ModeInverse)
			strWidth++
		} else if w < 0 {
			return
		}
		if x+strWidth >= d.plane.width || y >= d.plane.height {
			return
		}
	}
}

// DrawStringCompact draws glyph codes left to right with no separators and
// no inter-glyph gap, as shaped Arabic requires.
func (d *Display) DrawStringCompact(x, y int, codes []byte, mode Mode) {
	if x >= d.plane.width || y >= d.plane.height {
		return
	}
	height := d.font.height
	if y+height < 0 {
		return
	}

	strWidth := 0
	for _, c := range codes {
		w := d.DrawChar(x+strWidth, y, c, mode)
		if w > 0 {
			strWidth += w
		} else if w < 0 {
			return
		}
		if x+strWidth >= d.plane.width || y >= d.plane.height {
			return
		}
	}
}

// DrawStringRTL draws pre-shaped glyph codes right to left, with the first
// glyph's right edge at rightX. No reshaping or reordering happens here; it
// serves callers that already hold glyph codes in visual order.
func (d *Display) DrawStringRTL(rightX, y int, codes []byte, mode Mode) {
	if y >= d.plane.height {
		return
	}
	height := d.font.height
	if y+height < 0 {
		return
	}

	screenW := d.plane.width
	cursorX := rightX
	for _, c := range codes {
		w := d.font.Width(c)
		if w <= 0 {
			continue
		}
		cursorX -= w
		if cursorX < screenW && cursorX >= -w {
			d.DrawChar(cursorX, y, c, mode)
		}
		cursorX--
		// Everything that remains is further left still.
		if cursorX < -screenW {
			return
		}
	}
}

// DrawArabicString runs the full pipeline on UTF-8 text: map and shape into
// logical glyph codes, reorder into raster order, then raster compactly at
// (x, y).
func (d *Display) DrawArabicString(x, y int, text string, mode Mode) {
	run := shaping.Shape(text)
	run.ReorderVisual()
	d.DrawStringCompact(x, y, run.Glyphs(), mode)
}
