package dmd

import (
	"fmt"
	"os"
)

// The binary font format is a 6-byte header followed by glyph data:
//
//	[0..1]  total size, little endian; zero flags a fixed-width font
//	[2]     fixed width (fixed-width fonts only)
//	[3]     glyph height in pixels, shared by the whole table
//	[4]     first glyph code
//	[5]     glyph count
//	[6..]   per-glyph width table (variable-width fonts only), then bitmaps
//
// Bitmaps are column major: ceil(height/8) bytes per column, one glyph's
// layer-0 column bytes and then its layer-1 column bytes and so on. Bit k of
// a layer-0 byte is row k; the last layer of a multi-layer glyph is
// bottom-aligned at row height-8.
const fontHeaderLen = 6

// A Font is an ordered catalog of glyph bitmaps indexed by contiguous
// character codes. Glyph widths are either shared (fixed-width) or carried
// per glyph in a width table.
type Font struct {
	height      int
	firstCode   int
	count       int
	fixedWidth  int // 0 for variable-width fonts
	widths      []byte
	offsets     []int // byte offset of each glyph's bitmap
	bitmap      []byte
	bytesPerCol int
}

// ParseFont decodes a font from its binary representation. The data slice
// is retained, not copied.
func ParseFont(data []byte) (*Font, error) {
	if len(data) < fontHeaderLen {
		return nil, fmt.Errorf("font data too short: %d bytes", len(data))
	}
	f := &Font{
		height:    int(data[3]),
		firstCode: int(data[4]),
		count:     int(data[5]),
	}
	if f.height == 0 || f.count == 0 {
		return nil, fmt.Errorf("font has no glyphs: height=%d count=%d", f.height, f.count)
	}
	f.bytesPerCol = (f.height + 7) / 8

	if data[0] == 0 && data[1] == 0 {
		// Zero size field flags a fixed-width font with no width table.
		f.fixedWidth = int(data[2])
		if f.fixedWidth == 0 {
			return nil, fmt.Errorf("fixed-width font with zero width")
		}
		f.bitmap = data[fontHeaderLen:]
		need := f.count * f.fixedWidth * f.bytesPerCol
		if len(f.bitmap) < need {
			return nil, fmt.Errorf("font bitmap truncated: have %d bytes, need %d", len(f.bitmap), need)
		}
		return f, nil
	}

	if len(data) < fontHeaderLen+f.count {
		return nil, fmt.Errorf("font width table truncated: %d glyphs, %d bytes", f.count, len(data))
	}
	f.widths = data[fontHeaderLen : fontHeaderLen+f.count]
	f.bitmap = data[fontHeaderLen+f.count:]
	f.offsets = make([]int, f.count)
	off := 0
	for i, w := range f.widths {
		f.offsets[i] = off
		off += int(w) * f.bytesPerCol
	}
	if len(f.bitmap) < off {
		return nil, fmt.Errorf("font bitmap truncated: have %d bytes, need %d", len(f.bitmap), off)
	}
	return f, nil
}

// LoadFont reads and parses a binary font file.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %v", path, err)
	}
	f, err := ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %v", path, err)
	}
	return f, nil
}

// Height returns the glyph height shared by the whole table.
func (f *Font) Height() int { return f.height }

// Width returns the advance of the glyph for code, or 0 when the code is
// outside the font's range.
func (f *Font) Width(code byte) int {
	idx := int(code) - f.firstCode
	if idx < 0 || idx >= f.count {
		return 0
	}
	if f.fixedWidth > 0 {
		return f.fixedWidth
	}
	return int(f.widths[idx])
}

// glyph returns the bitmap bytes and width for code, or ok=false when the
// code is outside the font's range.
func (f *Font) glyph(code byte) (bitmap []byte, width int, ok bool) {
	idx := int(code) - f.firstCode
	if idx < 0 || idx >= f.count {
		return nil, 0, false
	}
	if f.fixedWidth > 0 {
		w := f.fixedWidth
		off := idx * w * f.bytesPerCol
		return f.bitmap[off : off+w*f.bytesPerCol], w, true
	}
	w := int(f.widths[idx])
	off := f.offsets[idx]
	return f.bitmap[off : off+w*f.bytesPerCol], w, true
}
