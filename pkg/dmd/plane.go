// Package dmd renders binary pixels and bitmap text onto tiled,
// row-multiplexed LED dot-matrix panels. A Plane holds the bit-packed
// framebuffer a refresh driver shifts out to the hardware, a Font supplies
// glyph bitmaps, and a Display ties the two together for drawing. All
// rendering is synchronous and allocation-free after construction.
package dmd

import "fmt"

// Mode selects how an incoming pixel value combines with the existing one.
type Mode uint8

const (
	// ModeNormal overwrites the pixel with the given value.
	ModeNormal Mode = iota
	// ModeInverse overwrites the pixel with the negated value.
	ModeInverse
	// ModeToggle flips the pixel when asked to set it, otherwise leaves it.
	ModeToggle
	// ModeOr only ever lights pixels, never darkens them.
	ModeOr
	// ModeNor clears a pixel only when it is currently lit and the caller
	// asks to set it. The truth table is preserved exactly as overlay
	// effects rely on it.
	ModeNor
)

// Panel dimensions fixed by the hardware: each panel is a 32x16 grid.
const (
	PanelWidth  = 32
	PanelHeight = 16

	// bytesPerPanel is the backing-store footprint of one panel:
	// 32 columns / 8 bits * 16 rows.
	bytesPerPanel = PanelWidth / 8 * PanelHeight
)

// pixelMask selects one of the 8 pixels within a framebuffer byte, leftmost
// pixel in the most significant bit.
var pixelMask = [8]byte{0x80, 0x40, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01}

// A Plane is the bit-packed framebuffer for a tiled panel array. Bits are
// active low: 0 means lit, 1 means off, matching what the shift registers
// expect. Rows are stored so that the 4 interleaved scanlines the hardware
// loads per refresh cycle (r, r+4, r+8, r+12) can be read out together; the
// Plane also owns the cyclic row-group cursor the refresh driver advances.
//
// The backing store is sized once at construction and never resized, and no
// drawing operation allocates. The Plane itself provides no locking: the
// intended arrangement is a refresh driver that only reads and a render
// pipeline that only writes, kept from interleaving by the caller.
type Plane struct {
	across, down int
	width        int
	height       int
	rowStride    int // bytes per stored pixel row, across*down*4
	lineStride   int // bytes per full-width scanline, across*4
	ram          []byte
	phase        uint8
}

// NewPlane allocates a framebuffer for the given panel grid. All pixels
// start off.
func NewPlane(panelsAcross, panelsDown int) (*Plane, error) {
	if panelsAcross <= 0 || panelsDown <= 0 {
		return nil, fmt.Errorf("invalid panel grid: %dx%d", panelsAcross, panelsDown)
	}
	panels := panelsAcross * panelsDown
	p := &Plane{
		across:     panelsAcross,
		down:       panelsDown,
		width:      panelsAcross * PanelWidth,
		height:     panelsDown * PanelHeight,
		rowStride:  panels * 4,
		lineStride: panelsAcross * 4,
		ram:        make([]byte, panels*bytesPerPanel),
	}
	p.Clear(false)
	return p, nil
}

// Width returns the canvas width in pixels.
func (p *Plane) Width() int { return p.width }

// Height returns the canvas height in pixels.
func (p *Plane) Height() int { return p.height }

// index computes the byte offset and bit mask for an in-bounds coordinate.
// Panels are folded into one long 16-row strip: panel index advances across
// first, then down.
func (p *Plane) index(x, y int) (int, byte) {
	panel := x/PanelWidth + p.across*(y/PanelHeight)
	col := x%PanelWidth + panel*PanelWidth
	return col/8 + (y%PanelHeight)*p.rowStride, pixelMask[col&7]
}

// SetPixel combines on with the pixel at (x, y) according to mode.
// Coordinates outside the canvas are ignored.
func (p *Plane) SetPixel(x, y int, mode Mode, on bool) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return
	}
	idx, mask := p.index(x, y)
	switch mode {
	case ModeNormal:
		if on {
			p.ram[idx] &^= mask
		} else {
			p.ram[idx] |= mask
		}
	case ModeInverse:
		if on {
			p.ram[idx] |= mask
		} else {
			p.ram[idx] &^= mask
		}
	case ModeToggle:
		if on {
			p.ram[idx] ^= mask
		}
	case ModeOr:
		if on {
			p.ram[idx] &^= mask
		}
	case ModeNor:
		if on && p.ram[idx]&mask == 0 {
			p.ram[idx] |= mask
		}
	}
}

// Pixel reports whether the pixel at (x, y) is lit. Out-of-bounds
// coordinates read as off.
func (p *Plane) Pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return false
	}
	idx, mask := p.index(x, y)
	return p.ram[idx]&mask == 0
}

// Clear fills the whole plane in one pass: every pixel lit when on is true,
// every pixel off otherwise.
func (p *Plane) Clear(on bool) {
	fill := byte(0xFF)
	if on {
		fill = 0x00
	}
	for i := range p.ram {
		p.ram[i] = fill
	}
}

// ShiftLeft moves every pixel one column to the left, carrying bits across
// byte boundaries within each full-width scanline. Columns entering on the
// right are off.
func (p *Plane) ShiftLeft() {
	for i := 0; i < len(p.ram); i++ {
		if i%p.lineStride == p.lineStride-1 {
			p.ram[i] = p.ram[i]<<1 | 1
		} else {
			p.ram[i] = p.ram[i]<<1 | p.ram[i+1]>>7
		}
	}
}

// ShiftRight moves every pixel one column to the right. Columns entering on
// the left are off.
func (p *Plane) ShiftRight() {
	for i := len(p.ram) - 1; i >= 0; i-- {
		if i%p.lineStride == 0 {
			p.ram[i] = p.ram[i]>>1 | 0x80
		} else {
			p.ram[i] = p.ram[i]>>1 | p.ram[i-1]&1<<7
		}
	}
}

// Phase returns the current row-group cursor (0..3). The refresh driver
// emits rows phase, phase+4, phase+8 and phase+12 each cycle.
func (p *Plane) Phase() uint8 { return p.phase }

// AdvancePhase moves the row-group cursor to the next of the 4 interleaved
// scanline groups and returns the new value. Only the refresh driver should
// call this.
func (p *Plane) AdvancePhase() uint8 {
	p.phase = (p.phase + 1) & 3
	return p.phase
}

// RowGroups returns the 4 interleaved scanline byte rows for the current
// phase, lowest row first. Each slice aliases the backing store and is
// rowStride bytes long; the refresh driver shifts one byte from each per
// column position.
func (p *Plane) RowGroups() (g0, g1, g2, g3 []byte) {
	row := func(r int) []byte {
		off := r * p.rowStride
		return p.ram[off : off+p.rowStride]
	}
	r := int(p.phase)
	return row(r), row(r + 4), row(r + 8), row(r + 12)
}
