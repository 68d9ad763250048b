package dmd

import (
	"github.com/ledsign/dmdgo/pkg/shaping"
)

// A Marquee is the scrolling state for one glyph run: the run itself, its
// total advance width, the glyph height, the current offset and the spacing
// mode. It is created by DrawMarquee or DrawArabicMarquee and mutated in
// place by Step; starting a new marquee simply replaces it.
type Marquee struct {
	run     shaping.Run
	width   int
	height  int
	x, y    int
	compact bool
}

// Width returns the total advance width of the run, including 1px gaps in
// spaced mode.
func (m *Marquee) Width() int { return m.width }

// Offset returns the current (x, y) offset of the run's left/top edge.
func (m *Marquee) Offset() (x, y int) { return m.x, m.y }

// DrawMarquee starts a spaced (boxed-layout) marquee from raw glyph codes,
// rasters it once at (x, y) and returns its state. Codes beyond the run
// capacity are dropped.
func (d *Display) DrawMarquee(codes []byte, x, y int) *Marquee {
	m := &Marquee{height: d.font.height, x: x, y: y}
	for _, c := range codes {
		if !m.run.Append(c) {
			break
		}
		m.width += d.font.Width(c) + 1
	}
	d.DrawString(m.x, m.y, m.run.Glyphs(), ModeNormal)
	return m
}

// DrawArabicMarquee shapes and reorders UTF-8 text once, rasters it
// compactly at (x, y) and returns the marquee state holding the raster-order
// run.
func (d *Display) DrawArabicMarquee(text string, x, y int) *Marquee {
	run := shaping.Shape(text)
	run.ReorderVisual()
	m := &Marquee{run: run, height: d.font.height, x: x, y: y, compact: true}
	for _, c := range m.run.Glyphs() {
		m.width += d.font.Width(c)
	}
	d.DrawStringCompact(m.x, m.y, m.run.Glyphs(), ModeNormal)
	return m
}

// Step advances the marquee offset by (dx, dy) and repaints. When the run
// has moved fully past a canvas edge the offset wraps to the far side, the
// plane is cleared and Step reports true; this is the only path that clears
// the plane. Pure horizontal single-pixel steps take a fast path: the whole
// plane shifts one bit and only the glyph newly exposed at the trailing edge
// is rasterized. Any other step falls back to re-rastering the full run at
// the new offset.
func (m *Marquee) Step(d *Display, dx, dy int) bool {
	wrapped := false
	m.x += dx
	m.y += dy

	w, h := d.plane.width, d.plane.height
	if m.x < -m.width {
		m.x = w
		d.plane.Clear(false)
		wrapped = true
	} else if m.x > w {
		m.x = -m.width
		d.plane.Clear(false)
		wrapped = true
	}
	if m.y < -m.height {
		m.y = h
		d.plane.Clear(false)
		wrapped = true
	} else if m.y > h {
		m.y = -m.height
		d.plane.Clear(false)
		wrapped = true
	}

	switch {
	case dy == 0 && dx == -1:
		d.plane.ShiftLeft()
		strWidth := m.x
		for _, c := range m.run.Glyphs() {
			cw := d.font.Width(c)
			if strWidth+cw >= w {
				d.DrawChar(strWidth, m.y, c, ModeNormal)
				return wrapped
			}
			strWidth += cw
			if !m.compact {
				strWidth++
			}
		}
	case dy == 0 && dx == 1:
		d.plane.ShiftRight()
		strWidth := m.x
		for _, c := range m.run.Glyphs() {
			cw := d.font.Width(c)
			if strWidth+cw >= 0 {
				d.DrawChar(strWidth, m.y, c, ModeNormal)
				return wrapped
			}
			strWidth += cw
			if !m.compact {
				strWidth++
			}
		}
	default:
		if m.compact {
			d.DrawStringCompact(m.x, m.y, m.run.Glyphs(), ModeNormal)
		} else {
			d.DrawString(m.x, m.y, m.run.Glyphs(), ModeNormal)
		}
	}
	return wrapped
}
