package dmd

// DrawLine draws a line from (x1, y1) to (x2, y2) using Bresenham's
// algorithm, setting every pixel through the given mode.
func (d *Display) DrawLine(x1, y1, x2, y2 int, mode Mode) {
	dy := y2 - y1
	dx := x2 - x1
	stepx, stepy := 1, 1
	if dy < 0 {
		dy = -dy
		stepy = -1
	}
	if dx < 0 {
		dx = -dx
		stepx = -1
	}
	dy <<= 1
	dx <<= 1

	d.plane.SetPixel(x1, y1, mode, true)
	if dx > dy {
		fraction := dy - dx>>1
		for x1 != x2 {
			if fraction >= 0 {
				y1 += stepy
				fraction -= dx
			}
			x1 += stepx
			fraction += dy
			d.plane.SetPixel(x1, y1, mode, true)
		}
	} else {
		fraction := dx - dy>>1
		for y1 != y2 {
			if fraction >= 0 {
				x1 += stepx
				fraction -= dy
			}
			y1 += stepy
			fraction += dx
			d.plane.SetPixel(x1, y1, mode, true)
		}
	}
}

// DrawCircle draws a circle of the given radius centred on (cx, cy) using
// the midpoint algorithm.
func (d *Display) DrawCircle(cx, cy, radius int, mode Mode) {
	x := 0
	y := radius
	p := (5 - radius*4) / 4

	d.circlePoints(cx, cy, x, y, mode)
	for x < y {
		x++
		if p < 0 {
			p += 2*x + 1
		} else {
			y--
			p += 2*(x-y) + 1
		}
		d.circlePoints(cx, cy, x, y, mode)
	}
}

func (d *Display) circlePoints(cx, cy, x, y int, mode Mode) {
	switch {
	case x == 0:
		d.plane.SetPixel(cx, cy+y, mode, true)
		d.plane.SetPixel(cx, cy-y, mode, true)
		d.plane.SetPixel(cx+y, cy, mode, true)
		d.plane.SetPixel(cx-y, cy, mode, true)
	case x == y:
		d.plane.SetPixel(cx+x, cy+y, mode, true)
		d.plane.SetPixel(cx-x, cy+y, mode, true)
		d.plane.SetPixel(cx+x, cy-y, mode, true)
		d.plane.SetPixel(cx-x, cy-y, mode, true)
	case x < y:
		d.plane.SetPixel(cx+x, cy+y, mode, true)
		d.plane.SetPixel(cx-x, cy+y, mode, true)
		d.plane.SetPixel(cx+x, cy-y, mode, true)
		d.plane.SetPixel(cx-x, cy-y, mode, true)
		d.plane.SetPixel(cx+y, cy+x, mode, true)
		d.plane.SetPixel(cx-y, cy+x, mode, true)
		d.plane.SetPixel(cx+y, cy-x, mode, true)
		d.plane.SetPixel(cx-y, cy-x, mode, true)
	}
}

// DrawBox draws a single-pixel rectangle outline.
func (d *Display) DrawBox(x1, y1, x2, y2 int, mode Mode) {
	d.DrawLine(x1, y1, x2, y1, mode)
	d.DrawLine(x2, y1, x2, y2, mode)
	d.DrawLine(x2, y2, x1, y2, mode)
	d.DrawLine(x1, y2, x1, y1, mode)
}

// DrawFilledBox draws a filled rectangle.
func (d *Display) DrawFilledBox(x1, y1, x2, y2 int, mode Mode) {
	for x := x1; x <= x2; x++ {
		d.DrawLine(x, y1, x, y2, mode)
	}
}

// TestPattern selects one of the builtin panel test patterns.
type TestPattern uint8

const (
	// PatternAlt0 lights every alternate pixel, first pixel on.
	PatternAlt0 TestPattern = iota
	// PatternAlt1 lights every alternate pixel, first pixel off.
	PatternAlt1
	// PatternStripe0 draws vertical stripes, first stripe on.
	PatternStripe0
	// PatternStripe1 draws vertical stripes, first stripe off.
	PatternStripe1
)

// DrawTestPattern fills the plane with a hardware bring-up pattern.
func (d *Display) DrawTestPattern(pattern TestPattern) {
	w := d.plane.width
	for y := 0; y < d.plane.height; y++ {
		for x := 0; x < w; x++ {
			even := (x+y)%2 == 0
			var on bool
			switch pattern {
			case PatternAlt0:
				on = even
			case PatternAlt1:
				on = !even
			case PatternStripe0:
				on = x%2 == 0
			case PatternStripe1:
				on = x%2 != 0
			}
			d.plane.SetPixel(x, y, ModeNormal, on)
		}
	}
}
