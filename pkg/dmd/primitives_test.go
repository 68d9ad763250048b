package dmd

import "testing"

// TestDrawLine tests straight and diagonal lines
func TestDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		wantLit        [][2]int
		wantCount      int
	}{
		{
			name: "horizontal", x1: 0, y1: 2, x2: 5, y2: 2,
			wantLit:   [][2]int{{0, 2}, {5, 2}},
			wantCount: 6,
		},
		{
			name: "vertical", x1: 3, y1: 0, x2: 3, y2: 4,
			wantLit:   [][2]int{{3, 0}, {3, 4}},
			wantCount: 5,
		},
		{
			name: "diagonal", x1: 0, y1: 0, x2: 3, y2: 3,
			wantLit:   [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
			wantCount: 4,
		},
		{
			name: "reversed endpoints", x1: 5, y1: 2, x2: 0, y2: 2,
			wantLit:   [][2]int{{0, 2}, {5, 2}},
			wantCount: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDisplay(t, 1, nil)
			d.DrawLine(tt.x1, tt.y1, tt.x2, tt.y2, ModeNormal)
			for _, c := range tt.wantLit {
				if !d.Plane().Pixel(c[0], c[1]) {
					t.Errorf("Pixel(%d, %d) = false", c[0], c[1])
				}
			}
			if got := litCount(d.Plane()); got != tt.wantCount {
				t.Errorf("lit pixels = %d, want %d", got, tt.wantCount)
			}
		})
	}
}

// TestDrawBox tests outline rectangles
func TestDrawBox(t *testing.T) {
	d := newTestDisplay(t, 1, nil)
	p := d.Plane()
	d.DrawBox(1, 1, 4, 4, ModeNormal)

	if got := litCount(p); got != 12 {
		t.Errorf("lit pixels = %d, want 12 for the outline", got)
	}
	if p.Pixel(2, 2) || p.Pixel(3, 3) {
		t.Error("box interior lit")
	}
	if !p.Pixel(1, 1) || !p.Pixel(4, 4) || !p.Pixel(1, 4) || !p.Pixel(4, 1) {
		t.Error("box corner unlit")
	}
}

// TestDrawFilledBox tests inclusive-bound fills
func TestDrawFilledBox(t *testing.T) {
	d := newTestDisplay(t, 1, nil)
	p := d.Plane()
	d.DrawFilledBox(2, 1, 5, 3, ModeNormal)

	if got := litCount(p); got != 4*3 {
		t.Errorf("lit pixels = %d, want %d", got, 4*3)
	}
	if !p.Pixel(2, 1) || !p.Pixel(5, 3) {
		t.Error("fill bounds not inclusive")
	}
}

// TestDrawCircle tests the cardinal extremes of a midpoint circle
func TestDrawCircle(t *testing.T) {
	d := newTestDisplay(t, 1, nil)
	p := d.Plane()
	d.DrawCircle(8, 8, 3, ModeNormal)

	for _, c := range [][2]int{{8, 5}, {8, 11}, {5, 8}, {11, 8}} {
		if !p.Pixel(c[0], c[1]) {
			t.Errorf("Pixel(%d, %d) = false, want cardinal point lit", c[0], c[1])
		}
	}
	if p.Pixel(8, 8) {
		t.Error("circle centre lit")
	}
}
