package dmd

import "testing"

const rectSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 8 8">` +
	`<rect x="0" y="0" width="4" height="8" fill="#000"/></svg>`

// TestDrawSVG tests thresholded rasterization into a plane region
func TestDrawSVG(t *testing.T) {
	d := newTestDisplay(t, 1, nil)
	p := d.Plane()

	if err := d.DrawSVG([]byte(rectSVG), 2, 4, 8, 8, ModeNormal); err != nil {
		t.Fatalf("DrawSVG() failed: %v", err)
	}

	// The rect covers the left half of the 8x8 target box at (2, 4).
	if !p.Pixel(2, 4) || !p.Pixel(5, 11) {
		t.Error("covered region unlit")
	}
	if p.Pixel(6, 4) || p.Pixel(9, 11) {
		t.Error("uncovered region lit")
	}
	if got := litCount(p); got != 4*8 {
		t.Errorf("lit pixels = %d, want %d", got, 4*8)
	}
}

// TestDrawSVGErrors tests rejection of bad input
func TestDrawSVGErrors(t *testing.T) {
	d := newTestDisplay(t, 1, nil)

	if err := d.DrawSVG([]byte(rectSVG), 0, 0, 0, 8, ModeNormal); err == nil {
		t.Error("expected error for empty target box")
	}
	if err := d.DrawSVG([]byte("<svg"), 0, 0, 8, 8, ModeNormal); err == nil {
		t.Error("expected error for malformed svg")
	}
}
