package hub12

import (
	"testing"

	"github.com/ledsign/dmdgo/pkg/dmd"
)

var _ FrameSource = (*dmd.Plane)(nil)

// TestScanRowGroupFromPlane tests a scan driven by a real framebuffer
func TestScanRowGroupFromPlane(t *testing.T) {
	plane, err := dmd.NewPlane(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	plane.SetPixel(0, 12, dmd.ModeNormal, true) // row 12 is in phase 0's group

	s, fakes := newFakeScanner()
	if err := s.ScanRowGroup(plane); err != nil {
		t.Fatalf("ScanRowGroup() failed: %v", err)
	}

	// 4 row-group bytes per column position, 4 column positions, 8 bits each.
	data := fakes[testPins.Data].values
	if len(data) != 4*4*8 {
		t.Fatalf("data pin saw %d writes, want %d", len(data), 4*4*8)
	}
	// The first byte shifted is row 12's first byte; its MSB is the lit
	// pixel, active low.
	if data[0] != 0 {
		t.Errorf("first data bit = %d, want 0 for a lit pixel", data[0])
	}
	lowBits := 0
	for _, v := range data {
		if v == 0 {
			lowBits++
		}
	}
	if lowBits != 1 {
		t.Errorf("%d low data bits, want exactly 1", lowBits)
	}
	if plane.Phase() != 1 {
		t.Errorf("Phase() = %d after scan, want 1", plane.Phase())
	}
}
