// Package hub12 drives HUB12-interface LED dot-matrix panels over the Linux
// GPIO character device. It is the refresh transport for a dmd.Plane: each
// scan cycle shifts the 4 interleaved row-group bytes for the current phase
// out to the panel's shift registers, latches them and selects the row pair.
//
// The scanner only ever reads the framebuffer. Callers must keep scans and
// framebuffer mutations from interleaving, typically by running both from
// the same goroutine.
package hub12

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

// Pins holds the GPIO line offsets of the HUB12 control signals.
type Pins struct {
	A            int // row address bit A
	B            int // row address bit B
	Clock        int // serial clock
	Latch        int // storage register latch
	OutputEnable int // row drive enable
	Data         int // serial pixel data, active low
}

// FrameSource is the framebuffer view a Scanner needs. *dmd.Plane
// implements it.
type FrameSource interface {
	// RowGroups returns the 4 interleaved scanline byte rows for the
	// current phase, lowest row first.
	RowGroups() (g0, g1, g2, g3 []byte)
	// Phase returns the current row-group cursor (0..3).
	Phase() uint8
	// AdvancePhase moves the cursor to the next row group.
	AdvancePhase() uint8
}

// line is the subset of gpiocdev.Line the scanner uses; tests substitute
// fakes.
type line interface {
	SetValue(value int) error
	Close() error
}

// A Scanner owns the requested GPIO lines for one panel chain.
type Scanner struct {
	pins  Pins
	lines map[int]line
}

// NewScanner requests all HUB12 lines as outputs on the given chip
// (typically "gpiochip0"). Lines already requested are released again if any
// request fails.
func NewScanner(chip string, pins Pins) (*Scanner, error) {
	s := &Scanner{
		pins:  pins,
		lines: make(map[int]line),
	}
	for _, pin := range []int{pins.A, pins.B, pins.Clock, pins.Latch, pins.OutputEnable, pins.Data} {
		l, err := gpiocdev.RequestLine(chip, pin, gpiocdev.AsOutput(0))
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("request GPIO line %d on %s: %v", pin, chip, err)
		}
		s.lines[pin] = l
	}
	return s, nil
}

// Close releases all GPIO lines.
func (s *Scanner) Close() error {
	for pin, l := range s.lines {
		if err := l.Close(); err != nil {
			log.Printf("closing GPIO line %d: %v", pin, err)
		}
	}
	s.lines = make(map[int]line)
	return nil
}

func (s *Scanner) set(pin, value int) error {
	l, ok := s.lines[pin]
	if !ok {
		return nil
	}
	return l.SetValue(value)
}

// shiftByte clocks one byte out most significant bit first.
func (s *Scanner) shiftByte(b byte) error {
	for bit := 7; bit >= 0; bit-- {
		if err := s.set(s.pins.Data, int(b>>bit)&1); err != nil {
			return err
		}
		if err := s.set(s.pins.Clock, 1); err != nil {
			return err
		}
		if err := s.set(s.pins.Clock, 0); err != nil {
			return err
		}
	}
	return nil
}

// ScanRowGroup emits one refresh cycle: for every column position it shifts
// the 4 bytes of the current row group (highest row first, the order the
// shift-register chain expects), then latches with the row drive disabled,
// selects the row pair for the phase just shifted and advances the cursor.
// Call it 4 times to refresh the whole display.
func (s *Scanner) ScanRowGroup(src FrameSource) error {
	phase := src.Phase()
	g0, g1, g2, g3 := src.RowGroups()
	for i := range g0 {
		for _, b := range [4]byte{g3[i], g2[i], g1[i], g0[i]} {
			if err := s.shiftByte(b); err != nil {
				return err
			}
		}
	}

	if err := s.set(s.pins.OutputEnable, 0); err != nil {
		return err
	}
	if err := s.set(s.pins.Latch, 1); err != nil {
		return err
	}
	if err := s.set(s.pins.Latch, 0); err != nil {
		return err
	}
	if err := s.set(s.pins.A, int(phase)&1); err != nil {
		return err
	}
	if err := s.set(s.pins.B, int(phase)>>1&1); err != nil {
		return err
	}
	src.AdvancePhase()
	return s.set(s.pins.OutputEnable, 1)
}

// Run scans one row group per tick until the context is cancelled. A full
// display refresh takes 4 ticks, so an interval of 1ms yields roughly 250
// full frames per second.
func (s *Scanner) Run(ctx context.Context, src FrameSource, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.ScanRowGroup(src); err != nil {
				log.Printf("Failed to scan row group: %v", err)
			}
		}
	}
}
