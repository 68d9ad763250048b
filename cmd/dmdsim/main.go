// Command dmdsim previews a panel chain in a desktop window, scrolling a
// demo marquee. It renders the same framebuffer the hardware scanner would
// shift out, so layout and shaping can be checked without a panel attached.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ledsign/dmdgo/pkg/dmd"
)

var (
	text     = flag.String("text", "HELLO WORLD", "Text to scroll")
	arabic   = flag.Bool("arabic", false, "Shape and reorder the text as Arabic")
	fontPath = flag.String("font", "", "Binary font file (builtin 5x7 when empty)")
	across   = flag.Int("across", 2, "Panels across")
	down     = flag.Int("down", 1, "Panels down")
	scale    = flag.Int("scale", 12, "Window pixels per LED")
	interval = flag.Duration("interval", 40*time.Millisecond, "Scroll step interval")
)

// LED colors, RGBA.
var (
	litPixel = [4]byte{0xFF, 0xB0, 0x00, 0xFF}
	offPixel = [4]byte{0x14, 0x0C, 0x04, 0xFF}
)

type simulator struct {
	plane    *dmd.Plane
	display  *dmd.Display
	marquee  *dmd.Marquee
	frame    *ebiten.Image
	pixels   []byte
	lastStep time.Time
}

func newSimulator() (*simulator, error) {
	plane, err := dmd.NewPlane(*across, *down)
	if err != nil {
		return nil, err
	}
	display := dmd.NewDisplay(plane)
	if *fontPath != "" {
		font, err := dmd.LoadFont(*fontPath)
		if err != nil {
			return nil, err
		}
		display.SetFont(font)
	}

	s := &simulator{
		plane:    plane,
		display:  display,
		frame:    ebiten.NewImage(plane.Width(), plane.Height()),
		pixels:   make([]byte, plane.Width()*plane.Height()*4),
		lastStep: time.Now(),
	}
	if *arabic {
		s.marquee = display.DrawArabicMarquee(*text, plane.Width(), 0)
	} else {
		s.marquee = display.DrawMarquee([]byte(*text), plane.Width(), 0)
	}
	return s, nil
}

func (s *simulator) Update() error {
	if time.Since(s.lastStep) >= *interval {
		s.marquee.Step(s.display, -1, 0)
		s.lastStep = time.Now()
	}
	return nil
}

func (s *simulator) Draw(screen *ebiten.Image) {
	w, h := s.plane.Width(), s.plane.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := litPixel
			if !s.plane.Pixel(x, y) {
				px = offPixel
			}
			copy(s.pixels[(y*w+x)*4:], px[:])
		}
	}
	s.frame.WritePixels(s.pixels)

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(*scale), float64(*scale))
	screen.DrawImage(s.frame, &op)
}

func (s *simulator) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.plane.Width() * (*scale), s.plane.Height() * (*scale)
}

func main() {
	flag.Parse()

	sim, err := newSimulator()
	if err != nil {
		log.Fatalf("Failed to start simulator: %v", err)
	}

	ebiten.SetWindowSize(sim.plane.Width()*(*scale), sim.plane.Height()*(*scale))
	ebiten.SetWindowTitle("dmdsim")
	if err := ebiten.RunGame(sim); err != nil {
		log.Fatal(err)
	}
}
