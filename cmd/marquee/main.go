// Command marquee scrolls a message across a chain of HUB12 LED dot-matrix
// panels. The message comes from the -text flag or, when configured, from a
// WebSocket feed that can replace it at runtime.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ledsign/dmdgo/internal/config"
	"github.com/ledsign/dmdgo/internal/feed"
	"github.com/ledsign/dmdgo/pkg/dmd"
	"github.com/ledsign/dmdgo/pkg/hub12"
)

var (
	configPath = flag.String("config", "", "Path to JSON configuration file")
	text       = flag.String("text", "HELLO WORLD", "Text to scroll across the display")
	arabic     = flag.Bool("arabic", false, "Shape and reorder the text as Arabic before scrolling")
	top        = flag.Int("top", 0, "Vertical offset of the text")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	plane, err := dmd.NewPlane(cfg.Display.PanelsAcross, cfg.Display.PanelsDown)
	if err != nil {
		log.Fatalf("Failed to create plane: %v", err)
	}
	display := dmd.NewDisplay(plane)
	if cfg.Display.FontPath != "" {
		font, err := dmd.LoadFont(cfg.Display.FontPath)
		if err != nil {
			log.Fatalf("Failed to load font: %v", err)
		}
		display.SetFont(font)
	}

	scanner, err := hub12.NewScanner(cfg.HUB12.Chip, hub12.Pins{
		A:            cfg.HUB12.APin,
		B:            cfg.HUB12.BPin,
		Clock:        cfg.HUB12.ClockPin,
		Latch:        cfg.HUB12.LatchPin,
		OutputEnable: cfg.HUB12.OEPin,
		Data:         cfg.HUB12.DataPin,
	})
	if err != nil {
		log.Fatalf("Failed to initialize HUB12 scanner: %v", err)
	}
	defer scanner.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var messages <-chan string
	if cfg.Feed.URL != "" {
		client := feed.NewClient(cfg.Feed.URL)
		if err := client.Connect(ctx); err != nil {
			log.Fatalf("Failed to connect to feed: %v", err)
		}
		defer client.Close()
		messages = client.Messages()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	start := func(msg string) *dmd.Marquee {
		plane.Clear(false)
		if *arabic {
			return display.DrawArabicMarquee(msg, plane.Width(), *top)
		}
		return display.DrawMarquee([]byte(msg), plane.Width(), *top)
	}
	marquee := start(*text)

	// Scanning and stepping share one loop so a refresh read never
	// interleaves with a framebuffer mutation.
	scanTicker := time.NewTicker(time.Duration(cfg.Display.RefreshIntervalUS) * time.Microsecond)
	defer scanTicker.Stop()
	stepTicker := time.NewTicker(time.Duration(cfg.Display.ScrollIntervalMS) * time.Millisecond)
	defer stepTicker.Stop()

	log.Printf("Scrolling on %dx%d panels: %s", cfg.Display.PanelsAcross, cfg.Display.PanelsDown, *text)
	for {
		select {
		case <-sigChan:
			log.Println("Received shutdown signal")
			return
		case <-scanTicker.C:
			if err := scanner.ScanRowGroup(plane); err != nil {
				log.Printf("Failed to scan row group: %v", err)
			}
		case <-stepTicker.C:
			marquee.Step(display, -1, 0)
		case msg, ok := <-messages:
			if !ok {
				messages = nil
				continue
			}
			log.Printf("New feed message: %s", msg)
			marquee = start(msg)
		}
	}
}
