// The simulator runs the UI against an in-memory display and a scripted
// input source, writing every flushed frame as a PNG. Useful for eyeballing
// layout and refresh behavior without hardware.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rook-computer/epdui/internal/app"
	"github.com/rook-computer/epdui/internal/config"
	"github.com/rook-computer/epdui/internal/display"
	"github.com/rook-computer/epdui/internal/logging"
)

func main() {
	outDir := flag.String("out", "/tmp/epdui-sim", "directory for rendered PNG frames")
	width := flag.Int("width", 800, "display width in pixels")
	height := flag.Int("height", 480, "display height in pixels")
	scenario := flag.String("scenario", "tour", "scripted input scenario: tour | menu | typing")
	interval := flag.Duration("interval", 50*time.Millisecond, "delay between scripted key presses")
	flag.Parse()

	if err := logging.Initialize("debug"); err != nil {
		fmt.Println("logging init error:", err)
		os.Exit(2)
	}
	defer logging.Sync()
	log := logging.L()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Println("output dir error:", err)
		os.Exit(2)
	}

	events, err := scenarioEvents(*scenario)
	if err != nil {
		fmt.Println("scenario error:", err)
		os.Exit(2)
	}

	driver := display.NewImageDriver(*width, *height)
	frameIndex := 0
	driver.FrameFunc = func(frame *image.RGBA, window image.Rectangle, mode display.Refresh) {
		name := fmt.Sprintf("frame-%03d-%s.png", frameIndex, mode)
		frameIndex++
		if err := writePNG(filepath.Join(*outDir, name), frame); err != nil {
			fmt.Println("frame write error:", err)
		}
	}

	cfg := config.Default()
	cfg.Display.Width = *width
	cfg.Display.Height = *height
	cfg.Theme.File = filepath.Join(*outDir, "theme.yaml")

	a, err := app.New(cfg, app.Options{
		Driver:      driver,
		Source:      NewScriptedSource(events, *interval),
		SkipConsole: true,
	}, log)
	if err != nil {
		fmt.Println("app error:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Start(ctx); err != nil && err != context.Canceled {
		fmt.Println("app exit error:", err)
		os.Exit(1)
	}

	total, full := driver.Flushes()
	fmt.Printf("Scenario %q done: %d frames (%d full refreshes) in %s\n", *scenario, total, full, *outDir)
}

func writePNG(path string, frame *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, frame)
}
