package display

import (
	"fmt"
	"image"
	"image/color"

	fb "github.com/gonutz/framebuffer"
)

// FramebufferDriver flushes the canvas to a Linux framebuffer device. The
// canvas is scaled to the device bounds with nearest-neighbor sampling, so
// the logical canvas size is independent of the panel mode.
type FramebufferDriver struct {
	dev    *fb.Device
	canvas image.Rectangle
}

// OpenFramebuffer opens the device (typically /dev/fb0). canvasWidth and
// canvasHeight define the logical canvas the controller will compose into.
func OpenFramebuffer(device string, canvasWidth, canvasHeight int) (*FramebufferDriver, error) {
	dev, err := fb.Open(device)
	if err != nil {
		return nil, fmt.Errorf("open framebuffer %s: %w", device, err)
	}
	return &FramebufferDriver{
		dev:    dev,
		canvas: image.Rect(0, 0, canvasWidth, canvasHeight),
	}, nil
}

func (d *FramebufferDriver) Bounds() image.Rectangle { return d.canvas }

// Pages is 1: the framebuffer holds a whole frame, no banding needed.
func (d *FramebufferDriver) Pages() int { return 1 }

func (d *FramebufferDriver) Flush(canvas *image.RGBA, window image.Rectangle, mode Refresh) error {
	if d.dev == nil {
		return fmt.Errorf("framebuffer closed")
	}
	devBounds := d.dev.Bounds()
	fbWidth := devBounds.Dx()
	fbHeight := devBounds.Dy()
	canvasWidth := d.canvas.Dx()
	canvasHeight := d.canvas.Dy()
	if canvasWidth == 0 || canvasHeight == 0 {
		return nil
	}
	window = window.Intersect(d.canvas)
	if window.Empty() {
		return nil
	}

	// Map the damage window into device coordinates, then sample the canvas
	// per device pixel.
	x0 := window.Min.X * fbWidth / canvasWidth
	x1 := (window.Max.X*fbWidth + canvasWidth - 1) / canvasWidth
	y0 := window.Min.Y * fbHeight / canvasHeight
	y1 := (window.Max.Y*fbHeight + canvasHeight - 1) / canvasHeight
	if x1 > fbWidth {
		x1 = fbWidth
	}
	if y1 > fbHeight {
		y1 = fbHeight
	}
	for y := y0; y < y1; y++ {
		sy := y * canvasHeight / fbHeight
		for x := x0; x < x1; x++ {
			sx := x * canvasWidth / fbWidth
			pixel := canvas.RGBAAt(sx, sy)
			d.dev.Set(devBounds.Min.X+x, devBounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
	return nil
}

func (d *FramebufferDriver) Close() error {
	if d.dev != nil {
		d.dev.Close()
		d.dev = nil
	}
	return nil
}
