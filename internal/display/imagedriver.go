package display

import (
	"image"
	"image/draw"
	"sync"
)

// ImageDriver keeps the flushed frame in memory. It backs the simulator and
// tests, where no panel hardware exists.
type ImageDriver struct {
	mu     sync.Mutex
	bounds image.Rectangle
	frame  *image.RGBA
	pages  int

	flushes     int
	fullFlushes int

	// FrameFunc, when set, observes every flush (the simulator writes PNG
	// frames from it).
	FrameFunc func(frame *image.RGBA, window image.Rectangle, mode Refresh)
}

func NewImageDriver(width, height int) *ImageDriver {
	bounds := image.Rect(0, 0, width, height)
	return &ImageDriver{
		bounds: bounds,
		frame:  image.NewRGBA(bounds),
		pages:  1,
	}
}

// SetPages overrides the per-refresh pass count, emulating a panel with a
// limited page buffer.
func (d *ImageDriver) SetPages(pages int) { d.pages = pages }

func (d *ImageDriver) Bounds() image.Rectangle { return d.bounds }

func (d *ImageDriver) Pages() int {
	if d.pages < 1 {
		return 1
	}
	return d.pages
}

func (d *ImageDriver) Flush(canvas *image.RGBA, window image.Rectangle, mode Refresh) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	window = window.Intersect(d.bounds)
	if !window.Empty() {
		draw.Draw(d.frame, window, canvas, window.Min, draw.Src)
	}
	d.flushes++
	if mode == RefreshFull {
		d.fullFlushes++
	}
	if d.FrameFunc != nil {
		d.FrameFunc(d.frame, window, mode)
	}
	return nil
}

func (d *ImageDriver) Close() error { return nil }

// Frame returns a copy of the last flushed frame.
func (d *ImageDriver) Frame() *image.RGBA {
	d.mu.Lock()
	defer d.mu.Unlock()
	clone := image.NewRGBA(d.bounds)
	draw.Draw(clone, d.bounds, d.frame, d.bounds.Min, draw.Src)
	return clone
}

// Flushes reports how many refreshes were issued, and how many of them used
// the full refresh mode.
func (d *ImageDriver) Flushes() (total, full int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.flushes, d.fullFlushes
}
