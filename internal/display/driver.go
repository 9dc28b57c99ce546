package display

import "image"

// Refresh selects the hardware refresh mode for a flush.
type Refresh int

const (
	// RefreshPartial is the fast mode; it may leave faint ghosting.
	RefreshPartial Refresh = iota
	// RefreshFull clears accumulated ghosting at a higher latency cost.
	RefreshFull
)

func (r Refresh) String() string {
	if r == RefreshFull {
		return "full"
	}
	return "partial"
}

// Driver is the hardware side of the display. Flush pushes the window
// region of the canvas out to the panel. Pages reports how many passes the
// hardware needs per refresh; the controller invokes the composition
// callback once per pass, so callbacks must be idempotent.
type Driver interface {
	Bounds() image.Rectangle
	Pages() int
	Flush(canvas *image.RGBA, window image.Rectangle, mode Refresh) error
	Close() error
}
