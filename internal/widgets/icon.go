// Package widgets provides the concrete interactables and components that
// plug into the ui contract: each draws itself through the display
// controller and writes its true footprint back into the passed context.
package widgets

import (
	"image/color"

	"github.com/rook-computer/epdui/internal/display"
	"github.com/rook-computer/epdui/internal/ui"
)

// Icon draws a 1-bit packed bitmap scaled to the context size. A zero-size
// context falls back to the bitmap's natural size; when only one dimension
// is given the icon stays square.
type Icon struct {
	ui.Base

	bitmap []byte
	width  int
	height int
	// Color overrides the theme ink when non-nil.
	Color color.Color
}

func NewIcon(bitmap []byte, width, height int) *Icon {
	return &Icon{bitmap: bitmap, width: width, height: height}
}

func (i *Icon) Size() (width, height int) { return i.width, i.height }

func (i *Icon) RenderContent(ctrl *display.Controller, ctx *ui.RenderContext) {
	if ctx.Width == 0 && ctx.Height == 0 {
		ctx.Width = i.width
		ctx.Height = i.height
	}
	if ctx.Width != 0 && ctx.Height == 0 {
		ctx.Height = ctx.Width
	} else if ctx.Height != 0 && ctx.Width == 0 {
		ctx.Width = ctx.Height
	}
	col := i.Color
	if col == nil {
		col = ctrl.PrimaryColor(false)
	}
	ctrl.DrawScaledBitmap(ctx.X, ctx.Y, i.bitmap, i.width, i.height, ctx.Width, ctx.Height, col)
}
