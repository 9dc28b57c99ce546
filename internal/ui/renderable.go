package ui

import "github.com/rook-computer/epdui/internal/display"

// Renderable is anything that can draw itself into a RenderContext. The
// draw implementation must be idempotent: the driver may invoke the
// composition callback more than once per refresh, so repeated calls with
// unchanged state must produce identical output. Render calls must not
// mutate application state.
type Renderable interface {
	// RenderContent performs the drawing and may rewrite ctx to the
	// element's actual footprint.
	RenderContent(ctrl *display.Controller, ctx *RenderContext)
	// SetLastContext records the window used by the most recent render.
	SetLastContext(ctx RenderContext)
	// LastContext reports the most recent render window, used for partial
	// redraw geometry.
	LastContext() RenderContext
}

// ExecuteRender runs the element's draw implementation, then stores the
// (possibly rewritten) context so later partial redraws can target the
// element's true bounds.
func ExecuteRender(r Renderable, ctrl *display.Controller, ctx *RenderContext) {
	r.RenderContent(ctrl, ctx)
	r.SetLastContext(*ctx)
}

// Base carries the last-render window for embedders.
type Base struct {
	last RenderContext
}

func (b *Base) SetLastContext(ctx RenderContext) { b.last = ctx }
func (b *Base) LastContext() RenderContext       { return b.last }

// Window reports the last render window as discrete coordinates.
func (b *Base) Window() (x, y, width, height int) {
	return b.last.X, b.last.Y, b.last.Width, b.last.Height
}
