// Package ui defines the component model of the framework: the drawing
// window contract, the render pipeline, interactable state and the page
// focus machine.
package ui

import "image"

// RenderContext is the drawing window handed to a render call. The callee
// may rewrite it in place to reflect the footprint it actually occupied;
// the caller then knows the true on-screen bounds.
type RenderContext struct {
	X      int
	Y      int
	Width  int
	Height int
}

func NewRenderContext(x, y, width, height int) *RenderContext {
	return &RenderContext{X: x, Y: y, Width: width, Height: height}
}

// Rect converts the context to an image.Rectangle.
func (c *RenderContext) Rect() image.Rectangle {
	return image.Rect(c.X, c.Y, c.X+c.Width, c.Y+c.Height)
}

// Empty reports whether the window has no area.
func (c *RenderContext) Empty() bool {
	return c.Width <= 0 || c.Height <= 0
}
