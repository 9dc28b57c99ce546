// Package layout holds small integer-rectangle helpers shared by widgets
// and pages.
package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitHorizontal splits rect into top and bottom parts. topHeightPx is
// clamped to [0, rect.Dy()].
func SplitHorizontal(rect image.Rectangle, topHeightPx int) (top, bottom image.Rectangle) {
	rect = Normalize(rect)
	height := rect.Dy()
	if topHeightPx < 0 {
		topHeightPx = 0
	}
	if topHeightPx > height {
		topHeightPx = height
	}
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+topHeightPx)
	bottom = image.Rect(rect.Min.X, rect.Min.Y+topHeightPx, rect.Max.X, rect.Max.Y)
	return top, bottom
}

// SplitVertical splits rect into left and right parts. leftWidthPx is
// clamped to [0, rect.Dx()].
func SplitVertical(rect image.Rectangle, leftWidthPx int) (left, right image.Rectangle) {
	rect = Normalize(rect)
	width := rect.Dx()
	if leftWidthPx < 0 {
		leftWidthPx = 0
	}
	if leftWidthPx > width {
		leftWidthPx = width
	}
	left = image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+leftWidthPx, rect.Max.Y)
	right = image.Rect(rect.Min.X+leftWidthPx, rect.Min.Y, rect.Max.X, rect.Max.Y)
	return left, right
}

// Align8 snaps v up to the next multiple of 8. Partial-window refreshes on
// the panel controller operate on byte-aligned columns.
func Align8(v int) int {
	return (v + 7) &^ 7
}

// Center returns a widthPx x heightPx rectangle centered inside rect.
func Center(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	x := rect.Min.X + (rect.Dx()-widthPx)/2
	y := rect.Min.Y + (rect.Dy()-heightPx)/2
	return image.Rect(x, y, x+widthPx, y+heightPx)
}
