package widgets

import (
	"strconv"

	"github.com/rook-computer/epdui/internal/display"
	"github.com/rook-computer/epdui/internal/layout"
	"github.com/rook-computer/epdui/internal/ui"
)

// Slider adjusts an integer in [min, max] by step. Left/right mutate the
// value, clamp at the bounds and activate the widget for a focused redraw.
type Slider struct {
	ui.InteractableBase

	label    string
	value    int
	min      int
	max      int
	step     int
	onChange func(value int)
}

func NewSlider(id, label string, value, min, max, step int, onChange func(int)) *Slider {
	if max < min {
		min, max = max, min
	}
	if step <= 0 {
		step = 1
	}
	s := &Slider{
		InteractableBase: ui.NewInteractableBase(id),
		label:            label,
		value:            value,
		min:              min,
		max:              max,
		step:             step,
		onChange:         onChange,
	}
	s.value = s.clamp(s.value)
	return s
}

func (s *Slider) Value() int { return s.value }

func (s *Slider) clamp(v int) int {
	if v < s.min {
		return s.min
	}
	if v > s.max {
		return s.max
	}
	return v
}

func (s *Slider) setValue(v int) {
	s.value = s.clamp(v)
	s.Activate()
	if s.onChange != nil {
		s.onChange(s.value)
	}
}

func (s *Slider) OnActionLeft()  { s.setValue(s.value - s.step) }
func (s *Slider) OnActionRight() { s.setValue(s.value + s.step) }

func (s *Slider) RenderContent(ctrl *display.Controller, ctx *ui.RenderContext) {
	const padding = 12
	const barWidth = 160
	const barHeight = 16
	const radius = 4
	face := ctrl.Face()
	th := ctrl.Theme()
	ink := ctrl.PrimaryColor(false)

	labelWidth, labelHeight := ctrl.TextBounds(s.label, face)

	ctx.X = layout.Align8(ctx.X)
	ctx.Y = layout.Align8(ctx.Y)
	ctx.Width = layout.Align8(labelWidth + padding + barWidth + padding*3 + 48)
	ctx.Height = layout.Align8(labelHeight + padding*2)

	baseline := ctx.Y + (ctx.Height+labelHeight)/2 - 2
	ctrl.DrawText(s.label, ctx.X+padding/2, baseline, ink, face)

	barX := ctx.X + labelWidth + padding
	barY := ctx.Y + (ctx.Height-barHeight)/2
	ctrl.DrawRoundRect(barX, barY, barWidth, barHeight, radius, ink)

	span := s.max - s.min
	fill := 0
	if span > 0 {
		fill = (s.value - s.min) * barWidth / span
	}
	if fill > 0 {
		ctrl.DrawPatternInRoundedArea(display.PatternCheckerboard, barX, barY, fill, barHeight, radius)
	}

	ctrl.DrawText(strconv.Itoa(s.value), barX+barWidth+padding, baseline, ink, face)

	switch {
	case s.IsActive():
		ctrl.DrawMultiRoundRectBorder(ctx.X, ctx.Y, ctx.Width, ctx.Height, s.BackgroundColor(th), 3, 1, 2, radius)
	case s.IsSelected():
		ctrl.DrawRoundRect(ctx.X, ctx.Y, ctx.Width, ctx.Height, radius, s.BackgroundColor(th))
	case !s.IsInteractable():
		ctrl.DrawPatternInRoundedArea(display.PatternDiagonalStripes, ctx.X, ctx.Y, ctx.Width, ctx.Height, radius)
	}
}
