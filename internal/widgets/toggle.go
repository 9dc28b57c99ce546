package widgets

import (
	"github.com/rook-computer/epdui/internal/display"
	"github.com/rook-computer/epdui/internal/layout"
	"github.com/rook-computer/epdui/internal/ui"
)

// ToggleOption is one position of a Toggle: a label, an optional icon and
// an opaque value handed to the change callback.
type ToggleOption struct {
	Label string
	Icon  *Icon
	Value int
}

// Toggle cycles through a fixed option list. Confirm advances, left/right
// step with wraparound and put the widget in the active state so the
// scheduler redraws just this widget.
type Toggle struct {
	ui.InteractableBase

	label    string
	options  []ToggleOption
	index    int
	onChange func(option ToggleOption)
}

func NewToggle(id, label string, options []ToggleOption, onChange func(ToggleOption)) *Toggle {
	return &Toggle{
		InteractableBase: ui.NewInteractableBase(id),
		label:            label,
		options:          options,
		onChange:         onChange,
	}
}

func (t *Toggle) Index() int { return t.index }

// SetIndex moves the toggle without firing the change callback. Used to
// seed the widget from persisted state.
func (t *Toggle) SetIndex(index int) {
	if index >= 0 && index < len(t.options) {
		t.index = index
	}
}

func (t *Toggle) Current() ToggleOption {
	if len(t.options) == 0 {
		return ToggleOption{}
	}
	return t.options[t.index]
}

func (t *Toggle) changed() {
	if t.onChange != nil {
		t.onChange(t.Current())
	}
}

func (t *Toggle) OnAction() {
	if len(t.options) == 0 {
		return
	}
	t.index = (t.index + 1) % len(t.options)
	t.changed()
}

func (t *Toggle) OnActionLeft() {
	if len(t.options) == 0 {
		return
	}
	if t.index > 0 {
		t.index--
	} else {
		t.index = len(t.options) - 1
	}
	t.Activate()
	t.changed()
}

func (t *Toggle) OnActionRight() {
	if len(t.options) == 0 {
		return
	}
	t.index = (t.index + 1) % len(t.options)
	t.Activate()
	t.changed()
}

func (t *Toggle) RenderContent(ctrl *display.Controller, ctx *ui.RenderContext) {
	const padding = 12
	const radius = 8
	face := ctrl.Face()
	th := ctrl.Theme()
	ink := ctrl.PrimaryColor(false)

	labelWidth, labelHeight := ctrl.TextBounds(t.label, face)
	current := t.Current()
	valueWidth, _ := ctrl.TextBounds(current.Label, face)

	boxWidth := valueWidth + padding*2
	iconSize := 0
	if current.Icon != nil {
		iconSize = labelHeight + padding
		boxWidth += iconSize + padding/2
	}

	ctx.X = layout.Align8(ctx.X)
	ctx.Y = layout.Align8(ctx.Y)
	ctx.Width = layout.Align8(labelWidth + padding + boxWidth + padding*2)
	ctx.Height = layout.Align8(labelHeight + padding*2)

	baseline := ctx.Y + (ctx.Height+labelHeight)/2 - 2
	ctrl.DrawText(t.label, ctx.X+padding/2, baseline, ink, face)

	boxX := ctx.X + labelWidth + padding
	switch {
	case t.IsActive():
		ctrl.DrawMultiRoundRectBorder(boxX, ctx.Y, boxWidth, ctx.Height, t.BackgroundColor(th), 3, 1, 2, radius)
	case t.IsSelected():
		ctrl.DrawRoundRect(boxX, ctx.Y, boxWidth, ctx.Height, radius, t.BackgroundColor(th))
	case !t.IsInteractable():
		ctrl.DrawPatternInRoundedArea(display.PatternDiagonalStripes, boxX, ctx.Y, boxWidth, ctx.Height, radius)
	}

	valueX := boxX + padding
	if current.Icon != nil {
		current.Icon.Color = ink
		ui.ExecuteRender(current.Icon, ctrl, ui.NewRenderContext(boxX+padding/2, ctx.Y+padding/2, iconSize, iconSize))
		valueX = boxX + padding + iconSize
	}
	ctrl.DrawText(current.Label, valueX, baseline, ink, face)
}
