package widgets

import (
	"github.com/rook-computer/epdui/internal/display"
	"github.com/rook-computer/epdui/internal/layout"
	"github.com/rook-computer/epdui/internal/ui"
)

// Dropdown picks one of a list of options. Confirm toggles the expanded
// (active) state; while expanded, up/down move the highlight and confirm
// commits it.
type Dropdown struct {
	ui.InteractableBase

	label    string
	options  []string
	index    int
	pending  int
	onChange func(index int, option string)
}

func NewDropdown(id, label string, options []string, onChange func(int, string)) *Dropdown {
	return &Dropdown{
		InteractableBase: ui.NewInteractableBase(id),
		label:            label,
		options:          options,
		onChange:         onChange,
	}
}

func (d *Dropdown) Index() int { return d.index }

func (d *Dropdown) Current() string {
	if len(d.options) == 0 {
		return ""
	}
	return d.options[d.index]
}

func (d *Dropdown) OnAction() {
	if len(d.options) == 0 {
		return
	}
	if !d.IsActive() {
		d.pending = d.index
		d.Activate()
		return
	}
	d.index = d.pending
	d.Deactivate()
	if d.onChange != nil {
		d.onChange(d.index, d.options[d.index])
	}
}

func (d *Dropdown) OnActionUp() {
	if !d.IsActive() || len(d.options) == 0 {
		return
	}
	if d.pending > 0 {
		d.pending--
	} else {
		d.pending = len(d.options) - 1
	}
}

func (d *Dropdown) OnActionDown() {
	if !d.IsActive() || len(d.options) == 0 {
		return
	}
	d.pending = (d.pending + 1) % len(d.options)
}

func (d *Dropdown) RenderContent(ctrl *display.Controller, ctx *ui.RenderContext) {
	const padding = 12
	const radius = 8
	face := ctrl.Face()
	th := ctrl.Theme()
	ink := ctrl.PrimaryColor(false)

	labelWidth, labelHeight := ctrl.TextBounds(d.label, face)
	rowHeight := labelHeight + padding

	boxWidth := padding * 2
	for _, opt := range d.options {
		w, _ := ctrl.TextBounds(opt, face)
		if w+padding*2 > boxWidth {
			boxWidth = w + padding*2
		}
	}

	ctx.X = layout.Align8(ctx.X)
	ctx.Y = layout.Align8(ctx.Y)
	ctx.Width = layout.Align8(labelWidth + padding + boxWidth + padding)
	if d.IsActive() {
		ctx.Height = layout.Align8(rowHeight*len(d.options) + padding*2)
	} else {
		ctx.Height = layout.Align8(labelHeight + padding*2)
	}

	baseline := ctx.Y + labelHeight + padding/2
	ctrl.DrawText(d.label, ctx.X+padding/2, baseline, ink, face)

	boxX := ctx.X + labelWidth + padding
	if !d.IsActive() {
		if d.IsSelected() {
			ctrl.DrawRoundRect(boxX, ctx.Y, boxWidth, ctx.Height, radius, d.BackgroundColor(th))
		} else if !d.IsInteractable() {
			ctrl.DrawPatternInRoundedArea(display.PatternDiagonalStripes, boxX, ctx.Y, boxWidth, ctx.Height, radius)
		} else {
			ctrl.DrawRoundRect(boxX, ctx.Y, boxWidth, ctx.Height, radius, ink)
		}
		ctrl.DrawText(d.Current(), boxX+padding, baseline, ink, face)
		return
	}

	// Expanded: paper panel with every option, the pending one boxed.
	ctrl.FillRoundRect(boxX, ctx.Y, boxWidth, ctx.Height, radius, ctrl.BackgroundColor())
	ctrl.DrawMultiRoundRectBorder(boxX, ctx.Y, boxWidth, ctx.Height, d.BackgroundColor(th), 3, 1, 2, radius)
	for i, opt := range d.options {
		rowY := ctx.Y + padding + i*rowHeight
		if i == d.pending {
			ctrl.DrawRoundRect(boxX+padding/2, rowY, boxWidth-padding, rowHeight, radius/2, ink)
		}
		ctrl.DrawText(opt, boxX+padding, rowY+labelHeight, ink, face)
	}
}
