package widgets

import (
	"github.com/rook-computer/epdui/internal/display"
	"github.com/rook-computer/epdui/internal/layout"
	"github.com/rook-computer/epdui/internal/ui"
)

const (
	buttonPadding = 12
	buttonRadius  = 8
)

// Button is a labeled action trigger, optionally with a leading icon.
type Button struct {
	ui.InteractableBase

	label  string
	icon   *Icon
	action func()
}

func NewButton(id, label string, action func()) *Button {
	return &Button{InteractableBase: ui.NewInteractableBase(id), label: label, action: action}
}

func NewIconButton(id, label string, icon *Icon, action func()) *Button {
	b := NewButton(id, label, action)
	b.icon = icon
	return b
}

func (b *Button) OnAction() {
	if b.action != nil {
		b.action()
	}
}

func (b *Button) RenderContent(ctrl *display.Controller, ctx *ui.RenderContext) {
	face := ctrl.BoldFace()
	textWidth, textHeight := ctrl.TextBounds(b.label, face)

	width := ctx.Width
	height := ctx.Height
	if width == 0 || height == 0 {
		width = textWidth
		height = textHeight
	}

	ctx.X = layout.Align8(ctx.X)
	ctx.Y = layout.Align8(ctx.Y)
	ctx.Height = layout.Align8(height + buttonPadding*2)

	iconSize := ctx.Height - buttonPadding
	if b.icon != nil {
		width += buttonPadding*2 + iconSize
	}
	ctx.Width = layout.Align8(width + buttonPadding*2)

	t := ctrl.Theme()
	ink := b.BackgroundColor(t)

	switch {
	case b.IsActive():
		margin := buttonPadding / 4
		ctrl.DrawPatternInRoundedArea(display.PatternCheckerboard, ctx.X, ctx.Y, ctx.Width, ctx.Height, buttonRadius)
		ctrl.DrawMultiRoundRectBorder(ctx.X+margin, ctx.Y+margin, ctx.Width-margin*2, ctx.Height-margin*2, b.ForegroundColor(t), 3, 1, 2, buttonRadius)
		ink = b.ForegroundColor(t)
	case b.IsSelected():
		ctrl.DrawRoundRect(ctx.X, ctx.Y, ctx.Width, ctx.Height, buttonRadius, b.BackgroundColor(t))
		ink = b.BackgroundColor(t)
	case !b.IsInteractable():
		ctrl.DrawPatternInRoundedArea(display.PatternDiagonalStripes, ctx.X, ctx.Y, ctx.Width, ctx.Height, buttonRadius)
		ink = b.ForegroundColor(t)
	default:
		ctrl.FillRoundRect(ctx.X, ctx.Y, ctx.Width, ctx.Height, buttonRadius, b.BackgroundColor(t))
		ink = b.ForegroundColor(t)
	}

	baseline := ctx.Y + (ctx.Height+textHeight)/2 - 2
	textX := ctx.X + buttonPadding
	if b.icon != nil {
		b.icon.Color = ink
		ui.ExecuteRender(b.icon, ctrl, ui.NewRenderContext(ctx.X+buttonPadding, ctx.Y+buttonPadding/2, iconSize, iconSize))
		textX = ctx.X + buttonPadding*2 + iconSize
	}
	ctrl.DrawText(b.label, textX, baseline, ink, face)
}
