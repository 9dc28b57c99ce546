package widgets

import (
	"github.com/rook-computer/epdui/internal/display"
	"github.com/rook-computer/epdui/internal/ui"
)

// Label is static text.
type Label struct {
	ui.Base

	text string
	bold bool
}

func NewLabel(text string) *Label { return &Label{text: text} }

func NewBoldLabel(text string) *Label { return &Label{text: text, bold: true} }

func (l *Label) SetText(text string) { l.text = text }
func (l *Label) Text() string        { return l.text }

func (l *Label) RenderContent(ctrl *display.Controller, ctx *ui.RenderContext) {
	face := ctrl.Face()
	if l.bold {
		face = ctrl.BoldFace()
	}
	width, height := ctrl.TextBounds(l.text, face)
	ctrl.DrawText(l.text, ctx.X, ctx.Y+ctrl.Ascent(face), ctrl.PrimaryColor(false), face)
	ctx.Width = width
	ctx.Height = height
}
