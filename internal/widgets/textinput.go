package widgets

import (
	"github.com/rook-computer/epdui/internal/display"
	"github.com/rook-computer/epdui/internal/layout"
	"github.com/rook-computer/epdui/internal/ui"
)

// textInputAlphabet is the rune cycle for five-button editing.
const textInputAlphabet = " abcdefghijklmnopqrstuvwxyz0123456789-_."

// TextInput edits a short string with five-button navigation: confirm
// toggles edit mode, left/right move the cursor (right past the end
// appends), up/down cycle the rune under the cursor.
type TextInput struct {
	ui.InteractableBase

	label    string
	text     []rune
	cursor   int
	onChange func(text string)
}

func NewTextInput(id, label, text string, onChange func(string)) *TextInput {
	return &TextInput{
		InteractableBase: ui.NewInteractableBase(id),
		label:            label,
		text:             []rune(text),
		onChange:         onChange,
	}
}

func (t *TextInput) Text() string { return string(t.text) }

func (t *TextInput) OnAction() {
	if t.IsActive() {
		t.Deactivate()
		if t.onChange != nil {
			t.onChange(string(t.text))
		}
		return
	}
	t.cursor = len(t.text)
	if t.cursor > 0 {
		t.cursor--
	}
	t.Activate()
}

func (t *TextInput) OnActionLeft() {
	if !t.IsActive() {
		return
	}
	if t.cursor > 0 {
		t.cursor--
	}
}

func (t *TextInput) OnActionRight() {
	if !t.IsActive() {
		return
	}
	t.cursor++
	if t.cursor >= len(t.text) {
		t.text = append(t.text, ' ')
		t.cursor = len(t.text) - 1
	}
}

func (t *TextInput) cycle(delta int) {
	if !t.IsActive() || t.cursor < 0 || t.cursor >= len(t.text) {
		return
	}
	alphabet := []rune(textInputAlphabet)
	pos := 0
	for i, r := range alphabet {
		if r == t.text[t.cursor] {
			pos = i
			break
		}
	}
	pos = (pos + delta + len(alphabet)) % len(alphabet)
	t.text[t.cursor] = alphabet[pos]
}

func (t *TextInput) OnActionUp()   { t.cycle(1) }
func (t *TextInput) OnActionDown() { t.cycle(-1) }

func (t *TextInput) RenderContent(ctrl *display.Controller, ctx *ui.RenderContext) {
	const padding = 12
	const radius = 8
	face := ctrl.Face()
	th := ctrl.Theme()
	ink := ctrl.PrimaryColor(false)

	labelWidth, labelHeight := ctrl.TextBounds(t.label, face)
	text := string(t.text)
	textWidth, _ := ctrl.TextBounds(text, face)
	boxWidth := textWidth + padding*2
	if boxWidth < 96 {
		boxWidth = 96
	}

	ctx.X = layout.Align8(ctx.X)
	ctx.Y = layout.Align8(ctx.Y)
	ctx.Width = layout.Align8(labelWidth + padding + boxWidth + padding)
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
	default:
		ctrl.DrawRoundRect(boxX, ctx.Y, boxWidth, ctx.Height, radius, ink)
	}
	ctrl.DrawText(text, boxX+padding, baseline, ink, face)

	if t.IsActive() && t.cursor >= 0 && t.cursor <= len(t.text) {
		prefixWidth, _ := ctrl.TextBounds(string(t.text[:t.cursor]), face)
		cursorX := boxX + padding + prefixWidth
		ctrl.DrawHLine(cursorX, baseline+2, 8, ink)
	}
}
