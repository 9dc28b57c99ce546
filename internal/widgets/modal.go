package widgets

import (
	"github.com/rook-computer/epdui/internal/display"
	"github.com/rook-computer/epdui/internal/layout"
	"github.com/rook-computer/epdui/internal/ui"
)

// Modal is a centered panel drawn over page content. It renders only while
// selected or active; pages hand it focus with SelectByID/ActivateByID and
// get their previous focus back through ResetFocus when it closes.
type Modal struct {
	ui.InteractableBase

	width           int
	height          int
	content         func(ctrl *display.Controller, ctx *ui.RenderContext)
	dismissOnAction bool
	onClose         func()
}

func NewModal(id string, width, height int, content func(*display.Controller, *ui.RenderContext)) *Modal {
	return &Modal{
		InteractableBase: ui.NewInteractableBase(id),
		width:            width,
		height:           height,
		content:          content,
		dismissOnAction:  true,
	}
}

// SetDismissOnAction controls whether confirm closes the modal (default)
// or re-engages it.
func (m *Modal) SetDismissOnAction(dismiss bool) { m.dismissOnAction = dismiss }

// SetOnClose registers a callback run when the modal deactivates; pages
// typically restore focus there.
func (m *Modal) SetOnClose(fn func()) { m.onClose = fn }

func (m *Modal) Deactivate() {
	m.InteractableBase.Deactivate()
	if m.onClose != nil {
		m.onClose()
	}
}

func (m *Modal) OnAction() {
	if m.dismissOnAction {
		m.Deactivate()
	} else {
		m.Activate()
	}
}

func (m *Modal) RenderContent(ctrl *display.Controller, ctx *ui.RenderContext) {
	if !m.IsSelected() && !m.IsActive() {
		return
	}
	const padding = 12
	const radius = 8
	th := ctrl.Theme()

	panel := layout.Center(ctx.Rect(), m.width, m.height)
	x := layout.Align8(panel.Min.X)
	y := layout.Align8(panel.Min.Y)

	margin := padding / 4
	ctrl.FillRoundRect(x, y, m.width, m.height, radius, m.ForegroundColor(th))
	ctrl.DrawMultiRoundRectBorder(x+margin, y+margin, m.width-margin*2, m.height-margin*2, m.BackgroundColor(th), 3, 1, 2, radius)

	if m.content != nil {
		contentCtx := ui.NewRenderContext(x+padding, y+padding, m.width-padding*2, m.height-padding*2)
		m.content(ctrl, contentCtx)
	}

	ctx.X = x
	ctx.Y = y
	ctx.Width = m.width
	ctx.Height = m.height
}
