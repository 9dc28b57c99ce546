// Package pages holds the screens shipped with the binary. Each embeds
// *ui.Page, overrides the layout and delegates the widget pass back to the
// page.
package pages

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rook-computer/epdui/internal/display"
	"github.com/rook-computer/epdui/internal/layout"
	"github.com/rook-computer/epdui/internal/ui"
	"github.com/rook-computer/epdui/internal/widgets"
)

// Home is the default page: a column of interactive widgets on the left
// and a live pairing code on the right.
type Home struct {
	*ui.Page

	qr       *widgets.QRCode
	progress *widgets.ProgressBar
	name     string
}

func NewHome(log *zap.Logger) (*Home, error) {
	h := &Home{
		Page: ui.NewPage("home"),
		name: "epdui",
	}
	h.SetLogger(log)

	h.qr = widgets.NewQRCode(h.pairingPayload(), 160)
	h.progress = widgets.NewProgressBar("storage", 0.42, true)

	input := widgets.NewTextInput("device-name", "device name", h.name, func(text string) {
		h.name = text
		h.qr.SetPayload(h.pairingPayload())
	})

	wifi := widgets.NewToggle("wifi", "wifi", []widgets.ToggleOption{
		{Label: "off", Value: 0},
		{Label: "on", Value: 1},
	}, nil)

	contrast := widgets.NewSlider("contrast", "contrast", 50, 0, 100, 5, nil)

	mode := widgets.NewDropdown("refresh-mode", "refresh", []string{"auto", "fast", "clean"}, nil)

	about := widgets.NewModal("about", 280, 120, func(ctrl *display.Controller, ctx *ui.RenderContext) {
		ink := ctrl.PrimaryColor(false)
		ctrl.DrawText("epdui", ctx.X+12, ctx.Y+12+ctrl.Ascent(ctrl.BoldFace()), ink, ctrl.BoldFace())
		ctrl.DrawText("focus-driven e-paper ui", ctx.X+12, ctx.Y+12+ctrl.Ascent(ctrl.BoldFace())+ctrl.LineHeight(ctrl.Face()), ink, ctrl.Face())
	})

	for _, add := range []error{
		h.AddInteractable(input, true),
		h.AddInteractable(wifi, true),
		h.AddInteractable(contrast, true),
		h.AddInteractable(mode, true),
		h.AddInteractable(about, true),
	} {
		if add != nil {
			return nil, fmt.Errorf("build home page: %w", add)
		}
	}
	return h, nil
}

func (h *Home) pairingPayload() string {
	return "epdui://pair/" + h.name
}

// SetProgress updates the storage bar; takes effect on the next redraw.
func (h *Home) SetProgress(p float64) { h.progress.SetProgress(p) }

func (h *Home) RenderContent(ctrl *display.Controller, ctx *ui.RenderContext) {
	left, right := layout.SplitVertical(ctx.Rect(), ctx.Width*3/5)

	leftCtx := ui.NewRenderContext(left.Min.X, left.Min.Y, left.Dx(), left.Dy())
	h.RenderItems(ctrl, leftCtx)

	qrSize := 160
	qrX := right.Min.X + (right.Dx()-qrSize)/2
	ui.ExecuteRender(h.qr, ctrl, ui.NewRenderContext(qrX, right.Min.Y+24, qrSize, qrSize))

	barCtx := ui.NewRenderContext(right.Min.X+16, right.Min.Y+24+qrSize+24, right.Dx()-32, 0)
	ui.ExecuteRender(h.progress, ctrl, barCtx)
}
