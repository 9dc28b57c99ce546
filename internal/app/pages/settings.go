package pages

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rook-computer/epdui/internal/display"
	"github.com/rook-computer/epdui/internal/theme"
	"github.com/rook-computer/epdui/internal/ui"
	"github.com/rook-computer/epdui/internal/widgets"
)

// SettingsDeps is what the settings page needs from the surrounding app.
type SettingsDeps interface {
	RequestFullRender()
	PopPage()
}

// Settings lets the user flip the theme and leave the page.
type Settings struct {
	*ui.Page
}

func NewSettings(ctrl *display.Controller, themes theme.Store, deps SettingsDeps, log *zap.Logger) (*Settings, error) {
	s := &Settings{Page: ui.NewPage("settings")}
	s.SetLogger(log)

	current := 0
	if themes.Theme() == theme.Dark {
		current = 1
	}
	themeToggle := widgets.NewToggle("theme", "theme", []widgets.ToggleOption{
		{Label: theme.Light.String(), Value: int(theme.Light)},
		{Label: theme.Dark.String(), Value: int(theme.Dark)},
	}, func(opt widgets.ToggleOption) {
		ctrl.SetTheme(theme.Theme(opt.Value))
		deps.RequestFullRender()
	})
	themeToggle.SetIndex(current)

	back := widgets.NewButton("back", "back", func() {
		deps.PopPage()
	})

	for _, add := range []error{
		s.AddInteractable(themeToggle, true),
		s.AddInteractable(back, true),
	} {
		if add != nil {
			return nil, fmt.Errorf("build settings page: %w", add)
		}
	}
	return s, nil
}

func (s *Settings) RenderContent(ctrl *display.Controller, ctx *ui.RenderContext) {
	ink := ctrl.PrimaryColor(false)
	titleY := ctx.Y + 16 + ctrl.Ascent(ctrl.BoldFace())
	ctrl.DrawText("settings", ctx.X+16, titleY, ink, ctrl.BoldFace())

	itemCtx := ui.NewRenderContext(ctx.X, titleY+8, ctx.Width, ctx.Height-(titleY+8-ctx.Y))
	s.RenderItems(ctrl, itemCtx)
}
