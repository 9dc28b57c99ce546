package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/rook-computer/epdui/internal/app/pages"
	"github.com/rook-computer/epdui/internal/assets"
	"github.com/rook-computer/epdui/internal/input"
	"github.com/rook-computer/epdui/internal/menu"
	"github.com/rook-computer/epdui/internal/system"
)

func defaultSource(log *zap.Logger) input.Source {
	return input.NewKeyboard(log)
}

// buildScreens creates the shipped pages and the menu tree.
func (a *App) buildScreens() error {
	home, err := pages.NewHome(a.log.Named("home"))
	if err != nil {
		return err
	}
	a.home = home

	settings, err := pages.NewSettings(a.ctrl, a.themes, a.manager, a.log.Named("settings"))
	if err != nil {
		return err
	}

	a.menu.AddToRoot(menu.NewPageItem("settings", assets.GearIcon(), settings))

	sys := menu.NewSubMenu("system", assets.HomeIcon())
	sys.AddItem(menu.NewActionItem("redraw", nil, func() {
		a.manager.RequestFullRender()
	}))
	sys.AddItem(menu.NewActionItem("exit", assets.PowerIcon(), func() {
		a.Exit(nil)
	}))
	a.menu.AddToRoot(sys)

	a.menu.AddWidget(menu.Widget{Icon: assets.ClockIcon(), Text: func() string {
		return time.Now().Format("15:04")
	}})
	a.menu.AddWidget(menu.Widget{Icon: assets.NetworkIcon(), Text: system.PrimaryIPv4})
	return nil
}
