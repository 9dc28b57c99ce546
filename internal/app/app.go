// Package app wires the framework together: config, display, theme store,
// render manager, menu tree, pages and input.
package app

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/rook-computer/epdui/internal/config"
	"github.com/rook-computer/epdui/internal/display"
	"github.com/rook-computer/epdui/internal/input"
	"github.com/rook-computer/epdui/internal/menu"
	"github.com/rook-computer/epdui/internal/render"
	"github.com/rook-computer/epdui/internal/system"
	"github.com/rook-computer/epdui/internal/theme"
	"github.com/rook-computer/epdui/internal/ui"
)

// Options overrides the hardware-backed defaults, used by the simulator
// and by tests.
type Options struct {
	Driver display.Driver
	Source input.Source
	// SkipConsole leaves the VT untouched; set when no framebuffer console
	// is involved.
	SkipConsole bool
}

type App struct {
	cfg  config.Config
	opts Options
	log  *zap.Logger

	driver  display.Driver
	source  input.Source
	themes  theme.Store
	ctrl    *display.Controller
	manager *render.Manager
	menu    *menu.System

	home ui.Pager

	exitOnce atomic.Bool
	exitCh   chan error
}

func New(cfg config.Config, opts Options, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{cfg: cfg, opts: opts, log: log, exitCh: make(chan error, 1)}
	if err := a.build(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) build() error {
	themes, err := theme.NewFileStore(a.cfg.Theme.File)
	if err != nil {
		return err
	}
	a.themes = themes

	a.driver = a.opts.Driver
	if a.driver == nil {
		fb, err := display.OpenFramebuffer(a.cfg.Display.Device, a.cfg.Display.Width, a.cfg.Display.Height)
		if err != nil {
			return err
		}
		a.driver = fb
	}

	a.ctrl = display.NewController(a.driver, a.themes, display.Options{
		FontPath: a.cfg.Display.FontPath,
		FontSize: a.cfg.Display.FontSize,
	}, a.log.Named("display"))

	a.manager = render.NewManager(a.ctrl, render.Policy{
		FullRefreshThreshold: a.cfg.Render.FullRefreshThreshold,
		Yield:                time.Duration(a.cfg.Render.YieldMs) * time.Millisecond,
	}, a.log.Named("render"))

	a.menu = menu.NewSystem(a.log.Named("menu"))
	a.menu.Bind(a.manager, a.manager)
	a.manager.SetOverlay(a.menu)

	a.source = a.opts.Source
	if a.source == nil {
		a.source = defaultSource(a.log.Named("input"))
	}

	return a.buildScreens()
}

// Manager exposes the render manager, mainly for the simulator.
func (a *App) Manager() *render.Manager { return a.manager }

// Menu exposes the overlay menu system.
func (a *App) Menu() *menu.System { return a.menu }

// Controller exposes the display controller.
func (a *App) Controller() *display.Controller { return a.ctrl }

// Exit requests the app to stop running. Any page or menu action can call
// this to terminate via the generic codepath.
func (a *App) Exit(err error) {
	if !a.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case a.exitCh <- err:
	default:
	}
}

// Start runs the app until ctx is cancelled or Exit is called.
func (a *App) Start(ctx context.Context) error {
	if !a.opts.SkipConsole {
		system.PrepareConsole(a.log.Named("tty"))
		defer system.RestoreConsole(a.log.Named("tty"))
	}
	defer func() {
		if err := a.driver.Close(); err != nil {
			a.log.Warn("display close failed", zap.Error(err))
		}
	}()

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = a.manager.Run(loopCtx)
	}()

	if err := a.source.Start(loopCtx); err != nil {
		a.log.Error("input start failed", zap.Error(err))
		cancel()
		wg.Wait()
		return err
	}
	dispatcher := input.NewDispatcher(a.manager, a.menu, func() { a.Exit(nil) }, a.log.Named("input"))
	wg.Add(1)
	go func() {
		defer wg.Done()
		dispatcher.Run(loopCtx, a.source)
	}()

	a.manager.PushPage(a.home)
	a.log.Info("app started",
		zap.Int("width", a.ctrl.Width()),
		zap.Int("height", a.ctrl.Height()),
		zap.String("theme", a.themes.Theme().String()))

	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case err = <-a.exitCh:
	}
	cancel()
	if stopErr := a.source.Stop(); stopErr != nil {
		a.log.Warn("input stop failed", zap.Error(stopErr))
	}
	wg.Wait()
	a.log.Info("app stopped")
	return err
}
