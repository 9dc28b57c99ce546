package input

import (
	"context"

	"go.uber.org/zap"
)

// Navigator is the focus-aware action entry point, satisfied by the render
// manager.
type Navigator interface {
	OnActionUp()
	OnActionDown()
	OnActionLeft()
	OnActionRight()
	OnAction()
	PopPage()
}

// MenuControl is the overlay lifecycle the dispatcher drives directly.
type MenuControl interface {
	Active() bool
	Toggle()
	GoBack()
}

// Dispatcher routes decoded events: directional keys and confirm go to the
// navigator, the menu key toggles the overlay, back ascends the menu or
// pops a page, exit fires the shutdown callback.
type Dispatcher struct {
	nav    Navigator
	menu   MenuControl
	onExit func()
	log    *zap.Logger
}

func NewDispatcher(nav Navigator, menu MenuControl, onExit func(), log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{nav: nav, menu: menu, onExit: onExit, log: log}
}

// Dispatch handles a single event.
func (d *Dispatcher) Dispatch(ev Event) {
	d.log.Debug("input event", zap.String("event", string(ev)))
	switch ev {
	case Up:
		d.nav.OnActionUp()
	case Down:
		d.nav.OnActionDown()
	case Left:
		d.nav.OnActionLeft()
	case Right:
		d.nav.OnActionRight()
	case Confirm:
		d.nav.OnAction()
	case Menu:
		if d.menu != nil {
			d.menu.Toggle()
		}
	case Back:
		if d.menu != nil && d.menu.Active() {
			d.menu.GoBack()
		} else {
			d.nav.PopPage()
		}
	case Exit:
		if d.onExit != nil {
			d.onExit()
		}
	}
}

// Run consumes events from source until ctx is cancelled or the source
// closes its channel.
func (d *Dispatcher) Run(ctx context.Context, source Source) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-source.Events():
			if !ok {
				return
			}
			d.Dispatch(ev)
		}
	}
}
