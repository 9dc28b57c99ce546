package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rook-computer/epdui/internal/input"
)

// scenarioEvents returns the scripted key sequence for a named scenario.
// Every scenario ends with an exit so the simulator terminates on its own.
func scenarioEvents(name string) ([]input.Event, error) {
	switch name {
	case "tour", "":
		// Walk the home page widgets, poke the toggle and slider, open a
		// submenu, launch the settings page, flip the theme and come back.
		return []input.Event{
			input.Down,
			input.Confirm,
			input.Right,
			input.Right,
			input.Confirm,
			input.Down,
			input.Confirm,
			input.Left,
			input.Confirm,
			input.Menu,
			input.Right,
			input.Down,
			input.Right,
			input.Confirm,
			input.Up,
			input.Menu,
			input.Confirm,
			input.Right,
			input.Back,
			input.Exit,
		}, nil
	case "menu":
		// Open the overlay, wrap the selection both ways, descend into the
		// system submenu and ascend back out.
		return []input.Event{
			input.Menu,
			input.Right,
			input.Right,
			input.Left,
			input.Left,
			input.Left,
			input.Down,
			input.Right,
			input.Up,
			input.Up,
			input.Exit,
		}, nil
	case "typing":
		// Engage the text input and cycle a few characters.
		return []input.Event{
			input.Confirm,
			input.Up,
			input.Right,
			input.Up,
			input.Up,
			input.Right,
			input.Down,
			input.Confirm,
			input.Exit,
		}, nil
	}
	return nil, fmt.Errorf("unknown scenario %q", name)
}

// ScriptedSource plays a fixed event sequence with a delay between
// presses, then closes.
type ScriptedSource struct {
	events   []input.Event
	interval time.Duration
	ch       chan input.Event
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewScriptedSource(events []input.Event, interval time.Duration) *ScriptedSource {
	return &ScriptedSource{
		events:   events,
		interval: interval,
		ch:       make(chan input.Event),
		done:     make(chan struct{}),
	}
}

func (s *ScriptedSource) Events() <-chan input.Event { return s.ch }

func (s *ScriptedSource) Start(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)
	go func() {
		defer close(s.done)
		defer close(s.ch)
		for _, ev := range s.events {
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.interval):
			}
			select {
			case <-ctx.Done():
				return
			case s.ch <- ev:
			}
		}
	}()
	return nil
}

func (s *ScriptedSource) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	<-s.done
	return nil
}
