// Package input turns hardware key presses into navigation events and
// feeds them to the render manager.
package input

import "context"

// Event is one decoded navigation key press.
type Event string

const (
	Up      Event = "up"
	Down    Event = "down"
	Left    Event = "left"
	Right   Event = "right"
	Confirm Event = "confirm"
	Menu    Event = "menu"
	Back    Event = "back"
	Exit    Event = "exit"
)

// Source produces navigation events from some device.
type Source interface {
	Start(ctx context.Context) error
	Stop() error
	Events() <-chan Event
}

// NoopSource never produces events. Used where no input device exists.
type NoopSource struct{ ch chan Event }

func NewNoopSource() *NoopSource { return &NoopSource{ch: make(chan Event)} }

func (n *NoopSource) Start(ctx context.Context) error { return nil }
func (n *NoopSource) Stop() error                     { close(n.ch); return nil }
func (n *NoopSource) Events() <-chan Event            { return n.ch }
