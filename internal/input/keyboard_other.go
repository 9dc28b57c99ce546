//go:build !linux

package input

import "go.uber.org/zap"

// NewKeyboard has no device backend off Linux; navigation comes from a
// scripted source instead.
func NewKeyboard(log *zap.Logger) Source {
	if log != nil {
		log.Warn("no keyboard backend on this platform, input disabled")
	}
	return NewNoopSource()
}
