// Package system wraps the console plumbing the framework needs on a
// framebuffer device: switching the VT to graphics mode and hiding the
// cursor so the console never draws over the display.
package system

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

// SetGraphicsMode switches the active console to graphics mode to suppress
// the hardware cursor and console output.
func SetGraphicsMode() error {
	return setConsoleMode(kdGraphics, "KD_GRAPHICS")
}

// RestoreTextMode restores the console to text mode so cursor and normal
// console return.
func RestoreTextMode() error {
	return setConsoleMode(kdText, "KD_TEXT")
}

func setConsoleMode(mode int, name string) error {
	// Prefer /dev/tty (active VT), fallback to /dev/tty0.
	paths := []string{"/dev/tty", "/dev/tty0"}
	var lastErr error
	for _, p := range paths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("%s on %s: %w", name, p, err)
			continue
		}
		return nil
	}
	if lastErr != nil {
		return lastErr
	}
	return fmt.Errorf("%s failed: unknown error", name)
}

// HideCursor writes the ANSI escape to hide the cursor to the active VT.
func HideCursor() error { return writeVT("\x1b[?25l") }

// ShowCursor makes the cursor visible again.
func ShowCursor() error { return writeVT("\x1b[?25h") }

func writeVT(s string) error {
	paths := []string{"/dev/tty", "/dev/tty0"}
	var lastErr error
	for _, p := range paths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return fmt.Errorf("write VT failed: %v", lastErr)
	}
	return fmt.Errorf("write VT failed: unknown error")
}

// PrepareConsole puts the console into graphics mode with the cursor
// hidden, logging failures without aborting. Both steps are best-effort on
// systems without a VT.
func PrepareConsole(log *zap.Logger) {
	if err := SetGraphicsMode(); err != nil {
		log.Warn("graphics mode not set", zap.Error(err))
	}
	if err := HideCursor(); err != nil {
		log.Warn("cursor not hidden", zap.Error(err))
	}
}

// RestoreConsole undoes PrepareConsole.
func RestoreConsole(log *zap.Logger) {
	if err := ShowCursor(); err != nil {
		log.Warn("cursor not restored", zap.Error(err))
	}
	if err := RestoreTextMode(); err != nil {
		log.Warn("text mode not restored", zap.Error(err))
	}
}
