//go:build unix

package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// redirectStdIO points stdout and stderr at the file behind path. Dup2
// rewires the process-level descriptors, so panic traces and prints from
// any goroutine land in the file even while the console sits in graphics
// mode.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open stdio log: %w", err)
	}
	defer f.Close()

	if err := unix.Dup2(int(f.Fd()), int(os.Stdout.Fd())); err != nil {
		return fmt.Errorf("redirect stdout: %w", err)
	}
	if err := unix.Dup2(int(f.Fd()), int(os.Stderr.Fd())); err != nil {
		return fmt.Errorf("redirect stderr: %w", err)
	}
	return nil
}
