//go:build !unix

package main

import "os"

// Best-effort fallback for non-Unix platforms. Runtime-level stderr output
// (like panic traces) is not captured the way Dup2 does it on Unix.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
