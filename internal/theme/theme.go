// Package theme provides the two-valued display theme and its persistence.
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Theme selects the global foreground/background pairing for the display.
type Theme int

const (
	Light Theme = iota
	Dark
)

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// ParseTheme maps a stored name back to a Theme. Unknown names yield Light.
func ParseTheme(name string) Theme {
	if name == "dark" {
		return Dark
	}
	return Light
}

// Store exposes the current theme and persists explicit changes.
type Store interface {
	Theme() Theme
	SetTheme(t Theme) error
}

// MemStore keeps the theme in memory only.
type MemStore struct {
	mu sync.RWMutex
	t  Theme
}

func NewMemStore(t Theme) *MemStore { return &MemStore{t: t} }

func (s *MemStore) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t
}

func (s *MemStore) SetTheme(t Theme) error {
	s.mu.Lock()
	s.t = t
	s.mu.Unlock()
	return nil
}

type themeFile struct {
	Theme string `yaml:"theme"`
}

// FileStore persists the theme as a small YAML file.
type FileStore struct {
	mu   sync.RWMutex
	path string
	t    Theme
}

// NewFileStore loads the theme from path, defaulting to Light when the file
// does not exist yet.
func NewFileStore(path string) (*FileStore, error) {
	store := &FileStore{path: path, t: Light}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("read theme file: %w", err)
	}
	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse theme file: %w", err)
	}
	store.t = ParseTheme(f.Theme)
	return store, nil
}

func (s *FileStore) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.t
}

func (s *FileStore) SetTheme(t Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t = t
	data, err := yaml.Marshal(themeFile{Theme: t.String()})
	if err != nil {
		return fmt.Errorf("marshal theme: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create theme dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write theme file: %w", err)
	}
	return nil
}
