// Package config holds the YAML application configuration: display device,
// fonts, render policy and theme persistence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DisplayConfig selects the output device and fonts.
type DisplayConfig struct {
	// Device is the framebuffer device path.
	Device string `yaml:"device"`
	// Width and Height define the logical canvas in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// FontPath points at a TTF/OTF file; empty falls back to the builtin
	// bitmap face.
	FontPath string  `yaml:"font_path"`
	FontSize float64 `yaml:"font_size"`
}

// RenderConfig tunes the refresh scheduler.
type RenderConfig struct {
	// FullRefreshThreshold is the number of full-type renders after which a
	// true full hardware refresh is issued to clear accumulated ghosting.
	FullRefreshThreshold int `yaml:"full_refresh_threshold"`
	// YieldMs is the pause between render cycles in milliseconds.
	YieldMs int `yaml:"yield_ms"`
}

// ThemeConfig locates the persisted display theme.
type ThemeConfig struct {
	File string `yaml:"file"`
}

type Config struct {
	Display  DisplayConfig `yaml:"display"`
	Render   RenderConfig  `yaml:"render"`
	Theme    ThemeConfig   `yaml:"theme"`
	LogLevel string        `yaml:"log_level"`
}

// Default returns the configuration used when no file exists. The canvas
// matches the 7.5" panel the render policy was tuned for.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Device:   "/dev/fb0",
			Width:    800,
			Height:   480,
			FontSize: 14,
		},
		Render: RenderConfig{
			FullRefreshThreshold: 20,
			YieldMs:              10,
		},
		Theme: ThemeConfig{
			File: "theme.yaml",
		},
	}
}

// Load reads the config file at path, filling unset fields with defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	if cfg.Display.Width <= 0 || cfg.Display.Height <= 0 {
		def := Default()
		cfg.Display.Width = def.Display.Width
		cfg.Display.Height = def.Display.Height
	}
	if cfg.Render.FullRefreshThreshold <= 0 {
		cfg.Render.FullRefreshThreshold = Default().Render.FullRefreshThreshold
	}
	if cfg.Render.YieldMs < 0 {
		cfg.Render.YieldMs = Default().Render.YieldMs
	}
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories as needed.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
