package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "/dev/fb0", cfg.Display.Device)
	require.Equal(t, 20, cfg.Render.FullRefreshThreshold)
}

func TestLoadFillsInvalidFieldsWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
display:
  device: /dev/fb1
  width: -1
render:
  full_refresh_threshold: 0
  yield_ms: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, "/dev/fb1", cfg.Display.Device)
	require.Equal(t, 800, cfg.Display.Width)
	require.Equal(t, 480, cfg.Display.Height)
	require.Equal(t, 20, cfg.Render.FullRefreshThreshold)
	require.Equal(t, 5, cfg.Render.YieldMs)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := Default()
	cfg.Display.Device = "/dev/fb7"
	cfg.Render.FullRefreshThreshold = 5
	cfg.LogLevel = "debug"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}
