package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	require.Equal(t, Dark, ParseTheme("dark"))
	require.Equal(t, Light, ParseTheme("light"))
	require.Equal(t, Light, ParseTheme("mauve"))
	require.Equal(t, Light, ParseTheme(""))
}

func TestMemStore(t *testing.T) {
	store := NewMemStore(Light)
	require.Equal(t, Light, store.Theme())

	require.NoError(t, store.SetTheme(Dark))
	require.Equal(t, Dark, store.Theme())
}

func TestFileStoreDefaultsToLight(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "theme.yaml"))

	require.NoError(t, err)
	require.Equal(t, Light, store.Theme())
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "theme.yaml")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SetTheme(Dark))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	require.Equal(t, Dark, reopened.Theme())
}

func TestFileStoreRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err := NewFileStore(path)
	require.Error(t, err)
}
