package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbar-icons/internal/config"
)

func writeConfig(t *testing.T, mutate func(*config.AppConfig)) string {
	t.Helper()
	dir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.LogPath = filepath.Join(dir, "logs", "test.log")
	cfg.ExportDir = filepath.Join(dir, "export")
	if mutate != nil {
		mutate(cfg)
	}

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func TestExportUsesConfigDefaults(t *testing.T) {
	path := writeConfig(t, func(c *config.AppConfig) { c.IconSize = 20 })

	a, err := New(path, false)
	require.NoError(t, err)
	assert.Equal(t, 20, a.Config().IconSize)

	exportDir := a.Config().ExportDir
	written, err := a.Export(ExportRequest{})
	require.NoError(t, err)
	assert.Len(t, written, 10)
	assert.FileExists(t, filepath.Join(exportDir, "rotate_left-20.png"))
	assert.FileExists(t, a.Config().LogPath)
}

func TestExportOverrides(t *testing.T) {
	a, err := New(writeConfig(t, nil), false)
	require.NoError(t, err)

	out := t.TempDir()
	written, err := a.Export(ExportRequest{Dir: out, Size: 40, Background: "#000", SVG: true})
	require.NoError(t, err)
	assert.Len(t, written, 10)

	data, err := os.ReadFile(filepath.Join(out, "undo.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `width="40" height="40"`)
}

func TestExportBadBackground(t *testing.T) {
	a, err := New(writeConfig(t, nil), false)
	require.NoError(t, err)

	_, err = a.Export(ExportRequest{Dir: t.TempDir(), Background: "plaid"})
	assert.Error(t, err)
}

func TestNewMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0600))

	_, err := New(path, false)
	assert.Error(t, err)
}
