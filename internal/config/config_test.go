package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigManagerMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cm, err := NewConfigManager(path)
	require.NoError(t, err)

	cfg := cm.Get()
	assert.Equal(t, 24, cfg.IconSize)
	assert.Equal(t, "transparent", cfg.Background)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "defaults must not be written until saved")
}

func TestSetPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cm, err := NewConfigManager(path)
	require.NoError(t, err)

	cfg := cm.Get()
	cfg.IconSize = 32
	cfg.Background = "white"
	require.NoError(t, cm.Set(&cfg))

	reloaded, err := NewConfigManager(path)
	require.NoError(t, err)
	assert.Equal(t, 32, reloaded.Get().IconSize)
	assert.Equal(t, "white", reloaded.Get().Background)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"icon_size": 48}`), 0600))

	cm, err := NewConfigManager(path)
	require.NoError(t, err)

	cfg := cm.Get()
	assert.Equal(t, 48, cfg.IconSize)
	assert.Equal(t, DefaultConfig().WindowWidth, cfg.WindowWidth)
}

func TestMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0600))

	_, err := NewConfigManager(path)
	assert.Error(t, err)
}

func TestSetRejectsInvalid(t *testing.T) {
	cm, err := NewConfigManager(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{"zero size", func(c *AppConfig) { c.IconSize = 0 }},
		{"huge size", func(c *AppConfig) { c.IconSize = 4096 }},
		{"narrow window", func(c *AppConfig) { c.WindowWidth = 10 }},
		{"short window", func(c *AppConfig) { c.WindowHeight = 10 }},
		{"bad level", func(c *AppConfig) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := cm.Get()
			tt.mutate(&cfg)
			assert.Error(t, cm.Set(&cfg))
			assert.Equal(t, 24, cm.Get().IconSize)
		})
	}
}
