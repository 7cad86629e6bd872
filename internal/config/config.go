// Package config handles application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// AppConfig holds the application configuration.
type AppConfig struct {
	IconSize   int    `json:"icon_size"`
	Background string `json:"background"` // "" or "transparent", a color name, or #rrggbb
	ExportDir  string `json:"export_dir"`

	LogLevel      string `json:"log_level"`
	LogPath       string `json:"log_path"`
	LogMaxSize    int64  `json:"log_max_size"`
	LogMaxBackups int    `json:"log_max_backups"`

	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`
	// Desktop notifications
	EnableNotifications bool `json:"enable_notifications"`
}

// ConfigManager handles loading and saving configuration.
type ConfigManager struct {
	config *AppConfig
	path   string
	mu     sync.RWMutex
}

// DefaultDir returns the directory holding the config file and logs.
func DefaultDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".config", "toolbar-icons")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.json")
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *AppConfig {
	configDir := DefaultDir()

	return &AppConfig{
		IconSize:            24,
		Background:          "transparent",
		ExportDir:           filepath.Join(configDir, "export"),
		LogLevel:            "info",
		LogPath:             filepath.Join(configDir, "logs", "toolbar-icons.log"),
		LogMaxSize:          10 * 1024 * 1024,
		LogMaxBackups:       5,
		WindowWidth:         720,
		WindowHeight:        480,
		EnableNotifications: true,
	}
}

// Validate reports the first invalid value in the configuration.
func (c *AppConfig) Validate() error {
	if c.IconSize < 1 || c.IconSize > 1024 {
		return fmt.Errorf("icon size must be between 1 and 1024, got %d", c.IconSize)
	}
	if c.WindowWidth < 320 {
		return fmt.Errorf("window width must be at least 320, got %d", c.WindowWidth)
	}
	if c.WindowHeight < 240 {
		return fmt.Errorf("window height must be at least 240, got %d", c.WindowHeight)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// NewConfigManager creates a new config manager.
func NewConfigManager(configPath string) (*ConfigManager, error) {
	cm := &ConfigManager{
		path: configPath,
	}

	if err := cm.Load(); err != nil {
		// Use default config if file doesn't exist
		if os.IsNotExist(err) {
			cm.config = DefaultConfig()
			return cm, nil
		}
		return nil, err
	}

	return cm, nil
}

// Path returns the file the manager reads and writes.
func (cm *ConfigManager) Path() string {
	return cm.path
}

// Load reads the configuration from disk.
func (cm *ConfigManager) Load() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	data, err := os.ReadFile(cm.path)
	if err != nil {
		return err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parse %s: %w", cm.path, err)
	}

	cm.config = config
	return nil
}

// Save writes the configuration to disk.
func (cm *ConfigManager) Save() error {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.save()
}

// Get returns a copy of the current configuration.
func (cm *ConfigManager) Get() AppConfig {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return *cm.config
}

// Set validates and stores the configuration, then saves it.
func (cm *ConfigManager) Set(config *AppConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}

	cm.mu.Lock()
	c := *config
	cm.config = &c
	cm.mu.Unlock()
	return cm.Save()
}

// save writes config without locking (caller must hold lock).
func (cm *ConfigManager) save() error {
	dir := filepath.Dir(cm.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cm.config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(cm.path, data, 0600)
}
