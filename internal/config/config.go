// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultTheme = "default"
)

// Config represents the menutui configuration.
type Config struct {
	Theme  ThemeConfig  `toml:"theme"`
	TUI    TUIConfig    `toml:"tui"`
	Notify NotifyConfig `toml:"notify"`
}

// ThemeConfig selects and tunes the visual theme.
type ThemeConfig struct {
	Name      string `toml:"name"`       // Theme name (bundled or user theme)
	HotReload bool   `toml:"hot_reload"` // Reload user theme files on change
}

// TUIConfig holds TUI-specific settings.
type TUIConfig struct {
	Mouse    bool   `toml:"mouse"`     // Enable mouse support
	MenuFile string `toml:"menu_file"` // Optional YAML menu definition override
}

// NotifyConfig holds desktop notification settings for Invoke handlers.
type NotifyConfig struct {
	Enabled bool   `toml:"enabled"`
	AppName string `toml:"app_name"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			Name:      DefaultTheme,
			HotReload: true,
		},
		TUI: TUIConfig{
			Mouse:    true,
			MenuFile: "",
		},
		Notify: NotifyConfig{
			Enabled: true,
			AppName: "menutui",
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "menutui", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Check if file exists
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	// Parse TOML
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
