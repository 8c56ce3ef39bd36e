package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultTheme, cfg.Theme.Name)
	assert.True(t, cfg.Theme.HotReload)
	assert.True(t, cfg.TUI.Mouse)
	assert.True(t, cfg.Notify.Enabled)
	assert.Equal(t, "menutui", cfg.Notify.AppName)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[theme]
name = "catppuccin"
hot_reload = false

[tui]
mouse = false
menu_file = "/tmp/menu.yaml"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "catppuccin", cfg.Theme.Name)
	assert.False(t, cfg.Theme.HotReload)
	assert.False(t, cfg.TUI.Mouse)
	assert.Equal(t, "/tmp/menu.yaml", cfg.TUI.MenuFile)
	// Untouched sections keep defaults.
	assert.True(t, cfg.Notify.Enabled)
}

func TestLoadConfig_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[theme"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Theme.Name = "ascii"
	cfg.TUI.Mouse = false
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
