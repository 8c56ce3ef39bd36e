package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEmbeddedTheme_Default(t *testing.T) {
	data, found := GetEmbeddedTheme("default")
	require.True(t, found, "default theme should be found")
	assert.NotEmpty(t, data)
	assert.Contains(t, string(data), "[colors]")
	assert.Contains(t, string(data), "[icons]")
}

func TestGetEmbeddedTheme_Ascii(t *testing.T) {
	data, found := GetEmbeddedTheme("ascii")
	require.True(t, found, "ascii theme should be found")
	assert.Contains(t, string(data), "[icons]")
}

func TestGetEmbeddedTheme_Catppuccin(t *testing.T) {
	data, found := GetEmbeddedTheme("catppuccin")
	require.True(t, found, "catppuccin theme should be found")
	assert.Contains(t, string(data), "#cdd6f4")
}

func TestGetEmbeddedTheme_NotFound(t *testing.T) {
	data, found := GetEmbeddedTheme("nonexistent")
	assert.False(t, found)
	assert.Empty(t, data)
}

func TestListEmbeddedThemes(t *testing.T) {
	themes := ListEmbeddedThemes()

	assert.GreaterOrEqual(t, len(themes), 3)
	assert.Contains(t, themes, "default", "should contain default theme")
	assert.Contains(t, themes, "ascii", "should contain ascii theme")
	assert.Contains(t, themes, "catppuccin", "should contain catppuccin theme")
}

func TestIsEmbeddedTheme(t *testing.T) {
	assert.True(t, IsEmbeddedTheme("default"))
	assert.False(t, IsEmbeddedTheme("nope"))
}

func TestEmbeddedThemesAllParse(t *testing.T) {
	for _, name := range ListEmbeddedThemes() {
		theme, err := Load(name, nil)
		require.NoError(t, err, "embedded theme %q must parse", name)
		assert.Equal(t, name, theme.Name)
	}
}
