package theme

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ThemesDir returns the path to the user's themes directory.
func ThemesDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "menutui", "themes"), nil
}

// Load loads a theme by name.
// Resolution order:
//  1. User themes directory (~/.config/menutui/themes/)
//  2. Embedded/bundled themes
//
// This allows users to override bundled themes by placing a file with the
// same name in their themes directory. An unknown name falls back to the
// default theme with a warning, so the UI always has something to render
// with; a present-but-broken user file is an error.
func Load(name string, logger *slog.Logger) (*Theme, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if name == "" {
		name = DefaultThemeName
	}

	// First, check the user themes directory.
	if themesDir, err := ThemesDir(); err == nil {
		path := filepath.Join(themesDir, name+".toml")
		if info, err := os.Stat(path); err == nil {
			t, err := LoadFile(name, path)
			if err != nil {
				return nil, fmt.Errorf("user theme %q: %w", name, err)
			}
			t.ModTime = info.ModTime()
			logger.Debug("loaded user theme", "name", name, "path", path)
			return t, nil
		}
	}

	// Second, check embedded themes.
	if data, found := GetEmbeddedTheme(name); found {
		t, err := parse(name, "", time.Time{}, data)
		if err != nil {
			// Embedded themes are part of the build; a parse failure
			// here is a packaging bug, not user error.
			return nil, fmt.Errorf("embedded theme %q: %w", name, err)
		}
		t.IsDefault = name == DefaultThemeName
		logger.Debug("loaded bundled theme", "name", name)
		return t, nil
	}

	logger.Warn("theme not found, using default", "theme", name)
	return Fallback(), nil
}

// LoadFile loads and resolves a theme from an explicit path.
func LoadFile(name, path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return parse(name, path, info.ModTime(), data)
}

// Reload re-reads the theme from disk.
// Returns the fresh theme and true if the file changed since t was loaded.
func (t *Theme) Reload() (*Theme, bool, error) {
	if t.Path == "" {
		return t, false, nil
	}

	info, err := os.Stat(t.Path)
	if err != nil {
		return t, false, err
	}
	if !info.ModTime().After(t.ModTime) {
		return t, false, nil
	}

	fresh, err := LoadFile(t.Name, t.Path)
	if err != nil {
		return t, false, err
	}
	return fresh, true, nil
}

func parse(name, path string, modTime time.Time, data []byte) (*Theme, error) {
	var def Definition
	if err := toml.Unmarshal(data, &def); err != nil {
		return nil, err
	}
	return resolve(name, path, modTime, def), nil
}

// Info provides basic theme information for listing.
type Info struct {
	Name      string
	Path      string
	IsDefault bool
	IsBundled bool // True if this is a bundled/embedded theme
}

// ListAvailable lists all available themes (bundled + user).
func ListAvailable() ([]Info, error) {
	seen := make(map[string]bool)
	var themes []Info

	// Add bundled themes first
	for _, name := range ListEmbeddedThemes() {
		if !seen[name] {
			seen[name] = true
			themes = append(themes, Info{
				Name:      name,
				IsDefault: name == DefaultThemeName,
				IsBundled: true,
			})
		}
	}

	// Add user themes
	themesDir, err := ThemesDir()
	if err != nil {
		return themes, nil
	}

	entries, err := os.ReadDir(themesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return themes, nil
		}
		return themes, err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) == ".toml" {
			themeName := strings.TrimSuffix(name, ".toml")
			if !seen[themeName] {
				seen[themeName] = true
				themes = append(themes, Info{
					Name: themeName,
					Path: filepath.Join(themesDir, name),
				})
			}
		}
	}

	return themes, nil
}

// CreateThemesDir creates the themes directory if it doesn't exist.
func CreateThemesDir() error {
	themesDir, err := ThemesDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(themesDir, 0755)
}
