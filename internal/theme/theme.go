// Package theme provides the injected visual capability for menus: style
// sets and icon glyph tables, loaded from TOML with user overrides.
package theme

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Palette is the color section of a theme file. Values are anything
// lipgloss.Color accepts (hex or ANSI palette index).
type Palette struct {
	Title         string `toml:"title"`
	Label         string `toml:"label"`
	LabelSelected string `toml:"label_selected"`
	LabelDisabled string `toml:"label_disabled"`
	Icon          string `toml:"icon"`
	IconDisabled  string `toml:"icon_disabled"`
	Divider       string `toml:"divider"`
	Border        string `toml:"border"`
	Cursor        string `toml:"cursor"`
	Trigger       string `toml:"trigger"`
	SelectedBG    string `toml:"selected_bg"`
}

// Definition is the on-disk shape of a theme file.
type Definition struct {
	Colors Palette           `toml:"colors"`
	Icons  map[string]string `toml:"icons"`
}

// Styles holds the resolved lipgloss styles a menu renders with.
type Styles struct {
	Border        lipgloss.Style
	Title         lipgloss.Style
	Cursor        lipgloss.Style
	Label         lipgloss.Style
	LabelSelected lipgloss.Style
	LabelDisabled lipgloss.Style
	Icon          lipgloss.Style
	IconDisabled  lipgloss.Style
	Divider       lipgloss.Style
	Trigger       lipgloss.Style
}

// Theme is a loaded, resolved theme.
type Theme struct {
	Name      string    // Theme name (without .toml extension)
	Path      string    // Full path to the file (empty for embedded themes)
	ModTime   time.Time // Last modification time (zero for embedded themes)
	IsDefault bool      // True if this is the embedded default theme

	Styles Styles
	icons  map[string]string
}

// FallbackGlyph is rendered when an icon name has no glyph in the theme.
const FallbackGlyph = "•"

// Icon resolves an icon name to its glyph. Unknown names get the fallback
// glyph so a menu never renders a hole where an icon should be.
func (t *Theme) Icon(name string) string {
	if t == nil {
		return FallbackGlyph
	}
	if g, ok := t.icons[name]; ok && g != "" {
		return g
	}
	return FallbackGlyph
}

// IconNames returns the names the theme has glyphs for.
func (t *Theme) IconNames() []string {
	names := make([]string, 0, len(t.icons))
	for name := range t.icons {
		names = append(names, name)
	}
	return names
}

// resolve builds a Theme from a parsed definition. Missing colors fall
// back to the corresponding default palette entry, missing icons to the
// default icon table, so partial theme files stay usable.
func resolve(name, path string, modTime time.Time, def Definition) *Theme {
	base := defaultPalette()
	p := def.Colors
	fill := func(v, dflt string) string {
		if v == "" {
			return dflt
		}
		return v
	}
	p.Title = fill(p.Title, base.Title)
	p.Label = fill(p.Label, base.Label)
	p.LabelSelected = fill(p.LabelSelected, base.LabelSelected)
	p.LabelDisabled = fill(p.LabelDisabled, base.LabelDisabled)
	p.Icon = fill(p.Icon, base.Icon)
	p.IconDisabled = fill(p.IconDisabled, base.IconDisabled)
	p.Divider = fill(p.Divider, base.Divider)
	p.Border = fill(p.Border, base.Border)
	p.Cursor = fill(p.Cursor, base.Cursor)
	p.Trigger = fill(p.Trigger, base.Trigger)
	p.SelectedBG = fill(p.SelectedBG, base.SelectedBG)

	icons := defaultIcons()
	for k, v := range def.Icons {
		icons[k] = v
	}

	return &Theme{
		Name:    name,
		Path:    path,
		ModTime: modTime,
		Styles: Styles{
			Border: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(p.Border)),
			Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Title)),
			Cursor:        lipgloss.NewStyle().Foreground(lipgloss.Color(p.Cursor)).Bold(true),
			Label:         lipgloss.NewStyle().Foreground(lipgloss.Color(p.Label)),
			LabelSelected: lipgloss.NewStyle().Foreground(lipgloss.Color(p.LabelSelected)).Background(lipgloss.Color(p.SelectedBG)).Bold(true),
			LabelDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color(p.LabelDisabled)).Faint(true),
			Icon:          lipgloss.NewStyle().Foreground(lipgloss.Color(p.Icon)),
			IconDisabled:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.IconDisabled)).Faint(true),
			Divider:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.Divider)),
			Trigger:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.Trigger)),
		},
		icons: icons,
	}
}

// defaultPalette is the built-in color set, used to backfill partial
// theme files and as the final fallback when no theme loads at all.
func defaultPalette() Palette {
	return Palette{
		Title:         "12",
		Label:         "7",
		LabelSelected: "15",
		LabelDisabled: "8",
		Icon:          "12",
		IconDisabled:  "8",
		Divider:       "8",
		Border:        "8",
		Cursor:        "13",
		Trigger:       "12",
		SelectedBG:    "236",
	}
}

// defaultIcons is the built-in icon table. Plain-ASCII on purpose so the
// defaults work on any terminal font; themes override with fancier glyphs.
func defaultIcons() map[string]string {
	return map[string]string{
		"open":    ">",
		"view":    "*",
		"edit":    "~",
		"copy":    "c",
		"refresh": "@",
		"share":   "^",
		"bell":    "!",
		"trash":   "x",
		"gear":    "#",
		"dots":    "⋮",
	}
}

// Fallback returns the resolved built-in theme without touching disk.
func Fallback() *Theme {
	t := resolve(DefaultThemeName, "", time.Time{}, Definition{})
	t.IsDefault = true
	return t
}
