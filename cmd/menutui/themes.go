package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/menutui/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Long: `List bundled and user themes.

User themes are TOML files in ~/.config/menutui/themes/ and override
bundled themes with the same name. Theme edits are picked up live while
the TUI is running when hot reload is enabled.`,
	RunE: runThemes,
}

var themesDirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Print the user themes directory, creating it if needed",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := theme.CreateThemesDir(); err != nil {
			return fmt.Errorf("create themes directory: %w", err)
		}
		dir, err := theme.ThemesDir()
		if err != nil {
			return err
		}
		fmt.Println(dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesDirCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	themes, err := theme.ListAvailable()
	if err != nil {
		return fmt.Errorf("list themes: %w", err)
	}

	for _, t := range themes {
		marker := " "
		if t.Name == cfg.Theme.Name {
			marker = "*"
		}
		origin := "user"
		if t.IsBundled {
			origin = "bundled"
		}
		fmt.Printf("%s %-16s %s\n", marker, t.Name, origin)
	}
	return nil
}
