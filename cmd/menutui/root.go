// Package main provides the CLI entrypoint for menutui.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/menutui/internal/config"
	"github.com/jmylchreest/menutui/internal/tui"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		themeName  string
		menuFile   string
		noMouse    bool
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "menutui",
	Short: "Record browser with per-row action menus",
	Long: `menutui is a terminal record browser built around disclosed action menus.

Every row carries a trigger that opens a grouped menu of actions anchored
at the row. Menus are modal while open: keys and clicks inside them never
reach the rows underneath.

Running menutui without a subcommand launches the interactive TUI.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Flags override the config file.
		if globalOpts.themeName != "" {
			cfg.Theme.Name = globalOpts.themeName
		}
		if globalOpts.menuFile != "" {
			cfg.TUI.MenuFile = globalOpts.menuFile
		}
		if globalOpts.noMouse {
			cfg.TUI.Mouse = false
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(tui.RunOptions{
			Config: cfg,
			Logger: logger,
		})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/menutui/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.themeName, "theme", "",
		"Theme name (overrides config)")
	rootCmd.Flags().StringVar(&globalOpts.menuFile, "menu-file", "",
		"Path to a YAML menu definition (overrides the built-in menu)")
	rootCmd.Flags().BoolVar(&globalOpts.noMouse, "no-mouse", false,
		"Disable mouse support")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
