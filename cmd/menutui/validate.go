package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/menutui/internal/menudef"
)

var validateOpts struct {
	strict bool
}

// builtinHandlers mirrors the handler names the TUI registers for its
// record menus. Strict validation rejects anything outside this set.
var builtinHandlers = []string{"copy-id", "notify", "refresh", "delete"}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a YAML menu definition",
	Long: `Validate a YAML menu definition file.

Checks that every action has a label and exactly one behavior (a "to"
navigation target or a "run" handler name). With --strict, handler names
must also match the handlers the TUI provides.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateOpts.strict, "strict", false,
		"Reject handler names the TUI does not provide")
}

func runValidate(cmd *cobra.Command, args []string) error {
	var reg menudef.Registry
	if validateOpts.strict {
		reg = make(menudef.Registry, len(builtinHandlers))
		for _, name := range builtinHandlers {
			reg[name] = func() {}
		}
	}

	menu, err := menudef.Load(args[0], reg)
	if err != nil {
		return fmt.Errorf("invalid menu definition: %w", err)
	}

	fmt.Printf("OK: %d groups, %d actions\n", len(menu), menu.ActionCount())
	return nil
}
