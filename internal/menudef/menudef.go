// Package menudef loads declarative menu definitions from YAML and maps
// them onto validated action menus via a named handler registry.
package menudef

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/menutui/internal/action"
)

// ErrUnknownHandler is returned when a "run" name has no registry entry.
var ErrUnknownHandler = errors.New("unknown handler name")

// Registry maps handler names to the functions Invoke actions call.
// A nil Registry puts Parse in shape-check mode: any handler name
// resolves to a no-op, which is what the validate command wants.
type Registry map[string]func()

// File is the on-disk shape of a menu definition.
type File struct {
	Groups []GroupDef `yaml:"groups"`
}

// GroupDef is one group of the definition.
type GroupDef struct {
	Title   string      `yaml:"title"`
	Actions []ActionDef `yaml:"actions"`
}

// ActionDef is one action entry. Exactly one of To and Run must be set:
// To makes a Navigate action, Run an Invoke action resolved through the
// registry. Entries with both or neither are configuration errors and are
// rejected rather than silently preferring one variant.
type ActionDef struct {
	Label    string `yaml:"label"`
	Icon     string `yaml:"icon"`
	Disabled bool   `yaml:"disabled"`
	To       string `yaml:"to"`
	Run      string `yaml:"run"`
}

// Parse decodes a YAML menu definition and resolves it against reg.
func Parse(data []byte, reg Registry) (action.Menu, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse menu definition: %w", err)
	}

	menu := make(action.Menu, 0, len(f.Groups))
	for gi, g := range f.Groups {
		group := action.Group{Title: g.Title}
		for ai, def := range g.Actions {
			a, err := resolve(def, reg)
			if err != nil {
				return nil, fmt.Errorf("group %d action %d (%q): %w", gi, ai, def.Label, err)
			}
			group.Actions = append(group.Actions, a)
		}
		menu = append(menu, group)
	}
	return menu, nil
}

// Load reads and parses a menu definition file.
func Load(path string, reg Registry) (action.Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu definition: %w", err)
	}
	return Parse(data, reg)
}

func resolve(def ActionDef, reg Registry) (action.Action, error) {
	var b action.Behavior
	switch {
	case def.To != "" && def.Run != "":
		return action.Action{}, action.ErrBothBehaviors
	case def.To != "":
		b = action.Navigate(def.To)
	case def.Run != "":
		handler, err := lookup(reg, def.Run)
		if err != nil {
			return action.Action{}, err
		}
		b = action.Invoke(handler)
	default:
		return action.Action{}, action.ErrNoBehavior
	}

	a, err := action.New(def.Icon, def.Label, b)
	if err != nil {
		return action.Action{}, err
	}
	if def.Disabled {
		a = a.Disable()
	}
	return a, nil
}

func lookup(reg Registry, name string) (func(), error) {
	if reg == nil {
		return func() {}, nil
	}
	handler, ok := reg[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHandler, name)
	}
	if handler == nil {
		return nil, fmt.Errorf("%w: %q is nil", ErrUnknownHandler, name)
	}
	return handler, nil
}
