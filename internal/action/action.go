// Package action defines the data model for action menus: actions, their
// activation behavior, and the groups they are arranged in.
package action

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrEmptyLabel    = errors.New("action label cannot be empty")
	ErrNoBehavior    = errors.New("action must have exactly one behavior")
	ErrEmptyTarget   = errors.New("navigate target cannot be empty")
	ErrNilHandler    = errors.New("invoke handler cannot be nil")
	ErrBothBehaviors = errors.New("action cannot both navigate and invoke")
)

// BehaviorKind discriminates the two activation variants.
type BehaviorKind int

const (
	// KindNone is the zero value; an Action carrying it is invalid.
	KindNone BehaviorKind = iota
	// KindNavigate transitions the user to a target location.
	KindNavigate
	// KindInvoke calls a caller-supplied handler.
	KindInvoke
)

// Behavior is the tagged activation variant of an Action. Exactly one of
// the two variants is set; construct values with Navigate or Invoke.
type Behavior struct {
	kind    BehaviorKind
	target  string
	handler func()
}

// Navigate returns a Behavior that transitions to target when activated.
func Navigate(target string) Behavior {
	return Behavior{kind: KindNavigate, target: target}
}

// Invoke returns a Behavior that calls handler when activated.
func Invoke(handler func()) Behavior {
	return Behavior{kind: KindInvoke, handler: handler}
}

// Kind returns the variant of the behavior.
func (b Behavior) Kind() BehaviorKind { return b.kind }

// Target returns the navigation target. Empty unless Kind is KindNavigate.
func (b Behavior) Target() string { return b.target }

// Handler returns the invoke handler. Nil unless Kind is KindInvoke.
func (b Behavior) Handler() func() { return b.handler }

// Validate checks that the behavior carries exactly one well-formed variant.
func (b Behavior) Validate() error {
	switch b.kind {
	case KindNavigate:
		if b.target == "" {
			return ErrEmptyTarget
		}
		return nil
	case KindInvoke:
		if b.handler == nil {
			return ErrNilHandler
		}
		return nil
	default:
		return ErrNoBehavior
	}
}

// Action is a single selectable menu entry.
type Action struct {
	// Icon is an opaque glyph name resolved by the theme at render time.
	Icon string
	// Label is the display text. Required.
	Label string
	// Disabled actions are rendered muted and cannot be activated.
	Disabled bool

	behavior Behavior
}

// New constructs a validated Action. It fails fast on an empty label or a
// missing/malformed behavior rather than silently picking a variant.
func New(icon, label string, b Behavior) (Action, error) {
	a := Action{Icon: icon, Label: label, behavior: b}
	if err := a.Validate(); err != nil {
		return Action{}, err
	}
	return a, nil
}

// MustNew is New for statically known configurations; it panics on error.
func MustNew(icon, label string, b Behavior) Action {
	a, err := New(icon, label, b)
	if err != nil {
		panic(fmt.Sprintf("action: invalid %q: %v", label, err))
	}
	return a
}

// Behavior returns the action's activation variant.
func (a Action) Behavior() Behavior { return a.behavior }

// Disable returns a copy of the action with Disabled set.
func (a Action) Disable() Action {
	a.Disabled = true
	return a
}

// Validate checks the action's invariants.
func (a Action) Validate() error {
	if a.Label == "" {
		return ErrEmptyLabel
	}
	return a.behavior.Validate()
}

// Group is an ordered sequence of actions rendered contiguously. Adjacent
// non-empty groups are separated by a divider; a group with zero actions
// renders nothing at all.
type Group struct {
	// Title is optional and informational; it is not rendered.
	Title   string
	Actions []Action
}

// Empty reports whether the group contributes nothing to the rendered menu.
func (g Group) Empty() bool { return len(g.Actions) == 0 }

// Menu is an ordered sequence of groups. It is a value: callers supply a
// new one per render rather than mutating in place.
type Menu []Group

// Validate checks every action in every group.
func (m Menu) Validate() error {
	for gi, g := range m {
		for ai, a := range g.Actions {
			if err := a.Validate(); err != nil {
				return fmt.Errorf("group %d action %d: %w", gi, ai, err)
			}
		}
	}
	return nil
}

// Empty reports whether the menu has no renderable actions.
func (m Menu) Empty() bool {
	for _, g := range m {
		if !g.Empty() {
			return false
		}
	}
	return true
}

// ActionCount returns the number of actions across all groups.
func (m Menu) ActionCount() int {
	n := 0
	for _, g := range m {
		n += len(g.Actions)
	}
	return n
}
