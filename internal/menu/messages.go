package menu

// NavigateMsg is emitted when a Navigate action is activated. The host (or
// its router) performs the actual transition; the component never executes
// caller code for a navigation.
type NavigateMsg struct {
	Target string
}

// InvokedMsg is emitted after an Invoke action's handler has been called.
// The menu is already closed by the time the handler runs; handler
// failures propagate to the bubbletea runtime untouched.
type InvokedMsg struct {
	Label string
}
