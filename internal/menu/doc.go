// Package menu implements the action-menu overlay component: a disclosure
// widget that opens a grouped list of actions anchored to a trigger, and
// resolves each action to either a navigation or a handler invocation.
//
// The component owns only its open/closed disclosure state. While open it
// consumes interaction events and reports them as handled; hosts must not
// route a handled event to any surface underneath the overlay. Activating
// an enabled action always closes the menu first, then dispatches the
// action's behavior as a bubbletea command producing NavigateMsg or
// InvokedMsg.
package menu
