package tui

import (
	"github.com/jmylchreest/menutui/internal/action"
	"github.com/jmylchreest/menutui/internal/menudef"
)

// Labels for invoke actions the browser reacts to after the menu closes.
// Copy and notify run entirely inside their handlers; refresh and delete
// mutate browser state, so the handler is a no-op and the browser applies
// the change when the invoked message arrives.
const (
	actionCopyID  = "Copy ID"
	actionNotify  = "Announce"
	actionRefresh = "Refresh"
	actionDelete  = "Delete"
)

// buildMenu returns the built-in per-record menu.
func (m Model) buildMenu(rec Record) action.Menu {
	del := action.MustNew(m.theme.Icon("trash"), actionDelete, action.Invoke(func() {}))
	if rec.Protected {
		del = del.Disable()
	}

	return action.Menu{
		{
			Title: "Record",
			Actions: []action.Action{
				action.MustNew(m.theme.Icon("open"), "Open", action.Navigate(recordTarget(rec))),
			},
		},
		{
			Title: "Actions",
			Actions: []action.Action{
				action.MustNew(m.theme.Icon("copy"), actionCopyID, action.Invoke(m.copyIDHandler(rec))),
				action.MustNew(m.theme.Icon("bell"), actionNotify, action.Invoke(m.notifyHandler(rec))),
				action.MustNew(m.theme.Icon("refresh"), actionRefresh, action.Invoke(func() {})),
				del,
			},
		},
	}
}

// buildRegistry maps handler names used by menu definition files to
// closures over the given record.
func (m Model) buildRegistry(rec Record) menudef.Registry {
	return menudef.Registry{
		"copy-id": m.copyIDHandler(rec),
		"notify":  m.notifyHandler(rec),
		"refresh": func() {},
		"delete":  func() {},
	}
}

// menuFor resolves the menu shown for a record: the configured definition
// file when one is loaded, the built-in menu otherwise.
func (m Model) menuFor(rec Record) (action.Menu, error) {
	if len(m.menuDef) == 0 {
		return m.buildMenu(rec), nil
	}
	return menudef.Parse(m.menuDef, m.buildRegistry(rec))
}

func (m Model) copyIDHandler(rec Record) func() {
	logger := m.logger
	id := rec.ID.String()
	return func() {
		if err := copyText(id); err != nil {
			logger.Warn("clipboard copy failed", "error", err)
		}
	}
}

func (m Model) notifyHandler(rec Record) func() {
	notifier := m.notifier
	logger := m.logger
	name := rec.Name
	return func() {
		if notifier == nil {
			return
		}
		if err := notifier.Send("menutui", "Record: "+name); err != nil {
			logger.Warn("notification failed", "error", err)
		}
	}
}
