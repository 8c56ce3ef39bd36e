package menu

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmylchreest/menutui/internal/action"
	"github.com/jmylchreest/menutui/internal/overlay"
	"github.com/jmylchreest/menutui/internal/theme"
)

// ErrEmptyMenu is returned when a menu with no actions is opened.
var ErrEmptyMenu = errors.New("menu has no actions")

// State is the disclosure state of the overlay.
type State int

const (
	StateClosed State = iota
	StateOpen
)

// Model is the disclosure controller. It owns exactly one piece of state
// (open or closed) plus the presentation bookkeeping needed to anchor the
// overlay. Transitions are instantaneous: there is no opening/closing
// animation state.
type Model struct {
	state State
	keys  KeyMap
	theme *theme.Theme

	// Menu configuration for the current disclosure. Supplied per open;
	// treated as immutable until the menu closes.
	menu action.Menu
	rows []row

	cursor int

	// Anchor cell of the trigger and the viewport the overlay must stay
	// inside.
	anchorX, anchorY int
	width, height    int

	rect overlay.Rect
}

// New creates a closed menu using the given theme. A nil theme falls back
// to the built-in one so the component is usable without any injection.
func New(t *theme.Theme) Model {
	if t == nil {
		t = theme.Fallback()
	}
	return Model{
		state: StateClosed,
		keys:  DefaultKeyMap(),
		theme: t,
	}
}

// Keys returns the active key bindings.
func (m Model) Keys() KeyMap { return m.keys }

// SetKeys replaces the key bindings.
func (m *Model) SetKeys(k KeyMap) { m.keys = k }

// SetTheme swaps the injected visual capability, e.g. after a hot reload.
func (m *Model) SetTheme(t *theme.Theme) {
	if t != nil {
		m.theme = t
	}
}

// Theme returns the current theme.
func (m Model) Theme() *theme.Theme { return m.theme }

// State returns the disclosure state.
func (m Model) State() State { return m.state }

// IsOpen reports whether the overlay is disclosed.
func (m Model) IsOpen() bool { return m.state == StateOpen }

// SetSize records the viewport the overlay must remain inside. While open
// the overlay is re-placed so it stays fully visible when possible.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.state == StateOpen {
		m.place()
	}
}

// Open discloses the overlay anchored at the trigger cell (x, y) with the
// given menu configuration. It fails fast on invalid configurations and
// refuses to open a menu with no actions at all.
func (m *Model) Open(cfg action.Menu, x, y int) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	rows := flatten(cfg)
	if len(rows) == 0 {
		return ErrEmptyMenu
	}

	m.menu = cfg
	m.rows = rows
	m.cursor = firstActionRow(rows)
	m.anchorX = x
	m.anchorY = y
	m.state = StateOpen
	m.place()
	return nil
}

// Close transitions to the closed state. Safe to call when already closed.
func (m *Model) Close() {
	m.state = StateClosed
	m.menu = nil
	m.rows = nil
	m.cursor = -1
}

// HandleTrigger is the trigger affordance's activation: it opens a closed
// menu and closes an open one. The host calls this when its trigger is
// clicked or its trigger key pressed.
func (m *Model) HandleTrigger(cfg action.Menu, x, y int) error {
	if m.state == StateOpen {
		m.Close()
		return nil
	}
	return m.Open(cfg, x, y)
}

// Bounds returns the overlay rectangle. Zero while closed.
func (m Model) Bounds() overlay.Rect {
	if m.state != StateOpen {
		return overlay.Rect{}
	}
	return m.rect
}

// Update handles a message. The returned bool reports containment: true
// means the menu consumed the event and the host must not deliver it to
// any surface beneath the overlay. A closed menu handles nothing.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd, bool) {
	if m.state != StateOpen {
		return m, nil, false
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil, false
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.Close()
		return m, nil, true

	case key.Matches(msg, m.keys.Up):
		m.cursor = prevActionRow(m.rows, m.cursor)
		return m, nil, true

	case key.Matches(msg, m.keys.Down):
		m.cursor = nextActionRow(m.rows, m.cursor)
		return m, nil, true

	case key.Matches(msg, m.keys.Select):
		model, cmd := m.activate(m.cursor)
		return model, cmd, true
	}

	// The open menu is modal: unbound keys are contained, not forwarded.
	return m, nil, true
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd, bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		// Motion and release inside the overlay are still the menu's.
		inside := m.rect.Contains(msg.X, msg.Y)
		return m, nil, inside
	}

	if !m.rect.Contains(msg.X, msg.Y) {
		// Outside interaction closes the disclosure. The click itself is
		// not contained; whatever is underneath may still respond to it.
		m.Close()
		return m, nil, false
	}

	// Map the click to a row inside the border.
	idx := msg.Y - m.rect.Y - 1
	if idx < 0 || idx >= len(m.rows) || m.rows[idx].kind != rowAction {
		return m, nil, true
	}

	m.cursor = idx
	model, cmd := m.activate(idx)
	return model, cmd, true
}

// activate resolves the behavior of the row at idx. Disabled rows are
// no-ops and leave the disclosure state unchanged. Enabled rows close the
// menu unconditionally before their behavior is dispatched, so the close
// is never conditioned on handler outcome.
func (m Model) activate(idx int) (Model, tea.Cmd) {
	if idx < 0 || idx >= len(m.rows) || m.rows[idx].kind != rowAction {
		return m, nil
	}
	a := m.rows[idx].act
	if a.Disabled {
		return m, nil
	}

	m.Close()

	switch a.Behavior().Kind() {
	case action.KindNavigate:
		target := a.Behavior().Target()
		return m, func() tea.Msg {
			return NavigateMsg{Target: target}
		}
	case action.KindInvoke:
		handler := a.Behavior().Handler()
		label := a.Label
		return m, func() tea.Msg {
			handler()
			return InvokedMsg{Label: label}
		}
	}
	return m, nil
}

// View renders the open overlay content. Empty while closed.
func (m Model) View() string {
	if m.state != StateOpen {
		return ""
	}
	return renderRows(m.rows, m.theme, m.cursor)
}

// TriggerView renders the trigger affordance glyph for host rows.
func (m Model) TriggerView() string {
	return m.theme.Styles.Trigger.Render(m.theme.Icon("dots"))
}

// Overlay composites the open menu over the host's rendered view. While
// closed it returns base unchanged.
func (m Model) Overlay(base string) string {
	if m.state != StateOpen {
		return base
	}
	return overlay.Composite(base, m.View(), m.rect.X, m.rect.Y, m.width)
}

// place computes the overlay rectangle from the anchor and viewport.
func (m *Model) place() {
	w, h := overlay.Size(renderRows(m.rows, m.theme, m.cursor))
	m.rect = overlay.Place(m.anchorX, m.anchorY, w, h, m.width, m.height)
}

// firstActionRow returns the index of the first action row, or -1.
func firstActionRow(rows []row) int {
	for i, r := range rows {
		if r.kind == rowAction {
			return i
		}
	}
	return -1
}

// nextActionRow moves the cursor down one action row, wrapping at the end
// and skipping dividers.
func nextActionRow(rows []row, cur int) int {
	if len(rows) == 0 {
		return -1
	}
	for i := 1; i <= len(rows); i++ {
		idx := (cur + i) % len(rows)
		if idx < 0 {
			idx += len(rows)
		}
		if rows[idx].kind == rowAction {
			return idx
		}
	}
	return cur
}

// prevActionRow moves the cursor up one action row, wrapping at the top
// and skipping dividers.
func prevActionRow(rows []row, cur int) int {
	if len(rows) == 0 {
		return -1
	}
	for i := 1; i <= len(rows); i++ {
		idx := ((cur-i)%len(rows) + len(rows)) % len(rows)
		if rows[idx].kind == rowAction {
			return idx
		}
	}
	return cur
}
