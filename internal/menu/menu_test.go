package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/menutui/internal/action"
	"github.com/jmylchreest/menutui/internal/theme"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func openedMenu(t *testing.T, cfg action.Menu) Model {
	t.Helper()
	m := New(theme.Fallback())
	m.SetSize(80, 24)
	require.NoError(t, m.Open(cfg, 10, 5))
	require.True(t, m.IsOpen())
	return m
}

func TestNew_StartsClosed(t *testing.T) {
	m := New(nil)
	assert.Equal(t, StateClosed, m.State())
	assert.False(t, m.IsOpen())
	assert.Empty(t, m.View())
	assert.NotNil(t, m.Theme(), "nil theme falls back to built-in")
}

func TestUpdate_ClosedHandlesNothing(t *testing.T) {
	m := New(nil)
	m.SetSize(80, 24)

	next, cmd, handled := m.Update(keyMsg("enter"))
	assert.False(t, handled)
	assert.Nil(t, cmd)
	assert.False(t, next.IsOpen())
}

func TestOpen_RejectsInvalidConfiguration(t *testing.T) {
	m := New(nil)
	m.SetSize(80, 24)

	err := m.Open(action.Menu{{Actions: []action.Action{{Label: "Bad"}}}}, 0, 0)
	assert.ErrorIs(t, err, action.ErrNoBehavior)
	assert.False(t, m.IsOpen(), "failed open leaves the menu closed")
}

func TestOpen_RejectsEmptyMenu(t *testing.T) {
	m := New(nil)
	m.SetSize(80, 24)

	err := m.Open(action.Menu{{Title: "nothing"}}, 0, 0)
	assert.ErrorIs(t, err, ErrEmptyMenu)
	assert.False(t, m.IsOpen())
}

func TestHandleTrigger_Toggles(t *testing.T) {
	cfg := action.Menu{{Actions: []action.Action{nav("View", "/v")}}}
	m := New(nil)
	m.SetSize(80, 24)

	require.NoError(t, m.HandleTrigger(cfg, 3, 3))
	assert.True(t, m.IsOpen())

	require.NoError(t, m.HandleTrigger(cfg, 3, 3))
	assert.False(t, m.IsOpen(), "second trigger activation closes")
}

func TestEscapeCloses(t *testing.T) {
	m := openedMenu(t, action.Menu{{Actions: []action.Action{nav("View", "/v")}}})

	next, cmd, handled := m.Update(keyMsg("esc"))
	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.False(t, next.IsOpen())
}

func TestNavigateActivation(t *testing.T) {
	m := openedMenu(t, action.Menu{{Actions: []action.Action{nav("View", "/records/42")}}})

	next, cmd, handled := m.Update(keyMsg("enter"))
	assert.True(t, handled)
	assert.False(t, next.IsOpen(), "selection closes the disclosure")
	require.NotNil(t, cmd)

	msg := cmd()
	navMsg, ok := msg.(NavigateMsg)
	require.True(t, ok, "navigate action emits NavigateMsg, got %T", msg)
	assert.Equal(t, "/records/42", navMsg.Target)
}

func TestInvokeActivation(t *testing.T) {
	calls := 0
	cfg := action.Menu{{Actions: []action.Action{
		action.MustNew("edit", "Edit", action.Invoke(func() { calls++ })),
	}}}
	m := openedMenu(t, cfg)

	next, cmd, handled := m.Update(keyMsg("enter"))
	assert.True(t, handled)
	assert.False(t, next.IsOpen(), "menu closes before the handler runs")
	assert.Zero(t, calls, "handler is dispatched via command, not inline")
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, 1, calls, "handler called exactly once")
	invoked, ok := msg.(InvokedMsg)
	require.True(t, ok)
	assert.Equal(t, "Edit", invoked.Label)

	// No navigation happened.
	_, isNav := msg.(NavigateMsg)
	assert.False(t, isNav)
}

func TestDisabledActivationIsNoop(t *testing.T) {
	fn2 := 0
	cfg := action.Menu{
		{Actions: []action.Action{nav("View", "/x")}},
		{Actions: []action.Action{
			action.MustNew("trash", "Delete", action.Invoke(func() { fn2++ })).Disable(),
		}},
	}
	m := openedMenu(t, cfg)

	// Move the cursor onto the disabled Delete row.
	m, _, _ = m.Update(keyMsg("down"))

	next, cmd, handled := m.Update(keyMsg("enter"))
	assert.True(t, handled, "the attempt is still contained")
	assert.Nil(t, cmd)
	assert.Zero(t, fn2)
	assert.True(t, next.IsOpen(), "disclosure state unchanged by a disabled no-op")
}

func TestCursorSkipsDividersAndWraps(t *testing.T) {
	cfg := action.Menu{
		{Actions: []action.Action{nav("A", "/a")}},
		{Actions: []action.Action{nav("B", "/b")}},
	}
	m := openedMenu(t, cfg)
	// Rows: [A, divider, B]; cursor starts on A (0).

	m, _, _ = m.Update(keyMsg("down"))
	next, cmd, _ := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{Target: "/b"}, cmd())
	assert.False(t, next.IsOpen())

	// Wrap: down from B goes back to A.
	m = openedMenu(t, cfg)
	m, _, _ = m.Update(keyMsg("down"))
	m, _, _ = m.Update(keyMsg("down"))
	_, cmd, _ = m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{Target: "/a"}, cmd())

	// Wrap upward from the first row.
	m = openedMenu(t, cfg)
	m, _, _ = m.Update(keyMsg("up"))
	_, cmd, _ = m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{Target: "/b"}, cmd())
}

func TestOpenMenuContainsUnboundKeys(t *testing.T) {
	m := openedMenu(t, action.Menu{{Actions: []action.Action{nav("A", "/a")}}})

	next, cmd, handled := m.Update(keyMsg("z"))
	assert.True(t, handled, "open menu is modal for key input")
	assert.Nil(t, cmd)
	assert.True(t, next.IsOpen())
}

func TestMouse_OutsideClickCloses(t *testing.T) {
	m := openedMenu(t, action.Menu{{Actions: []action.Action{nav("A", "/a")}}})
	r := m.Bounds()

	next, cmd, handled := m.Update(leftClick(r.X+r.Width+2, r.Y))
	assert.False(t, handled, "the outside interaction itself is not contained")
	assert.Nil(t, cmd)
	assert.False(t, next.IsOpen())
}

func TestMouse_ClickActivatesRow(t *testing.T) {
	cfg := action.Menu{{Actions: []action.Action{nav("A", "/a"), nav("B", "/b")}}}
	m := openedMenu(t, cfg)
	r := m.Bounds()

	// Second action row sits below the border and the first row.
	next, cmd, handled := m.Update(leftClick(r.X+2, r.Y+2))
	assert.True(t, handled)
	assert.False(t, next.IsOpen())
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{Target: "/b"}, cmd())
}

func TestMouse_ClickOnDividerIsContainedNoop(t *testing.T) {
	cfg := action.Menu{
		{Actions: []action.Action{nav("A", "/a")}},
		{Actions: []action.Action{nav("B", "/b")}},
	}
	m := openedMenu(t, cfg)
	r := m.Bounds()

	// Rows: A at r.Y+1, divider at r.Y+2, B at r.Y+3.
	next, cmd, handled := m.Update(leftClick(r.X+2, r.Y+2))
	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.True(t, next.IsOpen())
}

func TestPlacement_BelowAnchorAndFlipped(t *testing.T) {
	cfg := action.Menu{{Actions: []action.Action{nav("A", "/a"), nav("B", "/b")}}}

	m := New(nil)
	m.SetSize(80, 24)
	require.NoError(t, m.Open(cfg, 10, 5))
	assert.Equal(t, 6, m.Bounds().Y, "opens on the row below the anchor")
	assert.Equal(t, 10, m.Bounds().X)

	// Near the bottom edge the overlay flips above the anchor.
	m = New(nil)
	m.SetSize(80, 24)
	require.NoError(t, m.Open(cfg, 10, 23))
	assert.Less(t, m.Bounds().Y+m.Bounds().Height, 24, "stays inside the viewport")
	assert.Less(t, m.Bounds().Y, 23, "flipped above the anchor")
}

func TestSetSize_ReplacesOpenOverlay(t *testing.T) {
	cfg := action.Menu{{Actions: []action.Action{nav("A", "/a")}}}
	m := New(nil)
	m.SetSize(80, 24)
	require.NoError(t, m.Open(cfg, 70, 5))
	wide := m.Bounds()

	m.SetSize(40, 24)
	narrow := m.Bounds()
	assert.LessOrEqual(t, narrow.X+narrow.Width, 40, "re-placed into the smaller viewport")
	assert.NotEqual(t, wide.X, narrow.X)
}

func TestScenario_SingleEditAction(t *testing.T) {
	// One group, one invokable "Edit" action: opening renders the row,
	// activating calls the handler exactly once, closes, and never
	// navigates.
	calls := 0
	cfg := action.Menu{{Actions: []action.Action{
		action.MustNew("edit", "Edit", action.Invoke(func() { calls++ })),
	}}}
	m := openedMenu(t, cfg)
	assert.Contains(t, stripView(m), "Edit")

	next, cmd, _ := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.IsType(t, InvokedMsg{}, msg)
	assert.Equal(t, 1, calls)
	assert.False(t, next.IsOpen())
}

func TestScenario_ViewAndDisabledDelete(t *testing.T) {
	// Two groups separated by one divider; the disabled "Delete" renders
	// muted and clicking it is a no-op.
	fn2 := 0
	cfg := action.Menu{
		{Actions: []action.Action{nav("View", "/x")}},
		{Actions: []action.Action{
			action.MustNew("trash", "Delete", action.Invoke(func() { fn2++ })).Disable(),
		}},
	}
	m := openedMenu(t, cfg)

	view := m.View()
	assert.Contains(t, stripView(m), "View")
	assert.Contains(t, stripView(m), "Delete")
	assert.Equal(t, 1, countDividers(view))

	r := m.Bounds()
	// Delete row: border, View, divider, Delete.
	next, cmd, handled := m.Update(leftClick(r.X+2, r.Y+3))
	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.Zero(t, fn2)
	assert.True(t, next.IsOpen())
}

func stripView(m Model) string {
	return ansi.Strip(m.View())
}
