// Package tui provides the BubbleTea-based record browser that hosts
// per-row action menus.
package tui

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/jmylchreest/menutui/internal/config"
	"github.com/jmylchreest/menutui/internal/menu"
	"github.com/jmylchreest/menutui/internal/notify"
	"github.com/jmylchreest/menutui/internal/theme"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModeList Mode = iota
	ModeDetail
)

// headerRows is the number of lines above the first record row: the
// title line and the column header. Menu anchors and mouse hit testing
// both depend on it.
const headerRows = 2

// recordPrefix is the navigation target prefix for record detail views.
const recordPrefix = "/records/"

// Model is the main TUI model.
type Model struct {
	cfg      *config.Config
	logger   *slog.Logger
	theme    *theme.Theme
	notifier *notify.Notifier
	menuDef  []byte

	mode Mode

	// Components
	menu     menu.Model
	viewport viewport.Model
	help     help.Model

	// State
	records      []Record
	cursor       int
	selected     *Record
	menuRecordID string
	menuRow      int
	width        int
	height       int
	ready        bool

	keys KeyMap

	statusMsg string
	statusErr bool
}

// New creates a new record browser model.
func New(cfg *config.Config, th *theme.Theme, notifier *notify.Notifier, menuDef []byte, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if th == nil {
		th = theme.Fallback()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return Model{
		cfg:      cfg,
		logger:   logger,
		theme:    th,
		notifier: notifier,
		menuDef:  menuDef,
		mode:     ModeList,
		menu:     menu.New(th),
		help:     help.New(),
		records:  seedRecords(),
		keys:     DefaultKeyMap(),
	}
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return nil
}

type statusUpdateMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct{}

type themeReloadedMsg struct {
	theme *theme.Theme
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.viewport = viewport.New(msg.Width, msg.Height-4)
		m.viewport.YPosition = 2
		m.menu.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg, tea.MouseMsg:
		// The trigger belongs to the browser, not the overlay: a second
		// activation of the same trigger closes an open menu rather than
		// reopening it. Without this guard the overlay would decline the
		// click as an outside press and the fall-through would re-toggle.
		if km, ok := msg.(tea.KeyMsg); ok && m.menu.IsOpen() && key.Matches(km, m.keys.Menu) {
			m.menu.Close()
			return m, nil
		}
		if mm, ok := msg.(tea.MouseMsg); ok && m.menu.IsOpen() && m.isOwnTriggerPress(mm) {
			m.menu.Close()
			return m, nil
		}
		// An open menu sees input first. Anything it handles stops
		// here; only declined events reach the browser.
		if m.menu.IsOpen() {
			var cmd tea.Cmd
			var handled bool
			m.menu, cmd, handled = m.menu.Update(msg)
			if handled {
				return m, cmd
			}
		}
		switch msg := msg.(type) {
		case tea.KeyMsg:
			return m.handleKey(msg)
		case tea.MouseMsg:
			return m.handleMouse(msg)
		}
		return m, nil

	case menu.NavigateMsg:
		return m.navigate(msg.Target)

	case menu.InvokedMsg:
		return m.invoked(msg.Label)

	case themeReloadedMsg:
		m.theme = msg.theme
		m.menu.SetTheme(msg.theme)
		return m, m.status("Theme reloaded", false)

	case statusUpdateMsg:
		m.statusMsg = msg.text
		m.statusErr = msg.isErr
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil
	}

	if m.mode == ModeDetail {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey handles key presses that the menu declined.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.mode {
	case ModeList:
		return m.handleListKey(msg)
	case ModeDetail:
		return m.handleDetailKey(msg)
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.End):
		if len(m.records) > 0 {
			m.cursor = len(m.records) - 1
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.cursor < len(m.records) {
			return m.navigate(recordTarget(m.records[m.cursor]))
		}
		return m, nil

	case key.Matches(msg, m.keys.Menu):
		return m.toggleMenu(m.cursor, m.triggerCol(), headerRows+m.cursor)

	case key.Matches(msg, m.keys.Refresh):
		m.records = seedRecords()
		m.clampCursor()
		return m, m.status("Records refreshed", false)
	}

	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.mode = ModeList
		m.selected = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleMouse handles mouse events while no menu is open, plus the
// outside clicks an open menu declined.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || m.mode != ModeList {
		return m, nil
	}

	idx := msg.Y - headerRows
	if idx < 0 || idx >= len(m.records) {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		if msg.X >= m.triggerCol() {
			return m.toggleMenu(idx, msg.X, msg.Y)
		}
		m.cursor = idx
		return m, nil

	case tea.MouseButtonRight:
		return m.toggleMenu(idx, msg.X, msg.Y)
	}

	return m, nil
}

// toggleMenu opens the menu for the record at idx, anchored at the given
// screen position, or closes it if already open.
func (m Model) toggleMenu(idx, x, y int) (tea.Model, tea.Cmd) {
	if idx >= len(m.records) {
		return m, nil
	}
	rec := m.records[idx]
	m.cursor = idx

	cfg, err := m.menuFor(rec)
	if err != nil {
		m.logger.Error("menu definition rejected", "error", err)
		return m, m.status("Menu definition error: "+err.Error(), true)
	}

	if err := m.menu.HandleTrigger(cfg, x, y); err != nil {
		return m, m.status("Cannot open menu: "+err.Error(), true)
	}
	m.menuRecordID = rec.ID.String()
	m.menuRow = idx
	return m, nil
}

// isOwnTriggerPress reports whether a press lands on the trigger that
// anchors the currently open menu: the trigger cell of that row for the
// left button, anywhere in the row for the right button. Presses inside
// the overlay itself stay with the menu.
func (m Model) isOwnTriggerPress(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress || m.menu.Bounds().Contains(msg.X, msg.Y) {
		return false
	}
	if msg.Y-headerRows != m.menuRow {
		return false
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		return msg.X >= m.triggerCol()
	case tea.MouseButtonRight:
		return true
	}
	return false
}

// navigate routes a navigation target to the matching view.
func (m Model) navigate(target string) (tea.Model, tea.Cmd) {
	id, ok := strings.CutPrefix(target, recordPrefix)
	if !ok {
		return m, m.status("Unknown target: "+target, true)
	}

	rec, found := findRecord(m.records, id)
	if !found {
		return m, m.status("Record not found: "+id, true)
	}

	m.selected = &rec
	m.mode = ModeDetail
	m.viewport.SetContent(m.renderDetail(rec))
	m.viewport.GotoTop()
	return m, nil
}

// invoked applies the state changes behind invoke actions whose handlers
// are deliberately inert.
func (m Model) invoked(label string) (tea.Model, tea.Cmd) {
	switch label {
	case actionRefresh:
		m.records = seedRecords()
		m.clampCursor()
		return m, m.status("Records refreshed", false)

	case actionDelete:
		m.removeRecord(m.menuRecordID)
		return m, m.status("Record deleted", false)
	}

	return m, m.status("Ran: "+label, false)
}

func (m *Model) removeRecord(id string) {
	kept := m.records[:0]
	for _, r := range m.records {
		if r.ID.String() != id {
			kept = append(kept, r)
		}
	}
	m.records = kept
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.records) {
		m.cursor = len(m.records) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// triggerCol is the screen column of the per-row menu trigger glyph.
func (m Model) triggerCol() int {
	if m.width < 4 {
		return 0
	}
	return m.width - 3
}

func (m Model) status(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return statusUpdateMsg{text: text, isErr: isErr}
	}
}

// View renders the TUI.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var base string
	switch m.mode {
	case ModeDetail:
		base = m.viewDetail()
	default:
		base = m.viewList()
	}

	if m.menu.IsOpen() {
		return m.menu.Overlay(base)
	}
	return base
}

func (m Model) viewList() string {
	var b strings.Builder

	b.WriteString(m.theme.Styles.Title.Render("Records"))
	b.WriteString("\n")
	b.WriteString(m.theme.Styles.Divider.Render(
		fmt.Sprintf("  %-28s %-10s %10s  %s", "NAME", "KIND", "SIZE", "MODIFIED")))
	b.WriteString("\n")

	for i, r := range m.records {
		b.WriteString(m.renderRow(i, r))
		b.WriteString("\n")
	}
	if len(m.records) == 0 {
		b.WriteString(m.theme.Styles.LabelDisabled.Render("  no records"))
		b.WriteString("\n")
	}

	// Pad so the footer sits on the last line.
	used := headerRows + max(len(m.records), 1)
	for i := used; i < m.height-1; i++ {
		b.WriteString("\n")
	}

	b.WriteString(m.footer())
	return b.String()
}

func (m Model) renderRow(i int, r Record) string {
	name := r.Name
	if len(name) > 28 {
		name = name[:27] + "…"
	}
	line := fmt.Sprintf("%-28s %-10s %10s  %s", name, r.Kind, r.HumanSize(), r.Age())

	// Reserve room for the trigger glyph at the right edge.
	contentWidth := m.width - 4
	if contentWidth > 0 {
		line = ansi.Truncate(line, contentWidth-2, "…")
		if pad := contentWidth - 2 - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
	}

	trigger := m.menu.TriggerView()
	if i == m.cursor {
		return m.theme.Styles.Cursor.Render("> ") + m.theme.Styles.LabelSelected.Render(line) + "  " + trigger
	}
	return "  " + m.theme.Styles.Label.Render(line) + "  " + trigger
}

func (m Model) viewDetail() string {
	header := m.theme.Styles.Title.Render("Record Detail")
	return header + "\n" + m.viewport.View() + "\n" + m.footer()
}

func (m Model) renderDetail(r Record) string {
	label := m.theme.Styles.Divider

	var b strings.Builder
	b.WriteString(m.theme.Styles.Title.Render(r.Name))
	b.WriteString("\n\n")
	b.WriteString(label.Render("ID: ") + r.ID.String() + "\n")
	b.WriteString(label.Render("Kind: ") + r.Kind + "\n")
	b.WriteString(label.Render("Size: ") + r.HumanSize() + "\n")
	b.WriteString(label.Render("Modified: ") + r.Age() + "\n")
	if r.Protected {
		b.WriteString(label.Render("Protected: ") + "yes\n")
	}
	return b.String()
}

func (m Model) footer() string {
	if m.statusMsg != "" {
		style := m.theme.Styles.Label
		if m.statusErr {
			style = m.theme.Styles.Title
		}
		return style.Render(m.statusMsg)
	}
	return m.help.View(m.keys)
}

// RunOptions configures the TUI.
type RunOptions struct {
	Config *config.Config
	Logger *slog.Logger
}

// Run starts the record browser.
func Run(opts RunOptions) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	th, err := theme.Load(cfg.Theme.Name, logger)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}

	var notifier *notify.Notifier
	if cfg.Notify.Enabled {
		notifier = notify.New(cfg.Notify.AppName, logger)
	}

	var menuDef []byte
	if cfg.TUI.MenuFile != "" {
		menuDef, err = os.ReadFile(cfg.TUI.MenuFile)
		if err != nil {
			return fmt.Errorf("read menu definition: %w", err)
		}
	}

	m := New(cfg, th, notifier, menuDef, logger)

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.TUI.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, progOpts...)

	var watcher *theme.Watcher
	if cfg.Theme.HotReload {
		watcher, err = theme.NewWatcher(th, func(t *theme.Theme) {
			p.Send(themeReloadedMsg{theme: t})
		}, logger)
		if err != nil {
			logger.Warn("theme watcher unavailable", "error", err)
		} else if err := watcher.Start(); err != nil {
			logger.Warn("theme watcher failed to start", "error", err)
		}
	}

	_, err = p.Run()

	if watcher != nil {
		if stopErr := watcher.Stop(); stopErr != nil {
			logger.Warn("theme watcher stop failed", "error", stopErr)
		}
	}

	return err
}
