package menu

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jmylchreest/menutui/internal/action"
	"github.com/jmylchreest/menutui/internal/theme"
)

// rowKind discriminates the flattened render rows.
type rowKind int

const (
	rowAction rowKind = iota
	rowDivider
)

// row is one rendered line of the open menu.
type row struct {
	kind rowKind
	act  action.Action
}

// flatten turns the grouped menu into render rows: empty groups vanish
// entirely and exactly one divider sits between consecutive non-empty
// groups, never after the last.
func flatten(m action.Menu) []row {
	var rows []row
	for _, g := range m {
		if g.Empty() {
			continue
		}
		if len(rows) > 0 {
			rows = append(rows, row{kind: rowDivider})
		}
		for _, a := range g.Actions {
			rows = append(rows, row{kind: rowAction, act: a})
		}
	}
	return rows
}

const (
	pointer = "> "
	padding = "  "
)

// Render produces the overlay content for a menu. It is a pure function of
// its inputs: the same menu, theme and cursor always yield the same
// string. cursor is an index into the flattened rows; pass -1 for none.
func Render(m action.Menu, t *theme.Theme, cursor int) string {
	return renderRows(flatten(m), t, cursor)
}

func renderRows(rows []row, t *theme.Theme, cursor int) string {
	if len(rows) == 0 {
		return ""
	}

	// Measure inner width from plain content: marker, icon glyph, space,
	// label. Icon glyphs come from the theme and may be double-width.
	innerWidth := 0
	for _, r := range rows {
		if r.kind != rowAction {
			continue
		}
		w := len(pointer) + ansi.StringWidth(t.Icon(r.act.Icon)) + 1 + ansi.StringWidth(r.act.Label)
		if w > innerWidth {
			innerWidth = w
		}
	}

	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		if r.kind == rowDivider {
			lines = append(lines, t.Styles.Divider.Render(strings.Repeat("─", innerWidth)))
			continue
		}

		glyph := t.Icon(r.act.Icon)
		var b strings.Builder
		switch {
		case r.act.Disabled:
			marker := padding
			if i == cursor {
				marker = pointer
			}
			b.WriteString(t.Styles.LabelDisabled.Render(marker))
			b.WriteString(t.Styles.IconDisabled.Render(glyph))
			b.WriteString(" ")
			b.WriteString(t.Styles.LabelDisabled.Render(r.act.Label))
		case i == cursor:
			b.WriteString(t.Styles.Cursor.Render(pointer))
			b.WriteString(t.Styles.Icon.Render(glyph))
			b.WriteString(" ")
			b.WriteString(t.Styles.LabelSelected.Render(r.act.Label))
		default:
			b.WriteString(padding)
			b.WriteString(t.Styles.Icon.Render(glyph))
			b.WriteString(" ")
			b.WriteString(t.Styles.Label.Render(r.act.Label))
		}

		line := b.String()
		if gap := innerWidth - ansi.StringWidth(line); gap > 0 {
			line += strings.Repeat(" ", gap)
		}
		lines = append(lines, line)
	}

	return t.Styles.Border.Render(strings.Join(lines, "\n"))
}
