// Package overlay composites a floating block of styled text on top of a
// base view and decides where, relative to an anchor, that block goes.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Composite draws over on top of base at character position (x, y). Both
// strings are treated as line-based grids; base defines the canvas size.
// Styled (ANSI) content is handled width-aware on both sides of the seam.
func Composite(base, over string, x, y, width int) string {
	baseLines := splitLines(base)
	overLines := splitLines(over)
	overWidth := MaxLineWidth(overLines)
	for i, line := range overLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		leftWidth := ansi.StringWidth(left)
		if leftWidth < x {
			left += strings.Repeat(" ", x-leftWidth)
		}

		overLine := padRight(line, overWidth)
		pos := x + ansi.StringWidth(overLine)
		right := ""
		if width > 0 {
			right = ansi.TruncateLeft(target, pos, "")
			rightWidth := ansi.StringWidth(right)
			gap := width - pos - rightWidth
			if gap > 0 {
				right = strings.Repeat(" ", gap) + right
			}
		}

		baseLines[row] = left + overLine + right
	}
	return strings.Join(baseLines, "\n")
}

// splitLines splits a string on newlines, returning at least one element.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// MaxLineWidth returns the visual width of the widest line.
func MaxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

// Size measures the visual width and height of a rendered block.
func Size(s string) (width, height int) {
	lines := splitLines(s)
	return MaxLineWidth(lines), len(lines)
}

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
