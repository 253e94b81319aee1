package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/popper/internal/ui/components"
)

var filler = []string{
	"The anchor stays put in the document while the page scrolls.",
	"Scroll with pgup/pgdn or the mouse wheel; the menu follows.",
	"Click anywhere outside the menu, or press esc, to dismiss it.",
	"Press p to cycle the twelve placements and w for width modes.",
	"",
}

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	rows := max(m.height-chromeRows, 1)
	lines := make([]string, 0, rows+chromeRows)
	lines = append(lines, m.header())
	lines = append(lines, m.page(rows)...)
	lines = append(lines, m.help.View(m.keys))

	return strings.Join(lines, "\n")
}

func (m Model) header() string {
	s := m.s
	opts := s.engine.Options()

	state := components.MutedBadge("closed")
	if s.open {
		state = components.AccentBadge("open")
	}
	parts := []string{
		titleStyle.Render("popper"),
		components.NewBadge(string(opts.Placement)).View(),
		components.NewBadge("width " + string(opts.WidthMode)).View(),
		state.View(),
		statusStyle.Render(fmt.Sprintf("z %d  frame %d", opts.ZIndex, m.frames)),
	}
	if s.chosen != "" {
		parts = append(parts, statusStyle.Render("chose "+s.chosen))
	}
	return ansi.Truncate(strings.Join(parts, " "), m.width, "…")
}

// page renders the visible document rows with the anchor and, once
// positioned, the menu composited on top.
func (m Model) page(rows int) []string {
	s := m.s
	scroll := int(s.doc.ScrollOffset().Y)

	lines := make([]string, rows)
	for i := range lines {
		docRow := scroll + i
		if docRow >= s.pageRows() {
			continue
		}
		gutter := gutterStyle.Render(fmt.Sprintf("%4d │ ", docRow+1))
		lines[i] = gutter + pageStyle.Render(filler[docRow%len(filler)])
	}

	m.composite(lines, scroll, s.anchorView(), s.anchor.Rect().X, s.anchor.Rect().Y)

	if s.open && s.positioned {
		m.composite(lines, scroll, s.menu().View(), s.result.Left, s.result.Top)
	}

	for i, line := range lines {
		lines[i] = ansi.Truncate(line, m.width, "")
	}
	return lines
}

// composite draws block at document cell (x, y) over the visible lines.
func (m Model) composite(lines []string, scroll int, block string, x, y float64) {
	col := int(x)
	top := int(y) - scroll
	for i, row := range strings.Split(block, "\n") {
		target := top + i
		if target < 0 || target >= len(lines) {
			continue
		}
		lines[target] = overlay(lines[target], row, col)
	}
}

// overlay replaces the cells of base starting at col with top. Both may
// contain ANSI sequences.
func overlay(base, top string, col int) string {
	if col < 0 {
		top = ansi.TruncateLeft(top, -col, "")
		col = 0
	}
	if w := ansi.StringWidth(base); w < col {
		base += strings.Repeat(" ", col-w)
	}
	left := ansi.Truncate(base, col, "")
	right := ansi.TruncateLeft(base, col+lipgloss.Width(top), "")
	return left + top + right
}
