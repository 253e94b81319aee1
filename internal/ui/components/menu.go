package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/popper/internal/popper"
)

// Menu is a bordered list of items, the popper body of a dropdown.
type Menu struct {
	BaseComponent
	items    []string
	selected int
	width    popper.Width
	maxWidth int
}

// NewMenu creates a menu with no selection and an unconstrained width.
func NewMenu(items ...string) *Menu {
	return &Menu{
		BaseComponent: NewBaseComponent(),
		items:         append([]string(nil), items...),
		selected:      -1,
		width:         popper.Unconstrained(),
	}
}

// View renders the menu with the default palette.
func (m *Menu) View() string {
	return m.ViewWithPalette(DefaultPalette())
}

// ViewWithPalette renders the menu using palette.
//
// A pixel width fixes the outer width in cells, border included. The
// max-content hint sizes the menu to its longest item. Unconstrained menus
// also size to content but respect the MaxWidth cap.
func (m *Menu) ViewWithPalette(palette Palette) string {
	itemStyle := lipgloss.NewStyle().Padding(0, 1)
	selectedStyle := itemStyle.Background(palette.Accent).Foreground(palette.OnColor).Bold(true)

	inner := 0
	for _, item := range m.items {
		inner = max(inner, lipgloss.Width(item)+2)
	}
	if px, ok := m.width.Pixels(); ok {
		inner = int(px) - 2
	} else if m.width.IsUnconstrained() && m.maxWidth > 0 {
		inner = min(inner, m.maxWidth-2)
	}
	// Room for the padding and one cell of text.
	inner = max(inner, 3)

	rows := make([]string, 0, len(m.items))
	for i, item := range m.items {
		style := itemStyle
		if i == m.selected {
			style = selectedStyle
		}
		rows = append(rows, style.Width(inner).MaxWidth(inner).Render(item))
	}

	box := m.ComputeStyle(palette).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.Border)
	return box.Render(strings.Join(rows, "\n"))
}

// WithWidth applies a resolved popper width.
func (m *Menu) WithWidth(width popper.Width) *Menu {
	m.width = width
	return m
}

// WithMaxWidth caps the outer width of an unconstrained menu. Zero removes
// the cap.
func (m *Menu) WithMaxWidth(cells int) *Menu {
	m.maxWidth = cells
	return m
}

// WithSelected highlights the item at index; -1 clears the selection.
func (m *Menu) WithSelected(index int) *Menu {
	if index < -1 || index >= len(m.items) {
		index = -1
	}
	m.selected = index
	return m
}

// WithAppliers applies palette-based style modifiers.
func (m *Menu) WithAppliers(appliers ...StyleFunc) *Menu {
	m.AddAppliers(appliers...)
	return m
}

// Items returns a copy of the menu items.
func (m *Menu) Items() []string {
	return append([]string(nil), m.items...)
}

// Selected returns the highlighted index or -1.
func (m *Menu) Selected() int {
	return m.selected
}

// Width returns the width the menu renders with.
func (m *Menu) Width() popper.Width {
	return m.width
}
