package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Button renders a single-row trigger. In the demo it is the anchor element
// the popper is placed against.
type Button struct {
	BaseComponent
	label    string
	caret    bool
	active   bool
	disabled bool
}

// NewButton creates a new button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
	}
}

// View renders the button with the default palette.
func (b *Button) View() string {
	return b.ViewWithPalette(DefaultPalette())
}

// ViewWithPalette renders the button using palette.
func (b *Button) ViewWithPalette(palette Palette) string {
	label := b.label
	if b.caret {
		if b.active {
			label += " ▴"
		} else {
			label += " ▾"
		}
	}
	return b.computeStyle(palette).Render(label)
}

func (b *Button) computeStyle(palette Palette) lipgloss.Style {
	style := b.ComputeStyle(palette).Padding(0, 1)

	switch {
	case b.disabled:
		style = style.Foreground(palette.Muted).Faint(true)
	case b.active:
		style = style.Background(palette.Accent).Foreground(palette.OnColor).Bold(true)
	default:
		style = style.Background(palette.Surface).Foreground(palette.Accent)
	}

	return style
}

// WithCaret shows a disclosure caret that flips while active.
func (b *Button) WithCaret(caret bool) *Button {
	b.caret = caret
	return b
}

// WithActive sets the active (open) state.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithStyle sets the button style.
func (b *Button) WithStyle(style lipgloss.Style) *Button {
	b.SetStyle(style)
	return b
}

// WithAppliers applies palette-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// SetLabel updates the button label.
func (b *Button) SetLabel(label string) *Button {
	b.label = label
	return b
}

// IsActive returns true if the button is active.
func (b *Button) IsActive() bool {
	return b.active
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}
