package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Renderable is anything that renders to a terminal string.
type Renderable interface {
	View() string
}

// Palette is the small set of colours the components draw with.
type Palette struct {
	Accent  lipgloss.AdaptiveColor
	OnColor lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Border  lipgloss.AdaptiveColor
	Surface lipgloss.AdaptiveColor
}

// DefaultPalette returns the palette used by View.
func DefaultPalette() Palette {
	return Palette{
		Accent:  lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"},
		OnColor: lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#0f172a"},
		Muted:   lipgloss.AdaptiveColor{Light: "#64748b", Dark: "#94a3b8"},
		Border:  lipgloss.AdaptiveColor{Light: "#cbd5e1", Dark: "#475569"},
		Surface: lipgloss.AdaptiveColor{Light: "#f8fafc", Dark: "#1e293b"},
	}
}

// StyleFunc transforms a style using palette data.
type StyleFunc func(lipgloss.Style, Palette) lipgloss.Style

// BaseComponent provides the raw style and the palette-aware appliers shared
// by every component. Embed it in component structs.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle returns the raw style with every applier run in order.
func (b *BaseComponent) ComputeStyle(palette Palette) lipgloss.Style {
	style := b.style
	for _, fn := range b.appliers {
		style = fn(style, palette)
	}
	return style
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// AddAppliers appends style appliers.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	next := make([]StyleFunc, len(b.appliers), len(b.appliers)+len(appliers))
	copy(next, b.appliers)
	b.appliers = append(next, appliers...)
}

// Foreground sets the text colour from the palette.
func Foreground(pick func(Palette) lipgloss.AdaptiveColor) StyleFunc {
	return func(style lipgloss.Style, palette Palette) lipgloss.Style {
		return style.Foreground(pick(palette))
	}
}

// Bold makes the text bold.
func Bold() StyleFunc {
	return func(style lipgloss.Style, _ Palette) lipgloss.Style {
		return style.Bold(true)
	}
}

// Size returns the rendered cell width and row count of r.
func Size(r Renderable) (width, height int) {
	out := r.View()
	return lipgloss.Width(out), lipgloss.Height(out)
}
