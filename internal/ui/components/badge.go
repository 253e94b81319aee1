package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Badge is a small status indicator component.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantAccent
	BadgeVariantMuted
)

// NewBadge creates a new badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		variant:       BadgeVariantDefault,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithPalette(DefaultPalette())
}

// ViewWithPalette renders the badge using palette.
func (b *Badge) ViewWithPalette(palette Palette) string {
	return b.computeStyle(palette).Render(b.text)
}

func (b *Badge) computeStyle(palette Palette) lipgloss.Style {
	style := b.ComputeStyle(palette).Padding(0, 1)

	switch b.variant {
	case BadgeVariantAccent:
		return style.Background(palette.Accent).Foreground(palette.OnColor)
	case BadgeVariantMuted:
		return style.Foreground(palette.Muted)
	default:
		return style.Background(palette.Surface)
	}
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithAppliers applies palette-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// SetText updates the badge text.
func (b *Badge) SetText(text string) *Badge {
	b.text = text
	return b
}

// AccentBadge creates an accent badge.
func AccentBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantAccent)
}

// MutedBadge creates a muted badge.
func MutedBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantMuted)
}
