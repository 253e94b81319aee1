// Package components provides the lipgloss components the terminal demo
// draws: a Button used as the anchor, a Menu used as the popper body, and a
// Badge for the status bar.
//
// Components follow a builder style and render to strings:
//
//	anchor := components.NewButton("Options").WithCaret(true).WithActive(open)
//	menu := components.NewMenu("Open", "Save").WithSelected(0).WithWidth(result.Width)
//	width, height := components.Size(menu)
//
// Colours come from a Palette passed explicitly to ViewWithPalette; View
// uses DefaultPalette. Extra styling is layered with StyleFunc appliers:
//
//	badge := components.MutedBadge("bottom-start").WithAppliers(components.Bold())
package components
