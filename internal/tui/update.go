package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/popper/internal/popper"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.s.resize(msg.Width, max(msg.Height-chromeRows, 1))

	case frameMsg:
		m.ticking = false
		m.s.frames.Flush()
		m.frames++

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}

	if cmd != nil {
		return m, cmd
	}
	next := m.nextFrame()
	return m, next
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := m.s

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		s.engine.Dispose()
		return tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		s.toggle()
	case key.Matches(msg, m.keys.Escape):
		s.doc.KeyDown(popper.KeyEscape)
	case key.Matches(msg, m.keys.Up):
		if s.open {
			s.moveSelection(-1)
		} else {
			s.scrollBy(-1)
		}
	case key.Matches(msg, m.keys.Down):
		if s.open {
			s.moveSelection(1)
		} else {
			s.scrollBy(1)
		}
	case key.Matches(msg, m.keys.PageUp):
		s.scrollBy(-m.pageStep())
	case key.Matches(msg, m.keys.PageDown):
		s.scrollBy(m.pageStep())
	case key.Matches(msg, m.keys.Placement):
		s.cyclePlacement()
	case key.Matches(msg, m.keys.Width):
		s.cycleWidth()
	case key.Matches(msg, m.keys.Grow):
		s.growAnchor(1)
	case key.Matches(msg, m.keys.Shrink):
		s.growAnchor(-1)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		s.doc.KeyDown(msg.String())
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.s.scrollBy(-1)
		return
	case tea.MouseButtonWheelDown:
		m.s.scrollBy(1)
		return
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	// Row 0 is the header.
	if msg.Y < 1 || msg.Y > m.height-chromeRows {
		return
	}
	m.s.click(msg.X, msg.Y-1)
}

func (m *Model) pageStep() int {
	return max(int(m.s.doc.Viewport().Height)/2, 1)
}
