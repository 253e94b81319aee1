package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	pageStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)
