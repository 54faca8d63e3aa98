package tui

import "github.com/charmbracelet/lipgloss"

var (
	frameStyle   = lipgloss.NewStyle().Padding(1, 2)
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	labelStyle   = lipgloss.NewStyle().Faint(true)
	pinnedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	helpStyle    = lipgloss.NewStyle().Faint(true).MarginTop(1)
)
