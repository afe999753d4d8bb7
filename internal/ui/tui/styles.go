package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	cursorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	doneStyle        = lipgloss.NewStyle().Faint(true)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)
