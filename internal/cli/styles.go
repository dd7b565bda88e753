package cli

import "github.com/charmbracelet/lipgloss"

var (
	styleTitle    = lipgloss.NewStyle().Bold(true)
	styleDim      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	styleError    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styleHeader   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleWeekend  = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	styleBar      = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	styleProgress = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	styleToday    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styleCursor   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230"))
	styleGrabbed  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
)
