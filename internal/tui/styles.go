package tui

import "github.com/charmbracelet/lipgloss"

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	docStyle = lipgloss.NewStyle().Margin(1, 2)

	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	modeStyles = map[string]lipgloss.Style{
		"focus":      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("204")),
		"shortBreak": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		"longBreak":  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	}

	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)
