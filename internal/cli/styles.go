package cli

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle renders section headings in list and dashboard output.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	// LabelStyle renders row labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)

	// ValueStyle renders emphasized values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)
)
