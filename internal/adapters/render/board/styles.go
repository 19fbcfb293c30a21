package board

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	column     lipgloss.Style
	columnHead lipgloss.Style
	card       lipgloss.Style
	cardTitle  lipgloss.Style
	cardMeta   lipgloss.Style
	empty      lipgloss.Style
	message    lipgloss.Style
	response   lipgloss.Style
	source     lipgloss.Style
	fileName   lipgloss.Style
	fileMeta   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		column:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(28),
		columnHead: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		card:       lipgloss.NewStyle().MarginTop(1),
		cardTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		cardMeta:   lipgloss.NewStyle().Faint(true),
		empty:      lipgloss.NewStyle().Faint(true),
		message:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		response:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		source:     lipgloss.NewStyle().Faint(true),
		fileName:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		fileMeta:   lipgloss.NewStyle().Faint(true),
	}
}
