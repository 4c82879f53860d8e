package tui

import "github.com/charmbracelet/lipgloss"

// Colors follow the SDL default theme.
var (
	titleBarColor  = lipgloss.Color("#0000FF")
	listItemColor  = lipgloss.Color("#3700B3")
	highlightColor = lipgloss.Color("#FFFFFF")
	hintColor      = lipgloss.Color("#B4B4B4")
)

type styles struct {
	title   lipgloss.Style
	search  lipgloss.Style
	hint    lipgloss.Style
	item    lipgloss.Style
	focused lipgloss.Style
	detail  lipgloss.Style
	empty   lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(highlightColor).
			Background(titleBarColor).
			Padding(0, 1),
		search: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(hintColor).
			Padding(0, 1),
		hint: lipgloss.NewStyle().Foreground(hintColor),
		item: lipgloss.NewStyle().
			Foreground(highlightColor).
			Background(listItemColor).
			Padding(0, 1),
		focused: lipgloss.NewStyle().
			Bold(true).
			Foreground(listItemColor).
			Background(highlightColor).
			Padding(0, 1),
		detail: lipgloss.NewStyle().Bold(true),
		empty:  lipgloss.NewStyle().Italic(true).Foreground(hintColor),
	}
}
