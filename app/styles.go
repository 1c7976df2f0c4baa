package app

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Accent  = lipgloss.Color("#E8794A")
	Leaf    = lipgloss.Color("#8FBF6A")
	Danger  = lipgloss.Color("#E5534B")
	Link    = lipgloss.Color("#6CB6FF")
	Muted   = lipgloss.Color("#768390")
	Surface = lipgloss.Color("#F0E6D8")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(Surface)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1)

	ActiveCardStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(Accent).
			Padding(0, 1)

	VideoTagStyle = lipgloss.NewStyle().
			Foreground(Leaf)

	SourceTagStyle = lipgloss.NewStyle().
			Foreground(Link)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1)

	FocusedInputStyle = InputStyle.
				BorderForeground(Accent)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)
)
