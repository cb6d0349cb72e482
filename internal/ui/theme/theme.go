// Package theme centralizes the terminal color palette and text styles.
package theme

import "charm.land/lipgloss/v2"

// Color palette — kid-friendly, bright but not garish
var (
	Primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	Accent  = lipgloss.Color("#F97316") // Orange
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Question = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)
