package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - header, focused borders
	ColorHighlight = "205" // Magenta - send button, help keys
	ColorDanger    = "196" // Red - rejected sends
	ColorMuted     = "241" // Gray - hints, blurred borders
	ColorText      = "252" // Light gray - message text
	ColorTint      = "236" // Dark gray - alternating row background
)

// Styles contains the shared style definitions of the chat screen.
var Styles = struct {
	Header lipgloss.Style // Top bar with the platform label

	RowTinted lipgloss.Style // Even message rows
	RowPlain  lipgloss.Style // Odd message rows
	Empty     lipgloss.Style // Empty list hint

	InputFocused lipgloss.Style // Input box when focused
	InputBlurred lipgloss.Style // Input box when the list has focus
	SendButton   lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	Warning  lipgloss.Style
}{
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	RowTinted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorTint)).
		Padding(0, 1),
	RowPlain: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true).
		Padding(0, 1),
	InputFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	InputBlurred: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	SendButton: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	HelpKey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	HelpDesc: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Warning: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
}
