package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for the focused divider and key hints
	ColorDanger    = "196" // Red - for reload errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "238" // Darker gray - for idle dividers
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title     lipgloss.Style // Pane title
	Collapsed lipgloss.Style // Title of a collapsed pane
	Percent   lipgloss.Style // Size readout next to a pane title

	Divider        lipgloss.Style // Idle divider
	DividerFocused lipgloss.Style // Divider with keyboard focus
	DividerActive  lipgloss.Style // Divider being dragged

	Box    lipgloss.Style // Help overlay box
	Muted  lipgloss.Style
	Hint   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Collapsed: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Percent: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Divider: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	DividerFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	DividerActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
}
