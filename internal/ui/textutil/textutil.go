// Package textutil provides unicode- and ANSI-aware text helpers for fitting
// rendered content into panes.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns a plain string occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens a plain string to maxWidth columns, ending in an ellipsis
// when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// TruncateStyled is Truncate for strings containing ANSI escape codes.
func TruncateStyled(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	return truncate.StringWithTail(s, uint(maxWidth), TruncateEllipsis)
}

// PadRightStyled pads s with spaces to exactly width columns, truncating if wider.
func PadRightStyled(s string, width int) string {
	s = TruncateStyled(s, width)
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// FitBlock cuts or pads a multi-line block to exactly width x height cells.
func FitBlock(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	out := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range out {
		if i < len(lines) {
			out[i] = PadRightStyled(lines[i], width)
		} else {
			out[i] = blank
		}
	}
	return strings.Join(out, "\n")
}
