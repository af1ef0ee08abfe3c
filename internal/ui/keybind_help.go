package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel returns a help.Model with the shared key/description colors.
func newHelpModel() help.Model {
	m := help.New()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight)).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	m.Styles.ShortKey = keyStyle
	m.Styles.ShortDesc = descStyle
	m.Styles.ShortSeparator = descStyle
	m.Styles.FullKey = keyStyle
	m.Styles.FullDesc = descStyle
	m.Styles.FullSeparator = descStyle
	return m
}

// RenderKeybindHelp produces the transient help bar shown after SPC.
// When keyHandler is part-way through a sequence, shows next-level hints.
func RenderKeybindHelp(keyHandler *KeyHandler) string {
	if keyHandler == nil {
		return ""
	}
	currentSeq := keyHandler.CurrentSeq()
	bindings := hintBindings(keyHandler.Registry.LeaderHints(currentSeq, keyHandler.Mode))
	if len(bindings) == 0 {
		return ""
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)

	prefix := "SPC"
	if currentSeq != "" {
		prefix = currentSeq
	}
	content := Styles.Muted.Render(prefix) + " " + newHelpModel().ShortHelpView(bindings)
	return boxStyle.Render(content)
}
