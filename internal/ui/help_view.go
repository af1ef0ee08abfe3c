package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpView is the full-screen key reference opened with "?".
type HelpView struct {
	keys   help.KeyMap
	help   help.Model
	width  int
	height int
}

var _ View = (*HelpView)(nil)

// NewHelpView creates a help view over keys.
func NewHelpView(keys help.KeyMap) *HelpView {
	h := newHelpModel()
	h.ShowAll = true
	return &HelpView{keys: keys, help: h}
}

// SetSize implements Sizer.
func (v *HelpView) SetSize(width, height int) {
	v.width, v.height = width, height
	v.help.Width = width
}

// Init implements View.
func (v *HelpView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *HelpView) Update(msg tea.Msg) (View, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		v.SetSize(ws.Width, ws.Height)
	}
	return v, nil
}

// View implements View.
func (v *HelpView) View() string {
	body := Styles.Title.Render("Keys") + "\n\n" +
		v.help.View(v.keys) + "\n\n" +
		Styles.Hint.Render("Drag a divider with the mouse to resize. esc or ? closes this help.")
	box := Styles.Box.Render(body)
	if v.width <= 0 || v.height <= 0 {
		return box
	}
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, box)
}
