package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestPaneView_CallbacksTrackPanel(t *testing.T) {
	v := NewPaneView("side", "", "")
	assert.Equal(t, "side", v.Title, "title falls back to id")

	cb := v.Callbacks()
	cb.OnResize(42.5)
	cb.OnCollapse(true)

	assert.Equal(t, 42.5, v.Size)
	assert.True(t, v.Collapsed)
}

func TestPaneView_ViewIsExactlySized(t *testing.T) {
	v := NewPaneView("doc", "Document", "# Heading\n\nSome *markdown* text that is long enough to wrap at narrow widths.")
	v.Size = 33.3
	v.SetSize(24, 8)

	out := v.View()
	assert.Equal(t, 8, lipgloss.Height(out))
	assert.Equal(t, 24, lipgloss.Width(out))
	assert.Contains(t, stripANSI(out), "33.3%")
}

func TestPaneView_CollapsedShowsTitleOnly(t *testing.T) {
	v := NewPaneView("doc", "Document", "# Heading")
	v.Collapsed = true
	v.SetSize(12, 3)

	out := stripANSI(v.View())
	assert.Contains(t, out, "Document")
	assert.NotContains(t, out, "Heading")
}

func TestPaneView_ZeroSizeRendersNothing(t *testing.T) {
	v := NewPaneView("doc", "Document", "text")
	assert.Empty(t, v.View())
}

func TestPaneView_SetContentInvalidatesCache(t *testing.T) {
	v := NewPaneView("doc", "Document", "first")
	v.SetSize(30, 6)
	assert.Contains(t, stripANSI(v.View()), "first")

	v.SetContent("Renamed", "second")
	out := stripANSI(v.View())
	assert.Contains(t, out, "second")
	assert.Contains(t, out, "Renamed")
	assert.NotContains(t, out, "first")
}
