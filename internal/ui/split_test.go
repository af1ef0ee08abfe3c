package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splitpane/internal/layout"
)

func newTestSplit(t *testing.T, dir layout.Direction) (*layout.Group, *SplitLayout) {
	t.Helper()
	a, b := 20.0, 50.0
	g, err := layout.NewGroup("main", dir,
		layout.Panel{ID: "left", Order: 0, MinSize: 10, MaxSize: 100, Collapsible: true, DefaultSize: &a},
		layout.Panel{ID: "mid", Order: 1, MinSize: 30, MaxSize: 100, DefaultSize: &b},
		layout.Panel{ID: "right", Order: 2, MinSize: 15, MaxSize: 100, Collapsible: true},
	)
	require.NoError(t, err)
	views := map[string]View{
		"left":  NewPaneView("left", "Left", ""),
		"mid":   NewPaneView("mid", "Mid", ""),
		"right": NewPaneView("right", "Right", ""),
	}
	return g, NewSplitLayout(g, views)
}

func TestSplitLayout_RegistersDividers(t *testing.T) {
	g, s := newTestSplit(t, layout.Horizontal)

	assert.Equal(t, []string{"divider-0", "divider-1"}, s.FocusOrder())
	assert.Equal(t, []string{"divider-0", "divider-1"}, g.Handles().Handles("main"))

	before, after, ok := layout.ResizeHandlePanelIDs(g.Handles(), "main", "divider-1", g.Panels())
	require.True(t, ok)
	assert.Equal(t, "mid", before)
	assert.Equal(t, "right", after)
}

func TestSplitLayout_ReusesExistingHandles(t *testing.T) {
	g, _ := newTestSplit(t, layout.Horizontal)
	again := NewSplitLayout(g, nil)

	assert.Equal(t, []string{"divider-0", "divider-1"}, again.FocusOrder())
	assert.Len(t, g.Handles().Handles("main"), 2)
}

func TestSplitLayout_PanelBounds(t *testing.T) {
	_, s := newTestSplit(t, layout.Horizontal)
	panels := s.Panels()
	require.Len(t, panels, 3)

	x, y, w, h := panels[1].Bounds(83, 10)
	assert.Equal(t, []int{17, 0, 41, 10}, []int{x, y, w, h})
	assert.Equal(t, "mid", panels[1].ID)
}

func TestSplitLayout_HitAndDelta(t *testing.T) {
	_, s := newTestSplit(t, layout.Horizontal)
	hit := s.HitFunc(83, 10)

	id, ok := hit(58, 4)
	assert.True(t, ok)
	assert.Equal(t, "divider-1", id)

	_, ok = hit(30, 4)
	assert.False(t, ok)

	assert.InDelta(t, 100.0, s.PointerDelta(81, 83, 10), 1e-9)
	assert.InDelta(t, 100.0/81*8, s.PointerDelta(8, 83, 10), 1e-9)
}

func TestSplitLayout_RenderFillsArea(t *testing.T) {
	for _, dir := range []layout.Direction{layout.Horizontal, layout.Vertical} {
		t.Run(dir.String(), func(t *testing.T) {
			_, s := newTestSplit(t, dir)
			out := s.Render(60, 20, "divider-0", "")

			assert.Equal(t, 20, lipgloss.Height(out))
			assert.Equal(t, 60, lipgloss.Width(out))
			assert.Contains(t, out, "Left")
			assert.Contains(t, out, "Mid")
		})
	}
}

func TestSplitLayout_RenderSkipsCollapsedPanel(t *testing.T) {
	g, s := newTestSplit(t, layout.Horizontal)
	require.True(t, g.CollapsePanel(t.Context(), "left"))

	out := s.Render(60, 10, "", "")
	assert.NotContains(t, out, "Left")
	assert.True(t, strings.HasPrefix(stripANSI(out), "│"), "divider should sit at the left edge")
}

// stripANSI removes SGR escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && r == 'm':
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestSplitLayout_DragDeltaAtScreenEdge(t *testing.T) {
	_, s := newTestSplit(t, layout.Horizontal)

	assert.Equal(t, -100.0, s.DragDelta(-16, 0, 4, 83, 10))
	assert.Equal(t, 100.0, s.DragDelta(5, 82, 4, 83, 10))
	assert.InDelta(t, 800.0/81, s.DragDelta(8, 24, 4, 83, 10), 1e-9)
	assert.Zero(t, s.DragDelta(0, 0, 4, 83, 10), "no movement at the edge is still no movement")
}
