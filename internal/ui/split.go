package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"splitpane/internal/layout"
)

// SplitLayout lays a group's panels out side by side (or stacked) with a
// one-cell divider between neighbours. Divider k is registered with the group
// as handle layout.DividerID(k).
type SplitLayout struct {
	group   *layout.Group
	views   map[string]View
	handles []string
}

var _ Layout = (*SplitLayout)(nil)

// NewSplitLayout registers one handle per divider with g and hosts views, keyed by panel id.
func NewSplitLayout(g *layout.Group, views map[string]View) *SplitLayout {
	return &SplitLayout{group: g, views: views, handles: g.RegisterDividers()}
}

// Group returns the group being laid out.
func (s *SplitLayout) Group() *layout.Group { return s.group }

// Geometry places the group's current sizes in a width x height area.
func (s *SplitLayout) Geometry(width, height int) Geometry {
	return ComputeGeometry(s.group.Direction(), s.group.Sizes(), width, height)
}

// Panels implements Layout.
func (s *SplitLayout) Panels() []Panel {
	panels := s.group.Panels()
	out := make([]Panel, len(panels))
	for i, p := range panels {
		idx := i
		out[i] = Panel{
			ID:   p.ID,
			View: s.views[p.ID],
			Bounds: func(width, height int) (int, int, int, int) {
				g := s.Geometry(width, height)
				if idx >= len(g.Panels) {
					return 0, 0, 0, 0
				}
				r := g.Panels[idx]
				return r.X, r.Y, r.W, r.H
			},
		}
	}
	return out
}

// FocusOrder implements Layout. Only dividers take keyboard focus.
func (s *SplitLayout) FocusOrder() []string {
	return s.handles
}

// HitFunc returns a HitFunc resolving cells to divider ids for a width x height area.
func (s *SplitLayout) HitFunc(width, height int) HitFunc {
	g := s.Geometry(width, height)
	return func(x, y int) (string, bool) {
		k, ok := g.DividerAt(x, y)
		if !ok || k >= len(s.handles) {
			return "", false
		}
		return s.handles[k], true
	}
}

// PointerDelta converts a drag offset in cells to a percentage delta for a
// width x height area.
func (s *SplitLayout) PointerDelta(offset, width, height int) float64 {
	return layout.PointerDelta(offset, s.Geometry(width, height).Span)
}

// DragDelta is PointerDelta for a pointer currently at cell (x, y). A pointer on
// the first or last cell along the axis counts as pushed all the way, since the
// terminal reports nothing past the edge of the screen.
func (s *SplitLayout) DragDelta(offset, x, y, width, height int) float64 {
	dir := s.group.Direction()
	length := width
	if dir == layout.Vertical {
		length = height
	}
	switch pos := axisPos(dir, x, y); {
	case offset < 0 && pos <= 0:
		return -100
	case offset > 0 && pos >= length-1:
		return 100
	}
	return s.PointerDelta(offset, width, height)
}

// Render draws every panel and divider into a width x height block. focused and
// active name the divider with keyboard focus and the one being dragged.
func (s *SplitLayout) Render(width, height int, focused, active string) string {
	geo := s.Geometry(width, height)
	if len(geo.Panels) == 0 {
		return ""
	}
	vertical := geo.Direction == layout.Vertical
	panels := s.group.Panels()

	parts := make([]string, 0, 2*len(panels))
	for i, r := range geo.Panels {
		if r.W > 0 && r.H > 0 {
			parts = append(parts, s.renderPanel(panels[i].ID, r))
		}
		if i < len(geo.Dividers) {
			parts = append(parts, renderDivider(geo.Dividers[i], vertical, s.handles[i], focused, active))
		}
	}
	if vertical {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (s *SplitLayout) renderPanel(id string, r Rect) string {
	v, ok := s.views[id]
	if !ok {
		return lipgloss.NewStyle().Width(r.W).Height(r.H).Render("")
	}
	if sz, ok := v.(Sizer); ok {
		sz.SetSize(r.W, r.H)
	}
	return v.View()
}

func renderDivider(r Rect, vertical bool, id, focused, active string) string {
	style := Styles.Divider
	switch id {
	case active:
		style = Styles.DividerActive
	case focused:
		style = Styles.DividerFocused
	}
	if vertical {
		return style.Render(strings.Repeat("─", r.W))
	}
	lines := make([]string, r.H)
	for i := range lines {
		lines[i] = "│"
	}
	return style.Render(strings.Join(lines, "\n"))
}
