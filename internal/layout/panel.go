package layout

import "sort"

// Callbacks are the per-panel notification hooks fired by CallPanelCallbacks.
// Either may be nil.
type Callbacks struct {
	OnResize   func(size float64)
	OnCollapse func(collapsed bool)
}

// Panel describes one panel of a group. Sizes are percentages of the group (0-100).
type Panel struct {
	ID          string
	Order       int
	MinSize     float64
	MaxSize     float64
	Collapsible bool

	// DefaultSize is the initial size; nil means "share what is left".
	DefaultSize *float64

	Callbacks Callbacks
}

// Sizes holds one size per panel, index-aligned to the slice returned by SortPanels.
type Sizes []float64

// Sum returns the total of all sizes.
func (s Sizes) Sum() float64 {
	var total float64
	for _, v := range s {
		total += v
	}
	return total
}

// Clone returns a copy that does not alias s.
func (s Sizes) Clone() Sizes {
	if s == nil {
		return nil
	}
	out := make(Sizes, len(s))
	copy(out, s)
	return out
}

// CollapseMemory maps a panel id to the size it held right before it was driven to 0.
// It lives as long as the group that owns it.
type CollapseMemory map[string]float64

// SortPanels orders a panel collection by Order. This is the only place panel
// position is derived; every Sizes slice is indexed by its result.
// Panels sharing an Order have no defined relative position.
func SortPanels(panels map[string]Panel) []Panel {
	out := make([]Panel, 0, len(panels))
	for _, p := range panels {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// indexOf returns the position of id in panels, or -1.
func indexOf(panels []Panel, id string) int {
	for i, p := range panels {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// SameSizes reports whether a and b are the same slice (not merely equal values).
// AdjustByDelta returns its input unchanged for a no-op; this is how callers detect it.
func SameSizes(a, b Sizes) bool {
	if len(a) != len(b) || cap(a) != cap(b) {
		return false
	}
	if len(a) == 0 {
		return (a == nil) == (b == nil)
	}
	return &a[0] == &b[0]
}
