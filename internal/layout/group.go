package layout

import (
	"context"
	"fmt"
	"strconv"
)

// Group owns the layout state of one panel group for its whole lifetime: the
// ordered panels, the committed sizes, the collapse memory and the handle registry.
// A Group is not safe for concurrent use.
type Group struct {
	id        string
	direction Direction
	panels    []Panel
	sizes     Sizes
	memory    CollapseMemory
	handles   *HandleRegistry
	observer  Observer
}

// NewGroup validates panels, orders them and computes the initial sizes. Panels with
// a DefaultSize take it; the rest split what is left evenly. Initial sizes are
// reported through the panels' callbacks before NewGroup returns.
func NewGroup(id string, dir Direction, panels ...Panel) (*Group, error) {
	if len(panels) == 0 {
		return nil, fmt.Errorf("group %q: %w", id, ErrNoPanels)
	}

	byID := make(map[string]Panel, len(panels))
	orders := make(map[int]string, len(panels))
	for _, p := range panels {
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("group %q: panel %q: %w", id, p.ID, ErrDuplicateID)
		}
		if other, dup := orders[p.Order]; dup {
			return nil, fmt.Errorf("group %q: panels %q and %q share order %d: %w", id, other, p.ID, p.Order, ErrDuplicateOrder)
		}
		if p.MinSize < 0 || p.MaxSize > 100 || p.MinSize > p.MaxSize || p.MaxSize == 0 {
			return nil, fmt.Errorf("group %q: panel %q min=%v max=%v: %w", id, p.ID, p.MinSize, p.MaxSize, ErrInvalidBounds)
		}
		byID[p.ID] = p
		orders[p.Order] = p.ID
	}

	g := &Group{
		id:        id,
		direction: dir,
		panels:    SortPanels(byID),
		memory:    make(CollapseMemory),
		handles:   NewHandleRegistry(),
	}

	sizes, err := initialSizes(g.panels)
	if err == nil {
		err = checkInitialSizes(g.panels, sizes)
	}
	if err != nil {
		return nil, fmt.Errorf("group %q: %w", id, err)
	}
	g.sizes = sizes
	CallPanelCallbacks(g.panels, nil, g.sizes)
	return g, nil
}

func initialSizes(panels []Panel) (Sizes, error) {
	sizes := make(Sizes, len(panels))
	var fixed float64
	open := 0
	for i, p := range panels {
		if p.DefaultSize != nil {
			sizes[i] = *p.DefaultSize
			fixed += *p.DefaultSize
		} else {
			open++
		}
	}
	if fuzzyCompare(fixed, 100) > 0 {
		return nil, fmt.Errorf("defaults total %v: %w", fixed, ErrBudget)
	}
	if open == 0 {
		if !fuzzyEqual(fixed, 100) {
			return nil, fmt.Errorf("defaults total %v: %w", fixed, ErrBudget)
		}
		return sizes, nil
	}
	share := (100 - fixed) / float64(open)
	for i, p := range panels {
		if p.DefaultSize == nil {
			sizes[i] = share
		}
	}
	return sizes, nil
}

// checkInitialSizes rejects starting sizes outside a panel's [MinSize, MaxSize].
// A collapsible panel may start at exactly 0. The minimums of the panels that
// cannot collapse must fit in 100.
func checkInitialSizes(panels []Panel, sizes Sizes) error {
	var required float64
	for _, p := range panels {
		if !p.Collapsible {
			required += p.MinSize
		}
	}
	if fuzzyCompare(required, 100) > 0 {
		return fmt.Errorf("minimum sizes total %v: %w", required, ErrBudget)
	}
	for i, p := range panels {
		size := sizes[i]
		if size == 0 && p.Collapsible {
			continue
		}
		if fuzzyCompare(size, p.MinSize) < 0 || fuzzyCompare(size, p.MaxSize) > 0 {
			return fmt.Errorf("panel %q starts at %v outside [%v, %v]: %w", p.ID, size, p.MinSize, p.MaxSize, ErrInvalidBounds)
		}
	}
	return nil
}

// ID returns the group id.
func (g *Group) ID() string { return g.id }

// Direction returns the group's axis.
func (g *Group) Direction() Direction { return g.direction }

// Panels returns the panels in layout order.
func (g *Group) Panels() []Panel { return g.panels }

// Sizes returns the committed sizes. Callers must not modify the result.
func (g *Group) Sizes() Sizes { return g.sizes }

// Handles returns the group's handle registry.
func (g *Group) Handles() *HandleRegistry { return g.handles }

// SetObserver installs the observer told about every operation. nil disables it.
func (g *Group) SetObserver(o Observer) { g.observer = o }

// Panel returns the panel with the given id.
func (g *Group) Panel(id string) (Panel, bool) {
	i := indexOf(g.panels, id)
	if i < 0 {
		return Panel{}, false
	}
	return g.panels[i], true
}

// IsCollapsed reports whether a collapsible panel currently sits at 0.
func (g *Group) IsCollapsed(id string) bool {
	i := indexOf(g.panels, id)
	return i >= 0 && g.panels[i].Collapsible && g.sizes[i] == 0
}

// SizeBeforeCollapse returns the size a panel had right before it last collapsed.
func (g *Group) SizeBeforeCollapse(id string) (float64, bool) {
	v, ok := g.memory[id]
	return v, ok
}

// RegisterHandle adds a resize handle at the next position of this group.
func (g *Group) RegisterHandle(handleID string) {
	g.handles.Register(g.id, handleID)
}

// DividerID is the handle id RegisterDividers gives the divider after panel k.
func DividerID(k int) string {
	return "divider-" + strconv.Itoa(k)
}

// RegisterDividers registers one handle per gap between panels, named by DividerID,
// skipping positions that already have a handle. It returns the ids in position order.
func (g *Group) RegisterDividers() []string {
	existing := len(g.handles.Handles(g.id))
	for k := existing; k < len(g.panels)-1; k++ {
		g.RegisterHandle(DividerID(k))
	}
	hs := g.handles.Handles(g.id)
	return hs[:min(len(hs), max(0, len(g.panels)-1))]
}

// FlexGrow returns the formatted share of a panel.
func (g *Group) FlexGrow(id string) string {
	return FlexGrow(g.panels, id, g.sizes)
}

// Resize moves the divider between idBefore and idAfter by delta percent, notifies
// the panels that changed and commits the result. It reports whether anything moved.
func (g *Group) Resize(ctx context.Context, kind EventKind, idBefore, idAfter string, delta float64) bool {
	return g.apply(ctx, "resize", kind, idBefore, idAfter, delta)
}

// ResizeHandle is Resize addressed by handle id.
func (g *Group) ResizeHandle(ctx context.Context, kind EventKind, handleID string, delta float64) bool {
	before, after, ok := ResizeHandlePanelIDs(g.handles, g.id, handleID, g.panels)
	if !ok {
		return false
	}
	return g.apply(ctx, "resize", kind, before, after, delta)
}

// KeyboardDelta returns the delta a key press on a handle should apply. When the
// panel being shrunk is collapsible and sits at 0 or exactly at its minimum, one
// press moves a whole MinSize so it crosses the collapse boundary.
func (g *Group) KeyboardDelta(handleID, key string, shift bool) float64 {
	movement := KeyboardMovement(key, shift, g.direction)
	if movement == 0 {
		return 0
	}
	before, after, ok := ResizeHandlePanelIDs(g.handles, g.id, handleID, g.panels)
	if !ok {
		return 0
	}
	target := after
	if movement < 0 {
		target = before
	}
	i := indexOf(g.panels, target)
	p := g.panels[i]
	if p.Collapsible && (g.sizes[i] == 0 || fuzzyEqual(g.sizes[i], p.MinSize)) {
		if movement < 0 {
			return -p.MinSize
		}
		return p.MinSize
	}
	return movement
}

// ToggleHandle collapses or restores the panel before a handle: a panel at or below
// its minimum grows as far as it can, anything larger shrinks as far as it can.
func (g *Group) ToggleHandle(ctx context.Context, handleID string) bool {
	before, after, ok := ResizeHandlePanelIDs(g.handles, g.id, handleID, g.panels)
	if !ok {
		return false
	}
	i := indexOf(g.panels, before)
	delta := -100.0
	if fuzzyCompare(g.sizes[i], g.panels[i].MinSize) <= 0 {
		delta = 100
	}
	return g.apply(ctx, "toggle", Keyboard, before, after, delta)
}

// CollapsePanel drives a collapsible panel to 0 by giving its size to a neighbour.
// It is a no-op for panels that are not collapsible or already collapsed.
func (g *Group) CollapsePanel(ctx context.Context, id string) bool {
	i := indexOf(g.panels, id)
	if i < 0 || !g.panels[i].Collapsible || g.sizes[i] == 0 {
		return false
	}
	before, after, ok := BeforeAndAfterIDs(id, g.panels)
	if !ok {
		return false
	}
	size := g.sizes[i]
	delta := -size
	if after == id {
		delta = size
	}
	return g.apply(ctx, "collapse", Keyboard, before, after, delta)
}

// ExpandPanel restores a collapsed panel to the size it had before collapsing,
// or to its minimum if it never held one.
func (g *Group) ExpandPanel(ctx context.Context, id string) bool {
	i := indexOf(g.panels, id)
	if i < 0 || !g.panels[i].Collapsible || g.sizes[i] != 0 {
		return false
	}
	before, after, ok := BeforeAndAfterIDs(id, g.panels)
	if !ok {
		return false
	}
	size, remembered := g.memory[id]
	if !remembered || size <= 0 {
		size = g.panels[i].MinSize
	}
	delta := size
	if after == id {
		delta = -size
	}
	return g.apply(ctx, "expand", Keyboard, before, after, delta)
}

// TogglePanel collapses an open panel and expands a collapsed one.
func (g *Group) TogglePanel(ctx context.Context, id string) bool {
	if g.IsCollapsed(id) {
		return g.ExpandPanel(ctx, id)
	}
	return g.CollapsePanel(ctx, id)
}

// ResizePanel moves a panel towards an absolute size, subject to its own policy and
// to what its neighbours can give.
func (g *Group) ResizePanel(ctx context.Context, id string, size float64) bool {
	i := indexOf(g.panels, id)
	if i < 0 {
		return false
	}
	before, after, ok := BeforeAndAfterIDs(id, g.panels)
	if !ok {
		return false
	}
	delta := size - g.sizes[i]
	if after == id {
		delta = -delta
	}
	return g.apply(ctx, "resize_panel", Pointer, before, after, delta)
}

// ResizeHandleFrom applies delta to base, the sizes committed when a drag began,
// rather than to the current sizes. Measuring a drag from its origin lets a
// collapsed panel open once the pointer has travelled its full MinSize.
func (g *Group) ResizeHandleFrom(ctx context.Context, kind EventKind, handleID string, base Sizes, delta float64) bool {
	before, after, ok := ResizeHandlePanelIDs(g.handles, g.id, handleID, g.panels)
	if !ok || len(base) != len(g.panels) {
		return false
	}
	next := AdjustByDelta(kind, g.panels, before, after, delta, base, g.memory)
	return g.commit(ctx, "drag", kind, before, after, delta, next)
}

func (g *Group) apply(ctx context.Context, name string, kind EventKind, before, after string, delta float64) bool {
	next := AdjustByDelta(kind, g.panels, before, after, delta, g.sizes, g.memory)
	return g.commit(ctx, name, kind, before, after, delta, next)
}

func (g *Group) commit(ctx context.Context, name string, kind EventKind, before, after string, delta float64, next Sizes) bool {
	prev := g.sizes
	changed := !SameSizes(prev, next) && !equalSizes(prev, next)
	if changed {
		CallPanelCallbacks(g.panels, prev, next)
		g.sizes = next
	}
	if g.observer != nil {
		g.observer.Observe(ctx, Operation{
			Group:   g.id,
			Name:    name,
			Kind:    kind,
			Before:  before,
			After:   after,
			Delta:   delta,
			Prev:    prev,
			Next:    g.sizes,
			Changed: changed,
		})
	}
	return changed
}

func equalSizes(a, b Sizes) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
