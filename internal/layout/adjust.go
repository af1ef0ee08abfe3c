package layout

import "math"

// AdjustByDelta moves the divider between idBefore and idAfter by delta percent
// and returns the resulting sizes.
//
// A negative delta grows idAfter at the expense of the panels before the divider;
// a positive delta grows idBefore at the expense of the panels after it. Only the
// pivot (the panel on the growing side next to the divider) ever grows, and it grows
// by exactly what the shrinking side gave up, so the total is preserved.
//
// panels must be in SortPanels order and prev index-aligned to it. Any request that
// moves nothing returns prev itself (see SameSizes). Panels driven from a positive
// size to 0 are recorded in memory, which may be nil.
func AdjustByDelta(kind EventKind, panels []Panel, idBefore, idAfter string, delta float64, prev Sizes, memory CollapseMemory) Sizes {
	if delta == 0 {
		return prev
	}

	growID, shrinkID := idBefore, idAfter
	step := 1
	if delta < 0 {
		growID, shrinkID = idAfter, idBefore
		step = -1
	}

	pivot := indexOf(panels, growID)
	start := indexOf(panels, shrinkID)
	if pivot < 0 || start < 0 || len(prev) != len(panels) {
		return prev
	}

	// The grower's own ceiling bounds the request before any sibling is touched.
	pivotPrev := prev[pivot]
	pivotNext := SafeResizePanel(panels[pivot], math.Abs(delta), pivotPrev, kind)
	if pivotNext == pivotPrev {
		return prev
	}
	target := pivotNext - pivotPrev
	if target <= 0 {
		return prev
	}

	next := prev.Clone()
	var collapsed []int
	var applied float64

	for i := start; i >= 0 && i < len(panels); i += step {
		if i == pivot {
			break
		}
		p := panels[i]
		was := prev[i]
		now := SafeResizePanel(p, -(target - applied), was, kind)
		if now >= was {
			// The shrinking side never grows, even when a keyboard clamp would
			// lift a collapsed panel back to its minimum.
			continue
		}
		if now == 0 && was > 0 {
			collapsed = append(collapsed, i)
		}
		applied += was - now
		next[i] = now
		if fuzzyCompare(applied, target) >= 0 {
			break
		}
	}

	if applied == 0 {
		return prev
	}

	// A pivot growing out of collapse must land on a size its policy accepts.
	landed := pivotPrev + applied
	if !fuzzyEqual(SafeResizePanel(panels[pivot], applied, pivotPrev, kind), landed) {
		return prev
	}
	next[pivot] = landed

	if memory != nil {
		for _, i := range collapsed {
			memory[panels[i].ID] = prev[i]
		}
	}
	return next
}
