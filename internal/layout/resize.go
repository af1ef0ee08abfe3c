package layout

// EventKind tells pointer-driven resizes apart from keyboard-driven ones.
type EventKind int

const (
	Pointer EventKind = iota
	Keyboard
)

func (k EventKind) String() string {
	switch k {
	case Pointer:
		return "pointer"
	case Keyboard:
		return "keyboard"
	default:
		return "unknown"
	}
}

// SafeResizePanel returns the size closest to prev+delta that the panel's
// min/max/collapse policy allows.
//
// A collapsible panel that is open snaps straight to 0 once prev+delta reaches 0.
// A collapsed panel dragged with the pointer stays at 0 until prev+delta reaches
// MinSize; keyboard growth skips that and clamps up to MinSize immediately.
func SafeResizePanel(p Panel, delta, prev float64, kind EventKind) float64 {
	next := prev + delta

	if p.Collapsible {
		if prev > 0 {
			if next <= 0 {
				return 0
			}
		} else if kind != Keyboard {
			if next < p.MinSize {
				return 0
			}
		}
	}

	return min(p.MaxSize, max(p.MinSize, next))
}
