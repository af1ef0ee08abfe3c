package layout

// Direction is the axis a group's panels are laid out along.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseDirection accepts "horizontal"/"vertical" (and "row"/"column").
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "", "horizontal", "row":
		return Horizontal, true
	case "vertical", "column":
		return Vertical, true
	}
	return Horizontal, false
}

// Keyboard step sizes, in percent.
const (
	KeyboardStep      = 10.0
	KeyboardShiftStep = 100.0
)

// KeyboardMovement converts a key press on a divider into a delta. Arrow keys only
// count along the group's axis; home and end push the divider all the way.
func KeyboardMovement(key string, shift bool, dir Direction) float64 {
	step := KeyboardStep
	if shift {
		step = KeyboardShiftStep
	}
	horizontal := dir == Horizontal

	switch key {
	case "left":
		if horizontal {
			return -step
		}
	case "right":
		if horizontal {
			return step
		}
	case "up":
		if !horizontal {
			return -step
		}
	case "down":
		if !horizontal {
			return step
		}
	case "home":
		return -100
	case "end":
		return 100
	}
	return 0
}

// PointerDelta converts a drag offset in cells into a percentage of a group that
// is groupCells long.
func PointerDelta(offsetCells, groupCells int) float64 {
	if groupCells <= 0 {
		return 0
	}
	return float64(offsetCells) / float64(groupCells) * 100
}
