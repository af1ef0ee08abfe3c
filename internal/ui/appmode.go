package ui

// AppMode represents the top-level application mode.
type AppMode int

const (
	ModeSplit AppMode = iota // panes and dividers receive input
	ModeHelp                 // help overlay is open
)

func (m AppMode) String() string {
	switch m {
	case ModeSplit:
		return "Split"
	case ModeHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
