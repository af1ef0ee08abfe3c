package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"splitpane/internal/layout"
)

// DragState represents the current state of a drag operation
type DragState int

const (
	DragStateIdle DragState = iota
	DragStateDragging
)

// DragPhase says which part of a drag a mouse event was.
type DragPhase int

const (
	DragNone DragPhase = iota
	DragStart
	DragMove
	DragEnd
)

// DragEvent is a mouse event interpreted as part of a divider drag.
type DragEvent struct {
	Phase    DragPhase
	HandleID string
	// Offset is the distance in cells along the group's axis from where the drag started.
	Offset int
}

// HitFunc returns the id of the divider under cell (x, y).
type HitFunc func(x, y int) (string, bool)

// DragHandler manages mouse drags on dividers. Offsets are measured from the press
// position, not from the previous motion event.
type DragHandler struct {
	state    DragState
	handleID string
	axis     layout.Direction
	origin   int
}

// NewDragHandler creates an idle drag handler.
func NewDragHandler() *DragHandler {
	return &DragHandler{state: DragStateIdle}
}

// HandleMouseEvent interprets msg. Returns a DragEvent with Phase DragNone when the
// event is not part of a drag.
func (d *DragHandler) HandleMouseEvent(msg tea.MouseMsg, axis layout.Direction, hit HitFunc) DragEvent {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || hit == nil {
			break
		}
		if id, ok := hit(msg.X, msg.Y); ok {
			d.state = DragStateDragging
			d.handleID = id
			d.axis = axis
			d.origin = axisPos(axis, msg.X, msg.Y)
			return DragEvent{Phase: DragStart, HandleID: id}
		}
	case tea.MouseActionMotion:
		if d.state == DragStateDragging {
			return DragEvent{Phase: DragMove, HandleID: d.handleID, Offset: d.offset(msg)}
		}
	case tea.MouseActionRelease:
		if d.state == DragStateDragging {
			ev := DragEvent{Phase: DragEnd, HandleID: d.handleID, Offset: d.offset(msg)}
			d.Cancel()
			return ev
		}
	}
	return DragEvent{}
}

// IsDragging returns true if currently in a drag operation
func (d *DragHandler) IsDragging() bool {
	return d.state == DragStateDragging
}

// HandleID returns the ID of the divider being dragged, or "".
func (d *DragHandler) HandleID() string {
	return d.handleID
}

// Cancel ends the current drag without reporting it.
func (d *DragHandler) Cancel() {
	d.state = DragStateIdle
	d.handleID = ""
	d.origin = 0
}

func (d *DragHandler) offset(msg tea.MouseMsg) int {
	return axisPos(d.axis, msg.X, msg.Y) - d.origin
}

func axisPos(axis layout.Direction, x, y int) int {
	if axis == layout.Vertical {
		return y
	}
	return x
}
