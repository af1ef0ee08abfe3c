package layout

// HandleIndexer resolves a resize handle to its position among its group's handles.
// Position 0 is a valid result; ok is false only when the handle is unknown.
type HandleIndexer interface {
	HandleIndex(groupID, handleID string) (index int, ok bool)
}

// HandleRegistry is an in-memory HandleIndexer. Handles keep the position they
// were registered in within their group.
type HandleRegistry struct {
	groups map[string][]string
}

// NewHandleRegistry creates an empty registry.
func NewHandleRegistry() *HandleRegistry {
	return &HandleRegistry{groups: make(map[string][]string)}
}

// Register appends a handle to a group. Registering an existing handle is a no-op.
func (r *HandleRegistry) Register(groupID, handleID string) {
	for _, h := range r.groups[groupID] {
		if h == handleID {
			return
		}
	}
	r.groups[groupID] = append(r.groups[groupID], handleID)
}

// Unregister removes a handle; later handles in the group shift down one position.
func (r *HandleRegistry) Unregister(groupID, handleID string) {
	hs := r.groups[groupID]
	for i, h := range hs {
		if h == handleID {
			r.groups[groupID] = append(hs[:i:i], hs[i+1:]...)
			return
		}
	}
}

// Handles returns the handle ids of a group in position order.
func (r *HandleRegistry) Handles(groupID string) []string {
	hs := r.groups[groupID]
	out := make([]string, len(hs))
	copy(out, hs)
	return out
}

// HandleIndex implements HandleIndexer.
func (r *HandleRegistry) HandleIndex(groupID, handleID string) (int, bool) {
	for i, h := range r.groups[groupID] {
		if h == handleID {
			return i, true
		}
	}
	return 0, false
}
