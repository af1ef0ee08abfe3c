package ui

// FocusManager tracks and rotates keyboard focus across dividers.
// An empty Current means nothing is focused.
type FocusManager struct {
	Current  string   // ID of the focused divider
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

// Next advances focus to the next divider in order, starting from the first
// when nothing is focused. Returns the new current focus ID.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	f.move((f.index() + 1) % len(f.Order))
	return f.Current
}

// Prev moves focus to the previous divider, starting from the last when nothing is focused.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.index() - 1
	if idx < 0 {
		idx = len(f.Order) - 1
	}
	f.move(idx)
	return f.Current
}

// SetFocus sets focus to the given ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	for i, o := range f.Order {
		if o == id {
			f.move(i)
			return true
		}
	}
	return false
}

// SetOrder replaces the tab order. Focus survives if its ID is still present.
func (f *FocusManager) SetOrder(order []string) {
	f.Order = order
	if f.Current != "" && f.index() < 0 {
		f.Clear()
	}
}

// Clear drops focus.
func (f *FocusManager) Clear() {
	from := f.Current
	f.Current = ""
	if f.OnChange != nil && from != "" {
		f.OnChange(from, "")
	}
}

func (f *FocusManager) index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

func (f *FocusManager) move(idx int) {
	from := f.Current
	f.Current = f.Order[idx]
	if f.OnChange != nil && from != f.Current {
		f.OnChange(from, f.Current)
	}
}
