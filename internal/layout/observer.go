package layout

import "context"

// Operation describes one attempted change to a group's layout.
type Operation struct {
	Group   string
	Name    string // resize, drag, collapse, expand, toggle or resize_panel
	Kind    EventKind
	Before  string
	After   string
	Delta   float64
	Prev    Sizes
	Next    Sizes
	Changed bool
}

// Observer is told about every operation a Group performs, including no-ops.
type Observer interface {
	Observe(ctx context.Context, op Operation)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, op Operation)

// Observe implements Observer.
func (f ObserverFunc) Observe(ctx context.Context, op Operation) { f(ctx, op) }

// MultiObserver fans operations out to several observers.
// Nil observers are dropped.
type MultiObserver struct {
	observers []Observer
}

var _ Observer = (*MultiObserver)(nil)

// NewMultiObserver creates a MultiObserver over the non-nil observers given.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

// safeCall calls fn with panic recovery. One observer failing shouldn't block others.
func safeCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

// Observe forwards op to every observer.
func (m *MultiObserver) Observe(ctx context.Context, op Operation) {
	for _, obs := range m.observers {
		safeCall(func() { obs.Observe(ctx, op) })
	}
}
