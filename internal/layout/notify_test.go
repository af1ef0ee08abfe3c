package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// callbackLog records callback invocations per panel id.
type callbackLog struct {
	resized   map[string][]float64
	collapsed map[string][]bool
}

func newCallbackLog() *callbackLog {
	return &callbackLog{
		resized:   make(map[string][]float64),
		collapsed: make(map[string][]bool),
	}
}

func (l *callbackLog) hook(p Panel) Panel {
	id := p.ID
	p.Callbacks = Callbacks{
		OnResize:   func(size float64) { l.resized[id] = append(l.resized[id], size) },
		OnCollapse: func(c bool) { l.collapsed[id] = append(l.collapsed[id], c) },
	}
	return p
}

func hookedPair(log *callbackLog) []Panel {
	return []Panel{
		log.hook(Panel{ID: "one", Order: 0, MinSize: 10, MaxSize: 100}),
		log.hook(Panel{ID: "two", Order: 1, MinSize: 10, MaxSize: 100, Collapsible: true}),
	}
}

func TestCallPanelCallbacks_Collapse(t *testing.T) {
	log := newCallbackLog()
	CallPanelCallbacks(hookedPair(log), Sizes{30, 20}, Sizes{30, 0})

	assert.Empty(t, log.resized["one"])
	assert.Empty(t, log.collapsed["one"])
	assert.Equal(t, []float64{0}, log.resized["two"])
	assert.Equal(t, []bool{true}, log.collapsed["two"])
}

func TestCallPanelCallbacks_Expand(t *testing.T) {
	log := newCallbackLog()
	CallPanelCallbacks(hookedPair(log), Sizes{100, 0}, Sizes{80, 20})

	assert.Equal(t, []float64{80}, log.resized["one"])
	assert.Empty(t, log.collapsed["one"], "panel one is not collapsible")
	assert.Equal(t, []float64{20}, log.resized["two"])
	assert.Equal(t, []bool{false}, log.collapsed["two"])
}

func TestCallPanelCallbacks_ResizeWithoutCollapseChange(t *testing.T) {
	log := newCallbackLog()
	CallPanelCallbacks(hookedPair(log), Sizes{50, 50}, Sizes{40, 60})

	assert.Equal(t, []float64{60}, log.resized["two"])
	assert.Empty(t, log.collapsed["two"])
}

func TestCallPanelCallbacks_InitialMount(t *testing.T) {
	log := newCallbackLog()
	panels := hookedPair(log)
	panels[0].Collapsible = true

	CallPanelCallbacks(panels, nil, Sizes{0, 100})

	assert.Equal(t, []float64{0}, log.resized["one"])
	assert.Equal(t, []bool{true}, log.collapsed["one"])
	assert.Equal(t, []float64{100}, log.resized["two"])
	assert.Equal(t, []bool{false}, log.collapsed["two"])
}

func TestCallPanelCallbacks_NilHooks(t *testing.T) {
	panels := []Panel{
		{ID: "a", MinSize: 0, MaxSize: 100, Collapsible: true},
		{ID: "b", MinSize: 0, MaxSize: 100, Collapsible: true},
	}
	assert.NotPanics(t, func() {
		CallPanelCallbacks(panels, Sizes{50, 50}, Sizes{0, 100})
	})
}
