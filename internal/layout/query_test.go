package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func idsPanels(ids ...string) []Panel {
	out := make([]Panel, len(ids))
	for i, id := range ids {
		out[i] = Panel{ID: id, Order: i, MaxSize: 100}
	}
	return out
}

func TestSortPanels_ByOrder(t *testing.T) {
	sorted := SortPanels(map[string]Panel{
		"c": {ID: "c", Order: 9},
		"a": {ID: "a", Order: -1},
		"b": {ID: "b", Order: 3},
	})

	ids := make([]string, len(sorted))
	for i, p := range sorted {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestFlexGrow(t *testing.T) {
	two := idsPanels("a", "b")

	assert.Equal(t, "100", FlexGrow(idsPanels("solo"), "solo", Sizes{42}))
	assert.Equal(t, "100", FlexGrow(idsPanels("solo"), "solo", nil))
	assert.Equal(t, "45.00000000", FlexGrow(two, "a", Sizes{45, 55}))
	assert.Equal(t, "0.000000000", FlexGrow(two, "b", Sizes{100, 0}))
	assert.Equal(t, "0", FlexGrow(two, "b", Sizes{100}), "no size recorded yet")
	assert.Equal(t, "0", FlexGrow(two, "missing", Sizes{45, 55}))
}

func TestBeforeAndAfterIDs(t *testing.T) {
	panels := idsPanels("A", "B", "last")

	before, after, ok := BeforeAndAfterIDs("last", panels)
	assert.True(t, ok)
	assert.Equal(t, "B", before)
	assert.Equal(t, "last", after)

	before, after, ok = BeforeAndAfterIDs("A", panels)
	assert.True(t, ok)
	assert.Equal(t, "A", before)
	assert.Equal(t, "B", after)

	_, _, ok = BeforeAndAfterIDs("nope", panels)
	assert.False(t, ok)

	_, _, ok = BeforeAndAfterIDs("solo", idsPanels("solo"))
	assert.False(t, ok)
}

func TestResizeHandlePanelIDs(t *testing.T) {
	panels := idsPanels("A", "B", "C")
	reg := NewHandleRegistry()
	reg.Register("g", "h0")
	reg.Register("g", "h1")
	reg.Register("other", "h0")
	reg.Register("other", "x")

	before, after, ok := ResizeHandlePanelIDs(reg, "g", "h0", panels)
	assert.True(t, ok, "position 0 is a valid handle")
	assert.Equal(t, [2]string{"A", "B"}, [2]string{before, after})

	before, after, ok = ResizeHandlePanelIDs(reg, "g", "h1", panels)
	assert.True(t, ok)
	assert.Equal(t, [2]string{"B", "C"}, [2]string{before, after})

	_, _, ok = ResizeHandlePanelIDs(reg, "g", "x", panels)
	assert.False(t, ok, "handle belongs to another group")

	_, _, ok = ResizeHandlePanelIDs(reg, "other", "x", idsPanels("A", "B"))
	assert.False(t, ok, "no panel after the handle")

	_, _, ok = ResizeHandlePanelIDs(nil, "g", "h0", panels)
	assert.False(t, ok)
}
