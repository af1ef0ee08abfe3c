package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splitpane/internal/layout"
)

func TestComputeGeometry_Horizontal(t *testing.T) {
	g := ComputeGeometry(layout.Horizontal, layout.Sizes{20, 50, 30}, 83, 10)

	assert.Equal(t, 81, g.Span)
	require.Len(t, g.Panels, 3)
	require.Len(t, g.Dividers, 2)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 16, H: 10}, g.Panels[0])
	assert.Equal(t, Rect{X: 16, Y: 0, W: 1, H: 10}, g.Dividers[0])
	assert.Equal(t, Rect{X: 17, Y: 0, W: 41, H: 10}, g.Panels[1])
	assert.Equal(t, Rect{X: 58, Y: 0, W: 1, H: 10}, g.Dividers[1])
	assert.Equal(t, Rect{X: 59, Y: 0, W: 24, H: 10}, g.Panels[2])
}

func TestComputeGeometry_Vertical(t *testing.T) {
	g := ComputeGeometry(layout.Vertical, layout.Sizes{50, 50}, 20, 11)

	assert.Equal(t, 10, g.Span)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 20, H: 5}, g.Panels[0])
	assert.Equal(t, Rect{X: 0, Y: 5, W: 20, H: 1}, g.Dividers[0])
	assert.Equal(t, Rect{X: 0, Y: 6, W: 20, H: 5}, g.Panels[1])
}

func TestComputeGeometry_CollapsedPanelGetsNoCells(t *testing.T) {
	g := ComputeGeometry(layout.Horizontal, layout.Sizes{0, 100}, 11, 3)

	assert.Equal(t, 0, g.Panels[0].W)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 1, H: 3}, g.Dividers[0])
	assert.Equal(t, Rect{X: 1, Y: 0, W: 10, H: 3}, g.Panels[1])
}

func TestComputeGeometry_Empty(t *testing.T) {
	assert.Empty(t, ComputeGeometry(layout.Horizontal, nil, 80, 24).Panels)
	assert.Empty(t, ComputeGeometry(layout.Horizontal, layout.Sizes{100}, 0, 24).Panels)
}

func TestDistribute_AlwaysFillsTotal(t *testing.T) {
	for _, tc := range []struct {
		sizes layout.Sizes
		total int
	}{
		{layout.Sizes{33.333, 33.333, 33.334}, 100},
		{layout.Sizes{10, 10, 80}, 7},
		{layout.Sizes{1, 1, 1, 97}, 3},
		{layout.Sizes{0, 60, 40}, 13},
	} {
		cells := distribute(tc.sizes, tc.total)
		sum := 0
		for i, c := range cells {
			sum += c
			if tc.sizes[i] == 0 {
				assert.Zero(t, c, "zero-size panel got cells: %v", tc.sizes)
			}
		}
		assert.Equal(t, tc.total, sum, "sizes %v", tc.sizes)
	}
}

func TestGeometry_DividerAt(t *testing.T) {
	g := ComputeGeometry(layout.Horizontal, layout.Sizes{20, 50, 30}, 83, 10)

	k, ok := g.DividerAt(16, 3)
	assert.True(t, ok)
	assert.Equal(t, 0, k)

	k, ok = g.DividerAt(58, 9)
	assert.True(t, ok)
	assert.Equal(t, 1, k)

	_, ok = g.DividerAt(20, 0)
	assert.False(t, ok)
	_, ok = g.DividerAt(16, 10)
	assert.False(t, ok, "below the area")
}
