package ui

import (
	"math"
	"sort"

	"splitpane/internal/layout"
)

// Rect is a cell rectangle on screen.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Geometry is a group's percentages laid out on a grid of cells.
type Geometry struct {
	Direction layout.Direction
	Panels    []Rect // index-aligned with the group's panels
	Dividers  []Rect // divider k sits between panel k and panel k+1

	// Span is the number of cells shared by the panels along the axis,
	// i.e. the axis length minus the divider cells.
	Span int
}

// ComputeGeometry places panels and one-cell dividers inside a width x height area.
func ComputeGeometry(dir layout.Direction, sizes layout.Sizes, width, height int) Geometry {
	g := Geometry{Direction: dir}
	n := len(sizes)
	if n == 0 || width <= 0 || height <= 0 {
		return g
	}

	axis := width
	if dir == layout.Vertical {
		axis = height
	}
	g.Span = max(0, axis-(n-1))
	cells := distribute(sizes, g.Span)

	cursor := 0
	for i, c := range cells {
		g.Panels = append(g.Panels, axisRect(dir, cursor, c, width, height))
		cursor += c
		if i < n-1 {
			g.Dividers = append(g.Dividers, axisRect(dir, cursor, 1, width, height))
			cursor++
		}
	}
	return g
}

func axisRect(dir layout.Direction, start, length, width, height int) Rect {
	if dir == layout.Vertical {
		return Rect{X: 0, Y: start, W: width, H: length}
	}
	return Rect{X: start, Y: 0, W: length, H: height}
}

// DividerAt returns the index of the divider under cell (x, y).
func (g Geometry) DividerAt(x, y int) (int, bool) {
	for i, d := range g.Dividers {
		if d.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// distribute turns percentages into whole cells summing to total, handing the
// leftover cells to the largest fractional parts. Zero-size panels get no cells.
func distribute(sizes layout.Sizes, total int) []int {
	cells := make([]int, len(sizes))
	if total <= 0 {
		return cells
	}
	sum := sizes.Sum()
	if sum <= 0 {
		return cells
	}

	type rem struct {
		i    int
		frac float64
	}
	rems := make([]rem, 0, len(sizes))
	used := 0
	for i, s := range sizes {
		exact := s / sum * float64(total)
		whole := int(math.Floor(exact))
		cells[i] = whole
		used += whole
		if s > 0 {
			rems = append(rems, rem{i: i, frac: exact - float64(whole)})
		}
	}
	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for k := 0; used < total && len(rems) > 0; k = (k + 1) % len(rems) {
		cells[rems[k].i]++
		used++
	}
	return cells
}
