package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyboardMovement(t *testing.T) {
	tests := []struct {
		key   string
		shift bool
		dir   Direction
		want  float64
	}{
		{"left", false, Horizontal, -10},
		{"right", false, Horizontal, 10},
		{"right", true, Horizontal, 100},
		{"up", false, Horizontal, 0},
		{"up", false, Vertical, -10},
		{"down", true, Vertical, 100},
		{"left", false, Vertical, 0},
		{"home", false, Vertical, -100},
		{"end", false, Horizontal, 100},
		{"x", false, Horizontal, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KeyboardMovement(tt.key, tt.shift, tt.dir), "%s shift=%v %s", tt.key, tt.shift, tt.dir)
	}
}

func TestPointerDelta(t *testing.T) {
	assert.Equal(t, 25.0, PointerDelta(20, 80))
	assert.Equal(t, -5.0, PointerDelta(-4, 80))
	assert.Equal(t, 0.0, PointerDelta(3, 0))
}

func TestParseDirection(t *testing.T) {
	d, ok := ParseDirection("column")
	assert.True(t, ok)
	assert.Equal(t, Vertical, d)

	d, ok = ParseDirection("")
	assert.True(t, ok)
	assert.Equal(t, Horizontal, d)

	_, ok = ParseDirection("diagonal")
	assert.False(t, ok)
}
