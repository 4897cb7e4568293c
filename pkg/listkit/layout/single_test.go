package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingleColumn_PartialItemCountsAsVisible(t *testing.T) {
	s := NewSingleColumn(10, 20)
	assert.Equal(t, 2, s.LastVisible(0, 55), "two full items plus one partial")
}

func TestSingleColumn_VisibleCountLaw(t *testing.T) {
	const h = 20
	for _, n := range []int{0, 1, 3, 10} {
		for _, viewport := range []int32{1, 19, 20, 55, 60, 200} {
			t.Run(fmt.Sprintf("n=%d/H=%d", n, viewport), func(t *testing.T) {
				s := NewSingleColumn(n, h)
				want := min(n, ceilDiv(int(viewport), h))
				assert.Equal(t, want, s.LastVisible(0, viewport)+1)
			})
		}
	}
}

func TestSingleColumn_EnsureVisible(t *testing.T) {
	s := NewSingleColumn(10, 20)

	tests := []struct {
		name  string
		index int
		top   int
		want  int
	}{
		{"already visible", 1, 0, 0},
		{"just below", 2, 0, 1},
		{"far below", 5, 0, 4},
		{"above", 0, 4, 0},
		{"out of range keeps top", 42, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.EnsureVisible(tt.index, tt.top, 55))
		})
	}
}

func TestSingleColumn_MaxTop(t *testing.T) {
	s := NewSingleColumn(10, 20)
	assert.Equal(t, 8, s.MaxTop(55))
	assert.Equal(t, 8, s.ClampTop(20, 55))
	assert.Equal(t, 0, s.ClampTop(-3, 55))
	assert.Equal(t, 0, s.MaxTop(500))
}

func TestVariableColumn(t *testing.T) {
	heights := []int32{10, 30, 20, 40}
	s := NewVariableColumn(len(heights), func(i int) int32 { return heights[i] })

	assert.True(t, s.Variable())
	assert.Equal(t, int32(100), s.ContentHeight())
	assert.Equal(t, int32(40), s.Offset(2))
	assert.Equal(t, Rect{X: 0, Y: 30, W: 80, H: 20}, s.ItemRect(2, 1, 80))

	assert.Equal(t, 2, s.LastVisible(0, 50))
	assert.Equal(t, 2, s.WholeItems(0, 50))
	assert.Equal(t, 1, s.EnsureVisible(2, 0, 50))
	assert.Equal(t, 3, s.EnsureVisible(3, 0, 50))
	assert.Equal(t, 3, s.MaxTop(50))
}

func TestSingleColumn_IndexAtPointScansVisibleRangeOnly(t *testing.T) {
	s := NewSingleColumn(100, 20)
	viewport := Size{W: 100, H: 55}

	assert.Equal(t, 12, s.IndexAtPoint(5, 45, 10, viewport))
	assert.Equal(t, -1, s.IndexAtPoint(150, 5, 10, viewport), "right of the viewport")
	assert.Equal(t, -1, s.IndexAtPoint(5, 100, 10, viewport), "item 15 exists but is not visible")
}

func TestSingleColumn_Degenerate(t *testing.T) {
	t.Run("zero item height", func(t *testing.T) {
		s := NewSingleColumn(5, 0)
		assert.Equal(t, -1, s.LastVisible(0, 100))
		assert.Equal(t, 0, s.EnsureVisible(3, 0, 100))
		assert.False(t, s.VScroll(0, 100).Visible)
	})
	t.Run("zero viewport", func(t *testing.T) {
		s := NewSingleColumn(5, 20)
		assert.Equal(t, -1, s.LastVisible(0, 0))
		assert.Equal(t, -1, s.IndexAtPoint(0, 0, 0, Size{}))
	})
	t.Run("no items", func(t *testing.T) {
		s := NewSingleColumn(0, 20)
		assert.Equal(t, -1, s.LastVisible(0, 100))
		assert.Equal(t, 0, s.MaxTop(100))
		assert.Equal(t, int32(0), s.ContentHeight())
	})
}

func TestSingleColumn_VScroll(t *testing.T) {
	bar := NewSingleColumn(10, 20).VScroll(3, 55)
	assert.Equal(t, ScrollBar{Visible: true, Enabled: true, Maximum: 9, LargeChange: 2, Value: 3}, bar)

	assert.False(t, NewSingleColumn(2, 20).VScroll(0, 55).Visible)
}
