package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemLayout_SmallIcon(t *testing.T) {
	b := ItemLayout(ItemMetrics{
		View:         ViewSmallIcon,
		CheckBoxSize: Size{W: 13, H: 13},
		ImageSize:    Size{W: 16, H: 16},
		TextSize:     Size{W: 40, H: 12},
	})

	assert.Equal(t, Rect{X: 1, Y: 0, W: 16, H: 16}, b.Icon)
	assert.Equal(t, Rect{X: 18, Y: 0, W: 40, H: 16}, b.Label)
	assert.Equal(t, Rect{X: 1, Y: 0, W: 57, H: 16}, b.Item)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 58, H: 16}, b.Bounds)
}

func TestItemLayout_Details(t *testing.T) {
	b := ItemLayout(ItemMetrics{
		View:         ViewDetails,
		CheckBoxes:   true,
		CheckBoxSize: Size{W: 13, H: 13},
		ImageSize:    Size{W: 16, H: 16},
		RowHeight:    18,
		IndentCount:  1,
		Columns:      []Column{{X: 0, W: 100}, {X: 100, W: 60}, {X: 160, W: 80}},
		SubItemCount: 2,
	})

	assert.Equal(t, Rect{X: 16, Y: 5, W: 13, H: 13}, b.CheckBox)
	assert.Equal(t, Rect{X: 31, Y: 0, W: 16, H: 18}, b.Icon)
	assert.Equal(t, Rect{X: 48, Y: 0, W: 68, H: 18}, b.Label)
	assert.Equal(t, Rect{X: 16, Y: 0, W: 240, H: 18}, b.Item)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 240, H: 18}, b.Bounds)
	assert.Equal(t, []Rect{{X: 0, Y: 0, W: 100, H: 18}, {X: 100, Y: 0, W: 60, H: 18}}, b.SubItems)
}

func TestItemLayout_LargeIcon(t *testing.T) {
	t.Run("label wider than icon wraps", func(t *testing.T) {
		b := ItemLayout(ItemMetrics{
			View:       ViewLargeIcon,
			ImageSize:  Size{W: 32, H: 32},
			TextSize:   Size{W: 60, H: 13},
			LabelWidth: 100,
			LineHeight: 13,
		})
		assert.Equal(t, Rect{X: 15, Y: 0, W: 32, H: 32}, b.Icon)
		assert.Equal(t, Rect{X: 1, Y: 34, W: 60, H: 26}, b.Label)
		assert.Equal(t, Rect{X: 1, Y: 0, W: 60, H: 60}, b.Item)
		assert.Equal(t, Rect{X: 0, Y: 0, W: 61, H: 60}, b.Bounds)
	})
	t.Run("narrow label centers under icon", func(t *testing.T) {
		b := ItemLayout(ItemMetrics{
			View:       ViewLargeIcon,
			ImageSize:  Size{W: 32, H: 32},
			TextSize:   Size{W: 20, H: 13},
			LabelWidth: 20,
			LineHeight: 13,
		})
		assert.Equal(t, int32(1), b.Icon.X)
		assert.Equal(t, Rect{X: 7, Y: 34, W: 20, H: 13}, b.Label)
	})
}

func TestItemLayout_Tile(t *testing.T) {
	b := ItemLayout(ItemMetrics{
		View:        ViewTile,
		ImageSize:   Size{W: 32, H: 32},
		TileSize:    Size{W: 168, H: 40},
		LineSpacing: 2,
		TileLines:   []Size{{W: 50, H: 13}, {}, {W: 80, H: 12}},
	})

	assert.Equal(t, Rect{X: 36, Y: 7, W: 80, H: 27}, b.Label)
	require.Len(t, b.TileLines, 2, "empty sub-item text takes no line")
	assert.Equal(t, Rect{X: 36, Y: 7, W: 80, H: 13}, b.TileLines[0])
	assert.Equal(t, Rect{X: 36, Y: 22, W: 80, H: 12}, b.TileLines[1])
	assert.Equal(t, Rect{X: 0, Y: 0, W: 116, H: 34}, b.Item)
}

func TestParseView(t *testing.T) {
	for v := ViewLargeIcon; v <= ViewTile; v++ {
		got, ok := ParseView(v.String())
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
	_, ok := ParseView("carousel")
	assert.False(t, ok)
}
