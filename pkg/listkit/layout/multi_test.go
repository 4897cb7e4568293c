package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testColumns(count int) MultiColumn {
	return MultiColumn{Count: count, ItemHeight: 20, ColumnWidth: 100, HScrollHeight: 16}
}

func TestMultiColumn_GridLaw(t *testing.T) {
	g := testColumns(25).Pack(Size{W: 1000, H: 100})

	require.Equal(t, 5, g.Rows)
	assert.Equal(t, 5, g.Columns)
	for i := 0; i < 25; i++ {
		row, col := g.Cell(i)
		assert.Equal(t, i%5, row)
		assert.Equal(t, i/5, col)
	}
}

func TestMultiColumn_RepacksOnceForScrollbar(t *testing.T) {
	g := testColumns(25).Pack(Size{W: 300, H: 100})
	assert.Equal(t, 4, g.Rows)
	assert.Equal(t, 7, g.Columns)
	assert.Equal(t, Size{W: 700, H: 80}, g.Content)

	forced := testColumns(25)
	forced.ScrollAlwaysVisible = true
	g = forced.Pack(Size{W: 300, H: 100})
	assert.Equal(t, 4, g.Rows)

	single := testColumns(25).Pack(Size{W: 300, H: 30})
	assert.Equal(t, 1, single.Rows, "one row cannot be re-packed")
	assert.Equal(t, 25, single.Columns)
}

func TestMultiColumn_Degenerate(t *testing.T) {
	g := testColumns(0).Pack(Size{W: 300, H: 100})
	assert.Equal(t, 0, g.Columns)
	assert.Equal(t, -1, g.LastVisible(0, 300))
	assert.Equal(t, 0, g.EnsureVisible(3, 0, 300))

	flat := MultiColumn{Count: 3, ColumnWidth: 100}.Pack(Size{W: 300, H: 100})
	assert.Equal(t, 1, flat.Rows)
}

func TestGrid_VisibleAndEnsureVisible(t *testing.T) {
	g := testColumns(25).Pack(Size{W: 300, H: 100})
	require.Equal(t, 4, g.Rows)

	assert.Equal(t, 15, g.LastVisible(4, 300))
	assert.Equal(t, 15, g.LastVisible(4, 250))
	assert.Equal(t, 24, g.LastVisible(20, 300))

	assert.Equal(t, 4, g.EnsureVisible(13, 0, 300))
	assert.Equal(t, 0, g.EnsureVisible(2, 8, 300))
	assert.Equal(t, 4, g.EnsureVisible(9, 4, 300))
	assert.Equal(t, 0, g.EnsureVisible(13, 0, 300)%g.Rows, "top stays on a column boundary")
}

func TestGrid_IndexAtPoint(t *testing.T) {
	g := testColumns(25).Pack(Size{W: 300, H: 100})
	viewport := Size{W: 300, H: 80}

	assert.Equal(t, 9, g.IndexAtPoint(150, 25, 4, viewport))
	assert.Equal(t, Rect{X: 100, Y: 20, W: 100, H: 20}, g.ItemRect(9, 4))
	assert.Equal(t, -1, g.IndexAtPoint(150, 90, 4, viewport))
}

func TestGrid_HScroll(t *testing.T) {
	g := testColumns(25).Pack(Size{W: 300, H: 100})
	bar := g.HScroll(8, 300)
	assert.Equal(t, ScrollBar{Visible: true, Enabled: true, Maximum: 6, LargeChange: 3, Value: 2}, bar)
	assert.Equal(t, 8, g.TopForColumn(2))
	assert.Equal(t, 24, g.TopForColumn(99))
}
