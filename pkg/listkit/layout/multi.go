package layout

// MultiColumn describes a list that fills rows top to bottom, then wraps
// into the next column to the right. All items share one height and all
// columns one width.
type MultiColumn struct {
	Count               int
	ItemHeight          int32
	ColumnWidth         int32
	ScrollAlwaysVisible bool  // Horizontal scrollbar is reserved even when not needed
	HScrollHeight       int32 // Height taken by the horizontal scrollbar
}

// Grid is the packed result of a MultiColumn layout.
type Grid struct {
	Rows        int
	Columns     int
	Count       int
	ItemHeight  int32
	ColumnWidth int32
	Content     Size
}

// Pack computes rows and columns for a viewport. When the columns overflow
// the viewport and no scrollbar is forced, rows are recomputed once with the
// horizontal scrollbar's height taken out so the bottom row is not hidden
// under the bar.
func (m MultiColumn) Pack(viewport Size) Grid {
	avail := viewport.H
	if m.ScrollAlwaysVisible {
		avail -= m.HScrollHeight
	}

	g := m.pack(avail)
	if !m.ScrollAlwaysVisible && g.Content.W > viewport.W && g.Rows > 1 {
		g = m.pack(viewport.H - m.HScrollHeight)
	}
	return g
}

func (m MultiColumn) pack(avail int32) Grid {
	rows := 1
	if m.ItemHeight > 0 && avail > 0 {
		rows = max(1, int(avail/m.ItemHeight))
	}
	count := max(0, m.Count)
	cols := ceilDiv(count, rows)
	return Grid{
		Rows:        rows,
		Columns:     cols,
		Count:       count,
		ItemHeight:  m.ItemHeight,
		ColumnWidth: m.ColumnWidth,
		Content:     Size{W: int32(cols) * m.ColumnWidth, H: int32(rows) * m.ItemHeight},
	}
}

// Cell returns the grid position of item i.
func (g Grid) Cell(i int) (row, column int) {
	return i % g.Rows, i / g.Rows
}

// ItemRect returns item i's rectangle relative to the viewport when top is
// the first displayed item. Top is always the first item of a column.
func (g Grid) ItemRect(i, top int) Rect {
	row, col := g.Cell(i)
	topCol := top / g.Rows
	return Rect{
		X: int32(col-topCol) * g.ColumnWidth,
		Y: int32(row) * g.ItemHeight,
		W: g.ColumnWidth,
		H: g.ItemHeight,
	}
}

// VisibleColumns returns how many columns start inside the viewport width,
// counting a partially shown last column.
func (g Grid) VisibleColumns(viewportWidth int32) int {
	if g.ColumnWidth <= 0 || viewportWidth <= 0 {
		return 0
	}
	return ceilDiv(int(viewportWidth), int(g.ColumnWidth))
}

// WholeColumns returns how many columns fit completely, at least one.
func (g Grid) WholeColumns(viewportWidth int32) int {
	if g.ColumnWidth <= 0 {
		return 1
	}
	return max(1, int(viewportWidth/g.ColumnWidth))
}

// LastVisible returns the last item in a column that starts inside the
// viewport, or top-1 when nothing is visible.
func (g Grid) LastVisible(top int, viewportWidth int32) int {
	cols := g.VisibleColumns(viewportWidth)
	if g.Count == 0 || cols == 0 || top < 0 || top >= g.Count {
		return top - 1
	}
	topCol := top / g.Rows
	return min(g.Count-1, (topCol+cols)*g.Rows-1)
}

// EnsureVisible returns the top index that brings index into view, moving
// by whole columns.
func (g Grid) EnsureVisible(index, top int, viewportWidth int32) int {
	if g.Count == 0 || index < 0 || index >= g.Count {
		return g.ClampTop(top)
	}
	col := index / g.Rows
	topCol := top / g.Rows
	if col < topCol {
		return col * g.Rows
	}
	whole := g.WholeColumns(viewportWidth)
	if col >= topCol+whole {
		return (col - (whole - 1)) * g.Rows
	}
	return topCol * g.Rows
}

// ClampTop snaps top to the first item of its column and keeps it inside
// the item range.
func (g Grid) ClampTop(top int) int {
	if g.Count == 0 || top <= 0 {
		return 0
	}
	top = min(top, g.Count-1)
	return (top / g.Rows) * g.Rows
}

// IndexAtPoint returns the visible item containing (x, y), or -1.
func (g Grid) IndexAtPoint(x, y int32, top int, viewport Size) int {
	last := g.LastVisible(top, viewport.W)
	for i := top; i <= last; i++ {
		if g.ItemRect(i, top).Contains(x, y) {
			return i
		}
	}
	return -1
}

// HScroll returns the horizontal scrollbar. Its unit is one column.
func (g Grid) HScroll(top int, viewportWidth int32) ScrollBar {
	bar := ScrollBar{Value: top / g.Rows}
	if g.Content.W <= viewportWidth {
		return bar
	}
	bar.Visible = true
	bar.Enabled = true
	bar.Maximum = g.Columns - 1
	bar.LargeChange = g.WholeColumns(viewportWidth)
	return bar
}

// TopForColumn converts a horizontal scroll value back into a top index.
func (g Grid) TopForColumn(column int) int {
	return g.ClampTop(column * g.Rows)
}
