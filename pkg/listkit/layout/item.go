package layout

// View selects how a ListView presents its items.
type View int

const (
	ViewLargeIcon View = iota // Icon above a wrapped, centered label
	ViewDetails               // One row per item with a cell per column
	ViewSmallIcon             // Small icon left of the label, flowing in rows
	ViewList                  // Small icon left of the label, flowing in columns
	ViewTile                  // Large icon left of a stack of text lines
)

func (v View) String() string {
	switch v {
	case ViewLargeIcon:
		return "large_icon"
	case ViewDetails:
		return "details"
	case ViewSmallIcon:
		return "small_icon"
	case ViewList:
		return "list"
	case ViewTile:
		return "tile"
	default:
		return "unknown"
	}
}

// ParseView maps the names returned by String back to views.
func ParseView(s string) (View, bool) {
	for v := ViewLargeIcon; v <= ViewTile; v++ {
		if v.String() == s {
			return v, true
		}
	}
	return ViewLargeIcon, false
}

// Column is the horizontal span of one detail column.
type Column struct {
	X int32
	W int32
}

// ItemMetrics carries everything the item layout needs to know about one
// item and its owner. Sizes that do not apply are left zero.
type ItemMetrics struct {
	View         View
	CheckBoxes   bool
	CheckBoxSize Size
	ImageSize    Size  // Zero when the view has no image list
	TextSize     Size  // Label cell: measured text, or the wrap cell in large icon view
	LabelWidth   int32 // Unwrapped width of the label text
	LineHeight   int32 // Height of one line of label text
	RowHeight    int32 // Details row height
	IndentCount  int   // Details indent, in small image widths
	Columns      []Column
	SubItemCount int
	TileSize     Size
	TileLines    []Size // Tile view: label line then one entry per sub-item (zero for empty text)
	LineSpacing  int32  // Tile view gap between lines
}

// ItemBoxes are the sub-regions of one item, relative to the item origin.
type ItemBoxes struct {
	CheckBox  Rect
	Icon      Rect
	Label     Rect
	Item      Rect   // Icon and label together, the selectable area
	Bounds    Rect   // Everything including the check box
	SubItems  []Rect // Details view, one per column that has a sub-item
	TileLines []Rect // Tile view, label line first
}

// ItemLayout decomposes an item into check box, icon, label and, depending
// on the view, detail cells or tile lines.
func ItemLayout(m ItemMetrics) ItemBoxes {
	var b ItemBoxes
	if m.CheckBoxes {
		b.CheckBox = Rect{W: m.CheckBoxSize.W, H: m.CheckBoxSize.H}
	}

	switch m.View {
	case ViewDetails:
		layoutDetails(m, &b)
	case ViewLargeIcon:
		layoutLargeIcon(m, &b)
	case ViewSmallIcon, ViewList:
		layoutSmallIcon(m, &b)
	case ViewTile:
		layoutTile(m, &b)
	}
	return b
}

// Details: check box, icon and label left to right inside the first
// column, one cell per further column.
func layoutDetails(m ItemMetrics, b *ItemBoxes) {
	var indent int32
	if m.ImageSize.W > 0 {
		indent = int32(m.IndentCount) * m.ImageSize.W
	}
	if len(m.Columns) > 0 {
		b.CheckBox.X = m.Columns[0].X + indent
	}

	b.Icon = Rect{X: b.CheckBox.Right() + 2, W: m.ImageSize.W, H: m.RowHeight}
	b.CheckBox.Y = m.RowHeight - b.CheckBox.H

	b.Label = Rect{X: b.Icon.Right(), H: m.RowHeight}
	if b.Icon.W > 0 {
		b.Label.X++
	}
	if len(m.Columns) > 0 {
		b.Label.W = m.Columns[0].W - b.Label.X + b.CheckBox.X
	} else {
		b.Label.W = m.TextSize.W
	}

	b.Item = Union(Union(b.CheckBox, b.Icon), b.Label)
	b.Bounds = Rect{W: b.Item.W, H: b.Item.H}
	if len(m.Columns) > 0 {
		var total int32
		for _, c := range m.Columns {
			total += c.W
		}
		b.Item.W = total
		b.Bounds.W = total
	}

	n := min(len(m.Columns), m.SubItemCount)
	b.SubItems = make([]Rect, n)
	for i := 0; i < n; i++ {
		b.SubItems[i] = Rect{X: m.Columns[i].X, W: m.Columns[i].W, H: m.RowHeight}
	}
}

// Large icon: the icon sits centered over a label that wraps onto a
// second line when it is wider than the label cell.
func layoutLargeIcon(m ItemMetrics, b *ItemBoxes) {
	text := m.TextSize
	if m.LabelWidth > text.W {
		text.H = 2 * m.LineHeight
	}

	b.Icon = Rect{W: m.ImageSize.W, H: m.ImageSize.H}
	if b.CheckBox.H > b.Icon.H {
		b.Icon.Y = b.CheckBox.H - b.Icon.H
	} else {
		b.CheckBox.Y = b.Icon.H - b.CheckBox.H
	}

	if text.W <= b.Icon.W {
		b.Icon.X = b.CheckBox.W + 1
		b.Label.X = b.Icon.X + (b.Icon.W-text.W)/2
	} else {
		b.Icon.X = b.CheckBox.W + 1 + text.W/2 - b.Icon.W/2
		b.Label.X = b.CheckBox.W + 1
	}
	b.Label.Y = b.Icon.Bottom() + 2
	b.Label.W, b.Label.H = text.W, text.H

	b.Item = Union(b.Icon, b.Label)
	u := Union(b.Item, b.CheckBox)
	b.Bounds = Rect{W: u.W, H: u.H}
}

// Small icon and list: check box, icon and label on one line; the line is
// as tall as the tallest of the three.
func layoutSmallIcon(m ItemMetrics, b *ItemBoxes) {
	b.Icon = Rect{X: b.CheckBox.W + 1}
	height := max(m.CheckBoxSize.H, m.TextSize.H)
	if m.ImageSize.W > 0 || m.ImageSize.H > 0 {
		height = max(height, m.ImageSize.H)
		b.Icon.W = m.ImageSize.W
	}

	b.CheckBox.Y = height - b.CheckBox.H
	b.Icon.H = height
	b.Label = Rect{X: b.Icon.Right() + 1, W: m.TextSize.W, H: height}

	b.Item = Union(b.Icon, b.Label)
	u := Union(b.Item, b.CheckBox)
	b.Bounds = Rect{W: u.W, H: u.H}
}

// Tile: icon on the left, text lines stacked and vertically centered in
// the tile to its right.
func layoutTile(m ItemMetrics, b *ItemBoxes) {
	b.Icon = Rect{W: m.ImageSize.W, H: m.ImageSize.H}
	if len(m.TileLines) == 0 {
		b.Label = Rect{X: b.Icon.Right() + 4, Y: m.TileSize.H / 2}
		b.Item = Union(b.Icon, b.Label)
		b.Bounds = Rect{W: b.Item.W, H: b.Item.H}
		return
	}

	first := m.TileLines[0]
	total := first.H
	width := first.W
	for _, line := range m.TileLines[1:] {
		if line.W == 0 && line.H == 0 {
			continue
		}
		width = max(width, line.W)
		total += line.H + m.LineSpacing
	}
	width = min(width, m.TileSize.W-(b.Icon.W+4))

	b.Label = Rect{X: b.Icon.Right() + 4, Y: m.TileSize.H/2 - total/2, W: width, H: total}

	b.TileLines = make([]Rect, 0, len(m.TileLines))
	line := Rect{X: b.Label.X, Y: b.Label.Y, W: width, H: first.H}
	b.TileLines = append(b.TileLines, line)
	y := line.Bottom() + m.LineSpacing
	for _, l := range m.TileLines[1:] {
		if l.W == 0 && l.H == 0 {
			continue
		}
		b.TileLines = append(b.TileLines, Rect{X: b.Label.X, Y: y, W: width, H: l.H})
		y += l.H + m.LineSpacing
	}

	b.Item = Union(b.Icon, b.Label)
	b.Bounds = Rect{W: b.Item.W, H: b.Item.H}
}
