package listkit

import (
	"cmp"
	"slices"
	"strings"
)

// GridColumn describes one grid column.
type GridColumn struct {
	Header       string
	Width        int32
	DefaultStyle CellStyle
}

// CellRef addresses one grid cell.
type CellRef struct {
	Row    int
	Column int
}

// Grid is a table of text cells with layered styles, shared rows and a
// cell selection that can be copied as text, CSV or HTML.
type Grid struct {
	columns  []GridColumn
	rows     Rows
	selected map[CellRef]struct{}

	DefaultStyle     CellStyle // Control layer
	RowsStyle        CellStyle // Applies to every row
	AlternatingStyle CellStyle // Applies to odd rows on top of RowsStyle

	SelectionChanged Event[[]CellRef]
}

// NewGrid creates a grid styled from the active theme.
func NewGrid(columns ...GridColumn) *Grid {
	return &Grid{
		columns:          slices.Clone(columns),
		selected:         make(map[CellRef]struct{}),
		DefaultStyle:     ThemeCellStyle(),
		AlternatingStyle: ThemeAlternatingStyle(),
	}
}

// Rows gives access to row storage. Rows are removed through RemoveRow and
// ClearRows.
func (g *Grid) Rows() *Rows { return &g.rows }

// ColumnCount returns the number of columns.
func (g *Grid) ColumnCount() int { return len(g.columns) }

// Column returns column col.
func (g *Grid) Column(col int) (GridColumn, error) {
	if col < 0 || col >= len(g.columns) {
		return GridColumn{}, rejected(argumentError("column", col))
	}
	return g.columns[col], nil
}

// SetColumnStyle replaces the default style of column col.
func (g *Grid) SetColumnStyle(col int, style CellStyle) error {
	if col < 0 || col >= len(g.columns) {
		return rejected(argumentError("set_column_style", col))
	}
	g.columns[col].DefaultStyle = style
	return nil
}

func (g *Grid) checkCell(op string, row, col int) error {
	if row < 0 || row >= g.rows.Len() {
		return rejected(argumentError(op, row))
	}
	if col < 0 || col >= len(g.columns) {
		return rejected(argumentError(op, col))
	}
	return nil
}

// Value returns the text of a cell.
func (g *Grid) Value(row, col int) (string, error) {
	if err := g.checkCell("value", row, col); err != nil {
		return "", err
	}
	return g.rows.view(row).Cell(col), nil
}

// SetValue writes a cell, materializing a shared row first.
func (g *Grid) SetValue(row, col int, text string) error {
	if err := g.checkCell("set_value", row, col); err != nil {
		return err
	}
	if g.rows.view(row).Cell(col) == text {
		return nil
	}
	r, _ := g.rows.Materialize(row)
	if len(r.Cells) <= col {
		r.Cells = append(r.Cells, make([]string, col+1-len(r.Cells))...)
	}
	r.Cells[col] = text
	return nil
}

// SetCellStyle sets a cell's own style, materializing a shared row first.
func (g *Grid) SetCellStyle(row, col int, style CellStyle) error {
	if err := g.checkCell("set_cell_style", row, col); err != nil {
		return err
	}
	r, _ := g.rows.Materialize(row)
	if r.CellStyles == nil {
		r.CellStyles = make(map[int]CellStyle)
	}
	r.CellStyles[col] = style
	return nil
}

// SetRowStyle sets a row's default style, materializing it first.
func (g *Grid) SetRowStyle(row int, style CellStyle) error {
	r, err := g.rows.Materialize(row)
	if err != nil {
		return err
	}
	r.DefaultStyle = style
	return nil
}

// Cascade returns the style layers of a cell, lowest priority first.
// Layers that set nothing are left out.
func (g *Grid) Cascade(row, col int) (StyleCascade, error) {
	if err := g.checkCell("cascade", row, col); err != nil {
		return nil, err
	}
	r := g.rows.view(row)
	layers := []CascadeEntry{
		{LayerControl, g.DefaultStyle},
		{LayerColumn, g.columns[col].DefaultStyle},
		{LayerRows, g.RowsStyle},
	}
	if row%2 == 1 {
		layers = append(layers, CascadeEntry{LayerAlternating, g.AlternatingStyle})
	}
	layers = append(layers,
		CascadeEntry{LayerRow, r.DefaultStyle},
		CascadeEntry{LayerCell, r.CellStyles[col]},
	)
	return slices.DeleteFunc(layers, func(e CascadeEntry) bool { return e.Style.IsEmpty() }), nil
}

// InheritedStyle returns the effective style of a cell.
func (g *Grid) InheritedStyle(row, col int) (CellStyle, error) {
	c, err := g.Cascade(row, col)
	if err != nil {
		return CellStyle{}, err
	}
	return c.Resolve(), nil
}

// SelectCell adds or removes a cell from the selection.
func (g *Grid) SelectCell(row, col int, selected bool) error {
	if err := g.checkCell("select_cell", row, col); err != nil {
		return err
	}
	ref := CellRef{Row: row, Column: col}
	_, was := g.selected[ref]
	if was == selected {
		return nil
	}
	if selected {
		g.selected[ref] = struct{}{}
	} else {
		delete(g.selected, ref)
	}
	g.SelectionChanged.raise("grid_selection_changed", g.SelectedCells())
	return nil
}

// SelectRow selects every cell of row.
func (g *Grid) SelectRow(row int) error {
	if row < 0 || row >= g.rows.Len() {
		return rejected(argumentError("select_row", row))
	}
	changed := false
	for col := range g.columns {
		ref := CellRef{Row: row, Column: col}
		if _, ok := g.selected[ref]; !ok {
			g.selected[ref] = struct{}{}
			changed = true
		}
	}
	if changed {
		g.SelectionChanged.raise("grid_selection_changed", g.SelectedCells())
	}
	return nil
}

// ClearSelection deselects every cell.
func (g *Grid) ClearSelection() {
	if len(g.selected) == 0 {
		return
	}
	clear(g.selected)
	g.SelectionChanged.raise("grid_selection_changed", nil)
}

// IsSelected reports whether a cell is selected.
func (g *Grid) IsSelected(row, col int) bool {
	_, ok := g.selected[CellRef{Row: row, Column: col}]
	return ok
}

// SelectedCells returns the selection in row-major order.
func (g *Grid) SelectedCells() []CellRef {
	out := make([]CellRef, 0, len(g.selected))
	for ref := range g.selected {
		out = append(out, ref)
	}
	slices.SortFunc(out, func(a, b CellRef) int {
		return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Column, b.Column))
	})
	return out
}

// ClipboardText renders the selection in format. The block spans every
// row and every column holding a selected cell; unselected cells inside
// it are rendered empty. An empty selection yields "".
func (g *Grid) ClipboardText(format ClipboardFormat) string {
	if len(g.selected) == 0 {
		return ""
	}
	var rows, cols []int
	for ref := range g.selected {
		rows = append(rows, ref.Row)
		cols = append(cols, ref.Column)
	}
	slices.Sort(rows)
	rows = slices.Compact(rows)
	slices.Sort(cols)
	cols = slices.Compact(cols)

	// Selection past the last row cannot be rendered.
	rows = slices.DeleteFunc(rows, func(row int) bool { return row >= g.rows.Len() })
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	for ri, row := range rows {
		r := g.rows.view(row)
		for ci, col := range cols {
			b.WriteString(ClipboardContent(
				r.Cell(col),
				g.IsSelected(row, col),
				ci == 0, ci == len(cols)-1,
				ri == 0, ri == len(rows)-1,
				format,
			))
		}
	}
	return b.String()
}

// RemoveRow deletes a row and renumbers the selection.
func (g *Grid) RemoveRow(row int) error {
	if err := g.rows.removeAt(row); err != nil {
		return err
	}
	next := make(map[CellRef]struct{}, len(g.selected))
	for ref := range g.selected {
		switch {
		case ref.Row == row:
			continue
		case ref.Row > row:
			ref.Row--
		}
		next[ref] = struct{}{}
	}
	changed := len(next) != len(g.selected)
	g.selected = next
	if changed {
		g.SelectionChanged.raise("grid_selection_changed", g.SelectedCells())
	}
	return nil
}

// ClearRows removes every row and the cell selection with them. Prototypes
// are kept.
func (g *Grid) ClearRows() {
	g.rows.clear()
	g.ClearSelection()
}
