package listkit

import (
	"fmt"
	"testing"

	"github.com/BrandonKowalski/listkit/pkg/listkit/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipboardContent(t *testing.T) {
	tests := []struct {
		name              string
		selected          bool
		first, last       bool
		firstRow, lastRow bool
		format            ClipboardFormat
		want              string
	}{
		{"text middle", true, false, false, true, true, FormatText, "a<b\t"},
		{"text row end", true, false, true, true, false, FormatUnicodeText, "a<b\n"},
		{"text block end", true, false, true, false, true, FormatText, "a<b"},
		{"csv middle", true, true, false, true, true, FormatCSV, "a<b,"},
		{"unselected text", false, true, false, true, true, FormatText, "\t"},
		{"html whole", true, true, true, true, true, FormatHTML, "<TABLE><TR><TD>a<b</TD></TR></TABLE>"},
		{"html unselected", false, false, false, false, false, FormatHTML, "<TD>&nbsp;</TD>"},
		{"unknown format", true, true, true, true, true, ClipboardFormat("Rtf"), "a<b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClipboardContent("a<b", tt.selected, tt.first, tt.last, tt.firstRow, tt.lastRow, tt.format)
			assert.Equal(t, tt.want, got)
		})
	}
}

func ExampleClipboardContent() {
	fmt.Println(ClipboardContent("x", true, true, false, true, false, FormatHTML))
	// Output: <TABLE><TR><TD>x</TD>
}

func sampleGrid(t *testing.T) *Grid {
	t.Helper()
	g := NewGrid(GridColumn{Header: "Name"}, GridColumn{Header: "Qty"}, GridColumn{Header: "Note"})
	p := g.Rows().AddPrototype(Row{Cells: []string{"-", "0", ""}})
	_, err := g.Rows().AddShared(p, 4)
	require.NoError(t, err)
	return g
}

func TestGrid_SharedRowsMaterializeOnWrite(t *testing.T) {
	g := sampleGrid(t)
	assert.Equal(t, 4, g.Rows().SharedCount())

	v, err := g.Value(2, 1)
	require.NoError(t, err)
	assert.Equal(t, "0", v)

	require.NoError(t, g.SetValue(2, 1, "0"))
	assert.Equal(t, 4, g.Rows().SharedCount(), "writing the same value keeps the row shared")

	require.NoError(t, g.SetValue(2, 1, "7"))
	state, err := g.Rows().State(2)
	require.NoError(t, err)
	assert.False(t, state.IsShared())
	assert.Equal(t, -1, state.Prototype())
	assert.Equal(t, 3, g.Rows().SharedCount())

	other, _ := g.Value(1, 1)
	assert.Equal(t, "0", other, "prototype untouched")
	proto, err := g.Rows().Prototype(0)
	require.NoError(t, err)
	assert.Equal(t, "0", proto.Cell(1))
}

func TestGrid_StyleCascade(t *testing.T) {
	g := sampleGrid(t)
	red := Color{R: 255, A: 255}
	blue := Color{B: 255, A: 255}
	green := Color{G: 255, A: 255}

	g.RowsStyle = CellStyle{ForeColor: blue}
	require.NoError(t, g.SetColumnStyle(1, CellStyle{Alignment: AlignPtr(layout.MiddleRight)}))
	require.NoError(t, g.SetCellStyle(3, 1, CellStyle{ForeColor: red}))
	require.NoError(t, g.SetRowStyle(1, CellStyle{BackColor: green}))

	even, err := g.InheritedStyle(0, 1)
	require.NoError(t, err)
	assert.Equal(t, blue, even.ForeColor)
	assert.Equal(t, layout.MiddleRight, even.Align())
	assert.Equal(t, GetTheme().BackgroundColor, even.BackColor)

	odd, err := g.InheritedStyle(3, 1)
	require.NoError(t, err)
	assert.Equal(t, red, odd.ForeColor)
	assert.Equal(t, GetTheme().AlternateRowColor, odd.BackColor)

	rowDefault, err := g.InheritedStyle(1, 0)
	require.NoError(t, err)
	assert.Equal(t, green, rowDefault.BackColor, "row default beats alternating rows")

	cascade, err := g.Cascade(3, 1)
	require.NoError(t, err)
	layers := make([]StyleLayer, len(cascade))
	for i, e := range cascade {
		layers[i] = e.Layer
	}
	assert.Equal(t, []StyleLayer{LayerControl, LayerColumn, LayerRows, LayerAlternating, LayerCell}, layers)
	assert.Equal(t, LayerCell, cascade.Source(func(s CellStyle) bool { return s.ForeColor.A != 0 }))
	assert.Equal(t, LayerColumn, cascade.Source(func(s CellStyle) bool { return s.Alignment != nil }))
	assert.Equal(t, StyleLayer(-1), cascade.Source(func(s CellStyle) bool { return s.Format != "" }))
}

func TestGrid_ClipboardText(t *testing.T) {
	g := sampleGrid(t)
	require.NoError(t, g.SetValue(0, 0, "apple"))
	require.NoError(t, g.SetValue(0, 1, "3"))
	require.NoError(t, g.SetValue(2, 0, "pear"))
	require.NoError(t, g.SetValue(2, 1, "5"))

	assert.Empty(t, g.ClipboardText(FormatText))

	var events int
	g.SelectionChanged.Subscribe(func([]CellRef) { events++ })
	require.NoError(t, g.SelectRow(0))
	require.NoError(t, g.SelectCell(2, 0, true))
	require.NoError(t, g.SelectCell(2, 1, true))
	require.NoError(t, g.SelectCell(1, 2, false))
	require.NoError(t, g.SelectCell(2, 1, true))
	assert.Equal(t, 3, events)

	assert.Equal(t, "apple\t3\t\npear\t5\t", g.ClipboardText(FormatText))
	assert.Equal(t, "apple,3,\npear,5,", g.ClipboardText(FormatCSV))
	assert.Equal(t,
		"<TABLE><TR><TD>apple</TD><TD>3</TD><TD></TD></TR><TR><TD>pear</TD><TD>5</TD><TD>&nbsp;</TD></TR></TABLE>",
		g.ClipboardText(FormatHTML))
}

func TestGrid_RemoveRowRenumbersSelection(t *testing.T) {
	g := sampleGrid(t)
	require.NoError(t, g.SelectCell(1, 0, true))
	require.NoError(t, g.SelectCell(3, 2, true))

	require.NoError(t, g.RemoveRow(1))
	assert.Equal(t, []CellRef{{Row: 2, Column: 2}}, g.SelectedCells())
	assert.Equal(t, 3, g.Rows().Len())
}

func TestGrid_Rejections(t *testing.T) {
	g := sampleGrid(t)
	assert.True(t, IsInvalidArgument(g.SetValue(4, 0, "x")))
	assert.True(t, IsInvalidArgument(g.SetValue(0, 3, "x")))
	_, err := g.Rows().AddShared(9, 1)
	assert.True(t, IsInvalidArgument(err))
	_, err = g.Rows().Materialize(-1)
	assert.True(t, IsInvalidArgument(err))
	assert.Equal(t, 4, g.Rows().SharedCount())
}

func TestGrid_ClearRowsDropsSelection(t *testing.T) {
	g := sampleGrid(t)
	require.NoError(t, g.SelectCell(3, 1, true))

	var last []CellRef
	events := 0
	g.SelectionChanged.Subscribe(func(cells []CellRef) { events++; last = cells })
	g.ClearRows()

	assert.Zero(t, g.Rows().Len())
	assert.Empty(t, g.SelectedCells())
	assert.Equal(t, 1, events)
	assert.Empty(t, last)
	assert.Empty(t, g.ClipboardText(FormatText))

	_, err := g.Rows().AddShared(0, 1)
	require.NoError(t, err, "prototypes survive")
}

func TestGrid_ClipboardSkipsRowsPastTheEnd(t *testing.T) {
	g := sampleGrid(t)
	require.NoError(t, g.SetValue(0, 0, "apple"))
	require.NoError(t, g.SelectCell(0, 0, true))
	g.selected[CellRef{Row: 9, Column: 0}] = struct{}{}

	assert.NotPanics(t, func() {
		assert.Equal(t, "apple", g.ClipboardText(FormatText))
	})

	clear(g.selected)
	g.selected[CellRef{Row: 9, Column: 1}] = struct{}{}
	assert.Empty(t, g.ClipboardText(FormatCSV))
}
