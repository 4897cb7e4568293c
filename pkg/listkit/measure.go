package listkit

import (
	"github.com/BrandonKowalski/listkit/pkg/listkit/layout"
	"github.com/mattn/go-runewidth"
)

// TextMeasurer reports the size of rendered text. Hosts implement it on top
// of their font engine.
type TextMeasurer interface {
	MeasureText(text string) layout.Size
	LineHeight() int32
}

// CellMeasurer measures text on a fixed cell grid, counting East Asian wide
// runes as two cells. Terminal hosts use it with 1x1 cells.
type CellMeasurer struct {
	CellWidth  int32
	CellHeight int32
}

// NewCellMeasurer returns a measurer for cells of the given size.
func NewCellMeasurer(cellWidth, cellHeight int32) CellMeasurer {
	return CellMeasurer{CellWidth: max(1, cellWidth), CellHeight: max(1, cellHeight)}
}

func (m CellMeasurer) MeasureText(text string) layout.Size {
	if text == "" {
		return layout.Size{}
	}
	return layout.Size{
		W: int32(runewidth.StringWidth(text)) * m.CellWidth,
		H: m.CellHeight,
	}
}

func (m CellMeasurer) LineHeight() int32 { return m.CellHeight }

// Truncate cuts text so it fits in width, appending tail when it was cut.
func (m CellMeasurer) Truncate(text string, width int32, tail string) string {
	cells := int(width / max(1, m.CellWidth))
	if runewidth.StringWidth(text) <= cells {
		return text
	}
	return runewidth.Truncate(text, cells, tail)
}
