package listkit

import (
	"github.com/BrandonKowalski/listkit/pkg/listkit/layout"
)

// CellStyle holds the visual attributes of a grid cell. Zero values mean
// "not set here": colors with zero alpha, a nil Alignment or Padding and
// empty strings are inherited from the layer below.
type CellStyle struct {
	BackColor          Color
	ForeColor          Color
	SelectionBackColor Color
	SelectionForeColor Color
	Alignment          *layout.ContentAlignment
	Padding            *layout.Padding
	Format             string // Display format applied by the host
	NullValue          string // Text shown for an empty cell
}

// IsEmpty reports whether the style sets nothing.
func (s CellStyle) IsEmpty() bool {
	return s == CellStyle{}
}

// Apply returns s with every attribute o sets overriding s.
func (s CellStyle) Apply(o CellStyle) CellStyle {
	if o.BackColor.A != 0 {
		s.BackColor = o.BackColor
	}
	if o.ForeColor.A != 0 {
		s.ForeColor = o.ForeColor
	}
	if o.SelectionBackColor.A != 0 {
		s.SelectionBackColor = o.SelectionBackColor
	}
	if o.SelectionForeColor.A != 0 {
		s.SelectionForeColor = o.SelectionForeColor
	}
	if o.Alignment != nil {
		s.Alignment = o.Alignment
	}
	if o.Padding != nil {
		s.Padding = o.Padding
	}
	if o.Format != "" {
		s.Format = o.Format
	}
	if o.NullValue != "" {
		s.NullValue = o.NullValue
	}
	return s
}

// Align returns the alignment, MiddleLeft when unset.
func (s CellStyle) Align() layout.ContentAlignment {
	if s.Alignment == nil {
		return layout.MiddleLeft
	}
	return *s.Alignment
}

// AlignPtr is a helper for building CellStyle literals.
func AlignPtr(a layout.ContentAlignment) *layout.ContentAlignment { return &a }

// StyleLayer names where in the cascade a style came from.
type StyleLayer int

const (
	LayerControl     StyleLayer = iota // Grid default
	LayerColumn                        // Owning column default
	LayerRows                          // Default for every row
	LayerAlternating                   // Default for odd rows
	LayerRow                           // The row's own default, shared or individualized
	LayerCell                          // The cell's own style
)

func (l StyleLayer) String() string {
	switch l {
	case LayerControl:
		return "control"
	case LayerColumn:
		return "column"
	case LayerRows:
		return "rows"
	case LayerAlternating:
		return "alternating"
	case LayerRow:
		return "row"
	case LayerCell:
		return "cell"
	default:
		return "unknown"
	}
}

// CascadeEntry is one contributing layer.
type CascadeEntry struct {
	Layer StyleLayer
	Style CellStyle
}

// StyleCascade lists the layers that make up a cell's effective style,
// lowest priority first.
type StyleCascade []CascadeEntry

// Resolve folds the layers into the effective style.
func (c StyleCascade) Resolve() CellStyle {
	var out CellStyle
	for _, e := range c {
		out = out.Apply(e.Style)
	}
	return out
}

// Source reports which layer decides the attribute picked by set, or -1
// when no layer sets it.
func (c StyleCascade) Source(set func(CellStyle) bool) StyleLayer {
	for i := len(c) - 1; i >= 0; i-- {
		if set(c[i].Style) {
			return c[i].Layer
		}
	}
	return -1
}

// ThemeAlternatingStyle is the odd-row default derived from the active
// theme.
func ThemeAlternatingStyle() CellStyle {
	return CellStyle{BackColor: GetTheme().AlternateRowColor}
}

// ThemeCellStyle derives the grid default from the active theme.
func ThemeCellStyle() CellStyle {
	t := GetTheme()
	return CellStyle{
		BackColor:          t.BackgroundColor,
		ForeColor:          t.TextColor,
		SelectionBackColor: t.HighlightColor,
		SelectionForeColor: t.HighlightedTextColor,
		Alignment:          AlignPtr(layout.MiddleLeft),
	}
}
