package listkit

import (
	"strings"

	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
)

// TabStops places tab characters inside item text. Without custom offsets
// stops repeat every TabStopFontFactor font heights. Custom offsets are
// absolute pixel positions; past the last one the default interval resumes.
type TabStops struct {
	custom     *IndexSet
	fontHeight int32
}

// NewTabStops returns tab stops for a font of the given height.
func NewTabStops(fontHeight int32) *TabStops {
	return &TabStops{custom: NewSortedIndexSet(), fontHeight: fontHeight}
}

// SetFontHeight updates the default interval.
func (t *TabStops) SetFontHeight(h int32) { t.fontHeight = h }

// Interval is the default distance between stops.
func (t *TabStops) Interval() int32 {
	return int32(float64(t.fontHeight) * constants.TabStopFontFactor)
}

// AddOffset adds a custom stop at x pixels.
func (t *TabStops) AddOffset(x int32) bool { return t.custom.Add(int(x)) }

// RemoveOffset drops a custom stop.
func (t *TabStops) RemoveOffset(x int32) bool { return t.custom.Remove(int(x)) }

// Offsets returns the custom stops in ascending order.
func (t *TabStops) Offsets() []int {
	return t.custom.Values()
}

// ClearOffsets removes every custom stop.
func (t *TabStops) ClearOffsets() { t.custom.Clear() }

// Next returns the first stop strictly right of x.
func (t *TabStops) Next(x int32) int32 {
	base := int32(0)
	for v := range t.custom.All() {
		if int32(v) > x {
			return int32(v)
		}
		base = int32(v)
	}
	step := t.Interval()
	if step <= 0 {
		return x
	}
	return base + ((x-base)/step+1)*step
}

// Segment is a run of text between tabs and where it starts.
type Segment struct {
	Text string
	X    int32
}

// Expand splits text on tabs and positions each run.
func (t *TabStops) Expand(text string, m TextMeasurer) []Segment {
	parts := strings.Split(text, "\t")
	segs := make([]Segment, 0, len(parts))
	var x int32
	for i, p := range parts {
		if i > 0 {
			x = t.Next(x)
		}
		segs = append(segs, Segment{Text: p, X: x})
		x += m.MeasureText(p).W
	}
	return segs
}
