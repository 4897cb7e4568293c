package listkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTabStops_DefaultInterval(t *testing.T) {
	ts := NewTabStops(10)
	assert.Equal(t, int32(37), ts.Interval())
	assert.Equal(t, int32(37), ts.Next(0))
	assert.Equal(t, int32(74), ts.Next(37))
	assert.Equal(t, int32(74), ts.Next(40))
}

func TestTabStops_CustomOffsets(t *testing.T) {
	ts := NewTabStops(10)
	ts.AddOffset(50)
	ts.AddOffset(20)
	assert.Equal(t, []int{20, 50}, ts.Offsets())

	assert.Equal(t, int32(20), ts.Next(0))
	assert.Equal(t, int32(50), ts.Next(20))
	assert.Equal(t, int32(87), ts.Next(50), "default interval resumes after the last custom stop")
}

func TestTabStops_Expand(t *testing.T) {
	ts := NewTabStops(10)
	m := NewCellMeasurer(1, 1)

	segs := ts.Expand("ab\tc\t\tdone", m)
	assert.Equal(t, []Segment{
		{Text: "ab", X: 0},
		{Text: "c", X: 37},
		{Text: "", X: 74},
		{Text: "done", X: 111},
	}, segs)
}

func TestCellMeasurer_WideRunes(t *testing.T) {
	m := NewCellMeasurer(8, 16)
	assert.Equal(t, int32(16), m.MeasureText("日").W)
	assert.Equal(t, int32(16), m.MeasureText("ab").W)
	assert.Zero(t, m.MeasureText("").H)
	assert.Equal(t, "ab…", m.Truncate("abcdef", 24, "…"))
}
