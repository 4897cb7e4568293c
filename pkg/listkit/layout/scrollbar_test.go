package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// contentBars returns bar funcs for content of a fixed size.
func contentBars(content Size) (BarFunc, BarFunc) {
	h := func(area Size) ScrollBar { return ScrollBar{Visible: content.W > area.W, Enabled: true} }
	v := func(area Size) ScrollBar { return ScrollBar{Visible: content.H > area.H, Enabled: true} }
	return h, v
}

func TestResolveScrollBars(t *testing.T) {
	client := Rect{W: 100, H: 100}

	tests := []struct {
		name      string
		content   Size
		wantH     bool
		wantV     bool
		wantItems Rect
	}{
		{"fits", Size{W: 95, H: 95}, false, false, Rect{W: 100, H: 100}},
		{"horizontal forces vertical", Size{W: 150, H: 95}, true, true, Rect{W: 90, H: 90}},
		{"vertical forces horizontal", Size{W: 95, H: 150}, true, true, Rect{W: 90, H: 90}},
		{"vertical only", Size{W: 50, H: 150}, false, true, Rect{W: 90, H: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, v := contentBars(tt.content)
			got := ResolveScrollBars(client, 10, h, v)
			assert.Equal(t, tt.wantH, got.Horizontal.Visible)
			assert.Equal(t, tt.wantV, got.Vertical.Visible)
			assert.Equal(t, tt.wantItems, got.ItemsArea)
		})
	}
}

func TestScrollBar_Thumb(t *testing.T) {
	bar := ScrollBar{Visible: true, Enabled: true, Maximum: 9, LargeChange: 2, Value: 4}
	offset, length := bar.Thumb(100)
	assert.Equal(t, int32(40), offset)
	assert.Equal(t, int32(20), length)

	offset, length = Forced().Thumb(100)
	assert.Equal(t, int32(0), offset)
	assert.Equal(t, int32(100), length)

	offset, length = ScrollBar{}.Thumb(100)
	assert.Zero(t, offset)
	assert.Zero(t, length)
}
