package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignInRect(t *testing.T) {
	outer := Rect{X: 10, Y: 10, W: 100, H: 50}
	inner := Size{W: 20, H: 10}

	tests := []struct {
		align ContentAlignment
		want  Rect
	}{
		{TopLeft, Rect{X: 10, Y: 10, W: 20, H: 10}},
		{MiddleCenter, Rect{X: 50, Y: 30, W: 20, H: 10}},
		{BottomRight, Rect{X: 90, Y: 50, W: 20, H: 10}},
		{TopCenter, Rect{X: 50, Y: 10, W: 20, H: 10}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.align), func(t *testing.T) {
			assert.Equal(t, tt.want, AlignInRect(outer, inner, tt.align))
		})
	}

	t.Run("oversized content is clipped and never starts left of outer", func(t *testing.T) {
		got := AlignInRect(Rect{W: 10, H: 10}, Size{W: 20, H: 20}, MiddleCenter)
		assert.Equal(t, Rect{X: 0, Y: -5, W: 10, H: 10}, got)
	})
}

func TestTextAndImageRects_Beside(t *testing.T) {
	content := Rect{W: 100, H: 20}
	base := TextImage{
		Style:     DisplayImageAndText,
		Relation:  ImageBeforeText,
		TextSize:  Size{W: 40, H: 10},
		ImageSize: Size{W: 16, H: 16},
	}

	tests := []struct {
		name       string
		textAlign  ContentAlignment
		imageAlign ContentAlignment
		wantImageX int32
	}{
		{"image left", MiddleLeft, MiddleLeft, 0},
		{"both centered", MiddleCenter, MiddleCenter, 14},
		{"both right", MiddleRight, MiddleRight, 44},
		{"image centered text right", MiddleRight, MiddleCenter, 28},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ti := base
			ti.TextAlign, ti.ImageAlign = tt.textAlign, tt.imageAlign
			text, image := TextAndImageRects(content, ti)
			assert.Equal(t, Rect{X: tt.wantImageX, Y: 2, W: 16, H: 16}, image)
			assert.Equal(t, Rect{X: tt.wantImageX + 16, Y: 5, W: 40, H: 10}, text)
		})
	}
}

func TestTextAndImageRects_Stacked(t *testing.T) {
	text, image := TextAndImageRects(Rect{W: 60, H: 60}, TextImage{
		Style:      DisplayImageAndText,
		Relation:   ImageAboveText,
		TextSize:   Size{W: 40, H: 16},
		ImageSize:  Size{W: 32, H: 32},
		TextAlign:  MiddleCenter,
		ImageAlign: MiddleCenter,
	})
	assert.Equal(t, Rect{X: 10, Y: 46, W: 40, H: 12}, text)
	assert.Equal(t, Rect{X: 14, Y: 8, W: 32, H: 32}, image)
}

func TestTextAndImageRects_MissingParts(t *testing.T) {
	content := Rect{W: 50, H: 20}

	text, image := TextAndImageRects(content, TextImage{Style: DisplayImageAndText, TextSize: Size{W: 10, H: 10}})
	assert.False(t, text.Empty())
	assert.True(t, image.Empty())

	text, image = TextAndImageRects(content, TextImage{Style: DisplayNone, TextSize: Size{W: 10, H: 10}})
	assert.True(t, text.Empty())
	assert.True(t, image.Empty())
}
