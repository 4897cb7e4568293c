package layout

import "github.com/BrandonKowalski/listkit/pkg/listkit/constants"

// ContentAlignment places content inside a larger box.
type ContentAlignment int

const (
	TopLeft ContentAlignment = iota
	TopCenter
	TopRight
	MiddleLeft
	MiddleCenter
	MiddleRight
	BottomLeft
	BottomCenter
	BottomRight
)

// Horizontal returns the column component of the alignment.
func (a ContentAlignment) Horizontal() constants.TextAlign {
	switch a {
	case TopCenter, MiddleCenter, BottomCenter:
		return constants.TextAlignCenter
	case TopRight, MiddleRight, BottomRight:
		return constants.TextAlignRight
	default:
		return constants.TextAlignLeft
	}
}

// AlignInRect positions a box of the given size inside outer. The result
// never exceeds outer's size, and centering never starts left of outer.
func AlignInRect(outer Rect, inner Size, align ContentAlignment) Rect {
	var x, y int32

	switch align.Horizontal() {
	case constants.TextAlignCenter:
		x = max(outer.X+(outer.W-inner.W)/2, outer.X)
	case constants.TextAlignRight:
		x = outer.Right() - inner.W
	default:
		x = outer.X
	}

	switch align {
	case MiddleLeft, MiddleCenter, MiddleRight:
		y = outer.Y + (outer.H-inner.H)/2
	case BottomLeft, BottomCenter, BottomRight:
		y = outer.Bottom() - inner.H
	default:
		y = outer.Y
	}

	return Rect{X: x, Y: y, W: min(inner.W, outer.W), H: min(inner.H, outer.H)}
}

// DisplayStyle selects what a toolbar item shows.
type DisplayStyle int

const (
	DisplayNone         DisplayStyle = iota // Nothing is drawn
	DisplayText                             // Text only
	DisplayImage                            // Image only
	DisplayImageAndText                     // Both, arranged by TextImageRelation
)

// TextImageRelation arranges text and image when both are shown.
type TextImageRelation int

const (
	Overlay         TextImageRelation = iota // Text drawn over the image
	ImageAboveText                           // Image stacked over the text
	TextAboveImage                           // Text stacked over the image
	ImageBeforeText                          // Image left of the text
	TextBeforeImage                          // Text left of the image
)

// TextImage is the input to TextAndImageRects.
type TextImage struct {
	Style      DisplayStyle
	Relation   TextImageRelation
	TextSize   Size // Zero when there is no text
	ImageSize  Size // Zero when there is no image
	TextAlign  ContentAlignment
	ImageAlign ContentAlignment
}

func (t TextImage) hasText() bool  { return t.TextSize.W > 0 || t.TextSize.H > 0 }
func (t TextImage) hasImage() bool { return t.ImageSize.W > 0 || t.ImageSize.H > 0 }

// TextAndImageRects places text and image inside the content rectangle.
// Empty rectangles come back for whatever is not drawn.
func TextAndImageRects(content Rect, t TextImage) (text, image Rect) {
	switch t.Style {
	case DisplayText:
		if t.hasText() {
			text = AlignInRect(content, t.TextSize, t.TextAlign)
		}
	case DisplayImage:
		if t.hasImage() {
			image = AlignInRect(content, t.ImageSize, t.ImageAlign)
		}
	case DisplayImageAndText:
		switch {
		case !t.hasImage() && t.hasText():
			text = AlignInRect(content, t.TextSize, t.TextAlign)
		case !t.hasImage():
			// nothing to draw
		case !t.hasText():
			image = AlignInRect(content, t.ImageSize, t.ImageAlign)
		default:
			text, image = arrangeTextImage(content, t)
		}
	}
	return text, image
}

func arrangeTextImage(content Rect, t TextImage) (text, image Rect) {
	switch t.Relation {
	case Overlay:
		text = AlignInRect(content, t.TextSize, t.TextAlign)
		image = AlignInRect(content, t.ImageSize, t.ImageAlign)
	case ImageAboveText:
		textBand := Rect{X: content.X, Y: content.Bottom() - (t.TextSize.H - 4), W: content.W, H: t.TextSize.H - 4}
		imageBand := Rect{X: content.X, Y: content.Y, W: content.W, H: content.H - textBand.H}
		text = AlignInRect(textBand, t.TextSize, t.TextAlign)
		image = AlignInRect(imageBand, t.ImageSize, t.ImageAlign)
	case TextAboveImage:
		textBand := Rect{X: content.X, Y: content.Y, W: content.W, H: t.TextSize.H - 4}
		imageBand := Rect{X: content.X, Y: textBand.Bottom(), W: content.W, H: content.H - textBand.H}
		text = AlignInRect(textBand, t.TextSize, t.TextAlign)
		image = AlignInRect(imageBand, t.ImageSize, t.ImageAlign)
	case ImageBeforeText:
		text, image = besideEachOther(content, false, t)
	case TextBeforeImage:
		text, image = besideEachOther(content, true, t)
	}
	return text, image
}

// besideEachOther lays text and image on one line. The pair shares the
// free width: it starts at the left edge when the image is left aligned,
// at the right when both are right aligned, and a third or two thirds of
// the way across otherwise.
func besideEachOther(area Rect, textFirst bool, t TextImage) (text, image Rect) {
	free := area.W - (t.TextSize.W + t.ImageSize.W)
	textH := t.TextAlign.Horizontal()
	imageH := t.ImageAlign.Horizontal()

	var offset int32
	switch {
	case imageH == constants.TextAlignLeft:
		offset = 0
	case imageH == constants.TextAlignRight && textH == constants.TextAlignRight:
		offset = free
	case imageH == constants.TextAlignCenter && textH != constants.TextAlignRight:
		offset = free / 3
	default:
		offset = 2 * (free / 3)
	}

	textY := AlignInRect(area, t.TextSize, t.TextAlign).Y
	imageY := AlignInRect(area, t.ImageSize, t.ImageAlign).Y

	if textFirst {
		text = Rect{X: area.X + offset, Y: textY, W: t.TextSize.W, H: t.TextSize.H}
		image = Rect{X: text.Right(), Y: imageY, W: t.ImageSize.W, H: t.ImageSize.H}
	} else {
		image = Rect{X: area.X + offset, Y: imageY, W: t.ImageSize.W, H: t.ImageSize.H}
		text = Rect{X: image.Right(), Y: textY, W: t.TextSize.W, H: t.TextSize.H}
	}
	return text, image
}
