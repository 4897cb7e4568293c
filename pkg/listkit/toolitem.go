package listkit

import (
	"github.com/BrandonKowalski/listkit/pkg/listkit/layout"
)

// DefaultToolItemSize is the preferred size of an item with nothing to show.
var DefaultToolItemSize = layout.Size{W: 23, H: 23}

// ToolItem is the measurable part of a toolbar entry: what it shows, how
// text and image are arranged, and how large it wants to be. Hosts own the
// toolbar strip; ToolItem only answers geometry questions.
type ToolItem struct {
	Text        string
	ToolTipText string
	AutoToolTip bool // Use Text as the tooltip when ToolTipText is empty

	Style      layout.DisplayStyle
	Relation   layout.TextImageRelation
	TextAlign  layout.ContentAlignment
	ImageAlign layout.ContentAlignment
	Padding    layout.Padding

	ImageSize   layout.Size // Zero when there is no image
	ScaleImage  bool        // Scale the image to ScalingSize
	ScalingSize layout.Size

	// Label items are drawn flat and skip the border allowance.
	Label bool

	// AutoSize false pins the preferred size to ExplicitSize.
	AutoSize     bool
	ExplicitSize layout.Size

	Enabled bool
	Clicked Event[*ToolItem]
}

// NewToolItem returns an enabled, auto-sized item showing image and text
// side by side.
func NewToolItem(text string) *ToolItem {
	return &ToolItem{
		Text:       text,
		Style:      layout.DisplayImageAndText,
		Relation:   layout.ImageBeforeText,
		TextAlign:  layout.MiddleCenter,
		ImageAlign: layout.MiddleCenter,
		AutoSize:   true,
		Enabled:    true,
	}
}

// ToolTip returns the text to show on hover.
func (t *ToolItem) ToolTip() string {
	if t.AutoToolTip && t.ToolTipText == "" {
		return t.Text
	}
	return t.ToolTipText
}

func (t *ToolItem) imageSize() layout.Size {
	if t.ImageSize == (layout.Size{}) {
		return layout.Size{}
	}
	if t.ScaleImage && t.ScalingSize != (layout.Size{}) {
		return t.ScalingSize
	}
	return t.ImageSize
}

func (t *ToolItem) textSize(m TextMeasurer) layout.Size {
	if t.Text == "" || m == nil {
		return layout.Size{}
	}
	return m.MeasureText(t.Text)
}

// PreferredSize returns the size the item asks for. Everything but labels
// adds four pixels each way for the button border.
func (t *ToolItem) PreferredSize(m TextMeasurer) layout.Size {
	if !t.AutoSize {
		return t.ExplicitSize
	}

	size := DefaultToolItemSize
	text := t.textSize(m)
	image := t.imageSize()
	padded := layout.Size{W: text.W + t.Padding.Horizontal(), H: text.H + t.Padding.Vertical()}

	switch t.Style {
	case layout.DisplayText:
		size = padded
	case layout.DisplayImage:
		if image != (layout.Size{}) {
			size = image
		}
	case layout.DisplayImageAndText:
		size = padded
		if image != (layout.Size{}) {
			switch t.Relation {
			case layout.Overlay:
				size.W = max(size.W, image.W)
				size.H = max(size.H, image.H)
			case layout.ImageAboveText, layout.TextAboveImage:
				size.W = max(size.W, image.W)
				size.H += image.H
			case layout.ImageBeforeText, layout.TextBeforeImage:
				size.W += image.W
				size.H = max(size.H, image.H)
			}
		}
	}

	if !t.Label {
		size.W += 4
		size.H += 4
	}
	return size
}

// ContentRect is bounds minus padding.
func (t *ToolItem) ContentRect(bounds layout.Rect) layout.Rect {
	return t.Padding.Deflate(bounds)
}

// TextAndImageRects places the text and image inside bounds.
func (t *ToolItem) TextAndImageRects(bounds layout.Rect, m TextMeasurer) (text, image layout.Rect) {
	return layout.TextAndImageRects(t.ContentRect(bounds), layout.TextImage{
		Style:      t.Style,
		Relation:   t.Relation,
		TextSize:   t.textSize(m),
		ImageSize:  t.imageSize(),
		TextAlign:  t.TextAlign,
		ImageAlign: t.ImageAlign,
	})
}

// Click raises Clicked when the item is enabled.
func (t *ToolItem) Click() bool {
	if !t.Enabled {
		return false
	}
	t.Clicked.raise("tool_item_clicked", t)
	return true
}
