package sdlrender

import (
	"fmt"
	"image/color"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/layout"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Painter draws list controls with the active theme. Control geometry is
// in control coordinates; Origin moves the control inside the window.
type Painter struct {
	renderer *sdl.Renderer
	font     *ttf.Font
	text     *TextureCache[*sdl.Texture]
	images   *ImageList

	Origin layout.Point
}

// NewPainter creates a painter. images may be nil.
func NewPainter(w *Window, images *ImageList) *Painter {
	return &Painter{
		renderer: w.Renderer,
		font:     w.Font,
		text:     NewTextureCache[*sdl.Texture](),
		images:   images,
	}
}

// Destroy releases cached text textures.
func (p *Painter) Destroy() { p.text.Destroy() }

func (p *Painter) rect(r layout.Rect) *sdl.Rect {
	return &sdl.Rect{X: r.X + p.Origin.X, Y: r.Y + p.Origin.Y, W: r.W, H: r.H}
}

func (p *Painter) fill(r layout.Rect, c color.RGBA) {
	if r.Empty() {
		return
	}
	_ = p.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	_ = p.renderer.FillRect(p.rect(r))
}

func (p *Painter) outline(r layout.Rect, c color.RGBA) {
	if r.Empty() {
		return
	}
	_ = p.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	_ = p.renderer.DrawRect(p.rect(r))
}

// drawText renders text clipped to box, vertically centered.
func (p *Painter) drawText(text string, box layout.Rect, c color.RGBA) {
	if text == "" || box.Empty() {
		return
	}
	key := fmt.Sprintf("%02x%02x%02x%02x|%s", c.R, c.G, c.B, c.A, text)
	texture, ok := p.text.Get(key)
	if !ok {
		surface, err := p.font.RenderUTF8Blended(text, sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A})
		if err != nil {
			listkit.GetLogger().Debug("text render failed", "text", text, "error", err)
			return
		}
		texture, err = p.renderer.CreateTextureFromSurface(surface)
		surface.Free()
		if err != nil {
			listkit.GetLogger().Debug("text texture failed", "text", text, "error", err)
			return
		}
		p.text.Set(key, texture)
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}
	src := &sdl.Rect{W: min(w, box.W), H: min(h, box.H)}
	dst := p.rect(layout.Rect{X: box.X, Y: box.Y + max(0, (box.H-h)/2), W: src.W, H: src.H})
	_ = p.renderer.Copy(texture, src, dst)
}

func (p *Painter) checkBox(box layout.Rect, checked bool, theme listkit.Theme) {
	p.outline(box, theme.TextColor)
	if checked {
		p.fill(layout.UniformPadding(3).Deflate(box), theme.AccentColor)
	}
}

// Clear paints the control background.
func (p *Painter) Clear(size layout.Size) {
	p.fill(layout.Rect{W: size.W, H: size.H}, listkit.GetTheme().BackgroundColor)
}

// ScrollBars paints both bars inside a control of the given size.
func (p *Painter) ScrollBars(bars layout.ScrollBars, size layout.Size) {
	theme := listkit.GetTheme()
	area := bars.ItemsArea
	if bars.Vertical.Visible {
		track := layout.Rect{X: area.Right(), Y: area.Y, W: size.W - area.Right(), H: area.H}
		p.fill(track, theme.GridColor)
		off, length := bars.Vertical.Thumb(track.H)
		p.fill(layout.Rect{X: track.X + 2, Y: track.Y + off, W: track.W - 4, H: length}, theme.AccentColor)
	}
	if bars.Horizontal.Visible {
		track := layout.Rect{X: area.X, Y: area.Bottom(), W: area.W, H: size.H - area.Bottom()}
		p.fill(track, theme.GridColor)
		off, length := bars.Horizontal.Thumb(track.W)
		p.fill(layout.Rect{X: track.X + off, Y: track.Y + 2, W: length, H: track.H - 4}, theme.AccentColor)
	}
}

// ListBox paints rows returned by Visible.
func ListBox[T any](p *Painter, lb *listkit.ListBox[T]) {
	theme := listkit.GetTheme()
	size := lb.Size()
	p.Clear(size)

	bars := lb.ScrollBars()
	for _, item := range lb.Visible() {
		row := item.Bounds
		fg := theme.TextColor
		if item.Selected {
			p.fill(row, theme.HighlightColor)
			fg = theme.HighlightedTextColor
		}

		textBox := row
		if lb.CheckBoxes() {
			box := layout.Rect{X: row.X + 2, Y: row.Y + (row.H-12)/2, W: 12, H: 12}
			p.checkBox(box, item.Checked, theme)
			textBox.X += 16
			textBox.W -= 16
		}

		if item.Segments != nil {
			for _, seg := range item.Segments {
				p.drawText(seg.Text, layout.Rect{X: textBox.X + seg.X, Y: textBox.Y, W: textBox.W - seg.X, H: textBox.H}, fg)
			}
		} else {
			p.drawText(item.Text, textBox, fg)
		}
		if item.Focused {
			p.outline(row, theme.AccentColor)
		}
	}
	p.ScrollBars(bars, size)
}

// ListView paints the header and the items returned by Visible.
func ListView(p *Painter, lv *listkit.ListView, size layout.Size) {
	theme := listkit.GetTheme()
	p.Clear(size)
	large := lv.View() == layout.ViewLargeIcon || lv.View() == layout.ViewTile

	for _, item := range lv.Visible() {
		b := item.Boxes
		fg := theme.TextColor
		if item.Selected {
			p.fill(b.Label, theme.HighlightColor)
			fg = theme.HighlightedTextColor
		}
		if !b.CheckBox.Empty() {
			p.checkBox(b.CheckBox, item.Checked, theme)
		}
		if p.images != nil && item.Item.HasImage() && !b.Icon.Empty() {
			if tex := p.images.Get(item.Item.ImageIndex, large); tex != nil {
				_ = p.renderer.Copy(tex, nil, p.rect(b.Icon))
			}
		}

		switch {
		case len(b.TileLines) > 0:
			p.drawText(item.Item.Text, b.TileLines[0], fg)
			for i, line := range b.TileLines[1:] {
				p.drawText(item.Item.SubItemText(i+1), line, theme.HintColor)
			}
		case len(b.SubItems) > 0:
			p.drawText(item.Item.Text, b.Label, fg)
			for col := 1; col < len(b.SubItems); col++ {
				p.drawText(item.Item.SubItemText(col), b.SubItems[col], fg)
			}
		default:
			p.drawText(item.Item.Text, b.Label, fg)
		}
		if item.Focused {
			p.outline(b.Item, theme.AccentColor)
		}
	}

	columns := lv.Columns()
	for i, h := range lv.HeaderBounds() {
		p.fill(h, theme.GridColor)
		p.outline(h, theme.BackgroundColor)
		p.drawText(columns[i].Text, layout.UniformPadding(2).Deflate(h), theme.HintColor)
	}
	p.ScrollBars(lv.ScrollBars(), size)
}
