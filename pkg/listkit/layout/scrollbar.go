package layout

// ScrollBar is the state a host needs to draw and drive one scrollbar.
// Units are whatever the owning layout scrolls by (items or columns).
type ScrollBar struct {
	Visible     bool
	Enabled     bool
	Maximum     int
	LargeChange int
	Value       int
}

// Forced returns a visible but disabled bar with an empty range, used when
// a bar is reserved even though the content fits.
func Forced() ScrollBar {
	return ScrollBar{Visible: true}
}

// ScrollBars is the result of resolving both bars against a client area.
type ScrollBars struct {
	Horizontal ScrollBar
	Vertical   ScrollBar
	ItemsArea  Rect // Client area minus the space taken by visible bars
}

// BarFunc computes one scrollbar for the currently available items area.
type BarFunc func(area Size) ScrollBar

// ResolveScrollBars settles the interplay between the two bars: showing
// one bar shrinks the items area, which can make the other necessary.
// Whichever bar appears first is recomputed once after the second one
// takes its space.
func ResolveScrollBars(client Rect, barSize int32, horizontal, vertical BarFunc) ScrollBars {
	area := client
	h := horizontal(area.Size())
	var v ScrollBar

	if h.Visible {
		area.H = max(0, area.H-barSize)
		v = vertical(area.Size())
		if v.Visible {
			area.W = max(0, area.W-barSize)
			h = horizontal(area.Size())
		}
	} else {
		v = vertical(area.Size())
		if v.Visible {
			area.W = max(0, area.W-barSize)
			h = horizontal(area.Size())
			if h.Visible {
				area.H = max(0, area.H-barSize)
				v = vertical(area.Size())
			}
		}
	}

	return ScrollBars{Horizontal: h, Vertical: v, ItemsArea: area}
}

// Thumb returns the offset and length of the thumb along a track of the
// given length, for hosts that draw bars themselves.
func (b ScrollBar) Thumb(track int32) (offset, length int32) {
	if !b.Visible || track <= 0 {
		return 0, 0
	}
	if !b.Enabled || b.Maximum <= 0 {
		return 0, track
	}
	span := b.Maximum + 1
	page := max(1, b.LargeChange)
	length = max(1, min(track, int32(int64(track)*int64(page)/int64(span))))
	movable := b.Maximum - page + 1
	if movable <= 0 {
		return 0, length
	}
	value := max(0, min(b.Value, movable))
	offset = int32(int64(track-length) * int64(value) / int64(movable))
	return offset, length
}
