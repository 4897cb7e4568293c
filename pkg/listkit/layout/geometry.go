// Package layout holds the integer arithmetic behind the list controls:
// item extents, visible ranges, scrollbar ranges and the sub-regions of a
// single item. Everything here is a pure function of its inputs so hosts
// can call it from a paint pass without touching control state.
package layout

// Rect is an axis-aligned rectangle in host pixels (or terminal cells).
// The right and bottom edges are exclusive.
type Rect struct {
	X int32
	Y int32
	W int32
	H int32
}

// Size is a width and height pair.
type Size struct {
	W int32
	H int32
}

// Point is a position in host pixels.
type Point struct {
	X int32
	Y int32
}

func (r Rect) Right() int32  { return r.X + r.W }
func (r Rect) Bottom() int32 { return r.Y + r.H }
func (r Rect) Size() Size    { return Size{W: r.W, H: r.H} }

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y int32) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects reports whether r and o share any area.
func (r Rect) Intersects(o Rect) bool {
	return o.X < r.Right() && r.X < o.Right() && o.Y < r.Bottom() && r.Y < o.Bottom()
}

// Offset returns r moved by dx, dy.
func (r Rect) Offset(dx, dy int32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Union returns the smallest rectangle covering both r and o. Zero-size
// rectangles still contribute their position, so an absent check box at
// the origin anchors the item bounds at x=0.
func Union(r, o Rect) Rect {
	x := min(r.X, o.X)
	y := min(r.Y, o.Y)
	right := max(r.Right(), o.Right())
	bottom := max(r.Bottom(), o.Bottom())
	return Rect{X: x, Y: y, W: right - x, H: bottom - y}
}

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

func (p Padding) Horizontal() int32 { return p.Left + p.Right }
func (p Padding) Vertical() int32   { return p.Top + p.Bottom }

// Deflate shrinks r by the padding. The result never has negative size.
func (p Padding) Deflate(r Rect) Rect {
	return Rect{
		X: r.X + p.Left,
		Y: r.Y + p.Top,
		W: max(0, r.W-p.Horizontal()),
		H: max(0, r.H-p.Vertical()),
	}
}

// ceilDiv divides rounding up. b must be positive.
func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
