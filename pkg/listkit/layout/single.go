package layout

import "sort"

// SingleColumn lays items out top to bottom in one column. Items share
// ItemHeight unless a Heights callback is supplied, in which case each item
// is measured once when the layout is built and offsets come from prefix sums.
//
// A SingleColumn is a cache: rebuild it when the item count, item heights or
// draw mode change. Scrolling only changes the top index passed to its methods.
type SingleColumn struct {
	count      int
	itemHeight int32
	starts     []int32 // len count+1, only in variable mode
}

// NewSingleColumn builds a fixed-height layout.
func NewSingleColumn(count int, itemHeight int32) *SingleColumn {
	return &SingleColumn{count: max(0, count), itemHeight: itemHeight}
}

// NewVariableColumn builds a variable-height layout, calling heights once
// per item. Negative heights count as zero.
func NewVariableColumn(count int, heights func(index int) int32) *SingleColumn {
	count = max(0, count)
	s := &SingleColumn{count: count, starts: make([]int32, count+1)}
	var sum int32
	for i := 0; i < count; i++ {
		s.starts[i] = sum
		sum += max(0, heights(i))
	}
	s.starts[count] = sum
	if count > 0 {
		s.itemHeight = sum / int32(count)
	}
	return s
}

func (s *SingleColumn) Count() int { return s.count }

// Variable reports whether items were measured individually.
func (s *SingleColumn) Variable() bool { return s.starts != nil }

// ItemHeight returns the fixed height, or the mean height in variable mode.
func (s *SingleColumn) ItemHeight() int32 { return s.itemHeight }

func (s *SingleColumn) degenerate() bool {
	return s.count == 0 || (!s.Variable() && s.itemHeight <= 0)
}

// Height returns the height of item i.
func (s *SingleColumn) Height(i int) int32 {
	if s.Variable() {
		return s.starts[i+1] - s.starts[i]
	}
	return s.itemHeight
}

// Offset returns the distance from the top of item 0 to the top of item i.
func (s *SingleColumn) Offset(i int) int32 {
	if s.Variable() {
		return s.starts[i]
	}
	return int32(i) * s.itemHeight
}

// ContentHeight is the sum of all item heights.
func (s *SingleColumn) ContentHeight() int32 {
	if s.count == 0 {
		return 0
	}
	return s.Offset(s.count-1) + s.Height(s.count-1)
}

// ItemRect returns item i's rectangle relative to the viewport when top is
// the first displayed item.
func (s *SingleColumn) ItemRect(i, top int, width int32) Rect {
	return Rect{X: 0, Y: s.Offset(i) - s.Offset(top), W: width, H: s.Height(i)}
}

// LastVisible returns the last item whose top edge lies inside a viewport
// of the given height. A partially shown item at the bottom counts. When
// nothing is visible the result is top-1, so [top, LastVisible] is empty.
func (s *SingleColumn) LastVisible(top int, viewportHeight int32) int {
	if s.degenerate() || viewportHeight <= 0 || top < 0 || top >= s.count {
		return top - 1
	}
	limit := s.Offset(top) + viewportHeight
	if !s.Variable() {
		fit := ceilDiv(int(viewportHeight), int(s.itemHeight))
		return min(s.count-1, top+fit-1)
	}
	// First item starting at or beyond the bottom edge.
	past := sort.Search(s.count, func(i int) bool { return s.starts[i] >= limit })
	return max(top, past-1)
}

// WholeItems returns how many items starting at top fit completely.
func (s *SingleColumn) WholeItems(top int, viewportHeight int32) int {
	if s.degenerate() || viewportHeight <= 0 || top < 0 || top >= s.count {
		return 0
	}
	if !s.Variable() {
		return min(s.count-top, int(viewportHeight/s.itemHeight))
	}
	limit := s.starts[top] + viewportHeight
	past := sort.Search(s.count+1, func(i int) bool { return s.starts[i] > limit })
	return max(0, past-1-top)
}

// MaxTop is the largest top index that still fills the viewport, so the
// last item sits at the bottom edge.
func (s *SingleColumn) MaxTop(viewportHeight int32) int {
	if s.degenerate() || viewportHeight <= 0 {
		return 0
	}
	if !s.Variable() {
		return max(0, min(s.count-1, s.count-int(viewportHeight/s.itemHeight)))
	}
	total := s.starts[s.count]
	top := sort.Search(s.count, func(i int) bool { return total-s.starts[i] <= viewportHeight })
	return min(top, s.count-1)
}

// ClampTop limits top to [0, MaxTop].
func (s *SingleColumn) ClampTop(top int, viewportHeight int32) int {
	return max(0, min(top, s.MaxTop(viewportHeight)))
}

// EnsureVisible returns the top index that brings index fully into view
// while moving the viewport as little as possible.
func (s *SingleColumn) EnsureVisible(index, top int, viewportHeight int32) int {
	if s.degenerate() || index < 0 || index >= s.count {
		return max(0, min(top, s.count-1))
	}
	if index < top {
		return index
	}
	if !s.Variable() {
		fit := max(1, int(viewportHeight/s.itemHeight))
		if index >= top+fit {
			return index - fit + 1
		}
		return top
	}
	bottom := s.starts[index+1]
	for top < index && bottom-s.starts[top] > viewportHeight {
		top++
	}
	return top
}

// IndexAtPoint returns the visible item containing (x, y), or -1. Only the
// range [top, LastVisible] is scanned.
func (s *SingleColumn) IndexAtPoint(x, y int32, top int, viewport Size) int {
	last := s.LastVisible(top, viewport.H)
	for i := top; i <= last; i++ {
		if s.ItemRect(i, top, viewport.W).Contains(x, y) {
			return i
		}
	}
	return -1
}

// VScroll returns the vertical scrollbar for a viewport. The range is in
// items: Maximum is count-1 and LargeChange is the number of whole items
// that fit.
func (s *SingleColumn) VScroll(top int, viewportHeight int32) ScrollBar {
	bar := ScrollBar{Value: top}
	if s.count == 0 || s.ContentHeight() <= viewportHeight {
		return bar
	}
	bar.Visible = true
	bar.Enabled = true
	bar.Maximum = s.count - 1
	if s.itemHeight > 0 {
		bar.LargeChange = max(0, int(viewportHeight/s.itemHeight))
	}
	return bar
}
