package listkit

import (
	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
)

// SelectionChange carries the selected indices, ascending, after a change.
type SelectionChange struct {
	Selected []int
}

// FocusChange reports a move of the focused index. -1 means no focus.
type FocusChange struct {
	Old int
	New int
}

// SelectionController tracks which indices of a list are selected, the
// focused index and the anchor used for range selection.
//
// Every call that changes the set of selected indices raises
// SelectionChanged exactly once. Calls that change nothing raise nothing.
// Events are raised after all bookkeeping of the call is finished, so a
// handler sees selection, anchor, focus and count in agreement.
type SelectionController struct {
	mode     SelectionMode
	selected *IndexSet
	anchor   int
	focused  int
	count    int

	// Selection as it stood when the anchor was last set by a ctrl click.
	// Ctrl+Shift ranges are added on top of it.
	base *IndexSet

	// While holds > 0 events are withheld and compared against the
	// state captured when the first hold began.
	holds     int
	heldSel   *IndexSet
	heldFocus int

	SelectionChanged Event[SelectionChange]
	FocusChanged     Event[FocusChange]
}

// NewSelectionController returns a controller for count items.
func NewSelectionController(mode SelectionMode, count int) *SelectionController {
	return &SelectionController{
		mode:     mode,
		selected: NewLazyIndexSet(),
		base:     NewLazyIndexSet(),
		anchor:   -1,
		focused:  -1,
		count:    max(0, count),
	}
}

func (c *SelectionController) Mode() SelectionMode { return c.mode }
func (c *SelectionController) Anchor() int         { return c.anchor }
func (c *SelectionController) Focused() int        { return c.focused }
func (c *SelectionController) Count() int          { return c.count }
func (c *SelectionController) Len() int            { return c.selected.Len() }

// Selected returns the selected indices in ascending order.
func (c *SelectionController) Selected() []int { return c.selected.Values() }

// SelectedIndex returns the lowest selected index, or -1.
func (c *SelectionController) SelectedIndex() int { return c.selected.First() }

// IsSelected reports whether index is selected.
func (c *SelectionController) IsSelected(index int) bool { return c.selected.Contains(index) }

func (c *SelectionController) inRange(index int) bool {
	return index >= 0 && index < c.count
}

// SetMode switches modes. None drops the selection and Single keeps only
// the lowest selected index.
func (c *SelectionController) SetMode(m SelectionMode) {
	if m == c.mode {
		return
	}
	c.change(func() {
		c.mode = m
		switch m {
		case SelectionNone:
			c.selected.Clear()
		case SelectionSingle:
			if first := c.selected.First(); first >= 0 {
				c.selected.Clear()
				c.selected.Add(first)
			}
		}
		c.base.Clear()
	})
}

// Select applies a pointer selection at index with the given modifiers.
//
// Single mode replaces the selection, and index -1 empties it. MultiSimple
// toggles index. MultiExtended selects exactly the anchor..index range on
// Shift (added to the ctrl-click baseline on Ctrl+Shift), toggles on Ctrl
// and replaces otherwise.
func (c *SelectionController) Select(index int, mods constants.Modifier) error {
	if c.mode == SelectionNone {
		return rejected(operationError("select"))
	}
	if !c.inRange(index) && !(index == -1 && c.mode == SelectionSingle) {
		return rejected(argumentError("select", index))
	}

	c.change(func() {
		switch c.mode {
		case SelectionSingle:
			c.selected.Clear()
			c.selected.Add(index)
			c.anchor = index
		case SelectionMultiSimple:
			c.toggle(index)
			c.anchor = index
		case SelectionMultiExtended:
			c.selectExtended(index, mods)
		}
		if index >= 0 {
			c.focused = index
		}
	})
	return nil
}

func (c *SelectionController) selectExtended(index int, mods constants.Modifier) {
	shift := mods.Has(constants.ModShift) && c.anchor >= 0
	ctrl := mods.Has(constants.ModCtrl)

	switch {
	case shift:
		c.selected.Clear()
		if ctrl {
			for v := range c.base.All() {
				c.selected.Add(v)
			}
		}
		c.addRange(c.anchor, index)
	case ctrl:
		c.base = c.selected.Clone()
		c.toggle(index)
		c.anchor = index
	default:
		c.base.Clear()
		c.selected.Clear()
		c.selected.Add(index)
		c.anchor = index
	}
}

// Navigate applies the selection side effect of keyboard movement to index.
// MultiSimple only moves the focus; Space toggles through Select. Shift
// ranges start at the anchor, or at the nearest selected index when no
// anchor is set.
func (c *SelectionController) Navigate(index int, mods constants.Modifier) error {
	if !c.inRange(index) {
		return rejected(argumentError("navigate", index))
	}

	c.change(func() {
		c.focused = index
		switch c.mode {
		case SelectionSingle:
			c.selected.Clear()
			c.selected.Add(index)
			c.anchor = index
		case SelectionMultiExtended:
			switch {
			case c.selected.Len() == 0:
				c.selected.Add(index)
				c.anchor = index
			case mods.Has(constants.ModShift) && c.anchor >= 0:
				c.selected.Clear()
				c.addRange(c.anchor, index)
			case mods.Has(constants.ModShift):
				c.extendToNearest(index)
			case mods.Has(constants.ModCtrl):
				c.selected.Add(index)
			default:
				c.selected.Clear()
				c.selected.Add(index)
				c.anchor = index
			}
		}
	})
	return nil
}

// SetSelected selects or deselects a single index programmatically.
func (c *SelectionController) SetSelected(index int, selected bool) error {
	if c.mode == SelectionNone {
		return rejected(operationError("set_selected"))
	}
	if !c.inRange(index) {
		return rejected(argumentError("set_selected", index))
	}
	c.change(func() {
		if !selected {
			c.selected.Remove(index)
			return
		}
		if c.mode == SelectionSingle {
			c.selected.Clear()
		}
		c.selected.Add(index)
	})
	return nil
}

// SelectRange adds every index between from and to inclusive. Only the
// multi modes accept ranges.
func (c *SelectionController) SelectRange(from, to int) error {
	if c.mode == SelectionNone || c.mode == SelectionSingle {
		return rejected(operationError("select_range"))
	}
	if !c.inRange(from) {
		return rejected(argumentError("select_range", from))
	}
	if !c.inRange(to) {
		return rejected(argumentError("select_range", to))
	}
	c.change(func() { c.addRange(from, to) })
	return nil
}

// SelectAll selects every item in a multi mode.
func (c *SelectionController) SelectAll() error {
	if c.mode == SelectionNone || c.mode == SelectionSingle {
		return rejected(operationError("select_all"))
	}
	if c.count == 0 {
		return nil
	}
	c.change(func() { c.addRange(0, c.count-1) })
	return nil
}

// ExtendToNearest replaces the selection with the range from the selected
// index closest to index through index. When two selected indices are
// equally close the larger one wins. Nothing happens when no index is
// selected.
func (c *SelectionController) ExtendToNearest(index int) error {
	if c.mode == SelectionNone {
		return rejected(operationError("extend_selection"))
	}
	if !c.inRange(index) {
		return rejected(argumentError("extend_selection", index))
	}
	if c.mode == SelectionSingle {
		return c.SetSelected(index, true)
	}
	c.change(func() { c.extendToNearest(index) })
	return nil
}

func (c *SelectionController) extendToNearest(index int) {
	nearest := -1
	best := -1
	for v := range c.selected.All() {
		d := max(v-index, index-v)
		if best < 0 || d <= best {
			nearest, best = v, d
		}
	}
	if nearest < 0 {
		return
	}
	c.selected.Clear()
	c.addRange(nearest, index)
}

// Clear deselects everything. It is legal in every mode.
func (c *SelectionController) Clear() {
	c.change(func() {
		c.selected.Clear()
		c.base.Clear()
	})
}

// SetFocused moves the focus. -1 removes it.
func (c *SelectionController) SetFocused(index int) error {
	if index != -1 && !c.inRange(index) {
		return rejected(argumentError("set_focused", index))
	}
	c.setFocus(index)
	return nil
}

// SetAnchor sets the start point for the next Shift selection.
func (c *SelectionController) SetAnchor(index int) error {
	if index != -1 && !c.inRange(index) {
		return rejected(argumentError("set_anchor", index))
	}
	c.anchor = index
	return nil
}

// ItemsInserted renumbers after n items were inserted at index at.
func (c *SelectionController) ItemsInserted(at, n int) {
	if n <= 0 {
		return
	}
	c.change(func() {
		c.count += n
		c.selected.InsertedAt(at, n)
		c.base.InsertedAt(at, n)
		c.anchor = shiftedUp(c.anchor, at, n)
		c.focused = shiftedUp(c.focused, at, n)
	})
}

// ItemsRemoved renumbers after the item at index k was removed: k leaves
// the selection and every higher index moves down by one. The anchor is
// dropped when it pointed at k; the focus stays on the same position,
// clamped to the new count.
func (c *SelectionController) ItemsRemoved(k int) {
	if c.count == 0 {
		return
	}
	c.change(func() {
		c.count--
		c.selected.RemovedAt(k)
		c.base.RemovedAt(k)

		switch {
		case c.anchor == k:
			c.anchor = -1
		case c.anchor > k:
			c.anchor--
		}

		focus := c.focused
		if focus > k {
			focus--
		}
		c.focused = c.clampFocus(focus)
	})
}

// ItemsCleared resets everything after the list was emptied.
func (c *SelectionController) ItemsCleared() {
	c.change(func() {
		c.count = 0
		c.selected.Clear()
		c.base.Clear()
		c.anchor = -1
		c.focused = -1
	})
}

// ItemsReordered remaps indices after a sort. moves[old] is the new index.
func (c *SelectionController) ItemsReordered(moves []int) {
	remap := func(i int) int {
		if i >= 0 && i < len(moves) {
			return moves[i]
		}
		return i
	}
	c.change(func() {
		old := c.selected.Values()
		c.selected.Clear()
		for _, v := range old {
			c.selected.Add(remap(v))
		}
		c.base.Clear()
		c.anchor = remap(c.anchor)
		c.focused = remap(c.focused)
	})
}

// ItemsReset drops the selection after the contents were replaced
// wholesale and keeps the focus within the new count.
func (c *SelectionController) ItemsReset(count int) {
	c.change(func() {
		c.count = max(0, count)
		c.selected.Clear()
		c.base.Clear()
		c.anchor = -1
		c.focused = c.clampFocus(c.focused)
	})
}

// CountChanged adopts a new item count, dropping indices past the end.
func (c *SelectionController) CountChanged(count int) {
	c.change(func() {
		c.count = max(0, count)
		c.selected.DropFrom(c.count)
		c.base.DropFrom(c.count)
		if c.anchor >= c.count {
			c.anchor = -1
		}
		c.focused = c.clampFocus(c.focused)
	})
}

func (c *SelectionController) clampFocus(focus int) int {
	if c.count == 0 {
		return -1
	}
	return min(focus, c.count-1)
}

func (c *SelectionController) toggle(index int) {
	if !c.selected.Remove(index) {
		c.selected.Add(index)
	}
}

func (c *SelectionController) addRange(from, to int) {
	lo, hi := min(from, to), max(from, to)
	for i := lo; i <= hi; i++ {
		c.selected.Add(i)
	}
}

// change runs mutate, which may move selection, anchor and focus, and
// then raises SelectionChanged if membership moved and FocusChanged if the
// focus moved. Under a hold the events wait for ReleaseEvents.
func (c *SelectionController) change(mutate func()) {
	if c.holds > 0 {
		mutate()
		return
	}
	before := c.selected.Clone()
	focus := c.focused
	mutate()
	c.notify(before, focus)
}

func (c *SelectionController) notify(before *IndexSet, focus int) {
	if !before.Equal(c.selected) {
		c.SelectionChanged.raise("selection_changed", SelectionChange{Selected: c.selected.Values()})
	}
	if focus != c.focused {
		c.FocusChanged.raise("focus_changed", FocusChange{Old: focus, New: c.focused})
	}
}

func (c *SelectionController) setFocus(index int) {
	c.change(func() { c.focused = index })
}

// HoldEvents withholds SelectionChanged and FocusChanged until the
// matching ReleaseEvents. Holds nest.
func (c *SelectionController) HoldEvents() {
	if c.holds == 0 {
		c.heldSel = c.selected.Clone()
		c.heldFocus = c.focused
	}
	c.holds++
}

// ReleaseEvents ends a hold. When the outermost hold ends, the state is
// compared with the state at its start and at most one event of each kind
// is raised.
func (c *SelectionController) ReleaseEvents() {
	if c.holds == 0 {
		return
	}
	c.holds--
	if c.holds > 0 {
		return
	}
	before := c.heldSel
	c.heldSel = nil
	c.notify(before, c.heldFocus)
}

func shiftedUp(i, at, n int) int {
	if i >= at {
		return i + n
	}
	return i
}
