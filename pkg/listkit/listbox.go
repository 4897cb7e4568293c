package listkit

import (
	"unicode"

	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
	"github.com/BrandonKowalski/listkit/pkg/listkit/layout"
	"go.uber.org/atomic"
)

// LayoutChange is raised whenever cached geometry is thrown away.
type LayoutChange struct {
	Generation uint64
}

// CheckChange reports a check box toggled on an item.
type CheckChange struct {
	Index   int
	Checked bool
}

// MeasureItemFunc returns the height of one item in variable draw mode.
type MeasureItemFunc func(index int) int32

// ListBoxOptions configures a new ListBox.
type ListBoxOptions struct {
	SelectionMode       SelectionMode
	ItemHeight          int32 // Row height, 0 for the default
	ColumnWidth         int32 // Multi-column width, 0 for the default
	MultiColumn         bool
	ScrollAlwaysVisible bool // Reserve scrollbars even when content fits
	HorizontalScrollbar bool // Single column: scroll wide text horizontally
	IntegralHeight      bool // Shrink the control to whole rows
	UseTabStops         bool
	Sorted              bool
	CheckBoxes          bool
	ScrollBarSize       int32        // 0 for the default
	Measurer            TextMeasurer // Optional, used for tab stops and horizontal extent
}

// ListBoxOptionsFromConfig maps a [list] config section to options.
func ListBoxOptionsFromConfig(cfg ListConfig) (ListBoxOptions, error) {
	mode, err := cfg.Mode()
	if err != nil {
		return ListBoxOptions{}, err
	}
	return ListBoxOptions{
		SelectionMode:       mode,
		ItemHeight:          cfg.ItemHeight,
		ColumnWidth:         cfg.ColumnWidth,
		MultiColumn:         cfg.MultiColumn,
		ScrollAlwaysVisible: cfg.ScrollAlwaysVisible,
		IntegralHeight:      cfg.IntegralHeight,
		UseTabStops:         cfg.UseTabStops,
		Sorted:              cfg.Sorted,
		CheckBoxes:          cfg.CheckBoxes,
	}, nil
}

// VisibleItem is what a host needs to paint one row.
type VisibleItem struct {
	Index    int
	Bounds   layout.Rect
	Text     string
	Segments []Segment // Tab-expanded text, nil unless tab stops are on
	Selected bool
	Focused  bool
	Checked  bool
}

// ListBox is a scrolling list of text items in one column or in a
// multi-column grid. It turns host input into selection changes and keeps
// the geometry hosts paint from.
//
// A ListBox is not safe for concurrent use. Generation and NeedsPaint may be
// read from any goroutine so a render loop can detect stale frames.
type ListBox[T any] struct {
	items     *ItemCollection[T]
	selection *SelectionController
	measurer  TextMeasurer
	tabs      *TabStops
	useTabs   bool

	size                layout.Size
	itemHeight          int32
	columnWidth         int32
	scrollBarSize       int32
	multiColumn         bool
	drawMode            DrawMode
	measureItem         MeasureItemFunc
	scrollAlwaysVisible bool
	horizontalScrollbar bool
	integralHeight      bool
	extentOverride      int32

	checkBoxes bool
	checked    *IndexSet

	top     int
	hOffset int32

	dirty  bool
	single *layout.SingleColumn
	grid   layout.Grid
	bars   layout.ScrollBars
	extent int32

	dragging  bool
	dragStart layout.Point

	generation atomic.Uint64
	paint      atomic.Bool

	SelectionChanged  Event[SelectionChange]
	FocusChanged      Event[FocusChange]
	CollectionChanged Event[CollectionChange]
	LayoutInvalidated Event[LayoutChange]
	ItemChecked       Event[CheckChange]
	ItemActivated     Event[int]
}

// NewListBox creates an empty list box. A nil text func formats items with
// fmt.Sprint.
func NewListBox[T any](text TextFunc[T], opts ListBoxOptions) *ListBox[T] {
	lb := &ListBox[T]{
		measurer:            opts.Measurer,
		useTabs:             opts.UseTabStops,
		itemHeight:          opts.ItemHeight,
		columnWidth:         opts.ColumnWidth,
		scrollBarSize:       opts.ScrollBarSize,
		multiColumn:         opts.MultiColumn,
		scrollAlwaysVisible: opts.ScrollAlwaysVisible,
		horizontalScrollbar: opts.HorizontalScrollbar,
		integralHeight:      opts.IntegralHeight,
		checkBoxes:          opts.CheckBoxes,
		checked:             NewSortedIndexSet(),
		dirty:               true,
	}
	if lb.itemHeight <= 0 {
		lb.itemHeight = constants.DefaultItemHeight
	}
	if lb.columnWidth <= 0 {
		lb.columnWidth = constants.DefaultColumnWidth
	}
	if lb.scrollBarSize <= 0 {
		lb.scrollBarSize = constants.DefaultScrollBarSize
	}
	fontHeight := lb.itemHeight
	if lb.measurer != nil {
		fontHeight = lb.measurer.LineHeight()
	}
	lb.tabs = NewTabStops(fontHeight)

	store := NewItemStore(text)
	// Check marks renumber before the collection publishes anything.
	store.Changed.Subscribe(lb.renumberChecks)

	lb.selection = NewSelectionController(opts.SelectionMode, 0)
	lb.items = NewItemCollection(store, lb.selection, lb)
	lb.items.SetSorted(opts.Sorted)

	lb.selection.SelectionChanged.Subscribe(func(ch SelectionChange) {
		lb.paint.Store(true)
		lb.SelectionChanged.raise("selection_changed", ch)
	})
	lb.selection.FocusChanged.Subscribe(func(ch FocusChange) {
		lb.paint.Store(true)
		lb.FocusChanged.raise("focus_changed", ch)
	})
	lb.items.CollectionChanged.Subscribe(func(ch CollectionChange) {
		lb.CollectionChanged.raise("collection_changed", ch)
	})
	return lb
}

// Items returns the item collection.
func (lb *ListBox[T]) Items() *ItemCollection[T] { return lb.items }

// Selection returns the selection controller.
func (lb *ListBox[T]) Selection() *SelectionController { return lb.selection }

// TabStops returns the tab stops used when UseTabStops is on.
func (lb *ListBox[T]) TabStops() *TabStops { return lb.tabs }

// Generation increments on every layout invalidation.
func (lb *ListBox[T]) Generation() uint64 { return lb.generation.Load() }

// NeedsPaint reports and clears the pending repaint flag.
func (lb *ListBox[T]) NeedsPaint() bool { return lb.paint.Swap(false) }

// InvalidateLayout drops cached geometry. It is called by the item
// collection after every change and by every setter that affects layout.
func (lb *ListBox[T]) InvalidateLayout() {
	lb.dirty = true
	lb.paint.Store(true)
	gen := lb.generation.Inc()
	lb.LayoutInvalidated.raise("layout_invalidated", LayoutChange{Generation: gen})
}

// Resize sets the client size.
func (lb *ListBox[T]) Resize(w, h int32) error {
	if w < 0 || h < 0 {
		return rejected(argumentError("resize", -1))
	}
	if lb.integralHeight && !lb.multiColumn && lb.drawMode != DrawOwnerVariable && h >= lb.itemHeight {
		h -= h % lb.itemHeight
	}
	size := layout.Size{W: w, H: h}
	if size == lb.size {
		return nil
	}
	lb.size = size
	lb.InvalidateLayout()
	return nil
}

// Size returns the client size, after integral height adjustment.
func (lb *ListBox[T]) Size() layout.Size { return lb.size }

// ItemHeight returns the fixed row height.
func (lb *ListBox[T]) ItemHeight() int32 { return lb.itemHeight }

// SetItemHeight sets the row height used outside variable draw mode.
func (lb *ListBox[T]) SetItemHeight(h int32) error {
	if h <= 0 {
		return rejected(argumentError("set_item_height", -1))
	}
	if h == lb.itemHeight {
		return nil
	}
	lb.itemHeight = h
	lb.InvalidateLayout()
	return nil
}

// FontChanged adopts a new font height. In normal draw mode the row height
// follows the font.
func (lb *ListBox[T]) FontChanged(height int32) {
	lb.tabs.SetFontHeight(height)
	if lb.drawMode == DrawNormal && height > 0 {
		lb.itemHeight = height
	}
	lb.InvalidateLayout()
}

// SetMultiColumn switches between one column and the wrapped grid.
func (lb *ListBox[T]) SetMultiColumn(on bool) {
	if on == lb.multiColumn {
		return
	}
	lb.multiColumn = on
	lb.top, lb.hOffset = 0, 0
	lb.InvalidateLayout()
}

// SetColumnWidth sets the grid column width. 0 restores the default.
func (lb *ListBox[T]) SetColumnWidth(w int32) error {
	if w < 0 {
		return rejected(argumentError("set_column_width", -1))
	}
	if w == 0 {
		w = constants.DefaultColumnWidth
	}
	lb.columnWidth = w
	lb.InvalidateLayout()
	return nil
}

// SetDrawMode selects fixed or variable row heights. Variable mode needs a
// MeasureItemFunc; without one rows keep the fixed height.
func (lb *ListBox[T]) SetDrawMode(mode DrawMode) error {
	if mode == DrawOwnerVariable && lb.multiColumn {
		return rejected(operationError("set_draw_mode"))
	}
	if mode == lb.drawMode {
		return nil
	}
	lb.drawMode = mode
	lb.InvalidateLayout()
	return nil
}

// SetMeasureItem sets the per-item height callback for variable draw mode.
func (lb *ListBox[T]) SetMeasureItem(fn MeasureItemFunc) {
	lb.measureItem = fn
	lb.InvalidateLayout()
}

// SetScrollAlwaysVisible reserves scrollbars even when content fits.
func (lb *ListBox[T]) SetScrollAlwaysVisible(on bool) {
	lb.scrollAlwaysVisible = on
	lb.InvalidateLayout()
}

// SetHorizontalScrollbar enables horizontal scrolling of wide text in a
// single-column list.
func (lb *ListBox[T]) SetHorizontalScrollbar(on bool) {
	lb.horizontalScrollbar = on
	lb.InvalidateLayout()
}

// SetHorizontalExtent fixes the scrollable width. 0 measures the items.
func (lb *ListBox[T]) SetHorizontalExtent(px int32) {
	lb.extentOverride = max(0, px)
	lb.InvalidateLayout()
}

// SetSelectionMode changes the selection mode.
func (lb *ListBox[T]) SetSelectionMode(mode SelectionMode) {
	lb.selection.SetMode(mode)
}

// SetUseTabStops turns tab expansion on or off.
func (lb *ListBox[T]) SetUseTabStops(on bool) {
	if lb.useTabs == on {
		return
	}
	lb.useTabs = on
	lb.InvalidateLayout()
}

func (lb *ListBox[T]) variable() bool {
	return lb.drawMode == DrawOwnerVariable && lb.measureItem != nil && !lb.multiColumn
}

func (lb *ListBox[T]) ensureLayout() {
	if !lb.dirty {
		return
	}
	lb.dirty = false

	count := lb.items.Len()
	client := layout.Rect{W: lb.size.W, H: lb.size.H}

	if lb.multiColumn {
		lb.grid = layout.MultiColumn{
			Count:               count,
			ItemHeight:          lb.itemHeight,
			ColumnWidth:         lb.columnWidth,
			ScrollAlwaysVisible: lb.scrollAlwaysVisible,
			HScrollHeight:       lb.scrollBarSize,
		}.Pack(client.Size())
		h := lb.grid.HScroll(lb.top, client.W)
		if !h.Visible && lb.scrollAlwaysVisible {
			h = layout.Forced()
		}
		area := client
		if h.Visible {
			area.H = max(0, area.H-lb.scrollBarSize)
		}
		lb.bars = layout.ScrollBars{Horizontal: h, ItemsArea: area}
		lb.top = lb.grid.ClampTop(lb.top)
		return
	}

	if lb.variable() {
		lb.single = layout.NewVariableColumn(count, lb.measureItem)
	} else {
		lb.single = layout.NewSingleColumn(count, lb.itemHeight)
	}
	lb.extent = lb.measureExtent()
	lb.bars = layout.ResolveScrollBars(client, lb.scrollBarSize, lb.horizontalBar, lb.verticalBar)
	lb.top = lb.single.ClampTop(lb.top, lb.bars.ItemsArea.H)
	lb.hOffset = max(0, min(lb.hOffset, lb.extent-lb.bars.ItemsArea.W))

	GetLogger().Debug("list layout recomputed",
		"items", count,
		"top", lb.top,
		"vertical", lb.bars.Vertical.Visible,
		"horizontal", lb.bars.Horizontal.Visible)
}

func (lb *ListBox[T]) verticalBar(area layout.Size) layout.ScrollBar {
	bar := lb.single.VScroll(lb.top, area.H)
	if !bar.Visible && lb.scrollAlwaysVisible {
		return layout.Forced()
	}
	return bar
}

func (lb *ListBox[T]) horizontalBar(area layout.Size) layout.ScrollBar {
	if !lb.horizontalScrollbar {
		return layout.ScrollBar{}
	}
	if lb.extent <= area.W {
		if lb.scrollAlwaysVisible {
			return layout.Forced()
		}
		return layout.ScrollBar{}
	}
	return layout.ScrollBar{
		Visible:     true,
		Enabled:     true,
		Maximum:     int(lb.extent) - 1,
		LargeChange: int(area.W),
		Value:       int(lb.hOffset),
	}
}

func (lb *ListBox[T]) measureExtent() int32 {
	if !lb.horizontalScrollbar {
		return 0
	}
	if lb.extentOverride > 0 || lb.measurer == nil {
		return lb.extentOverride
	}
	var widest int32
	for i := range lb.items.Len() {
		widest = max(widest, lb.textWidth(lb.items.Text(i)))
	}
	return widest
}

func (lb *ListBox[T]) textWidth(text string) int32 {
	if !lb.useTabs {
		return lb.measurer.MeasureText(text).W
	}
	segs := lb.tabs.Expand(text, lb.measurer)
	last := segs[len(segs)-1]
	return last.X + lb.measurer.MeasureText(last.Text).W
}

func (lb *ListBox[T]) itemsArea() layout.Rect {
	lb.ensureLayout()
	return lb.bars.ItemsArea
}

// ScrollBars returns both scrollbars and the items area.
func (lb *ListBox[T]) ScrollBars() layout.ScrollBars {
	lb.ensureLayout()
	bars := lb.bars
	if lb.multiColumn {
		bars.Horizontal.Value = lb.top / lb.grid.Rows
		return bars
	}
	bars.Vertical.Value = lb.top
	bars.Horizontal.Value = int(lb.hOffset)
	return bars
}

// RowCount is the number of rows per column in multi-column mode, 1
// otherwise.
func (lb *ListBox[T]) RowCount() int {
	if !lb.multiColumn {
		return 1
	}
	lb.ensureLayout()
	return lb.grid.Rows
}

// TopIndex returns the first displayed item.
func (lb *ListBox[T]) TopIndex() int {
	lb.ensureLayout()
	return lb.top
}

// SetTopIndex scrolls so index is the first displayed item, clamped so the
// viewport stays filled.
func (lb *ListBox[T]) SetTopIndex(index int) error {
	count := lb.items.Len()
	if index < 0 || (count > 0 && index >= count) || (count == 0 && index != 0) {
		return rejected(argumentError("set_top_index", index))
	}
	lb.ensureLayout()
	lb.scrollTo(index)
	return nil
}

func (lb *ListBox[T]) scrollTo(top int) {
	if lb.multiColumn {
		top = lb.grid.ClampTop(top)
	} else {
		top = lb.single.ClampTop(top, lb.bars.ItemsArea.H)
	}
	if top != lb.top {
		lb.top = top
		lb.paint.Store(true)
	}
}

// Scroll applies a scrollbar value. Vertical values are item indices;
// horizontal values are columns in multi-column mode and pixels otherwise.
func (lb *ListBox[T]) Scroll(horizontal bool, value int) {
	lb.ensureLayout()
	switch {
	case lb.multiColumn && horizontal:
		lb.scrollTo(lb.grid.TopForColumn(value))
	case horizontal:
		off := int32(max(0, min(value, int(lb.extent-lb.bars.ItemsArea.W))))
		if off != lb.hOffset {
			lb.hOffset = off
			lb.paint.Store(true)
		}
	case !lb.multiColumn:
		lb.scrollTo(value)
	}
}

// LastVisibleIndex returns the last item at least partly shown.
func (lb *ListBox[T]) LastVisibleIndex() int {
	area := lb.itemsArea()
	if lb.multiColumn {
		return lb.grid.LastVisible(lb.top, area.W)
	}
	return lb.single.LastVisible(lb.top, area.H)
}

// EnsureVisible scrolls the minimum needed to show index.
func (lb *ListBox[T]) EnsureVisible(index int) error {
	if index < 0 || index >= lb.items.Len() {
		return rejected(argumentError("ensure_visible", index))
	}
	lb.ensureVisible(index)
	return nil
}

func (lb *ListBox[T]) ensureVisible(index int) {
	area := lb.itemsArea()
	if lb.multiColumn {
		lb.scrollTo(lb.grid.EnsureVisible(index, lb.top, area.W))
		return
	}
	lb.scrollTo(lb.single.EnsureVisible(index, lb.top, area.H))
}

// IndexAtPoint returns the item under (x, y) in items-area coordinates,
// or -1.
func (lb *ListBox[T]) IndexAtPoint(x, y int32) int {
	area := lb.itemsArea()
	if !area.Contains(x, y) {
		return -1
	}
	if lb.multiColumn {
		return lb.grid.IndexAtPoint(x, y, lb.top, area.Size())
	}
	return lb.single.IndexAtPoint(x+lb.hOffset, y, lb.top, layout.Size{W: max(area.W, lb.extent), H: area.H})
}

// ItemRect returns the bounds of index in items-area coordinates. Items
// scrolled out of view get rectangles outside the area.
func (lb *ListBox[T]) ItemRect(index int) (layout.Rect, error) {
	if index < 0 || index >= lb.items.Len() {
		return layout.Rect{}, rejected(argumentError("item_rect", index))
	}
	return lb.itemRect(index), nil
}

func (lb *ListBox[T]) itemRect(index int) layout.Rect {
	area := lb.itemsArea()
	if lb.multiColumn {
		return lb.grid.ItemRect(index, lb.top)
	}
	return lb.single.ItemRect(index, lb.top, max(area.W, lb.extent)).Offset(-lb.hOffset, 0)
}

// MouseDown handles a primary button press at (x, y).
func (lb *ListBox[T]) MouseDown(x, y int32, mods constants.Modifier) {
	index := lb.IndexAtPoint(x, y)
	if index < 0 {
		return
	}
	lb.dragging = true
	lb.dragStart = layout.Point{X: x, Y: y}

	if lb.selection.Mode() == SelectionNone {
		_ = lb.selection.SetFocused(index)
		return
	}
	// index came from the layout, so it is in range.
	_ = lb.selection.Select(index, mods)
}

// MouseDrag extends a press into a sweep: Single follows the pointer and
// MultiExtended selects from the anchor.
func (lb *ListBox[T]) MouseDrag(x, y int32) {
	if !lb.dragging || (layout.Point{X: x, Y: y}) == lb.dragStart {
		return
	}
	index := lb.IndexAtPoint(x, y)
	if index < 0 {
		return
	}
	switch lb.selection.Mode() {
	case SelectionSingle:
		_ = lb.selection.Select(index, constants.ModNone)
	case SelectionMultiExtended:
		_ = lb.selection.Select(index, constants.ModShift)
	default:
		_ = lb.selection.SetFocused(index)
	}
}

// MouseUp ends a press. clicks > 1 activates the item under the pointer.
func (lb *ListBox[T]) MouseUp(x, y int32, clicks int) {
	lb.dragging = false
	if clicks < 2 {
		return
	}
	if index := lb.IndexAtPoint(x, y); index >= 0 {
		lb.ItemActivated.raise("item_activated", index)
	}
}

// KeyDown handles navigation keys and Space. It reports whether the key
// was consumed.
func (lb *ListBox[T]) KeyDown(key constants.Key, mods constants.Modifier) bool {
	if key == constants.KeySpace {
		return lb.space()
	}
	nav, ok := navigationFor(key)
	if !ok {
		return false
	}
	target := lb.navigate(nav)
	if target < 0 {
		return false
	}
	// target is in range by construction.
	_ = lb.selection.Navigate(target, mods)
	return true
}

func (lb *ListBox[T]) space() bool {
	focused := lb.selection.Focused()
	if focused < 0 {
		return false
	}
	if lb.checkBoxes {
		_ = lb.ToggleCheck(focused)
		return true
	}
	if lb.selection.Mode() == SelectionMultiSimple {
		_ = lb.selection.Select(focused, constants.ModNone)
		return true
	}
	return false
}

func navigationFor(key constants.Key) (ItemNavigation, bool) {
	switch key {
	case constants.KeyUp:
		return NavigatePrevious, true
	case constants.KeyDown:
		return NavigateNext, true
	case constants.KeyLeft:
		return NavigatePreviousColumn, true
	case constants.KeyRight:
		return NavigateNextColumn, true
	case constants.KeyHome:
		return NavigateFirst, true
	case constants.KeyEnd:
		return NavigateLast, true
	case constants.KeyPageUp:
		return NavigatePreviousPage, true
	case constants.KeyPageDown:
		return NavigateNextPage, true
	default:
		return 0, false
	}
}

// pageSize is how many items a page key moves.
func (lb *ListBox[T]) pageSize() int {
	area := lb.itemsArea()
	if lb.multiColumn {
		return lb.grid.WholeColumns(area.W) * lb.grid.Rows
	}
	if lb.single.Variable() {
		return max(1, lb.single.WholeItems(lb.top, area.H))
	}
	return max(1, int(area.H/max(1, lb.itemHeight)))
}

// navigate returns the item a navigation lands on, scrolling it into
// view, or -1 when the move is impossible.
func (lb *ListBox[T]) navigate(nav ItemNavigation) int {
	count := lb.items.Len()
	if count == 0 {
		return -1
	}
	lb.ensureLayout()

	focused := lb.selection.Focused()
	rows := lb.RowCount()
	page := lb.pageSize()

	target := -1
	switch nav {
	case NavigateFirst:
		target = 0
	case NavigateLast:
		target = count - 1
	case NavigateNext:
		if focused < count-1 {
			target = focused + 1
		}
	case NavigatePrevious:
		target = max(0, focused-1)
		if focused == 0 {
			target = -1
		}
	case NavigateNextPage:
		target = min(count-1, max(0, focused)+page-1)
	case NavigatePreviousPage:
		target = max(0, focused-(page-1))
	case NavigateNextColumn:
		if lb.multiColumn && focused+rows < count {
			target = max(0, focused) + rows
		}
	case NavigatePreviousColumn:
		if lb.multiColumn && focused-rows >= 0 {
			target = focused - rows
		}
	}
	if target < 0 {
		return -1
	}
	if nav == NavigateFirst {
		lb.scrollTo(0)
	}
	lb.ensureVisible(target)
	return target
}

// KeyPress handles type-ahead: a letter or digit jumps to the next item
// whose text starts with it.
func (lb *ListBox[T]) KeyPress(r rune) bool {
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return false
	}
	start := lb.selection.SelectedIndex()
	if start < 0 {
		start = lb.selection.Focused()
	}
	index, err := lb.items.FindString(string(r), start)
	if err != nil || index < 0 {
		return true
	}
	if lb.selection.Mode() == SelectionNone {
		_ = lb.selection.SetFocused(index)
	} else {
		_ = lb.selection.Navigate(index, constants.ModNone)
	}
	lb.ensureVisible(index)
	return true
}

// CheckBoxes reports whether items carry check boxes.
func (lb *ListBox[T]) CheckBoxes() bool { return lb.checkBoxes }

// IsChecked reports whether index is checked.
func (lb *ListBox[T]) IsChecked(index int) bool { return lb.checked.Contains(index) }

// CheckedIndices returns the checked indices in ascending order.
func (lb *ListBox[T]) CheckedIndices() []int { return lb.checked.Values() }

// SetChecked checks or unchecks index.
func (lb *ListBox[T]) SetChecked(index int, checked bool) error {
	if index < 0 || index >= lb.items.Len() {
		return rejected(argumentError("set_checked", index))
	}
	var changed bool
	if checked {
		changed = lb.checked.Add(index)
	} else {
		changed = lb.checked.Remove(index)
	}
	if changed {
		lb.paint.Store(true)
		lb.ItemChecked.raise("item_checked", CheckChange{Index: index, Checked: checked})
	}
	return nil
}

// ToggleCheck flips the check state of index.
func (lb *ListBox[T]) ToggleCheck(index int) error {
	return lb.SetChecked(index, !lb.IsChecked(index))
}

func (lb *ListBox[T]) renumberChecks(ch StoreChange) { renumber(lb.checked, ch) }

// renumber keeps a set of item indices pointing at the same items across
// a store change.
func renumber(set *IndexSet, ch StoreChange) {
	switch ch.Kind {
	case StoreAdded:
		set.InsertedAt(ch.Index, ch.Count)
	case StoreRemoved:
		set.RemovedAt(ch.Index)
	case StoreCleared, StoreReset:
		set.Clear()
	case StoreSorted:
		old := set.Values()
		set.Clear()
		for _, v := range old {
			set.Add(ch.Moves[v])
		}
	}
}

// Visible returns the rows to paint, top to bottom.
func (lb *ListBox[T]) Visible() []VisibleItem {
	last := lb.LastVisibleIndex()
	if last < lb.top {
		return nil
	}
	focused := lb.selection.Focused()
	out := make([]VisibleItem, 0, last-lb.top+1)
	for i := lb.top; i <= last; i++ {
		text := lb.items.Text(i)
		item := VisibleItem{
			Index:    i,
			Bounds:   lb.itemRect(i),
			Text:     text,
			Selected: lb.selection.IsSelected(i),
			Focused:  i == focused,
			Checked:  lb.checked.Contains(i),
		}
		if lb.useTabs && lb.measurer != nil {
			item.Segments = lb.tabs.Expand(text, lb.measurer)
		}
		out = append(out, item)
	}
	return out
}
