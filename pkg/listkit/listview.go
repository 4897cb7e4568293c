package listkit

import (
	"unicode"

	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
	"github.com/BrandonKowalski/listkit/pkg/listkit/layout"
	"go.uber.org/atomic"
)

// ColumnHeader describes one details-view column.
type ColumnHeader struct {
	Text  string
	Width int32
	Align constants.TextAlign
}

// ListViewOptions configures a new ListView.
type ListViewOptions struct {
	View           layout.View
	CheckBoxes     bool
	MultiSelect    bool  // MultiExtended selection instead of Single
	Images         bool  // Items reserve room for an image
	SmallImageSize int32 // 0 for the default
	LargeImageSize int32 // 0 for the default
	TileSize       layout.Size
	ScrollBarSize  int32
	Measurer       TextMeasurer // nil measures on a 6x13 cell grid
}

// ListViewOptionsFromConfig maps a [view] config section to options.
func ListViewOptionsFromConfig(cfg ViewConfig) (ListViewOptions, error) {
	view, err := cfg.ViewMode()
	if err != nil {
		return ListViewOptions{}, err
	}
	return ListViewOptions{
		View:           view,
		CheckBoxes:     cfg.CheckBoxes,
		MultiSelect:    cfg.MultiSelect,
		Images:         true,
		SmallImageSize: cfg.SmallImageSize,
		LargeImageSize: cfg.LargeImageSize,
		TileSize:       layout.Size{W: cfg.TileWidth, H: cfg.TileHeight},
	}, nil
}

// VisibleViewItem is what a host needs to paint one ListView item. Boxes
// are in viewport coordinates.
type VisibleViewItem struct {
	Index    int
	Item     Item
	Boxes    layout.ItemBoxes
	Selected bool
	Focused  bool
	Checked  bool
}

// ListView shows Items as icons, a list, tiles or a details table. Each
// item is decomposed by layout.ItemLayout; the view arranges the results
// on a uniform grid of cells.
type ListView struct {
	items     *ItemCollection[Item]
	selection *SelectionController
	measurer  TextMeasurer

	view          layout.View
	columns       []ColumnHeader
	checkBoxes    bool
	images        bool
	smallImage    int32
	largeImage    int32
	tileSize      layout.Size
	scrollBarSize int32
	checked       *IndexSet

	size   layout.Size
	scroll layout.Point

	dirty   bool
	boxes   []layout.ItemBoxes
	cell    layout.Size
	header  int32
	bars    layout.ScrollBars
	content layout.Size

	generation atomic.Uint64

	SelectionChanged  Event[SelectionChange]
	FocusChanged      Event[FocusChange]
	CollectionChanged Event[CollectionChange]
	LayoutInvalidated Event[LayoutChange]
	ItemChecked       Event[CheckChange]
}

// NewListView creates an empty list view.
func NewListView(opts ListViewOptions) *ListView {
	lv := &ListView{
		measurer:      opts.Measurer,
		view:          opts.View,
		checkBoxes:    opts.CheckBoxes,
		images:        opts.Images,
		smallImage:    opts.SmallImageSize,
		largeImage:    opts.LargeImageSize,
		tileSize:      opts.TileSize,
		scrollBarSize: opts.ScrollBarSize,
		checked:       NewSortedIndexSet(),
		dirty:         true,
	}
	if lv.measurer == nil {
		lv.measurer = NewCellMeasurer(6, 13)
	}
	if lv.smallImage <= 0 {
		lv.smallImage = constants.DefaultSmallImageSize
	}
	if lv.largeImage <= 0 {
		lv.largeImage = constants.DefaultLargeImageSize
	}
	if lv.tileSize.W <= 0 || lv.tileSize.H <= 0 {
		lv.tileSize = layout.Size{W: constants.DefaultTileWidth, H: constants.DefaultTileHeight}
	}
	if lv.scrollBarSize <= 0 {
		lv.scrollBarSize = constants.DefaultScrollBarSize
	}

	mode := SelectionSingle
	if opts.MultiSelect {
		mode = SelectionMultiExtended
	}

	store := NewItemStore(itemText)
	store.Changed.Subscribe(func(ch StoreChange) { renumber(lv.checked, ch) })
	lv.selection = NewSelectionController(mode, 0)
	lv.items = NewItemCollection(store, lv.selection, lv)
	lv.items.SetKeyFunc(itemKey)

	lv.selection.SelectionChanged.Subscribe(func(ch SelectionChange) {
		lv.SelectionChanged.raise("selection_changed", ch)
	})
	lv.selection.FocusChanged.Subscribe(func(ch FocusChange) {
		lv.FocusChanged.raise("focus_changed", ch)
	})
	lv.items.CollectionChanged.Subscribe(func(ch CollectionChange) {
		lv.CollectionChanged.raise("collection_changed", ch)
	})
	return lv
}

// Items returns the item collection.
func (lv *ListView) Items() *ItemCollection[Item] { return lv.items }

// Selection returns the selection controller.
func (lv *ListView) Selection() *SelectionController { return lv.selection }

// View returns the current view.
func (lv *ListView) View() layout.View { return lv.view }

// Generation increments on every layout invalidation.
func (lv *ListView) Generation() uint64 { return lv.generation.Load() }

// InvalidateLayout drops cached geometry.
func (lv *ListView) InvalidateLayout() {
	lv.dirty = true
	gen := lv.generation.Inc()
	lv.LayoutInvalidated.raise("layout_invalidated", LayoutChange{Generation: gen})
}

// SetView switches the view and scrolls back to the origin.
func (lv *ListView) SetView(v layout.View) {
	if v == lv.view {
		return
	}
	lv.view = v
	lv.scroll = layout.Point{}
	lv.InvalidateLayout()
}

// SetMultiSelect switches between Single and MultiExtended selection.
func (lv *ListView) SetMultiSelect(on bool) {
	if on {
		lv.selection.SetMode(SelectionMultiExtended)
	} else {
		lv.selection.SetMode(SelectionSingle)
	}
}

// SetCheckBoxes shows or hides item check boxes.
func (lv *ListView) SetCheckBoxes(on bool) {
	lv.checkBoxes = on
	lv.InvalidateLayout()
}

// Columns returns a copy of the column headers.
func (lv *ListView) Columns() []ColumnHeader {
	return append([]ColumnHeader(nil), lv.columns...)
}

// AddColumn appends a details column.
func (lv *ListView) AddColumn(header ColumnHeader) {
	if header.Width <= 0 {
		header.Width = constants.DefaultColumnWidth
	}
	lv.columns = append(lv.columns, header)
	lv.InvalidateLayout()
}

// SetColumnWidth resizes column col.
func (lv *ListView) SetColumnWidth(col int, width int32) error {
	if col < 0 || col >= len(lv.columns) {
		return rejected(argumentError("set_column_width", col))
	}
	if width < 0 {
		return rejected(argumentError("set_column_width", -1))
	}
	lv.columns[col].Width = width
	lv.InvalidateLayout()
	return nil
}

// Resize sets the client size.
func (lv *ListView) Resize(w, h int32) error {
	if w < 0 || h < 0 {
		return rejected(argumentError("resize", -1))
	}
	size := layout.Size{W: w, H: h}
	if size == lv.size {
		return nil
	}
	lv.size = size
	lv.InvalidateLayout()
	return nil
}

func (lv *ListView) columnSpans() []layout.Column {
	spans := make([]layout.Column, len(lv.columns))
	var x int32
	for i, c := range lv.columns {
		spans[i] = layout.Column{X: x, W: c.Width}
		x += c.Width
	}
	return spans
}

func (lv *ListView) imageSize() layout.Size {
	if !lv.images {
		return layout.Size{}
	}
	switch lv.view {
	case layout.ViewLargeIcon, layout.ViewTile:
		return layout.Size{W: lv.largeImage, H: lv.largeImage}
	default:
		return layout.Size{W: lv.smallImage, H: lv.smallImage}
	}
}

func (lv *ListView) checkBoxSize() layout.Size {
	return layout.Size{W: constants.DefaultCheckBoxSize, H: constants.DefaultCheckBoxSize}
}

func (lv *ListView) rowHeight() int32 {
	h := lv.measurer.LineHeight()
	if lv.images {
		h = max(h, lv.smallImage)
	}
	if lv.checkBoxes {
		h = max(h, constants.DefaultCheckBoxSize)
	}
	return h + 2
}

// metrics builds the layout input for one item.
func (lv *ListView) metrics(item Item) layout.ItemMetrics {
	text := lv.measurer.MeasureText(item.Text)
	m := layout.ItemMetrics{
		View:         lv.view,
		CheckBoxes:   lv.checkBoxes,
		CheckBoxSize: lv.checkBoxSize(),
		ImageSize:    lv.imageSize(),
		TextSize:     text,
		LabelWidth:   text.W,
		LineHeight:   lv.measurer.LineHeight(),
		SubItemCount: len(item.SubItems) + 1,
		IndentCount:  item.IndentCount,
		TileSize:     lv.tileSize,
		LineSpacing:  constants.DefaultTileLineSpacing,
	}
	switch lv.view {
	case layout.ViewDetails:
		m.RowHeight = lv.rowHeight()
		m.Columns = lv.columnSpans()
	case layout.ViewLargeIcon:
		// The label wraps inside a cell twice the icon width.
		wrap := 2*lv.largeImage + 8
		m.TextSize = layout.Size{W: min(text.W, wrap), H: lv.measurer.LineHeight()}
	case layout.ViewTile:
		m.TileLines = make([]layout.Size, 0, len(item.SubItems)+1)
		m.TileLines = append(m.TileLines, text)
		for _, s := range item.SubItems {
			m.TileLines = append(m.TileLines, lv.measurer.MeasureText(s.Text))
		}
	}
	return m
}

func (lv *ListView) ensureLayout() {
	if !lv.dirty {
		return
	}
	lv.dirty = false

	n := lv.items.Len()
	lv.boxes = make([]layout.ItemBoxes, n)
	var cell layout.Size
	for i, item := range lv.items.All() {
		b := layout.ItemLayout(lv.metrics(item))
		lv.boxes[i] = b
		cell.W = max(cell.W, b.Bounds.W)
		cell.H = max(cell.H, b.Bounds.H)
	}

	lv.header = 0
	switch lv.view {
	case layout.ViewDetails:
		cell.H = lv.rowHeight()
		if len(lv.columns) > 0 {
			cell.W = sumWidths(lv.columns)
			lv.header = lv.measurer.LineHeight() + 4
		}
	case layout.ViewTile:
		cell = lv.tileSize
	case layout.ViewLargeIcon:
		cell.W += 4
		cell.H += 4
	default:
		cell.W += 2
	}
	lv.cell = layout.Size{W: max(1, cell.W), H: max(1, cell.H)}

	client := layout.Rect{W: lv.size.W, H: lv.size.H}
	lv.bars = layout.ResolveScrollBars(client, lv.scrollBarSize, lv.horizontalBar, lv.verticalBar)
	area := lv.bars.ItemsArea.Size()
	// Flowing views re-pack once both bars have taken their space.
	if lv.bars.Horizontal.Visible {
		lv.bars.Horizontal = lv.horizontalBar(area)
	}
	if lv.bars.Vertical.Visible {
		lv.bars.Vertical = lv.verticalBar(area)
	}
	lv.content = lv.contentSize(area)
	lv.clampScroll()
}

func sumWidths(cols []ColumnHeader) int32 {
	var total int32
	for _, c := range cols {
		total += c.Width
	}
	return total
}

// perLine is how many cells fit along the flow direction.
func (lv *ListView) perLine(area layout.Size) int {
	switch lv.view {
	case layout.ViewDetails:
		return 1
	case layout.ViewList:
		return max(1, int(area.H/lv.cell.H))
	default:
		return max(1, int(area.W/lv.cell.W))
	}
}

func (lv *ListView) contentSize(area layout.Size) layout.Size {
	n := lv.items.Len()
	if n == 0 {
		return layout.Size{}
	}
	per := lv.perLine(area)
	lines := int32((n + per - 1) / per)
	switch lv.view {
	case layout.ViewDetails:
		return layout.Size{W: lv.cell.W, H: lv.header + int32(n)*lv.cell.H}
	case layout.ViewList:
		return layout.Size{W: lines * lv.cell.W, H: int32(min(n, per)) * lv.cell.H}
	default:
		return layout.Size{W: int32(min(n, per)) * lv.cell.W, H: lines * lv.cell.H}
	}
}

func (lv *ListView) verticalBar(area layout.Size) layout.ScrollBar {
	if lv.view == layout.ViewList {
		return layout.ScrollBar{}
	}
	content := lv.contentSize(area)
	if content.H <= area.H {
		return layout.ScrollBar{}
	}
	return layout.ScrollBar{
		Visible:     true,
		Enabled:     true,
		Maximum:     int(content.H) - 1,
		LargeChange: int(area.H),
		Value:       int(lv.scroll.Y),
	}
}

func (lv *ListView) horizontalBar(area layout.Size) layout.ScrollBar {
	if lv.view != layout.ViewList && lv.view != layout.ViewDetails {
		return layout.ScrollBar{}
	}
	content := lv.contentSize(area)
	if content.W <= area.W {
		return layout.ScrollBar{}
	}
	return layout.ScrollBar{
		Visible:     true,
		Enabled:     true,
		Maximum:     int(content.W) - 1,
		LargeChange: int(area.W),
		Value:       int(lv.scroll.X),
	}
}

func (lv *ListView) clampScroll() {
	area := lv.bars.ItemsArea.Size()
	lv.scroll.X = max(0, min(lv.scroll.X, lv.content.W-area.W))
	lv.scroll.Y = max(0, min(lv.scroll.Y, lv.content.H-area.H))
}

// ScrollBars returns both scrollbars and the items area.
func (lv *ListView) ScrollBars() layout.ScrollBars {
	lv.ensureLayout()
	bars := lv.bars
	bars.Horizontal.Value = int(lv.scroll.X)
	bars.Vertical.Value = int(lv.scroll.Y)
	return bars
}

// Scroll applies a scrollbar value in pixels.
func (lv *ListView) Scroll(horizontal bool, value int) {
	lv.ensureLayout()
	if horizontal {
		lv.scroll.X = int32(value)
	} else {
		lv.scroll.Y = int32(value)
	}
	lv.clampScroll()
}

// cellOrigin returns the content-space origin of cell i.
func (lv *ListView) cellOrigin(i int) layout.Point {
	per := lv.perLine(lv.bars.ItemsArea.Size())
	switch lv.view {
	case layout.ViewDetails:
		return layout.Point{Y: lv.header + int32(i)*lv.cell.H}
	case layout.ViewList:
		return layout.Point{X: int32(i/per) * lv.cell.W, Y: int32(i%per) * lv.cell.H}
	default:
		return layout.Point{X: int32(i%per) * lv.cell.W, Y: int32(i/per) * lv.cell.H}
	}
}

func (lv *ListView) offset(i int, r layout.Rect) layout.Rect {
	o := lv.cellOrigin(i)
	return r.Offset(o.X-lv.scroll.X, o.Y-lv.scroll.Y)
}

// ItemBoxes returns the regions of item i in viewport coordinates.
func (lv *ListView) ItemBoxes(i int) (layout.ItemBoxes, error) {
	if i < 0 || i >= lv.items.Len() {
		return layout.ItemBoxes{}, rejected(argumentError("item_boxes", i))
	}
	lv.ensureLayout()
	return lv.placed(i), nil
}

func (lv *ListView) placed(i int) layout.ItemBoxes {
	b := lv.boxes[i]
	out := layout.ItemBoxes{
		CheckBox: lv.offset(i, b.CheckBox),
		Icon:     lv.offset(i, b.Icon),
		Label:    lv.offset(i, b.Label),
		Item:     lv.offset(i, b.Item),
		Bounds:   lv.offset(i, b.Bounds),
	}
	for _, r := range b.SubItems {
		out.SubItems = append(out.SubItems, lv.offset(i, r))
	}
	for _, r := range b.TileLines {
		out.TileLines = append(out.TileLines, lv.offset(i, r))
	}
	return out
}

// ItemBounds returns the full bounds of item i in viewport coordinates.
func (lv *ListView) ItemBounds(i int) (layout.Rect, error) {
	b, err := lv.ItemBoxes(i)
	if err != nil {
		return layout.Rect{}, err
	}
	return b.Bounds, nil
}

// SubItemBounds returns the cell of column col for item i. Only the
// details view has cells.
func (lv *ListView) SubItemBounds(i, col int) (layout.Rect, error) {
	if lv.view != layout.ViewDetails {
		return layout.Rect{}, rejected(operationError("sub_item_bounds"))
	}
	b, err := lv.ItemBoxes(i)
	if err != nil {
		return layout.Rect{}, err
	}
	if col < 0 || col >= len(b.SubItems) {
		return layout.Rect{}, rejected(argumentError("sub_item_bounds", col))
	}
	return b.SubItems[col], nil
}

// HeaderBounds returns the details header cells in viewport coordinates.
func (lv *ListView) HeaderBounds() []layout.Rect {
	lv.ensureLayout()
	if lv.view != layout.ViewDetails || lv.header == 0 {
		return nil
	}
	out := make([]layout.Rect, len(lv.columns))
	for i, c := range lv.columnSpans() {
		out[i] = layout.Rect{X: c.X - lv.scroll.X, W: c.W, H: lv.header}
	}
	return out
}

// IndexAtPoint returns the item whose selectable area or check box
// contains (x, y), or -1.
func (lv *ListView) IndexAtPoint(x, y int32) int {
	lv.ensureLayout()
	area := lv.bars.ItemsArea
	if !area.Contains(x, y) || (lv.view == layout.ViewDetails && y < lv.header) {
		return -1
	}
	for _, i := range lv.visibleRange() {
		b := lv.placed(i)
		if b.Item.Contains(x, y) || b.CheckBox.Contains(x, y) {
			return i
		}
	}
	return -1
}

// cellWindow is the half-open block of grid lines whose cells intersect
// the items area.
type cellWindow struct {
	rowLo, rowHi int
	colLo, colHi int
}

// visibleWindow works out the visible lines from the scroll position, so
// its cost does not depend on the item count.
func (lv *ListView) visibleWindow() cellWindow {
	area := lv.bars.ItemsArea
	n := lv.items.Len()
	if n == 0 {
		return cellWindow{}
	}
	per := lv.perLine(area.Size())
	lines := (n + per - 1) / per

	rows, cols, top := lines, per, int32(0)
	switch lv.view {
	case layout.ViewDetails:
		rows, cols, top = n, 1, lv.header
	case layout.ViewList:
		rows, cols = min(n, per), lines
	}

	var w cellWindow
	w.rowLo, w.rowHi = lineSpan(area.Y+lv.scroll.Y, area.H, top, lv.cell.H, rows)
	w.colLo, w.colHi = lineSpan(area.X+lv.scroll.X, area.W, 0, lv.cell.W, cols)
	return w
}

// lineSpan returns the lines of the given size, laid out from offset, that
// overlap [start, start+extent), clamped to [0, lines).
func lineSpan(start, extent, offset, size int32, lines int) (int, int) {
	if extent <= 0 || size <= 0 {
		return 0, 0
	}
	lo := floorDiv(start-offset, size)
	hi := floorDiv(start+extent-offset+size-1, size)
	return max(0, int(lo)), min(lines, int(hi))
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// visibleRange lists the items whose cells intersect the items area in
// ascending order.
func (lv *ListView) visibleRange() []int {
	w := lv.visibleWindow()
	if w.rowLo >= w.rowHi || w.colLo >= w.colHi {
		return nil
	}
	n := lv.items.Len()
	per := lv.perLine(lv.bars.ItemsArea.Size())
	out := make([]int, 0, (w.rowHi-w.rowLo)*(w.colHi-w.colLo))
	if lv.view == layout.ViewList {
		for col := w.colLo; col < w.colHi; col++ {
			for row := w.rowLo; row < w.rowHi; row++ {
				if i := col*per + row; i < n {
					out = append(out, i)
				}
			}
		}
		return out
	}
	for row := w.rowLo; row < w.rowHi; row++ {
		for col := w.colLo; col < w.colHi; col++ {
			if i := row*per + col; i < n {
				out = append(out, i)
			}
		}
	}
	return out
}

// EnsureVisible scrolls the minimum needed to show item i.
func (lv *ListView) EnsureVisible(i int) error {
	if i < 0 || i >= lv.items.Len() {
		return rejected(argumentError("ensure_visible", i))
	}
	lv.ensureVisible(i)
	return nil
}

func (lv *ListView) ensureVisible(i int) {
	lv.ensureLayout()
	area := lv.bars.ItemsArea.Size()
	o := lv.cellOrigin(i)
	top := lv.header
	if lv.view != layout.ViewDetails {
		top = 0
	}

	switch {
	case o.Y-lv.scroll.Y < top:
		lv.scroll.Y = o.Y - top
	case o.Y+lv.cell.H-lv.scroll.Y > area.H:
		lv.scroll.Y = o.Y + lv.cell.H - area.H
	}
	switch {
	case o.X-lv.scroll.X < 0:
		lv.scroll.X = o.X
	case o.X+lv.cell.W-lv.scroll.X > area.W && lv.view != layout.ViewDetails:
		lv.scroll.X = o.X + lv.cell.W - area.W
	}
	lv.clampScroll()
}

// MouseDown toggles a check box when one is hit, otherwise selects.
func (lv *ListView) MouseDown(x, y int32, mods constants.Modifier) {
	i := lv.IndexAtPoint(x, y)
	if i < 0 {
		return
	}
	if lv.checkBoxes && lv.placed(i).CheckBox.Contains(x, y) {
		_ = lv.ToggleCheck(i)
		return
	}
	_ = lv.selection.Select(i, mods)
}

// KeyDown moves the focus along the view's flow and reports whether the
// key was consumed.
func (lv *ListView) KeyDown(key constants.Key, mods constants.Modifier) bool {
	n := lv.items.Len()
	if n == 0 {
		return false
	}
	lv.ensureLayout()

	focused := lv.selection.Focused()
	if key == constants.KeySpace {
		if lv.checkBoxes && focused >= 0 {
			_ = lv.ToggleCheck(focused)
			return true
		}
		return false
	}

	if lv.view == layout.ViewDetails && (key == constants.KeyLeft || key == constants.KeyRight) {
		return false
	}
	per := lv.perLine(lv.bars.ItemsArea.Size())
	across, along := 1, per // steps for the two arrow axes
	if lv.view == layout.ViewList {
		across, along = per, 1
	}

	var step int
	switch key {
	case constants.KeyLeft:
		step = -across
	case constants.KeyRight:
		step = across
	case constants.KeyUp:
		step = -along
	case constants.KeyDown:
		step = along
	case constants.KeyHome:
		step = -n
	case constants.KeyEnd:
		step = n
	case constants.KeyPageUp, constants.KeyPageDown:
		page := max(1, len(lv.visibleRange()))
		step = page
		if key == constants.KeyPageUp {
			step = -page
		}
	default:
		return false
	}

	target := max(0, min(n-1, focused+step))
	if focused < 0 && key != constants.KeyEnd {
		target = 0
	}
	if target == focused {
		return false
	}
	_ = lv.selection.Navigate(target, mods)
	lv.ensureVisible(target)
	return true
}

// KeyPress jumps to the next item whose text starts with r.
func (lv *ListView) KeyPress(r rune) bool {
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return false
	}
	index, err := lv.items.FindString(string(r), lv.selection.Focused())
	if err != nil || index < 0 {
		return true
	}
	_ = lv.selection.Navigate(index, constants.ModNone)
	lv.ensureVisible(index)
	return true
}

// IsChecked reports whether item i is checked.
func (lv *ListView) IsChecked(i int) bool { return lv.checked.Contains(i) }

// CheckedIndices returns the checked items in ascending order.
func (lv *ListView) CheckedIndices() []int { return lv.checked.Values() }

// SetChecked checks or unchecks item i.
func (lv *ListView) SetChecked(i int, checked bool) error {
	if i < 0 || i >= lv.items.Len() {
		return rejected(argumentError("set_checked", i))
	}
	var changed bool
	if checked {
		changed = lv.checked.Add(i)
	} else {
		changed = lv.checked.Remove(i)
	}
	if changed {
		lv.ItemChecked.raise("item_checked", CheckChange{Index: i, Checked: checked})
	}
	return nil
}

// ToggleCheck flips the check state of item i.
func (lv *ListView) ToggleCheck(i int) error {
	return lv.SetChecked(i, !lv.IsChecked(i))
}

// Visible returns the items to paint.
func (lv *ListView) Visible() []VisibleViewItem {
	lv.ensureLayout()
	focused := lv.selection.Focused()
	rng := lv.visibleRange()
	out := make([]VisibleViewItem, 0, len(rng))
	for _, i := range rng {
		item, _ := lv.items.Item(i)
		out = append(out, VisibleViewItem{
			Index:    i,
			Item:     item,
			Boxes:    lv.placed(i),
			Selected: lv.selection.IsSelected(i),
			Focused:  i == focused,
			Checked:  lv.checked.Contains(i),
		})
	}
	return out
}
