package listkit

// Item is one entry of a ListView.
type Item struct {
	Text        string    // Display text, shown in the first column
	Name        string    // Lookup key for IndexOfKey
	ImageIndex  int       // Index into the host's image list, -1 for none
	IndentCount int       // Details view indent, in small image widths
	SubItems    []SubItem // Cells for the second and later columns
	Metadata    any       // Application-specific data attached to the item
}

// SubItem is the text of one detail column. It does not point back at its
// item; ListView.SubItemBounds resolves it by item and column index.
type SubItem struct {
	Text string
	Name string
}

// NewItem returns an item with no image and the given sub-item texts.
func NewItem(text string, subItems ...string) Item {
	item := Item{Text: text, ImageIndex: -1}
	for _, s := range subItems {
		item.SubItems = append(item.SubItems, SubItem{Text: s})
	}
	return item
}

// HasImage reports whether the item shows an image.
func (i Item) HasImage() bool { return i.ImageIndex >= 0 }

// SubItemText returns the text of column col, where column 0 is the item's
// own text. Missing cells are "".
func (i Item) SubItemText(col int) string {
	if col == 0 {
		return i.Text
	}
	if col < 0 || col > len(i.SubItems) {
		return ""
	}
	return i.SubItems[col-1].Text
}

func itemText(i Item) string { return i.Text }

func itemKey(i Item) string { return i.Name }
