package listkit

// SelectionMode controls how many items a list may select and how mouse and
// keyboard input affect the selection.
type SelectionMode int

const (
	SelectionNone          SelectionMode = iota // Nothing may be selected
	SelectionSingle                             // At most one item
	SelectionMultiSimple                        // Each click toggles one item
	SelectionMultiExtended                      // Shift selects ranges, Ctrl toggles
)

func (m SelectionMode) String() string {
	switch m {
	case SelectionNone:
		return "none"
	case SelectionSingle:
		return "one"
	case SelectionMultiSimple:
		return "multi_simple"
	case SelectionMultiExtended:
		return "multi_extended"
	default:
		return "unknown"
	}
}

// ParseSelectionMode maps the names produced by String back to a mode.
func ParseSelectionMode(s string) (SelectionMode, bool) {
	for m := SelectionNone; m <= SelectionMultiExtended; m++ {
		if m.String() == s {
			return m, true
		}
	}
	return SelectionSingle, false
}

// CollectionChangeKind describes a CollectionChange.
type CollectionChangeKind int

const (
	CollectionAdd     CollectionChangeKind = iota // Count items added at Index
	CollectionRemove                              // One item removed at Index
	CollectionReplace                             // Item at Index replaced
	CollectionClear                               // Every item removed
	CollectionRefresh                             // Order or contents changed wholesale
)

func (k CollectionChangeKind) String() string {
	switch k {
	case CollectionAdd:
		return "add"
	case CollectionRemove:
		return "remove"
	case CollectionReplace:
		return "replace"
	case CollectionClear:
		return "clear"
	case CollectionRefresh:
		return "refresh"
	default:
		return "unknown"
	}
}

// ItemNavigation is a keyboard movement relative to the focused item.
type ItemNavigation int

const (
	NavigateFirst          ItemNavigation = iota // Home
	NavigateLast                                 // End
	NavigateNext                                 // Down
	NavigatePrevious                             // Up
	NavigateNextPage                             // Page down
	NavigatePreviousPage                         // Page up
	NavigateNextColumn                           // Right, multi-column only
	NavigatePreviousColumn                       // Left, multi-column only
)

// DrawMode selects how a list lays out row heights.
type DrawMode int

const (
	DrawNormal        DrawMode = iota // Fixed height from the font
	DrawOwnerFixed                    // Fixed height set by the owner
	DrawOwnerVariable                 // Each item reports its own height
)
