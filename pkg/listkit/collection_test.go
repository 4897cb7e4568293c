package listkit

import (
	"strings"
	"testing"

	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invalidationLog struct {
	steps *[]string
}

func (l invalidationLog) InvalidateLayout() { *l.steps = append(*l.steps, "layout") }

func newTestCollection(mode SelectionMode, items ...string) (*ItemCollection[string], *[]string) {
	steps := &[]string{}
	store := NewItemStore[string](nil)
	store.SetAll(items)
	sel := NewSelectionController(mode, 0)
	c := NewItemCollection(store, sel, invalidationLog{steps})
	sel.SelectionChanged.Subscribe(func(SelectionChange) { *steps = append(*steps, "selection") })
	c.CollectionChanged.Subscribe(func(ch CollectionChange) { *steps = append(*steps, "collection:"+ch.Kind.String()) })
	return c, steps
}

func TestItemCollection_RemoveOrdering(t *testing.T) {
	c, steps := newTestCollection(SelectionMultiSimple, "a", "b", "c", "d", "e")
	require.NoError(t, c.Selection().SetSelected(1, true))
	require.NoError(t, c.Selection().SetSelected(3, true))
	*steps = nil

	require.NoError(t, c.RemoveAt(1))

	assert.Equal(t, []string{"layout", "selection", "collection:remove"}, *steps)
	assert.Equal(t, []int{2}, c.Selection().Selected())
	assert.Equal(t, 4, c.Selection().Count())
}

func TestItemCollection_RemoveLastKeepsSelectionInRange(t *testing.T) {
	c, _ := newTestCollection(SelectionMultiSimple, "a", "b", "c", "d", "e")
	require.NoError(t, c.Selection().SetSelected(4, true))
	require.NoError(t, c.RemoveAt(4))
	assert.Empty(t, c.Selection().Selected())
}

func TestItemCollection_AddRangeNotifiesOnce(t *testing.T) {
	c, steps := newTestCollection(SelectionSingle)
	var changes []CollectionChange
	c.CollectionChanged.Subscribe(func(ch CollectionChange) { changes = append(changes, ch) })

	c.AddRange([]string{"x", "y", "z"})

	assert.Equal(t, []string{"layout", "collection:add"}, *steps)
	assert.Equal(t, []CollectionChange{{Kind: CollectionAdd, Index: 0, Count: 3}}, changes)
	assert.Equal(t, 3, c.Selection().Count())
}

func TestItemCollection_SortedAdd(t *testing.T) {
	c, _ := newTestCollection(SelectionSingle, "pear", "apple")
	c.SetSorted(true)
	assert.Equal(t, []string{"apple", "pear"}, c.Items())

	pos := c.Add("banana")
	assert.Equal(t, 1, pos)
	assert.Equal(t, []string{"apple", "banana", "pear"}, c.Items())

	c.AddRange([]string{"cherry", "a"})
	assert.Equal(t, []string{"a", "apple", "banana", "cherry", "pear"}, c.Items())
}

func TestItemCollection_SortKeepsSelectedItems(t *testing.T) {
	c, _ := newTestCollection(SelectionSingle, "c", "a", "b")
	require.NoError(t, c.Selection().Select(0, constants.ModNone))

	c.Sort(nil)

	assert.Equal(t, []string{"a", "b", "c"}, c.Items())
	assert.Equal(t, []int{2}, c.Selection().Selected())
	assert.Equal(t, 2, c.Selection().Focused())
}

func TestItemCollection_ClearResetsFocus(t *testing.T) {
	c, steps := newTestCollection(SelectionSingle, "a", "b")
	require.NoError(t, c.Selection().Select(1, constants.ModNone))
	*steps = nil

	c.Clear()
	assert.Equal(t, []string{"layout", "selection", "collection:clear"}, *steps)
	assert.Equal(t, -1, c.Selection().Focused())
}

func TestItemCollection_Reentrant(t *testing.T) {
	c, _ := newTestCollection(SelectionSingle, "a", "b")
	removed := false
	c.CollectionChanged.Subscribe(func(ch CollectionChange) {
		if ch.Kind == CollectionAdd && !removed {
			removed = true
			require.NoError(t, c.RemoveAt(0))
		}
	})

	c.Add("c")

	assert.Equal(t, []string{"b", "c"}, c.Items())
	assert.Equal(t, 2, c.Selection().Count())
}

func TestItemCollection_InvalidIndexLeavesStateAlone(t *testing.T) {
	c, steps := newTestCollection(SelectionSingle, "a")
	*steps = nil

	assert.True(t, IsInvalidArgument(c.RemoveAt(1)))
	assert.True(t, IsInvalidArgument(c.Insert(5, "z")))
	assert.True(t, IsInvalidArgument(c.Set(-1, "z")))
	_, err := c.Item(3)
	assert.True(t, IsInvalidArgument(err))

	assert.Empty(t, *steps)
	assert.Equal(t, []string{"a"}, c.Items())
}

func TestItemCollection_FindString(t *testing.T) {
	c, _ := newTestCollection(SelectionSingle, "Alpha", "beta", "ALPHABET", "gamma")

	tests := []struct {
		name   string
		prefix string
		start  int
		want   int
	}{
		{"from top", "al", -1, 0},
		{"after first match", "al", 0, 2},
		{"wraps", "al", 2, 0},
		{"case folded", "BET", -1, 1},
		{"no match", "zeta", -1, -1},
		{"empty prefix takes next", "", 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.FindString(tt.prefix, tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := c.FindString("a", 4)
	assert.True(t, IsInvalidArgument(err))
}

func TestItemCollection_FindStringExact(t *testing.T) {
	c, _ := newTestCollection(SelectionSingle, "Alpha", "alphabet", "alpha")
	got, err := c.FindStringExact("ALPHA", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestItemCollection_FindClosest(t *testing.T) {
	c, _ := newTestCollection(SelectionSingle, "kitten", "sitting", "mitten")
	assert.Equal(t, 1, c.FindClosest("Sittin"))
	assert.Equal(t, 0, c.FindClosest("xitten"), "ties go to the lower index")

	empty, _ := newTestCollection(SelectionSingle)
	assert.Equal(t, -1, empty.FindClosest("a"))
}

func TestItemCollection_IndexOfKey(t *testing.T) {
	c, _ := newTestCollection(SelectionSingle, "id:1 one", "id:2 two")
	assert.Equal(t, -1, c.IndexOfKey("id:2"))

	c.SetKeyFunc(func(s string) string { return strings.Fields(s)[0] })
	assert.Equal(t, 1, c.IndexOfKey("id:2"))
	assert.True(t, c.Remove(func(s string) bool { return strings.HasSuffix(s, "one") }))
	assert.Equal(t, 0, c.IndexOfKey("id:2"))
}

func TestItemCollection_UpdateBlock(t *testing.T) {
	c, _ := newTestCollection(SelectionSingle)
	var changes []CollectionChange
	c.CollectionChanged.Subscribe(func(ch CollectionChange) { changes = append(changes, ch) })

	c.BeginUpdate()
	c.Add("a")
	c.Add("b")
	c.EndUpdate()

	assert.Equal(t, []CollectionChange{{Kind: CollectionRefresh, Count: 2}}, changes)
	assert.Equal(t, 2, c.Selection().Count())
}

func TestItemCollection_HandlersSeeRenumberedAnchor(t *testing.T) {
	c, _ := newTestCollection(SelectionMultiExtended, "a", "b", "c", "d", "e")
	sel := c.Selection()
	require.NoError(t, sel.Select(1, constants.ModNone))
	require.NoError(t, sel.Select(3, constants.ModCtrl))
	require.Equal(t, 3, sel.Anchor())

	seen := -2
	sel.SelectionChanged.Subscribe(func(SelectionChange) {
		if seen != -2 {
			return
		}
		seen = sel.Anchor()
		require.NoError(t, sel.Select(3, constants.ModShift))
	})

	require.NoError(t, c.RemoveAt(1))

	assert.Equal(t, 2, seen)
	assert.Equal(t, []int{2, 3}, sel.Selected())
	assert.Equal(t, 2, sel.Anchor())
	assert.Equal(t, 3, sel.Focused())
}

func TestItemCollection_UpdateBlockHoldsSelectionEvents(t *testing.T) {
	c, steps := newTestCollection(SelectionSingle, "a", "b")
	require.NoError(t, c.Selection().Select(1, constants.ModNone))
	*steps = nil

	c.BeginUpdate()
	require.NoError(t, c.Insert(0, "z"))
	require.NoError(t, c.Insert(0, "y"))
	assert.Empty(t, *steps)
	assert.Equal(t, []int{3}, c.Selection().Selected())

	c.EndUpdate()
	assert.Equal(t, []string{"layout", "selection", "collection:refresh"}, *steps)
}

func TestItemCollection_EmptyUpdateBlockReleasesSelection(t *testing.T) {
	c, steps := newTestCollection(SelectionSingle, "a", "b")
	*steps = nil

	c.BeginUpdate()
	require.NoError(t, c.Selection().Select(0, constants.ModNone))
	assert.Empty(t, *steps)
	c.EndUpdate()

	assert.Equal(t, []string{"selection"}, *steps)
}
