package listkit

import (
	"iter"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

// CollectionChange is raised once per mutating call on an ItemCollection,
// after the selection has reacted and the layout has been invalidated.
type CollectionChange struct {
	Kind  CollectionChangeKind
	Index int
	Count int
}

// LayoutInvalidator is told when item geometry must be recomputed.
type LayoutInvalidator interface {
	InvalidateLayout()
}

// KeyFunc returns the lookup key of an item for IndexOfKey.
type KeyFunc[T any] func(item T) string

// ItemCollection is the mutation surface of a list. It owns the order of
// side effects for every change: the store is mutated, then the selection
// renumbers, then the layout is invalidated. Only then do the selection's
// events fire, followed by exactly one CollectionChanged. Handlers may
// mutate the collection again; each nested change runs the same sequence
// to completion.
type ItemCollection[T any] struct {
	store     *ItemStore[T]
	selection *SelectionController
	layout    LayoutInvalidator
	key       KeyFunc[T]
	sorted    bool

	hold    int
	held    []CollectionChange
	unwatch func()

	CollectionChanged Event[CollectionChange]
}

// NewItemCollection ties a store to a selection controller. layout may be
// nil. The controller's count is synchronized with the store.
func NewItemCollection[T any](store *ItemStore[T], selection *SelectionController, layout LayoutInvalidator) *ItemCollection[T] {
	c := &ItemCollection[T]{store: store, selection: selection, layout: layout}
	selection.CountChanged(store.Len())
	c.unwatch = store.Changed.Subscribe(c.storeChanged)
	return c
}

// Detach stops the collection from reacting to its store.
func (c *ItemCollection[T]) Detach() {
	if c.unwatch != nil {
		c.unwatch()
		c.unwatch = nil
	}
}

// Store returns the underlying store. Mutations made on it directly still
// run the full reaction sequence.
func (c *ItemCollection[T]) Store() *ItemStore[T] { return c.store }

// Selection returns the selection controller.
func (c *ItemCollection[T]) Selection() *SelectionController { return c.selection }

// SetKeyFunc sets the key used by IndexOfKey.
func (c *ItemCollection[T]) SetKeyFunc(fn KeyFunc[T]) { c.key = fn }

func (c *ItemCollection[T]) storeChanged(ch StoreChange) {
	change := CollectionChange{Index: ch.Index, Count: ch.Count}
	c.selection.HoldEvents()
	switch ch.Kind {
	case StoreAdded:
		c.selection.ItemsInserted(ch.Index, ch.Count)
		change.Kind = CollectionAdd
	case StoreRemoved:
		c.selection.ItemsRemoved(ch.Index)
		change.Kind = CollectionRemove
	case StoreReplaced:
		change.Kind = CollectionReplace
	case StoreCleared:
		c.selection.ItemsCleared()
		change.Kind = CollectionClear
	case StoreSorted:
		c.selection.ItemsReordered(ch.Moves)
		change.Kind = CollectionRefresh
	case StoreReset:
		c.selection.ItemsReset(c.store.Len())
		change.Kind = CollectionRefresh
	}

	if c.hold > 0 {
		// The update block holds the selection's events until EndUpdate.
		c.held = append(c.held, change)
		c.selection.ReleaseEvents()
		return
	}
	c.publish(change)
}

// publish invalidates the layout, lets the selection raise its withheld
// events and then raises CollectionChanged. It ends one selection hold.
func (c *ItemCollection[T]) publish(change CollectionChange) {
	if c.layout != nil {
		c.layout.InvalidateLayout()
	}
	c.selection.ReleaseEvents()
	c.CollectionChanged.raise("collection_changed", change)
}

// BeginUpdate defers layout invalidation, selection events and
// CollectionChanged until the matching EndUpdate. The selection keeps
// renumbering on each change.
func (c *ItemCollection[T]) BeginUpdate() {
	if c.hold == 0 {
		c.selection.HoldEvents()
	}
	c.hold++
}

// EndUpdate closes an update block. A single held change is published as
// is; several are published as one CollectionRefresh.
func (c *ItemCollection[T]) EndUpdate() {
	if c.hold == 0 {
		return
	}
	c.hold--
	if c.hold > 0 {
		return
	}
	if len(c.held) == 0 {
		c.selection.ReleaseEvents()
		return
	}
	held := c.held
	c.held = nil
	if len(held) == 1 {
		c.publish(held[0])
		return
	}
	c.publish(CollectionChange{Kind: CollectionRefresh, Count: c.store.Len()})
}

func (c *ItemCollection[T]) Len() int { return c.store.Len() }

// Item returns the item at i.
func (c *ItemCollection[T]) Item(i int) (T, error) { return c.store.At(i) }

// Text returns the display text of the item at i.
func (c *ItemCollection[T]) Text(i int) string { return c.store.Text(i) }

// Items returns a copy of the items.
func (c *ItemCollection[T]) Items() []T { return c.store.Items() }

// All iterates positions and items.
func (c *ItemCollection[T]) All() iter.Seq2[int, T] { return c.store.All() }

// Sorted reports whether items are kept in display text order.
func (c *ItemCollection[T]) Sorted() bool { return c.sorted }

// SetSorted turns sorting on or off. Turning it on sorts immediately.
func (c *ItemCollection[T]) SetSorted(sorted bool) {
	if c.sorted == sorted {
		return
	}
	c.sorted = sorted
	if sorted {
		c.store.Sort(nil)
	}
}

// Add appends item, or inserts it at its sorted position, and returns the
// position it landed at.
func (c *ItemCollection[T]) Add(item T) int {
	if !c.sorted {
		return c.store.Add(item)
	}
	pos := c.store.SortedPosition(item)
	// pos is always within [0, Len].
	_ = c.store.Insert(pos, item)
	return pos
}

// AddRange appends items with one selection reaction, one invalidation and
// one CollectionChanged.
func (c *ItemCollection[T]) AddRange(items []T) {
	if len(items) == 0 {
		return
	}
	if !c.sorted {
		c.store.AddRange(items)
		return
	}
	c.BeginUpdate()
	c.store.AddRange(items)
	c.store.Sort(nil)
	c.EndUpdate()
}

// SetAll replaces the contents. The selection is dropped.
func (c *ItemCollection[T]) SetAll(items []T) {
	if !c.sorted {
		c.store.SetAll(items)
		return
	}
	c.BeginUpdate()
	c.store.SetAll(items)
	c.store.Sort(nil)
	c.EndUpdate()
}

// Insert places item at pos. On a sorted collection pos is validated but
// the item goes to its sorted position.
func (c *ItemCollection[T]) Insert(pos int, item T) error {
	if pos < 0 || pos > c.store.Len() {
		return rejected(argumentError("insert", pos))
	}
	if c.sorted {
		c.Add(item)
		return nil
	}
	return c.store.Insert(pos, item)
}

// RemoveAt removes the item at pos.
func (c *ItemCollection[T]) RemoveAt(pos int) error {
	return c.store.RemoveAt(pos)
}

// Remove removes the first item matching and reports whether one was found.
func (c *ItemCollection[T]) Remove(match func(T) bool) bool {
	pos := c.store.IndexFunc(0, match)
	if pos < 0 {
		return false
	}
	return c.store.RemoveAt(pos) == nil
}

// Set replaces the item at pos, re-sorting a sorted collection.
func (c *ItemCollection[T]) Set(pos int, item T) error {
	if !c.sorted {
		return c.store.Set(pos, item)
	}
	if pos < 0 || pos >= c.store.Len() {
		return rejected(argumentError("set", pos))
	}
	c.BeginUpdate()
	defer c.EndUpdate()
	_ = c.store.Set(pos, item)
	c.store.Sort(nil)
	return nil
}

// Clear removes every item.
func (c *ItemCollection[T]) Clear() {
	c.store.Clear()
}

// Sort reorders the items stably. A nil cmp sorts by display text.
// Selected items stay selected at their new positions.
func (c *ItemCollection[T]) Sort(cmp func(a, b T) int) {
	c.store.Sort(cmp)
}

// Contains reports whether any item matches.
func (c *ItemCollection[T]) Contains(match func(T) bool) bool {
	return c.store.IndexFunc(0, match) >= 0
}

// IndexOfKey returns the first item whose key equals key, or -1 when no
// KeyFunc is set or nothing matches.
func (c *ItemCollection[T]) IndexOfKey(key string) int {
	if c.key == nil {
		return -1
	}
	return c.store.IndexFunc(0, func(item T) bool { return c.key(item) == key })
}

// FindString returns the first item after start whose text begins with
// prefix, ignoring case. The search wraps around and start -1 searches from
// the top. It returns -1 when nothing matches.
func (c *ItemCollection[T]) FindString(prefix string, start int) (int, error) {
	fold := cases.Fold()
	want := fold.String(prefix)
	return c.find("find_string", start, func(text string) bool {
		return strings.HasPrefix(fold.String(text), want)
	})
}

// FindStringExact is FindString matching the whole text.
func (c *ItemCollection[T]) FindStringExact(text string, start int) (int, error) {
	fold := cases.Fold()
	want := fold.String(text)
	return c.find("find_string_exact", start, func(s string) bool {
		return fold.String(s) == want
	})
}

func (c *ItemCollection[T]) find(op string, start int, match func(string) bool) (int, error) {
	n := c.store.Len()
	if n == 0 {
		return -1, nil
	}
	if start < -1 || start >= n {
		return -1, rejected(argumentError(op, start))
	}
	for k := 1; k <= n; k++ {
		i := (start + k) % n
		if match(c.store.Text(i)) {
			return i, nil
		}
	}
	return -1, nil
}

// FindClosest returns the item whose text is the fewest edits away from
// text, ignoring case. Ties go to the lower index. It returns -1 on an
// empty collection.
func (c *ItemCollection[T]) FindClosest(text string) int {
	fold := cases.Fold()
	want := fold.String(text)
	best, bestDist := -1, 0
	for i := range c.store.Len() {
		d := levenshtein.ComputeDistance(want, fold.String(c.store.Text(i)))
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
