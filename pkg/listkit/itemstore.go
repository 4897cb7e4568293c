package listkit

import (
	"fmt"
	"iter"
	"slices"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// TextFunc returns the display text of an item. Sorting, searching and
// clipboard assembly all go through it.
type TextFunc[T any] func(item T) string

// StoreChangeKind says what a StoreChange describes.
type StoreChangeKind int

const (
	StoreAdded    StoreChangeKind = iota // Count items inserted starting at Index
	StoreRemoved                         // One item removed at Index
	StoreReplaced                        // Item at Index replaced in place
	StoreCleared                         // Every item removed
	StoreSorted                          // Items reordered, Moves maps old position to new
	StoreReset                           // Contents replaced wholesale
)

func (k StoreChangeKind) String() string {
	switch k {
	case StoreAdded:
		return "added"
	case StoreRemoved:
		return "removed"
	case StoreReplaced:
		return "replaced"
	case StoreCleared:
		return "cleared"
	case StoreSorted:
		return "sorted"
	case StoreReset:
		return "reset"
	default:
		return "unknown"
	}
}

// StoreChange is raised once per mutating call, after the store's own
// bookkeeping is complete.
type StoreChange struct {
	Kind  StoreChangeKind
	Index int
	Count int
	Moves []int // StoreSorted only: Moves[old] == new
}

// ItemStore is an ordered sequence of opaque items. It owns no reference to
// an item once removed.
type ItemStore[T any] struct {
	items    []T
	text     TextFunc[T]
	locale   language.Tag
	collator *collate.Collator

	updating int
	dirty    bool

	// Changed fires after every mutation, or once at the end of an update
	// block or bulk call.
	Changed Event[StoreChange]
}

// NewItemStore creates an empty store. A nil text func formats items with
// fmt.Sprint.
func NewItemStore[T any](text TextFunc[T]) *ItemStore[T] {
	if text == nil {
		text = func(item T) string { return fmt.Sprint(item) }
	}
	return &ItemStore[T]{text: text, locale: language.Und}
}

// SetLocale selects the collation used by the default sort comparator.
func (s *ItemStore[T]) SetLocale(tag language.Tag) {
	s.locale = tag
	s.collator = nil
}

func (s *ItemStore[T]) Len() int { return len(s.items) }

// At returns the item at i.
func (s *ItemStore[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, rejected(argumentError("item_at", i))
	}
	return s.items[i], nil
}

// Text returns the display text of the item at i, or "" when out of range.
func (s *ItemStore[T]) Text(i int) string {
	if i < 0 || i >= len(s.items) {
		return ""
	}
	return s.text(s.items[i])
}

// TextOf returns the display text of an arbitrary item.
func (s *ItemStore[T]) TextOf(item T) string {
	return s.text(item)
}

// Items returns a copy of the items.
func (s *ItemStore[T]) Items() []T {
	return slices.Clone(s.items)
}

// All iterates positions and items. The store must not be modified during
// iteration.
func (s *ItemStore[T]) All() iter.Seq2[int, T] {
	return slices.All(s.items)
}

// Add appends item and returns its position.
func (s *ItemStore[T]) Add(item T) int {
	s.items = append(s.items, item)
	pos := len(s.items) - 1
	s.notify(StoreChange{Kind: StoreAdded, Index: pos, Count: 1})
	return pos
}

// Insert places item at pos, shifting later items up. pos may equal Len.
func (s *ItemStore[T]) Insert(pos int, item T) error {
	if pos < 0 || pos > len(s.items) {
		return rejected(argumentError("insert", pos))
	}
	s.items = slices.Insert(s.items, pos, item)
	s.notify(StoreChange{Kind: StoreAdded, Index: pos, Count: 1})
	return nil
}

// RemoveAt deletes the item at pos.
func (s *ItemStore[T]) RemoveAt(pos int) error {
	if pos < 0 || pos >= len(s.items) {
		return rejected(argumentError("remove_at", pos))
	}
	var zero T
	s.items[pos] = zero
	s.items = slices.Delete(s.items, pos, pos+1)
	s.notify(StoreChange{Kind: StoreRemoved, Index: pos, Count: 1})
	return nil
}

// Set replaces the item at pos.
func (s *ItemStore[T]) Set(pos int, item T) error {
	if pos < 0 || pos >= len(s.items) {
		return rejected(argumentError("set", pos))
	}
	s.items[pos] = item
	s.notify(StoreChange{Kind: StoreReplaced, Index: pos, Count: 1})
	return nil
}

// Clear removes every item.
func (s *ItemStore[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
	s.notify(StoreChange{Kind: StoreCleared})
}

// AddRange appends items with a single notification and returns the
// position of the first one.
func (s *ItemStore[T]) AddRange(items []T) int {
	start := len(s.items)
	if len(items) == 0 {
		return start
	}
	s.items = append(s.items, items...)
	s.notify(StoreChange{Kind: StoreAdded, Index: start, Count: len(items)})
	return start
}

// SetAll replaces the contents with items with a single notification.
func (s *ItemStore[T]) SetAll(items []T) {
	clear(s.items)
	s.items = append(s.items[:0], items...)
	s.notify(StoreChange{Kind: StoreReset, Count: len(items)})
}

// Sort reorders items stably. A nil cmp compares display text with the
// store's collator.
func (s *ItemStore[T]) Sort(cmp func(a, b T) int) {
	if cmp == nil {
		cmp = s.compareText
	}

	order := make([]int, len(s.items))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return cmp(s.items[a], s.items[b]) })

	sorted := make([]T, len(s.items))
	moves := make([]int, len(s.items))
	for newPos, oldPos := range order {
		sorted[newPos] = s.items[oldPos]
		moves[oldPos] = newPos
	}
	s.items = sorted
	s.notify(StoreChange{Kind: StoreSorted, Count: len(sorted), Moves: moves})
}

// SortedPosition returns where item would be inserted to keep the store
// sorted by display text, after any equal items.
func (s *ItemStore[T]) SortedPosition(item T) int {
	return sort.Search(len(s.items), func(i int) bool {
		return s.compareText(s.items[i], item) > 0
	})
}

func (s *ItemStore[T]) compareText(a, b T) int {
	if s.collator == nil {
		s.collator = collate.New(s.locale)
	}
	return s.collator.CompareString(s.text(a), s.text(b))
}

// IndexFunc returns the first position at or after start whose item
// satisfies match, or -1.
func (s *ItemStore[T]) IndexFunc(start int, match func(T) bool) int {
	for i := max(0, start); i < len(s.items); i++ {
		if match(s.items[i]) {
			return i
		}
	}
	return -1
}

// BeginUpdate suspends notifications until the matching EndUpdate. Calls
// nest; any mutations in between are reported as one StoreReset.
func (s *ItemStore[T]) BeginUpdate() {
	s.updating++
}

// EndUpdate closes an update block.
func (s *ItemStore[T]) EndUpdate() {
	if s.updating == 0 {
		return
	}
	s.updating--
	if s.updating == 0 && s.dirty {
		s.dirty = false
		s.Changed.raise("store_changed", StoreChange{Kind: StoreReset, Count: len(s.items)})
	}
}

func (s *ItemStore[T]) notify(ch StoreChange) {
	if s.updating > 0 {
		s.dirty = true
		return
	}
	s.Changed.raise("store_changed", ch)
}
