package listkit

import (
	"iter"
	"slices"
)

// IndexSet is an ordered set of non-negative ints without duplicates.
//
// Two flavors exist. A sorted set keeps ascending order after every write,
// which suits tab stops. A lazy set appends in write order and sorts the
// first time it is read, so a run of adds during a range selection costs
// one sort. Every read (At, IndexOf, Values, All) observes ascending order.
type IndexSet struct {
	values []int
	lazy   bool
	dirty  bool
}

// NewSortedIndexSet returns a set that is kept sorted on every write.
func NewSortedIndexSet() *IndexSet {
	return &IndexSet{}
}

// NewLazyIndexSet returns a set that defers sorting until it is read.
func NewLazyIndexSet() *IndexSet {
	return &IndexSet{lazy: true}
}

func (s *IndexSet) sort() {
	if s.dirty {
		slices.Sort(s.values)
		s.dirty = false
	}
}

// Add inserts i. It returns false when i is negative or already present.
func (s *IndexSet) Add(i int) bool {
	if i < 0 || s.Contains(i) {
		return false
	}
	if s.lazy {
		if n := len(s.values); n > 0 && s.values[n-1] > i {
			s.dirty = true
		}
		s.values = append(s.values, i)
		return true
	}
	pos, _ := slices.BinarySearch(s.values, i)
	s.values = slices.Insert(s.values, pos, i)
	return true
}

// Remove deletes i. It returns false when i was absent.
func (s *IndexSet) Remove(i int) bool {
	pos := slices.Index(s.values, i)
	if pos < 0 {
		return false
	}
	// Deleting keeps the relative order, so a sorted slice stays sorted.
	s.values = slices.Delete(s.values, pos, pos+1)
	return true
}

// Contains reports whether i is in the set.
func (s *IndexSet) Contains(i int) bool {
	if !s.dirty {
		_, found := slices.BinarySearch(s.values, i)
		return found
	}
	return slices.Contains(s.values, i)
}

// IndexOf returns the position of i in ascending order, or -1.
func (s *IndexSet) IndexOf(i int) int {
	s.sort()
	pos, found := slices.BinarySearch(s.values, i)
	if !found {
		return -1
	}
	return pos
}

// At returns the element at position pos in ascending order.
func (s *IndexSet) At(pos int) int {
	s.sort()
	return s.values[pos]
}

// First returns the smallest element, or -1 when empty.
func (s *IndexSet) First() int {
	if len(s.values) == 0 {
		return -1
	}
	return s.At(0)
}

func (s *IndexSet) Len() int { return len(s.values) }

// Clear removes every element.
func (s *IndexSet) Clear() {
	s.values = s.values[:0]
	s.dirty = false
}

// Values returns a copy of the elements in ascending order.
func (s *IndexSet) Values() []int {
	s.sort()
	return slices.Clone(s.values)
}

// All iterates the elements in ascending order. The set must not be
// modified during iteration.
func (s *IndexSet) All() iter.Seq[int] {
	s.sort()
	return slices.Values(s.values)
}

// Clone returns an independent copy of the same flavor.
func (s *IndexSet) Clone() *IndexSet {
	s.sort()
	return &IndexSet{values: slices.Clone(s.values), lazy: s.lazy}
}

// Equal reports whether both sets hold the same elements.
func (s *IndexSet) Equal(o *IndexSet) bool {
	s.sort()
	o.sort()
	return slices.Equal(s.values, o.values)
}

// RemovedAt renumbers the set after the item at index k was removed from
// the backing store: k is dropped and every element above it moves down by
// one. It returns true when k was present.
func (s *IndexSet) RemovedAt(k int) bool {
	had := s.Remove(k)
	for i, v := range s.values {
		if v > k {
			s.values[i] = v - 1
		}
	}
	return had
}

// InsertedAt renumbers the set after n items were inserted at index k:
// every element at or above k moves up by n.
func (s *IndexSet) InsertedAt(k, n int) {
	for i, v := range s.values {
		if v >= k {
			s.values[i] = v + n
		}
	}
}

// DropFrom removes every element >= n and reports whether any was removed.
func (s *IndexSet) DropFrom(n int) bool {
	before := len(s.values)
	s.values = slices.DeleteFunc(s.values, func(v int) bool { return v >= n })
	return len(s.values) != before
}
