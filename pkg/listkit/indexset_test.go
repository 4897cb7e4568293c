package listkit

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexSet_ReadsAreAscending(t *testing.T) {
	for _, s := range []*IndexSet{NewSortedIndexSet(), NewLazyIndexSet()} {
		for _, v := range []int{7, 3, 9, 1, 3} {
			s.Add(v)
		}
		assert.Equal(t, []int{1, 3, 7, 9}, s.Values())
		assert.Equal(t, 4, s.Len())
		assert.Equal(t, 1, s.At(0))
		assert.Equal(t, 2, s.IndexOf(7))
		assert.Equal(t, -1, s.IndexOf(4))
		assert.Equal(t, 1, s.First())
		assert.Equal(t, []int{1, 3, 7, 9}, slices.Collect(s.All()))
	}
}

func TestIndexSet_AddRejectsDuplicatesAndNegatives(t *testing.T) {
	s := NewLazyIndexSet()
	assert.True(t, s.Add(4))
	assert.False(t, s.Add(4))
	assert.False(t, s.Add(-1))
	assert.True(t, s.Add(2))
	assert.False(t, s.Add(2), "duplicate detected while unsorted")
	assert.Equal(t, []int{2, 4}, s.Values())
}

func TestIndexSet_Remove(t *testing.T) {
	s := NewSortedIndexSet()
	s.Add(1)
	s.Add(5)
	assert.True(t, s.Remove(1))
	assert.False(t, s.Remove(1))
	assert.False(t, s.Contains(1))
	assert.True(t, s.Contains(5))
}

func TestIndexSet_EmptyFirst(t *testing.T) {
	s := NewLazyIndexSet()
	assert.Equal(t, -1, s.First())
	s.Add(3)
	s.Clear()
	assert.Equal(t, -1, s.First())
	assert.Zero(t, s.Len())
}

func TestIndexSet_Renumbering(t *testing.T) {
	s := NewLazyIndexSet()
	for _, v := range []int{1, 3, 6} {
		s.Add(v)
	}

	require.True(t, s.RemovedAt(3))
	assert.Equal(t, []int{1, 5}, s.Values())

	require.False(t, s.RemovedAt(0))
	assert.Equal(t, []int{0, 4}, s.Values())

	s.InsertedAt(1, 2)
	assert.Equal(t, []int{0, 6}, s.Values())

	assert.True(t, s.DropFrom(5))
	assert.Equal(t, []int{0}, s.Values())
	assert.False(t, s.DropFrom(5))
}

func TestIndexSet_CloneAndEqual(t *testing.T) {
	a := NewLazyIndexSet()
	a.Add(5)
	a.Add(2)
	b := a.Clone()
	assert.True(t, a.Equal(b))

	b.Add(9)
	assert.False(t, a.Equal(b))
	assert.Equal(t, []int{2, 5}, a.Values())
}
