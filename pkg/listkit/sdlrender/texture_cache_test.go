package sdlrender

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTexture struct {
	name      string
	destroyed *[]string
}

func (f fakeTexture) Destroy() error {
	*f.destroyed = append(*f.destroyed, f.name)
	return nil
}

func TestTextureCache_EvictsLeastRecentlyUsed(t *testing.T) {
	var destroyed []string
	tex := func(name string) fakeTexture { return fakeTexture{name: name, destroyed: &destroyed} }

	c := NewTextureCacheWithSize[fakeTexture](2)
	c.Set("a", tex("a"))
	c.Set("b", tex("b"))

	_, ok := c.Get("a")
	assert.True(t, ok)

	c.Set("c", tex("c"))
	assert.Equal(t, []string{"b"}, destroyed)
	_, ok = c.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())

	c.Set("a", tex("a2"))
	assert.Equal(t, []string{"b", "a"}, destroyed)

	c.Destroy()
	assert.ElementsMatch(t, []string{"b", "a", "a2", "c"}, destroyed)
	assert.Zero(t, c.Len())
}

func TestTextureCache_StoringSameTextureKeepsIt(t *testing.T) {
	var destroyed []string
	a := fakeTexture{name: "a", destroyed: &destroyed}

	c := NewTextureCacheWithSize[fakeTexture](2)
	c.Set("a", a)
	c.Set("a", a)

	assert.Empty(t, destroyed)
	got, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, a, got)
	assert.Equal(t, 1, c.Len())
}
