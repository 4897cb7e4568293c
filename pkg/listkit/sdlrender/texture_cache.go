package sdlrender

const defaultMaxCacheSize = 256

// destroyer is anything holding GPU memory that must be released.
type destroyer interface {
	comparable
	Destroy() error
}

// TextureCache keeps the most recently used textures, destroying the
// least recently used one when full. The painter keys rendered text by
// string and color so a scrolling list re-renders only new rows.
type TextureCache[V destroyer] struct {
	textures map[string]V
	order    []string // least recently used first
	maxSize  int
}

func NewTextureCache[V destroyer]() *TextureCache[V] {
	return NewTextureCacheWithSize[V](defaultMaxCacheSize)
}

func NewTextureCacheWithSize[V destroyer](maxSize int) *TextureCache[V] {
	return &TextureCache[V]{
		textures: make(map[string]V),
		order:    make([]string, 0, maxSize),
		maxSize:  max(1, maxSize),
	}
}

// Get returns the texture stored under key and marks it recently used.
func (c *TextureCache[V]) Get(key string) (V, bool) {
	texture, exists := c.textures[key]
	if exists {
		c.moveToEnd(key)
	}
	return texture, exists
}

// Set stores texture under key, evicting the oldest entry when full.
// A texture replaced under the same key is destroyed unless it is the one
// being stored.
func (c *TextureCache[V]) Set(key string, texture V) {
	if old, exists := c.textures[key]; exists {
		if old != texture {
			_ = old.Destroy()
		}
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

// Len returns the number of cached textures.
func (c *TextureCache[V]) Len() int { return len(c.order) }

func (c *TextureCache[V]) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache[V]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		_ = texture.Destroy()
		delete(c.textures, oldest)
	}
}

// Destroy releases every texture.
func (c *TextureCache[V]) Destroy() {
	for _, texture := range c.textures {
		_ = texture.Destroy()
	}
	clear(c.textures)
	c.order = c.order[:0]
}
