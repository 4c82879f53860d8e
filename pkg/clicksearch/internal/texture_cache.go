package internal

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// defaultMaxCacheSize covers a screenful of rows plus the title and hints.
const defaultMaxCacheSize = 32

// TextTexture is a rendered label with its pixel size.
type TextTexture struct {
	Texture *sdl.Texture
	W, H    int32
}

// TextureCache keeps rendered labels keyed by text and color so that
// redrawing an unchanged list does not hit SDL_ttf every frame.
// Oldest entries are evicted first.
type TextureCache struct {
	textures map[string]TextTexture
	order    []string
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]TextTexture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func cacheKey(text string, color sdl.Color) string {
	return string([]byte{color.R, color.G, color.B, color.A}) + text
}

// Text returns a texture for text rendered with font in color, creating
// and caching it on a miss. Empty text yields a zero TextTexture.
func (c *TextureCache) Text(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) (TextTexture, error) {
	if text == "" {
		return TextTexture{}, nil
	}

	key := cacheKey(text, color)
	if t, ok := c.textures[key]; ok {
		c.moveToEnd(key)
		return t, nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return TextTexture{}, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return TextTexture{}, err
	}

	t := TextTexture{Texture: texture, W: surface.W, H: surface.H}
	c.set(key, t)
	return t, nil
}

func (c *TextureCache) set(key string, t TextTexture) {
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.textures[key] = t
	c.order = append(c.order, key)
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if t, ok := c.textures[oldest]; ok {
		t.Texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, t := range c.textures {
		t.Texture.Destroy()
	}
	c.textures = make(map[string]TextTexture)
	c.order = c.order[:0]
}
