package brush

import (
	"fmt"

	"github.com/gogpu/brush/cache"
)

// DefaultMaskCacheSize bounds the number of distinct (size, hardness)
// masks kept alive. Strokes reuse one key per stamp, so a small bound
// is enough; the limit only matters when the host animates brush size.
const DefaultMaskCacheSize = 50

// maskKey identifies a cached stamp mask.
type maskKey struct {
	size     float64
	hardness float64
}

// MaskCache produces and caches anti-aliased stamp masks keyed by
// (size, hardness). Eviction is oldest-first once the bound is
// exceeded.
type MaskCache struct {
	masks *cache.FIFO[maskKey, *StampMask]
}

// NewMaskCache creates a mask cache holding at most capacity masks.
// If capacity <= 0, DefaultMaskCacheSize is used.
func NewMaskCache(capacity int) *MaskCache {
	if capacity <= 0 {
		capacity = DefaultMaskCacheSize
	}
	return &MaskCache{masks: cache.NewFIFO[maskKey, *StampMask](capacity)}
}

// Get returns the mask for (size, hardness), rasterizing it on first
// use. Identical keys always yield the identical cached mask. A failed
// rasterization affects only this call; the cache stays intact.
func (c *MaskCache) Get(size, hardness float64) (*StampMask, error) {
	if size < 1 {
		size = 1
	}
	hardness = clampRange(hardness, 0, 100)

	key := maskKey{size: size, hardness: hardness}
	return c.masks.GetOrCreate(key, func() (*StampMask, error) {
		m := rasterizeMask(size, hardness)
		if m == nil || len(m.Data()) == 0 {
			return nil, fmt.Errorf("rasterize mask %gx%g: empty grid", size, size)
		}
		return m, nil
	})
}

// Len returns the number of cached masks.
func (c *MaskCache) Len() int { return c.masks.Len() }

// Capacity returns the configured bound.
func (c *MaskCache) Capacity() int { return c.masks.Capacity() }

// Stats returns cache statistics.
func (c *MaskCache) Stats() cache.Stats { return c.masks.Stats() }

// Clear drops all cached masks.
func (c *MaskCache) Clear() { c.masks.Clear() }
