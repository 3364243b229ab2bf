package splash

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"sync"
)

// DefaultCacheCapacity bounds the preview cache when no explicit capacity is
// given.
const DefaultCacheCapacity = 20

// PreviewCache is a capacity-bounded cache of rendered preview buffers keyed
// by their processing parameters.
//
// Eviction is strictly insertion-order: when a new key arrives at capacity,
// the single oldest-inserted key is removed first. Re-setting an existing key
// replaces its value but does NOT refresh its position; this is not an LRU.
//
// Both Get and Set hand out and store defensive copies, so a cached buffer can
// never be mutated through a caller's reference.
type PreviewCache struct {
	mu       sync.RWMutex
	capacity int
	entries  map[uint64]*RasterImage
	order    []uint64
}

// NewPreviewCache creates a cache bounded to the given number of entries.
// A non-positive capacity falls back to DefaultCacheCapacity.
func NewPreviewCache(capacity int) *PreviewCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &PreviewCache{
		capacity: capacity,
		entries:  make(map[uint64]*RasterImage),
	}
}

// Get returns a copy of the cached buffer for key, if present.
func (c *PreviewCache) Get(key uint64) (*RasterImage, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	img, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return img.Clone(), true
}

// Set stores a copy of img under key, evicting the oldest-inserted entry if
// the key is new and the cache is full.
func (c *PreviewCache) Set(key uint64, img *RasterImage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = img.Clone()
		return
	}

	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = img.Clone()
	c.order = append(c.order, key)
}

// Clear empties the cache.
func (c *PreviewCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]*RasterImage)
	c.order = nil
}

// Len returns the number of cached entries; it never exceeds the capacity.
func (c *PreviewCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// CacheKey derives a deterministic key from everything that affects a preview
// render: image dimensions, the target colors in call order, each tolerance
// axis, the color space, and the quality tier.
//
// The key is an FNV-1a hash over a structured encoding in which an unset
// tolerance axis contributes a distinct sentinel byte, so "no constraint" and
// "explicitly zero" never collide.
func CacheKey(img *RasterImage, targets []Color, tol Tolerance, space ColorSpace, quality Quality) uint64 {
	h := fnv.New64a()
	var buf [8]byte

	binary.LittleEndian.PutUint32(buf[:4], uint32(img.Width))
	binary.LittleEndian.PutUint32(buf[4:], uint32(img.Height))
	h.Write(buf[:])

	binary.LittleEndian.PutUint32(buf[:4], uint32(len(targets)))
	h.Write(buf[:4])
	for _, t := range targets {
		h.Write([]byte{t.R, t.G, t.B, t.A})
	}

	for _, axis := range []*float64{tol.Hue, tol.Saturation, tol.Lightness, tol.Euclidean} {
		if axis == nil {
			h.Write([]byte{0})
			continue
		}
		h.Write([]byte{1})
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(*axis))
		h.Write(buf[:])
	}

	h.Write([]byte(space))
	h.Write([]byte{0})
	h.Write([]byte(quality))

	return h.Sum64()
}
