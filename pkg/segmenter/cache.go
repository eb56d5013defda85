package segmenter

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// maxCachedRunLen keeps long runs out of the cache; they rarely repeat.
const maxCachedRunLen = 256

type cachedSegmenter struct {
	inner Segmenter
	cache *lru.Cache[string, []int]
}

// Cached memoizes the unit boundaries inner produces for short runs.
// The LRU cache is thread-safe, so the result stays safe for concurrent use.
func Cached(inner Segmenter, size int) Segmenter {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, []int](size)
	if err != nil {
		return inner
	}
	return &cachedSegmenter{inner: inner, cache: cache}
}

func (c *cachedSegmenter) Segment(text string) Units {
	if len(text) > maxCachedRunLen {
		return c.inner.Segment(text)
	}

	if ends, ok := c.cache.Get(text); ok {
		return newBoundaryUnits(text, ends)
	}

	ends := collectEnds(c.inner.Segment(text))
	c.cache.Add(text, ends)
	return newBoundaryUnits(text, ends)
}

// Len returns the number of cached runs.
func (c *cachedSegmenter) Len() int {
	return c.cache.Len()
}

// Purge empties the cache.
func (c *cachedSegmenter) Purge() {
	c.cache.Purge()
}
