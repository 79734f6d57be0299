package lru

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/haukened/blocked/internal/blocked/domain"
	"github.com/haukened/blocked/internal/blocked/repos/blocklist"
)

// newLRU builds the underlying cache; replaced in tests.
var newLRU = func(size int, onEvict func(string, domain.Match)) (*lru.Cache[string, domain.Match], error) {
	return lru.NewWithEvict(size, onEvict)
}

// decisionCache is an LRU-backed implementation of blocklist.DecisionCache.
// It tracks basic metrics: hits, misses, and evictions.
type decisionCache struct {
	lru       *lru.Cache[string, domain.Match]
	capacity  int
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// disabledCache is a no-op DecisionCache used when size <= 0.
type disabledCache struct{}

// New creates a new DecisionCache with the given capacity. If size <= 0, a
// disabled no-op cache is returned that always misses and tracks no metrics.
func New(size int) (blocklist.DecisionCache, error) {
	if size <= 0 {
		return &disabledCache{}, nil
	}

	dc := &decisionCache{capacity: size}
	// Purge also reports through the eviction callback.
	cache, err := newLRU(size, func(_ string, _ domain.Match) {
		dc.evictions.Add(1)
	})
	if err != nil {
		return nil, err
	}
	dc.lru = cache
	return dc, nil
}

// Get looks up a decision by address. When found, increments hits; otherwise increments misses.
func (c *decisionCache) Get(address string) (domain.Match, bool) {
	if val, ok := c.lru.Get(address); ok {
		c.hits.Add(1)
		return val, true
	}
	c.misses.Add(1)
	return domain.Match{}, false
}

// Put stores a decision by address.
func (c *decisionCache) Put(address string, m domain.Match) {
	c.lru.Add(address, m)
}

// Len returns the number of entries in the cache.
func (c *decisionCache) Len() int { return c.lru.Len() }

// Purge clears all entries. Evictions are counted via the eviction callback.
func (c *decisionCache) Purge() { c.lru.Purge() }

// Stats returns a snapshot of the cache counters.
func (c *decisionCache) Stats() blocklist.CacheStats {
	return blocklist.CacheStats{
		Capacity:  c.capacity,
		Size:      c.lru.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// disabledCache implementation

func (d *disabledCache) Get(string) (domain.Match, bool) { return domain.Match{}, false }

func (d *disabledCache) Put(string, domain.Match) {}

func (d *disabledCache) Len() int { return 0 }

func (d *disabledCache) Purge() {}

func (d *disabledCache) Stats() blocklist.CacheStats { return blocklist.CacheStats{} }

var _ blocklist.DecisionCache = (*decisionCache)(nil)
var _ blocklist.DecisionCache = (*disabledCache)(nil)
