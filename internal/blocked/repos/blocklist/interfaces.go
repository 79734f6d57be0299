package blocklist

import "github.com/haukened/blocked/internal/blocked/domain"

// BloomSizer computes Bloom filter parameters from capacity (n) and target FP rate (p).
// It returns m (number of bits) and k (number of hash functions).
type BloomSizer interface {
	Size(n uint64, p float64) (m uint64, k uint)
}

// BloomFilter is the prefilter a Set consults before its exact map. Keys are
// normalized hex digests. All Adds happen before the filter is shared;
// MightContain must then be safe for concurrent use.
type BloomFilter interface {
	Add(digest string)
	MightContain(digest string) bool
}

// BloomFactory constructs Bloom filters sized for a dataset.
type BloomFactory interface {
	New(capacity uint64, fpRate float64) BloomFilter
}

// DecisionCache caches match results by address with basic metrics.
// Implementations must be safe for concurrent use.
type DecisionCache interface {
	Get(address string) (domain.Match, bool)
	Put(address string, m domain.Match)
	Len() int
	Purge()
	Stats() CacheStats
}

// Repository is the composition layer that wires cache → matcher → hash set.
// Decide returns a value-type Match for the address.
// UpdateAll builds a new hash set, swaps it in and clears the cache.
type Repository interface {
	Decide(address string) domain.Match
	UpdateAll(digests []string, version uint64) error
	RepoStats() RepoStats
}
