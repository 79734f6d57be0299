package blocklist

import (
	"github.com/haukened/blocked/internal/blocked/domain"
	"github.com/haukened/blocked/internal/blocked/services/matcher"
)

// Set is an immutable set of lowercase hex digests.
//
// Entries are normalized once at construction. When a Bloom filter is attached
// it answers definite negatives before the exact map is consulted.
type Set struct {
	digests map[string]struct{}
	bloom   BloomFilter
}

// NewSet builds a Set from digests. Entries are trimmed and lowercased; empty
// entries and duplicates are dropped. If factory is non-nil a Bloom prefilter
// sized for the set at fpRate is attached.
func NewSet(digests []string, factory BloomFactory, fpRate float64) *Set {
	m := make(map[string]struct{}, len(digests))
	for _, d := range digests {
		d = domain.NormalizeDigest(d)
		if d == "" {
			continue
		}
		m[d] = struct{}{}
	}
	s := &Set{digests: m}
	if factory != nil {
		bf := factory.New(uint64(len(m)), fpRate)
		for d := range m {
			bf.Add(d)
		}
		s.bloom = bf
	}
	return s
}

// Contains reports whether the normalized digest is in the set.
// A nil Set contains nothing.
func (s *Set) Contains(digest string) bool {
	if s == nil {
		return false
	}
	if s.bloom != nil && !s.bloom.MightContain(digest) {
		return false
	}
	_, ok := s.digests[digest]
	return ok
}

// Len returns the number of distinct digests.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.digests)
}

// HasBloom reports whether a Bloom prefilter is attached.
func (s *Set) HasBloom() bool { return s != nil && s.bloom != nil }

var _ matcher.HashSet = (*Set)(nil)
