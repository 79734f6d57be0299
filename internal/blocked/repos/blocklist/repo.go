package blocklist

import (
	"fmt"
	"sync"

	"github.com/haukened/blocked/internal/blocked/common/clock"
	"github.com/haukened/blocked/internal/blocked/common/log"
	"github.com/haukened/blocked/internal/blocked/domain"
	"github.com/haukened/blocked/internal/blocked/services/matcher"
)

// Options configures a Repository.
type Options struct {
	// Cache memoizes decisions per address. Nil disables caching.
	Cache DecisionCache
	// Factory builds the Bloom prefilter for each new set. Nil disables it.
	Factory BloomFactory
	// FPRate is the target false-positive rate for the Bloom prefilter.
	FPRate float64
	// Clock stamps updates. Defaults to the real clock.
	Clock clock.Clock
	// Logger defaults to the global logger.
	Logger log.Logger
	// Canonicalize, when set, rewrites addresses before matching and caching.
	Canonicalize func(string) string
}

// snapshot is one immutable generation of the list.
type snapshot struct {
	set         *Set
	matcher     *matcher.Matcher
	version     uint64
	updatedUnix int64
}

// repository implements the Repository interface by composing a hash set
// (with optional Bloom prefilter), the matcher and a DecisionCache. It applies a
// cache → matcher pipeline on reads and swaps whole snapshots on writes.
type repository struct {
	mu           sync.RWMutex
	current      *snapshot
	cache        DecisionCache
	factory      BloomFactory
	fpRate       float64
	clock        clock.Clock
	logger       log.Logger
	canonicalize func(string) string
}

// NewRepository constructs a Repository. Until UpdateAll succeeds every address
// is allowed.
func NewRepository(opts Options) Repository {
	r := &repository{
		cache:        opts.Cache,
		factory:      opts.Factory,
		fpRate:       opts.FPRate,
		clock:        opts.Clock,
		logger:       opts.Logger,
		canonicalize: opts.Canonicalize,
	}
	if r.cache == nil {
		r.cache = noCache{}
	}
	if r.clock == nil {
		r.clock = clock.RealClock{}
	}
	if r.logger == nil {
		r.logger = log.GetLogger()
	}
	return r
}

// Decide returns the most specific match for address against the current set.
func (r *repository) Decide(address string) domain.Match {
	if r.canonicalize != nil {
		address = r.canonicalize(address)
	}

	// The read lock spans lookup and cache fill so that a concurrent UpdateAll
	// cannot purge the cache between computing and storing a stale decision.
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := r.current
	if snap == nil {
		return domain.NoMatch()
	}
	if d, ok := r.cache.Get(address); ok {
		return d
	}
	dec := snap.matcher.Decide(address)
	r.cache.Put(address, dec)
	if dec.Blocked {
		r.logger.Debug(map[string]any{
			"address": address,
			"pattern": dec.Pattern,
			"kind":    dec.Kind.String(),
		}, "address_blocked")
	}
	return dec
}

// UpdateAll validates digests, builds a fresh set and swaps it in atomically.
// On error the current set is kept.
func (r *repository) UpdateAll(digests []string, version uint64) error {
	for i, d := range digests {
		if n := domain.NormalizeDigest(d); !domain.IsDigest(n) {
			return fmt.Errorf("invalid digest at index %d: %q", i, d)
		}
	}

	set := NewSet(digests, r.factory, r.fpRate)
	snap := &snapshot{
		set:         set,
		matcher:     matcher.New(set),
		version:     version,
		updatedUnix: r.clock.Now().Unix(),
	}

	r.mu.Lock()
	r.current = snap
	r.cache.Purge()
	r.mu.Unlock()

	r.logger.Info(map[string]any{
		"version": version,
		"digests": set.Len(),
		"bloom":   set.HasBloom(),
	}, "blocklist_updated")
	return nil
}

// RepoStats returns cache counters and metadata of the current set.
func (r *repository) RepoStats() RepoStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st := RepoStats{Cache: r.cache.Stats()}
	if snap := r.current; snap != nil {
		st.Set = SetStats{
			Version:     snap.version,
			UpdatedUnix: snap.updatedUnix,
			Digests:     snap.set.Len(),
			Bloom:       snap.set.HasBloom(),
		}
	}
	return st
}

// noCache is used when no DecisionCache is configured.
type noCache struct{}

func (noCache) Get(string) (domain.Match, bool) { return domain.Match{}, false }
func (noCache) Put(string, domain.Match)        {}
func (noCache) Len() int                        { return 0 }
func (noCache) Purge()                          {}
func (noCache) Stats() CacheStats               { return CacheStats{} }
