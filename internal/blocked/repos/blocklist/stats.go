package blocklist

// CacheStats reports lightweight cache metrics.
// All fields are best-effort snapshots and may be updated concurrently.
type CacheStats struct {
	Capacity  int    // configured capacity (0 for disabled cache)
	Size      int    // current number of entries
	Hits      uint64 // total cache hits since construction
	Misses    uint64 // total cache misses since construction
	Evictions uint64 // total evictions since construction
}

// SetStats reports metadata of the hash set currently in use.
type SetStats struct {
	Version     uint64 // caller supplied version (0 before the first update)
	UpdatedUnix int64  // unix time of the last update (0 before the first update)
	Digests     int    // number of distinct digests
	Bloom       bool   // whether a Bloom prefilter is attached
}

// RepoStats exposes repository-level counters.
type RepoStats struct {
	Cache CacheStats
	Set   SetStats
}
