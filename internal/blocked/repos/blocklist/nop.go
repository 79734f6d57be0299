package blocklist

import "github.com/haukened/blocked/internal/blocked/domain"

// NoopBlocklist allows every address. It is used when no list is configured.
type NoopBlocklist struct{}

func (n *NoopBlocklist) Decide(string) domain.Match {
	// Noop implementation, never blocks
	return domain.NoMatch()
}

func (n *NoopBlocklist) UpdateAll([]string, uint64) error { return nil }

func (n *NoopBlocklist) RepoStats() RepoStats { return RepoStats{} }

var _ Repository = (*NoopBlocklist)(nil)
