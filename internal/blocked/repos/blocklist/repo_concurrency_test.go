package blocklist_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/blocked/internal/blocked/common/log"
	"github.com/haukened/blocked/internal/blocked/domain"
	"github.com/haukened/blocked/internal/blocked/repos/blocklist"
	"github.com/haukened/blocked/internal/blocked/repos/blocklist/bloom"
	"github.com/haukened/blocked/internal/blocked/repos/blocklist/lru"
)

func TestRepository_ConcurrentDecideAndUpdateAll(t *testing.T) {
	const (
		readers = 4
		swaps   = 500
	)
	cache, err := lru.New(64)
	require.NoError(t, err)
	repo := blocklist.NewRepository(blocklist.Options{
		Cache:   cache,
		Factory: bloom.NewFactory(),
		FPRate:  0.01,
		Logger:  log.NewNoopLogger(),
	})

	lists := [2][]string{
		{domain.Digest("*.a.test")},
		{domain.Digest("*.b.test")},
	}
	addresses := [2]string{"x.a.test", "x.b.test"}
	require.NoError(t, repo.UpdateAll(lists[0], 0))

	done := make(chan struct{})
	var wg sync.WaitGroup
	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				for _, a := range addresses {
					m := repo.Decide(a)
					if m.Blocked != (m.Pattern != "") {
						t.Errorf("inconsistent decision for %s: %+v", a, m)
						return
					}
				}
			}
		}()
	}

	stale := 0
	for i := 1; i <= swaps; i++ {
		cur := i % 2
		require.NoError(t, repo.UpdateAll(lists[cur], uint64(i)))
		if !repo.Decide(addresses[cur]).Blocked || repo.Decide(addresses[1-cur]).Blocked {
			stale++
		}
	}
	close(done)
	wg.Wait()

	assert.Zero(t, stale, "decisions after a swap must reflect the new list")
	assert.Equal(t, uint64(swaps), repo.RepoStats().Set.Version)
}
