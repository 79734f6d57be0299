package matcher

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/haukened/blocked/internal/blocked/domain"
)

// mapSet is a minimal HashSet for tests.
type mapSet map[string]struct{}

func (s mapSet) Contains(d string) bool {
	_, ok := s[d]
	return ok
}

func setOf(patterns ...string) mapSet {
	s := make(mapSet, len(patterns))
	for _, p := range patterns {
		s[domain.Digest(p)] = struct{}{}
	}
	return s
}

// MockSet records membership queries.
type MockSet struct {
	mock.Mock
}

func (m *MockSet) Contains(digest string) bool {
	args := m.Called(digest)
	return args.Bool(0)
}

// worked example list: *.example.com, 192.0.*, 127.0.0.1
func exampleSet() mapSet {
	return mapSet{
		"8c7122d652cb7be22d1986f1f30b07fd5108d9c0": {},
		"8c15fb642b3e8f58480df51798382f1016e748eb": {},
		"4b84b15bff6ee5796152495a230e45e3d7e947d9": {},
	}
}

func TestMatcher_WorkedExample(t *testing.T) {
	m := New(exampleSet())

	assert.True(t, m.IsBlocked("127.0.0.1"))

	p, ok := m.FindBlockedPattern("mc.example.com")
	require.True(t, ok)
	assert.Equal(t, "*.example.com", p)

	p, ok = m.FindBlockedPattern("192.0.2.235")
	require.True(t, ok)
	assert.Equal(t, "192.0.*", p)

	p, ok = m.FindBlockedPattern("127.0.0.1")
	require.True(t, ok)
	assert.Equal(t, "127.0.0.1", p)

	p, ok = m.FindBlockedPattern("127.0.0.2")
	assert.False(t, ok)
	assert.Empty(t, p)
}

func TestMatcher_IsPatternBlocked(t *testing.T) {
	m := New(exampleSet())
	assert.True(t, m.IsPatternBlocked("*.example.com"))
	assert.False(t, m.IsPatternBlocked("example.com"))
	assert.False(t, m.IsPatternBlocked("*.EXAMPLE.com"), "digests are case sensitive on the pattern bytes")
}

func TestMatcher_ExactMatchWins(t *testing.T) {
	m := New(setOf("mc.example.com", "*.example.com", "*.com"))
	p, ok := m.FindBlockedPattern("mc.example.com")
	require.True(t, ok)
	assert.Equal(t, "mc.example.com", p)
}

func TestMatcher_SpecificityOrdering(t *testing.T) {
	m := New(setOf("*.example.com", "*.com"))
	res := m.Decide("mc.example.com")
	assert.Equal(t, domain.Match{Blocked: true, Pattern: "*.example.com", Kind: domain.PatternHostSuffix}, res)

	m = New(setOf("192.0.2.*", "192.*"))
	res = m.Decide("192.0.2.235")
	assert.Equal(t, domain.Match{Blocked: true, Pattern: "192.0.2.*", Kind: domain.PatternIPv4Prefix}, res)
}

func TestMatcher_Negative(t *testing.T) {
	m := New(setOf("*.example.com"))
	_, ok := m.FindBlockedPattern("mc.example.org")
	assert.False(t, ok)
	assert.False(t, m.IsBlocked("mc.example.org"))
	assert.Equal(t, domain.NoMatch(), m.Decide("mc.example.org"))
}

func TestMatcher_GeneralizationDirection(t *testing.T) {
	tests := []struct {
		name    string
		listed  []string
		address string
		want    string
		wantOK  bool
	}{
		{"ipv4 never uses host suffixes", []string{"*.2.235"}, "192.0.2.235", "", false},
		{"host never uses ipv4 prefixes", []string{"mc.*"}, "mc.example.com", "", false},
		{"bare wildcard never tried for ipv4", []string{"*"}, "192.0.2.235", "", false},
		{"out of range octet falls back to host rules", []string{"*.0.0.1"}, "256.0.0.1", "*.0.0.1", true},
		{"numeric hostname treated as ipv4", []string{"1.2.*"}, "1.2.3.4", "1.2.*", true},
		{"single label only exact", []string{"*.localhost"}, "localhost", "", false},
		{"single label exact hit", []string{"localhost"}, "localhost", "localhost", true},
		{"empty address miss", []string{"*."}, "", "", false},
		{"empty address listed", []string{""}, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(setOf(tt.listed...))
			got, ok := m.FindBlockedPattern(tt.address)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, ok, m.IsBlocked(tt.address))
		})
	}
}

func TestMatcher_ShortCircuits(t *testing.T) {
	set := new(MockSet)
	set.On("Contains", domain.Digest("mc.example.com")).Return(false).Once()
	set.On("Contains", domain.Digest("*.example.com")).Return(true).Once()

	m := New(set)
	p, ok := m.FindBlockedPattern("mc.example.com")
	require.True(t, ok)
	assert.Equal(t, "*.example.com", p)

	set.AssertExpectations(t)
	set.AssertNotCalled(t, "Contains", domain.Digest("*.com"))
}

func TestMatcher_TriesEveryCandidateOnMiss(t *testing.T) {
	set := new(MockSet)
	set.On("Contains", mock.Anything).Return(false)

	m := New(set)
	_, ok := m.FindBlockedPattern("192.0.2.235")
	require.False(t, ok)
	set.AssertNumberOfCalls(t, "Contains", 4)
}

func TestMatcher_NilSet(t *testing.T) {
	m := New(nil)
	assert.False(t, m.IsBlocked("127.0.0.1"))
	assert.False(t, m.IsPatternBlocked("127.0.0.1"))
}

func TestMatcher_HashSetFunc(t *testing.T) {
	listed := domain.Digest("*.example.com")
	m := New(HashSetFunc(func(d string) bool { return d == listed }))
	assert.True(t, m.IsBlocked("a.b.example.com"))
}

func TestMatcher_Idempotent(t *testing.T) {
	m := New(exampleSet())
	for _, addr := range []string{"mc.example.com", "192.0.2.235", "127.0.0.2", ""} {
		first := m.Decide(addr)
		second := m.Decide(addr)
		assert.Equal(t, first, second, addr)
	}
}

func TestMatcher_ConcurrentQueries(t *testing.T) {
	m := New(exampleSet())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if p, ok := m.FindBlockedPattern("mc.example.com"); !ok || p != "*.example.com" {
					t.Errorf("unexpected result %q %v", p, ok)
					return
				}
			}
		}()
	}
	wg.Wait()
}
