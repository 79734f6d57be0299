package matcher

import "github.com/haukened/blocked/internal/blocked/domain"

// Matcher finds the most specific blocklisted pattern for an address.
//
// A Matcher holds no mutable state. Any number of goroutines may query the same
// Matcher as long as the underlying HashSet is not mutated.
type Matcher struct {
	set HashSet
}

// New returns a Matcher over set. A nil set blocks nothing.
func New(set HashSet) *Matcher {
	return &Matcher{set: set}
}

// IsPatternBlocked reports whether the digest of pattern is on the list.
func (m *Matcher) IsPatternBlocked(pattern string) bool {
	if m.set == nil {
		return false
	}
	return m.set.Contains(domain.Digest(pattern))
}

// FindBlockedPattern returns the first listed candidate of address, testing the
// address itself before any generalization. The boolean is false when no
// candidate is listed.
func (m *Matcher) FindBlockedPattern(address string) (string, bool) {
	res := m.Decide(address)
	return res.Pattern, res.Blocked
}

// IsBlocked reports whether FindBlockedPattern finds a match.
func (m *Matcher) IsBlocked(address string) bool {
	_, ok := m.FindBlockedPattern(address)
	return ok
}

// Decide evaluates address and reports which generalization matched.
func (m *Matcher) Decide(address string) domain.Match {
	for c := range domain.Candidates(address) {
		if m.IsPatternBlocked(c.Pattern) {
			return domain.Matched(c)
		}
	}
	return domain.NoMatch()
}
