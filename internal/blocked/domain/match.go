package domain

// Match represents the outcome of evaluating an address against the blocklist.
// Pure value type, no external dependencies.
type Match struct {
	Blocked bool        // true if any candidate of the address is listed
	Pattern string      // most specific listed candidate, empty when not blocked
	Kind    PatternKind // generalization that produced Pattern
}

// IsBlocked is a convenience accessor.
func (m Match) IsBlocked() bool { return m.Blocked }

// NoMatch returns a not-blocked result.
func NoMatch() Match { return Match{Blocked: false} }

// Matched returns a blocked result for the given candidate.
func Matched(c Candidate) Match {
	return Match{Blocked: true, Pattern: c.Pattern, Kind: c.Kind}
}
