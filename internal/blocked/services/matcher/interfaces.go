package matcher

// HashSet is the read-only view of the blocklist the matcher needs: membership
// of a normalized (lowercase hex) SHA-1 digest.
//
// Implementations must not change while queries are in flight. Replace the
// whole set on refresh instead.
type HashSet interface {
	Contains(digest string) bool
}

// HashSetFunc adapts a function to HashSet.
type HashSetFunc func(digest string) bool

// Contains calls f(digest).
func (f HashSetFunc) Contains(digest string) bool { return f(digest) }
