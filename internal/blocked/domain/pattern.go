package domain

import (
	"fmt"
	"strings"
)

// PatternKind describes which generalization of an address produced a candidate.
//
// exact       - the address verbatim
// ipv4_prefix - leading octets followed by ".*", e.g. "192.0.*"
// host_suffix - "*." followed by trailing labels, e.g. "*.example.com"
type PatternKind uint8

const (
	// PatternExact is the verbatim address.
	PatternExact PatternKind = iota
	// PatternIPv4Prefix drops trailing octets of an IPv4 address.
	PatternIPv4Prefix
	// PatternHostSuffix drops leading labels of a hostname.
	PatternHostSuffix
)

// String returns a stable string representation of the pattern kind.
func (k PatternKind) String() string {
	switch k {
	case PatternExact:
		return "exact"
	case PatternIPv4Prefix:
		return "ipv4_prefix"
	case PatternHostSuffix:
		return "host_suffix"
	default:
		return fmt.Sprintf("PatternKind(%d)", k)
	}
}

// ParsePatternKind converts a string into a PatternKind.
// Accepts: "exact", "ipv4_prefix", "host_suffix" (case-insensitive).
func ParsePatternKind(s string) (PatternKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return PatternExact, nil
	case "ipv4_prefix":
		return PatternIPv4Prefix, nil
	case "host_suffix":
		return PatternHostSuffix, nil
	default:
		return 0, fmt.Errorf("unsupported PatternKind: %q", s)
	}
}

// KindOf infers the kind of a pattern string from its wildcard position.
// It does not validate the rest of the pattern.
func KindOf(pattern string) PatternKind {
	switch {
	case strings.HasPrefix(pattern, "*."):
		return PatternHostSuffix
	case strings.HasSuffix(pattern, ".*"):
		return PatternIPv4Prefix
	default:
		return PatternExact
	}
}
