package domain

import (
	"iter"
	"strconv"
	"strings"
)

// Candidate is a pattern derived from a query address together with the
// generalization that produced it.
type Candidate struct {
	Pattern string
	Kind    PatternKind
}

// SplitAddress splits an address into its dot-delimited parts.
// The empty address yields a single empty part.
func SplitAddress(address string) []string {
	return strings.Split(address, ".")
}

// IsIPv4 reports whether parts look like a dotted IPv4 address: exactly four
// parts, each a decimal unsigned 8-bit integer.
//
// Leading zeros are accepted, and a hostname made of four numeric labels no
// greater than 255 is classified as IPv4.
func IsIPv4(parts []string) bool {
	if len(parts) != 4 {
		return false
	}
	for _, p := range parts {
		if _, err := strconv.ParseUint(p, 10, 8); err != nil {
			return false
		}
	}
	return true
}

// Candidates returns the patterns to test for address, most specific first:
// the address itself, then for IPv4 "a.b.c.*", "a.b.*", "a.*", and for
// hostnames "*.b.c", "*.c". A bare "*" is never produced.
//
// The sequence is computed lazily and can be iterated any number of times.
func Candidates(address string) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		if !yield(Candidate{Pattern: address, Kind: PatternExact}) {
			return
		}
		parts := SplitAddress(address)
		if IsIPv4(parts) {
			for i := len(parts) - 1; i >= 1; i-- {
				if !yield(Candidate{Pattern: strings.Join(parts[:i], ".") + ".*", Kind: PatternIPv4Prefix}) {
					return
				}
			}
			return
		}
		for i := 1; i < len(parts); i++ {
			if !yield(Candidate{Pattern: "*." + strings.Join(parts[i:], "."), Kind: PatternHostSuffix}) {
				return
			}
		}
	}
}

// CandidatePatterns materializes Candidates(address) as pattern strings.
func CandidatePatterns(address string) []string {
	var out []string
	for c := range Candidates(address) {
		out = append(out, c.Pattern)
	}
	return out
}
