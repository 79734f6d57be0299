package domain

import (
	"crypto/sha1" //nolint:gosec // the published list is keyed by SHA-1
	"encoding/hex"
	"strings"
)

// DigestHexLen is the length of a hex-encoded SHA-1 digest.
const DigestHexLen = sha1.Size * 2

// Digest returns the lowercase hex SHA-1 of the UTF-8 bytes of pattern.
// This is the form in which patterns appear on the blocklist.
func Digest(pattern string) string {
	sum := sha1.Sum([]byte(pattern)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}

// NormalizeDigest trims and lowercases a digest so that it compares equal to
// the output of Digest.
func NormalizeDigest(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsDigest reports whether s is a normalized hex SHA-1 digest.
func IsDigest(s string) bool {
	if len(s) != DigestHexLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
