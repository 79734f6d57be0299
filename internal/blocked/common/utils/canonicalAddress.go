package utils

import (
	"strings"

	"golang.org/x/net/idna"
)

// CanonicalAddress returns an address in the form a client would connect to:
// - Trimmed of surrounding whitespace and trailing dots
// - Internationalized labels converted to ASCII (punycode)
// - Lowercased
//
// Inputs IDNA rejects, such as labels containing '_', are only lowercased.
func CanonicalAddress(address string) string {
	address = strings.TrimSpace(address)
	for strings.HasSuffix(address, ".") {
		address = strings.TrimSuffix(address, ".")
	}
	ascii, err := idna.Lookup.ToASCII(address)
	if err != nil {
		return strings.ToLower(address)
	}
	return strings.ToLower(ascii)
}
