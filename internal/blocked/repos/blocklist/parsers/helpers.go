package parsers

import (
	"strings"

	"github.com/haukened/blocked/internal/blocked/domain"
)

// stripLine removes a leading BOM, inline '#' comments and surrounding
// whitespace. It returns "" for blank and comment-only lines.
func stripLine(line string) string {
	line = strings.TrimPrefix(line, "\uFEFF")
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}

// normalizeToken lowercases a digest token and reports whether the result is
// a well-formed hex SHA-1 digest.
func normalizeToken(tok string) (string, bool) {
	d := domain.NormalizeDigest(tok)
	return d, domain.IsDigest(d)
}
