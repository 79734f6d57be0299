package parsers

import (
	"bufio"
	"io"

	logpkg "github.com/haukened/blocked/internal/blocked/common/log"
)

// ParseHashList parses a newline-delimited list of hex SHA-1 digests, the
// format in which the blocked server list is published.
//
// Behavior:
// - Supports comments starting with '#' (inline or whole-line)
// - Trims surrounding whitespace and a leading BOM
// - Lowercases digests so they compare equal to computed ones
// - Skips tokens that are not 40 hex characters
// - De-duplicates while preserving first-seen order
func ParseHashList(r io.Reader, source string, logger logpkg.Logger) ([]string, error) {
	scanner := bufio.NewScanner(r)

	seen := make(map[string]struct{})
	out := make([]string, 0, 256)
	logger.Debug(map[string]any{"source": source}, "parse_hash_list_start")
	lineNum := 0
	skipped := 0
	for scanner.Scan() {
		lineNum++
		tok := stripLine(scanner.Text())
		if tok == "" {
			continue
		}

		d, ok := normalizeToken(tok)
		if !ok {
			skipped++
			logger.Debug(map[string]any{"source": source, "line": lineNum, "raw": tok}, "skip_invalid_digest")
			continue
		}
		if _, dup := seen[d]; dup {
			logger.Debug(map[string]any{"source": source, "line": lineNum, "digest": d}, "skip_duplicate")
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}

	if err := scanner.Err(); err != nil {
		logger.Debug(map[string]any{"source": source, "error": err.Error()}, "parse_hash_list_scan_error")
		return nil, err
	}
	if skipped > 0 {
		logger.Warn(map[string]any{"source": source, "skipped": skipped}, "invalid digests skipped")
	}
	logger.Debug(map[string]any{"source": source, "count": len(out)}, "parse_hash_list_done")
	return out, nil
}
