package parsers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/blocked/internal/blocked/common/log"
)

func TestParseHashList_Basics(t *testing.T) {
	input := "\uFEFF8c7122d652cb7be22d1986f1f30b07fd5108d9c0\r\n" +
		"# comment at top\n" +
		"8C15FB642B3E8F58480DF51798382F1016E748EB   # 192.0.*\n" +
		"\n" +
		"   4b84b15bff6ee5796152495a230e45e3d7e947d9\n" +
		"not-a-digest\n" +
		"8c7122d652cb7be22d1986f1f30b07fd5108d9c0\n"

	got, err := ParseHashList(strings.NewReader(input), "test-source", log.NewNoopLogger())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"8c7122d652cb7be22d1986f1f30b07fd5108d9c0",
		"8c15fb642b3e8f58480df51798382f1016e748eb",
		"4b84b15bff6ee5796152495a230e45e3d7e947d9",
	}, got)
}

func TestParseHashList_EmptyAndCommentsOnly(t *testing.T) {
	got, err := ParseHashList(strings.NewReader("\n# only comments\n   # another\n\n"), "s", log.NewNoopLogger())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestParseHashList_ScannerError(t *testing.T) {
	// a line longer than bufio.Scanner's default max token size (~64K)
	big := bytes.Repeat([]byte{'a'}, 70000)

	got, err := ParseHashList(bytes.NewReader(big), "src", log.NewNoopLogger())
	require.Error(t, err)
	assert.Nil(t, got)
}
