package bloom

import (
	"encoding/hex"

	bitsbloom "github.com/bits-and-blooms/bloom/v3"
)

// digestLen is the byte length of a SHA-1 digest.
const digestLen = 20

// filter keys a bits-and-blooms filter on the raw digest bytes. Entries that
// are not 40-character hex fall back to their string bytes.
//
// The underlying filter is only read once built, so concurrent MightContain
// calls need no lock.
type filter struct {
	bf *bitsbloom.BloomFilter
}

func (f *filter) Add(digest string) {
	var buf [digestLen]byte
	f.bf.Add(key(&buf, digest))
}

func (f *filter) MightContain(digest string) bool {
	var buf [digestLen]byte
	return f.bf.Test(key(&buf, digest))
}

// key decodes digest into buf, or returns its bytes unchanged when it is not
// a hex digest.
func key(buf *[digestLen]byte, digest string) []byte {
	if len(digest) == 2*digestLen {
		if _, err := hex.Decode(buf[:], []byte(digest)); err == nil {
			return buf[:]
		}
	}
	return []byte(digest)
}
