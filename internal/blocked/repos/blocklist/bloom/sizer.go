package bloom

import (
	bitsbloom "github.com/bits-and-blooms/bloom/v3"

	"github.com/haukened/blocked/internal/blocked/repos/blocklist"
)

// defaultFPRate is used when the requested rate is outside (0, 1).
const defaultFPRate = 0.01

// sizer implements blocklist.BloomSizer with the bits-and-blooms estimator.
// An empty list is sized as a single entry.
type sizer struct{}

// NewSizer returns a BloomSizer implementation.
func NewSizer() blocklist.BloomSizer { return sizer{} }

func (sizer) Size(n uint64, p float64) (uint64, uint) {
	if n == 0 {
		n = 1
	}
	if !(p > 0 && p < 1) {
		p = defaultFPRate
	}
	m, k := bitsbloom.EstimateParameters(uint(n), p)
	return uint64(max(m, 1)), max(k, 1)
}
