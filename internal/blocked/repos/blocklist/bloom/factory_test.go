package bloom

import (
	"testing"

	"github.com/haukened/blocked/internal/blocked/domain"
)

func TestFactory_New_Basic(t *testing.T) {
	bf := NewFactory().New(128, 0.01)
	if bf == nil {
		t.Fatalf("expected non-nil bloom filter")
	}
	d := domain.Digest("*.example.com")
	if bf.MightContain(d) {
		t.Fatalf("unexpected positive before add")
	}
	bf.Add(d)
	if !bf.MightContain(d) {
		t.Fatalf("expected maybe after add")
	}
}

func TestFactory_New_Defaults(t *testing.T) {
	// capacity=0 and invalid fp fall back to sizer defaults; filter still usable
	bf := NewFactory().New(0, 0)
	d := domain.Digest("127.0.0.1")
	bf.Add(d)
	if !bf.MightContain(d) {
		t.Fatalf("expected maybe after add with default-sized bloom")
	}
}

func TestFactory_New_ExtremeRate(t *testing.T) {
	bf := NewFactory().New(100, 1e-100)
	d := domain.Digest("192.0.*")
	bf.Add(d)
	if !bf.MightContain(d) {
		t.Fatalf("expected maybe after add")
	}
	if bf.MightContain(domain.Digest("192.1.*")) {
		t.Fatalf("unexpected positive at a near-zero rate")
	}
}
