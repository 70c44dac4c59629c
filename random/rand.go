package random

import (
	"fmt"
	"math/rand"

	"github.com/google/gofuzz/bytesource"
)

// Source is the stream of randomness consumed by fabricators.
type Source interface {
	// Bool returns true or false with equal probability.
	Bool() bool
	// Range returns a uniform integer in the half-open interval [lo, hi).
	// It panics if hi <= lo.
	Range(lo, hi int64) int64
	// Uint64 returns a uniform 64-bit value.
	Uint64() uint64
	// Float64 returns a uniform float in [0.0, 1.0).
	Float64() float64
	// Bytes returns n uniformly random bytes.
	Bytes(n int) []byte
}

// Rand is the Source implementation used throughout fabrikate. It wraps a [math/rand.Rand].
type Rand struct {
	r *rand.Rand
}

// Assert that Rand implements Source.
var _ Source = (*Rand)(nil)

// New returns a deterministic source. Two sources created with the same seed produce the
// same sequence of values.
func New(seed int64) *Rand {
	return FromSource(rand.NewSource(seed))
}

// NewUnseeded returns a fresh source backed by system entropy.
func NewUnseeded() *Rand {
	return FromSource(Entropy())
}

// FromSource wraps an arbitrary math/rand source.
func FromSource(src rand.Source) *Rand {
	return &Rand{r: rand.New(src)}
}

// FromBytes returns a source that replays data, typically the input of a fuzz target. Once
// data is exhausted the source continues with a PRNG seeded from data, so the sequence stays
// a pure function of the input.
func FromBytes(data []byte) *Rand {
	return FromSource(bytesource.New(data))
}

// Fork returns an independent child source seeded from r. Forking is deterministic: forks of
// two equally seeded parents produce the same values.
func (r *Rand) Fork() *Rand {
	return New(r.r.Int63())
}

func (r *Rand) Bool() bool {
	return r.r.Uint64()>>63 == 1
}

func (r *Rand) Range(lo, hi int64) int64 {
	if hi <= lo {
		panic(fmt.Sprintf("random: empty range [%d, %d)", lo, hi))
	}
	if span := uint64(hi) - uint64(lo); span <= 1<<63-1 {
		return lo + r.r.Int63n(int64(span))
	}
	// the span does not fit in an int63, reject draws outside of it
	for {
		if v := int64(r.r.Uint64()); v >= lo && v < hi {
			return v
		}
	}
}

func (r *Rand) Uint64() uint64 {
	return r.r.Uint64()
}

func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	// math/rand.Rand.Read always fills b and never returns an error
	_, _ = r.r.Read(b)
	return b
}
