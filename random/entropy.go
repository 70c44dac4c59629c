package random

import (
	"math"
	"math/rand"
)

type entropy struct{}

// Assert that entropy implements rand.Source64.
var _ rand.Source64 = entropy{}

func (entropy) Seed(int64) {}

func (entropy) Int63() int64 {
	return int64(GetRandom() & (math.MaxUint64 >> 1))
}

func (entropy) Uint64() uint64 {
	return GetRandom()
}

// Entropy returns a [math/rand.Source64] backed by system entropy. Seeding it has no effect.
func Entropy() rand.Source {
	return entropy{}
}
