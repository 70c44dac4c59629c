// Package random provides the sources of randomness that fabricators draw from.
//
// A [Source] is owned by the caller. Fabricators advance its position but never share it
// behind the caller's back: every fabricator receives the Source it uses at construction.
// None of the sources in this package are safe for concurrent use. Give each goroutine its
// own source, for example with [Rand.Fork].
//
// Use [New] for reproducible test runs, [NewUnseeded] when every run should differ, and
// [FromBytes] to drive fabricators from fuzzer input.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
)

// GetRandom returns a uniformly distributed uint64 read from system entropy.
func GetRandom() uint64 {
	var tmp [8]byte
	if _, err := crand.Read(tmp[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(tmp[:])
}

// Seed returns a fresh seed drawn from system entropy, suitable for [New].
func Seed() int64 {
	return int64(GetRandom())
}
