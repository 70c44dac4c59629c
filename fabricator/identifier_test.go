package fabricator

import (
	"encoding/binary"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/uuid"

	"github.com/antithesishq/fabrikate-go/random"
)

func TestUUIDHalvesAreIndependentDraws(t *testing.T) {
	src := random.New(99)
	msb, lsb := src.Uint64(), src.Uint64()

	id := NewUUID(random.New(99)).Fabricate()
	qt.Assert(t, qt.Equals(binary.BigEndian.Uint64(id[:8]), msb))
	qt.Assert(t, qt.Equals(binary.BigEndian.Uint64(id[8:]), lsb))
}

// The default fabricator does not stamp version or variant bits: the output is random
// 128-bit data shaped as a UUID, not an RFC 4122 version 4 UUID.
func TestUUIDDoesNotForceVersionBits(t *testing.T) {
	f := NewUUID(random.New(100))
	versions := map[uuid.Version]bool{}
	variants := map[uuid.Variant]bool{}
	for i := 0; i < 200; i++ {
		id := f.Fabricate()
		versions[id.Version()] = true
		variants[id.Variant()] = true
	}
	qt.Assert(t, qt.IsTrue(len(versions) > 1))
	qt.Assert(t, qt.IsTrue(len(variants) > 1))
}

func TestUUIDVersion4(t *testing.T) {
	f := NewUUID(random.New(100), WithVersion4())
	for i := 0; i < 200; i++ {
		id := f.Fabricate()
		qt.Assert(t, qt.Equals(id.Version(), uuid.Version(4)))
		qt.Assert(t, qt.Equals(id.Variant(), uuid.RFC4122))
		parsed, err := uuid.Parse(id.String())
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(parsed, id))
	}
}
