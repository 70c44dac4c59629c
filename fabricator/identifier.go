package fabricator

import (
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/antithesishq/fabrikate-go/random"
)

// UUID fabricates 128 random bits shaped as a UUID: the most significant half and the least
// significant half are two independent 64-bit draws. By default no version or variant bits
// are set, so the result is generally not an RFC 4122 UUID. Use WithVersion4 to stamp them.
type UUID struct {
	src      random.Source
	version4 bool
}

type UUIDOption func(*UUID)

// WithVersion4 sets the RFC 4122 version 4 and variant bits on every fabricated UUID.
func WithVersion4() UUIDOption {
	return func(u *UUID) {
		u.version4 = true
	}
}

func NewUUID(src random.Source, opts ...UUIDOption) *UUID {
	u := &UUID{src: src}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (f *UUID) Fabricate() uuid.UUID {
	var id uuid.UUID
	binary.BigEndian.PutUint64(id[:8], f.src.Uint64())
	binary.BigEndian.PutUint64(id[8:], f.src.Uint64())
	if f.version4 {
		id[6] = (id[6] & 0x0f) | 0x40
		id[8] = (id[8] & 0x3f) | 0x80
	}
	return id
}
