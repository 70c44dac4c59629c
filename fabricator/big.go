package fabricator

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/antithesishq/fabrikate-go/random"
)

// DefaultBigIntBits is the magnitude bound used by NewDefaultBigInt.
const DefaultBigIntBits = 10

// BigInt fabricates a non-negative integer uniform in [0, 2^bits).
type BigInt struct {
	src  random.Source
	bits int
}

// NewBigInt returns a BigInt fabricator for values of at most bits bits.
func NewBigInt(src random.Source, bits int) (*BigInt, error) {
	if bits < 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "negative bit size %d", bits)
	}
	if bits > SizeLimit {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "bit size %d above limit %d", bits, SizeLimit)
	}
	return &BigInt{src: src, bits: bits}, nil
}

func NewDefaultBigInt(src random.Source) *BigInt {
	return &BigInt{src: src, bits: DefaultBigIntBits}
}

func (f *BigInt) Fabricate() *big.Int {
	buf := f.src.Bytes((f.bits + 7) / 8)
	if extra := f.bits % 8; extra != 0 {
		buf[0] &= byte(1<<extra) - 1
	}
	return new(big.Int).SetBytes(buf)
}

// BigDecimal fabricates an integral decimal from a BigInt draw.
type BigDecimal struct {
	ints *BigInt
}

// NewBigDecimal returns a BigDecimal fabricator whose unscaled value has at most bits bits.
func NewBigDecimal(src random.Source, bits int) (*BigDecimal, error) {
	ints, err := NewBigInt(src, bits)
	if err != nil {
		return nil, err
	}
	return &BigDecimal{ints: ints}, nil
}

func NewDefaultBigDecimal(src random.Source) *BigDecimal {
	return &BigDecimal{ints: NewDefaultBigInt(src)}
}

func (f *BigDecimal) Fabricate() decimal.Decimal {
	return decimal.NewFromBigInt(f.ints.Fabricate(), 0)
}
