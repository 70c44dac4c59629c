package fabricator

import (
	"math"
	"math/big"
	"testing"

	"github.com/go-quicktest/qt"
	"pgregory.net/rapid"

	"github.com/antithesishq/fabrikate-go/random"
)

// sample fabricates one value from every fabricator, in a fixed order.
func sample(src random.Source) []any {
	return []any{
		NewBool(src).Fabricate(),
		NewInt(src).Fabricate(),
		NewInt32(src).Fabricate(),
		NewInt64(src).Fabricate(),
		NewUint64(src).Fabricate(),
		NewFloat32(src).Fabricate(),
		NewFloat64(src).Fabricate(),
		NewDefaultBigInt(src).Fabricate().String(),
		NewDefaultBigDecimal(src).Fabricate().String(),
		newDefaultString(src).Fabricate(),
		Must(NewChar(src)).Fabricate(),
		NewByte(src).Fabricate(),
		NewDefaultBytes(src).Fabricate(),
		NewInstant(src).Fabricate(),
		NewLocalDate(src).Fabricate(),
		NewLocalTime(src).Fabricate(),
		NewLocalDateTime(src).Fabricate(),
		NewYearMonth(src).Fabricate(),
		NewOffsetDateTime(src).Fabricate().String(),
		NewOffsetTime(src).Fabricate(),
		NewZonedDateTime(src).Fabricate().String(),
		NewDate(src).Fabricate().Unix(),
		NewDuration(src).Fabricate(),
		NewUUID(src).Fabricate(),
		NewURI(src).Fabricate().String(),
		NewURL(src).Fabricate().String(),
	}
}

func TestEveryFabricatorIsDeterministic(t *testing.T) {
	first := sample(random.New(2024))
	for i := 0; i < 5; i++ {
		qt.Assert(t, qt.DeepEquals(sample(random.New(2024)), first))
	}
}

func TestBoolThenFixedLengthStringReplays(t *testing.T) {
	const seed = 987654321
	run := func() (bool, string) {
		src := random.New(seed)
		b := NewBool(src).Fabricate()
		s := Must(NewString(src, WithLength(3, 3))).Fabricate()
		return b, s
	}

	b, s := run()
	qt.Assert(t, qt.HasLen(s, 3))
	for i := 0; i < 10; i++ {
		b2, s2 := run()
		qt.Assert(t, qt.Equals(b2, b))
		qt.Assert(t, qt.Equals(s2, s))
	}
}

func TestBoolProducesBothValues(t *testing.T) {
	f := NewBool(random.New(5))
	seen := map[bool]int{}
	for i := 0; i < 100; i++ {
		seen[f.Fabricate()]++
	}
	qt.Assert(t, qt.HasLen(seen, 2))
}

func TestFloatsStayInUnitInterval(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src := random.New(rapid.Int64().Draw(t, "seed"))
		f32, f64 := NewFloat32(src), NewFloat64(src)
		for i := 0; i < 100; i++ {
			if v := f32.Fabricate(); v < 0 || v >= 1 {
				t.Fatalf("float32 %v outside [0, 1)", v)
			}
			if v := f64.Fabricate(); v < 0 || v >= 1 {
				t.Fatalf("float64 %v outside [0, 1)", v)
			}
		}
	})
}

func TestIntegersCoverNegativeValues(t *testing.T) {
	src := random.New(8)
	i32, i64 := NewInt32(src), NewInt64(src)
	var neg32, neg64 bool
	for i := 0; i < 100; i++ {
		neg32 = neg32 || i32.Fabricate() < 0
		neg64 = neg64 || i64.Fabricate() < 0
	}
	qt.Assert(t, qt.IsTrue(neg32))
	qt.Assert(t, qt.IsTrue(neg64))
}

func TestBigIntStaysBelowBitBound(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bits := rapid.IntRange(0, 200).Draw(t, "bits")
		f, err := NewBigInt(random.New(rapid.Int64().Draw(t, "seed")), bits)
		if err != nil {
			t.Fatalf("NewBigInt(%d): %v", bits, err)
		}
		bound := new(big.Int).Lsh(big.NewInt(1), uint(bits))
		for i := 0; i < 20; i++ {
			v := f.Fabricate()
			if v.Sign() < 0 || v.Cmp(bound) >= 0 {
				t.Fatalf("%v outside [0, 2^%d)", v, bits)
			}
		}
	})
}

func TestBigDecimalIsIntegral(t *testing.T) {
	f := Must(NewBigDecimal(random.New(3), 64))
	for i := 0; i < 20; i++ {
		d := f.Fabricate()
		qt.Assert(t, qt.Equals(d.Exponent(), int32(0)))
		qt.Assert(t, qt.IsTrue(d.IsInteger()))
		qt.Assert(t, qt.IsFalse(d.IsNegative()))
	}
}

func TestBigNumbersRejectNegativeSize(t *testing.T) {
	_, err := NewBigInt(random.New(1), -1)
	qt.Assert(t, qt.ErrorIs(err, ErrInvalidConfiguration))
	_, err = NewBigDecimal(random.New(1), -8)
	qt.Assert(t, qt.ErrorIs(err, ErrInvalidConfiguration))
	_, err = NewBigInt(random.New(1), math.MaxInt)
	qt.Assert(t, qt.ErrorIs(err, ErrInvalidConfiguration))
}

func TestMustPanicsOnError(t *testing.T) {
	qt.Assert(t, qt.PanicMatches(func() {
		Must(NewBytes(random.New(1), -1))
	}, `negative byte sequence size -1: invalid fabricator configuration`))
}
