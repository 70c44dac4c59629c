package fabricator

import (
	"github.com/antithesishq/fabrikate-go/random"
)

// Bool fabricates true or false with equal probability.
type Bool struct {
	src random.Source
}

func NewBool(src random.Source) *Bool {
	return &Bool{src: src}
}

func (f *Bool) Fabricate() bool {
	return f.src.Bool()
}

// Int fabricates an int uniformly over its full range.
type Int struct {
	src random.Source
}

func NewInt(src random.Source) *Int {
	return &Int{src: src}
}

func (f *Int) Fabricate() int {
	return int(f.src.Uint64())
}

// Int32 fabricates an int32 uniformly over its full range.
type Int32 struct {
	src random.Source
}

func NewInt32(src random.Source) *Int32 {
	return &Int32{src: src}
}

func (f *Int32) Fabricate() int32 {
	return int32(f.src.Uint64())
}

// Int64 fabricates an int64 uniformly over its full range.
type Int64 struct {
	src random.Source
}

func NewInt64(src random.Source) *Int64 {
	return &Int64{src: src}
}

func (f *Int64) Fabricate() int64 {
	return int64(f.src.Uint64())
}

// Uint64 fabricates a uint64 uniformly over its full range.
type Uint64 struct {
	src random.Source
}

func NewUint64(src random.Source) *Uint64 {
	return &Uint64{src: src}
}

func (f *Uint64) Fabricate() uint64 {
	return f.src.Uint64()
}

// Float32 fabricates a float32 in [0.0, 1.0).
type Float32 struct {
	src random.Source
}

func NewFloat32(src random.Source) *Float32 {
	return &Float32{src: src}
}

func (f *Float32) Fabricate() float32 {
	// 24 bits fill the float32 mantissa exactly, so the result can never round up to 1.0
	return float32(f.src.Uint64()>>40) / (1 << 24)
}

// Float64 fabricates a float64 in [0.0, 1.0).
type Float64 struct {
	src random.Source
}

func NewFloat64(src random.Source) *Float64 {
	return &Float64{src: src}
}

func (f *Float64) Fabricate() float64 {
	return f.src.Float64()
}
