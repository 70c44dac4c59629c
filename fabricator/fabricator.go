// Package fabricator holds the generator set: one Fabricator per primitive or common value
// type, each producing a plausible random instance on every call.
//
// Fabricators are immutable after construction. They draw from the [random.Source] passed to
// their constructor and never from hidden global state, so a fabricator built on a seeded
// source produces the same sequence of values on every run. Derived fabricators (temporal,
// URI, URL, BigDecimal, File) hold a simpler fabricator and transform its output.
//
// Constructors that take shape parameters validate them and fail with an error wrapping
// [ErrInvalidConfiguration]. Once constructed, Fabricate never fails.
package fabricator

import (
	"errors"
)

// ErrInvalidConfiguration is returned at construction time when a range is empty or
// inverted, or a character pool is empty.
var ErrInvalidConfiguration = errors.New("invalid fabricator configuration")

// SizeLimit is the largest length, size or bit count a fabricator accepts.
const SizeLimit = 1 << 30

// Fabricator produces a random value of type T on each call.
type Fabricator[T any] interface {
	Fabricate() T
}

// Func adapts a plain function to the Fabricator interface.
type Func[T any] func() T

func (f Func[T]) Fabricate() T {
	return f()
}

// Must panics if err is non-nil and returns fab otherwise. It is meant for fixture setup
// where the parameters are constants.
func Must[F any](fab F, err error) F {
	if err != nil {
		panic(err)
	}
	return fab
}
