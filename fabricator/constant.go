package fabricator

// Constant always returns the value it was built with. It is the fallback for types with no
// natural randomization.
type Constant[T any] struct {
	value T
}

func NewConstant[T any](value T) *Constant[T] {
	return &Constant[T]{value: value}
}

func (f *Constant[T]) Fabricate() T {
	return f.value
}

// NewAny returns the fabricator used for untyped values.
func NewAny() *Constant[any] {
	return NewConstant[any]("anything")
}
