package fabricator

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/antithesishq/fabrikate-go/random"
)

const (
	// AlphaNumeric is the default character pool for String.
	AlphaNumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	DefaultMinLength = 1
	DefaultMaxLength = 10

	// DefaultCharLow and DefaultCharHigh bound the default Char range. The range includes the
	// punctuation between 'Z' and 'a'.
	DefaultCharLow  = 'A'
	DefaultCharHigh = 'z'

	DefaultBytesSize = 10
)

// String fabricates strings whose length is uniform in [min, max] and whose characters are
// drawn independently and uniformly from a pool.
type String struct {
	src  random.Source
	min  int
	max  int
	pool []rune
}

type StringOption func(*String)

// WithLength sets the inclusive length range.
func WithLength(min, max int) StringOption {
	return func(s *String) {
		s.min, s.max = min, max
	}
}

// WithPool sets the characters to draw from. Repeated characters are kept once.
func WithPool(pool string) StringOption {
	return func(s *String) {
		s.pool = s.pool[:0]
		seen := make(map[rune]bool)
		for _, r := range pool {
			if !seen[r] {
				seen[r] = true
				s.pool = append(s.pool, r)
			}
		}
	}
}

func NewString(src random.Source, opts ...StringOption) (*String, error) {
	s := &String{
		src: src,
		min: DefaultMinLength,
		max: DefaultMaxLength,
	}
	WithPool(AlphaNumeric)(s)
	for _, opt := range opts {
		opt(s)
	}

	var err error
	if s.min < 0 {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidConfiguration, "negative minimum length %d", s.min))
	}
	if s.min > s.max {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidConfiguration, "inverted length range [%d, %d]", s.min, s.max))
	}
	if s.max > SizeLimit {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidConfiguration, "maximum length %d above limit %d", s.max, SizeLimit))
	}
	if len(s.pool) == 0 {
		err = multierr.Append(err, errors.Wrap(ErrInvalidConfiguration, "empty character pool"))
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func newDefaultString(src random.Source) *String {
	return Must(NewString(src))
}

func (f *String) Fabricate() string {
	n := int(f.src.Range(int64(f.min), int64(f.max)+1))
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteRune(random.Choice(f.src, f.pool))
	}
	return b.String()
}

// Char fabricates a single code point uniform in an inclusive range.
type Char struct {
	src    random.Source
	lo, hi rune
}

type CharOption func(*Char)

// WithCharRange sets the inclusive range of code points.
func WithCharRange(lo, hi rune) CharOption {
	return func(c *Char) {
		c.lo, c.hi = lo, hi
	}
}

func NewChar(src random.Source, opts ...CharOption) (*Char, error) {
	c := &Char{src: src, lo: DefaultCharLow, hi: DefaultCharHigh}
	for _, opt := range opts {
		opt(c)
	}
	if c.lo > c.hi {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "inverted character range [%q, %q]", c.lo, c.hi)
	}
	return c, nil
}

func (f *Char) Fabricate() rune {
	return rune(f.src.Range(int64(f.lo), int64(f.hi)+1))
}

// Byte fabricates a single random byte.
type Byte struct {
	src random.Source
}

func NewByte(src random.Source) *Byte {
	return &Byte{src: src}
}

func (f *Byte) Fabricate() byte {
	return f.src.Bytes(1)[0]
}

// Bytes fabricates opaque byte sequences of a fixed size.
type Bytes struct {
	src  random.Source
	size int
}

func NewBytes(src random.Source, size int) (*Bytes, error) {
	if size < 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "negative byte sequence size %d", size)
	}
	if size > SizeLimit {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "byte sequence size %d above limit %d", size, SizeLimit)
	}
	return &Bytes{src: src, size: size}, nil
}

func NewDefaultBytes(src random.Source) *Bytes {
	return &Bytes{src: src, size: DefaultBytesSize}
}

func (f *Bytes) Fabricate() []byte {
	return f.src.Bytes(f.size)
}
