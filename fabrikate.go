// Package fabrikate fabricates random instances of Go types for test fixtures.
//
// A [Fabrikate] maps types to fabricators from the [fabricator] package, all bound to one
// random source. [Fabricate] looks a type up and, when nothing is registered for it, builds
// the value from its parts: struct fields, pointer targets, slice, array and map elements.
//
//	f := fabrikate.New(fabrikate.WithSeed(42))
//	user, err := fabrikate.Fabricate[User](f)
//
// Without an explicit source or seed, New reads FABRIKATE_SEED (see package config) and
// otherwise draws a fresh seed. The seed is logged and available from [Fabrikate.Seed], so a
// failing run can be replayed by exporting FABRIKATE_SEED.
//
// A Fabrikate is not safe for concurrent use. Give each goroutine its own through
// [Fabrikate.Fork].
package fabrikate

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/antithesishq/fabrikate-go/config"
	"github.com/antithesishq/fabrikate-go/fabricator"
	"github.com/antithesishq/fabrikate-go/local"
	"github.com/antithesishq/fabrikate-go/random"
)

// Fabrikate is a registry of fabricators sharing one random source.
type Fabrikate struct {
	src     random.Source
	seed    int64
	seeded  bool
	config  *config.Config
	logger  *zap.Logger
	entries map[reflect.Type]entry
}

type entry struct {
	fab     any
	produce func() reflect.Value
}

// New returns a Fabrikate with every default fabricator registered.
//
// Configuration errors from the environment are not fatal: they are logged and the defaults
// are used instead. Use WithConfig to handle them.
func New(opts ...Option) *Fabrikate {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.config == nil {
		cfg, err := config.Load()
		if err != nil {
			cfg = config.Default()
			o.loadErr = err
		}
		o.config = cfg
	} else if err := o.config.Validate(); err != nil {
		seed := o.config.Seed
		o.config = config.Default()
		o.config.Seed = seed
		o.loadErr = err
	}
	if o.logger == nil {
		o.logger = local.NewLogger(o.config.LocalOutput, o.config.SourceName)
	}
	if o.loadErr != nil {
		o.logger.Warn("ignoring invalid configuration", zap.Error(o.loadErr))
	}

	f := &Fabrikate{
		config:  o.config,
		logger:  o.logger,
		entries: make(map[reflect.Type]entry),
	}
	switch {
	case o.src != nil:
		f.src = o.src
	case o.seed != nil:
		f.useSeed(*o.seed)
	case o.config.Seed != nil:
		f.useSeed(*o.config.Seed)
	default:
		f.useSeed(random.Seed())
	}
	if f.seeded {
		f.logger.Info("fabrikate seed", zap.Int64("seed", f.seed))
	}

	registerDefaults(f)
	return f
}

func (f *Fabrikate) useSeed(seed int64) {
	f.src = random.New(seed)
	f.seed = seed
	f.seeded = true
}

// Seed returns the seed f was created with. It returns false when f was built on a caller
// supplied source.
func (f *Fabrikate) Seed() (int64, bool) {
	return f.seed, f.seeded
}

// Source returns the random source every default fabricator of f draws from.
func (f *Fabrikate) Source() random.Source {
	return f.src
}

// Config returns the configuration f was built with.
func (f *Fabrikate) Config() *config.Config {
	return f.config
}

// Fork returns a new Fabrikate with the same configuration and logger and an independent
// source derived from f's. Fabricators registered on f with Register are bound to f's source
// and are not carried over.
func (f *Fabrikate) Fork() *Fabrikate {
	seed := f.src.Range(0, 1<<63-1)
	return New(WithSeed(seed), WithConfig(f.config), WithLogger(f.logger))
}

// Register makes fab the fabricator for T, replacing any previous one.
func Register[T any](f *Fabrikate, fab fabricator.Fabricator[T]) {
	f.entries[typeOf[T]()] = entry{
		fab: fab,
		produce: func() reflect.Value {
			v := fab.Fabricate()
			return reflect.ValueOf(&v).Elem()
		},
	}
}

// Get returns the fabricator registered for T.
func Get[T any](f *Fabrikate) (fabricator.Fabricator[T], error) {
	t := typeOf[T]()
	e, ok := f.entries[t]
	if !ok {
		f.logger.Debug("no fabricator registered", zap.Stringer("type", t))
		return nil, unsupported(t)
	}
	return e.fab.(fabricator.Fabricator[T]), nil
}

// Fabricate returns a random T, from its registered fabricator or built from its parts.
func Fabricate[T any](f *Fabrikate) (T, error) {
	var out T
	v, err := f.Value(typeOf[T]())
	if err != nil {
		return out, err
	}
	reflect.ValueOf(&out).Elem().Set(v)
	return out, nil
}

// MustFabricate is Fabricate, panicking on error.
func MustFabricate[T any](f *Fabrikate) T {
	v, err := Fabricate[T](f)
	if err != nil {
		panic(err)
	}
	return v
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
