package fabrikate

import (
	"go.uber.org/zap"

	"github.com/antithesishq/fabrikate-go/config"
	"github.com/antithesishq/fabrikate-go/random"
)

type options struct {
	src     random.Source
	seed    *int64
	config  *config.Config
	logger  *zap.Logger
	loadErr error
}

// Option configures New.
type Option func(o *options)

// WithSource makes every default fabricator draw from src. It takes precedence over any seed.
func WithSource(src random.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithSeed uses a deterministic source seeded with seed, overriding FABRIKATE_SEED.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithConfig replaces the configuration otherwise loaded from the environment.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithLogger sets the logger, which otherwise writes to the configured local output.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
