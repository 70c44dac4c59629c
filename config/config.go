// Package config loads fabrikate settings from the environment and an optional YAML file.
//
// Every key can be set through an environment variable prefixed with FABRIKATE_, for example
// FABRIKATE_SEED=42 fixes the seed of every Fabrikate created with default options. When
// FABRIKATE_CONFIG names a file, its keys are read too; environment variables win.
package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/antithesishq/fabrikate-go/fabricator"
)

const (
	EnvPrefix = "FABRIKATE"

	// LocalOutputEnvVar names the file structured local output is written to.
	LocalOutputEnvVar = "FABRIKATE_LOCAL_OUTPUT"
	// ConfigFileEnvVar names an optional YAML configuration file.
	ConfigFileEnvVar = "FABRIKATE_CONFIG"
)

const (
	keySeed            = "seed"
	keyStringMinLength = "string_min_length"
	keyStringMaxLength = "string_max_length"
	keyBytesSize       = "bytes_size"
	keyBigIntBits      = "bigint_bits"
	keyCollectionMin   = "collection_min"
	keyCollectionMax   = "collection_max"
	keyMaxDepth        = "max_depth"
	keyLocalOutput     = "local_output"
	keySourceName      = "source_name"
	keyConfig          = "config"
)

// Config holds the defaults a Fabrikate registers its fabricators with.
type Config struct {
	// Seed fixes the random source. Nil means a fresh seed is drawn for every Fabrikate.
	Seed *int64

	StringMinLength int
	StringMaxLength int
	BytesSize       int
	BigIntBits      int

	// CollectionMin and CollectionMax bound the size of fabricated slices and maps. A map
	// whose key type has fewer distinct values than the size drawn comes out smaller.
	CollectionMin int
	CollectionMax int
	// MaxDepth bounds how many pointer, slice and map hops are followed from the requested
	// type. Struct fields and array elements do not count.
	MaxDepth int

	LocalOutput string
	SourceName  string
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		StringMinLength: fabricator.DefaultMinLength,
		StringMaxLength: fabricator.DefaultMaxLength,
		BytesSize:       fabricator.DefaultBytesSize,
		BigIntBits:      fabricator.DefaultBigIntBits,
		CollectionMin:   1,
		CollectionMax:   5,
		MaxDepth:        4,
		SourceName:      "fabrikate",
	}
}

// Load reads the configuration from the environment and the optional config file.
func Load() (*Config, error) {
	return LoadWith(viper.New())
}

// LoadWith is Load on a caller supplied viper instance.
func LoadWith(v *viper.Viper) (*Config, error) {
	d := Default()
	v.SetDefault(keyStringMinLength, d.StringMinLength)
	v.SetDefault(keyStringMaxLength, d.StringMaxLength)
	v.SetDefault(keyBytesSize, d.BytesSize)
	v.SetDefault(keyBigIntBits, d.BigIntBits)
	v.SetDefault(keyCollectionMin, d.CollectionMin)
	v.SetDefault(keyCollectionMax, d.CollectionMax)
	v.SetDefault(keyMaxDepth, d.MaxDepth)
	v.SetDefault(keySourceName, d.SourceName)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %v", path)
		}
	}

	cfg := &Config{
		StringMinLength: v.GetInt(keyStringMinLength),
		StringMaxLength: v.GetInt(keyStringMaxLength),
		BytesSize:       v.GetInt(keyBytesSize),
		BigIntBits:      v.GetInt(keyBigIntBits),
		CollectionMin:   v.GetInt(keyCollectionMin),
		CollectionMax:   v.GetInt(keyCollectionMax),
		MaxDepth:        v.GetInt(keyMaxDepth),
		LocalOutput:     v.GetString(keyLocalOutput),
		SourceName:      v.GetString(keySourceName),
	}
	if raw := v.Get(keySeed); raw != nil && raw != "" {
		seed, err := cast.ToInt64E(raw)
		if err != nil {
			return nil, errors.Wrapf(fabricator.ErrInvalidConfiguration, "seed %v: %v", raw, err)
		}
		cfg.Seed = &seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every out of range value.
func (c *Config) Validate() error {
	var err error
	invalid := func(format string, args ...any) {
		err = multierr.Append(err, errors.Wrapf(fabricator.ErrInvalidConfiguration, format, args...))
	}
	if c.StringMinLength < 0 {
		invalid("negative %v %d", keyStringMinLength, c.StringMinLength)
	}
	if c.StringMinLength > c.StringMaxLength {
		invalid("inverted string length range [%d, %d]", c.StringMinLength, c.StringMaxLength)
	}
	if c.BytesSize < 0 {
		invalid("negative %v %d", keyBytesSize, c.BytesSize)
	}
	if c.BigIntBits < 0 {
		invalid("negative %v %d", keyBigIntBits, c.BigIntBits)
	}
	if c.CollectionMin < 0 {
		invalid("negative %v %d", keyCollectionMin, c.CollectionMin)
	}
	if c.CollectionMin > c.CollectionMax {
		invalid("inverted collection size range [%d, %d]", c.CollectionMin, c.CollectionMax)
	}
	if c.MaxDepth < 0 {
		invalid("negative %v %d", keyMaxDepth, c.MaxDepth)
	}
	for key, value := range map[string]int{
		keyStringMaxLength: c.StringMaxLength,
		keyBytesSize:       c.BytesSize,
		keyBigIntBits:      c.BigIntBits,
		keyCollectionMax:   c.CollectionMax,
	} {
		if value > fabricator.SizeLimit {
			invalid("%v %d above limit %d", key, value, fabricator.SizeLimit)
		}
	}
	return err
}

// WithSeed returns a copy of c with the seed fixed.
func (c *Config) WithSeed(seed int64) *Config {
	clone := *c
	clone.Seed = &seed
	return &clone
}
