// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package lbdd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config stores the parameters of a Table and of the apply operations running
// on it. A Config can be built with options (see New) or loaded from a YAML
// document with LoadConfig.
type Config struct {
	// Nodesize is the initial capacity of the node arena. The arena grows
	// on demand.
	Nodesize int `yaml:"nodesize" validate:"gte=0"`

	// Maxnodesize is the maximal number of nodes in the table, including the
	// two constants. An operation that needs more nodes fails with
	// ErrCapacityExceeded. The default value (0) means no limit other than
	// the 48 bits address space.
	Maxnodesize int `yaml:"maxnodesize" validate:"gte=0"`

	// Loadfactor is the load of the unique index above which we rehash it
	// into a larger index.
	Loadfactor float64 `yaml:"loadfactor" validate:"gt=0,lt=1"`

	// Cachesize is the number of entries in the task cache allocated for
	// each apply. When 0, the size is derived from Cacheratio.
	Cachesize int `yaml:"cachesize" validate:"gte=0"`

	// Cacheratio gives the size of the task cache as a percentage of the
	// number of nodes in the table, when Cachesize is 0.
	Cacheratio int `yaml:"cacheratio" validate:"gte=1,lte=10000"`

	// TaskHash is the name of the hash strategy used by the task cache. It
	// is ignored when Hasher is set.
	TaskHash string `yaml:"taskhash" validate:"oneof=locality knuth xxhash"`

	// Hasher overrides TaskHash with a custom strategy.
	Hasher TaskHasher `yaml:"-" validate:"-"`

	// Logger receives debug events (rehash, apply summaries, ...). By default
	// messages are discarded.
	Logger *log.Logger `yaml:"-" validate:"-"`
}

const (
	_DEFAULTNODESIZE  = 1 << 10
	_DEFAULTLOAD      = 0.75
	_DEFAULTRATIO     = 100
	_DEFAULTTASKHASH  = "locality"
	_MINTASKCACHESIZE = 1 << 10
)

var validate = validator.New()

// DefaultConfig returns the configuration used when New is called without
// options.
func DefaultConfig() Config {
	return Config{
		Nodesize:   _DEFAULTNODESIZE,
		Loadfactor: _DEFAULTLOAD,
		Cacheratio: _DEFAULTRATIO,
		TaskHash:   _DEFAULTTASKHASH,
	}
}

// Option is a configuration option (function) used as a parameter in New.
type Option func(*Config)

// Nodesize is a configuration option (function). Used as a parameter in New it
// sets a preferred initial size for the node table. The size of the table
// increases during computation.
func Nodesize(size int) Option {
	return func(c *Config) {
		c.Nodesize = size
	}
}

// Maxnodesize is a configuration option (function). Used as a parameter in New
// it sets a limit to the number of nodes in the table. An operation trying to
// raise the number of nodes above this limit returns an error wrapping
// ErrCapacityExceeded. This is the circuit breaker for pathological inputs.
func Maxnodesize(size int) Option {
	return func(c *Config) {
		c.Maxnodesize = size
	}
}

// Loadfactor is a configuration option (function). It sets the load of the
// unique index that triggers a rehash.
func Loadfactor(f float64) Option {
	return func(c *Config) {
		c.Loadfactor = f
	}
}

// Cachesize is a configuration option (function). Used as a parameter in New it
// sets a fixed number of entries for the task cache allocated by each apply.
func Cachesize(size int) Option {
	return func(c *Config) {
		c.Cachesize = size
	}
}

// Cacheratio is a configuration option (function). With a ratio of r, each
// apply allocates a task cache with r entries for every 100 nodes in the table.
// The default is 100.
func Cacheratio(ratio int) Option {
	return func(c *Config) {
		c.Cacheratio = ratio
	}
}

// TaskHash is a configuration option (function) selecting the hash strategy
// of the task cache.
func TaskHash(h TaskHasher) Option {
	return func(c *Config) {
		c.Hasher = h
	}
}

// Logger is a configuration option (function) setting the logger used by the
// table.
func Logger(l *log.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// WithConfig is a configuration option (function) replacing all the
// parameters with the ones in cfg, for instance a Config obtained from
// LoadConfig. Options given after it still apply.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

func makeconfig(opts ...Option) (Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	if c.Hasher == nil {
		c.Hasher, _ = hasherByName(c.TaskHash)
	}
	if c.Logger == nil {
		c.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if c.Nodesize < 2 {
		c.Nodesize = 2
	}
	return c, nil
}

// Validate checks the constraints on the fields of c.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrConfig, err)
	}
	if c.Maxnodesize > 0 && c.Maxnodesize < 2 {
		return fmt.Errorf("%w: maxnodesize (%d) cannot hold the two constants", ErrConfig, c.Maxnodesize)
	}
	return nil
}

// ParseConfig reads a configuration from a YAML document. Missing fields keep
// their default value.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("%w: %s", ErrConfig, err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// LoadConfig reads the YAML configuration stored in file path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("reading config: %w", err)
	}
	return ParseConfig(data)
}
