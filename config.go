package qsim

import (
	"runtime"
	"time"

	"github.com/pkg/errors"
)

// Config holds the tunables of a simulation run.
type Config struct {
	SchedulingTimeout time.Duration // wait for a worker before a job is logged as stalled
	Workers           int    // pool workers used for shot sampling
	BatchSize         int    // shots per sampling job
	Seed              uint64 // root seed, batch k draws from PCG(Seed, k)
	MaxQubits         int
	MaxStateBytes     uint64 // upper bound for the amplitude vector
}

func NewConfig() *Config {
	return &Config{
		SchedulingTimeout: 10 * time.Second,
		Workers:           runtime.NumCPU(),
		BatchSize:         1024,
		Seed:              0,
		MaxQubits:         26,
		MaxStateBytes:     1 << 30,
	}
}

// Validate reports the first field that cannot drive a run.
func (c *Config) Validate() error {
	switch {
	case c.Workers <= 0:
		return errors.Wrapf(ErrInvalidInput, "workers must be at least 1, got %d", c.Workers)
	case c.BatchSize <= 0:
		return errors.Wrapf(ErrInvalidInput, "batch size must be at least 1, got %d", c.BatchSize)
	case c.MaxQubits <= 0:
		return errors.Wrapf(ErrInvalidInput, "max qubits must be at least 1, got %d", c.MaxQubits)
	case c.MaxStateBytes == 0:
		return errors.Wrap(ErrInvalidInput, "max state bytes must be positive")
	}
	return nil
}

// Option adjusts a Config before a run.
type Option func(*Config)

func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

func WithWorkers(workers int) Option {
	return func(c *Config) {
		c.Workers = workers
	}
}

func WithBatchSize(size int) Option {
	return func(c *Config) {
		c.BatchSize = size
	}
}

// WithConfig replaces every field with the values of cfg.
func WithConfig(cfg *Config) Option {
	return func(c *Config) {
		if cfg != nil {
			*c = *cfg
		}
	}
}
