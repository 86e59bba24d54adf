package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/theapemachine/qsim"
)

// Config for the bv command
type Config struct {
	Secret    string `mapstructure:"secret"`
	Random    int    `mapstructure:"random"`
	Shots     int    `mapstructure:"shots"`
	Seed      uint64 `mapstructure:"seed"`
	Workers   int    `mapstructure:"workers"`
	Batch     int    `mapstructure:"batch"`
	MaxQubits int    `mapstructure:"maxqubits"`
	QASM      bool   `mapstructure:"qasm"`
	Top       int    `mapstructure:"top"`
	Log       string `mapstructure:"log"`

	// SeedSet is true when a seed came from a flag, file or environment.
	SeedSet bool `mapstructure:"-"`
}

var configKeys = []string{
	"secret", "random", "shots", "seed", "workers", "batch", "maxqubits", "qasm", "top", "log",
}

/*
loadConfig overlays settings onto config. A config file (JSON, YAML or TOML,
chosen by extension) overrides the command line, and QSIM_* environment
variables override both. Keys that are absent leave the field untouched.
*/
func loadConfig(config *Config, path string) error {
	v := viper.New()
	v.SetEnvPrefix("qsim")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return errors.Wrapf(err, "bind env for %s", key)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", path)
		}
	}

	if err := v.Unmarshal(config); err != nil {
		return errors.Wrap(err, "decode config")
	}

	if v.IsSet("seed") {
		config.SeedSet = true
	}
	return nil
}

/*
runSettings turns the command configuration into simulator settings. The
state byte budget grows with --maxqubits so that raising the qubit limit is
not silently capped by the default budget.
*/
func runSettings(config *Config) *qsim.Config {
	settings := qsim.NewConfig()
	settings.Seed = config.Seed
	settings.Workers = config.Workers
	settings.BatchSize = config.Batch
	settings.MaxQubits = config.MaxQubits

	if config.MaxQubits > 0 {
		settings.MaxStateBytes = max(settings.MaxStateBytes, qsim.StateBytes(min(config.MaxQubits, 58)))
	}
	return settings
}
