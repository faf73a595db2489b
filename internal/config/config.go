// Package config loads command-line defaults with viper: built-in
// defaults, an optional config file, then WARRAY_* environment variables.
package config

import (
	"strings"

	"github.com/born-ml/warray/internal/dims"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config holds the settings the CLI applies to every command.
type Config struct {
	Isel IselConfig `mapstructure:"isel"`
	Log  LogConfig  `mapstructure:"log"`
}

// IselConfig holds the defaults of the isel command.
type IselConfig struct {
	MissingDims string `mapstructure:"missing_dims"`
	Drop        bool   `mapstructure:"drop"`
}

// LogConfig configures the global logger.
type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// SetDefaults installs the default value of every setting in v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("isel.missing_dims", string(dims.Raise))
	v.SetDefault("isel.drop", false)
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("WARRAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load reads the configuration. path names an optional config file in any
// format viper understands; "" uses defaults and environment only.
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}
	return LoadWithViper(v)
}

// LoadWithViper decodes and validates the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that have a closed set of values.
func (c *Config) Validate() error {
	if _, err := dims.ParseMissingDims(c.Isel.MissingDims); err != nil {
		return errors.Wrap(err, "isel.missing_dims")
	}
	return nil
}

// MissingDims returns the validated missing-dimension policy.
func (c *Config) MissingDims() dims.MissingDims {
	return dims.MissingDims(c.Isel.MissingDims)
}
