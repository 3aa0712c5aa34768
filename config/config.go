/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/joberr/logging"
	"dirpx.dev/joberr/wire"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "JOBERR"

// Keys of the configuration tree. Flag names bound with WithFlags must use
// the same names.
const (
	KeyWireVarint         = "wire.varint"
	KeyWireMaxFieldLength = "wire.max_field_length"
	KeyLogLevel           = "log.level"
	KeyLogFormat          = "log.format"
	KeyLogStack           = "log.stack"
)

// ErrInvalidConfig is returned (wrapped) when a loaded configuration fails
// validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete configuration of the joberr tooling.
type Config struct {
	Wire WireConfig     `yaml:"wire" mapstructure:"wire"`
	Log  logging.Config `yaml:"log" mapstructure:"log"`
}

// WireConfig selects the wire codec parameters.
type WireConfig struct {
	// Varint names the length-prefix scheme: "compactsize" or "leb128".
	Varint string `yaml:"varint" mapstructure:"varint"`
	// MaxFieldLength is the per-field byte limit.
	MaxFieldLength int `yaml:"max_field_length" mapstructure:"max_field_length"`
}

// ApplyDefaults fills unset values.
func (c *WireConfig) ApplyDefaults() {
	if c.Varint == "" {
		c.Varint = wire.CompactSize.Name()
	}
	if c.MaxFieldLength == 0 {
		c.MaxFieldLength = wire.DefaultMaxFieldLength
	}
}

// Validate validates wire configuration.
func (c *WireConfig) Validate() error {
	if _, ok := wire.VarintByName(c.Varint); !ok {
		return fmt.Errorf("wire.varint must be one of [%s %s] (got: %s)",
			wire.CompactSize.Name(), wire.LEB128.Name(), c.Varint)
	}
	if c.MaxFieldLength <= 0 {
		return fmt.Errorf("wire.max_field_length must be positive (got: %d)", c.MaxFieldLength)
	}
	return nil
}

// Options converts the configuration into codec options.
func (c WireConfig) Options() []wire.Option {
	v, _ := wire.VarintByName(c.Varint)
	return []wire.Option{
		wire.WithVarint(v),
		wire.WithMaxFieldLength(c.MaxFieldLength),
	}
}

// Codec builds a codec from the configuration.
func (c WireConfig) Codec() *wire.Codec {
	return wire.New(c.Options()...)
}

// ApplyDefaults fills unset values in every section.
func (c *Config) ApplyDefaults() {
	c.Wire.ApplyDefaults()
	c.Log.ApplyDefaults()
}

// Validate validates every section.
func (c *Config) Validate() error {
	if err := c.Wire.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

type loader struct {
	file    string
	envFile string
	flags   *pflag.FlagSet
}

// Option configures Load.
type Option func(*loader)

// WithFile reads the given config file. Its format is taken from the
// extension.
func WithFile(path string) Option {
	return func(l *loader) { l.file = path }
}

// WithEnvFile loads the given .env file into the process environment before
// reading variables. Variables already set are not overwritten.
func WithEnvFile(path string) Option {
	return func(l *loader) { l.envFile = path }
}

// WithFlags binds the flags of fs whose names match configuration keys.
// Only flags that were set on the command line take precedence.
func WithFlags(fs *pflag.FlagSet) Option {
	return func(l *loader) { l.flags = fs }
}

// Load builds a validated Config.
func Load(opts ...Option) (Config, error) {
	var l loader
	for _, opt := range opts {
		opt(&l)
	}

	v := viper.New()

	// 1. Defaults; registering every key also lets AutomaticEnv see it.
	v.SetDefault(KeyWireVarint, wire.CompactSize.Name())
	v.SetDefault(KeyWireMaxFieldLength, wire.DefaultMaxFieldLength)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, logging.FormatJSON)
	v.SetDefault(KeyLogStack, false)

	// 2. Config file.
	if l.file != "" {
		v.SetConfigFile(l.file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", l.file, err)
		}
	}

	// 3. .env file, then environment.
	if l.envFile != "" {
		if err := godotenv.Load(l.envFile); err != nil {
			return Config{}, fmt.Errorf("config: load env file %s: %w", l.envFile, err)
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Flags.
	if l.flags != nil {
		for _, key := range []string{KeyWireVarint, KeyWireMaxFieldLength, KeyLogLevel, KeyLogFormat, KeyLogStack} {
			if f := l.flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("config: bind flag %s: %w", key, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
