// Copyright (C) 2026 Nippon Telegraph and Telephone Corporation.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"github.com/osrg/bgpdump/internal/pkg/prefixset"
	"github.com/osrg/bgpdump/pkg/dump"
	"github.com/osrg/bgpdump/pkg/log"
)

const (
	DEFAULT_SCHEMA_VERSION  = "v1"
	DEFAULT_COMMENT_SYMBOLS = "#"
	DEFAULT_LOG_LEVEL       = "info"
)

type ReaderConfig struct {
	SchemaVersion  string `mapstructure:"schema-version" toml:"schema-version"`
	CommentSymbols string `mapstructure:"comment-symbols" toml:"comment-symbols"`
}

type FilterConfig struct {
	ExcludePrefixes  []string `mapstructure:"exclude-prefixes" toml:"exclude-prefixes"`
	RemovePrepending bool     `mapstructure:"remove-prepending" toml:"remove-prepending"`
}

type LogConfig struct {
	Level string `mapstructure:"level" toml:"level"`
	Plain bool   `mapstructure:"plain" toml:"plain"`
}

type Config struct {
	Reader ReaderConfig `mapstructure:"reader" toml:"reader"`
	Filter FilterConfig `mapstructure:"filter" toml:"filter"`
	Log    LogConfig    `mapstructure:"log" toml:"log"`
}

func setDefaultConfigValues(v *viper.Viper) {
	v.SetDefault("reader.schema-version", DEFAULT_SCHEMA_VERSION)
	v.SetDefault("reader.comment-symbols", DEFAULT_COMMENT_SYMBOLS)
	v.SetDefault("filter.exclude-prefixes", []string{})
	v.SetDefault("filter.remove-prepending", false)
	v.SetDefault("log.level", DEFAULT_LOG_LEVEL)
	v.SetDefault("log.plain", false)
}

// NewDefaultConfig returns the configuration used when no file is given.
func NewDefaultConfig() *Config {
	return &Config{
		Reader: ReaderConfig{
			SchemaVersion:  DEFAULT_SCHEMA_VERSION,
			CommentSymbols: DEFAULT_COMMENT_SYMBOLS,
		},
		Filter: FilterConfig{
			ExcludePrefixes: []string{},
		},
		Log: LogConfig{
			Level: DEFAULT_LOG_LEVEL,
		},
	}
}

// ReadConfigFile reads path as configType (toml, yaml or json), fills in
// defaults for the keys it does not set and validates the result.
func ReadConfigFile(path, configType string) (*Config, error) {
	v := viper.New()
	setDefaultConfigValues(v)
	v.SetConfigFile(path)
	v.SetConfigType(configType)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("can't read config file %s: %w", path, err)
	}
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("can't decode config file %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if _, err := c.Version(); err != nil {
		return err
	}
	if _, err := c.ExcludedPrefixes(); err != nil {
		return err
	}
	if _, err := log.ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

func (c *Config) Version() (dump.SchemaVersion, error) {
	return dump.ParseSchemaVersion(c.Reader.SchemaVersion)
}

func (c *Config) ExcludedPrefixes() (*prefixset.PrefixSet, error) {
	return prefixset.New(c.Filter.ExcludePrefixes)
}

// WriteExample writes an example configuration in TOML.
func WriteExample(w io.Writer) error {
	c := NewDefaultConfig()
	c.Reader.SchemaVersion = "v2"
	c.Filter.ExcludePrefixes = []string{"192.0.2.0/24", "2001:db8::/32"}
	return toml.NewEncoder(w).Encode(c)
}
