// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🎨 Log output formats
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// 📚 Config represents the complete configuration
type Config struct {
	LogLevel  string `json:"log_level,omitempty" yaml:"log_level,omitempty" hcl:"log_level,optional"`    // zerolog level name (trace/debug/info/warn/error)
	LogFormat string `json:"log_format,omitempty" yaml:"log_format,omitempty" hcl:"log_format,optional"` // console or json
	NoColor   bool   `json:"no_color,omitempty" yaml:"no_color,omitempty" hcl:"no_color,optional"`       // disable ANSI colors on console output
}

// 🏭 Default returns the configuration used when no config file is present
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: FormatConsole,
	}
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	// Set defaults
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = FormatConsole
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return errors.Errorf("parsing log_level %q: %w", cfg.LogLevel, err)
	}

	switch cfg.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		return errors.Errorf("log_format must be %q or %q, got %q", FormatConsole, FormatJSON, cfg.LogFormat)
	}

	return nil
}

// 🎯 Level returns the parsed zerolog level
func (cfg *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("level=%s format=%s no_color=%t", cfg.LogLevel, cfg.LogFormat, cfg.NoColor)
}
