// Copyright 2026 Blink Labs Software
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

package common

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultHashAlg    = "dbl-sha2-256"
	DefaultCidVersion = 1
	DefaultLogLevel   = "info"
)

// Config holds the settings that may be provided in a config file
type Config struct {
	HashAlg    string `yaml:"hashAlg"`
	CidVersion uint64 `yaml:"cidVersion"`
	LogLevel   string `yaml:"logLevel"`
	Json       bool   `yaml:"json"`
}

// DefaultConfig returns the built-in settings
func DefaultConfig() Config {
	return Config{
		HashAlg:    DefaultHashAlg,
		CidVersion: DefaultCidVersion,
		LogLevel:   DefaultLogLevel,
	}
}

// LoadConfig reads a YAML config file over the built-in settings
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML config data over the built-in settings. Unknown
// keys are rejected
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseLogLevel parses a level name such as "debug" or "warn"
func ParseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}
