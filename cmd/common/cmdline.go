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
	"flag"
	"fmt"
	"log/slog"
	"os"
)

type GlobalFlags struct {
	Flagset    *flag.FlagSet
	ConfigFile string
	LogLevel   string
	HashAlg    string
	CidVersion uint64
	Json       bool
	Hex        string
	File       string
	Block      bool
}

func NewGlobalFlags() *GlobalFlags {
	f := &GlobalFlags{
		Flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	defaults := DefaultConfig()
	f.Flagset.StringVar(
		&f.ConfigFile,
		"config",
		"",
		"path to YAML config file",
	)
	f.Flagset.StringVar(
		&f.LogLevel,
		"log-level",
		defaults.LogLevel,
		"log level (debug, info, warn, error)",
	)
	f.Flagset.StringVar(
		&f.HashAlg,
		"hash-alg",
		defaults.HashAlg,
		"hash algorithm used to compute the CID",
	)
	f.Flagset.Uint64Var(
		&f.CidVersion,
		"cid-version",
		defaults.CidVersion,
		"CID version",
	)
	f.Flagset.BoolVar(&f.Json, "json", defaults.Json, "output JSON")
	f.Flagset.StringVar(
		&f.Hex,
		"hex",
		"",
		"block header as hex (defaults to reading -file or stdin)",
	)
	f.Flagset.StringVar(
		&f.File,
		"file",
		"",
		"file containing the block header, as hex or raw bytes",
	)
	f.Flagset.BoolVar(
		&f.Block,
		"block",
		false,
		"input is a full serialized block rather than only its header",
	)
	return f
}

func (f *GlobalFlags) Parse() {
	if err := f.ParseArgs(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
}

// ParseArgs parses the provided args and merges in the config file, if any.
// Flags given on the command line take precedence over the config file
func (f *GlobalFlags) ParseArgs(args []string) error {
	if err := f.Flagset.Parse(args); err != nil {
		return err
	}
	if f.ConfigFile == "" {
		return nil
	}
	cfg, err := LoadConfig(f.ConfigFile)
	if err != nil {
		return err
	}
	explicit := make(map[string]bool)
	f.Flagset.Visit(func(fl *flag.Flag) {
		explicit[fl.Name] = true
	})
	if !explicit["log-level"] {
		f.LogLevel = cfg.LogLevel
	}
	if !explicit["hash-alg"] {
		f.HashAlg = cfg.HashAlg
	}
	if !explicit["cid-version"] {
		f.CidVersion = cfg.CidVersion
	}
	if !explicit["json"] {
		f.Json = cfg.Json
	}
	return nil
}

// Logger returns a text logger on stderr at the configured level
func (f *GlobalFlags) Logger() (*slog.Logger, error) {
	level, err := ParseLogLevel(f.LogLevel)
	if err != nil {
		return nil, err
	}
	return slog.New(
		slog.NewTextHandler(
			os.Stderr,
			&slog.HandlerOptions{Level: level},
		),
	), nil
}
