// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

const configFile = ".fixfacts.toml"

var (
	// ErrUnknownFormat is returned for an unsupported output format.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrInvalidJobs is returned for a non-positive number of jobs.
	ErrInvalidJobs = errors.New("jobs must be positive")
)

// settings is the configuration of a run, read from the configuration file and overridden by flags.
type settings struct {
	Format      string `toml:"format"`
	Jobs        int    `toml:"jobs"`
	CacheDir    string `toml:"cache-dir"`
	MethodLevel bool   `toml:"method-level"`
	Generated   bool   `toml:"generated"`

	Fixes fixSettings `toml:"fixes"`
}

type fixSettings struct {
	Infer    bool `toml:"infer"`
	Returns  bool `toml:"returns"`
	Switches bool `toml:"switches"`
}

func defaultSettings() settings {
	return settings{
		Format:      "text",
		Jobs:        runtime.GOMAXPROCS(0),
		MethodLevel: true,
		Fixes:       fixSettings{Infer: true, Returns: true, Switches: true},
	}
}

// loadSettings decodes the configuration file at path over the defaults. A missing file is only
// an error when it was explicitly requested.
func loadSettings(path string, required bool) (settings, error) {
	s := defaultSettings()

	md, err := toml.DecodeFile(path, &s)
	switch {
	case err == nil:

	case errors.Is(err, fs.ErrNotExist) && !required:
		return defaultSettings(), nil

	default:
		return settings{}, fmt.Errorf("can't read configuration %q: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return settings{}, fmt.Errorf("unknown configuration keys in %q: %v", path, undecoded)
	}

	return s, nil
}

// override applies the persistent flags set on the command line.
func (s *settings) override(flags *pflag.FlagSet) error {
	var err error

	if flags.Changed("format") {
		s.Format, err = flags.GetString("format")
		if err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}
	}

	if flags.Changed("jobs") {
		s.Jobs, err = flags.GetInt("jobs")
		if err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}

	if flags.Changed("cache-dir") {
		s.CacheDir, err = flags.GetString("cache-dir")
		if err != nil {
			return fmt.Errorf("failed to get cache-dir flag: %w", err)
		}
	}

	if flags.Changed("method-level") {
		s.MethodLevel, err = flags.GetBool("method-level")
		if err != nil {
			return fmt.Errorf("failed to get method-level flag: %w", err)
		}
	}

	return nil
}

func (s settings) validate() error {
	switch s.Format {
	case formatText, formatJSON, formatMsgpack:

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, s.Format)
	}

	if s.Jobs <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidJobs, s.Jobs)
	}

	return nil
}

// LogValue implements [slog.LogValuer].
func (s settings) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("format", s.Format),
		slog.Int("jobs", s.Jobs),
		slog.String("cache-dir", s.CacheDir),
		slog.Bool("method-level", s.MethodLevel),
		slog.Bool("generated", s.Generated),
		slog.Bool("infer", s.Fixes.Infer),
		slog.Bool("returns", s.Fixes.Returns),
		slog.Bool("switches", s.Fixes.Switches),
	)
}
