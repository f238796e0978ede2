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

// Command fixfacts reports expected types of unresolved names and completion facts of Go
// function bodies, and runs the fixfacts analyzer over packages.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fillmore-labs.com/fixfacts/internal/cache"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app carries the state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool
	noColor    bool
	noCache    bool

	settings settings
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{settings: defaultSettings()}

	root := &cobra.Command{
		Use:   "fixfacts",
		Short: "Expected types and completion facts for Go sources",
		Long: `fixfacts infers the types and declaration kinds an unresolved name must have,
decides whether function bodies can complete normally and suggests fixes for type errors.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", configFile, "configuration file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug information to stderr")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&a.noCache, "no-cache", false, "disable the result cache")
	flags.StringP("format", "f", a.settings.Format, "output format (text|json|msgpack)")
	flags.IntP("jobs", "j", a.settings.Jobs, "maximum number of files analyzed in parallel")
	flags.String("cache-dir", a.settings.CacheDir, "result cache directory")
	flags.Bool("method-level", a.settings.MethodLevel, "treat calls that never return as exits")

	root.AddCommand(newInferCmd(a), newCompletesCmd(a), newCheckCmd(a))

	return root
}

// setup reads the configuration file, applies explicitly set flags and configures logging.
func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}

	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if a.noColor {
		color.NoColor = true
	}

	s, err := loadSettings(a.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}

	if err := s.override(cmd.Flags()); err != nil {
		return err
	}

	if err := s.validate(); err != nil {
		return err
	}

	a.settings = s

	a.logger.Debug("Configured", slog.Any("settings", s))

	return nil
}

// openCache opens the result cache, or returns nil when caching is disabled or unavailable.
func (a *app) openCache() *cache.Cache {
	if a.noCache {
		return nil
	}

	dir := a.settings.CacheDir
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			a.logger.Warn("No user cache directory, caching disabled", "error", err)

			return nil
		}

		dir = filepath.Join(base, "fixfacts")
	}

	c, err := cache.Open(dir, a.logger)
	if err != nil {
		a.logger.Warn("Can't open cache, caching disabled", "error", err)

		return nil
	}

	return c
}

func (a *app) closeCache(c *cache.Cache) {
	if err := c.Close(); err != nil {
		a.logger.Warn("Can't close cache", "error", err)
	}
}

func (a *app) output(w io.Writer) *printer {
	return &printer{w: w, format: a.settings.Format}
}
