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

package completion

import (
	"log/slog"

	"fillmore-labs.com/fixfacts/internal/reachability/tracker"
)

// Option configures the completion analysis.
type Option interface {
	apply(opts *options)
	LogAttr() slog.Attr
}

type options struct {
	logger      *slog.Logger
	tracker     tracker.Tracker
	methodLevel bool
	failed      bool // analysis aborted, the result is a conservative default
}

func makeOptions(opts []Option) *options {
	o := &options{
		logger:  slog.New(slog.DiscardHandler),
		tracker: tracker.Default,
	}

	for _, opt := range opts {
		opt.apply(o)
	}

	return o
}

// WithMethodLevel treats calls of functions that never return, like os.Exit or System.exit, as
// abrupt completion.
func WithMethodLevel(enabled bool) Option {
	return methodLevelOption{methodLevel: enabled}
}

type methodLevelOption struct{ methodLevel bool }

func (o methodLevelOption) apply(opts *options) {
	opts.methodLevel = o.methodLevel
}

func (o methodLevelOption) LogAttr() slog.Attr {
	return slog.Bool("method-level", o.methodLevel)
}

// WithTracker replaces the table of terminating functions used by [WithMethodLevel].
func WithTracker(t tracker.Tracker) Option {
	return trackerOption{tracker: t}
}

type trackerOption struct{ tracker tracker.Tracker }

func (o trackerOption) apply(opts *options) {
	opts.tracker = o.tracker
}

func (trackerOption) LogAttr() slog.Attr {
	return slog.Bool("custom-tracker", true)
}

// WithLogger sets the logger receiving recovered internal errors.
func WithLogger(logger *slog.Logger) Option {
	return loggerOption{logger: logger}
}

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(opts *options) {
	if o.logger != nil {
		opts.logger = o.logger
	}
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
