// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/fixfacts/internal/config"
	"fillmore-labs.com/fixfacts/internal/run"
)

// Option configures specific behavior of a [New] fixfacts analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithInfer is an [Option] to configure whether declarations for undefined names are suggested.
func WithInfer(infer bool) Option {
	return fixOption{flag: config.InferFixes, name: "infer", enabled: infer}
}

// WithReturns is an [Option] to configure whether returns for bodies completing normally are suggested.
func WithReturns(returns bool) Option {
	return fixOption{flag: config.ReturnFixes, name: "returns", enabled: returns}
}

// WithSwitches is an [Option] to configure whether default cases for final switches are suggested.
func WithSwitches(switches bool) Option {
	return fixOption{flag: config.SwitchFixes, name: "switches", enabled: switches}
}

type fixOption struct {
	flag    config.FixFlags
	name    string
	enabled bool
}

func (o fixOption) apply(r *run.Options) {
	r.Fixes.Set(o.flag, o.enabled)
}

func (o fixOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.enabled)
}

// WithMethodLevel is an [Option] to configure whether calls that never return, like os.Exit,
// end a function body.
func WithMethodLevel(methodLevel bool) Option { return methodLevelOption{methodLevel: methodLevel} }

type methodLevelOption struct{ methodLevel bool }

func (o methodLevelOption) apply(r *run.Options) {
	r.Behavior.Set(config.MethodLevel, o.methodLevel)
}

func (o methodLevelOption) LogAttr() slog.Attr {
	return slog.Bool("method-level", o.methodLevel)
}

// WithLogger is an [Option] to set the logger receiving internal errors.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	if o.logger != nil {
		r.Logger = o.logger
	}
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
