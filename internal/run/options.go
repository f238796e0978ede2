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

package run

import (
	"log/slog"

	"fillmore-labs.com/fixfacts/internal/config"
)

// Options represent configuration runOptions for the fixfacts analyzer.
type Options struct {
	// Fixes selects the fix families to report.
	Fixes config.BitMask[config.FixFlags]

	// Behavior holds behavioral options.
	Behavior config.BitMask[config.Config]

	// Logger receives recovered internal errors of the inference and completion engines.
	Logger *slog.Logger
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Fixes:    config.NewBitMask(config.InferFixes, config.ReturnFixes, config.SwitchFixes),
		Behavior: config.NewBitMask(config.MethodLevel),
		Logger:   slog.New(slog.DiscardHandler),
	}
}
