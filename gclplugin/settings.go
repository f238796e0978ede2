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

package gclplugin

import fixfacts "fillmore-labs.com/fixfacts/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
//
// Unset values keep the analyzer defaults.
type Settings struct {
	// Fixes selects the fix families reported.
	Fixes FixSettings `json:"fixes,omitzero"`
	// MethodLevel treats calls that never return as exits.
	MethodLevel *bool `json:"method-level,omitzero"`
}

// FixSettings enables or disables single fix families.
type FixSettings struct {
	Infer    *bool `json:"infer,omitzero"`    // declarations for undefined names
	Returns  *bool `json:"returns,omitzero"`  // returns for bodies completing normally
	Switches *bool `json:"switches,omitzero"` // default cases for final switches
}

// Options converts [Settings] into a list of [fixfacts.Option] for the fixfacts analyzer.
func (s Settings) Options() fixfacts.Options {
	settings := [...]struct {
		value *bool
		opt   func(bool) fixfacts.Option
	}{
		{s.Fixes.Infer, fixfacts.WithInfer},
		{s.Fixes.Returns, fixfacts.WithReturns},
		{s.Fixes.Switches, fixfacts.WithSwitches},
		{s.MethodLevel, fixfacts.WithMethodLevel},
	}

	var opts fixfacts.Options

	for _, setting := range settings {
		if setting.value != nil {
			opts = append(opts, setting.opt(*setting.value))
		}
	}

	return opts
}
