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

package config

// FixFlags selects the families of fixes the analyzer reports.
type FixFlags uint8

const (
	// InferFixes enables expected-type inference for undefined names.
	InferFixes FixFlags = 1 << iota

	// ReturnFixes enables missing return fixes for bodies that complete normally.
	ReturnFixes

	// SwitchFixes enables reporting of expression switches whose cases all exit.
	SwitchFixes
)

// Config represents configuration options for the analyzers.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// MethodLevel makes calls that never return, like os.Exit, terminate a body.
	MethodLevel
)
