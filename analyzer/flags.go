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
	"flag"

	"fillmore-labs.com/fixfacts/internal/config"
	"fillmore-labs.com/fixfacts/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	flags.Var(NewFlagValue(&r.Fixes, config.InferFixes), "infer", "suggest declarations for undefined names")
	flags.Var(NewFlagValue(&r.Fixes, config.ReturnFixes), "returns", "suggest returns for bodies completing normally")
	flags.Var(NewFlagValue(&r.Fixes, config.SwitchFixes), "switches", "suggest default cases for final switches")
	flags.Var(NewFlagValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(NewFlagValue(&r.Behavior, config.MethodLevel), "method-level", "treat calls that never return as exits")
}
