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
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"fillmore-labs.com/fixfacts/internal/completion"
	"fillmore-labs.com/fixfacts/internal/syntax"
)

func newCompletesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "completes <file.go:line[:column]>...",
		Short: "Decide whether the functions at the given locations can complete normally",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locs, err := parseLocations(args)
			if err != nil {
				return err
			}

			records, err := analyzeLocations(cmd.Context(), a, "completes", locs, a.completesAt)
			if err != nil {
				return err
			}

			return emit(a.output(cmd.OutOrStdout()), records, writeCompletes)
		},
	}
}

// completesAt analyzes the innermost function or function literal enclosing loc.
func (a *app) completesAt(ctx context.Context, src *source, loc location) (completesRecord, error) {
	pos, err := loc.pos(src.handle)
	if err != nil {
		return completesRecord{}, err
	}

	fn := src.snap.Tree().PathAt(pos)
	if len(fn) > 0 {
		switch fn.Node().Category() {
		case syntax.MethodDecl, syntax.Lambda:

		default:
			fn = syntax.Enclosing(fn, syntax.MethodDecl, syntax.Lambda)
		}
	}

	if fn == nil {
		return completesRecord{}, fmt.Errorf("%w %s: not inside a function", ErrInvalidLocation, loc)
	}

	opts := []completion.Option{
		completion.WithMethodLevel(a.settings.MethodLevel),
		completion.WithLogger(a.logger),
	}

	rec := completesRecord{
		Location:             loc.String(),
		Function:             "func literal",
		CompletesNormally:    completion.CompletesNormally(ctx, src.snap, fn.Node(), opts...),
		ExitsFromAllBranches: completion.ExitsFromAllBranches(ctx, src.snap, fn.Node(), opts...),
	}

	if m, ok := fn.Node().(*syntax.MethodDeclNode); ok && m.Name != nil {
		rec.Function = m.Name.Name
	}

	return rec, nil
}
