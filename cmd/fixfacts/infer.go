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

	"github.com/spf13/cobra"

	"fillmore-labs.com/fixfacts/internal/expect"
	"fillmore-labs.com/fixfacts/internal/golang"
	"fillmore-labs.com/fixfacts/internal/typedesc"
)

func newInferCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "infer <file.go:line:column>...",
		Short: "Infer the expected types and kinds of the names at the given locations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locs, err := parseLocations(args)
			if err != nil {
				return err
			}

			records, err := analyzeLocations(cmd.Context(), a, "infer", locs, a.inferAt)
			if err != nil {
				return err
			}

			return emit(a.output(cmd.OutOrStdout()), records, writeInfer)
		},
	}
}

// inferAt infers the expectations of the innermost node at loc.
func (a *app) inferAt(ctx context.Context, src *source, loc location) (inferRecord, error) {
	pos, err := loc.pos(src.handle)
	if err != nil {
		return inferRecord{}, err
	}

	rec := inferRecord{Location: loc.String(), Results: []resultRecord{}}

	path := src.snap.Tree().PathAt(pos)
	if path == nil {
		return rec, nil
	}

	rec.Node = path.Node().Category().String()

	for _, r := range expect.Infer(ctx, src.snap, path, expect.WithLogger(a.logger)) {
		res := resultRecord{
			Types: typeNames(src.snap, r.Types),
			Kinds: expect.KindNames(r.Kinds),
		}

		if r.Scope.Kind != typedesc.None {
			res.Scope = typeName(src.snap, r.Scope)
		}

		rec.Results = append(rec.Results, res)
	}

	return rec, nil
}

func typeNames(snap *golang.Snapshot, ts []typedesc.Type) []string {
	names := make([]string, 0, len(ts))
	for _, t := range ts {
		names = append(names, typeName(snap, t))
	}

	return names
}

func typeName(snap *golang.Snapshot, t typedesc.Type) string {
	if s, ok := snap.TypeString(t); ok {
		return s
	}

	return t.String()
}
