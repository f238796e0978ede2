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
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"log/slog"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/fixfacts/internal/astutil"
	"fillmore-labs.com/fixfacts/internal/completion"
	"fillmore-labs.com/fixfacts/internal/config"
	"fillmore-labs.com/fixfacts/internal/fixes"
	"fillmore-labs.com/fixfacts/internal/golang"
	"fillmore-labs.com/fixfacts/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the fixfacts analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("fixfacts: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	if len(p.TypeErrors) == 0 {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "FixFacts")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	table := fixes.DefaultTable(
		completion.WithMethodLevel(r.Behavior.Enabled(config.MethodLevel)),
		completion.WithLogger(r.Logger),
	)

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.ReportInternal(p, file, "file %s has no position information", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLintFile() {
			continue
		}

		errs := fileErrors(p.TypeErrors, currentFile)
		if len(errs) == 0 {
			continue
		}

		r.checkFile(ctx, p, table, currentFile, f, errs)
	}

	return nil, nil
}

// checkFile synthesizes fixes for the type errors of a single file.
func (r *Options) checkFile(ctx context.Context, p *analysis.Pass, table *fixes.Table, currentFile astutil.CurrentFile, f inspector.Cursor, errs []types.Error) {
	defer trace.StartRegion(ctx, "CheckFile").End()

	file := f.Node().(*ast.File)

	// Lower the file once for all of its errors
	tree := golang.Lower(file, p.TypesInfo)
	snap := golang.NewSnapshot(tree, p.Pkg, p.TypesInfo)

	reporter := report.New(p, currentFile, f, snap)

	for _, terr := range errs {
		if len(table.Lookup(terr.Msg)) == 0 || currentFile.NoLintComment(terr.Pos) {
			continue
		}

		path := tree.PathAt(terr.Pos)
		if path == nil {
			continue
		}

		found := r.enabled(table.Synthesize(ctx, snap, terr.Msg, path))

		r.Logger.LogAttrs(ctx, slog.LevelDebug, "Synthesized fixes",
			slog.String("error", terr.Msg), slog.Int("fixes", len(found)))

		reporter.Report(ctx, terr, found)
	}
}

// enabled filters fixes by the configured fix families.
func (r *Options) enabled(found []fixes.Fix) []fixes.Fix {
	out := found[:0]

	for _, fix := range found {
		var family config.FixFlags

		switch fix.Kind {
		case fixes.AddReturn:
			family = config.ReturnFixes

		case fixes.ConvertSwitch:
			family = config.SwitchFixes

		case fixes.AddThrows:
			continue

		default:
			family = config.InferFixes
		}

		if r.Fixes.Enabled(family) {
			out = append(out, fix)
		}
	}

	return out
}

// fileErrors returns the type errors located in currentFile.
func fileErrors(errs []types.Error, currentFile astutil.CurrentFile) []types.Error {
	var out []types.Error

	for _, err := range errs {
		if !currentFile.Contains(err.Pos) {
			continue
		}

		out = append(out, err)
	}

	return out
}
