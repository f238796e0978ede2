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
	"errors"
	"fmt"
	"go/token"

	"github.com/spf13/cobra"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/checker"
	"golang.org/x/tools/go/packages"

	"fillmore-labs.com/fixfacts/analyzer"
)

// ErrDiagnostics is returned by the check command when diagnostics were reported.
var ErrDiagnostics = errors.New("diagnostics reported")

func newCheckCmd(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "check [packages]",
		Short: "Run the fixfacts analyzer over packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}

			records, err := a.check(cmd, dir, args)
			if err != nil {
				return err
			}

			if err := emit(a.output(cmd.OutOrStdout()), records, writeDiagnostic); err != nil {
				return err
			}

			if len(records) > 0 {
				return fmt.Errorf("%w: %d", ErrDiagnostics, len(records))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", "", "load packages relative to this directory")

	return cmd
}

// check analyzes the packages matching patterns and collects the diagnostics of the root packages.
func (a *app) check(cmd *cobra.Command, dir string, patterns []string) ([]diagnosticRecord, error) {
	cfg := &packages.Config{
		Context: cmd.Context(),
		Dir:     dir,
		Mode:    loadMode,
		Tests:   true,
		Logf:    func(format string, args ...any) { a.logger.Debug(fmt.Sprintf(format, args...)) },
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("packages.Load failed: %w", err)
	}

	s := a.settings
	an := analyzer.New(
		analyzer.WithInfer(s.Fixes.Infer),
		analyzer.WithReturns(s.Fixes.Returns),
		analyzer.WithSwitches(s.Fixes.Switches),
		analyzer.WithGenerated(s.Generated),
		analyzer.WithMethodLevel(s.MethodLevel),
		analyzer.WithLogger(a.logger),
	)

	graph, err := checker.Analyze([]*analysis.Analyzer{an}, pkgs, &checker.Options{})
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	records := []diagnosticRecord{}
	seen := make(map[diagnosticKey]struct{})

	for _, act := range graph.Roots {
		if act.Err != nil {
			a.logger.Warn("Analysis failed", "package", act.Package.PkgPath, "error", act.Err)

			continue
		}

		for _, d := range act.Diagnostics {
			pos := act.Package.Fset.Position(d.Pos)

			// test variants of a package report the same diagnostics
			key := diagnosticKey{pos, d.Message}
			if _, ok := seen[key]; ok {
				continue
			}

			seen[key] = struct{}{}

			rec := diagnosticRecord{Position: pos.String(), Message: d.Message}
			for _, fix := range d.SuggestedFixes {
				rec.Fixes = append(rec.Fixes, fix.Message)
			}

			records = append(records, rec)
		}
	}

	return records, nil
}

type diagnosticKey struct {
	pos     token.Position
	message string
}
