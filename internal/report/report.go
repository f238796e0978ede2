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

// Package report turns synthesized fixes into diagnostics with suggested text edits.
package report

import (
	"context"
	"fmt"
	"go/token"
	"go/types"
	"runtime/trace"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/fixfacts/internal/astutil"
	"fillmore-labs.com/fixfacts/internal/fixes"
	"fillmore-labs.com/fixfacts/internal/golang"
	"fillmore-labs.com/fixfacts/internal/typedesc"
)

// Reporter emits diagnostics for the type errors of one file.
type Reporter struct {
	p           *analysis.Pass
	currentFile astutil.CurrentFile
	file        inspector.Cursor
	snap        *golang.Snapshot

	// declared remembers inserted declarations by name and enclosing block.
	declared map[declaration]struct{}
}

type declaration struct {
	name  string
	block token.Pos
}

// New creates a [Reporter] for file, lowered into snap.
func New(p *analysis.Pass, currentFile astutil.CurrentFile, file inspector.Cursor, snap *golang.Snapshot) *Reporter {
	return &Reporter{
		p:           p,
		currentFile: currentFile,
		file:        file,
		snap:        snap,
		declared:    make(map[declaration]struct{}),
	}
}

// Report emits a diagnostic for the type error terr when found contains fixes for it.
func (r *Reporter) Report(ctx context.Context, terr types.Error, found []fixes.Fix) {
	if len(found) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	var creates []fixes.Fix

	ret, sw := -1, -1

	for i, fix := range found {
		switch fix.Kind {
		case fixes.AddReturn:
			ret = i

		case fixes.ConvertSwitch:
			sw = i

		case fixes.CreateLocal, fixes.CreateField, fixes.CreateParameter, fixes.CreateClass, fixes.CreateMethod:
			creates = append(creates, fix)
		}
	}

	switch {
	case len(creates) > 0:
		r.undefined(terr.Pos, creates)

	case sw >= 0:
		r.missingDefault(terr.Pos, found[sw])

	case ret >= 0:
		r.missingReturn(terr.Pos, found[ret])
	}
}

// undefined reports the declarations resolving an undefined name.
func (r *Reporter) undefined(pos token.Pos, creates []fixes.Fix) {
	name := creates[0].Name

	var nouns []string
	for _, fix := range creates {
		if n := noun(fix.Kind); !slices.Contains(nouns, n) {
			nouns = append(nouns, n)
		}
	}

	typeNames := make([]string, 0, len(creates[0].Types))
	for _, t := range creates[0].Types {
		typeNames = append(typeNames, r.typeString(t))
	}

	var msg strings.Builder

	fmt.Fprintf(&msg, "Undefined '%s' can be declared as %s", name, alternatives(nouns, false))

	if len(typeNames) > 0 {
		fmt.Fprintf(&msg, " of type %s", alternatives(typeNames, true))
	}

	msg.WriteString(" (ff:inf)") // ignore error

	diagnostic := analysis.Diagnostic{
		Pos:     pos,
		End:     pos + token.Pos(len(name)),
		Message: msg.String(),
	}

	if i := slices.IndexFunc(creates, func(f fixes.Fix) bool { return f.Kind == fixes.CreateLocal }); i >= 0 {
		if edits := r.declareLocal(pos, creates[i]); len(edits) > 0 {
			diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
				Message:   fmt.Sprintf("Declare local variable '%s'", name),
				TextEdits: edits,
			}}
		}
	}

	r.p.Report(diagnostic)
}

// missingReturn reports a function body that can complete normally.
func (r *Reporter) missingReturn(pos token.Pos, fix fixes.Fix) {
	diagnostic := analysis.Diagnostic{
		Pos:     pos,
		Message: "Function body can complete normally (ff:ret)",
	}

	if edits := r.addReturn(fix); len(edits) > 0 {
		diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: "Return zero values", TextEdits: edits}}
	}

	r.p.Report(diagnostic)
}

// missingDefault reports a final switch whose cases all exit but lacks a default case.
func (r *Reporter) missingDefault(pos token.Pos, fix fixes.Fix) {
	diagnostic := analysis.Diagnostic{
		Pos:     pos,
		Message: "Final switch statement has no default case (ff:sw)",
	}

	if n := r.snap.Tree().AST(fix.Anchor.Node()); n != nil {
		diagnostic.Related = []analysis.RelatedInformation{{Pos: n.Pos(), Message: "This switch statement"}}
	}

	if edits := r.addDefault(fix); len(edits) > 0 {
		diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: "Add default case", TextEdits: edits}}
	}

	r.p.Report(diagnostic)
}

func (r *Reporter) typeString(t typedesc.Type) string {
	if s, ok := r.snap.TypeString(t); ok {
		return s
	}

	return t.String()
}

func (r *Reporter) qualifier(pkg *types.Package) string {
	if pkg == r.p.Pkg {
		return ""
	}

	return pkg.Name()
}

func noun(k fixes.Kind) string {
	switch k {
	case fixes.CreateLocal:
		return "local variable"

	case fixes.CreateField:
		return "field"

	case fixes.CreateParameter:
		return "parameter"

	case fixes.CreateMethod:
		return "function"

	default:
		return "type"
	}
}

// alternatives formats a list of names into a human-readable string (e.g., "'a', 'b' or 'c'").
func alternatives(names []string, quote bool) string {
	var all strings.Builder

	for i, name := range names {
		if i > 0 {
			var separator string
			if i == len(names)-1 {
				separator = " or "
			} else {
				separator = ", "
			}

			all.WriteString(separator) // ignore error
		}

		if quote {
			all.WriteByte('\'') // ignore error
		}

		all.WriteString(name) // ignore error

		if quote {
			all.WriteByte('\'') // ignore error
		}
	}

	return all.String()
}
