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

package fixes

import (
	"context"
	"slices"

	"fillmore-labs.com/fixfacts/internal/completion"
	"fillmore-labs.com/fixfacts/internal/expect"
	"fillmore-labs.com/fixfacts/internal/model"
	"fillmore-labs.com/fixfacts/internal/syntax"
	"fillmore-labs.com/fixfacts/internal/typedesc"
)

// CreateElement proposes declarations for an unresolved name, one per admissible symbol kind.
// Names without a symbol-kind restriction become local variables.
func CreateElement(ctx context.Context, snap model.Snapshot, path syntax.Path) []Fix {
	name, ok := unresolvedName(path)
	if !ok {
		return nil
	}

	var fixes []Fix

	for _, r := range expect.Infer(ctx, snap, path) {
		kinds := createKinds(r.Kinds)
		if len(kinds) == 0 && path.Node().Category() == syntax.Ident {
			kinds = []Kind{CreateLocal}
		}

		for _, k := range kinds {
			fixes = append(fixes, Fix{Kind: k, Name: name, Types: r.Types, Scope: r.Scope, Anchor: r.Anchor})
		}
	}

	return fixes
}

func unresolvedName(path syntax.Path) (string, bool) {
	switch n := path.Node().(type) {
	case *syntax.IdentNode:
		return n.Name, true

	case *syntax.TypeExprNode:
		return n.Name, true

	default:
		return "", false
	}
}

// createKinds maps symbol kinds to fix kinds, keeping the order of the kinds.
func createKinds(s expect.KindSet) []Kind {
	var kinds []Kind

	add := func(k Kind) {
		if !slices.Contains(kinds, k) {
			kinds = append(kinds, k)
		}
	}

	for k := range s.All() {
		switch k {
		case expect.LocalVariable, expect.ResourceVariable, expect.ForInitVariable:
			add(CreateLocal)

		case expect.Field:
			add(CreateField)

		case expect.Parameter:
			add(CreateParameter)

		case expect.Method:
			add(CreateMethod)

		default:
			add(CreateClass)
		}
	}

	return kinds
}

// Returns holds the rules derived from completion analysis.
type Returns struct {
	Options []completion.Option
}

var methodLevel = Returns{Options: []completion.Option{completion.WithMethodLevel(true)}}

var (
	// AddMissingReturn is [Returns.AddMissingReturn] where calls that never return count as exits.
	AddMissingReturn Rule = methodLevel.AddMissingReturn

	// CompleteSwitch is [Returns.CompleteSwitch] where calls that never return count as exits.
	CompleteSwitch Rule = methodLevel.CompleteSwitch
)

// AddMissingReturn proposes a return statement at the end of the method or lambda enclosing
// path when its body can complete normally.
func (r Returns) AddMissingReturn(ctx context.Context, snap model.Snapshot, path syntax.Path) []Fix {
	fn := function(path)
	if fn == nil {
		return nil
	}

	body, results, ok := bodyOf(snap, fn.Node())
	if !ok || !completion.CompletesNormally(ctx, snap, body, r.Options...) {
		return nil
	}

	return []Fix{{Kind: AddReturn, Types: results, Anchor: fn}}
}

// CompleteSwitch proposes a default case for a final switch without one that cannot complete
// once every value is covered: no case completes into the end of the switch and no break leaves it.
func (r Returns) CompleteSwitch(ctx context.Context, snap model.Snapshot, path syntax.Path) []Fix {
	fn := function(path)
	if fn == nil {
		return nil
	}

	body, _, ok := bodyOf(snap, fn.Node())
	if !ok || len(body.List) == 0 {
		return nil
	}

	sw, ok := body.List[len(body.List)-1].(*syntax.SwitchNode)
	if !ok || sw.Exhaustive || len(sw.Cases) == 0 {
		return nil
	}

	for _, c := range sw.Cases {
		if c.Labels == nil {
			return nil
		}
	}

	// With a default case every value is covered; the switch must still not complete.
	covered := *sw
	covered.Exhaustive = true

	if completion.CompletesNormally(ctx, snap, &covered, r.Options...) {
		return nil
	}

	return []Fix{{Kind: ConvertSwitch, Anchor: syntax.PathTo(fn.Node(), sw)}}
}

// DeclareThrows proposes declaring the exception thrown at path when no enclosing try catches it.
func DeclareThrows(_ context.Context, snap model.Snapshot, path syntax.Path) []Fix {
	var thrown typedesc.Type

	for _, n := range path {
		if t, ok := n.(*syntax.ThrowNode); ok {
			thrown = snap.TypeOf(t.X)

			break
		}
	}

	if !thrown.Valid() || completion.Caught(snap, path, thrown) {
		return nil
	}

	fn := syntax.Enclosing(path, syntax.MethodDecl)
	if fn == nil {
		return nil
	}

	return []Fix{{Kind: AddThrows, Types: []typedesc.Type{thrown}, Anchor: fn}}
}

// function returns the path of the innermost method or lambda containing path, which may be
// the innermost node itself.
func function(path syntax.Path) syntax.Path {
	if len(path) == 0 {
		return nil
	}

	switch path.Node().Category() {
	case syntax.MethodDecl, syntax.Lambda:
		return path
	}

	return syntax.Enclosing(path, syntax.MethodDecl, syntax.Lambda)
}

// bodyOf returns the block body and the result types of a method or lambda.
func bodyOf(snap model.Snapshot, fn syntax.Node) (*syntax.BlockNode, []typedesc.Type, bool) {
	var body *syntax.BlockNode

	switch fn := fn.(type) {
	case *syntax.MethodDeclNode:
		body = fn.Body

	case *syntax.LambdaNode:
		body, _ = fn.Body.(*syntax.BlockNode)
	}

	if body == nil {
		return nil, nil, false
	}

	sig := snap.TypeOf(fn)
	if sig.Kind != typedesc.Executable {
		var ok bool
		if sig, ok = snap.FunctionalMethod(sig); !ok {
			return body, nil, true
		}
	}

	return body, sig.Results, true
}
