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

// Package completion decides whether statements can complete normally, that is fall through to
// the code following them instead of definitely leaving through return, throw, break or
// continue.
package completion

import (
	"context"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/fixfacts/internal/model"
	"fillmore-labs.com/fixfacts/internal/syntax"
	"fillmore-labs.com/fixfacts/internal/typedesc"
)

// CompletesNormally reports whether root, a statement, block, method or case, can complete
// normally.
//
// Loops that test their condition first may run zero times and are assumed to complete.
// Constructs without a dedicated rule are assumed not to complete, as is any root whose
// analysis fails.
func CompletesNormally(ctx context.Context, snap model.Snapshot, root syntax.Node, opts ...Option) bool {
	return analyze(ctx, snap, root, false, makeOptions(opts))
}

// ExitsFromAllBranches reports whether every path through root leaves it abnormally. Unlike
// [CompletesNormally] a loop with a constant true condition and no break counts as an exit.
func ExitsFromAllBranches(ctx context.Context, snap model.Snapshot, root syntax.Node, opts ...Option) bool {
	o := makeOptions(opts)

	return !analyze(ctx, snap, root, true, o) && !o.failed
}

func analyze(ctx context.Context, snap model.Snapshot, root syntax.Node, strict bool, o *options) (completes bool) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.LogAttrs(ctx, slog.LevelDebug, "Completion analysis failed",
				slog.Any("panic", r), slog.Bool("strict", strict))

			completes, o.failed = false, true
		}
	}()

	if root == nil || snap == nil {
		o.failed = true

		return false
	}

	defer trace.StartRegion(ctx, "completion").End()

	v := visitor{ctx: ctx, snap: snap, options: o, strict: strict}

	res := v.root(root)
	if ctx.Err() != nil {
		o.failed = true

		return false
	}

	return res.normal
}

// Caught reports whether a throw of thrown at the innermost node of path is caught by an
// enclosing try statement of the same method.
func Caught(snap model.Snapshot, path syntax.Path, thrown typedesc.Type) bool {
	if !thrown.Valid() {
		return false
	}

	for i := 1; i < len(path); i++ {
		switch n := path[i].(type) {
		case *syntax.TryNode:
			if path[i-1] != n.Body {
				continue
			}

			if catchOf(snap, newFrame(snap, n), thrown) != nil {
				return true
			}

		case *syntax.MethodDeclNode, *syntax.LambdaNode, *syntax.ClassDeclNode:
			return false
		}
	}

	return false
}

// frame describes the catch clauses of a try statement enclosing the visited statements.
type frame struct {
	catches []*syntax.CatchNode
	types   [][]typedesc.Type // caught types per clause, more than one for a multi-catch
}

func newFrame(snap model.Snapshot, n *syntax.TryNode) frame {
	f := frame{catches: n.Catches, types: make([][]typedesc.Type, len(n.Catches))}

	for i, c := range n.Catches {
		for _, t := range c.Types {
			f.types[i] = append(f.types[i], snap.TypeOf(t))
		}
	}

	return f
}

// catchOf returns the first clause of f catching thrown, or nil.
func catchOf(snap model.Snapshot, f frame, thrown typedesc.Type) *syntax.CatchNode {
	for i, alts := range f.types {
		for _, t := range alts {
			if t.Valid() && snap.IsSubtype(thrown, t) {
				return f.catches[i]
			}
		}
	}

	return nil
}
