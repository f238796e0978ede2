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

package expect

import (
	"context"
	"go/token"
	"log/slog"
	"runtime/trace"
	"slices"

	"fillmore-labs.com/fixfacts/internal/model"
	"fillmore-labs.com/fixfacts/internal/syntax"
	"fillmore-labs.com/fixfacts/internal/typedesc"
)

// Option configures [Infer].
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger receiving recovered internal errors.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func makeOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// InferAt infers the expected type and symbol kinds of the innermost node at pos in root.
func InferAt(ctx context.Context, snap model.Snapshot, root syntax.Node, pos token.Pos, opts ...Option) []Result {
	return Infer(ctx, snap, syntax.PathEnclosing(root, pos), opts...)
}

// Infer walks the ancestors of the error node path[0] and returns the plausible types and
// symbol kinds of a declaration resolving the error.
//
// Unresolvable input yields no results. Several results are returned for unqualified member
// names inside nested classes, one per enclosing class, innermost first.
func Infer(ctx context.Context, snap model.Snapshot, path syntax.Path, opts ...Option) (results []Result) {
	o := makeOptions(opts)

	defer func() {
		if r := recover(); r != nil {
			o.logger.LogAttrs(ctx, slog.LevelDebug, "Expected type inference failed",
				slog.Any("panic", r), slog.Int("depth", len(path)))

			results = nil
		}
	}()

	if len(path) == 0 || snap == nil {
		return nil
	}

	defer trace.StartRegion(ctx, "infer").End()

	w := walker{ctx: ctx, snap: snap}

	res, ok := w.walk(path)
	if !ok || res.Empty() {
		return nil
	}

	results = w.scopes(path, res)

	o.logger.LogAttrs(ctx, slog.LevelDebug, "Inferred expectation",
		slog.String("node", path[0].Category().String()), slog.Any("results", results))

	return results
}

type walker struct {
	ctx  context.Context //nolint:containedctx
	snap model.Snapshot
}

// walk visits the ancestors outward until a rule decides or the walk is bounded.
func (w *walker) walk(path syntax.Path) (Result, bool) {
	var (
		acc   accumulator
		errAt int // index of the current error node in path
	)

	for i := 1; i < len(path); i++ {
		if w.ctx.Err() != nil {
			return Result{}, false
		}

		anc, errNode := path[i:], path[errAt]

		c := w.classify(anc, errNode)
		acc.record(c)

		if c.continueUp {
			errAt = i

			continue
		}

		if c.matched {
			break
		}

		if anc[0].Category() != syntax.Paren && anc[0].Pos() < errNode.Pos() {
			break
		}
	}

	return Result{
		Types:  w.normalize(acc.resolve(w.snap.Denote)),
		Kinds:  acc.kinds,
		Scope:  acc.scope,
		Anchor: path,
	}, true
}

// scopes splits a result for unqualified names into one result per enclosing class.
func (w *walker) scopes(path syntax.Path, res Result) []Result {
	if res.Scope.Kind != typedesc.None {
		return []Result{res}
	}

	var classes []typedesc.Type

	for _, n := range path[1:] {
		if c, ok := n.(*syntax.ClassDeclNode); ok {
			if t := w.snap.TypeOf(c); t.Kind == typedesc.Declared {
				classes = append(classes, t)
			}
		}
	}

	if len(classes) == 0 {
		return []Result{res}
	}

	res.Scope = classes[0]
	results := []Result{res}

	members := res.Kinds.Intersect(Members)
	if members.Empty() {
		return results
	}

	for _, c := range classes[1:] {
		results = append(results, Result{Types: res.Types, Kinds: members, Scope: c, Anchor: res.Anchor})
	}

	return results
}

// normalize denotes the candidates, drops types no declaration can carry and removes duplicates.
func (w *walker) normalize(ts []typedesc.Type) []typedesc.Type {
	out := make([]typedesc.Type, 0, len(ts))

	for _, t := range ts {
		t = w.snap.Denote(t)

		switch t.Kind {
		case typedesc.Error, typedesc.None, typedesc.Other, typedesc.Package,
			typedesc.Executable, typedesc.Void:
			continue
		}

		if slices.ContainsFunc(out, func(o typedesc.Type) bool { return w.snap.SameType(o, t) }) {
			continue
		}

		out = append(out, t)
	}

	return out
}

// wrapFunc transforms the expected type of an ancestor into the expected type of its child.
type wrapFunc func(typedesc.Type) (typedesc.Type, bool)

type pending struct {
	t     typedesc.Type
	depth int // number of wraps recorded before t
}

type accumulator struct {
	kinds    KindSet
	scope    typedesc.Type
	kindsSet bool
	types    []pending
	wraps    []wrapFunc
}

func (a *accumulator) record(c classification) {
	if !a.kindsSet && !c.kinds.Empty() {
		a.kinds, a.scope, a.kindsSet = c.kinds, c.scope, true
	}

	for _, t := range c.types {
		a.types = append(a.types, pending{t: t, depth: len(a.wraps)})
	}

	if c.wrap != nil {
		a.wraps = append(a.wraps, c.wrap)
	}
}

// resolve denotes each candidate and applies the wraps recorded below it, outermost first.
func (a *accumulator) resolve(denote func(typedesc.Type) typedesc.Type) []typedesc.Type {
	ts := make([]typedesc.Type, 0, len(a.types))

outer:
	for _, p := range a.types {
		t := denote(p.t)
		if !t.Valid() {
			continue
		}

		for i := p.depth - 1; i >= 0; i-- {
			var ok bool
			if t, ok = a.wraps[i](t); !ok {
				continue outer
			}
		}

		ts = append(ts, t)
	}

	return ts
}
