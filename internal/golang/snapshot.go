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

package golang

import (
	"go/ast"
	"go/types"
	"slices"
	"sync"

	"fillmore-labs.com/fixfacts/internal/model"
	"fillmore-labs.com/fixfacts/internal/syntax"
	"fillmore-labs.com/fixfacts/internal/typedesc"
)

// Snapshot answers semantic queries about a lowered file from type checker results.
type Snapshot struct {
	tree *Tree
	pkg  *types.Package
	info *types.Info

	mu      sync.Mutex
	symbols map[types.Object]*typedesc.Symbol
}

var _ model.Snapshot = (*Snapshot)(nil)

// NewSnapshot creates a snapshot of tree, lowered from a file of pkg.
func NewSnapshot(tree *Tree, pkg *types.Package, info *types.Info) *Snapshot {
	return &Snapshot{
		tree:    tree,
		pkg:     pkg,
		info:    info,
		symbols: make(map[types.Object]*typedesc.Symbol),
	}
}

// Tree returns the lowered file.
func (s *Snapshot) Tree() *Tree { return s.tree }

// Describe converts a type of the analyzed package.
func (s *Snapshot) Describe(t types.Type) typedesc.Type { return s.describe(t) }

// TypeString prints t relative to the analyzed package, or returns false for types created
// elsewhere.
func (s *Snapshot) TypeString(t typedesc.Type) (string, bool) {
	h, ok := handle(t)
	if !ok {
		return "", false
	}

	return types.TypeString(h, s.qualifier), true
}

func (s *Snapshot) TypeOf(n syntax.Node) typedesc.Type {
	if id, ok := s.tree.Ident(n); ok {
		obj := s.info.Defs[id]
		if obj == nil {
			return typedesc.Type{}
		}

		if f, ok := obj.(*types.Func); ok {
			return s.signature(f.Signature())
		}

		return s.describe(obj.Type())
	}

	e, ok := s.tree.AST(n).(ast.Expr)
	if !ok {
		return typedesc.Type{}
	}

	return s.describe(s.info.TypeOf(e))
}

func (s *Snapshot) SymbolOf(n syntax.Node) *typedesc.Symbol {
	if id, ok := s.tree.Ident(n); ok {
		return s.symbol(s.info.Defs[id])
	}

	switch a := s.tree.AST(n).(type) {
	case *ast.Ident:
		return s.symbol(s.info.ObjectOf(a))

	case *ast.SelectorExpr:
		return s.symbol(s.info.ObjectOf(a.Sel))

	default:
		return nil
	}
}

func (s *Snapshot) SameType(a, b typedesc.Type) bool {
	ha, ok1 := handle(a)
	hb, ok2 := handle(b)

	return ok1 && ok2 && types.Identical(ha, hb)
}

func (s *Snapshot) IsSubtype(sub, super typedesc.Type) bool {
	hs, ok1 := handle(sub)
	hp, ok2 := handle(super)

	if !ok1 || !ok2 {
		return false
	}

	if types.Identical(hs, hp) {
		return true
	}

	iface, ok := hp.Underlying().(*types.Interface)

	return ok && types.Implements(hs, iface)
}

func (s *Snapshot) IsCastable(from, to typedesc.Type) bool {
	hf, ok1 := handle(from)
	ht, ok2 := handle(to)

	return ok1 && ok2 && types.ConvertibleTo(hf, ht)
}

func (s *Snapshot) IsAssignable(from, to typedesc.Type) bool {
	hf, ok1 := handle(from)
	ht, ok2 := handle(to)

	return ok1 && ok2 && types.AssignableTo(hf, ht)
}

func (s *Snapshot) Erase(t typedesc.Type) typedesc.Type {
	if n, ok := t.Handle.(*types.Named); ok {
		return s.describe(n.Origin())
	}

	return t
}

// Denote gives untyped constants their default type.
func (s *Snapshot) Denote(t typedesc.Type) typedesc.Type {
	b, ok := t.Handle.(*types.Basic)
	if !ok || b.Info()&types.IsUntyped == 0 {
		return t
	}

	return s.describe(types.Default(b))
}

// Lookup maps the core types to bool, int, any, string and error. Go has no iterable interface.
func (s *Snapshot) Lookup(w model.WellKnown) (typedesc.Type, bool) {
	var t types.Type

	switch w {
	case model.Boolean:
		t = types.Typ[types.Bool]

	case model.Int:
		t = types.Typ[types.Int]

	case model.String:
		t = types.Typ[types.String]

	case model.Object:
		t = types.Universe.Lookup("any").Type()

	case model.Throwable:
		t = types.Universe.Lookup("error").Type()

	default:
		return typedesc.Type{}, false
	}

	return s.describe(t), true
}

func (s *Snapshot) ArrayOf(elem typedesc.Type) (typedesc.Type, bool) {
	h, ok := handle(elem)
	if !ok {
		return typedesc.Type{}, false
	}

	return s.describe(types.NewSlice(h)), true
}

func (s *Snapshot) Parameterize(generic typedesc.Type, args ...typedesc.Type) (typedesc.Type, bool) {
	n, ok := generic.Handle.(*types.Named)
	if !ok || n.TypeParams().Len() != len(args) {
		return typedesc.Type{}, false
	}

	targs := make([]types.Type, 0, len(args))

	for _, a := range args {
		h, ok := handle(a)
		if !ok {
			return typedesc.Type{}, false
		}

		targs = append(targs, h)
	}

	inst, err := types.Instantiate(nil, n.Origin(), targs, true)
	if err != nil {
		return typedesc.Type{}, false
	}

	return s.describe(inst), true
}

// Overloads returns the single signature of the called function. Composite literals of struct
// type without keys are treated as a constructor taking all fields in order.
func (s *Snapshot) Overloads(call syntax.Node) []typedesc.Type {
	switch a := s.tree.AST(call).(type) {
	case *ast.CallExpr:
		t := s.info.TypeOf(a.Fun)
		if t == nil {
			return nil
		}

		if sig, ok := t.Underlying().(*types.Signature); ok {
			return []typedesc.Type{s.signature(sig)}
		}

	case *ast.CompositeLit:
		t := s.info.TypeOf(a)
		if t == nil {
			return nil
		}

		st, ok := t.Underlying().(*types.Struct)
		if !ok || slices.ContainsFunc(a.Elts, func(e ast.Expr) bool { _, ok := e.(*ast.KeyValueExpr); return ok }) {
			return nil
		}

		fields := make([]typedesc.Type, 0, st.NumFields())
		for f := range st.Fields() {
			fields = append(fields, s.describe(f.Type()))
		}

		return []typedesc.Type{typedesc.MakeExecutable(fields, []typedesc.Type{s.describe(t)}, false, nil)}
	}

	return nil
}

// FunctionalMethod returns the signature of a function type or of the single method of an
// interface.
func (s *Snapshot) FunctionalMethod(t typedesc.Type) (typedesc.Type, bool) {
	if t.Kind == typedesc.Executable {
		return t, true
	}

	h, ok := handle(t)
	if !ok {
		return typedesc.Type{}, false
	}

	switch u := h.Underlying().(type) {
	case *types.Signature:
		return s.signature(u), true

	case *types.Interface:
		if u.NumMethods() != 1 {
			return typedesc.Type{}, false
		}

		return s.signature(u.Method(0).Signature()), true

	default:
		return typedesc.Type{}, false
	}
}

// EnumConstants returns the package-level constants of a named basic type in declaration order.
func (s *Snapshot) EnumConstants(t typedesc.Type) ([]string, bool) {
	n, ok := t.Handle.(*types.Named)
	if !ok || n.Obj().Pkg() == nil {
		return nil, false
	}

	if _, ok := n.Underlying().(*types.Basic); !ok {
		return nil, false
	}

	var consts []*types.Const

	scope := n.Obj().Pkg().Scope()
	for _, name := range scope.Names() {
		if c, ok := scope.Lookup(name).(*types.Const); ok && types.Identical(c.Type(), n) {
			consts = append(consts, c)
		}
	}

	if len(consts) == 0 {
		return nil, false
	}

	slices.SortFunc(consts, func(a, b *types.Const) int { return int(a.Pos() - b.Pos()) })

	names := make([]string, 0, len(consts))
	for _, c := range consts {
		names = append(names, c.Name())
	}

	return names, true
}
