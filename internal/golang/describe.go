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
	"go/types"

	"fillmore-labs.com/fixfacts/internal/reachability/tracker"
	"fillmore-labs.com/fixfacts/internal/typedesc"
)

// describe converts a go/types type. Named types keep their symbol identity, slices become
// arrays, all other composite types are declared types without symbol printed by the type
// checker. Function types stay denotable; [Snapshot.signature] converts them to executables.
func (s *Snapshot) describe(t types.Type) typedesc.Type {
	switch t := types.Unalias(t).(type) {
	case nil:
		return typedesc.Type{}

	case *types.Basic:
		switch {
		case t.Kind() == types.Invalid:
			return typedesc.Type{Kind: typedesc.Error, Handle: t}

		case t.Kind() == types.UntypedNil:
			return typedesc.Type{Kind: typedesc.Other, Name: t.Name(), Handle: t}

		default:
			return typedesc.MakePrimitive(t.Name(), t)
		}

	case *types.Named:
		args := make([]typedesc.Type, 0, t.TypeArgs().Len())
		for a := range t.TypeArgs().Types() {
			args = append(args, s.describe(a))
		}

		return typedesc.MakeDeclared(s.symbol(t.Obj()), t, args...)

	case *types.TypeParam:
		bound := s.describe(t.Constraint())

		return typedesc.Type{Kind: typedesc.TypeVariable, Name: t.Obj().Name(), Elem: &bound, Handle: t}

	case *types.Slice:
		return typedesc.MakeArray(s.describe(t.Elem()), t)

	case *types.Tuple:
		parts := make([]typedesc.Type, 0, t.Len())
		for v := range t.Variables() {
			parts = append(parts, s.describe(v.Type()))
		}

		return typedesc.Type{Kind: typedesc.Other, Args: parts, Handle: t}

	default:
		return typedesc.Type{Kind: typedesc.Declared, Name: types.TypeString(t, s.qualifier), Handle: t}
	}
}

// signature converts a function type to an executable.
func (s *Snapshot) signature(sig *types.Signature) typedesc.Type {
	params := make([]typedesc.Type, 0, sig.Params().Len())
	for v := range sig.Params().Variables() {
		params = append(params, s.describe(v.Type()))
	}

	results := make([]typedesc.Type, 0, sig.Results().Len())
	for v := range sig.Results().Variables() {
		results = append(results, s.describe(v.Type()))
	}

	return typedesc.MakeExecutable(params, results, sig.Variadic(), sig)
}

// handle returns the go/types type of a descriptor created by this package.
func handle(t typedesc.Type) (types.Type, bool) {
	h, ok := t.Handle.(types.Type)

	return h, ok && h != nil
}

func (s *Snapshot) qualifier(p *types.Package) string {
	if p == s.pkg {
		return ""
	}

	return p.Name()
}

// symbol returns the unique symbol of obj.
func (s *Snapshot) symbol(obj types.Object) *typedesc.Symbol {
	if obj == nil {
		return nil
	}

	if tn, ok := obj.(*types.TypeName); ok && tn.IsAlias() {
		if n, ok := types.Unalias(tn.Type()).(*types.Named); ok {
			obj = n.Obj()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sym, ok := s.symbols[obj]; ok {
		return sym
	}

	sym := newSymbol(obj)
	s.symbols[obj] = sym

	return sym
}

func newSymbol(obj types.Object) *typedesc.Symbol {
	var path string
	if p := obj.Pkg(); p != nil {
		path = p.Path()
	}

	switch o := obj.(type) {
	case *types.PkgName:
		return &typedesc.Symbol{Kind: typedesc.PackageSymbol, Name: o.Imported().Path()}

	case *types.TypeName:
		return &typedesc.Symbol{Kind: typedesc.TypeSymbol, Name: o.Name(), Pkg: path}

	case *types.Var:
		return &typedesc.Symbol{Kind: typedesc.VariableSymbol, Name: o.Name(), Pkg: path}

	case *types.Const:
		return &typedesc.Symbol{Kind: typedesc.VariableSymbol, Name: o.Name(), Pkg: path}

	case *types.Func:
		return tracker.SymbolOf(tracker.FuncNameOf(o))

	case *types.Builtin:
		return &typedesc.Symbol{Kind: typedesc.BuiltinSymbol, Name: o.Name()}

	default:
		return &typedesc.Symbol{Kind: typedesc.UnknownSymbol, Name: obj.Name(), Pkg: path}
	}
}
