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

// Package modeltest provides an in-memory [model.Snapshot] for tests.
package modeltest

import (
	"slices"
	"strings"

	"fillmore-labs.com/fixfacts/internal/model"
	"fillmore-labs.com/fixfacts/internal/syntax"
	"fillmore-labs.com/fixfacts/internal/typedesc"
)

// Model is a table-driven [model.Snapshot]. Configure it before use; it is not safe to modify
// concurrently with queries.
type Model struct {
	types      map[syntax.Node]typedesc.Type
	symbols    map[syntax.Node]*typedesc.Symbol
	overloads  map[syntax.Node][]typedesc.Type
	classes    map[string]typedesc.Type
	prims      map[string]typedesc.Type
	supers     map[*typedesc.Symbol][]typedesc.Type
	functional map[*typedesc.Symbol]typedesc.Type
	enums      map[*typedesc.Symbol][]string
	missing    map[model.WellKnown]bool
}

var _ model.Snapshot = (*Model)(nil)

// New returns a model knowing the primitive types and a handful of core classes.
func New() *Model {
	m := &Model{
		types:      make(map[syntax.Node]typedesc.Type),
		symbols:    make(map[syntax.Node]*typedesc.Symbol),
		overloads:  make(map[syntax.Node][]typedesc.Type),
		classes:    make(map[string]typedesc.Type),
		prims:      make(map[string]typedesc.Type),
		supers:     make(map[*typedesc.Symbol][]typedesc.Type),
		functional: make(map[*typedesc.Symbol]typedesc.Type),
		enums:      make(map[*typedesc.Symbol][]string),
		missing:    make(map[model.WellKnown]bool),
	}

	for _, p := range []string{"boolean", "byte", "short", "char", "int", "long", "float", "double"} {
		m.prims[p] = typedesc.MakePrimitive(p, nil)
	}

	object := m.Class("java.lang.Object")
	m.Class("java.lang.String", object)
	m.Class("java.lang.Iterable", object)
	throwable := m.Class("java.lang.Throwable", object)
	exception := m.Class("java.lang.Exception", throwable)
	m.Class("java.lang.RuntimeException", exception)

	return m
}

// Prim returns the primitive type with the given name.
func (m *Model) Prim(name string) typedesc.Type {
	t, ok := m.prims[name]
	if !ok {
		panic("unknown primitive " + name)
	}

	return t
}

// Class returns the class with the qualified name, declaring it with the given supertypes on
// first use.
func (m *Model) Class(qualified string, supers ...typedesc.Type) typedesc.Type {
	if t, ok := m.classes[qualified]; ok {
		return t
	}

	pkg, name := "", qualified
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		pkg, name = qualified[:i], qualified[i+1:]
	}

	t := typedesc.MakeDeclared(&typedesc.Symbol{Kind: typedesc.TypeSymbol, Name: name, Pkg: pkg}, nil)
	m.classes[qualified] = t

	if len(supers) == 0 && qualified != "java.lang.Object" {
		supers = []typedesc.Type{m.Class("java.lang.Object")}
	}

	m.supers[t.Symbol] = supers

	return t
}

// Enum declares an enumeration class with the given constants.
func (m *Model) Enum(qualified string, constants ...string) typedesc.Type {
	t := m.Class(qualified)
	m.enums[t.Symbol] = constants

	return t
}

// Functional declares a functional interface whose single abstract method has signature sam.
func (m *Model) Functional(qualified string, sam typedesc.Type) typedesc.Type {
	t := m.Class(qualified)
	m.functional[t.Symbol] = sam

	return t
}

// Generic returns the instantiation of a declared type.
func (m *Model) Generic(generic typedesc.Type, args ...typedesc.Type) typedesc.Type {
	return typedesc.MakeDeclared(generic.Symbol, nil, args...)
}

// Array returns the array type of elem.
func (*Model) Array(elem typedesc.Type) typedesc.Type {
	return typedesc.MakeArray(elem, nil)
}

// Package returns a package descriptor.
func (*Model) Package(path string) typedesc.Type {
	return typedesc.Type{Kind: typedesc.Package, Symbol: &typedesc.Symbol{Kind: typedesc.PackageSymbol, Name: path}}
}

// Sig returns a signature.
func (*Model) Sig(params []typedesc.Type, results ...typedesc.Type) typedesc.Type {
	return typedesc.MakeExecutable(params, results, false, nil)
}

// Variadic returns a signature whose last parameter is an array accepting any number of arguments.
func (m *Model) Variadic(params []typedesc.Type, results ...typedesc.Type) typedesc.Type {
	return typedesc.MakeExecutable(params, results, true, nil)
}

// SetType records the type of n.
func (m *Model) SetType(n syntax.Node, t typedesc.Type) *Model {
	m.types[n] = t

	return m
}

// SetSymbol records the symbol n refers to.
func (m *Model) SetSymbol(n syntax.Node, s *typedesc.Symbol) *Model {
	m.symbols[n] = s

	return m
}

// Overload records the candidate signatures of a call.
func (m *Model) Overload(call syntax.Node, sigs ...typedesc.Type) *Model {
	m.overloads[call] = append(m.overloads[call], sigs...)

	return m
}

// Without removes a core library type, simulating a broken environment.
func (m *Model) Without(w model.WellKnown) *Model {
	m.missing[w] = true

	return m
}

func (m *Model) TypeOf(n syntax.Node) typedesc.Type { return m.types[n] }

func (m *Model) SymbolOf(n syntax.Node) *typedesc.Symbol { return m.symbols[n] }

func (m *Model) SameType(a, b typedesc.Type) bool {
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case typedesc.Primitive, typedesc.TypeVariable:
		return a.Name == b.Name

	case typedesc.Declared, typedesc.Package:
		return a.Symbol == b.Symbol && slices.EqualFunc(a.Args, b.Args, m.SameType)

	case typedesc.Array, typedesc.Wildcard:
		return a.Elem == nil && b.Elem == nil || a.Elem != nil && b.Elem != nil && m.SameType(*a.Elem, *b.Elem)

	case typedesc.Executable:
		return a.Variadic == b.Variadic &&
			slices.EqualFunc(a.Args, b.Args, m.SameType) &&
			slices.EqualFunc(a.Results, b.Results, m.SameType)

	case typedesc.Void, typedesc.None:
		return true

	default:
		return false
	}
}

var widening = map[string][]string{
	"byte":  {"short", "int", "long", "float", "double"},
	"short": {"int", "long", "float", "double"},
	"char":  {"int", "long", "float", "double"},
	"int":   {"long", "float", "double"},
	"long":  {"float", "double"},
	"float": {"double"},
}

func (m *Model) IsSubtype(sub, super typedesc.Type) bool {
	if m.SameType(sub, super) {
		return true
	}

	switch sub.Kind {
	case typedesc.Primitive:
		return super.Kind == typedesc.Primitive && slices.Contains(widening[sub.Name], super.Name)

	case typedesc.Array:
		return super.Kind == typedesc.Declared && super.Symbol == m.Class("java.lang.Object").Symbol

	case typedesc.Declared:
		if super.Kind != typedesc.Declared {
			return false
		}

		if sub.Symbol == super.Symbol {
			return len(super.Args) == 0 // raw supertype
		}

		for _, s := range m.supers[sub.Symbol] {
			if m.IsSubtype(s, super) {
				return true
			}
		}

		return false

	default:
		return false
	}
}

func (m *Model) IsCastable(from, to typedesc.Type) bool {
	return m.IsSubtype(from, to) || m.IsSubtype(to, from)
}

func (m *Model) IsAssignable(from, to typedesc.Type) bool {
	return m.IsSubtype(from, to)
}

func (*Model) Erase(t typedesc.Type) typedesc.Type {
	if t.Kind == typedesc.Declared {
		t.Args = nil
	}

	return t
}

func (m *Model) Denote(t typedesc.Type) typedesc.Type {
	if t.Kind == typedesc.Wildcard {
		if t.Elem != nil {
			return *t.Elem
		}

		return m.Class("java.lang.Object")
	}

	return t
}

func (m *Model) Lookup(w model.WellKnown) (typedesc.Type, bool) {
	if m.missing[w] {
		return typedesc.Type{}, false
	}

	switch w {
	case model.Boolean:
		return m.Prim("boolean"), true

	case model.Int:
		return m.Prim("int"), true

	case model.Object:
		return m.Class("java.lang.Object"), true

	case model.String:
		return m.Class("java.lang.String"), true

	case model.Iterable:
		return m.Class("java.lang.Iterable"), true

	case model.Throwable:
		return m.Class("java.lang.Throwable"), true

	default:
		return typedesc.Type{}, false
	}
}

func (*Model) ArrayOf(elem typedesc.Type) (typedesc.Type, bool) {
	return typedesc.MakeArray(elem, nil), true
}

func (*Model) Parameterize(generic typedesc.Type, args ...typedesc.Type) (typedesc.Type, bool) {
	if generic.Kind != typedesc.Declared {
		return typedesc.Type{}, false
	}

	return typedesc.MakeDeclared(generic.Symbol, nil, args...), true
}

func (m *Model) Overloads(call syntax.Node) []typedesc.Type { return m.overloads[call] }

func (m *Model) FunctionalMethod(t typedesc.Type) (typedesc.Type, bool) {
	if t.Kind == typedesc.Executable {
		return t, true
	}

	if t.Kind != typedesc.Declared {
		return typedesc.Type{}, false
	}

	sam, ok := m.functional[t.Symbol]

	return sam, ok
}

func (m *Model) EnumConstants(t typedesc.Type) ([]string, bool) {
	if t.Kind != typedesc.Declared {
		return nil, false
	}

	c, ok := m.enums[t.Symbol]

	return c, ok
}
