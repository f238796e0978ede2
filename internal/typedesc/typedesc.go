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

// Package typedesc describes types independently of the semantic model that produced them.
package typedesc

import "strings"

// Kind classifies a [Type].
type Kind uint8

//go:generate go tool stringer -type Kind
const (
	None Kind = iota
	Primitive
	Declared
	Array
	TypeVariable
	Wildcard
	Executable
	Error
	Void
	Package
	Other
)

// SymbolKind classifies a [Symbol].
type SymbolKind uint8

const (
	UnknownSymbol SymbolKind = iota
	PackageSymbol
	TypeSymbol
	VariableSymbol
	FuncSymbol
	BuiltinSymbol
)

// Symbol identifies a named program element. Symbols are compared by pointer identity.
type Symbol struct {
	Kind  SymbolKind
	Name  string // simple name
	Pkg   string // package path, empty for universe and local symbols
	Owner string // enclosing type name for members
}

// String returns the qualified name of the symbol.
func (s *Symbol) String() string {
	if s == nil {
		return "<nil>"
	}

	var b strings.Builder
	if s.Pkg != "" {
		b.WriteString(s.Pkg)
		b.WriteByte('.')
	}

	if s.Owner != "" {
		b.WriteString(s.Owner)
		b.WriteByte('.')
	}

	b.WriteString(s.Name)

	return b.String()
}

// Type is a value describing a type. Descriptors built by the same model may be compared through
// that model's relations; the zero value is a [None] type.
type Type struct {
	Kind    Kind
	Name    string  // primitive and type variable name, printed form of structural types
	Symbol  *Symbol // Declared and Package
	Args    []Type  // Declared type arguments, Executable parameters, Other components
	Elem    *Type   // Array element, TypeVariable and Wildcard bound
	Results []Type  // Executable results
	// Variadic reports whether the last Executable parameter accepts any number of arguments.
	Variadic bool
	// Handle is the model's native representation, opaque to the analyses.
	Handle any
}

// MakePrimitive returns a primitive type.
func MakePrimitive(name string, handle any) Type {
	return Type{Kind: Primitive, Name: name, Handle: handle}
}

// MakeDeclared returns a declared type with optional type arguments.
func MakeDeclared(sym *Symbol, handle any, args ...Type) Type {
	return Type{Kind: Declared, Symbol: sym, Args: args, Handle: handle}
}

// MakeArray returns an array of elem.
func MakeArray(elem Type, handle any) Type {
	return Type{Kind: Array, Elem: &elem, Handle: handle}
}

// MakeExecutable returns a signature.
func MakeExecutable(params, results []Type, variadic bool, handle any) Type {
	return Type{Kind: Executable, Args: params, Results: results, Variadic: variadic, Handle: handle}
}

// Valid reports whether t describes a type a value can have.
func (t Type) Valid() bool {
	switch t.Kind {
	case Primitive, Declared, Array, TypeVariable, Wildcard:
		return true

	default:
		return false
	}
}

// IsVoid reports whether t is void or an executable without results.
func (t Type) IsVoid() bool {
	return t.Kind == Void || t.Kind == Executable && len(t.Results) == 0
}

// Param returns the type of the parameter accepting the argument at index,
// taking a variadic last parameter into account.
func (t Type) Param(index int) (Type, bool) {
	if t.Kind != Executable || index < 0 {
		return Type{}, false
	}

	n := len(t.Args)
	switch {
	case index < n-1 || !t.Variadic && index < n:
		return t.Args[index], true

	case t.Variadic && n > 0:
		last := t.Args[n-1]
		if last.Kind == Array && last.Elem != nil {
			return *last.Elem, true
		}

		return last, true

	default:
		return Type{}, false
	}
}

// Accepts reports whether t can be called with argc arguments.
func (t Type) Accepts(argc int) bool {
	if t.Kind != Executable {
		return false
	}

	if t.Variadic {
		return argc >= len(t.Args)-1
	}

	return argc == len(t.Args)
}

// String returns a readable form of t.
func (t Type) String() string {
	var b strings.Builder
	t.write(&b)

	return b.String()
}

func (t Type) write(b *strings.Builder) {
	switch t.Kind {
	case Primitive, TypeVariable:
		b.WriteString(t.Name)

	case Declared:
		if t.Symbol == nil {
			b.WriteString(t.Name)

			return
		}

		b.WriteString(t.Symbol.String())
		writeList(b, "<", t.Args, ">")

	case Array:
		if t.Elem != nil {
			t.Elem.write(b)
		}

		b.WriteString("[]")

	case Wildcard:
		b.WriteByte('?')

		if t.Elem != nil {
			b.WriteString(" extends ")
			t.Elem.write(b)
		}

	case Executable:
		writeList(b, "(", t.Args, ")")

		if t.Variadic {
			b.WriteString("...")
		}

		if len(t.Results) > 0 {
			b.WriteByte(' ')
			writeList(b, "", t.Results, "")
		}

	case Package:
		b.WriteString("package ")
		b.WriteString(t.Symbol.String())

	case Other:
		if t.Name != "" {
			b.WriteString(t.Name)

			return
		}

		writeList(b, "(", t.Args, ")")

	default:
		b.WriteString(t.Kind.String())
	}
}

func writeList(b *strings.Builder, opening string, ts []Type, closing string) {
	if len(ts) == 0 && opening == "<" {
		return
	}

	b.WriteString(opening)

	for i, t := range ts {
		if i > 0 {
			b.WriteString(", ")
		}

		t.write(b)
	}

	b.WriteString(closing)
}
