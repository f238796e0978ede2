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

// Package model defines the semantic oracle the analyses query about a syntax tree.
//
// A [Snapshot] is read-only and safe for concurrent use. Every query may fail softly: unknown
// nodes have the [typedesc.None] type, relations between unrelated models are false.
package model

import (
	"fillmore-labs.com/fixfacts/internal/syntax"
	"fillmore-labs.com/fixfacts/internal/typedesc"
)

// Info maps syntax nodes to their semantic meaning.
type Info interface {
	// TypeOf returns the type of an expression, the denoted type of a type expression, the
	// variable type of a declaration and the signature of a method or lambda.
	TypeOf(n syntax.Node) typedesc.Type

	// SymbolOf returns the symbol a name, member selection or declaration refers to, or nil.
	SymbolOf(n syntax.Node) *typedesc.Symbol
}

// Relations compares types.
type Relations interface {
	SameType(a, b typedesc.Type) bool
	IsSubtype(sub, super typedesc.Type) bool
	IsCastable(from, to typedesc.Type) bool
	IsAssignable(from, to typedesc.Type) bool

	// Erase returns the type without type arguments.
	Erase(t typedesc.Type) typedesc.Type

	// Denote returns the type a declaration of t would carry, for example by resolving captured
	// wildcards and untyped constants.
	Denote(t typedesc.Type) typedesc.Type
}

// WellKnown names a core library type.
type WellKnown uint8

const (
	Boolean WellKnown = iota
	Int
	Object
	String
	Iterable
	Throwable
)

// Library provides core library types.
type Library interface {
	// Lookup returns a core library type; it fails when the environment lacks it.
	Lookup(w WellKnown) (typedesc.Type, bool)

	// ArrayOf returns the array type with element type elem.
	ArrayOf(elem typedesc.Type) (typedesc.Type, bool)

	// Parameterize instantiates a generic declared type.
	Parameterize(generic typedesc.Type, args ...typedesc.Type) (typedesc.Type, bool)
}

// Resolver finds the signatures a call might bind to.
type Resolver interface {
	// Overloads returns all candidate signatures of the method or constructor invoked by call,
	// a *syntax.CallNode or *syntax.NewInstanceNode, without checking the arguments.
	Overloads(call syntax.Node) []typedesc.Type
}

// Members answers questions about the members of declared types.
type Members interface {
	// FunctionalMethod returns the signature of the single abstract method of a functional type.
	FunctionalMethod(t typedesc.Type) (typedesc.Type, bool)

	// EnumConstants returns the names of the constants of an enumeration type.
	EnumConstants(t typedesc.Type) ([]string, bool)
}

// Snapshot is the complete oracle for one analyzed program.
type Snapshot interface {
	Info
	Relations
	Library
	Resolver
	Members
}
