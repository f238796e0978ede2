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

// Package fixes turns inference and completion facts into descriptions of corrective edits.
//
// Rules are registered in a [Table] under compiler diagnostic identifiers and only run for
// matching diagnostics. A [Fix] describes what to change; rendering it as source text is left
// to the caller.
package fixes

import (
	"fillmore-labs.com/fixfacts/internal/syntax"
	"fillmore-labs.com/fixfacts/internal/typedesc"
)

//go:generate go tool stringer -type Kind

// Kind is the kind of a corrective edit.
type Kind uint8

const (
	CreateLocal Kind = iota
	CreateField
	CreateParameter
	CreateClass
	CreateMethod
	AddReturn
	AddThrows
	ConvertSwitch // add the missing default case so the switch exits from all branches
)

// Fix describes a corrective edit.
type Fix struct {
	Kind   Kind
	Name   string          // name of the element to create
	Types  []typedesc.Type // candidate types, in order of preference
	Scope  typedesc.Type   // type to create a member in, None for the current scope
	Anchor syntax.Path     // node the edit relates to
}
