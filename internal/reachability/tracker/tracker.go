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

package tracker

import (
	"maps"

	"fillmore-labs.com/fixfacts/internal/typedesc"
)

// Tracker recognizes calls that terminate the program or the current goroutine.
type Tracker struct {
	known map[FuncName]struct{} // functions that can't return
}

// Default knows the terminating functions of the Go and Java standard libraries and of common
// logging packages.
var Default = New()

// New creates a Tracker knowing the built-in table plus extra.
func New(extra ...FuncName) Tracker {
	if len(extra) == 0 {
		return Tracker{known: _knownFuncs}
	}

	known := maps.Clone(_knownFuncs)
	for _, f := range extra {
		known[f] = struct{}{}
	}

	return Tracker{known: known}
}

// Terminating reports whether a call of sym never returns to its caller.
func (t Tracker) Terminating(sym *typedesc.Symbol) bool {
	if sym == nil {
		return false
	}

	switch sym.Kind {
	case typedesc.BuiltinSymbol:
		return sym.Name == "panic"

	case typedesc.FuncSymbol:
		_, ok := t.known[FuncName{Path: sym.Pkg, Receiver: sym.Owner, Name: sym.Name}]

		return ok

	default:
		return false
	}
}

// SymbolOf returns the symbol describing fun.
func SymbolOf(fun FuncName) *typedesc.Symbol {
	return &typedesc.Symbol{Kind: typedesc.FuncSymbol, Name: fun.Name, Pkg: fun.Path, Owner: fun.Receiver}
}
