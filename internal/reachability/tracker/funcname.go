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

import "go/types"

// FuncName identifies a function or method independently of a type-checker run.
type FuncName struct {
	Path     string // package path, empty for universe and unnamed receivers
	Receiver string // receiver type name, empty for functions
	Name     string
}

// String returns the name in the "(path.Recv).Name" form used by the go/analysis framework.
func (f FuncName) String() string {
	var qualified string
	switch {
	case f.Path == "" && f.Receiver == "":
		return f.Name

	case f.Path == "":
		qualified = f.Receiver

	case f.Receiver == "":
		return f.Path + "." + f.Name

	default:
		qualified = f.Path + "." + f.Receiver
	}

	return "(" + qualified + ")." + f.Name
}

// FuncNameOf returns the name of fun. Pointer receivers and aliases are resolved to the named
// type; methods of unnamed types have no package.
func FuncNameOf(fun *types.Func) FuncName {
	name := FuncName{Name: fun.Name()}

	sig, ok := fun.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		if pkg := fun.Pkg(); pkg != nil {
			name.Path = pkg.Path()
		}

		return name
	}

	recv := types.Unalias(sig.Recv().Type())
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = types.Unalias(ptr.Elem())
	}

	switch r := recv.(type) {
	case *types.Named:
		obj := r.Origin().Obj()
		name.Receiver = obj.Name()

		if pkg := obj.Pkg(); pkg != nil {
			name.Path = pkg.Path()
		}

	case *types.Interface:
		name.Receiver = "interface"

	default:
		name.Receiver = "<invalid>"
	}

	return name
}
