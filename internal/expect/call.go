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
	"slices"

	"fillmore-labs.com/fixfacts/internal/model"
	"fillmore-labs.com/fixfacts/internal/syntax"
	"fillmore-labs.com/fixfacts/internal/typedesc"
)

func (w *walker) call(n *syntax.CallNode, errNode syntax.Node) classification {
	if n.Fun == errNode {
		return classification{kinds: kinds(Method), continueUp: true}
	}

	if i := slices.Index(n.Args, errNode); i >= 0 {
		return match(w.argument(n, n.Args, i)...)
	}

	return classification{}
}

func (w *walker) newInstance(n *syntax.NewInstanceNode, errNode syntax.Node) classification {
	if n.Type == errNode {
		return matchKinds(kinds(Class))
	}

	if i := slices.Index(n.Args, errNode); i >= 0 {
		return match(w.argument(n, n.Args, i)...)
	}

	return classification{}
}

// argument returns the parameter types at index of all candidate signatures that accept the
// number of arguments and the types of the other, resolved arguments.
func (w *walker) argument(call syntax.Node, args []syntax.Node, index int) []typedesc.Type {
	var types []typedesc.Type

	for _, sig := range w.snap.Overloads(call) {
		if w.ctx.Err() != nil {
			return nil
		}

		if !sig.Accepts(len(args)) || !w.othersFit(sig, args, index) {
			continue
		}

		if p, ok := sig.Param(index); ok {
			types = append(types, p)
		}
	}

	return types
}

func (w *walker) othersFit(sig typedesc.Type, args []syntax.Node, index int) bool {
	for i, arg := range args {
		if i == index {
			continue
		}

		at := w.typeOf(arg)
		if !at.Valid() {
			continue // unresolved arguments do not rule out a candidate
		}

		p, ok := sig.Param(i)
		if !ok || !w.snap.IsAssignable(at, p) {
			return false
		}
	}

	return true
}

func (w *walker) integer() classification {
	return w.wellKnown(model.Int)
}
