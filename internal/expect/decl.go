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
	"strings"

	"fillmore-labs.com/fixfacts/internal/syntax"
	"fillmore-labs.com/fixfacts/internal/typedesc"
)

func (w *walker) varDecl(n *syntax.VarDeclNode, errNode syntax.Node) classification {
	switch errNode {
	case n.Init:
		c := matchKinds(Variables)
		if n.Type != nil {
			c.types = []typedesc.Type{w.typeOf(n.Type)}
		}

		return c

	case n.Type:
		return matchKinds(Types)

	default:
		return classification{}
	}
}

func (w *walker) assign(anc syntax.Path, n *syntax.AssignNode, errNode syntax.Node) classification {
	if i := slices.Index(n.Lhs, errNode); i >= 0 {
		c := matchKinds(assignKinds(anc))
		if t, ok := w.pairedRHS(n, i); ok {
			c.types = []typedesc.Type{t}
		}

		return c
	}

	if i := slices.Index(n.Rhs, errNode); i >= 0 {
		if len(n.Lhs) != len(n.Rhs) {
			return match()
		}

		return match(w.typeOf(n.Lhs[i]))
	}

	return classification{}
}

// assignKinds narrows the variable kinds for assignments in resource and for-loop headers.
func assignKinds(anc syntax.Path) KindSet {
	switch p := anc.Parent().Node().(type) {
	case *syntax.TryNode:
		if slices.Contains(p.Resources, anc[0]) {
			return kinds(ResourceVariable)
		}

	case *syntax.ForNode:
		if slices.Contains(p.Init, anc[0]) {
			return kinds(ForInitVariable)
		}
	}

	return Variables
}

// pairedRHS returns the type of the value assigned to the i-th left-hand side.
func (w *walker) pairedRHS(n *syntax.AssignNode, i int) (typedesc.Type, bool) {
	switch {
	case len(n.Lhs) == len(n.Rhs):
		return w.valueType(n.Rhs[i]), true

	case len(n.Rhs) == 1:
		t := w.typeOf(n.Rhs[0])
		if t.Kind == typedesc.Other && len(t.Args) == len(n.Lhs) {
			return t.Args[i], true // tuple
		}
	}

	return typedesc.Type{}, false
}

// valueType returns the type of a value, resolving anonymous classes to their declared supertype.
func (w *walker) valueType(n syntax.Node) typedesc.Type {
	if ni, ok := syntax.Unparen(n).(*syntax.NewInstanceNode); ok && ni.Body != nil {
		return w.typeOf(ni.Type)
	}

	return w.typeOf(n)
}

func (w *walker) compoundAssign(n *syntax.CompoundAssignNode, errNode syntax.Node) classification {
	switch errNode {
	case n.X:
		c := match(w.typeOf(n.Y))
		c.kinds = Variables

		return c

	case n.Y:
		if shift(strings.TrimSuffix(n.Op, "=")) {
			return w.integer()
		}

		return match(w.typeOf(n.X))

	default:
		return classification{}
	}
}

func (w *walker) returnStmt(anc syntax.Path, n *syntax.ReturnNode, errNode syntax.Node) classification {
	i := slices.Index(n.Results, errNode)
	if i < 0 {
		return classification{}
	}

	encl := syntax.Enclosing(anc, syntax.MethodDecl, syntax.Lambda, syntax.ClassDecl)
	if encl == nil || encl.Node().Category() == syntax.ClassDecl {
		return match()
	}

	sig, ok := w.signature(encl.Node())
	if !ok || sig.IsVoid() || len(sig.Results) == 1 && sig.Results[0].Kind == typedesc.Void {
		return match()
	}

	if len(sig.Results) != len(n.Results) {
		return match()
	}

	return match(sig.Results[i])
}

// signature returns the signature of a method or lambda.
func (w *walker) signature(n syntax.Node) (typedesc.Type, bool) {
	t := w.typeOf(n)

	switch t.Kind {
	case typedesc.Executable:
		return t, true

	case typedesc.Declared:
		return w.snap.FunctionalMethod(t)

	default:
		return typedesc.Type{}, false
	}
}

func (w *walker) methodDecl(n *syntax.MethodDeclNode, errNode syntax.Node) classification {
	switch {
	case slices.Contains(n.Throws, errNode):
		return matchKinds(kinds(Class))

	case n.Result != nil && n.Result == errNode:
		return matchKinds(Types)

	default:
		return classification{}
	}
}
