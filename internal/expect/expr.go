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

func logical(op string) bool { return op == "&&" || op == "||" }

func shift(op string) bool { return op == "<<" || op == ">>" || op == ">>>" }

func comparison(op string) bool {
	switch op {
	case "==", "!=", "<", "<=", ">", ">=":
		return true

	default:
		return false
	}
}

// unresolved reports whether t is missing rather than merely not denotable, like untyped nil.
func unresolved(t typedesc.Type) bool {
	return t.Kind == typedesc.None || t.Kind == typedesc.Error
}

func (w *walker) binary(n *syntax.BinaryNode, errNode syntax.Node) classification {
	var other syntax.Node

	switch errNode {
	case n.X:
		other = n.Y

	case n.Y:
		if shift(n.Op) {
			return w.integer()
		}

		other = n.X

	default:
		return classification{}
	}

	if logical(n.Op) {
		return w.wellKnown(model.Boolean)
	}

	// The result of a comparison says nothing about its operands.
	switch t := w.typeOf(other); {
	case t.Valid():
		return match(t)

	case comparison(n.Op), !unresolved(t):
		return match()

	default:
		return forward
	}
}

func (w *walker) unary(n *syntax.UnaryNode, errNode syntax.Node) classification {
	if n.X != errNode {
		return classification{}
	}

	switch n.Op {
	case "!":
		return w.wellKnown(model.Boolean)

	case "-", "+", "~", "^":
		return forward

	case "++", "--":
		return classification{kinds: Variables, continueUp: true}

	default:
		return match()
	}
}

func (w *walker) conditional(n *syntax.ConditionalNode, errNode syntax.Node) classification {
	var other syntax.Node

	switch errNode {
	case n.Cond:
		return w.wellKnown(model.Boolean)

	case n.Then:
		other = n.Else

	case n.Else:
		other = n.Then

	default:
		return classification{}
	}

	switch t := w.typeOf(other); {
	case t.Valid():
		return match(t)

	case unresolved(t):
		return forward

	default:
		return match()
	}
}

// lambda matches the result type of the functional interface implemented by an expression lambda.
func (w *walker) lambda(n *syntax.LambdaNode, errNode syntax.Node) classification {
	if n.Body != errNode {
		return classification{}
	}

	sam, ok := w.signature(n)
	if !ok || len(sam.Results) != 1 {
		return match()
	}

	return match(sam.Results[0])
}

func (w *walker) arrayAccess(n *syntax.ArrayAccessNode, errNode syntax.Node) classification {
	switch errNode {
	case n.X:
		return classification{continueUp: true, wrap: w.snap.ArrayOf}

	case n.Index:
		return w.integer()

	default:
		return classification{}
	}
}

func (w *walker) newArray(n *syntax.NewArrayNode, errNode syntax.Node) classification {
	switch {
	case slices.Contains(n.Dims, errNode):
		return w.integer()

	case slices.Contains(n.Elems, errNode):
		return match(w.typeOf(n.Elem))

	default:
		return classification{}
	}
}

func (w *walker) cast(n *syntax.CastNode, errNode syntax.Node) classification {
	switch errNode {
	case n.X:
		return match(w.typeOf(n.Type))

	case n.Type:
		return typePosition(true)

	default:
		return classification{}
	}
}

func (w *walker) enhancedFor(n *syntax.EnhancedForNode, errNode syntax.Node) classification {
	if n.X != errNode {
		return classification{}
	}

	if n.Var == nil || n.Var.Type == nil {
		return match()
	}

	vt := w.typeOf(n.Var.Type)
	if !vt.Valid() {
		return match()
	}

	if vt.Kind == typedesc.Primitive {
		at, ok := w.snap.ArrayOf(vt)
		if !ok {
			return match()
		}

		return match(at)
	}

	iterable, ok := w.snap.Lookup(model.Iterable)
	if !ok {
		return match()
	}

	it, ok := w.snap.Parameterize(iterable, vt)
	if !ok {
		return match()
	}

	return match(it)
}

func (w *walker) throw(n *syntax.ThrowNode, errNode syntax.Node) classification {
	if n.X != errNode {
		return classification{}
	}

	return w.wellKnown(model.Throwable)
}

// caseLabel matches the selector type of the enclosing switch.
func (w *walker) caseLabel(anc syntax.Path, n *syntax.CaseNode, errNode syntax.Node) classification {
	if !slices.Contains(n.Labels, errNode) {
		return classification{}
	}

	sw, ok := anc.Parent().Node().(*syntax.SwitchNode)
	if !ok {
		return match()
	}

	if sw.Tag == nil {
		return w.wellKnown(model.Boolean)
	}

	return match(w.typeOf(sw.Tag))
}
