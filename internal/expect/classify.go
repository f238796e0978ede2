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

	"fillmore-labs.com/fixfacts/internal/config"
	"fillmore-labs.com/fixfacts/internal/model"
	"fillmore-labs.com/fixfacts/internal/syntax"
	"fillmore-labs.com/fixfacts/internal/typedesc"
)

// classification is the contribution of one ancestor.
type classification struct {
	types []typedesc.Type
	kinds KindSet
	scope typedesc.Type

	// matched ends the walk.
	matched bool

	// continueUp makes the ancestor the new error node and keeps walking.
	continueUp bool

	// wrap transforms types found further up into types for this position.
	wrap wrapFunc
}

func match(types ...typedesc.Type) classification {
	return classification{types: types, matched: true}
}

func matchKinds(kinds KindSet) classification {
	return classification{kinds: kinds, matched: true}
}

func kinds(ks ...Kind) KindSet { return config.NewBitMask(ks...) }

// forward replaces the error node with the ancestor.
var forward = classification{continueUp: true}

// classify derives what the ancestor anc[0] expects of its child errNode.
func (w *walker) classify(anc syntax.Path, errNode syntax.Node) classification {
	switch n := anc[0].(type) {
	case *syntax.VarDeclNode:
		return w.varDecl(n, errNode)

	case *syntax.AssignNode:
		return w.assign(anc, n, errNode)

	case *syntax.CompoundAssignNode:
		return w.compoundAssign(n, errNode)

	case *syntax.ReturnNode:
		return w.returnStmt(anc, n, errNode)

	case *syntax.CallNode:
		return w.call(n, errNode)

	case *syntax.NewInstanceNode:
		return w.newInstance(n, errNode)

	case *syntax.BinaryNode:
		return w.binary(n, errNode)

	case *syntax.UnaryNode:
		return w.unary(n, errNode)

	case *syntax.ConditionalNode:
		return w.conditional(n, errNode)

	case *syntax.IfNode:
		return w.condition(n.Cond, errNode)

	case *syntax.WhileNode:
		return w.condition(n.Cond, errNode)

	case *syntax.DoWhileNode:
		return w.condition(n.Cond, errNode)

	case *syntax.ForNode:
		return w.condition(n.Cond, errNode)

	case *syntax.AssertNode:
		return w.condition(n.Cond, errNode)

	case *syntax.EnhancedForNode:
		return w.enhancedFor(n, errNode)

	case *syntax.LambdaNode:
		return w.lambda(n, errNode)

	case *syntax.ArrayAccessNode:
		return w.arrayAccess(n, errNode)

	case *syntax.NewArrayNode:
		return w.newArray(n, errNode)

	case *syntax.ParenNode:
		return forward

	case *syntax.MemberSelectNode:
		return w.memberSelect(anc, n, errNode)

	case *syntax.ThrowNode:
		return w.throw(n, errNode)

	case *syntax.CaseNode:
		return w.caseLabel(anc, n, errNode)

	case *syntax.CastNode:
		return w.cast(n, errNode)

	case *syntax.InstanceOfNode:
		return typePosition(n.Type == errNode)

	case *syntax.CatchNode:
		return typePosition(slices.Contains(n.Types, errNode))

	case *syntax.MethodDeclNode:
		return w.methodDecl(n, errNode)

	case *syntax.TypeExprNode:
		if slices.Contains(n.Args, errNode) {
			return matchKinds(Types)
		}

		return classification{}

	case *syntax.SynchronizedNode:
		if n.Lock == errNode {
			return w.wellKnown(model.Object)
		}

		return classification{}

	default:
		return classification{}
	}
}

// typeOf returns the type of n, or none for a nil node.
func (w *walker) typeOf(n syntax.Node) typedesc.Type {
	if n == nil {
		return typedesc.Type{}
	}

	return w.snap.TypeOf(n)
}

// wellKnown matches a core library type, or matches nothing in a broken environment.
func (w *walker) wellKnown(k model.WellKnown) classification {
	t, ok := w.snap.Lookup(k)
	if !ok {
		return match()
	}

	return match(t)
}

func (w *walker) condition(cond, errNode syntax.Node) classification {
	if cond == nil || cond != errNode {
		return classification{}
	}

	return w.wellKnown(model.Boolean)
}

// typePosition matches the kinds admissible where a class or interface is named.
func typePosition(ok bool) classification {
	if !ok {
		return classification{}
	}

	return matchKinds(kinds(Class, Interface))
}
