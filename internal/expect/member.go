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
	"fillmore-labs.com/fixfacts/internal/syntax"
	"fillmore-labs.com/fixfacts/internal/typedesc"
)

// memberSelect classifies an unresolved name qualified by a package, a class or a value, and an
// unresolved qualifier.
func (w *walker) memberSelect(anc syntax.Path, n *syntax.MemberSelectNode, errNode syntax.Node) classification {
	switch errNode {
	case n.X:
		return matchKinds(Variables)

	case n.Sel:

	default:
		return classification{}
	}

	q := syntax.Unparen(n.X)
	qt := w.typeOf(q)

	var qk typedesc.SymbolKind
	if sym := w.snap.SymbolOf(q); sym != nil {
		qk = sym.Kind
	}

	call, qualifier := selectPosition(anc)

	switch {
	case qk == typedesc.PackageSymbol || qt.Kind == typedesc.Package:
		if call {
			return classification{kinds: kinds(Method), scope: qt, continueUp: true}
		}

		return classification{kinds: kinds(Class), scope: qt, matched: true}

	case qk == typedesc.TypeSymbol:
		switch {
		case call:
			return classification{kinds: kinds(Method), scope: qt, continueUp: true}

		case qualifier:
			return classification{kinds: kinds(Class), scope: qt, matched: true}

		default:
			return classification{kinds: kinds(Field), scope: qt, continueUp: true}
		}

	case qt.Valid():
		if call {
			return classification{kinds: kinds(Method), scope: qt, continueUp: true}
		}

		return classification{kinds: kinds(Field), scope: qt, continueUp: true}

	default:
		return match()
	}
}

// selectPosition reports whether the selection anc[0] is called, or is itself a qualifier or a
// type reference.
func selectPosition(anc syntax.Path) (call, qualifier bool) {
	n := anc[0]

	switch p := anc.Parent().Node().(type) {
	case *syntax.CallNode:
		return p.Fun == n, false

	case *syntax.MemberSelectNode:
		return false, p.X == n

	case *syntax.NewInstanceNode:
		return false, p.Type == n

	case *syntax.VarDeclNode:
		return false, p.Type == n

	case *syntax.CastNode:
		return false, p.Type == n

	case *syntax.InstanceOfNode:
		return false, p.Type == n

	case *syntax.TypeExprNode, *syntax.CatchNode:
		return false, true

	case *syntax.MethodDeclNode:
		return false, p.Result == n

	default:
		return false, false
	}
}
