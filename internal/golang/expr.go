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

package golang

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/fixfacts/internal/syntax"
)

func (l lowerer) exprs(list []ast.Expr) []syntax.Node {
	nodes := make([]syntax.Node, 0, len(list))
	for _, e := range list {
		nodes = append(nodes, l.expr(e))
	}

	return nodes
}

func (l lowerer) typeExprs(list []ast.Expr) []syntax.Node {
	nodes := make([]syntax.Node, 0, len(list))
	for _, e := range list {
		nodes = append(nodes, l.typeExpr(e))
	}

	return nodes
}

// isType reports whether the type checker recorded e as a type expression.
func (l lowerer) isType(e ast.Expr) bool {
	if l.info == nil {
		return false
	}

	if tv, ok := l.info.Types[e]; ok {
		return tv.IsType()
	}

	if id, ok := e.(*ast.Ident); ok {
		_, ok := l.info.Uses[id].(*types.TypeName)

		return ok
	}

	return false
}

// expr lowers an expression; nil stays nil.
func (l lowerer) expr(e ast.Expr) syntax.Node {
	if e == nil {
		return nil
	}

	switch e.(type) {
	case *ast.ArrayType, *ast.MapType, *ast.ChanType, *ast.FuncType, *ast.InterfaceType,
		*ast.StructType, *ast.Ellipsis:
		return l.typeExpr(e)
	}

	if l.isType(e) {
		return l.typeExpr(e)
	}

	switch e := e.(type) {
	case *ast.Ident:
		return l.ident(e)

	case *ast.BasicLit:
		return record(l, &syntax.LiteralNode{Span: span(e), Value: e.Value}, e)

	case *ast.CompositeLit:
		return l.compositeLit(e)

	case *ast.FuncLit:
		lam := &syntax.LambdaNode{Span: span(e), Params: l.fields(e.Type.Params), Body: l.block(e.Body)}

		return record(l, lam, e)

	case *ast.ParenExpr:
		return record(l, &syntax.ParenNode{Span: span(e), X: l.expr(e.X)}, e)

	case *ast.SelectorExpr:
		return record(l, &syntax.MemberSelectNode{Span: span(e), X: l.expr(e.X), Sel: l.ident(e.Sel)}, e)

	case *ast.IndexExpr:
		if l.generic(e.X) {
			return l.opaque(e, l.expr(e.X), l.typeExpr(e.Index))
		}

		return record(l, &syntax.ArrayAccessNode{Span: span(e), X: l.expr(e.X), Index: l.expr(e.Index)}, e)

	case *ast.IndexListExpr:
		return l.opaque(e, append([]syntax.Node{l.expr(e.X)}, l.typeExprs(e.Indices)...)...)

	case *ast.SliceExpr:
		return l.opaque(e, l.expr(e.X), l.expr(e.Low), l.expr(e.High), l.expr(e.Max))

	case *ast.TypeAssertExpr:
		if e.Type == nil { // x.(type)
			return l.opaque(e, l.expr(e.X))
		}

		return record(l, &syntax.CastNode{Span: span(e), Type: l.typeExpr(e.Type), X: l.expr(e.X)}, e)

	case *ast.CallExpr:
		return l.call(e)

	case *ast.StarExpr:
		return record(l, &syntax.UnaryNode{Span: span(e), Op: "*", X: l.expr(e.X)}, e)

	case *ast.UnaryExpr:
		return record(l, &syntax.UnaryNode{Span: span(e), Op: e.Op.String(), X: l.expr(e.X)}, e)

	case *ast.BinaryExpr:
		return record(l, &syntax.BinaryNode{Span: span(e), Op: e.Op.String(), X: l.expr(e.X), Y: l.expr(e.Y)}, e)

	case *ast.KeyValueExpr:
		return l.opaque(e, l.expr(e.Key), l.expr(e.Value))

	default:
		return l.opaque(e)
	}
}

// generic reports whether e names a generic function being instantiated.
func (l lowerer) generic(e ast.Expr) bool {
	if l.info == nil {
		return false
	}

	var id *ast.Ident

	switch e := ast.Unparen(e).(type) {
	case *ast.Ident:
		id = e

	case *ast.SelectorExpr:
		id = e.Sel

	default:
		return false
	}

	if _, ok := l.info.Instances[id]; ok {
		return true
	}

	fn, ok := l.info.Uses[id].(*types.Func)

	return ok && fn.Signature().TypeParams().Len() > 0
}

func (l lowerer) call(e *ast.CallExpr) syntax.Node {
	if len(e.Args) == 1 && l.isType(e.Fun) { // conversion
		return record(l, &syntax.CastNode{Span: span(e), Type: l.typeExpr(e.Fun), X: l.expr(e.Args[0])}, e)
	}

	return record(l, &syntax.CallNode{Span: span(e), Fun: l.expr(e.Fun), Args: l.exprs(e.Args)}, e)
}

// compositeLit lowers slice and array literals to array creations and all other literals to
// instance creations. Keyed struct fields become assignments to the field.
func (l lowerer) compositeLit(e *ast.CompositeLit) syntax.Node {
	var under types.Type
	if l.info != nil {
		if t := l.info.TypeOf(e); t != nil {
			under = t.Underlying()
		}
	}

	if _, ok := e.Type.(*ast.ArrayType); ok || isSlice(under) {
		a := &syntax.NewArrayNode{Span: span(e), Elems: make([]syntax.Node, 0, len(e.Elts))}
		if at, ok := e.Type.(*ast.ArrayType); ok {
			a.Elem = l.typeExpr(at.Elt)
		}

		for _, el := range e.Elts {
			a.Elems = append(a.Elems, l.expr(el))
		}

		return record(l, a, e)
	}

	n := &syntax.NewInstanceNode{Span: span(e), Args: make([]syntax.Node, 0, len(e.Elts))}
	if e.Type != nil {
		n.Type = l.typeExpr(e.Type)
	}

	_, structLit := under.(*types.Struct)

	for _, el := range e.Elts {
		kv, ok := el.(*ast.KeyValueExpr)
		if !ok || !structLit {
			n.Args = append(n.Args, l.expr(el))

			continue
		}

		a := &syntax.AssignNode{Span: span(kv), Lhs: []syntax.Node{l.expr(kv.Key)}, Rhs: []syntax.Node{l.expr(kv.Value)}}
		n.Args = append(n.Args, record(l, a, kv))
	}

	return record(l, n, e)
}

func isSlice(t types.Type) bool {
	_, ok := t.(*types.Slice)

	return ok
}

// typeExpr lowers a type expression, keeping type arguments as children.
func (l lowerer) typeExpr(e ast.Expr) syntax.Node {
	if e == nil {
		return nil
	}

	t := &syntax.TypeExprNode{Span: span(e), Name: types.ExprString(e)}

	switch e := ast.Unparen(e).(type) {
	case *ast.IndexExpr:
		t.Name = types.ExprString(e.X)
		t.Args = []syntax.Node{l.typeExpr(e.Index)}

	case *ast.IndexListExpr:
		t.Name = types.ExprString(e.X)
		t.Args = l.typeExprs(e.Indices)

	case *ast.StarExpr:
		t.Args = []syntax.Node{l.typeExpr(e.X)}

	case *ast.ArrayType:
		t.Args = []syntax.Node{l.typeExpr(e.Elt)}

	case *ast.MapType:
		t.Args = []syntax.Node{l.typeExpr(e.Key), l.typeExpr(e.Value)}

	case *ast.ChanType:
		t.Args = []syntax.Node{l.typeExpr(e.Value)}

	case *ast.Ellipsis:
		if e.Elt != nil {
			t.Args = []syntax.Node{l.typeExpr(e.Elt)}
		}
	}

	return record(l, t, e)
}
