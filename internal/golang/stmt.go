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
	"go/token"

	"fillmore-labs.com/fixfacts/internal/syntax"
)

func (l lowerer) block(b *ast.BlockStmt) *syntax.BlockNode {
	if b == nil {
		return nil
	}

	return record(l, &syntax.BlockNode{Span: span(b), List: l.stmts(b.List)}, b)
}

func (l lowerer) stmts(list []ast.Stmt) []syntax.Node {
	nodes := make([]syntax.Node, 0, len(list))
	for _, s := range list {
		nodes = append(nodes, l.stmtList(s)...)
	}

	return nodes
}

// stmtList lowers a statement; declarations of several variables become several statements.
func (l lowerer) stmtList(s ast.Stmt) []syntax.Node {
	if d, ok := s.(*ast.DeclStmt); ok {
		if g, ok := d.Decl.(*ast.GenDecl); ok {
			return l.genDecl(g)
		}
	}

	return []syntax.Node{l.stmt(s)}
}

// stmt lowers a single statement; nil stays nil.
func (l lowerer) stmt(s ast.Stmt) syntax.Node {
	switch s := s.(type) {
	case nil:
		return nil

	case *ast.BlockStmt:
		return l.block(s)

	case *ast.ExprStmt:
		return record(l, &syntax.ExprStmtNode{Span: span(s), X: l.expr(s.X)}, s)

	case *ast.AssignStmt:
		return l.assign(s)

	case *ast.IncDecStmt:
		u := record(l, &syntax.UnaryNode{Span: span(s), Op: s.Tok.String(), X: l.expr(s.X), Postfix: true}, s)

		return &syntax.ExprStmtNode{Span: span(s), X: u}

	case *ast.DeclStmt:
		if g, ok := s.Decl.(*ast.GenDecl); ok && len(g.Specs) == 1 {
			if d := l.genDecl(g); len(d) == 1 {
				return d[0]
			}
		}

		return l.opaque(s)

	case *ast.ReturnStmt:
		return record(l, &syntax.ReturnNode{Span: span(s), Results: l.exprs(s.Results)}, s)

	case *ast.IfStmt:
		return record(l, &syntax.IfNode{
			Span: span(s),
			Init: l.stmt(s.Init),
			Cond: l.expr(s.Cond),
			Then: l.block(s.Body),
			Else: l.stmt(s.Else),
		}, s)

	case *ast.ForStmt:
		return l.forStmt(s)

	case *ast.RangeStmt:
		return l.rangeStmt(s)

	case *ast.SwitchStmt:
		return l.switchStmt(s)

	case *ast.TypeSwitchStmt:
		return l.typeSwitch(s)

	case *ast.SelectStmt:
		return l.selectStmt(s)

	case *ast.BranchStmt:
		return l.branch(s)

	case *ast.LabeledStmt:
		return record(l, &syntax.LabeledNode{Span: span(s), Label: l.ident(s.Label), Stmt: l.stmt(s.Stmt)}, s)

	case *ast.GoStmt:
		return l.deferred(s, s.Call)

	case *ast.DeferStmt:
		return l.deferred(s, s.Call)

	case *ast.SendStmt:
		return record(l, &syntax.ExprStmtNode{Span: span(s), X: l.opaque(s, l.expr(s.Chan), l.expr(s.Value))}, s)

	case *ast.EmptyStmt:
		return record(l, &syntax.EmptyNode{Span: span(s)}, s)

	default:
		return l.opaque(s)
	}
}

// deferred lowers go and defer statements; the call does not run in place.
func (l lowerer) deferred(s ast.Stmt, call *ast.CallExpr) syntax.Node {
	return record(l, &syntax.ExprStmtNode{Span: span(s), X: l.opaque(s, l.expr(call))}, s)
}

func (l lowerer) assign(s *ast.AssignStmt) syntax.Node {
	switch s.Tok {
	case token.ASSIGN, token.DEFINE:
		a := &syntax.AssignNode{Span: span(s), Lhs: l.exprs(s.Lhs), Rhs: l.exprs(s.Rhs), Define: s.Tok == token.DEFINE}

		return record(l, a, s)

	default:
		if len(s.Lhs) != 1 || len(s.Rhs) != 1 {
			return l.opaque(s)
		}

		a := &syntax.CompoundAssignNode{Span: span(s), Op: s.Tok.String(), X: l.expr(s.Lhs[0]), Y: l.expr(s.Rhs[0])}

		return record(l, a, s)
	}
}

func (l lowerer) forStmt(s *ast.ForStmt) syntax.Node {
	f := &syntax.ForNode{Span: span(s), Cond: l.expr(s.Cond), Body: l.block(s.Body)}

	if init := l.stmt(s.Init); init != nil {
		f.Init = []syntax.Node{init}
	}

	if post := l.stmt(s.Post); post != nil {
		f.Update = []syntax.Node{post}
	}

	return record(l, f, s)
}

func (l lowerer) rangeStmt(s *ast.RangeStmt) syntax.Node {
	r := &syntax.EnhancedForNode{Span: span(s), X: l.expr(s.X), Body: l.block(s.Body)}

	v := s.Value
	if v == nil {
		v = s.Key
	}

	if id, ok := v.(*ast.Ident); ok && s.Tok == token.DEFINE {
		d := &syntax.VarDeclNode{Span: span(id), Name: l.ident(id)}
		l.decls[d] = id
		r.Var = d
	}

	return record(l, r, s)
}

func (l lowerer) switchStmt(s *ast.SwitchStmt) syntax.Node {
	sw := &syntax.SwitchNode{Span: span(s), Init: l.stmt(s.Init), Tag: l.expr(s.Tag)}

	for _, c := range s.Body.List {
		cc, ok := c.(*ast.CaseClause)
		if !ok {
			continue
		}

		sw.Cases = append(sw.Cases, l.caseClause(cc, l.exprs))
	}

	return record(l, sw, s)
}

func (l lowerer) typeSwitch(s *ast.TypeSwitchStmt) syntax.Node {
	sw := &syntax.SwitchNode{Span: span(s), Init: l.stmt(s.Init), Tag: l.opaque(s.Assign, l.stmt(s.Assign))}

	for _, c := range s.Body.List {
		cc, ok := c.(*ast.CaseClause)
		if !ok {
			continue
		}

		sw.Cases = append(sw.Cases, l.caseClause(cc, l.typeExprs))
	}

	return record(l, sw, s)
}

// caseClause lowers a case; it falls into the next case only through a fallthrough statement.
func (l lowerer) caseClause(cc *ast.CaseClause, labels func([]ast.Expr) []syntax.Node) *syntax.CaseNode {
	c := &syntax.CaseNode{Span: span(cc), Body: l.stmts(cc.Body), Arrow: true}

	if cc.List != nil {
		c.Labels = labels(cc.List)
	}

	if n := len(cc.Body); n > 0 {
		if b, ok := cc.Body[n-1].(*ast.BranchStmt); ok && b.Tok == token.FALLTHROUGH {
			c.Arrow = false
		}
	}

	return record(l, c, cc)
}

// selectStmt lowers a select as a switch whose cases always cover the blocking alternatives.
func (l lowerer) selectStmt(s *ast.SelectStmt) syntax.Node {
	sw := &syntax.SwitchNode{Span: span(s), Exhaustive: true}

	for _, c := range s.Body.List {
		cc, ok := c.(*ast.CommClause)
		if !ok {
			continue
		}

		k := &syntax.CaseNode{Span: span(cc), Body: l.stmts(cc.Body), Arrow: true}
		if cc.Comm != nil {
			k.Labels = []syntax.Node{l.stmt(cc.Comm)}
		}

		sw.Cases = append(sw.Cases, record(l, k, cc))
	}

	return record(l, sw, s)
}

func (l lowerer) branch(s *ast.BranchStmt) syntax.Node {
	switch s.Tok {
	case token.BREAK:
		return record(l, &syntax.BreakNode{Span: span(s), Label: l.ident(s.Label)}, s)

	case token.CONTINUE:
		return record(l, &syntax.ContinueNode{Span: span(s), Label: l.ident(s.Label)}, s)

	case token.FALLTHROUGH:
		return record(l, &syntax.FallthroughNode{Span: span(s)}, s)

	default: // goto
		return l.opaque(s)
	}
}
