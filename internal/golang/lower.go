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

// Package golang maps Go source onto the syntax and type model of the analyses.
//
// [Lower] turns a type-checked *ast.File into a [syntax.Node] tree, [NewSnapshot] answers
// semantic queries about it from the *types.Info of the type checker. Both tolerate the
// incomplete information of packages with type errors.
package golang

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/fixfacts/internal/syntax"
)

// Tree is a lowered Go file.
type Tree struct {
	Root *syntax.CompilationUnitNode

	File  *ast.File
	info  *types.Info
	ast   map[syntax.Node]ast.Node
	nodes map[ast.Node]syntax.Node
	decls map[syntax.Node]*ast.Ident // declarations by their defining name
}

// Lower converts file to the syntax model. info may be nil or incomplete; it only
// distinguishes type expressions from value expressions.
func Lower(file *ast.File, info *types.Info) *Tree {
	t := &Tree{
		File:  file,
		info:  info,
		ast:   make(map[syntax.Node]ast.Node),
		nodes: make(map[ast.Node]syntax.Node),
		decls: make(map[syntax.Node]*ast.Ident),
	}

	l := lowerer{t}
	t.Root = l.file(file)

	return t
}

// AST returns the Go syntax n was lowered from, or nil.
func (t *Tree) AST(n syntax.Node) ast.Node { return t.ast[n] }

// Node returns the lowered counterpart of a, or nil.
func (t *Tree) Node(a ast.Node) syntax.Node { return t.nodes[a] }

// Ident returns the defining name of a lowered declaration.
func (t *Tree) Ident(n syntax.Node) (*ast.Ident, bool) {
	id, ok := t.decls[n]

	return id, ok
}

type lowerer struct{ *Tree }

func span(a ast.Node) syntax.Span { return syntax.Span{From: a.Pos(), To: a.End()} }

// record associates a lowered node with its origin. The first lowered node of an origin wins.
func record[N syntax.Node](l lowerer, n N, a ast.Node) N {
	l.ast[n] = a
	if _, ok := l.nodes[a]; !ok {
		l.nodes[a] = n
	}

	return n
}

func (l lowerer) file(f *ast.File) *syntax.CompilationUnitNode {
	u := &syntax.CompilationUnitNode{Span: syntax.Span{From: f.FileStart, To: f.FileEnd}}

	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			u.Decls = append(u.Decls, l.funcDecl(d))

		case *ast.GenDecl:
			u.Decls = append(u.Decls, l.genDecl(d)...)

		default:
			u.Decls = append(u.Decls, l.opaque(d))
		}
	}

	return record(l, u, f)
}

func (l lowerer) funcDecl(d *ast.FuncDecl) *syntax.MethodDeclNode {
	m := &syntax.MethodDeclNode{
		Span:   span(d),
		Name:   l.ident(d.Name),
		Params: l.fields(d.Type.Params),
		Result: l.results(d.Type.Results),
	}

	if d.Body != nil {
		m.Body = l.block(d.Body)
	}

	l.decls[m] = d.Name

	return record(l, m, d)
}

// results lowers a result list to a single type; several results become an opaque node.
func (l lowerer) results(fl *ast.FieldList) syntax.Node {
	if fl == nil || len(fl.List) == 0 {
		return nil
	}

	if len(fl.List) == 1 && len(fl.List[0].Names) <= 1 {
		return l.typeExpr(fl.List[0].Type)
	}

	o := &syntax.OpaqueNode{Span: span(fl)}
	for _, f := range fl.List {
		o.Children = append(o.Children, l.typeExpr(f.Type))
	}

	return record(l, o, fl)
}

// fields lowers parameters and struct fields to one declaration per name.
func (l lowerer) fields(fl *ast.FieldList) []*syntax.VarDeclNode {
	if fl == nil {
		return nil
	}

	var vars []*syntax.VarDeclNode

	for _, f := range fl.List {
		typ := l.typeExpr(f.Type)

		if len(f.Names) == 0 {
			vars = append(vars, record(l, &syntax.VarDeclNode{Span: span(f), Type: typ}, f))

			continue
		}

		for _, name := range f.Names {
			v := &syntax.VarDeclNode{Span: syntax.Span{From: name.Pos(), To: f.End()}, Name: l.ident(name), Type: typ}
			l.decls[v] = name
			vars = append(vars, record(l, v, name))
		}
	}

	return vars
}

func (l lowerer) genDecl(d *ast.GenDecl) []syntax.Node {
	var decls []syntax.Node

	for _, s := range d.Specs {
		switch s := s.(type) {
		case *ast.ValueSpec:
			decls = append(decls, l.valueSpec(s)...)

		case *ast.TypeSpec:
			decls = append(decls, l.typeSpec(s))

		case *ast.ImportSpec:
			// Imports carry no statements.
		}
	}

	return decls
}

func (l lowerer) valueSpec(s *ast.ValueSpec) []syntax.Node {
	var typ syntax.Node
	if s.Type != nil {
		typ = l.typeExpr(s.Type)
	}

	switch {
	case len(s.Values) == 0 || len(s.Values) == len(s.Names):
		decls := make([]syntax.Node, 0, len(s.Names))

		for i, name := range s.Names {
			v := &syntax.VarDeclNode{Span: span(s), Name: l.ident(name), Type: typ}
			if i < len(s.Values) {
				v.Init = l.expr(s.Values[i])
			}

			if len(s.Names) > 1 {
				v.Span = syntax.Span{From: name.Pos(), To: name.End()}
				if v.Init != nil {
					v.To = v.Init.End()
				}
			}

			l.decls[v] = name
			decls = append(decls, record(l, v, name))
		}

		return decls

	default: // var a, b = f()
		lhs := make([]syntax.Node, 0, len(s.Names))
		for _, name := range s.Names {
			lhs = append(lhs, l.ident(name))
		}

		a := &syntax.AssignNode{Span: span(s), Lhs: lhs, Rhs: l.exprs(s.Values), Define: true}

		return []syntax.Node{record(l, a, s)}
	}
}

func (l lowerer) typeSpec(s *ast.TypeSpec) *syntax.ClassDeclNode {
	c := &syntax.ClassDeclNode{Span: span(s), Name: l.ident(s.Name)}

	if st, ok := s.Type.(*ast.StructType); ok {
		for _, f := range l.fields(st.Fields) {
			c.Members = append(c.Members, f)
		}
	} else {
		c.Members = append(c.Members, l.typeExpr(s.Type))
	}

	l.decls[c] = s.Name

	return record(l, c, s)
}

func (l lowerer) ident(id *ast.Ident) *syntax.IdentNode {
	if id == nil {
		return nil
	}

	return record(l, &syntax.IdentNode{Span: span(id), Name: id.Name}, id)
}

func (l lowerer) opaque(a ast.Node, children ...syntax.Node) *syntax.OpaqueNode {
	kids := make([]syntax.Node, 0, len(children))
	for _, c := range children {
		if c != nil {
			kids = append(kids, c)
		}
	}

	return record(l, &syntax.OpaqueNode{Span: span(a), Children: kids}, a)
}
