// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package report

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"iter"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"

	"fillmore-labs.com/fixfacts/internal/fixes"
	"fillmore-labs.com/fixfacts/internal/typedesc"
)

// declareLocal inserts a variable declaration before the statement containing pos.
func (r *Reporter) declareLocal(pos token.Pos, fix fixes.Fix) []analysis.TextEdit {
	if len(fix.Types) != 1 || fix.Scope.Kind != typedesc.None {
		return nil
	}

	typ, ok := r.snap.TypeString(fix.Types[0])
	if !ok {
		return nil
	}

	c, ok := r.file.FindByPos(pos, pos)
	if !ok {
		return nil
	}

	for c := range c.Enclosing() {
		switch k, _ := c.ParentEdge(); k {
		case edge.BlockStmt_List, edge.CaseClause_Body, edge.CommClause_Body:
		default:
			continue
		}

		stmt, block := c.Node(), c.Parent().Node()

		key := declaration{name: fix.Name, block: block.Pos()}
		if _, ok := r.declared[key]; ok {
			return nil
		}

		if declares(statements(block), fix.Name) {
			return nil
		}

		r.declared[key] = struct{}{}

		indent := r.currentFile.Indent(stmt.Pos())

		return []analysis.TextEdit{{
			Pos:     stmt.Pos(),
			NewText: fmt.Appendf(nil, "var %s %s\n%s", fix.Name, typ, indent),
		}}
	}

	return nil
}

func statements(block ast.Node) []ast.Stmt {
	switch b := block.(type) {
	case *ast.BlockStmt:
		return b.List

	case *ast.CaseClause:
		return b.Body

	case *ast.CommClause:
		return b.Body

	default:
		return nil
	}
}

// declares reports whether one of stmts declares name, which a new declaration in the same
// block would collide with.
func declares(stmts []ast.Stmt, name string) bool {
	for _, stmt := range stmts {
		for n := range declaredNames(stmt) {
			if n == name {
				return true
			}
		}
	}

	return false
}

// declaredNames yields the non-blank names stmt declares in its block.
func declaredNames(stmt ast.Stmt) iter.Seq[string] {
	var ids []*ast.Ident

	switch s := stmt.(type) {
	case *ast.AssignStmt:
		if s.Tok != token.DEFINE {
			break
		}

		for _, e := range s.Lhs {
			if id, ok := e.(*ast.Ident); ok {
				ids = append(ids, id)
			}
		}

	case *ast.DeclStmt:
		d, ok := s.Decl.(*ast.GenDecl)
		if !ok {
			break
		}

		for _, spec := range d.Specs {
			switch sp := spec.(type) {
			case *ast.ValueSpec:
				ids = append(ids, sp.Names...)

			case *ast.TypeSpec:
				ids = append(ids, sp.Name)
			}
		}
	}

	return func(yield func(string) bool) {
		for _, id := range ids {
			if id.Name == "_" {
				continue
			}

			if !yield(id.Name) {
				return
			}
		}
	}
}

// addReturn appends a return of zero values to the body of the anchored function.
func (r *Reporter) addReturn(fix fixes.Fix) []analysis.TextEdit {
	var (
		ftype *ast.FuncType
		body  *ast.BlockStmt
	)

	switch fn := r.snap.Tree().AST(fix.Anchor.Node()).(type) {
	case *ast.FuncDecl:
		ftype, body = fn.Type, fn.Body

	case *ast.FuncLit:
		ftype, body = fn.Type, fn.Body

	default:
		return nil
	}

	if body == nil || ftype.Results == nil {
		return nil
	}

	values := make([]string, 0, ftype.Results.NumFields())

	for _, field := range ftype.Results.List {
		if len(field.Names) > 0 {
			values = nil // named results

			break
		}

		t := r.p.TypesInfo.TypeOf(field.Type)
		if t == nil {
			return nil
		}

		values = append(values, ZeroValue(t, r.qualifier))
	}

	text := "return"
	if len(values) > 0 {
		text += " " + strings.Join(values, ", ")
	}

	return []analysis.TextEdit{r.insertBefore(body.Lbrace, body.Rbrace, text)}
}

// addDefault adds a default case panicking to the anchored switch.
func (r *Reporter) addDefault(fix fixes.Fix) []analysis.TextEdit {
	var body *ast.BlockStmt

	switch sw := r.snap.Tree().AST(fix.Anchor.Node()).(type) {
	case *ast.SwitchStmt:
		body = sw.Body

	case *ast.TypeSwitchStmt:
		body = sw.Body

	default:
		return nil
	}

	if body == nil || r.currentFile.SameLine(body.Lbrace, body.Rbrace) {
		return nil
	}

	indent := r.currentFile.Indent(body.Rbrace)

	return []analysis.TextEdit{{
		Pos:     body.Rbrace,
		NewText: fmt.Appendf(nil, "default:\n%s\tpanic(\"unreachable\")\n%s", indent, indent),
	}}
}

// insertBefore inserts the statement text before the closing brace of a block.
func (r *Reporter) insertBefore(lbrace, rbrace token.Pos, text string) analysis.TextEdit {
	if r.currentFile.SameLine(lbrace, rbrace) {
		return analysis.TextEdit{Pos: rbrace, NewText: []byte("; " + text + " ")}
	}

	indent := r.currentFile.Indent(rbrace)

	return analysis.TextEdit{Pos: rbrace, NewText: fmt.Appendf(nil, "\t%s\n%s", text, indent)}
}

// ZeroValue returns an expression for the zero value of t.
func ZeroValue(t types.Type, qf types.Qualifier) string {
	if _, ok := types.Unalias(t).(*types.TypeParam); ok {
		return "*new(" + types.TypeString(t, qf) + ")"
	}

	switch u := t.Underlying().(type) {
	case *types.Basic:
		switch info := u.Info(); {
		case info&types.IsBoolean != 0:
			return "false"

		case info&types.IsString != 0:
			return `""`

		case info&types.IsNumeric != 0:
			return "0"

		case u.Kind() == types.UnsafePointer, u.Kind() == types.UntypedNil:
			return "nil"
		}

	case *types.Pointer, *types.Slice, *types.Map, *types.Chan, *types.Signature, *types.Interface:
		return "nil"

	case *types.Struct, *types.Array:
		return types.TypeString(t, qf) + "{}"
	}

	return "*new(" + types.TypeString(t, qf) + ")"
}
