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

// Package syntaxtest builds syntax trees with consistent source positions for tests.
package syntaxtest

import (
	"go/token"

	"fillmore-labs.com/fixfacts/internal/syntax"
)

// gap separates consecutive leaves so that enclosing constructs can claim the positions between
// them for keywords and brackets.
const gap = 32

// Builder allocates increasing positions to leaves in creation order. Composite nodes span their
// children, padded where the construct starts with a keyword or ends with a bracket.
type Builder struct{ next token.Pos }

// New creates a [Builder].
func New() *Builder { return &Builder{next: gap} }

func (b *Builder) leaf(width int) syntax.Span {
	from := b.next
	b.next += token.Pos(width + gap)

	return syntax.Span{From: from, To: from + token.Pos(width)}
}

// around spans the children padded by one position on both sides.
func (b *Builder) around(children ...syntax.Node) syntax.Span {
	s, ok := cover(children)
	if !ok {
		return b.leaf(1)
	}

	return syntax.Span{From: s.From - 1, To: s.To + 1}
}

// after spans the children, starting with the first and ending one position after the last.
func (b *Builder) after(children ...syntax.Node) syntax.Span {
	s, ok := cover(children)
	if !ok {
		return b.leaf(1)
	}

	return syntax.Span{From: s.From, To: s.To + 1}
}

func (b *Builder) exact(children ...syntax.Node) syntax.Span {
	s, ok := cover(children)
	if !ok {
		return b.leaf(1)
	}

	return s
}

func cover(children []syntax.Node) (syntax.Span, bool) {
	var (
		s     syntax.Span
		found bool
	)

	for _, c := range children {
		if c == nil {
			continue
		}

		if !found || c.Pos() < s.From {
			s.From = c.Pos()
		}

		if !found || c.End() > s.To {
			s.To = c.End()
		}

		found = true
	}

	return s, found
}

func nodes[T syntax.Node](ts []T) []syntax.Node {
	ns := make([]syntax.Node, 0, len(ts))
	for _, t := range ts {
		ns = append(ns, t)
	}

	return ns
}

func (b *Builder) Ident(name string) *syntax.IdentNode {
	return &syntax.IdentNode{Span: b.leaf(len(name)), Name: name}
}

func (b *Builder) Lit(value string) *syntax.LiteralNode {
	return &syntax.LiteralNode{Span: b.leaf(len(value)), Value: value}
}

// Type creates a type reference; type arguments must be created by the caller before.
func (b *Builder) Type(name string, args ...syntax.Node) *syntax.TypeExprNode {
	s := b.leaf(len(name))
	if len(args) > 0 {
		s = syntax.Span{From: min(s.From, args[0].Pos()), To: max(s.To, args[len(args)-1].End()+1)}
	}

	return &syntax.TypeExprNode{Span: s, Name: name, Args: args}
}

func (b *Builder) Paren(x syntax.Node) *syntax.ParenNode {
	return &syntax.ParenNode{Span: b.around(x), X: x}
}

func (b *Builder) Binary(x syntax.Node, op string, y syntax.Node) *syntax.BinaryNode {
	return &syntax.BinaryNode{Span: b.exact(x, y), Op: op, X: x, Y: y}
}

func (b *Builder) Unary(op string, x syntax.Node) *syntax.UnaryNode {
	return &syntax.UnaryNode{Span: b.around(x), Op: op, X: x}
}

func (b *Builder) Postfix(x syntax.Node, op string) *syntax.UnaryNode {
	return &syntax.UnaryNode{Span: b.after(x), Op: op, X: x, Postfix: true}
}

func (b *Builder) Cond(cond, then, els syntax.Node) *syntax.ConditionalNode {
	return &syntax.ConditionalNode{Span: b.exact(cond, then, els), Cond: cond, Then: then, Else: els}
}

func (b *Builder) Assign(lhs, rhs syntax.Node) *syntax.AssignNode {
	return &syntax.AssignNode{Span: b.exact(lhs, rhs), Lhs: []syntax.Node{lhs}, Rhs: []syntax.Node{rhs}}
}

func (b *Builder) AssignN(lhs, rhs []syntax.Node) *syntax.AssignNode {
	return &syntax.AssignNode{Span: b.exact(append(append([]syntax.Node{}, lhs...), rhs...)...), Lhs: lhs, Rhs: rhs}
}

func (b *Builder) OpAssign(x syntax.Node, op string, y syntax.Node) *syntax.CompoundAssignNode {
	return &syntax.CompoundAssignNode{Span: b.exact(x, y), Op: op, X: x, Y: y}
}

func (b *Builder) Call(fun syntax.Node, args ...syntax.Node) *syntax.CallNode {
	return &syntax.CallNode{Span: b.after(append([]syntax.Node{fun}, args...)...), Fun: fun, Args: args}
}

func (b *Builder) New(typ syntax.Node, args ...syntax.Node) *syntax.NewInstanceNode {
	return &syntax.NewInstanceNode{Span: b.around(append([]syntax.Node{typ}, args...)...), Type: typ, Args: args}
}

// Anonymous creates an instance creation with an anonymous class body.
func (b *Builder) Anonymous(typ syntax.Node, members ...syntax.Node) *syntax.NewInstanceNode {
	body := &syntax.ClassDeclNode{Span: b.around(members...), Members: members}

	return &syntax.NewInstanceNode{Span: b.around(typ, body), Type: typ, Body: body}
}

func (b *Builder) NewArray(elem syntax.Node, dims, elems []syntax.Node) *syntax.NewArrayNode {
	all := append(append([]syntax.Node{elem}, dims...), elems...)

	return &syntax.NewArrayNode{Span: b.around(all...), Elem: elem, Dims: dims, Elems: elems}
}

func (b *Builder) Index(x, index syntax.Node) *syntax.ArrayAccessNode {
	return &syntax.ArrayAccessNode{Span: b.after(x, index), X: x, Index: index}
}

// Select creates x.name; the name is allocated after x.
func (b *Builder) Select(x syntax.Node, name string) *syntax.MemberSelectNode {
	sel := b.Ident(name)

	return &syntax.MemberSelectNode{Span: b.exact(x, sel), X: x, Sel: sel}
}

func (b *Builder) Cast(typ, x syntax.Node) *syntax.CastNode {
	return &syntax.CastNode{Span: b.around(typ, x), Type: typ, X: x}
}

func (b *Builder) InstanceOf(x, typ syntax.Node) *syntax.InstanceOfNode {
	return &syntax.InstanceOfNode{Span: b.exact(x, typ), X: x, Type: typ}
}

func (b *Builder) Lambda(body syntax.Node, params ...*syntax.VarDeclNode) *syntax.LambdaNode {
	return &syntax.LambdaNode{Span: b.around(append(nodes(params), body)...), Params: params, Body: body}
}

// Var declares name with an optional type and initializer. The name is allocated last.
func (b *Builder) Var(typ syntax.Node, name string, init syntax.Node) *syntax.VarDeclNode {
	id := b.Ident(name)

	return &syntax.VarDeclNode{Span: b.after(typ, id, init), Name: id, Type: typ, Init: init}
}

func (b *Builder) Expr(x syntax.Node) *syntax.ExprStmtNode {
	return &syntax.ExprStmtNode{Span: b.after(x), X: x}
}

func (b *Builder) Block(list ...syntax.Node) *syntax.BlockNode {
	return &syntax.BlockNode{Span: b.around(list...), List: list}
}

func (b *Builder) Return(results ...syntax.Node) *syntax.ReturnNode {
	return &syntax.ReturnNode{Span: b.around(results...), Results: results}
}

func (b *Builder) If(cond, then, els syntax.Node) *syntax.IfNode {
	return &syntax.IfNode{Span: b.around(cond, then, els), Cond: cond, Then: then, Else: els}
}

func (b *Builder) While(cond, body syntax.Node) *syntax.WhileNode {
	return &syntax.WhileNode{Span: b.around(cond, body), Cond: cond, Body: body}
}

func (b *Builder) DoWhile(body, cond syntax.Node) *syntax.DoWhileNode {
	return &syntax.DoWhileNode{Span: b.around(body, cond), Body: body, Cond: cond}
}

func (b *Builder) For(cond, body syntax.Node) *syntax.ForNode {
	return &syntax.ForNode{Span: b.around(cond, body), Cond: cond, Body: body}
}

func (b *Builder) ForInit(init []syntax.Node, cond syntax.Node, update []syntax.Node, body syntax.Node) *syntax.ForNode {
	all := append(append(append([]syntax.Node{}, init...), cond), update...)

	return &syntax.ForNode{Span: b.around(append(all, body)...), Init: init, Cond: cond, Update: update, Body: body}
}

func (b *Builder) ForEach(v *syntax.VarDeclNode, x, body syntax.Node) *syntax.EnhancedForNode {
	s := b.around(x, body)
	if v != nil {
		s = b.around(v, x, body)
	}

	return &syntax.EnhancedForNode{Span: s, Var: v, X: x, Body: body}
}

func (b *Builder) Switch(tag syntax.Node, cases ...*syntax.CaseNode) *syntax.SwitchNode {
	return &syntax.SwitchNode{Span: b.around(append([]syntax.Node{tag}, nodes(cases)...)...), Tag: tag, Cases: cases}
}

func (b *Builder) Case(labels []syntax.Node, body ...syntax.Node) *syntax.CaseNode {
	return &syntax.CaseNode{Span: b.around(append(append([]syntax.Node{}, labels...), body...)...), Labels: labels, Body: body}
}

func (b *Builder) Default(body ...syntax.Node) *syntax.CaseNode {
	return &syntax.CaseNode{Span: b.around(body...), Body: body}
}

func (b *Builder) Arrow(labels []syntax.Node, body ...syntax.Node) *syntax.CaseNode {
	c := b.Case(labels, body...)
	c.Arrow = true

	return c
}

func (b *Builder) Try(body *syntax.BlockNode, catches ...*syntax.CatchNode) *syntax.TryNode {
	return &syntax.TryNode{Span: b.around(append([]syntax.Node{body}, nodes(catches)...)...), Body: body, Catches: catches}
}

// TryFinally creates a try statement with a finally block.
func (b *Builder) TryFinally(body *syntax.BlockNode, finally *syntax.BlockNode, catches ...*syntax.CatchNode) *syntax.TryNode {
	all := append(append([]syntax.Node{body}, nodes(catches)...), finally)

	return &syntax.TryNode{Span: b.around(all...), Body: body, Catches: catches, Finally: finally}
}

func (b *Builder) Catch(types []syntax.Node, body *syntax.BlockNode) *syntax.CatchNode {
	return &syntax.CatchNode{Span: b.around(append(append([]syntax.Node{}, types...), body)...), Types: types, Body: body}
}

func (b *Builder) Throw(x syntax.Node) *syntax.ThrowNode {
	return &syntax.ThrowNode{Span: b.around(x), X: x}
}

// Break creates a break statement; an empty label breaks the innermost target.
func (b *Builder) Break(label string) *syntax.BreakNode {
	if label == "" {
		return &syntax.BreakNode{Span: b.leaf(5)}
	}

	id := b.Ident(label)

	return &syntax.BreakNode{Span: b.around(id), Label: id}
}

// Continue creates a continue statement; an empty label continues the innermost loop.
func (b *Builder) Continue(label string) *syntax.ContinueNode {
	if label == "" {
		return &syntax.ContinueNode{Span: b.leaf(8)}
	}

	id := b.Ident(label)

	return &syntax.ContinueNode{Span: b.around(id), Label: id}
}

func (b *Builder) Fallthrough() *syntax.FallthroughNode {
	return &syntax.FallthroughNode{Span: b.leaf(11)}
}

func (b *Builder) Labeled(label *syntax.IdentNode, stmt syntax.Node) *syntax.LabeledNode {
	return &syntax.LabeledNode{Span: b.exact(label, stmt), Label: label, Stmt: stmt}
}

func (b *Builder) Sync(lock syntax.Node, body *syntax.BlockNode) *syntax.SynchronizedNode {
	return &syntax.SynchronizedNode{Span: b.around(lock, body), Lock: lock, Body: body}
}

func (b *Builder) Assert(cond syntax.Node) *syntax.AssertNode {
	return &syntax.AssertNode{Span: b.around(cond), Cond: cond}
}

func (b *Builder) Empty() *syntax.EmptyNode {
	return &syntax.EmptyNode{Span: b.leaf(1)}
}

func (b *Builder) Opaque(children ...syntax.Node) *syntax.OpaqueNode {
	return &syntax.OpaqueNode{Span: b.around(children...), Children: children}
}

// Method declares a method with the given result type; result may be nil.
func (b *Builder) Method(name *syntax.IdentNode, result syntax.Node, body *syntax.BlockNode, params ...*syntax.VarDeclNode) *syntax.MethodDeclNode {
	all := append(append([]syntax.Node{result, name}, nodes(params)...), body)

	return &syntax.MethodDeclNode{Span: b.around(all...), Name: name, Params: params, Result: result, Body: body}
}

func (b *Builder) Class(name *syntax.IdentNode, members ...syntax.Node) *syntax.ClassDeclNode {
	return &syntax.ClassDeclNode{Span: b.around(append([]syntax.Node{name}, members...)...), Name: name, Members: members}
}

func (b *Builder) Unit(decls ...syntax.Node) *syntax.CompilationUnitNode {
	return &syntax.CompilationUnitNode{Span: b.around(decls...), Decls: decls}
}
