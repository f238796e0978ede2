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

package syntax

import "go/token"

// Node is a syntax tree node.
type Node interface {
	Pos() token.Pos // position of first character belonging to the node
	End() token.Pos // position of first character immediately after the node
	Category() Category
}

// Span is the source range of a node, embedded in every node type.
type Span struct {
	From, To token.Pos
}

// Pos returns the start of the span.
func (s Span) Pos() token.Pos { return s.From }

// End returns the position immediately after the span.
func (s Span) End() token.Pos { return s.To }

// Declarations.
type (
	// CompilationUnitNode is the root of a source file.
	CompilationUnitNode struct {
		Span
		Decls []Node
	}

	// ClassDeclNode declares a class, either at top level or as a local or anonymous class body.
	ClassDeclNode struct {
		Span
		Name    *IdentNode // nil for anonymous classes
		Members []Node
	}

	// MethodDeclNode declares a method or function.
	MethodDeclNode struct {
		Span
		Name   *IdentNode
		Params []*VarDeclNode
		Result Node   // result type expression; nil when the method has no result
		Throws []Node // declared exception types
		Body   *BlockNode
	}

	// VarDeclNode declares a single variable, field, parameter or constant.
	VarDeclNode struct {
		Span
		Name *IdentNode
		Type Node // nil when the type is inferred from Init
		Init Node
	}
)

// Statements.
type (
	BlockNode struct {
		Span
		List []Node
	}

	ExprStmtNode struct {
		Span
		X Node
	}

	IfNode struct {
		Span
		Init Node
		Cond Node
		Then Node
		Else Node
	}

	WhileNode struct {
		Span
		Cond Node
		Body Node
	}

	DoWhileNode struct {
		Span
		Body Node
		Cond Node
	}

	// ForNode is a three-clause loop; a nil Cond loops forever.
	ForNode struct {
		Span
		Init   []Node
		Cond   Node
		Update []Node
		Body   Node
	}

	// EnhancedForNode iterates over the elements of X.
	EnhancedForNode struct {
		Span
		Var  *VarDeclNode // nil when the loop does not declare a typed variable
		X    Node
		Body Node
	}

	// SwitchNode is a switch statement or expression. A nil Tag switches on true.
	SwitchNode struct {
		Span
		Init       Node
		Tag        Node
		Cases      []*CaseNode
		Exhaustive bool // some case always runs, even without a default
	}

	// CaseNode is a switch case. Nil Labels denote the default case.
	CaseNode struct {
		Span
		Labels []Node
		Body   []Node
		Arrow  bool // rule form; control never falls into the next case
	}

	TryNode struct {
		Span
		Resources []Node
		Body      *BlockNode
		Catches   []*CatchNode
		Finally   *BlockNode
	}

	// CatchNode is a catch clause. More than one type denotes a multi-catch.
	CatchNode struct {
		Span
		Types []Node
		Name  *IdentNode
		Body  *BlockNode
	}

	ThrowNode struct {
		Span
		X Node
	}

	ReturnNode struct {
		Span
		Results []Node
	}

	BreakNode struct {
		Span
		Label *IdentNode
	}

	ContinueNode struct {
		Span
		Label *IdentNode
	}

	FallthroughNode struct {
		Span
	}

	LabeledNode struct {
		Span
		Label *IdentNode
		Stmt  Node
	}

	SynchronizedNode struct {
		Span
		Lock Node
		Body *BlockNode
	}

	AssertNode struct {
		Span
		Cond Node
		Msg  Node
	}

	EmptyNode struct {
		Span
	}
)

// Expressions.
type (
	// LambdaNode is a function literal. Body is a *BlockNode or an expression.
	LambdaNode struct {
		Span
		Params []*VarDeclNode
		Body   Node
	}

	// AssignNode is a simple or parallel assignment.
	AssignNode struct {
		Span
		Lhs    []Node
		Rhs    []Node
		Define bool // the assignment declares the left-hand side
	}

	CompoundAssignNode struct {
		Span
		Op string
		X  Node
		Y  Node
	}

	BinaryNode struct {
		Span
		Op string
		X  Node
		Y  Node
	}

	UnaryNode struct {
		Span
		Op      string
		X       Node
		Postfix bool
	}

	ConditionalNode struct {
		Span
		Cond Node
		Then Node
		Else Node
	}

	CallNode struct {
		Span
		Fun  Node
		Args []Node
	}

	// NewInstanceNode creates an object. A non-nil Body declares an anonymous class.
	NewInstanceNode struct {
		Span
		Type Node
		Args []Node
		Body *ClassDeclNode
	}

	NewArrayNode struct {
		Span
		Elem  Node
		Dims  []Node
		Elems []Node
	}

	ArrayAccessNode struct {
		Span
		X     Node
		Index Node
	}

	MemberSelectNode struct {
		Span
		X   Node
		Sel *IdentNode
	}

	IdentNode struct {
		Span
		Name string
	}

	LiteralNode struct {
		Span
		Value string
	}

	ParenNode struct {
		Span
		X Node
	}

	CastNode struct {
		Span
		Type Node
		X    Node
	}

	InstanceOfNode struct {
		Span
		X    Node
		Type Node
	}

	// TypeExprNode is a type reference, optionally with type arguments.
	TypeExprNode struct {
		Span
		Name string
		Args []Node
	}

	// OpaqueNode stands for any construct without a dedicated category.
	OpaqueNode struct {
		Span
		Children []Node
	}
)

func (*CompilationUnitNode) Category() Category { return CompilationUnit }
func (*ClassDeclNode) Category() Category       { return ClassDecl }
func (*MethodDeclNode) Category() Category      { return MethodDecl }
func (*VarDeclNode) Category() Category         { return VarDecl }
func (*BlockNode) Category() Category           { return Block }
func (*ExprStmtNode) Category() Category        { return ExprStmt }
func (*IfNode) Category() Category              { return If }
func (*WhileNode) Category() Category           { return While }
func (*DoWhileNode) Category() Category         { return DoWhile }
func (*ForNode) Category() Category             { return For }
func (*EnhancedForNode) Category() Category     { return EnhancedFor }
func (*SwitchNode) Category() Category          { return Switch }
func (*CaseNode) Category() Category            { return Case }
func (*TryNode) Category() Category             { return Try }
func (*CatchNode) Category() Category           { return Catch }
func (*ThrowNode) Category() Category           { return Throw }
func (*ReturnNode) Category() Category          { return Return }
func (*BreakNode) Category() Category           { return Break }
func (*ContinueNode) Category() Category        { return Continue }
func (*FallthroughNode) Category() Category     { return Fallthrough }
func (*LabeledNode) Category() Category         { return Labeled }
func (*SynchronizedNode) Category() Category    { return Synchronized }
func (*AssertNode) Category() Category          { return Assert }
func (*EmptyNode) Category() Category           { return Empty }
func (*LambdaNode) Category() Category          { return Lambda }
func (*AssignNode) Category() Category          { return Assign }
func (*CompoundAssignNode) Category() Category  { return CompoundAssign }
func (*BinaryNode) Category() Category          { return Binary }
func (*UnaryNode) Category() Category           { return Unary }
func (*ConditionalNode) Category() Category     { return Conditional }
func (*CallNode) Category() Category            { return Call }
func (*NewInstanceNode) Category() Category     { return NewInstance }
func (*NewArrayNode) Category() Category        { return NewArray }
func (*ArrayAccessNode) Category() Category     { return ArrayAccess }
func (*MemberSelectNode) Category() Category    { return MemberSelect }
func (*IdentNode) Category() Category           { return Ident }
func (*LiteralNode) Category() Category         { return Literal }
func (*ParenNode) Category() Category           { return Paren }
func (*CastNode) Category() Category            { return Cast }
func (*InstanceOfNode) Category() Category      { return InstanceOf }
func (*TypeExprNode) Category() Category        { return TypeExpr }
func (*OpaqueNode) Category() Category          { return Opaque }
