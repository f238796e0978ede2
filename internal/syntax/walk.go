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

// Children returns the direct children of n in source order.
func Children(n Node) []Node {
	var c collector

	switch n := n.(type) {
	case *CompilationUnitNode:
		c.add(n.Decls...)

	case *ClassDeclNode:
		c.ident(n.Name)
		c.add(n.Members...)

	case *MethodDeclNode:
		c.ident(n.Name)
		c.vars(n.Params)
		c.add(n.Result)
		c.add(n.Throws...)
		c.block(n.Body)

	case *VarDeclNode:
		c.add(n.Type)
		c.ident(n.Name)
		c.add(n.Init)

	case *BlockNode:
		c.add(n.List...)

	case *ExprStmtNode:
		c.add(n.X)

	case *IfNode:
		c.add(n.Init, n.Cond, n.Then, n.Else)

	case *WhileNode:
		c.add(n.Cond, n.Body)

	case *DoWhileNode:
		c.add(n.Body, n.Cond)

	case *ForNode:
		c.add(n.Init...)
		c.add(n.Cond)
		c.add(n.Update...)
		c.add(n.Body)

	case *EnhancedForNode:
		if n.Var != nil {
			c.add(n.Var)
		}
		c.add(n.X, n.Body)

	case *SwitchNode:
		c.add(n.Init, n.Tag)
		for _, cs := range n.Cases {
			c.add(cs)
		}

	case *CaseNode:
		c.add(n.Labels...)
		c.add(n.Body...)

	case *TryNode:
		c.add(n.Resources...)
		c.block(n.Body)
		for _, cc := range n.Catches {
			c.add(cc)
		}
		c.block(n.Finally)

	case *CatchNode:
		c.add(n.Types...)
		c.ident(n.Name)
		c.block(n.Body)

	case *ThrowNode:
		c.add(n.X)

	case *ReturnNode:
		c.add(n.Results...)

	case *BreakNode:
		c.ident(n.Label)

	case *ContinueNode:
		c.ident(n.Label)

	case *LabeledNode:
		c.ident(n.Label)
		c.add(n.Stmt)

	case *SynchronizedNode:
		c.add(n.Lock)
		c.block(n.Body)

	case *AssertNode:
		c.add(n.Cond, n.Msg)

	case *LambdaNode:
		c.vars(n.Params)
		c.add(n.Body)

	case *AssignNode:
		c.add(n.Lhs...)
		c.add(n.Rhs...)

	case *CompoundAssignNode:
		c.add(n.X, n.Y)

	case *BinaryNode:
		c.add(n.X, n.Y)

	case *UnaryNode:
		c.add(n.X)

	case *ConditionalNode:
		c.add(n.Cond, n.Then, n.Else)

	case *CallNode:
		c.add(n.Fun)
		c.add(n.Args...)

	case *NewInstanceNode:
		c.add(n.Type)
		c.add(n.Args...)
		if n.Body != nil {
			c.add(n.Body)
		}

	case *NewArrayNode:
		c.add(n.Elem)
		c.add(n.Dims...)
		c.add(n.Elems...)

	case *ArrayAccessNode:
		c.add(n.X, n.Index)

	case *MemberSelectNode:
		c.add(n.X)
		c.ident(n.Sel)

	case *ParenNode:
		c.add(n.X)

	case *CastNode:
		c.add(n.Type, n.X)

	case *InstanceOfNode:
		c.add(n.X, n.Type)

	case *TypeExprNode:
		c.add(n.Args...)

	case *OpaqueNode:
		c.add(n.Children...)
	}

	return c.nodes
}

type collector struct{ nodes []Node }

func (c *collector) add(ns ...Node) {
	for _, n := range ns {
		if n != nil {
			c.nodes = append(c.nodes, n)
		}
	}
}

func (c *collector) ident(id *IdentNode) {
	if id != nil {
		c.nodes = append(c.nodes, id)
	}
}

func (c *collector) block(b *BlockNode) {
	if b != nil {
		c.nodes = append(c.nodes, b)
	}
}

func (c *collector) vars(vs []*VarDeclNode) {
	for _, v := range vs {
		if v != nil {
			c.nodes = append(c.nodes, v)
		}
	}
}

// Inspect traverses the tree rooted at n in depth-first order. It calls f(n); if f returns true,
// Inspect invokes f recursively for each child of n.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}

	for _, c := range Children(n) {
		Inspect(c, f)
	}
}
