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

package completion

import (
	"context"
	"slices"

	"fillmore-labs.com/fixfacts/internal/model"
	"fillmore-labs.com/fixfacts/internal/syntax"
)

// jump is the kind of an abrupt completion resolved inside the analyzed root.
type jump uint8

const (
	breakJump jump = iota
	continueJump
	caughtJump
)

// mark records an abrupt completion targeting a statement visited earlier, which has to
// re-derive its own completion from it.
type mark struct {
	kind   jump
	target syntax.Node // loop, switch or labeled statement; catch clause for caughtJump
}

// outcome is the completion of one statement.
type outcome struct {
	normal bool
	marks  []mark
}

func completes(marks ...[]mark) outcome { return outcome{normal: true, marks: slices.Concat(marks...)} }

func abrupt(marks ...mark) outcome { return outcome{marks: marks} }

func (o outcome) has(kind jump, target syntax.Node) bool {
	return slices.Contains(o.marks, mark{kind: kind, target: target})
}

// resolve drops the marks targeting target.
func (o outcome) resolve(target syntax.Node) outcome {
	o.marks = slices.DeleteFunc(slices.Clone(o.marks), func(m mark) bool { return m.target == target })

	return o
}

// env is the context of the visited statement. It is passed by value; appends never share
// backing arrays with the caller.
type env struct {
	frames  []frame       // enclosing try statements, innermost last
	targets []syntax.Node // enclosing loops, switches and labeled statements, innermost last
}

func (e env) enter(target syntax.Node) env {
	e.targets = append(slices.Clip(e.targets), target)

	return e
}

func (e env) guard(f frame) env {
	e.frames = append(slices.Clip(e.frames), f)

	return e
}

type visitor struct {
	ctx  context.Context //nolint:containedctx
	snap model.Snapshot
	*options
	strict bool
}

// root analyzes the analysis root, entering method and lambda bodies.
func (v *visitor) root(n syntax.Node) outcome {
	switch n := n.(type) {
	case *syntax.MethodDeclNode:
		if n.Body == nil {
			return abrupt()
		}

		return v.stmt(env{}, n.Body)

	case *syntax.LambdaNode:
		if b, ok := n.Body.(*syntax.BlockNode); ok {
			return v.stmt(env{}, b)
		}

		return completes()

	case *syntax.CaseNode:
		return v.list(env{}, n.Body)

	default:
		return v.stmt(env{}, n)
	}
}

func (v *visitor) stmt(e env, n syntax.Node) outcome {
	switch n := n.(type) {
	case nil:
		return completes()

	case *syntax.BlockNode:
		if n == nil {
			return completes()
		}

		return v.list(e, n.List)

	case *syntax.ExprStmtNode:
		return v.expr(n.X)

	case *syntax.IfNode:
		return v.ifStmt(e, n)

	case *syntax.WhileNode:
		return v.loop(e, n, n.Body, n.Cond)

	case *syntax.ForNode:
		return v.loop(e, n, n.Body, n.Cond)

	case *syntax.EnhancedForNode:
		return v.loop(e, n, n.Body, nil)

	case *syntax.DoWhileNode:
		return v.doWhile(e, n)

	case *syntax.SwitchNode:
		return v.switchStmt(e, n)

	case *syntax.TryNode:
		return v.try(e, n)

	case *syntax.ThrowNode:
		return v.throw(e, n)

	case *syntax.ReturnNode:
		return abrupt()

	case *syntax.BreakNode:
		return v.breakStmt(e, n)

	case *syntax.ContinueNode:
		return v.continueStmt(e, n)

	case *syntax.LabeledNode:
		o := v.stmt(e.enter(n), n.Stmt)

		return outcome{normal: o.normal || o.has(breakJump, n), marks: o.resolve(n).marks}

	case *syntax.SynchronizedNode:
		return v.stmt(e, n.Body)

	case *syntax.FallthroughNode, *syntax.EmptyNode, *syntax.VarDeclNode, *syntax.AssertNode:
		return completes()

	case *syntax.ClassDeclNode, *syntax.LambdaNode:
		// Not entered, their bodies run elsewhere.
		return completes()

	case *syntax.AssignNode, *syntax.CompoundAssignNode, *syntax.UnaryNode, *syntax.CallNode,
		*syntax.NewInstanceNode, *syntax.ParenNode:
		return v.expr(n)

	default:
		return abrupt()
	}
}

// list visits statements in order. The first statement that can't complete normally makes the
// rest unreachable.
func (v *visitor) list(e env, stmts []syntax.Node) outcome {
	var marks []mark

	for _, s := range stmts {
		o := v.stmt(e, s)
		marks = append(marks, o.marks...)

		if !o.normal {
			return outcome{marks: marks}
		}
	}

	return completes(marks)
}

// expr handles an expression used as a statement.
func (v *visitor) expr(x syntax.Node) outcome {
	if v.methodLevel && v.terminating(x) {
		return abrupt()
	}

	return completes()
}

func (v *visitor) terminating(x syntax.Node) bool {
	call, ok := syntax.Unparen(x).(*syntax.CallNode)
	if !ok {
		return false
	}

	fun := syntax.Unparen(call.Fun)

	sym := v.snap.SymbolOf(fun)
	if sel, ok := fun.(*syntax.MemberSelectNode); ok && sym == nil {
		sym = v.snap.SymbolOf(sel.Sel)
	}

	return v.tracker.Terminating(sym)
}

func (v *visitor) ifStmt(e env, n *syntax.IfNode) outcome {
	then, els := v.stmt(e, n.Then), v.stmt(e, n.Else)

	return outcome{normal: then.normal || els.normal, marks: slices.Concat(then.marks, els.marks)}
}

// loop handles loops testing their condition before the first iteration.
func (v *visitor) loop(e env, n, body, cond syntax.Node) outcome {
	o := v.stmt(e.enter(n), body)

	normal := true
	if v.strict && alwaysTrue(n, cond) {
		normal = o.has(breakJump, n)
	}

	return outcome{normal: normal, marks: o.resolve(n).marks}
}

func (v *visitor) doWhile(e env, n *syntax.DoWhileNode) outcome {
	o := v.stmt(e.enter(n), n.Body)

	normal := o.normal || o.has(continueJump, n)
	if v.strict && alwaysTrue(n, n.Cond) {
		normal = false
	}

	return outcome{normal: normal || o.has(breakJump, n), marks: o.resolve(n).marks}
}

// alwaysTrue reports whether a loop condition is missing or the literal true.
func alwaysTrue(n, cond syntax.Node) bool {
	if cond == nil {
		_, ok := n.(*syntax.ForNode)

		return ok
	}

	lit, ok := syntax.Unparen(cond).(*syntax.LiteralNode)

	return ok && lit.Value == "true"
}

func (v *visitor) breakStmt(e env, n *syntax.BreakNode) outcome {
	for _, t := range slices.Backward(e.targets) {
		if n.Label != nil {
			if l, ok := t.(*syntax.LabeledNode); ok && l.Label != nil && l.Label.Name == n.Label.Name {
				return abrupt(mark{kind: breakJump, target: l})
			}

			continue
		}

		switch t.Category() {
		case syntax.While, syntax.DoWhile, syntax.For, syntax.EnhancedFor, syntax.Switch:
			return abrupt(mark{kind: breakJump, target: t})
		}
	}

	return abrupt()
}

func (v *visitor) continueStmt(e env, n *syntax.ContinueNode) outcome {
	for _, t := range slices.Backward(e.targets) {
		if n.Label != nil {
			if l, ok := t.(*syntax.LabeledNode); ok && l.Label != nil && l.Label.Name == n.Label.Name {
				if l.Stmt == nil || !l.Stmt.Category().Loop() {
					return abrupt()
				}

				return abrupt(mark{kind: continueJump, target: l.Stmt})
			}

			continue
		}

		if t.Category().Loop() {
			return abrupt(mark{kind: continueJump, target: t})
		}
	}

	return abrupt()
}

func (v *visitor) throw(e env, n *syntax.ThrowNode) outcome {
	thrown := v.snap.TypeOf(n.X)
	if !thrown.Valid() {
		return abrupt()
	}

	for _, f := range slices.Backward(e.frames) {
		if c := catchOf(v.snap, f, thrown); c != nil {
			return abrupt(mark{kind: caughtJump, target: c})
		}
	}

	return abrupt()
}

// try completes normally when its body or a reachable catch clause does, and its finally
// block, if any, completes normally. A catch clause is reachable when a throw in the body is
// caught by it or the body may throw an unchecked exception.
func (v *visitor) try(e env, n *syntax.TryNode) outcome {
	body := v.stmt(e.guard(newFrame(v.snap, n)), n.Body)
	normal, marks := body.normal, body.marks

	calls := mayThrow(n.Body)

	for _, c := range n.Catches {
		marks = slices.DeleteFunc(slices.Clone(marks), func(m mark) bool { return m.target == c })

		if !calls && !body.has(caughtJump, c) {
			continue
		}

		o := v.stmt(e, c.Body)
		normal = normal || o.normal
		marks = append(marks, o.marks...)
	}

	if n.Finally != nil {
		f := v.stmt(e, n.Finally)
		normal = normal && f.normal
		marks = append(marks, f.marks...)
	}

	return outcome{normal: normal, marks: marks}
}

// mayThrow reports whether n calls a method, divides, indexes an array or casts outside of
// nested lambdas and classes. Other implicit throwers, like dereferencing null, are ignored.
func mayThrow(n *syntax.BlockNode) bool {
	if n == nil {
		return false
	}

	found := false
	syntax.Inspect(n, func(c syntax.Node) bool {
		switch c := c.(type) {
		case *syntax.CallNode, *syntax.ArrayAccessNode, *syntax.CastNode:
			found = true

		case *syntax.BinaryNode:
			found = c.Op == "/" || c.Op == "%"

		case *syntax.CompoundAssignNode:
			found = c.Op == "/=" || c.Op == "%="

		case *syntax.LambdaNode, *syntax.ClassDeclNode:
			return false
		}

		return !found
	})

	return found
}
