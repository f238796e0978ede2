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

package expect_test

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"testing"

	. "fillmore-labs.com/fixfacts/internal/expect"
	"fillmore-labs.com/fixfacts/internal/model"
	"fillmore-labs.com/fixfacts/internal/model/modeltest"
	"fillmore-labs.com/fixfacts/internal/syntax"
	"fillmore-labs.com/fixfacts/internal/syntax/syntaxtest"
	"fillmore-labs.com/fixfacts/internal/typedesc"
)

func infer(t *testing.T, m model.Snapshot, root, errNode syntax.Node) []Result {
	t.Helper()

	path := syntax.PathTo(root, errNode)
	if path == nil {
		t.Fatal("error node not found in tree")
	}

	return Infer(t.Context(), m, path)
}

// single returns the only result and its type names.
func single(t *testing.T, rs []Result) (Result, []string) {
	t.Helper()

	if len(rs) != 1 {
		t.Fatalf("got %d results, want 1", len(rs))
	}

	names := make([]string, 0, len(rs[0].Types))
	for _, ty := range rs[0].Types {
		names = append(names, ty.String())
	}

	return rs[0], names
}

func checkTypes(t *testing.T, got []string, want ...string) {
	t.Helper()

	if !slices.Equal(got, want) {
		t.Errorf("got types %v, want %v", got, want)
	}
}

func checkKinds(t *testing.T, got KindSet, want ...Kind) {
	t.Helper()

	if w := newKinds(want...); got != w {
		t.Errorf("got kinds %v, want %v", KindNames(got), KindNames(w))
	}
}

func newKinds(ks ...Kind) KindSet {
	var s KindSet
	for _, k := range ks {
		s.Enable(k)
	}

	return s
}

func TestVarDeclInit(t *testing.T) {
	t.Parallel()

	m := modeltest.New()
	b := syntaxtest.New()
	typ := b.Type("String")
	e := b.Ident("foo")
	root := b.Block(b.Var(typ, "s", e))
	m.SetType(typ, m.Class("java.lang.String"))

	r, types := single(t, infer(t, m, root, e))
	checkTypes(t, types, "java.lang.String")
	checkKinds(t, r.Kinds, LocalVariable, Field, Parameter)

	if r.Anchor.Node() != e {
		t.Errorf("anchor is %v, want error node", r.Anchor.Node())
	}
}

func TestVarDeclType(t *testing.T) {
	t.Parallel()

	m := modeltest.New()
	b := syntaxtest.New()
	typ := b.Ident("Foo")
	root := b.Block(b.Var(typ, "f", nil))

	r, types := single(t, infer(t, m, root, typ))
	checkTypes(t, types)
	checkKinds(t, r.Kinds, Class, Interface, Enum, Record)
}

func TestAssign(t *testing.T) {
	t.Parallel()

	t.Run("rhs", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		b := syntaxtest.New()
		x, e := b.Ident("x"), b.Ident("foo")
		root := b.Block(b.Expr(b.Assign(x, e)))
		m.SetType(x, m.Prim("int"))

		r, types := single(t, infer(t, m, root, e))
		checkTypes(t, types, "int")
		checkKinds(t, r.Kinds)
	})

	t.Run("lhs", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		str := m.Class("java.lang.String")
		b := syntaxtest.New()
		e, lit := b.Ident("foo"), b.Lit(`"a"`)
		root := b.Block(b.Expr(b.Assign(e, lit)))
		m.SetType(lit, str)

		r, types := single(t, infer(t, m, root, e))
		checkTypes(t, types, "java.lang.String")
		checkKinds(t, r.Kinds, LocalVariable, Field, Parameter)
	})

	t.Run("anonymous", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		b := syntaxtest.New()
		e, typ := b.Ident("task"), b.Type("Runnable")
		anon := b.Anonymous(typ)
		root := b.Block(b.Expr(b.Assign(e, anon)))
		m.SetType(typ, m.Class("java.lang.Runnable"))

		_, types := single(t, infer(t, m, root, e))
		checkTypes(t, types, "java.lang.Runnable")
	})

	t.Run("for init", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		b := syntaxtest.New()
		e, zero := b.Ident("i"), b.Lit("0")
		init := b.Assign(e, zero)
		root := b.Block(b.ForInit([]syntax.Node{init}, nil, nil, b.Block()))
		m.SetType(zero, m.Prim("int"))

		r, types := single(t, infer(t, m, root, e))
		checkTypes(t, types, "int")
		checkKinds(t, r.Kinds, ForInitVariable)
	})

	t.Run("resource", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		b := syntaxtest.New()
		e, typ := b.Ident("in"), b.Type("Reader")
		res := b.Assign(e, b.New(typ))
		body := b.Block()
		try := &syntax.TryNode{
			Span:      syntax.Span{From: res.Pos() - 1, To: body.End() + 1},
			Resources: []syntax.Node{res},
			Body:      body,
		}
		root := b.Block(try)
		m.SetType(res.Rhs[0], m.Class("java.io.Reader"))

		r, types := single(t, infer(t, m, root, e))
		checkTypes(t, types, "java.io.Reader")
		checkKinds(t, r.Kinds, ResourceVariable)
	})

	t.Run("tuple", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		str := m.Class("java.lang.String")
		b := syntaxtest.New()
		a, e, call := b.Ident("a"), b.Ident("err"), b.Call(b.Ident("f"))
		root := b.Block(b.Expr(b.AssignN([]syntax.Node{a, e}, []syntax.Node{call})))
		m.SetType(call, typedesc.Type{Kind: typedesc.Other, Args: []typedesc.Type{m.Prim("int"), str}})

		_, types := single(t, infer(t, m, root, e))
		checkTypes(t, types, "java.lang.String")
	})
}

func TestCompoundAssign(t *testing.T) {
	t.Parallel()

	m := modeltest.New()
	b := syntaxtest.New()
	x, e := b.Ident("s"), b.Ident("suffix")
	y, e2 := b.Ident("bits"), b.Ident("n")
	root := b.Block(b.Expr(b.OpAssign(x, "+=", e)), b.Expr(b.OpAssign(y, "<<=", e2)))
	m.SetType(x, m.Class("java.lang.String"))
	m.SetType(y, m.Prim("long"))

	_, types := single(t, infer(t, m, root, e))
	checkTypes(t, types, "java.lang.String")

	_, types = single(t, infer(t, m, root, e2))
	checkTypes(t, types, "int")
}

func TestReturn(t *testing.T) {
	t.Parallel()

	t.Run("method", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		b := syntaxtest.New()
		e := b.Ident("result")
		meth := b.Method(b.Ident("f"), b.Type("int"), b.Block(b.Return(e)))
		m.SetType(meth, m.Sig(nil, m.Prim("int")))

		r, types := single(t, infer(t, m, meth, e))
		checkTypes(t, types, "int")
		checkKinds(t, r.Kinds)
	})

	t.Run("void", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		b := syntaxtest.New()
		e := b.Ident("result")
		meth := b.Method(b.Ident("f"), nil, b.Block(b.Return(e)))
		m.SetType(meth, m.Sig(nil))

		if rs := infer(t, m, meth, e); rs != nil {
			t.Errorf("got %v, want no result", rs)
		}
	})

	t.Run("multiple", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		b := syntaxtest.New()
		a, e := b.Ident("a"), b.Ident("err")
		meth := b.Method(b.Ident("f"), nil, b.Block(b.Return(a, e)))
		m.SetType(meth, m.Sig(nil, m.Prim("int"), m.Class("java.lang.Throwable")))

		_, types := single(t, infer(t, m, meth, e))
		checkTypes(t, types, "java.lang.Throwable")
	})

	t.Run("lambda", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		b := syntaxtest.New()
		e := b.Ident("result")
		lam := b.Lambda(b.Block(b.Return(e)))
		fn := m.Functional("java.util.function.IntSupplier", m.Sig(nil, m.Prim("int")))
		meth := b.Method(b.Ident("f"), b.Type("void"), b.Block(b.Expr(lam)))
		m.SetType(lam, fn)
		m.SetType(meth, m.Sig(nil))

		_, types := single(t, infer(t, m, meth, e))
		checkTypes(t, types, "int")
	})

	t.Run("error type", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		b := syntaxtest.New()
		e := b.Ident("result")
		meth := b.Method(b.Ident("f"), b.Type("Broken"), b.Block(b.Return(e)))
		m.SetType(meth, m.Sig(nil, typedesc.Type{Kind: typedesc.Error}))

		if rs := infer(t, m, meth, e); rs != nil {
			t.Errorf("got %v, want no result", rs)
		}
	})
}

func TestCallArgument(t *testing.T) {
	t.Parallel()

	m := modeltest.New()
	str := m.Class("java.lang.String")
	b := syntaxtest.New()
	one, e := b.Lit("1"), b.Ident("arg")
	call := b.Call(b.Ident("f"), one, e)
	root := b.Block(b.Expr(call))
	m.SetType(one, m.Prim("int"))
	m.Overload(call,
		m.Sig([]typedesc.Type{m.Prim("int"), str}),
		m.Sig([]typedesc.Type{m.Prim("long"), m.Prim("boolean")}),
		m.Sig([]typedesc.Type{str, m.Prim("double")}),
		m.Sig([]typedesc.Type{m.Prim("int")}),
		m.Sig([]typedesc.Type{m.Prim("int"), str, str}),
		m.Sig([]typedesc.Type{m.Prim("int"), str}, m.Prim("int")),
	)

	r, types := single(t, infer(t, m, root, e))
	checkTypes(t, types, "java.lang.String", "boolean")
	checkKinds(t, r.Kinds)
}

func TestCallVariadic(t *testing.T) {
	t.Parallel()

	m := modeltest.New()
	str := m.Class("java.lang.String")
	b := syntaxtest.New()
	format, a, e := b.Lit(`"%s %s"`), b.Lit(`"a"`), b.Ident("arg")
	call := b.Call(b.Ident("format"), format, a, e)
	root := b.Block(b.Expr(call))
	m.SetType(format, str).SetType(a, str)
	m.Overload(call, m.Variadic([]typedesc.Type{str, m.Array(m.Class("java.lang.Object"))}, str))

	_, types := single(t, infer(t, m, root, e))
	checkTypes(t, types, "java.lang.Object")
}

func TestConstructorArgument(t *testing.T) {
	t.Parallel()

	m := modeltest.New()
	b := syntaxtest.New()
	typ, e := b.Type("Point"), b.Ident("x")
	ni := b.New(typ, e)
	root := b.Block(b.Expr(ni))
	m.Overload(ni, m.Sig([]typedesc.Type{m.Prim("double")}))

	_, types := single(t, infer(t, m, root, e))
	checkTypes(t, types, "double")

	b2 := syntaxtest.New()
	cls := b2.Ident("Missing")
	root2 := b2.Block(b2.Expr(b2.New(cls)))

	r, _ := single(t, infer(t, m, root2, cls))
	checkKinds(t, r.Kinds, Class)
}

func TestCallee(t *testing.T) {
	t.Parallel()

	m := modeltest.New()
	b := syntaxtest.New()
	typ, e, one := b.Type("int"), b.Ident("compute"), b.Lit("1")
	root := b.Block(b.Var(typ, "n", b.Call(e, one)))
	m.SetType(typ, m.Prim("int"))

	r, types := single(t, infer(t, m, root, e))
	checkTypes(t, types, "int")
	checkKinds(t, r.Kinds, Method)
}

func TestBinary(t *testing.T) {
	t.Parallel()

	t.Run("other operand", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		b := syntaxtest.New()
		x, e := b.Ident("x"), b.Ident("y")
		root := b.Block(b.Expr(b.Binary(x, "+", e)))
		m.SetType(x, m.Prim("long"))

		_, types := single(t, infer(t, m, root, e))
		checkTypes(t, types, "long")
	})

	t.Run("logical", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		b := syntaxtest.New()
		x, e := b.Ident("ok"), b.Ident("ready")
		root := b.Block(b.Expr(b.Binary(x, "&&", e)))

		_, types := single(t, infer(t, m, root, e))
		checkTypes(t, types, "boolean")
	})

	t.Run("both unresolved", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		b := syntaxtest.New()
		typ, e, f := b.Type("double"), b.Ident("a"), b.Ident("b")
		root := b.Block(b.Var(typ, "sum", b.Binary(e, "*", f)))
		m.SetType(typ, m.Prim("double"))

		_, types := single(t, infer(t, m, root, f))
		checkTypes(t, types, "double")
	})

	t.Run("comparison", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		b := syntaxtest.New()
		x, e := b.Ident("x"), b.Ident("y")
		root := b.Block(b.If(b.Binary(e, "<", x), b.Block(), nil))
		m.SetType(x, m.Prim("long"))

		_, types := single(t, infer(t, m, root, e))
		checkTypes(t, types, "long")
	})

	t.Run("comparison with unresolved operand", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		b := syntaxtest.New()
		e, f := b.Ident("a"), b.Ident("b")
		root := b.Block(b.If(b.Binary(e, "==", f), b.Block(), nil))

		if rs := infer(t, m, root, e); len(rs) != 0 {
			t.Errorf("Got %v, want no results", rs)
		}
	})

	t.Run("comparison with null", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		b := syntaxtest.New()
		e, null := b.Ident("v"), b.Lit("null")
		root := b.Block(b.If(b.Binary(e, "!=", null), b.Block(), nil))
		m.SetType(null, typedesc.Type{Kind: typedesc.Other, Name: "null"})

		if rs := infer(t, m, root, e); len(rs) != 0 {
			t.Errorf("Got %v, want no results", rs)
		}
	})
}

func TestUnary(t *testing.T) {
	t.Parallel()

	m := modeltest.New()
	b := syntaxtest.New()
	e := b.Ident("done")
	typ, f := b.Type("int"), b.Ident("delta")
	root := b.Block(b.Expr(b.Unary("!", e)), b.Var(typ, "n", b.Unary("-", f)))
	m.SetType(typ, m.Prim("int"))

	_, types := single(t, infer(t, m, root, e))
	checkTypes(t, types, "boolean")

	_, types = single(t, infer(t, m, root, f))
	checkTypes(t, types, "int")
}

func TestConditions(t *testing.T) {
	t.Parallel()

	m := modeltest.New()
	b := syntaxtest.New()
	c1, c2, c3, c4, c5 := b.Ident("a"), b.Ident("b"), b.Ident("c"), b.Ident("d"), b.Ident("e")
	root := b.Block(
		b.If(c1, b.Block(), nil),
		b.While(c2, b.Block()),
		b.DoWhile(b.Block(), c3),
		b.For(c4, b.Block()),
		b.Assert(c5),
	)

	for i, c := range []syntax.Node{c1, c2, c3, c4, c5} {
		_, types := single(t, infer(t, m, root, c))
		if !slices.Equal(types, []string{"boolean"}) {
			t.Errorf("condition %d: got %v, want boolean", i, types)
		}
	}

	broken := modeltest.New().Without(model.Boolean)
	if rs := infer(t, broken, root, c1); rs != nil {
		t.Errorf("got %v without a boolean type, want no result", rs)
	}
}

func TestConditional(t *testing.T) {
	t.Parallel()

	m := modeltest.New()
	b := syntaxtest.New()
	c, lit, e := b.Ident("flag"), b.Lit(`"a"`), b.Ident("other")
	root := b.Block(b.Expr(b.Cond(c, lit, e)))
	m.SetType(lit, m.Class("java.lang.String"))

	_, types := single(t, infer(t, m, root, e))
	checkTypes(t, types, "java.lang.String")

	_, types = single(t, infer(t, m, root, c))
	checkTypes(t, types, "boolean")
}

func TestEnhancedFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		elem func(m *modeltest.Model) typedesc.Type
		want string
	}{
		{"primitive", func(m *modeltest.Model) typedesc.Type { return m.Prim("int") }, "int[]"},
		{"declared", func(m *modeltest.Model) typedesc.Type { return m.Class("java.lang.String") }, "java.lang.Iterable<java.lang.String>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := modeltest.New()
			b := syntaxtest.New()
			typ := b.Type("T")
			v := b.Var(typ, "v", nil)
			e := b.Ident("items")
			root := b.Block(b.ForEach(v, e, b.Block()))
			m.SetType(typ, tt.elem(m))

			_, types := single(t, infer(t, m, root, e))
			checkTypes(t, types, tt.want)
		})
	}

	t.Run("broken", func(t *testing.T) {
		t.Parallel()

		broken := modeltest.New().Without(model.Iterable)
		b := syntaxtest.New()
		typ := b.Type("String")
		v := b.Var(typ, "v", nil)
		e := b.Ident("items")
		root := b.Block(b.ForEach(v, e, b.Block()))
		broken.SetType(typ, broken.Class("java.lang.String"))

		if rs := infer(t, broken, root, e); rs != nil {
			t.Errorf("got %v without an iterable type, want no result", rs)
		}
	})
}

func TestLambdaBody(t *testing.T) {
	t.Parallel()

	m := modeltest.New()
	b := syntaxtest.New()
	p := b.Var(nil, "s", nil)
	e := b.Ident("length")
	lam := b.Lambda(e, p)
	root := b.Block(b.Expr(lam))
	m.SetType(lam, m.Functional("java.util.function.ToIntFunction",
		m.Sig([]typedesc.Type{m.Class("java.lang.String")}, m.Prim("int"))))

	_, types := single(t, infer(t, m, root, e))
	checkTypes(t, types, "int")
}

func TestArrayAccess(t *testing.T) {
	t.Parallel()

	m := modeltest.New()
	b := syntaxtest.New()
	typ, e, i, j := b.Type("String"), b.Ident("names"), b.Lit("0"), b.Lit("1")
	typ2, f, k := b.Type("String"), b.Ident("rows"), b.Lit("2")
	g, idx := b.Ident("values"), b.Ident("pos")
	root := b.Block(
		b.Var(typ, "s", b.Index(b.Index(e, i), j)),
		b.Var(typ2, "t", b.Index(f, k)),
		b.Expr(b.Index(g, idx)),
	)
	m.SetType(typ, m.Class("java.lang.String")).SetType(typ2, m.Class("java.lang.String"))

	_, types := single(t, infer(t, m, root, e))
	checkTypes(t, types, "java.lang.String[][]")

	_, types = single(t, infer(t, m, root, f))
	checkTypes(t, types, "java.lang.String[]")

	_, types = single(t, infer(t, m, root, idx))
	checkTypes(t, types, "int")
}

func TestParen(t *testing.T) {
	t.Parallel()

	m := modeltest.New()
	b := syntaxtest.New()
	typ, e := b.Type("String"), b.Ident("name")
	root := b.Block(b.Var(typ, "s", b.Paren(b.Paren(e))))
	m.SetType(typ, m.Class("java.lang.String"))

	_, types := single(t, infer(t, m, root, e))
	checkTypes(t, types, "java.lang.String")
}

func TestMemberSelect(t *testing.T) {
	t.Parallel()

	t.Run("static field", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		math := m.Class("java.lang.Math")
		b := syntaxtest.New()
		typ, q := b.Type("double"), b.Ident("Math")
		sel := b.Select(q, "TAU")
		root := b.Block(b.Var(typ, "v", sel))
		m.SetType(typ, m.Prim("double")).SetType(q, math).SetSymbol(q, math.Symbol)

		r, types := single(t, infer(t, m, root, sel.Sel))
		checkTypes(t, types, "double")
		checkKinds(t, r.Kinds, Field)

		if r.Scope.Symbol != math.Symbol {
			t.Errorf("got scope %v, want java.lang.Math", r.Scope)
		}
	})

	t.Run("static method", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		math := m.Class("java.lang.Math")
		b := syntaxtest.New()
		q := b.Ident("Math")
		sel := b.Select(q, "cube")
		root := b.Block(b.Expr(b.Call(sel, b.Lit("2"))))
		m.SetType(q, math).SetSymbol(q, math.Symbol)

		r, _ := single(t, infer(t, m, root, sel.Sel))
		checkKinds(t, r.Kinds, Method)
	})

	t.Run("package", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		b := syntaxtest.New()
		q := b.Ident("util")
		sel := b.Select(q, "Missing")
		root := b.Block(b.Var(sel, "x", nil))
		pkg := m.Package("java.util")
		m.SetType(q, pkg).SetSymbol(q, pkg.Symbol)

		r, types := single(t, infer(t, m, root, sel.Sel))
		checkTypes(t, types)
		checkKinds(t, r.Kinds, Class)
	})

	t.Run("nested class qualifier", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		b := syntaxtest.New()
		q := b.Ident("Map")
		inner := b.Select(q, "Missing")
		outer := b.Select(inner, "CONST")
		root := b.Block(b.Expr(outer))
		mp := m.Class("java.util.Map")
		m.SetType(q, mp).SetSymbol(q, mp.Symbol)

		r, _ := single(t, infer(t, m, root, inner.Sel))
		checkKinds(t, r.Kinds, Class)
	})

	t.Run("instance", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		b := syntaxtest.New()
		typ, q := b.Type("int"), b.Ident("text")
		sel := b.Select(q, "size")
		root := b.Block(b.Var(typ, "n", sel))
		str := m.Class("java.lang.String")
		m.SetType(typ, m.Prim("int")).SetType(q, str)
		m.SetSymbol(q, &typedesc.Symbol{Kind: typedesc.VariableSymbol, Name: "text"})

		r, types := single(t, infer(t, m, root, sel.Sel))
		checkTypes(t, types, "int")
		checkKinds(t, r.Kinds, Field)

		if r.Scope.Symbol != str.Symbol {
			t.Errorf("got scope %v, want java.lang.String", r.Scope)
		}
	})

	t.Run("qualifier", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		b := syntaxtest.New()
		q := b.Ident("helper")
		sel := b.Select(q, "run")
		root := b.Block(b.Expr(b.Call(sel)))

		r, types := single(t, infer(t, m, root, q))
		checkTypes(t, types)
		checkKinds(t, r.Kinds, LocalVariable, Field, Parameter)
	})
}

func TestStatementRules(t *testing.T) {
	t.Parallel()

	m := modeltest.New()
	b := syntaxtest.New()
	thrown := b.Ident("failure")
	tag, label := b.Ident("day"), b.Ident("SUNDAY")
	elemType, dim := b.Type("int"), b.Ident("size")
	castType, operand := b.Type("String"), b.Ident("raw")
	lock := b.Ident("mutex")
	catchType := b.Ident("Oops")
	root := b.Block(
		b.Throw(thrown),
		b.Switch(tag, b.Case([]syntax.Node{label}, b.Break(""))),
		b.Expr(b.NewArray(elemType, []syntax.Node{dim}, nil)),
		b.Expr(b.Cast(castType, operand)),
		b.Sync(lock, b.Block()),
		b.Try(b.Block(), b.Catch([]syntax.Node{catchType}, b.Block())),
	)
	day := m.Enum("java.time.DayOfWeek", "MONDAY", "SUNDAY")
	m.SetType(tag, day).SetType(castType, m.Class("java.lang.String"))

	tests := []struct {
		name  string
		node  syntax.Node
		types []string
		kinds []Kind
	}{
		{"throw", thrown, []string{"java.lang.Throwable"}, nil},
		{"case label", label, []string{"java.time.DayOfWeek"}, nil},
		{"array dimension", dim, []string{"int"}, nil},
		{"cast operand", operand, []string{"java.lang.String"}, nil},
		{"lock", lock, []string{"java.lang.Object"}, nil},
		{"catch type", catchType, nil, []Kind{Class, Interface}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, types := single(t, infer(t, m, root, tt.node))
			checkTypes(t, types, tt.types...)
			checkKinds(t, r.Kinds, tt.kinds...)
		})
	}
}

func TestBoundedWalk(t *testing.T) {
	t.Parallel()

	m := modeltest.New()
	b := syntaxtest.New()
	c, e := b.Ident("ok"), b.Ident("run")
	typ := b.Type("int")
	root := b.Block(b.Var(typ, "x", nil), b.If(c, b.Expr(e), nil))
	m.SetType(typ, m.Prim("int"))

	if rs := infer(t, m, root, e); rs != nil {
		t.Errorf("got %v for a bare expression statement, want no result", rs)
	}
}

func TestDeduplicate(t *testing.T) {
	t.Parallel()

	m := modeltest.New()
	str := m.Class("java.lang.String")
	b := syntaxtest.New()
	e := b.Ident("arg")
	call := b.Call(b.Ident("print"), e)
	root := b.Block(b.Expr(call))
	m.Overload(call,
		m.Sig([]typedesc.Type{str}),
		m.Sig([]typedesc.Type{m.Prim("int")}),
		m.Sig([]typedesc.Type{str}, m.Prim("boolean")),
		m.Sig([]typedesc.Type{{Kind: typedesc.Error}}),
		m.Sig([]typedesc.Type{m.Sig(nil)}),
	)

	_, types := single(t, infer(t, m, root, e))
	checkTypes(t, types, "java.lang.String", "int")
}

func TestNestedClasses(t *testing.T) {
	t.Parallel()

	m := modeltest.New()
	b := syntaxtest.New()
	typ, e := b.Type("int"), b.Ident("count")
	meth := b.Method(b.Ident("f"), nil, b.Block(b.Var(typ, "n", e)))
	inner := b.Class(b.Ident("Inner"), meth)
	outer := b.Class(b.Ident("Outer"), inner)
	m.SetType(typ, m.Prim("int"))
	m.SetType(inner, m.Class("example.Outer.Inner")).SetType(outer, m.Class("example.Outer"))

	rs := infer(t, m, outer, e)
	if len(rs) != 2 {
		t.Fatalf("got %d results, want 2", len(rs))
	}

	checkKinds(t, rs[0].Kinds, LocalVariable, Field, Parameter)
	checkKinds(t, rs[1].Kinds, Field)

	if rs[0].Scope.Symbol.Name != "Inner" || rs[1].Scope.Symbol.Name != "Outer" {
		t.Errorf("got scopes %v, %v", rs[0].Scope, rs[1].Scope)
	}
}

// summary renders results with their types, kinds and scope in order.
func summary(rs []Result) []string {
	out := make([]string, 0, len(rs))

	for _, r := range rs {
		names := make([]string, 0, len(r.Types))
		for _, ty := range r.Types {
			names = append(names, ty.String())
		}

		out = append(out, fmt.Sprintf("%v %v %s", names, KindNames(r.Kinds), r.Scope))
	}

	return out
}

func TestRepeatable(t *testing.T) {
	t.Parallel()

	m := modeltest.New()
	str := m.Class("java.lang.String")
	b := syntaxtest.New()
	e := b.Ident("arg")
	call := b.Call(b.Ident("put"), b.Lit("1"), e)
	meth := b.Method(b.Ident("f"), nil, b.Block(b.Expr(call)))
	inner := b.Class(b.Ident("Inner"), meth)
	outer := b.Class(b.Ident("Outer"), inner)
	m.SetType(call.Args[0], m.Prim("int"))
	m.SetType(inner, m.Class("example.Outer.Inner")).SetType(outer, m.Class("example.Outer"))
	m.Overload(call,
		m.Sig([]typedesc.Type{m.Prim("int"), str}),
		m.Sig([]typedesc.Type{m.Prim("int"), m.Prim("long")}),
		m.Sig([]typedesc.Type{m.Prim("int"), m.Prim("boolean")}),
		m.Sig([]typedesc.Type{m.Prim("int"), str}, m.Prim("int")),
	)

	path := syntax.PathTo(outer, e)
	if path == nil {
		t.Fatal("error node not found in tree")
	}

	first := summary(Infer(t.Context(), m, path))
	if len(first) != 1 || !strings.Contains(first[0], "Inner") {
		t.Fatalf("got results %v, want a single result scoped to Inner", first)
	}

	for i := range 5 {
		if got := summary(Infer(t.Context(), m, path)); !slices.Equal(got, first) {
			t.Errorf("run %d: got %v, want %v", i+2, got, first)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	t.Parallel()

	m := modeltest.New()

	if rs := Infer(t.Context(), m, nil); rs != nil {
		t.Errorf("got %v for an empty path", rs)
	}

	b := syntaxtest.New()
	root := b.Block(b.Expr(b.Ident("x")))

	if rs := InferAt(t.Context(), m, root, root.End()+100); rs != nil {
		t.Errorf("got %v for a position outside the tree", rs)
	}
}

func TestCanceled(t *testing.T) {
	t.Parallel()

	m := modeltest.New()
	b := syntaxtest.New()
	typ, e := b.Type("String"), b.Ident("foo")
	root := b.Block(b.Var(typ, "s", e))
	m.SetType(typ, m.Class("java.lang.String"))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if rs := Infer(ctx, m, syntax.PathTo(root, e)); rs != nil {
		t.Errorf("got %v after cancellation", rs)
	}
}

type panicking struct{ *modeltest.Model }

func (panicking) TypeOf(syntax.Node) typedesc.Type { panic("broken model") }

func TestRecover(t *testing.T) {
	t.Parallel()

	m := panicking{modeltest.New()}
	b := syntaxtest.New()
	typ, e := b.Type("String"), b.Ident("foo")
	root := b.Block(b.Var(typ, "s", e))

	if rs := infer(t, m, root, e); rs != nil {
		t.Errorf("got %v from a panicking model", rs)
	}
}
