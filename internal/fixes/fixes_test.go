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

package fixes_test

import (
	"context"
	"testing"

	"fillmore-labs.com/fixfacts/internal/model"
	"fillmore-labs.com/fixfacts/internal/model/modeltest"
	"fillmore-labs.com/fixfacts/internal/syntax"
	"fillmore-labs.com/fixfacts/internal/syntax/syntaxtest"
	"fillmore-labs.com/fixfacts/internal/typedesc"

	. "fillmore-labs.com/fixfacts/internal/fixes"
)

func TestTableLookup(t *testing.T) {
	t.Parallel()

	var calls []string

	rule := func(name string) Rule {
		return func(context.Context, model.Snapshot, syntax.Path) []Fix {
			calls = append(calls, name)

			return nil
		}
	}

	var table Table
	table.RegisterPrefix("undefined: ", rule("prefix"))
	table.RegisterExact("undefined: x", rule("exact"))
	table.RegisterPrefix("undef", rule("short"))
	table.RegisterPrefix("undefined: ", rule("prefix2"))

	table.Synthesize(t.Context(), modeltest.New(), "undefined: x", nil)

	want := []string{"exact", "prefix", "prefix2", "short"}
	if len(calls) != len(want) {
		t.Fatalf("Got calls %v, want %v", calls, want)
	}

	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("Call %d = %q, want %q", i, calls[i], want[i])
		}
	}

	if rules := table.Lookup("missing return"); len(rules) != 0 {
		t.Errorf("Got %d rules for an unregistered diagnostic", len(rules))
	}
}

func TestDefaultTable(t *testing.T) {
	t.Parallel()

	table := DefaultTable()

	tests := []struct {
		diagnostic string
		rules      int
	}{
		{"undefined: x", 1},
		{"missing return", 2},
		{"compiler.err.cant.resolve.location", 1},
		{"compiler.err.missing.ret.stmt", 2},
		{"compiler.err.unreported.exception.need.to.catch.or.throw", 1},
		{"declared and not used: x", 0},
	}

	for _, tt := range tests {
		if got := len(table.Lookup(tt.diagnostic)); got != tt.rules {
			t.Errorf("Lookup(%q) returned %d rules, want %d", tt.diagnostic, got, tt.rules)
		}
	}
}

func TestCreateElement(t *testing.T) {
	t.Parallel()

	t.Run("rhs", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		b := syntaxtest.New()
		x, e := b.Ident("x"), b.Ident("e")
		root := b.Block(b.Expr(b.Assign(x, e)))
		m.SetType(x, m.Class("java.lang.String"))

		fixes := DefaultTable().Synthesize(t.Context(), m, "compiler.err.cant.resolve.location", syntax.PathTo(root, e))
		if len(fixes) != 1 {
			t.Fatalf("Got %d fixes, want 1", len(fixes))
		}

		f := fixes[0]
		if f.Kind != CreateLocal || f.Name != "e" || len(f.Types) != 1 || f.Types[0].String() != "java.lang.String" {
			t.Errorf("Got %v %q %v, want CreateLocal \"e\" [java.lang.String]", f.Kind, f.Name, f.Types)
		}
	})

	t.Run("var init", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		b := syntaxtest.New()
		e := b.Ident("e")
		v := b.Var(b.Type("int"), "n", e)
		root := b.Block(v)
		m.SetType(v, m.Prim("int"))

		fixes := CreateElement(t.Context(), m, syntax.PathTo(root, e))

		want := []Kind{CreateLocal, CreateField, CreateParameter}
		if len(fixes) != len(want) {
			t.Fatalf("Got %d fixes, want %d", len(fixes), len(want))
		}

		for i, k := range want {
			if fixes[i].Kind != k {
				t.Errorf("Fix %d is %s, want %s", i, fixes[i].Kind, k)
			}
		}
	})

	t.Run("callee", func(t *testing.T) {
		t.Parallel()

		m := modeltest.New()
		b := syntaxtest.New()
		f := b.Ident("f")
		root := b.Block(b.Expr(b.Call(f, b.Lit("1"))))

		fixes := CreateElement(t.Context(), m, syntax.PathTo(root, f))
		if len(fixes) != 1 || fixes[0].Kind != CreateMethod {
			t.Fatalf("Got %v, want a single CreateMethod", fixes)
		}
	})

	t.Run("not a name", func(t *testing.T) {
		t.Parallel()

		b := syntaxtest.New()
		lit := b.Lit("1")
		root := b.Block(b.Return(lit))

		if fixes := CreateElement(t.Context(), modeltest.New(), syntax.PathTo(root, lit)); len(fixes) != 0 {
			t.Errorf("Got %v, want no fixes", fixes)
		}
	})
}

func TestAddMissingReturn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(b *syntaxtest.Builder) *syntax.BlockNode
		want  int
	}{
		{"falls off", func(b *syntaxtest.Builder) *syntax.BlockNode {
			return b.Block(b.If(b.Ident("c"), b.Return(b.Lit("1")), nil))
		}, 1},
		{"returns", func(b *syntaxtest.Builder) *syntax.BlockNode {
			return b.Block(b.Return(b.Lit("1")))
		}, 0},
		{"exits", func(b *syntaxtest.Builder) *syntax.BlockNode {
			return b.Block(b.Expr(b.Call(b.Ident("panic"), b.Lit("1"))))
		}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := modeltest.New()
			b := syntaxtest.New()
			body := tt.build(b)
			fn := b.Method(b.Ident("f"), b.Type("int"), body)

			m.SetType(fn, m.Sig(nil, m.Prim("int")))
			syntax.Inspect(body, func(n syntax.Node) bool {
				if id, ok := n.(*syntax.IdentNode); ok && id.Name == "panic" {
					m.SetSymbol(id, builtinPanic)
				}

				return true
			})

			fixes := AddMissingReturn(t.Context(), m, syntax.PathTo(fn, body))
			if len(fixes) != tt.want {
				t.Fatalf("Got %d fixes, want %d", len(fixes), tt.want)
			}

			if tt.want > 0 {
				if f := fixes[0]; f.Kind != AddReturn || len(f.Types) != 1 || f.Types[0].String() != "int" {
					t.Errorf("Got %s %v, want AddReturn [int]", f.Kind, f.Types)
				}
			}
		})
	}
}

func TestReturnsStatementLevel(t *testing.T) {
	t.Parallel()

	m := modeltest.New()
	b := syntaxtest.New()
	panicID := b.Ident("panic")
	body := b.Block(b.Expr(b.Call(panicID, b.Lit("1"))))
	fn := b.Method(b.Ident("f"), b.Type("int"), body)

	m.SetType(fn, m.Sig(nil, m.Prim("int")))
	m.SetSymbol(panicID, builtinPanic)

	path := syntax.PathTo(fn, body)

	if fixes := (Returns{}).AddMissingReturn(t.Context(), m, path); len(fixes) != 1 {
		t.Errorf("Got %d fixes without method level, want 1", len(fixes))
	}

	if fixes := DefaultTable().Synthesize(t.Context(), m, GoMissingReturn, path); len(fixes) != 0 {
		t.Errorf("Got %d fixes from default table, want 0", len(fixes))
	}
}

func TestCompleteSwitch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(b *syntaxtest.Builder) *syntax.SwitchNode
		want  bool
	}{
		{"all cases return", func(b *syntaxtest.Builder) *syntax.SwitchNode {
			return b.Switch(b.Ident("x"),
				b.Arrow([]syntax.Node{b.Lit("1")}, b.Return(b.Lit("1"))),
				b.Arrow([]syntax.Node{b.Lit("2")}, b.Return(b.Lit("2"))))
		}, true},
		{"case completes", func(b *syntaxtest.Builder) *syntax.SwitchNode {
			return b.Switch(b.Ident("x"),
				b.Arrow([]syntax.Node{b.Lit("1")}, b.Expr(b.Call(b.Ident("f")))),
				b.Arrow([]syntax.Node{b.Lit("2")}, b.Return(b.Lit("2"))))
		}, false},
		{"empty rule case", func(b *syntaxtest.Builder) *syntax.SwitchNode {
			return b.Switch(b.Ident("x"),
				b.Arrow([]syntax.Node{b.Lit("1")}),
				b.Arrow([]syntax.Node{b.Lit("2")}, b.Return(b.Lit("2"))))
		}, false},
		{"empty case falls through", func(b *syntaxtest.Builder) *syntax.SwitchNode {
			return b.Switch(b.Ident("x"),
				b.Case([]syntax.Node{b.Lit("1")}),
				b.Case([]syntax.Node{b.Lit("2")}, b.Return(b.Lit("2"))))
		}, true},
		{"break leaves switch", func(b *syntaxtest.Builder) *syntax.SwitchNode {
			return b.Switch(b.Ident("x"),
				b.Arrow([]syntax.Node{b.Lit("1")},
					b.If(b.Ident("c"), b.Block(b.Break("")), nil),
					b.Return(b.Lit("1"))),
				b.Arrow([]syntax.Node{b.Lit("2")}, b.Return(b.Lit("2"))))
		}, false},
		{"falls into returning case", func(b *syntaxtest.Builder) *syntax.SwitchNode {
			return b.Switch(b.Ident("x"),
				b.Case([]syntax.Node{b.Lit("1")}, b.Expr(b.Call(b.Ident("f")))),
				b.Case([]syntax.Node{b.Lit("2")}, b.Return(b.Lit("2"))))
		}, true},
		{"last case completes", func(b *syntaxtest.Builder) *syntax.SwitchNode {
			return b.Switch(b.Ident("x"),
				b.Case([]syntax.Node{b.Lit("1")}, b.Return(b.Lit("1"))),
				b.Case([]syntax.Node{b.Lit("2")}, b.Expr(b.Call(b.Ident("f")))))
		}, false},
		{"has default", func(b *syntaxtest.Builder) *syntax.SwitchNode {
			return b.Switch(b.Ident("x"),
				b.Arrow([]syntax.Node{b.Lit("1")}, b.Return(b.Lit("1"))),
				b.Arrow(nil, b.Expr(b.Call(b.Ident("f")))))
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := syntaxtest.New()
			sw := tt.build(b)
			fn := b.Method(b.Ident("f"), b.Type("int"), b.Block(sw))

			fixes := CompleteSwitch(t.Context(), modeltest.New(), syntax.PathTo(fn, fn.Body))
			if got := len(fixes) == 1 && fixes[0].Kind == ConvertSwitch; got != tt.want {
				t.Errorf("CompleteSwitch() = %v, want fix %t", fixes, tt.want)
			}
		})
	}
}

func TestDeclareThrows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		caught bool
		want   int
	}{
		{"uncaught", false, 1},
		{"caught", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := modeltest.New()
			e := m.Class("example.E", m.Class("java.lang.Exception"))

			b := syntaxtest.New()
			thrown := b.New(b.Type("E"))
			throw := b.Throw(thrown)

			var stmt syntax.Node = throw
			if tt.caught {
				typ := b.Type("Exception")
				stmt = b.Try(b.Block(throw), b.Catch([]syntax.Node{typ}, b.Block()))
				m.SetType(typ, m.Class("java.lang.Exception"))
			}

			fn := b.Method(b.Ident("f"), nil, b.Block(stmt))
			m.SetType(thrown, e)

			fixes := DefaultTable().Synthesize(t.Context(), m, JavaUnreportedException+".need.to.catch.or.throw", syntax.PathTo(fn, thrown))
			if len(fixes) != tt.want {
				t.Fatalf("Got %d fixes, want %d", len(fixes), tt.want)
			}

			if tt.want > 0 && (fixes[0].Kind != AddThrows || fixes[0].Anchor.Node() != fn) {
				t.Errorf("Got %s at %v, want AddThrows at the method", fixes[0].Kind, fixes[0].Anchor.Node())
			}
		})
	}
}

var builtinPanic = &typedesc.Symbol{Kind: typedesc.BuiltinSymbol, Name: "panic"}
