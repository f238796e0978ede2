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

package golang_test

import (
	"go/ast"
	"go/types"
	"slices"
	"testing"

	"fillmore-labs.com/fixfacts/internal/completion"
	"fillmore-labs.com/fixfacts/internal/config"
	"fillmore-labs.com/fixfacts/internal/expect"
	"fillmore-labs.com/fixfacts/internal/syntax"
	"fillmore-labs.com/fixfacts/internal/testsource"

	. "fillmore-labs.com/fixfacts/internal/golang"
)

func load(t *testing.T, src string) (*Snapshot, []types.Error) {
	t.Helper()

	fset, f, _, _ := testsource.Parse(t, src)
	pkg, info, errs := testsource.Check(t, fset, f)

	return NewSnapshot(Lower(f, info), pkg, info), errs
}

func TestLower(t *testing.T) {
	t.Parallel()

	const src = `package test

type Point struct{ X, Y int }

func f(xs []int) int {
	for i, x := range xs {
		if x > 0 {
			return i
		}
	}

	var a, b = 1, 2
	a++

	switch len(xs) {
	case 0:
		fallthrough
	case 1:
		return a + b
	}

	select {}
}
`

	snap, errs := load(t, src)
	if len(errs) > 0 {
		t.Fatalf("Unexpected type errors: %v", errs)
	}

	root := snap.Tree().Root
	if len(root.Decls) != 2 {
		t.Fatalf("Got %d declarations, want 2", len(root.Decls))
	}

	class, ok := root.Decls[0].(*syntax.ClassDeclNode)
	if !ok || len(class.Members) != 2 {
		t.Fatalf("Got %#v, want class with two fields", root.Decls[0])
	}

	fn, ok := root.Decls[1].(*syntax.MethodDeclNode)
	if !ok {
		t.Fatalf("Got %T, want method", root.Decls[1])
	}

	var got []syntax.Category
	for _, s := range fn.Body.List {
		got = append(got, s.Category())
	}

	want := []syntax.Category{syntax.EnhancedFor, syntax.VarDecl, syntax.VarDecl, syntax.ExprStmt, syntax.Switch, syntax.Switch}
	if len(got) != len(want) {
		t.Fatalf("Got statements %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Statement %d is %s, want %s", i, got[i], want[i])
		}
	}

	sw := fn.Body.List[4].(*syntax.SwitchNode)
	if sw.Cases[0].Arrow || !sw.Cases[1].Arrow {
		t.Error("Expected only the fallthrough case to fall into the next case")
	}

	if sel := fn.Body.List[5].(*syntax.SwitchNode); !sel.Exhaustive {
		t.Error("Expected select to be exhaustive")
	}

	if snap.Tree().AST(fn) == nil {
		t.Error("Expected the function to map back to its declaration")
	}
}

func TestInfer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		types []string
		kinds expect.KindSet
	}{
		{"assign", "var s string\ns = v\n_ = s", []string{"string"}, expect.KindSet{}},
		{"binary", "n := 1\n_ = n + v", []string{"int"}, expect.KindSet{}},
		{"var init", "var n int = v\n_ = n", []string{"int"}, expect.Variables},
		{"condition", "if v {\n}", []string{"bool"}, expect.KindSet{}},
		{"index", "xs := []string{}\n_ = xs[v]", []string{"int"}, expect.KindSet{}},
		{"return", "package test\n\nfunc f() error {\n\treturn v\n}\n", []string{"error"}, expect.KindSet{}},
		{
			"argument",
			"package test\n\nfunc f(s string, n int) {}\n\nfunc g() {\n\tf(\"a\", v)\n}\n",
			[]string{"int"}, expect.KindSet{},
		},
		{
			"variadic",
			"package test\n\nfunc f(s string, ns ...int) {}\n\nfunc g() {\n\tf(\"a\", 1, v)\n}\n",
			[]string{"int"}, expect.KindSet{},
		},
		{
			"struct field",
			"package test\n\ntype T struct{ Name string }\n\nvar _ = T{Name: v}\n",
			[]string{"string"}, expect.KindSet{},
		},
		{
			"struct position",
			"package test\n\ntype T struct {\n\tName string\n\tAge  int\n}\n\nvar _ = T{\"a\", v}\n",
			[]string{"int"}, expect.KindSet{},
		},
		{
			"func literal",
			"package test\n\nvar f = func() bool {\n\treturn v\n}\n",
			[]string{"bool"}, expect.KindSet{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap, errs := load(t, tt.src)
			terr := testsource.ErrorAt(t, errs, "undefined: v")

			path := snap.Tree().PathAt(terr.Pos)
			if id, ok := path.Node().(*syntax.IdentNode); !ok || id.Name != "v" {
				t.Fatalf("Got error node %#v, want v", path.Node())
			}

			results := expect.Infer(t.Context(), snap, path)
			if len(results) != 1 {
				t.Fatalf("Got %d results, want 1", len(results))
			}

			var got []string
			for _, typ := range results[0].Types {
				got = append(got, typ.String())
			}

			if len(got) != len(tt.types) {
				t.Fatalf("Got types %v, want %v", got, tt.types)
			}

			for i := range got {
				if got[i] != tt.types[i] {
					t.Errorf("Got type %q, want %q", got[i], tt.types[i])
				}
			}

			if results[0].Kinds != tt.kinds {
				t.Errorf("Got kinds %v, want %v", expect.KindNames(results[0].Kinds), expect.KindNames(tt.kinds))
			}
		})
	}
}

func TestInferComparison(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		types []string
	}{
		{"nil", "if v == nil {\n}", nil},
		{"unresolved", "if v != w {\n}", nil},
		{"typed", "n := 1\nif v < n {\n}", []string{"int"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap, errs := load(t, tt.src)
			terr := testsource.ErrorAt(t, errs, "undefined: v")

			var got []string
			for _, r := range expect.Infer(t.Context(), snap, snap.Tree().PathAt(terr.Pos)) {
				for _, typ := range r.Types {
					got = append(got, typ.String())
				}
			}

			if !slices.Equal(got, tt.types) {
				t.Errorf("Got types %v, want %v", got, tt.types)
			}
		})
	}
}

func TestInferCallee(t *testing.T) {
	t.Parallel()

	snap, errs := load(t, "g(1)")
	terr := testsource.ErrorAt(t, errs, "undefined: g")

	results := expect.Infer(t.Context(), snap, snap.Tree().PathAt(terr.Pos))
	if len(results) != 1 {
		t.Fatalf("Got %d results, want 1", len(results))
	}

	if want := config.NewBitMask(expect.Method); results[0].Kinds != want {
		t.Errorf("Got kinds %v, want [Method]", expect.KindNames(results[0].Kinds))
	}
}

func TestCompletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		methodLevel bool
		completes   bool
		exits       bool
	}{
		{"if else", "if n > 0 {\n\t\treturn 1\n\t} else {\n\t\treturn 2\n\t}", false, false, true},
		{"if", "if n > 0 {\n\t\treturn 1\n\t}", false, true, false},
		{"infinite loop", "for {\n\t}", false, true, true},
		{"loop with break", "for {\n\t\tbreak\n\t}", false, true, false},
		{"panic", "panic(n)", false, true, false},
		{"panic method level", "panic(n)", true, false, true},
		{"labeled", "outer:\n\tfor {\n\t\tfor {\n\t\t\tbreak outer\n\t\t}\n\t}", false, true, false},
		{"type switch", "switch any(n).(type) {\n\tcase int:\n\t\treturn 1\n\tdefault:\n\t\treturn 0\n\t}", false, false, true},
		{"defer", "defer panic(n)", true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := "package test\n\nfunc f(n int) int {\n\t" + tt.body + "\n}\n"
			snap, _ := load(t, src)

			fn := snap.Tree().Root.Decls[0].(*syntax.MethodDeclNode)
			opts := []completion.Option{completion.WithMethodLevel(tt.methodLevel)}

			if got := completion.CompletesNormally(t.Context(), snap, fn.Body, opts...); got != tt.completes {
				t.Errorf("CompletesNormally() = %t, want %t", got, tt.completes)
			}

			if got := completion.ExitsFromAllBranches(t.Context(), snap, fn.Body, opts...); got != tt.exits {
				t.Errorf("ExitsFromAllBranches() = %t, want %t", got, tt.exits)
			}
		})
	}
}

func TestEnumSwitch(t *testing.T) {
	t.Parallel()

	const src = `package test

type Color int

const (
	Red Color = iota
	Green
	Blue
)

func f(c Color) int {
	switch c {
	case Red:
		return 0
	case Green:
		return 1
	case Blue:
		return 2
	}
}
`

	snap, _ := load(t, src)

	var fn *syntax.MethodDeclNode
	for _, d := range snap.Tree().Root.Decls {
		if m, ok := d.(*syntax.MethodDeclNode); ok {
			fn = m
		}
	}

	sw := fn.Body.List[0]

	constants, ok := snap.EnumConstants(snap.TypeOf(sw.(*syntax.SwitchNode).Tag))
	if !ok || len(constants) != 3 || constants[0] != "Red" || constants[2] != "Blue" {
		t.Fatalf("Got constants %v, want [Red Green Blue]", constants)
	}

	if completion.CompletesNormally(t.Context(), snap, sw) {
		t.Error("Expected a switch covering all constants not to complete normally")
	}
}

func TestSymbolOf(t *testing.T) {
	t.Parallel()

	snap, _ := load(t, "package test\n\ntype T struct{}\n\nfunc (T) M() {}\n\nfunc f(t T) {\n\tt.M()\n\tpanic(1)\n}\n")

	var calls []*ast.CallExpr

	ast.Inspect(snap.Tree().File, func(n ast.Node) bool {
		if c, ok := n.(*ast.CallExpr); ok {
			calls = append(calls, c)
		}

		return true
	})

	if len(calls) != 2 {
		t.Fatalf("Got %d calls, want 2", len(calls))
	}

	method := snap.SymbolOf(snap.Tree().Node(calls[0].Fun))
	if method == nil || method.String() != "test.T.M" {
		t.Errorf("Got method symbol %v, want test.T.M", method)
	}

	builtin := snap.SymbolOf(snap.Tree().Node(calls[1].Fun))
	if builtin == nil || builtin.String() != "panic" {
		t.Errorf("Got builtin symbol %v, want panic", builtin)
	}

	if snap.SymbolOf(snap.Tree().Node(calls[0].Fun)) != method {
		t.Error("Expected symbols to keep their identity")
	}
}
