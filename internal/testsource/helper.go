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

// Package testsource parses and type-checks Go source fragments for tests.
//
// Fragments may contain type errors: [Check] records them instead of failing, since the
// analyses under test start from erroneous code.
package testsource

import (
	"bytes"
	"errors"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// Parse parses a Go source fragment. Sources not starting with a package clause are wrapped in
// a function body `func _() { ... }` within package `test`.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed AST of the source file.
//   - *ast.FuncDecl: The first function declaration of the file.
//   - inspector.Cursor: A cursor positioned at that function's Body field.
func Parse(tb testing.TB, src string) (fset *token.FileSet, f *ast.File, fn *ast.FuncDecl, body inspector.Cursor) {
	tb.Helper()

	const filename = "test.go"

	fset = token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, wrapSource(src), parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	fn, body = firstFuncDecl(f)

	return fset, f, fn, body
}

// Check type-checks f and returns the package, the collected type information and the type
// errors found.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info, []types.Error) {
	tb.Helper()

	info := &types.Info{
		Types:     make(map[ast.Expr]types.TypeAndValue),
		Instances: make(map[*ast.Ident]types.Instance),
		Defs:      make(map[*ast.Ident]types.Object),
		Uses:      make(map[*ast.Ident]types.Object),
		Scopes:    make(map[ast.Node]*types.Scope),
	}

	var typeErrors []types.Error

	conf := types.Config{
		Importer: importer.Default(),
		Error: func(err error) {
			var terr types.Error
			if errors.As(err, &terr) {
				typeErrors = append(typeErrors, terr)
			}
		},
	}

	pkg, _ := conf.Check(testpkg, fset, []*ast.File{f}, info)

	return pkg, info, typeErrors
}

// ErrorAt returns the first type error whose message starts with prefix.
func ErrorAt(tb testing.TB, errs []types.Error, prefix string) types.Error {
	tb.Helper()

	for _, err := range errs {
		if strings.HasPrefix(err.Msg, prefix) {
			return err
		}
	}

	tb.Fatalf("No type error %q in %v", prefix, errs)

	return types.Error{}
}

func wrapSource(src string) *bytes.Buffer {
	var srcFile bytes.Buffer

	if strings.HasPrefix(strings.TrimSpace(src), "package ") {
		srcFile.WriteString(src) // ignore error

		return &srcFile
	}

	const (
		header     = "package " + testpkg + "\n\nfunc _() {\n"
		suffix     = "\n}"
		wrapperLen = len(header) + len(suffix)
	)

	srcFile.Grow(wrapperLen + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error
	srcFile.WriteString(suffix) // ignore error

	return &srcFile
}

func firstFuncDecl(f *ast.File) (fn *ast.FuncDecl, body inspector.Cursor) {
	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		fn, body = c.Node().(*ast.FuncDecl), c.ChildAt(edge.FuncDecl_Body, -1)

		return fn, body
	}

	return nil, root
}
