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

package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"go/token"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/tools/go/packages"

	"fillmore-labs.com/fixfacts/internal/cache"
	"fillmore-labs.com/fixfacts/internal/golang"
)

// ErrNoPackage is returned when no package containing a file could be loaded.
var ErrNoPackage = errors.New("no package found")

// listMode lists the sources of a package and its dependencies without type checking.
const listMode = packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
	packages.NeedImports | packages.NeedDeps | packages.NeedModule

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
	packages.NeedImports | packages.NeedTypes | packages.NeedTypesSizes |
	packages.NeedSyntax | packages.NeedTypesInfo

// source is a type-checked file, lowered for analysis.
type source struct {
	handle *token.File
	snap   *golang.Snapshot
}

// digest returns a hex content hash of the file at path.
func digest(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(content)

	return hex.EncodeToString(sum[:]), nil
}

// fingerprint returns a hex digest of the sources the package containing filename is checked
// from: its own files, the files of the main module packages it depends on, and the main
// module's go.mod and go.sum, which pin every other dependency.
func fingerprint(ctx context.Context, logger *slog.Logger, filename string) (string, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return "", fmt.Errorf("can't resolve %q: %w", filename, err)
	}

	cfg := &packages.Config{Context: ctx, Dir: filepath.Dir(abs), Mode: listMode}

	pkgs, err := packages.Load(cfg, "file="+abs)
	if err != nil {
		return "", fmt.Errorf("packages.Load failed: %w", err)
	}

	files := []string{abs}
	roots := make(map[*packages.Package]struct{}, len(pkgs))

	for _, pkg := range pkgs {
		roots[pkg] = struct{}{}
	}

	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		_, root := roots[pkg]

		inModule := pkg.Module != nil && pkg.Module.Main
		if !root && !inModule {
			return
		}

		files = append(files, pkg.CompiledGoFiles...)

		if inModule && pkg.Module.GoMod != "" {
			files = append(files, pkg.Module.GoMod, filepath.Join(filepath.Dir(pkg.Module.GoMod), "go.sum"))
		}
	})

	slices.Sort(files)
	files = slices.Compact(files)

	parts := make([]string, 0, 2*len(files))

	for _, name := range files {
		sum, err := digest(name)

		switch {
		case err == nil:

		case errors.Is(err, fs.ErrNotExist):
			sum = "-"

		default:
			return "", fmt.Errorf("can't read %q: %w", name, err)
		}

		parts = append(parts, name, sum)
	}

	logger.Debug("Fingerprinted package sources", "file", abs, "files", len(files))

	return hex.EncodeToString(cache.Key(parts...)), nil
}

// loadSource loads and type-checks the package containing filename, tolerating type errors.
func loadSource(ctx context.Context, logger *slog.Logger, filename string) (*source, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("can't resolve %q: %w", filename, err)
	}

	cfg := &packages.Config{
		Context: ctx,
		Dir:     filepath.Dir(abs),
		Mode:    loadMode,
		Logf:    func(format string, args ...any) { logger.Debug(fmt.Sprintf(format, args...)) },
	}

	logger.Debug("Loading package", "file", abs)

	pkgs, err := packages.Load(cfg, "file="+abs)
	if err != nil {
		return nil, fmt.Errorf("packages.Load failed: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			logger.Debug("Package error", "package", pkg.PkgPath, "error", e.Error())
		}

		if pkg.Types == nil || pkg.TypesInfo == nil {
			continue
		}

		for i, name := range pkg.CompiledGoFiles {
			if i >= len(pkg.Syntax) || !sameFile(name, abs, info) {
				continue
			}

			file := pkg.Syntax[i]
			tree := golang.Lower(file, pkg.TypesInfo)

			return &source{
				handle: pkg.Fset.File(file.FileStart),
				snap:   golang.NewSnapshot(tree, pkg.Types, pkg.TypesInfo),
			}, nil
		}
	}

	return nil, fmt.Errorf("%w for %q", ErrNoPackage, filename)
}

func sameFile(name, abs string, info os.FileInfo) bool {
	if name == abs {
		return true
	}

	other, err := os.Stat(name)

	return err == nil && os.SameFile(info, other)
}
