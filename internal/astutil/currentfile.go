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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"
)

// fixfacts is the name of the linter.
const fixfacts = "fixfacts"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	generated := ast.IsGenerated(file)

	return CurrentFile{file, handle, generated}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Contains reports whether pos lies in this file.
func (c CurrentFile) Contains(pos token.Pos) bool {
	if c.handle == nil || !pos.IsValid() {
		return false
	}

	base := token.Pos(c.handle.Base())

	return base <= pos && pos <= base+token.Pos(c.handle.Size())
}

// SameLine reports whether a and b are on the same line.
func (c CurrentFile) SameLine(a, b token.Pos) bool {
	return c.line(a) == c.line(b)
}

// Indent returns the leading tabs of a line starting with a node at pos.
func (c CurrentFile) Indent(pos token.Pos) string {
	col := c.handle.PositionFor(pos, false).Column
	if col <= 1 {
		return ""
	}

	return strings.Repeat("\t", col-1)
}

func (c CurrentFile) line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// NoLintComment checks if a line is followed by a //nolint:fixfacts comment.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.file == nil {
		return false
	}

	// find the first comment starting after the declaration
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(c *ast.CommentGroup, p token.Pos) int { return int(c.Pos() - p) })
	if i >= len(c.file.Comments) {
		return false
	}

	comment := c.file.Comments[i].List[0]

	if c.line(comment.Pos()) != c.line(pos) {
		return false // not on this line
	}

	return CommentHasNoLint(comment)
}

// NoLintFile reports whether the package clause is preceded by a //nolint:fixfacts comment.
func (c CurrentFile) NoLintFile() bool {
	if c.file == nil || c.file.Doc == nil {
		return false
	}

	return CommentHasNoLint(c.file.Doc.List[len(c.file.Doc.List)-1])
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint(?::([a-zA-Z0-9,_-]+))?(?:\s|$)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:fixfacts` directive. A bare
// `//nolint` applies to all linters.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	if matches[1] == "" {
		return true
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == fixfacts || l == "all" {
			return true
		}
	}

	return false
}
