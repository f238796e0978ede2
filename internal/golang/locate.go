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

package golang

import (
	"go/token"

	"golang.org/x/tools/go/ast/astutil"

	"fillmore-labs.com/fixfacts/internal/syntax"
)

// PathAt returns the path from the innermost lowered node enclosing pos up to the root, or nil
// when pos is outside the file.
func (t *Tree) PathAt(pos token.Pos) syntax.Path {
	if t.File == nil || pos < t.File.FileStart || pos > t.File.FileEnd {
		return nil
	}

	path, _ := astutil.PathEnclosingInterval(t.File, pos, pos)
	for _, a := range path {
		n := t.Node(a)
		if n == nil {
			continue
		}

		if p := syntax.PathTo(t.Root, n); p != nil {
			return p
		}
	}

	return syntax.PathEnclosing(t.Root, pos)
}
