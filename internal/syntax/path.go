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

import (
	"go/token"
	"slices"
)

// Path is a chain of nodes from an innermost node to the root, innermost first.
type Path []Node

// Node returns the innermost node of the path, or nil for an empty path.
func (p Path) Node() Node {
	if len(p) == 0 {
		return nil
	}

	return p[0]
}

// Parent returns the path of the enclosing node.
func (p Path) Parent() Path {
	if len(p) < 2 {
		return nil
	}

	return p[1:]
}

// PathEnclosing returns the path from the innermost node containing pos up to root.
// The result is nil when pos lies outside root.
func PathEnclosing(root Node, pos token.Pos) Path {
	if root == nil || pos < root.Pos() || pos >= root.End() {
		return nil
	}

	path := Path{root}

outer:
	for n := root; ; {
		for _, c := range Children(n) {
			if c.Pos() <= pos && pos < c.End() {
				path = append(path, c)
				n = c

				continue outer
			}
		}

		break
	}

	slices.Reverse(path)

	return path
}

// PathTo returns the path from target up to root, found by node identity.
func PathTo(root, target Node) Path {
	if root == nil || target == nil {
		return nil
	}

	var path Path

	var find func(n Node) bool
	find = func(n Node) bool {
		if n == target {
			path = append(path, n)

			return true
		}

		if target.Pos() < n.Pos() || target.End() > n.End() {
			return false
		}

		for _, c := range Children(n) {
			if find(c) {
				path = append(path, n)

				return true
			}
		}

		return false
	}

	find(root)

	return path
}

// Enclosing returns the sub-path starting at the first proper ancestor of p's innermost node
// with one of the given categories, or nil if there is none.
func Enclosing(p Path, categories ...Category) Path {
	for i := 1; i < len(p); i++ {
		if slices.Contains(categories, p[i].Category()) {
			return p[i:]
		}
	}

	return nil
}

// Unparen returns n with enclosing parentheses removed.
func Unparen(n Node) Node {
	for {
		p, ok := n.(*ParenNode)
		if !ok {
			return n
		}

		n = p.X
	}
}
