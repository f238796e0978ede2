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
	"slices"

	"fillmore-labs.com/fixfacts/internal/syntax"
)

// switchStmt handles switches. Without fall-through only the last case can complete the
// switch, rule-form cases complete it directly. A switch without a default case completes
// unless its cases are known to cover every value of the selector.
func (v *visitor) switchStmt(e env, n *syntax.SwitchNode) outcome {
	inner := e.enter(n)
	normal := !v.exhaustive(n)

	var marks []mark

	for i, c := range n.Cases {
		if v.ctx.Err() != nil {
			return abrupt()
		}

		o := v.list(inner, c.Body)
		marks = append(marks, o.marks...)

		if c.Arrow || i == len(n.Cases)-1 {
			normal = normal || o.normal
		}
	}

	res := outcome{marks: marks}

	return outcome{normal: normal || res.has(breakJump, n), marks: res.resolve(n).marks}
}

// exhaustive reports whether some case of n always runs. Coverage is only established for
// enumeration selectors whose constants all have a case.
func (v *visitor) exhaustive(n *syntax.SwitchNode) bool {
	if n.Exhaustive || slices.ContainsFunc(n.Cases, func(c *syntax.CaseNode) bool { return c.Labels == nil }) {
		return true
	}

	if n.Tag == nil {
		return false
	}

	constants, ok := v.snap.EnumConstants(v.snap.TypeOf(n.Tag))
	if !ok || len(constants) == 0 {
		return false
	}

	covered := make(map[string]struct{}, len(constants))

	for _, c := range n.Cases {
		for _, l := range c.Labels {
			if name, ok := constantName(l); ok {
				covered[name] = struct{}{}
			}
		}
	}

	for _, c := range constants {
		if _, ok := covered[c]; !ok {
			return false
		}
	}

	return true
}

// constantName returns the name of an enumeration constant case label.
func constantName(n syntax.Node) (string, bool) {
	switch l := syntax.Unparen(n).(type) {
	case *syntax.IdentNode:
		return l.Name, true

	case *syntax.MemberSelectNode:
		if l.Sel != nil {
			return l.Sel.Name, true
		}
	}

	return "", false
}
