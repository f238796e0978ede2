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

package fixes

import (
	"context"
	"slices"
	"strings"

	"fillmore-labs.com/fixfacts/internal/completion"
	"fillmore-labs.com/fixfacts/internal/model"
	"fillmore-labs.com/fixfacts/internal/syntax"
)

// Rule derives fixes for a diagnostic reported at the innermost node of path.
type Rule func(ctx context.Context, snap model.Snapshot, path syntax.Path) []Fix

type prefixRules struct {
	prefix string
	rules  []Rule
}

// Table dispatches diagnostics to rules. The zero value is an empty table ready to use.
type Table struct {
	exact    map[string][]Rule
	prefixes []prefixRules
}

// RegisterExact runs rules for diagnostics equal to key.
func (t *Table) RegisterExact(key string, rules ...Rule) {
	if t.exact == nil {
		t.exact = make(map[string][]Rule)
	}

	t.exact[key] = append(t.exact[key], rules...)
}

// RegisterPrefix runs rules for diagnostics starting with prefix.
func (t *Table) RegisterPrefix(prefix string, rules ...Rule) {
	for i := range t.prefixes {
		if t.prefixes[i].prefix == prefix {
			t.prefixes[i].rules = append(t.prefixes[i].rules, rules...)

			return
		}
	}

	t.prefixes = append(t.prefixes, prefixRules{prefix: prefix, rules: rules})
}

// Lookup returns the rules registered for diagnostic: exact matches first, then prefix matches
// in registration order.
func (t *Table) Lookup(diagnostic string) []Rule {
	rules := append([]Rule(nil), t.exact[diagnostic]...)

	for _, p := range t.prefixes {
		if strings.HasPrefix(diagnostic, p.prefix) {
			rules = append(rules, p.rules...)
		}
	}

	return rules
}

// Synthesize runs all rules matching diagnostic and concatenates their fixes.
func (t *Table) Synthesize(ctx context.Context, snap model.Snapshot, diagnostic string, path syntax.Path) []Fix {
	var fixes []Fix

	for _, r := range t.Lookup(diagnostic) {
		if ctx.Err() != nil {
			return nil
		}

		fixes = append(fixes, r(ctx, snap, path)...)
	}

	return fixes
}

// Diagnostic identifiers understood by [DefaultTable].
const (
	GoUndefined     = "undefined: "
	GoMissingReturn = "missing return"

	JavaCantResolve         = "compiler.err.cant.resolve"
	JavaMissingReturn       = "compiler.err.missing.ret.stmt"
	JavaUnreportedException = "compiler.err.unreported.exception"
)

// DefaultTable returns a table knowing the Go type checker messages and the Java compiler keys.
// Completion is evaluated with [completion.WithMethodLevel] enabled, followed by opts.
func DefaultTable(opts ...completion.Option) *Table {
	var t Table

	r := Returns{Options: append(slices.Clip(methodLevel.Options), opts...)}

	t.RegisterPrefix(GoUndefined, CreateElement)
	t.RegisterExact(GoMissingReturn, r.AddMissingReturn, r.CompleteSwitch)

	t.RegisterPrefix(JavaCantResolve, CreateElement)
	t.RegisterExact(JavaMissingReturn, r.AddMissingReturn, r.CompleteSwitch)
	t.RegisterPrefix(JavaUnreportedException, DeclareThrows)

	return &t
}
