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

package expect

import (
	"log/slog"

	"fillmore-labs.com/fixfacts/internal/syntax"
	"fillmore-labs.com/fixfacts/internal/typedesc"
)

// Result is what is known about a symbol that would resolve an error.
type Result struct {
	// Types are plausible target types, most specific context first. Never contains error, none,
	// package or other types.
	Types []typedesc.Type

	// Kinds are the symbol categories admissible at the error position.
	Kinds KindSet

	// Scope is the type in which a member would be declared: the qualifier of a member selection
	// or an enclosing class. None for unqualified names outside of classes.
	Scope typedesc.Type

	// Anchor is the path of the error node the fix attaches to.
	Anchor syntax.Path
}

// Empty reports whether the result carries neither types nor kinds.
func (r Result) Empty() bool {
	return len(r.Types) == 0 && r.Kinds.Empty()
}

// LogValue implements [slog.LogValuer].
func (r Result) LogValue() slog.Value {
	types := make([]string, 0, len(r.Types))
	for _, t := range r.Types {
		types = append(types, t.String())
	}

	as := []slog.Attr{
		slog.Any("types", types),
		slog.Any("kinds", KindNames(r.Kinds)),
	}

	if r.Scope.Kind != typedesc.None {
		as = append(as, slog.String("scope", r.Scope.String()))
	}

	return slog.GroupValue(as...)
}
