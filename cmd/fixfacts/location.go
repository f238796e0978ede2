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
	"errors"
	"fmt"
	"go/token"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// ErrInvalidLocation is returned for locations not of the form file:line[:column].
var ErrInvalidLocation = errors.New("invalid location")

// location is a source position as given on the command line. Lines and columns are 1-based,
// a zero column means the whole line.
type location struct {
	File   string
	Line   int
	Column int
}

func (l location) String() string {
	if l.Column == 0 {
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}

	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// parseLocation parses file:line or file:line:column.
func parseLocation(s string) (location, error) {
	file, last, ok := cut(s)
	if !ok {
		return location{}, fmt.Errorf("%w %q: missing line", ErrInvalidLocation, s)
	}

	n, err := parseNumber(last)
	if err != nil {
		return location{}, fmt.Errorf("%w %q: %w", ErrInvalidLocation, s, err)
	}

	if rest, line, ok := cut(file); ok {
		if l, err := parseNumber(line); err == nil {
			return location{File: rest, Line: l, Column: n}, nil
		}
	}

	return location{File: file, Line: n}, nil
}

func cut(s string) (before, after string, ok bool) {
	i := strings.LastIndexByte(s, ':')
	if i <= 0 || i == len(s)-1 {
		return s, "", false
	}

	return s[:i], s[i+1:], true
}

func parseNumber(s string) (int, error) {
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}

	n, err := safecast.Conv[int](u)
	if err != nil {
		return 0, err
	}

	if n == 0 {
		return 0, fmt.Errorf("%q: %w", s, strconv.ErrRange)
	}

	return n, nil
}

// pos converts the location into a position in f, which must hold the location's file.
func (l location) pos(f *token.File) (token.Pos, error) {
	if l.Line > f.LineCount() {
		return token.NoPos, fmt.Errorf("%w %s: file has %d lines", ErrInvalidLocation, l, f.LineCount())
	}

	start := f.LineStart(l.Line)
	if l.Column == 0 {
		return start, nil
	}

	end := token.Pos(f.Base() + f.Size())
	if l.Line < f.LineCount() {
		end = f.LineStart(l.Line + 1)
	}

	if col := token.Pos(l.Column - 1); start+col < end {
		return start + col, nil
	}

	return token.NoPos, fmt.Errorf("%w %s: column out of range", ErrInvalidLocation, l)
}
