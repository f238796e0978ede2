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
	"strconv"

	"fillmore-labs.com/fixfacts/internal/config"
)

// Kind is a category of symbol that could be declared to resolve an error.
type Kind uint16

const (
	LocalVariable Kind = 1 << iota
	Field
	Parameter
	ResourceVariable
	ForInitVariable
	Class
	Interface
	Enum
	AnnotationType
	Record
	Method
)

var kindNames = [...]string{
	"local variable", "field", "parameter", "resource variable", "for-init variable",
	"class", "interface", "enum", "annotation type", "record", "method",
}

func (k Kind) String() string {
	for i, name := range kindNames {
		if k == 1<<i {
			return name
		}
	}

	return "Kind(" + strconv.FormatUint(uint64(k), 10) + ")"
}

// KindSet is a set of symbol kinds.
type KindSet = config.BitMask[Kind]

var (
	// Variables are the kinds admissible where a value is read or written.
	Variables = config.NewBitMask(LocalVariable, Field, Parameter)

	// Types are the kinds admissible where a type is named.
	Types = config.NewBitMask(Class, Interface, Enum, Record)

	// Members are the kinds that can be declared inside a class.
	Members = config.NewBitMask(Field, Method, Class, Interface, Enum, AnnotationType, Record)
)

// KindNames returns the names of the kinds in s, lowest bit first.
func KindNames(s KindSet) []string {
	names := make([]string, 0, s.Len())
	for k := range s.All() {
		names = append(names, k.String())
	}

	return names
}
