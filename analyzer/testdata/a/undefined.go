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

package a

func area(w, h int) int {
	size = w * h // want "Undefined 'size' can be declared as local variable, field or parameter of type 'int'"

	return size // want "Undefined 'size' can be declared as local variable of type 'int'"
}

func total() int {
	return sum // want "Undefined 'sum' can be declared as local variable of type 'int'"
}

func check() string {
	if ready { // want "Undefined 'ready' can be declared as local variable of type 'bool'"
		return "ready"
	}

	return "waiting"
}

func next() int {
	return count + 1 // want "Undefined 'count' can be declared as local variable of type 'int'"
}

func run() {
	process(1) // want "Undefined 'process' can be declared as function"
}

func later() int {
	var n int = limit // want "Undefined 'limit' can be declared as local variable"

	limit := 3

	return n + limit
}

func nolint() int {
	return ignored //nolint:fixfacts
}
