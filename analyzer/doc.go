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

// Package analyzer implements the fixfacts static analysis pass.
//
// # Overview
//
// FixFacts runs on packages with type errors and suggests the edits resolving them. It infers
// the type a missing declaration must have from the context of its use, and decides whether a
// function body can fall off its end.
//
// # Example
//
// Before:
//
//	func area(w, h int) int {
//	    size = w * h // undefined: size
//	    return size
//	}
//
// After applying fixfacts' suggested fix:
//
//	func area(w, h int) int {
//	    var size int
//	    size = w * h
//	    return size
//	}
//
// # Diagnostics
//
//   - ff:inf: an undefined name, with the kinds and types of declarations resolving it
//   - ff:ret: a missing return where the body completes normally
//   - ff:sw: a missing return after a final switch whose cases all exit, lacking a default case
package analyzer
