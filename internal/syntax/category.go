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

// Category is the closed set of syntactic constructs the analyses distinguish.
type Category uint8

//go:generate go tool stringer -type Category
const (
	Invalid Category = iota
	CompilationUnit
	ClassDecl
	MethodDecl
	VarDecl
	Block
	ExprStmt
	If
	While
	DoWhile
	For
	EnhancedFor
	Switch
	Case
	Try
	Catch
	Throw
	Return
	Break
	Continue
	Fallthrough
	Labeled
	Synchronized
	Assert
	Empty
	Lambda
	Assign
	CompoundAssign
	Binary
	Unary
	Conditional
	Call
	NewInstance
	NewArray
	ArrayAccess
	MemberSelect
	Ident
	Literal
	Paren
	Cast
	InstanceOf
	TypeExpr
	Opaque
)

// Statement reports whether c is a statement category.
func (c Category) Statement() bool {
	switch c {
	case Block, ExprStmt, If, While, DoWhile, For, EnhancedFor, Switch, Try, Throw, Return,
		Break, Continue, Fallthrough, Labeled, Synchronized, Assert, Empty, VarDecl, ClassDecl:
		return true

	default:
		return false
	}
}

// Loop reports whether c is a loop category.
func (c Category) Loop() bool {
	switch c {
	case While, DoWhile, For, EnhancedFor:
		return true

	default:
		return false
	}
}
