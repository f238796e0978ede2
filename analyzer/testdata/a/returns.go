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

import (
	"errors"
	"log"
)

type Color int

const (
	Red Color = iota
	Green
	Blue
)

func sign(x int) int {
	if x > 0 {
		return 1
	}
} // want "Function body can complete normally"

func parse(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty")
	}
} // want "Function body can complete normally"

func named(s string) (n int, err error) {
	if s != "" {
		n = len(s)
		return
	}
} // want "Function body can complete normally"

func name(c Color) string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	}
} // want "Final switch statement has no default case"

func pick(x int) int {
	switch x {
	case 1:
		if x > 0 {
			break
		}
		return 1
	case 2:
		return 0
	}
} // want "Function body can complete normally"

func must(err error) int {
	if err == nil {
		return 1
	}

	log.Fatal(err)
}

func literal() func() *Color {
	return func() *Color {
		for range 3 {
			return nil
		}
	} // want "Function body can complete normally"
}
