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

package statement

import (
	"log"
	"os"
)

func must(err error) int {
	if err == nil {
		return 1
	}

	log.Fatal(err)
} // want "Function body can complete normally"

func exit(code int) bool {
	if code == 0 {
		return true
	}

	os.Exit(code)
} // want "Function body can complete normally"
