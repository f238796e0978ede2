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

package cantreturn

import (
	"log"
	"os"
	"runtime"
	"syscall"
	"testing"
)

func logFatal() {
	log.Fatal() // want "terminating call"
}

func logFatalln() {
	log.Fatalln("done") // want "terminating call"
}

func builtinPanic() {
	panic("") // want "terminating call"
}

func loggerFatalf() {
	l := log.Default()

	l.Fatalf("") // want "terminating call"
}

func osExit() {
	(os.Exit)(1) // want "terminating call"
}

func syscallExit() {
	syscall.Exit(1) // want "terminating call"
}

func runtimeGoexit() {
	runtime.Goexit() // want "terminating call"
}

func testFatal(t *testing.T) {
	t.Fatal("stop") // want "terminating call"
}

func tbSkip(tb testing.TB) {
	tb.SkipNow() // want "terminating call"
}

func normalReturn() {
	println("hello")
}

func shadowedPanic() {
	panic := log.Print

	panic("hello")
}

func methodValue() {
	f := os.Exit

	f(1)
}
