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
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

var completesRecords = []completesRecord{
	{Location: "a.go:3", Function: "f", CompletesNormally: true},
	{Location: "a.go:9", Function: "func literal", ExitsFromAllBranches: true},
}

func TestEmitJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := emit(&printer{w: &buf, format: formatJSON}, completesRecords, writeCompletes); err != nil {
		t.Fatalf("emit() failed: %v", err)
	}

	var got []completesRecord
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Can't decode %q: %v", buf.String(), err)
	}

	if len(got) != 2 || got[0] != completesRecords[0] || got[1] != completesRecords[1] {
		t.Errorf("Got %+v, want %+v", got, completesRecords)
	}

	if !strings.Contains(buf.String(), `"exitsFromAllBranches": true`) {
		t.Errorf("Missing field name in %s", buf.String())
	}
}

func TestEmitMsgpack(t *testing.T) {
	t.Parallel()

	records := []inferRecord{{
		Location: "a.go:4:14",
		Node:     "Ident",
		Results:  []resultRecord{{Types: []string{"int"}, Kinds: []string{"LocalVariable"}}},
	}}

	var buf bytes.Buffer
	if err := emit(&printer{w: &buf, format: formatMsgpack}, records, writeInfer); err != nil {
		t.Fatalf("emit() failed: %v", err)
	}

	var got []inferRecord
	if err := msgpack.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Can't decode: %v", err)
	}

	if len(got) != 1 || len(got[0].Results) != 1 || got[0].Results[0].Types[0] != "int" {
		t.Errorf("Got %+v, want %+v", got, records)
	}
}

func TestEmitText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := emit(&printer{w: &buf, format: formatText}, completesRecords, writeCompletes); err != nil {
		t.Fatalf("emit() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Got %d lines, want 2: %q", len(lines), buf.String())
	}

	tests := []struct {
		line int
		want string
	}{
		{0, "a.go:3"},
		{0, "f: completes normally"},
		{1, "func literal: completes normally"},
	}

	for _, tt := range tests {
		if !strings.Contains(lines[tt.line], tt.want) {
			t.Errorf("Line %q does not contain %q", lines[tt.line], tt.want)
		}
	}
}

func TestWriteInferEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := writeInfer(&buf, inferRecord{Location: "a.go:1"}); err != nil {
		t.Fatalf("writeInfer() failed: %v", err)
	}

	if got := buf.String(); !strings.HasSuffix(got, ": no expectation\n") {
		t.Errorf("Got %q, want no expectation", got)
	}
}

func TestEmitUnknownFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := emit(&printer{w: &buf, format: "xml"}, completesRecords, writeCompletes); err == nil {
		t.Error("Expected an error for an unknown format")
	}
}
