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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	formatText    = "text"
	formatJSON    = "json"
	formatMsgpack = "msgpack"
)

var (
	locationColor = color.New(color.FgCyan)
	typeColor     = color.New(color.FgYellow, color.Bold)
	trueColor     = color.New(color.FgGreen)
	falseColor    = color.New(color.FgRed)
)

// inferRecord holds the expectations inferred at one location.
type inferRecord struct {
	Location string         `json:"location"       msgpack:"location"`
	Node     string         `json:"node,omitempty" msgpack:"node,omitempty"`
	Results  []resultRecord `json:"results"        msgpack:"results"`
}

type resultRecord struct {
	Types []string `json:"types"           msgpack:"types"`
	Kinds []string `json:"kinds"           msgpack:"kinds"`
	Scope string   `json:"scope,omitempty" msgpack:"scope,omitempty"`
}

// completesRecord holds the completion facts of the function at one location.
type completesRecord struct {
	Location             string `json:"location"               msgpack:"location"`
	Function             string `json:"function"               msgpack:"function"`
	CompletesNormally    bool   `json:"completesNormally"      msgpack:"completesNormally"`
	ExitsFromAllBranches bool   `json:"exitsFromAllBranches"   msgpack:"exitsFromAllBranches"`
}

// diagnosticRecord is an analyzer diagnostic.
type diagnosticRecord struct {
	Position string   `json:"position"        msgpack:"position"`
	Message  string   `json:"message"         msgpack:"message"`
	Fixes    []string `json:"fixes,omitempty" msgpack:"fixes,omitempty"`
}

type printer struct {
	w      io.Writer
	format string
}

// emit writes records in the configured format, using text for the text format.
func emit[T any](p *printer, records []T, text func(io.Writer, T) error) error {
	switch p.format {
	case formatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")

		return enc.Encode(records)

	case formatMsgpack:
		return msgpack.NewEncoder(p.w).Encode(records)

	case formatText:
		for _, r := range records {
			if err := text(p.w, r); err != nil {
				return err
			}
		}

		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, p.format)
	}
}

func writeInfer(w io.Writer, r inferRecord) error {
	if _, err := locationColor.Fprintf(w, "%s", r.Location); err != nil {
		return err
	}

	if r.Node != "" {
		fmt.Fprintf(w, " (%s)", r.Node)
	}

	if len(r.Results) == 0 {
		_, err := fmt.Fprintln(w, ": no expectation")

		return err
	}

	fmt.Fprintln(w, ":")

	for _, res := range r.Results {
		fmt.Fprint(w, "  ")

		if len(res.Types) > 0 {
			typeColor.Fprint(w, strings.Join(res.Types, " | "))
		} else {
			fmt.Fprint(w, "<any type>")
		}

		if len(res.Kinds) > 0 {
			fmt.Fprintf(w, " as %s", strings.Join(res.Kinds, ", "))
		}

		if res.Scope != "" {
			fmt.Fprintf(w, " in %s", res.Scope)
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

func writeCompletes(w io.Writer, r completesRecord) error {
	locationColor.Fprintf(w, "%s", r.Location)
	fmt.Fprintf(w, " %s: completes normally ", r.Function)
	yesNo(w, r.CompletesNormally)
	fmt.Fprint(w, ", exits from all branches ")
	yesNo(w, r.ExitsFromAllBranches)
	_, err := fmt.Fprintln(w)

	return err
}

func writeDiagnostic(w io.Writer, r diagnosticRecord) error {
	locationColor.Fprintf(w, "%s", r.Position)

	if _, err := fmt.Fprintf(w, ": %s\n", r.Message); err != nil {
		return err
	}

	for _, fix := range r.Fixes {
		fmt.Fprint(w, "  fix: ")
		typeColor.Fprintln(w, fix)
	}

	return nil
}

func yesNo(w io.Writer, b bool) {
	if b {
		trueColor.Fprint(w, "yes")
	} else {
		falseColor.Fprint(w, "no")
	}
}
