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

package analyzer

import (
	"flag"
	"strconv"
	"strings"

	"fillmore-labs.com/fixfacts/internal/config"
)

// NewFlagValue returns a boolean [flag.Getter] switching bit in mask on or off.
func NewFlagValue[F config.Bits](mask *config.BitMask[F], bit F) flag.Getter {
	return bitFlag[F]{mask: mask, bit: bit}
}

type bitFlag[F config.Bits] struct {
	mask *config.BitMask[F]
	bit  F
}

// Set implements [flag.Value].
func (f bitFlag[_]) Set(s string) error {
	on, err := parseSwitch(s)
	if err != nil {
		return err
	}

	f.mask.Set(f.bit, on)

	return nil
}

// String implements [flag.Value]. The flag package calls it on a zero value to detect defaults.
func (f bitFlag[_]) String() string { return strconv.FormatBool(f.enabled()) }

// Get implements [flag.Getter].
func (f bitFlag[_]) Get() any { return f.enabled() }

// IsBoolFlag marks the flag as boolean, so it can be given without a value.
func (f bitFlag[_]) IsBoolFlag() bool { return true }

func (f bitFlag[_]) enabled() bool { return f.mask != nil && f.mask.Enabled(f.bit) }

// parseSwitch accepts the values of [strconv.ParseBool] plus on and off.
func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on":
		return true, nil

	case "off":
		return false, nil
	}

	return strconv.ParseBool(s)
}
