// Copyright 2026 The editscript Authors
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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// editscript.Option.
package config

import "time"

// Config collects all configurable parameters for the comparison functions in this module. It is
// read-only for the duration of a computation.
type Config struct {
	// Timeout is the soft time budget for a single computation. When the budget runs out the
	// algorithm degrades to cheaper but still correct results instead of aborting. Zero or
	// negative means unlimited.
	Timeout time.Duration

	// EditCost is the weight of an empty or trivial edit in terms of elements. It is reserved
	// for cleanup heuristics that trade edit quality for script size.
	EditCost int

	// CheckLines enables the line-granularity pre-pass for large inputs.
	CheckLines bool

	// The fields below are recognized for forward compatibility with a fuzzy matcher and patch
	// applier. No algorithm in this module consumes them yet.

	// MatchThreshold is the point at which no match is declared (0.0 = perfection, 1.0 = very
	// loose).
	MatchThreshold float64

	// MatchDistance is how far to search for a match (0 = exact location, 1000+ = broad match).
	MatchDistance int

	// DeleteThreshold is how closely the contents of a large deletion have to match the expected
	// contents (0.0 = perfection, 1.0 = very loose).
	DeleteThreshold float64

	// PatchMargin is the chunk size for context length.
	PatchMargin int

	// MatchMaxBits is the number of bits in an int assumed by a bitap-style matcher.
	MatchMaxBits int
}

// Default is the default configuration.
var Default = Config{
	Timeout:         time.Second,
	EditCost:        4,
	CheckLines:      true,
	MatchThreshold:  0.5,
	MatchDistance:   1000,
	DeleteThreshold: 0.5,
	PatchMargin:     4,
	MatchMaxBits:    32,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by the called function.
type Flag int

const (
	Timeout Flag = 1 << iota
	EditCost
	Precise
	MatchThreshold
	MatchDistance
	DeleteThreshold
	PatchMargin
	MatchMaxBits
)

// All is the set of flags accepted by the main comparison entry point.
const All = Timeout | EditCost | Precise | MatchThreshold | MatchDistance | DeleteThreshold |
	PatchMargin | MatchMaxBits

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Timeout:
		return "editscript.Timeout"
	case EditCost:
		return "editscript.EditCost"
	case Precise:
		return "editscript.Precise"
	case MatchThreshold:
		return "editscript.MatchThreshold"
	case MatchDistance:
		return "editscript.MatchDistance"
	case DeleteThreshold:
		return "editscript.DeleteThreshold"
	case PatchMargin:
		return "editscript.PatchMargin"
	case MatchMaxBits:
		return "editscript.MatchMaxBits"
	default:
		panic("never reached")
	}
}
