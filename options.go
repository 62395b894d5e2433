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

package editscript

import (
	"time"

	"veen.io/editscript/internal/config"
)

// Option configures the behavior of comparison functions.
type Option = config.Option

// Timeout sets the soft time budget for a single computation. When the budget runs out, the
// computation finishes with a coarser but still correct script instead of failing. Zero or a
// negative duration removes the budget entirely. The default is one second.
func Timeout(d time.Duration) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Timeout = max(0, d)
		return config.Timeout
	}
}

// EditCost sets the weight of an empty or trivial edit in terms of elements, used by cleanup
// heuristics that trade script quality for script size. The default is 4.
func EditCost(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.EditCost = max(0, n)
		return config.EditCost
	}
}

// Precise disables the line-granularity pre-pass that speeds up comparisons of large texts. The
// result can be slightly more minimal, at a noticeably higher cost for large, mostly identical
// inputs.
func Precise() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.CheckLines = false
		return config.Precise
	}
}

// MatchThreshold sets the point at which no match is declared (0.0 = perfection, 1.0 = very
// loose). Reserved for a future fuzzy matcher; recognized but not consumed by the comparison
// functions. The default is 0.5.
func MatchThreshold(f float64) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MatchThreshold = f
		return config.MatchThreshold
	}
}

// MatchDistance sets how far from the expected location a fuzzy match may be (0 = exact
// location, 1000+ = broad match). Reserved for a future fuzzy matcher; recognized but not
// consumed by the comparison functions. The default is 1000.
func MatchDistance(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MatchDistance = n
		return config.MatchDistance
	}
}

// DeleteThreshold sets how closely the contents of a large deletion have to match the expected
// contents (0.0 = perfection, 1.0 = very loose). Reserved for a future patch applier; recognized
// but not consumed by the comparison functions. The default is 0.5.
func DeleteThreshold(f float64) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.DeleteThreshold = f
		return config.DeleteThreshold
	}
}

// PatchMargin sets the chunk size for context length. Reserved for a future patch text format;
// recognized but not consumed by the comparison functions. The default is 4.
func PatchMargin(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.PatchMargin = n
		return config.PatchMargin
	}
}

// MatchMaxBits sets the number of bits in an int assumed by a bitap-style matcher. Reserved for a
// future fuzzy matcher; recognized but not consumed by the comparison functions. The default is
// 32.
func MatchMaxBits(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MatchMaxBits = n
		return config.MatchMaxBits
	}
}
