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

// Package compute synthesizes the edit script that transforms one element sequence into another.
//
// The synthesis works through a chain of increasingly expensive strategies: an equality check, a
// full-containment check, the half-match heuristic, a line-granularity pre-pass for large byte
// texts, and finally the exact middle-snake bisection. Every strategy strictly shrinks the
// remaining problem, and every strategy produces a correct script; only optimality varies. A
// cooperative deadline is sampled between steps and selects cheaper branches once reached, it
// never aborts a computation.
package compute

import (
	"slices"

	"veen.io/editscript/internal/deadline"
	"veen.io/editscript/internal/edits"
)

// lineModeMinLen is the input length, in elements, above which the line-granularity pre-pass is
// worthwhile. Below it, bisection is cheap enough to run directly.
const lineModeMinLen = 100

// Diff computes the edit script that transforms x into y and canonicalizes it.
//
// The result aliases x and y wherever possible and is valid as long as the inputs are. With
// checklines, large byte texts go through the line-granularity pre-pass, trading a slightly less
// minimal script for a lot less work.
func Diff[T comparable](x, y []T, checklines bool, dl deadline.Deadline) []edits.Edit[T] {
	c := &differ[T]{dl: dl}
	return edits.Optimize(c.diff(x, y, checklines))
}

// differ holds the per-computation state shared by the recursion.
type differ[T comparable] struct {
	dl deadline.Deadline
}

// diff strips the common prefix and suffix, synthesizes a script for the middle, and reassembles
// the affixes around it. This is the recursion entry: subproblems produced by the half-match and
// bisection splits come back here.
func (c *differ[T]) diff(x, y []T, checklines bool) []edits.Edit[T] {
	if slices.Equal(x, y) {
		if len(x) == 0 {
			return nil
		}
		return []edits.Edit[T]{{Op: edits.Equal, Text: x}}
	}

	p := edits.CommonPrefix(x, y)
	prefix := x[:p]
	x, y = x[p:], y[p:]

	s := edits.CommonSuffix(x, y)
	suffix := x[len(x)-s:]
	x, y = x[:len(x)-s], y[:len(y)-s]

	script := c.compute(x, y, checklines)
	if p > 0 {
		script = slices.Insert(script, 0, edits.Edit[T]{Op: edits.Equal, Text: prefix})
	}
	if s > 0 {
		script = append(script, edits.Edit[T]{Op: edits.Equal, Text: suffix})
	}
	return script
}

// compute synthesizes a script for two texts that have no common prefix or suffix and are not
// equal, walking the cheap-to-expensive strategy chain.
func (c *differ[T]) compute(x, y []T, checklines bool) []edits.Edit[T] {
	switch {
	case len(x) == 0:
		return []edits.Edit[T]{{Op: edits.Insert, Text: y}}
	case len(y) == 0:
		return []edits.Edit[T]{{Op: edits.Delete, Text: x}}
	}

	if script, ok := c.overlap(x, y); ok {
		return script
	}

	// Only trade optimality for speed when the caller asked for a time budget.
	if c.dl.Set() {
		if script, ok := c.halfMatch(x, y, checklines); ok {
			return script
		}
	}

	if checklines && len(x) > lineModeMinLen && len(y) > lineModeMinLen {
		if xb, ok := any(x).([]byte); ok {
			yb := any(y).([]byte)
			return any(lineMode(xb, yb, c.dl)).([]edits.Edit[T])
		}
	}

	return c.bisect(x, y)
}

// overlap checks whether the shorter text is fully contained in the longer one. If it is, the
// script is simply the longer text's surroundings as deletions or insertions around one equality,
// and no further recursion can improve on that. As a final shortcut, a single-element text that
// is not contained in the other text cannot share anything with it, so that pair is decided
// directly as a deletion plus an insertion.
func (c *differ[T]) overlap(x, y []T) ([]edits.Edit[T], bool) {
	long, short := x, y
	op := edits.Delete // the non-overlapping parts come from x
	if len(x) < len(y) {
		long, short = y, x
		op = edits.Insert
	}

	if k := edits.Index(long, short, 0); k >= 0 {
		script := make([]edits.Edit[T], 0, 3)
		if k > 0 {
			script = append(script, edits.Edit[T]{Op: op, Text: long[:k]})
		}
		script = append(script, edits.Edit[T]{Op: edits.Equal, Text: short})
		if rest := long[k+len(short):]; len(rest) > 0 {
			script = append(script, edits.Edit[T]{Op: op, Text: rest})
		}
		return script, true
	}

	if len(x) == 1 || len(y) == 1 {
		return []edits.Edit[T]{
			{Op: edits.Delete, Text: x},
			{Op: edits.Insert, Text: y},
		}, true
	}

	return nil, false
}
