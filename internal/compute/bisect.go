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

package compute

import (
	"veen.io/editscript/internal/edits"
)

// bisect finds a minimal edit script using the divide-and-conquer variant of Myers' O(ND)
// algorithm.
//
// The edit graph for x and y has a vertex for every (s, t) with 0 <= s <= len(x) and
// 0 <= t <= len(y). A horizontal edge deletes x[s], a vertical edge inserts y[t], and where
// x[s] == y[t] a free diagonal edge matches both. A minimal script corresponds to a path from
// (0, 0) to (len(x), len(y)) with the fewest non-diagonal edges.
//
// Instead of searching that path outright, two frontier searches run simultaneously: one expands
// from (0, 0) and one from (len(x), len(y)), each tracking, per diagonal k = s - t and search
// depth d, the furthest endpoint reachable with d non-diagonal edges (the v-arrays below, endpoint
// stored as its s coordinate since t = s - k). As soon as the frontiers overlap on a diagonal, the
// overlap point lies on a minimal path and splits the problem into two strictly smaller halves
// that are solved by recursing into the full strategy chain. Working memory stays linear and the
// script itself is never materialized here.
//
// The deadline is sampled once per depth step. When it is reached, or the search space is
// exhausted because the texts share nothing at all, the remaining pair degrades to one deletion
// plus one insertion: still a correct script, just not a minimal one.
//
// Reference: Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1,
// 251-266 (1986). https://doi.org/10.1007/BF01840446
func (c *differ[T]) bisect(x, y []T) []edits.Edit[T] {
	n, m := len(x), len(y)
	maxD := (n + m + 1) / 2
	v0 := maxD
	vlen := 2*maxD + 2
	vf := make([]int, vlen)
	vb := make([]int, vlen)
	for i := range vf {
		vf[i] = -1
		vb[i] = -1
	}
	vf[v0+1] = 0
	vb[v0+1] = 0

	delta := n - m
	// If the total number of elements is odd, the frontiers can only meet while walking the
	// forward path; if it is even, only while walking the reverse path.
	front := delta%2 != 0

	// Trapezoid bounds that keep k inside the edit grid once a frontier ran off an edge.
	var k1start, k1end, k2start, k2end int

	for d := 0; d < maxD; d++ {
		if c.dl.Reached() {
			break
		}

		// Walk the forward frontier one step.
		for k1 := -d + k1start; k1 <= d-k1end; k1 += 2 {
			k10 := v0 + k1
			var s int
			if k1 == -d || (k1 != d && vf[k10-1] < vf[k10+1]) {
				s = vf[k10+1]
			} else {
				// Also taken when both neighbours reach equally far, which prioritizes
				// deletions over insertions.
				s = vf[k10-1] + 1
			}
			t := s - k1
			for s < n && t < m && x[s] == y[t] {
				s++
				t++
			}
			vf[k10] = s
			switch {
			case s > n:
				// Ran off the right of the graph.
				k1end += 2
			case t > m:
				// Ran off the bottom of the graph.
				k1start += 2
			case front:
				k20 := v0 + delta - k1
				if k20 >= 0 && k20 < vlen && vb[k20] != -1 {
					// Mirror the reverse endpoint onto the forward coordinate system.
					if s >= n-vb[k20] {
						return c.bisectSplit(x, y, s, t)
					}
				}
			}
		}

		// Walk the reverse frontier one step.
		for k2 := -d + k2start; k2 <= d-k2end; k2 += 2 {
			k20 := v0 + k2
			var s int
			if k2 == -d || (k2 != d && vb[k20-1] < vb[k20+1]) {
				s = vb[k20+1]
			} else {
				s = vb[k20-1] + 1
			}
			t := s - k2
			for s < n && t < m && x[n-s-1] == y[m-t-1] {
				s++
				t++
			}
			vb[k20] = s
			switch {
			case s > n:
				// Ran off the left of the graph.
				k2end += 2
			case t > m:
				// Ran off the top of the graph.
				k2start += 2
			case !front:
				k10 := v0 + delta - k2
				if k10 >= 0 && k10 < vlen && vf[k10] != -1 {
					s1 := vf[k10]
					t1 := v0 + s1 - k10
					if s1 >= n-s {
						return c.bisectSplit(x, y, s1, t1)
					}
				}
			}
		}
	}

	// Either the deadline cut the search short, or the number of edits equals the number of
	// elements because the texts have no commonality at all.
	return []edits.Edit[T]{
		{Op: edits.Delete, Text: x},
		{Op: edits.Insert, Text: y},
	}
}

// bisectSplit divides the problem at the point where the frontiers met and solves both halves
// independently. The halves go back through the whole strategy chain; the line-granularity
// pre-pass stays disabled below a split.
func (c *differ[T]) bisectSplit(x, y []T, s, t int) []edits.Edit[T] {
	script := c.diff(x[:s], y[:t], false)
	return append(script, c.diff(x[s:], y[t:], false)...)
}
