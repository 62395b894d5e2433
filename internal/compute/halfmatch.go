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

import "veen.io/editscript/internal/edits"

// half is the partition produced by a successful half-match: both texts split into a prefix and a
// suffix pair around one shared middle.
type half[T comparable] struct {
	longPrefix, longSuffix   []T
	shortPrefix, shortSuffix []T
	common                   []T
	matched                  int
}

// halfMatch checks whether at least half of the longer text is present, contiguously, in the
// shorter one. That is an approximation, not a full common-substring search: it seeds on the
// second and third quarter of the longer text and keeps whichever seed matched more. On success
// the prefix and suffix pairs are diffed independently and recombined around the shared middle.
// The result is guaranteed correct and typically near-optimal for near-duplicate texts, but not
// guaranteed minimal.
func (c *differ[T]) halfMatch(x, y []T, checklines bool) ([]edits.Edit[T], bool) {
	long, short := x, y
	if len(x) <= len(y) {
		long, short = y, x
	}
	if len(long) < 4 || len(short)*2 < len(long) {
		return nil, false // pointless
	}

	q2, ok2 := commonHalf(long, short, (len(long)+3)/4)
	q3, ok3 := commonHalf(long, short, (len(long)+1)/2)
	var hm half[T]
	switch {
	case ok2 && ok3:
		// A tie goes to the third-quarter seed.
		if q2.matched > q3.matched {
			hm = q2
		} else {
			hm = q3
		}
	case ok2:
		hm = q2
	case ok3:
		hm = q3
	default:
		return nil, false
	}

	x1, y1 := hm.longPrefix, hm.shortPrefix
	x2, y2 := hm.longSuffix, hm.shortSuffix
	if len(x) <= len(y) {
		x1, y1 = hm.shortPrefix, hm.longPrefix
		x2, y2 = hm.shortSuffix, hm.longSuffix
	}

	script := c.diff(x1, y1, checklines)
	script = append(script, edits.Edit[T]{Op: edits.Equal, Text: hm.common})
	script = append(script, c.diff(x2, y2, checklines)...)
	return script, true
}

// commonHalf searches for a common substring covering at least half of long, seeded with the
// quarter-length substring of long starting at i. Every occurrence of the seed in short is
// extended into the longest shared prefix and suffix around it; the occurrence with the largest
// combined length wins, later occurrences winning ties.
func commonHalf[T comparable](long, short []T, i int) (half[T], bool) {
	seed := long[i : i+len(long)/4]

	var sub, prefix, suffix int
	for j := edits.Index(short, seed, 0); j >= 0; j = edits.Index(short, seed, j+1) {
		p := edits.CommonPrefix(long[i:], short[j:])
		s := edits.CommonSuffix(long[:i], short[:j])
		if prefix+suffix > p+s {
			continue
		}
		sub, prefix, suffix = j, p, s
	}

	if (prefix+suffix)*2 < len(long) {
		return half[T]{}, false
	}
	return half[T]{
		longPrefix:  long[:i-suffix],
		longSuffix:  long[i+prefix:],
		shortPrefix: short[:sub-suffix],
		shortSuffix: short[sub+prefix:],
		common:      short[sub-suffix : sub+prefix],
		matched:     prefix + suffix,
	}, true
}
