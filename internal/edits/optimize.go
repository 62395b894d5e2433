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

package edits

import "slices"

// Optimize merges and canonicalizes an edit script. After it returns, no two adjacent edits share
// an operation, deletions come before insertions within a changed region, and single edits
// surrounded by equalities are shifted to a canonical position. Running Optimize on an already
// optimized script returns it unchanged.
func Optimize[T comparable](script []Edit[T]) []Edit[T] {
	for {
		script = mergeUpdates(script)
		script = mergeEquals(script)
		var changes int
		script, changes = shift(script)
		if changes == 0 {
			return script
		}
	}
}

// mergeUpdates collapses every run of insertions and deletions between two equalities into at
// most one deletion followed by at most one insertion. The merged buffers are compared against
// each other: a common prefix or suffix between the inserted and the deleted elements is an
// equality that the heuristic recursion left split across edit boundaries, and is factored out as
// a standalone Equal edit.
func mergeUpdates[T comparable](script []Edit[T]) []Edit[T] {
	out := make([]Edit[T], 0, len(script))

	// Accumulated run. The buffers alias the original edit as long as only a single edit of the
	// kind has been seen; merging allocates.
	var del, ins []T
	var delOwned, insOwned bool

	flush := func() {
		var suffix []T
		if len(del) > 0 && len(ins) > 0 {
			if p := CommonPrefix(del, ins); p > 0 {
				out = append(out, Edit[T]{Op: Equal, Text: del[:p:p]})
				del, ins = del[p:], ins[p:]
			}
			if s := CommonSuffix(del, ins); s > 0 {
				suffix = del[len(del)-s:]
				del, ins = del[:len(del)-s], ins[:len(ins)-s]
			}
		}
		if len(del) > 0 {
			out = append(out, Edit[T]{Op: Delete, Text: del})
		}
		if len(ins) > 0 {
			out = append(out, Edit[T]{Op: Insert, Text: ins})
		}
		if len(suffix) > 0 {
			out = append(out, Edit[T]{Op: Equal, Text: suffix})
		}
		del, ins = nil, nil
		delOwned, insOwned = false, false
	}

	for _, e := range script {
		switch e.Op {
		case Delete:
			del, delOwned = accumulate(del, delOwned, e.Text)
		case Insert:
			ins, insOwned = accumulate(ins, insOwned, e.Text)
		case Equal:
			flush()
			out = append(out, e)
		}
	}
	flush()
	return out
}

// accumulate appends text to buf. The first piece is borrowed, any further piece forces an owned
// buffer so that appends never write through a view into caller memory.
func accumulate[T comparable](buf []T, owned bool, text []T) ([]T, bool) {
	switch {
	case len(text) == 0:
		return buf, owned
	case buf == nil:
		return text, false
	case !owned:
		merged := make([]T, 0, len(buf)+len(text))
		return append(append(merged, buf...), text...), true
	default:
		return append(buf, text...), true
	}
}

// mergeEquals concatenates runs of two or more adjacent Equal edits into a single Equal edit.
func mergeEquals[T comparable](script []Edit[T]) []Edit[T] {
	out := script[:0]
	for _, e := range script {
		if e.Op == Equal && len(out) > 0 && out[len(out)-1].Op == Equal {
			out[len(out)-1].Text = slices.Concat(out[len(out)-1].Text, e.Text)
			continue
		}
		out = append(out, e)
	}
	return out
}

// shift looks at single edits that are surrounded by equalities, e.g. A<ins>BA</ins>C, and shifts
// them sideways to eliminate one of the equalities: <ins>AB</ins>AC. It returns the number of
// shifted edits; the caller re-runs the merge passes when it is nonzero because shifting can
// create new adjacent runs of the same kind.
func shift[T comparable](script []Edit[T]) ([]Edit[T], int) {
	changes := 0
	for i := 1; i+1 < len(script); i++ {
		if script[i+1].Op != Equal || script[i].Op == Equal || script[i-1].Op != Equal {
			continue
		}
		prev, cur, next := script[i-1], script[i], script[i+1]
		switch {
		case hasSuffix(cur.Text, prev.Text):
			// Shift the edit over the previous equality.
			script[i] = Edit[T]{cur.Op, slices.Concat(prev.Text, cur.Text[:len(cur.Text)-len(prev.Text)])}
			script[i+1] = Edit[T]{Equal, slices.Concat(prev.Text, next.Text)}
			script = slices.Delete(script, i-1, i)
			changes++
			i--
		case hasPrefix(cur.Text, next.Text):
			// Shift the edit over the next equality.
			script[i-1] = Edit[T]{Equal, slices.Concat(prev.Text, next.Text)}
			script[i] = Edit[T]{cur.Op, slices.Concat(cur.Text[len(next.Text):], next.Text)}
			script = slices.Delete(script, i+1, i+2)
			changes++
		}
	}
	return script, changes
}

func hasPrefix[T comparable](s, prefix []T) bool {
	return len(s) >= len(prefix) && slices.Equal(s[:len(prefix)], prefix)
}

func hasSuffix[T comparable](s, suffix []T) bool {
	return len(s) >= len(suffix) && slices.Equal(s[len(s)-len(suffix):], suffix)
}
