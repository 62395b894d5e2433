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
	"veen.io/editscript/internal/byteview"
	"veen.io/editscript/internal/deadline"
	"veen.io/editscript/internal/edits"
)

// lineMode approximates a good script for large texts by first diffing at line granularity.
//
// Both texts are split into lines with their terminators kept, every distinct line content is
// assigned a dense token, and the full strategy chain runs on the two token sequences, which are
// short. The token-level script is then expanded back to byte ranges of the original inputs.
// Line tokenization necessarily hides sub-line matches, so adjacent deletion/insertion block
// pairs are re-diffed at byte granularity before the result is final.
func lineMode(x, y []byte, dl deadline.Deadline) []edits.Edit[byte] {
	tokens := make(map[byteview.ByteView]int)
	xtok, xoff := tokenize(x, tokens)
	ytok, yoff := tokenize(y, tokens)

	tc := &differ[int]{dl: dl}
	tokScript := tc.diff(xtok, ytok, false)

	// Expand the token-level script back into the concrete line bytes each token stood for. A
	// run of tokens always maps onto a contiguous byte range of its source, so the expansion
	// shares the inputs instead of copying; for equalities the line contents are identical on
	// both sides and the range is taken from x.
	expanded := make([]edits.Edit[byte], 0, len(tokScript))
	s, t := 0, 0
	for _, e := range tokScript {
		n := len(e.Text)
		switch e.Op {
		case edits.Equal:
			expanded = append(expanded, edits.Edit[byte]{Op: edits.Equal, Text: x[xoff[s]:xoff[s+n]]})
			s += n
			t += n
		case edits.Delete:
			expanded = append(expanded, edits.Edit[byte]{Op: edits.Delete, Text: x[xoff[s]:xoff[s+n]]})
			s += n
		case edits.Insert:
			expanded = append(expanded, edits.Edit[byte]{Op: edits.Insert, Text: y[yoff[t]:yoff[t+n]]})
			t += n
		}
	}

	return refine(expanded, dl)
}

// tokenize splits text into lines and maps every distinct line content to a token, reusing
// tokens for repeated lines. The second result holds the byte offset of every line boundary, so
// that offs[i]:offs[i+n] is the byte range of n lines starting at line i.
func tokenize(text []byte, tokens map[byteview.ByteView]int) (toks []int, offs []int) {
	lines := byteview.SplitLines(byteview.From(text))
	toks = make([]int, len(lines))
	offs = make([]int, len(lines)+1)
	for i, line := range lines {
		id, ok := tokens[line]
		if !ok {
			id = len(tokens)
			tokens[line] = id
		}
		toks[i] = id
		offs[i+1] = offs[i] + line.Len()
	}
	return toks, offs
}

// refine re-diffs every adjacent deletion/insertion block pair at byte granularity to recover
// the sub-line matches that line tokenization cannot see. Blocks with only one kind of edit are
// kept as they are.
func refine(script []edits.Edit[byte], dl deadline.Deadline) []edits.Edit[byte] {
	c := &differ[byte]{dl: dl}
	out := make([]edits.Edit[byte], 0, len(script))

	var pending []edits.Edit[byte]
	var del, ins []byte
	var ndel, nins int
	flush := func() {
		if ndel > 0 && nins > 0 {
			out = append(out, c.diff(del, ins, false)...)
		} else {
			out = append(out, pending...)
		}
		pending, del, ins = pending[:0], nil, nil
		ndel, nins = 0, 0
	}

	for _, e := range script {
		switch e.Op {
		case edits.Delete:
			pending = append(pending, e)
			del = append(del, e.Text...)
			ndel++
		case edits.Insert:
			pending = append(pending, e)
			ins = append(ins, e.Text...)
			nins++
		case edits.Equal:
			flush()
			out = append(out, e)
		}
	}
	flush()
	return out
}
