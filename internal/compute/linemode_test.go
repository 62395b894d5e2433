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
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"veen.io/editscript/internal/byteview"
	"veen.io/editscript/internal/deadline"
	"veen.io/editscript/internal/edits"
)

func TestTokenize(t *testing.T) {
	tokens := make(map[byteview.ByteView]int)
	toks, offs := tokenize([]byte("a\nb\na\n"), tokens)
	if diff := cmp.Diff([]int{0, 1, 0}, toks); diff != "" {
		t.Errorf("unexpected tokens [-want,+got]:\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 2, 4, 6}, offs); diff != "" {
		t.Errorf("unexpected offsets [-want,+got]:\n%s", diff)
	}

	// The token table is shared across both inputs, so a line that already occurred in the first
	// input maps to the same token in the second.
	toks2, _ := tokenize([]byte("b\nc"), tokens)
	if diff := cmp.Diff([]int{1, 2}, toks2); diff != "" {
		t.Errorf("unexpected tokens for second input [-want,+got]:\n%s", diff)
	}
}

func TestLineMode(t *testing.T) {
	x := []byte("alpha\nbravo\ncharlie\n")
	y := []byte("alpha\nbrafo\ncharlie\n")

	got := edits.Optimize(lineMode(x, y, deadline.Deadline{}))
	want := []edits.Edit[byte]{
		e(edits.Equal, "alpha\nbra"),
		e(edits.Delete, "v"),
		e(edits.Insert, "f"),
		e(edits.Equal, "o\ncharlie\n"),
	}
	cmpScripts(t, got, want)
}

func TestLineModeReconstructs(t *testing.T) {
	tests := []struct {
		name string
		x, y string
	}{
		{
			name: "inserted_lines",
			x:    "one\ntwo\nthree\n",
			y:    "one\ntwo\nnew\nthree\n",
		},
		{
			name: "deleted_lines",
			x:    "one\ntwo\nthree\nfour\n",
			y:    "one\nfour\n",
		},
		{
			name: "changed_blocks",
			x:    strings.Repeat("keep\n", 40) + "old one\nold two\n" + strings.Repeat("tail\n", 40),
			y:    strings.Repeat("keep\n", 40) + "new one\nnew two\n" + strings.Repeat("tail\n", 40),
		},
		{
			name: "no_trailing_newline",
			x:    "one\ntwo",
			y:    "one\nthree",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := lineMode([]byte(tt.x), []byte(tt.y), deadline.Deadline{})
			if got := edits.Text1(script); !bytes.Equal(got, []byte(tt.x)) {
				t.Errorf("Text1(script) = %q, want %q", got, tt.x)
			}
			if got := edits.Text2(script); !bytes.Equal(got, []byte(tt.y)) {
				t.Errorf("Text2(script) = %q, want %q", got, tt.y)
			}
		})
	}
}

// Inputs above the length cutoff take the line-granularity pre-pass inside Diff. The script is
// less minimal than bisection's, but it must still be a correct transformation.
func TestDiffLineModeCutover(t *testing.T) {
	var xb, yb bytes.Buffer
	for i := range 60 {
		xb.WriteString("line with some content\n")
		if i%7 == 3 {
			xb.WriteString("extra\n")
			yb.WriteString("changed line instead\n")
		}
		yb.WriteString("line with some content\n")
	}
	x, y := xb.Bytes(), yb.Bytes()
	if len(x) <= lineModeMinLen || len(y) <= lineModeMinLen {
		t.Fatalf("inputs too short to exercise the pre-pass: %d, %d", len(x), len(y))
	}

	script := Diff(x, y, true, deadline.Deadline{})
	if got := edits.Text1(script); !bytes.Equal(got, x) {
		t.Errorf("Text1(script) = %q, want %q", got, x)
	}
	if got := edits.Text2(script); !bytes.Equal(got, y) {
		t.Errorf("Text2(script) = %q, want %q", got, y)
	}
}
