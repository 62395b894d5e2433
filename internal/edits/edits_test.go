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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCommonPrefix(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want int
	}{
		{"both_empty", "", "", 0},
		{"no_overlap", "abc", "xyz", 0},
		{"partial", "1234abcdef", "1234xyz", 4},
		{"whole_input", "1234", "1234xyz", 4},
		{"single", "a", "ab", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CommonPrefix([]byte(tt.x), []byte(tt.y)); got != tt.want {
				t.Errorf("CommonPrefix(%q, %q) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
			if got := CommonPrefix([]byte(tt.y), []byte(tt.x)); got != tt.want {
				t.Errorf("CommonPrefix(%q, %q) = %d, want %d", tt.y, tt.x, got, tt.want)
			}
		})
	}
}

func TestCommonSuffix(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want int
	}{
		{"both_empty", "", "", 0},
		{"no_overlap", "abc", "xyz", 0},
		{"partial", "abcdef1234", "xyz1234", 4},
		{"whole_input", "1234", "xyz1234", 4},
		{"single", "a", "ba", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CommonSuffix([]byte(tt.x), []byte(tt.y)); got != tt.want {
				t.Errorf("CommonSuffix(%q, %q) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
			if got := CommonSuffix([]byte(tt.y), []byte(tt.x)); got != tt.want {
				t.Errorf("CommonSuffix(%q, %q) = %d, want %d", tt.y, tt.x, got, tt.want)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		name   string
		s, sep string
		from   int
		want   int
	}{
		{"found", "abcabc", "bc", 0, 1},
		{"found_after_from", "abcabc", "bc", 2, 4},
		{"from_at_match", "abcabc", "bc", 4, 4},
		{"not_found", "abcabc", "xy", 0, -1},
		{"not_found_after_from", "abcabc", "a", 5, -1},
		{"sep_longer_than_rest", "abc", "abcd", 0, -1},
		{"empty_sep", "abc", "", 1, 1},
		{"negative_from", "abcabc", "abc", -3, 0},
		{"from_past_end", "abc", "a", 7, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Bytes take a fast path through the standard library, every other element type is
			// searched with a direct scan. Both must agree.
			if got := Index([]byte(tt.s), []byte(tt.sep), tt.from); got != tt.want {
				t.Errorf("Index(%q, %q, %d) = %d, want %d", tt.s, tt.sep, tt.from, got, tt.want)
			}
			if got := Index(runes(tt.s), runes(tt.sep), tt.from); got != tt.want {
				t.Errorf("Index(%v, %v, %d) = %d, want %d", runes(tt.s), runes(tt.sep), tt.from, got, tt.want)
			}
		})
	}
}

func runes(s string) []int {
	out := make([]int, 0, len(s))
	for _, r := range s {
		out = append(out, int(r))
	}
	return out
}

func TestText1Text2(t *testing.T) {
	script := []Edit[byte]{
		{Equal, []byte("jump")},
		{Delete, []byte("s")},
		{Insert, []byte("ed")},
		{Equal, []byte(" over ")},
		{Delete, []byte("the")},
		{Insert, []byte("a")},
		{Equal, []byte(" lazy")},
	}
	if got, want := string(Text1(script)), "jumps over the lazy"; got != want {
		t.Errorf("Text1(..) = %q, want %q", got, want)
	}
	if got, want := string(Text2(script)), "jumped over a lazy"; got != want {
		t.Errorf("Text2(..) = %q, want %q", got, want)
	}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{Equal, "equal"},
		{Delete, "delete"},
		{Insert, "insert"},
		{Op(42), "42"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", uint8(tt.op), got, tt.want)
		}
	}
}

// cmpEdits renders scripts in a stable, readable form for test failures.
func cmpEdits[T comparable](t *testing.T, got, want []Edit[T]) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("unexpected script [-want,+got]:\n%s", diff)
	}
}
