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

// Package edits contains the internal edit script representation that's produced by the synthesis
// algorithm and is then translated to a user facing API, together with the operations on it that
// are shared between packages: affix scanning, subsequence search, and the script optimizer.
package edits

import (
	"bytes"
	"fmt"
	"slices"
)

// Op describes an edit operation.
type Op uint8

const (
	Equal Op = iota
	Delete
	Insert
)

func (op Op) String() string {
	switch op {
	case Equal:
		return "equal"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	default:
		return fmt.Sprint(uint8(op))
	}
}

// Edit is a single operation of an edit script together with the elements it applies to.
//
// Text either aliases one of the inputs the script was computed from (the synthesis algorithm
// never copies) or is an independently allocated buffer (optimizer merges always allocate).
type Edit[T comparable] struct {
	Op   Op
	Text []T
}

// CommonPrefix returns the length of the longest run of elements that x and y share at the start.
func CommonPrefix[T comparable](x, y []T) int {
	n := min(len(x), len(y))
	for i := range n {
		if x[i] != y[i] {
			return i
		}
	}
	return n
}

// CommonSuffix returns the length of the longest run of elements that x and y share at the end.
func CommonSuffix[T comparable](x, y []T) int {
	n := min(len(x), len(y))
	for i := 1; i <= n; i++ {
		if x[len(x)-i] != y[len(y)-i] {
			return i - 1
		}
	}
	return n
}

// Index returns the position of the first occurrence of sep in s at or after from, or -1 if sep
// is not present there.
func Index[T comparable](s, sep []T, from int) int {
	from = max(0, from)
	if from+len(sep) > len(s) {
		return -1
	}
	if len(sep) == 0 {
		return from
	}
	if sb, ok := any(s).([]byte); ok {
		i := bytes.Index(sb[from:], any(sep).([]byte))
		if i < 0 {
			return -1
		}
		return from + i
	}
	for i := from; i+len(sep) <= len(s); i++ {
		if s[i] == sep[0] && slices.Equal(s[i:i+len(sep)], sep) {
			return i
		}
	}
	return -1
}

// Text1 reconstructs the left-hand input of a script by concatenating everything that is not an
// insertion.
func Text1[T comparable](script []Edit[T]) []T {
	var out []T
	for _, e := range script {
		if e.Op != Insert {
			out = append(out, e.Text...)
		}
	}
	return out
}

// Text2 reconstructs the right-hand input of a script by concatenating everything that is not a
// deletion.
func Text2[T comparable](script []Edit[T]) []T {
	var out []T
	for _, e := range script {
		if e.Op != Delete {
			out = append(out, e.Text...)
		}
	}
	return out
}
