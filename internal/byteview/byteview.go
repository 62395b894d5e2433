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

// Package byteview provides a mechanism to handle strings and []byte as immutable byte views.
//
// A ByteView is comparable and compares by content, which makes it usable as a map key without
// copying the underlying bytes.
package byteview

import (
	"strings"
	"unsafe"
)

type ByteView struct {
	data string
}

func From[T string | []byte](in T) ByteView {
	switch in := any(in).(type) {
	case string:
		return ByteView{in}
	case []byte:
		return ByteView{unsafe.String(unsafe.SliceData(in), len(in))}
	}
	panic("never reached")
}

func (v ByteView) Len() int { return len(v.data) }

func (v ByteView) String() string { return v.data }

// Raw exposes the view as a byte slice without copying. The result must not be modified: it may
// alias a string or a caller-owned buffer.
func (v ByteView) Raw() []byte {
	if len(v.data) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(v.data), len(v.data))
}

// To converts a byte slice into the requested representation without copying. For T == string the
// bytes must not be modified afterwards.
func To[T string | []byte](b []byte) T {
	switch any((*T)(nil)).(type) {
	case *string:
		if len(b) == 0 {
			return T("")
		}
		return T(unsafe.String(unsafe.SliceData(b), len(b)))
	case *[]byte:
		return T(b)
	}
	panic("never reached")
}

// SplitLines splits the input on '\n' and returns the lines including the newline character. The
// last line may miss the newline character. The lines partition the input exactly, so
// concatenating them reproduces the input byte for byte.
func SplitLines(v ByteView) []ByteView {
	s := v.data
	n := strings.Count(s, "\n")
	if len(s) > 0 && s[len(s)-1] != '\n' {
		n++
	}
	lines := make([]ByteView, 0, n)
	for len(s) > 0 {
		m := strings.IndexByte(s, '\n')
		if m < 0 {
			lines = append(lines, ByteView{s})
			break
		}
		lines = append(lines, ByteView{s[:m+1]})
		s = s[m+1:]
	}
	return lines
}
