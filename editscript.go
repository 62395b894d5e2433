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
	"veen.io/editscript/internal/byteview"
	"veen.io/editscript/internal/compute"
	"veen.io/editscript/internal/config"
	"veen.io/editscript/internal/deadline"
	"veen.io/editscript/internal/edits"
)

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Equal  Op = iota // Bytes present in both texts
	Delete           // Bytes removed from the first text
	Insert           // Bytes added by the second text
)

// Edit is a single operation of an edit script together with the bytes it applies to.
//
// For T == []byte, Text may alias the inputs the script was computed from and must be treated as
// read-only; it is valid as long as the inputs are.
type Edit[T string | []byte] struct {
	Op   Op
	Text T
}

// Edits compares x and y and returns the edit script that transforms x into y: replaying the
// script while keeping equalities, dropping deletions, and adding insertions reproduces y, and
// reading it the other way reproduces x.
//
// The script is canonicalized: no two adjacent edits carry the same operation, and single edits
// next to equalities sit at a deterministic position, so two scripts describing the same change
// are structurally identical.
//
// If x and y are identical the script is a single equality; for empty inputs it has length zero.
// The result is minimal or near-minimal: by
// default the computation runs under a soft time budget (see [Timeout]) and degrades to a coarser
// but still correct script when the budget runs out, and large texts are pre-diffed at line
// granularity (see [Precise]).
func Edits[T string | []byte](x, y T, opts ...Option) []Edit[T] {
	cfg := config.FromOptions(opts, config.All)
	dl := deadline.From(cfg.Timeout)

	xv, yv := byteview.From(x), byteview.From(y)
	script := compute.Diff(xv.Raw(), yv.Raw(), cfg.CheckLines, dl)
	if len(script) == 0 {
		return nil
	}

	out := make([]Edit[T], len(script))
	for i, e := range script {
		out[i] = Edit[T]{Op: opFrom(e.Op), Text: byteview.To[T](e.Text)}
	}
	return out
}

func opFrom(op edits.Op) Op {
	switch op {
	case edits.Equal:
		return Equal
	case edits.Delete:
		return Delete
	case edits.Insert:
		return Insert
	default:
		panic("never reached")
	}
}
