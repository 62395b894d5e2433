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

// Package editscript computes the edit script that transforms one text into another: an ordered
// sequence of insert, delete, and equal operations over byte ranges such that replaying the
// script reproduces the target text.
//
// The main function is [Edits], which works on strings and byte slices alike and shares the
// input text with its result wherever possible instead of copying. Scripts are canonicalized, so
// two diffs describing the same change are structurally identical.
//
// The computation runs under a soft time budget (see [Timeout]). The budget degrades the script
// quality gracefully: when it runs out, the remaining regions are emitted as coarse
// delete-then-insert pairs that still reconstruct both inputs exactly; the computation never
// fails and never returns an error.
package editscript
