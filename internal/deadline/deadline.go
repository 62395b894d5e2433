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

// Package deadline provides the cooperative time budget used by the diff synthesis.
//
// A deadline is advisory: components sample it at well-defined points and pick a cheaper but
// still correct branch when it has been reached. It never causes an abort.
package deadline

import "time"

// Deadline is a monotonic expiry point. The zero value means unlimited.
type Deadline struct {
	expiry time.Time
}

// From derives a deadline from a timeout at call start. A zero or negative timeout results in an
// unlimited deadline.
func From(timeout time.Duration) Deadline {
	if timeout <= 0 {
		return Deadline{}
	}
	return Deadline{expiry: time.Now().Add(timeout)}
}

// Set reports whether a time budget exists at all.
func (d Deadline) Set() bool {
	return !d.expiry.IsZero()
}

// Reached reports whether the budget has run out. An unlimited deadline is never reached.
func (d Deadline) Reached() bool {
	return d.Set() && !time.Now().Before(d.expiry)
}
