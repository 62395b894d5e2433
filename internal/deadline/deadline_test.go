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

package deadline

import (
	"testing"
	"time"
)

func TestUnlimited(t *testing.T) {
	var dl Deadline
	if dl.Set() {
		t.Error("zero Deadline: Set() = true, want false")
	}
	if dl.Reached() {
		t.Error("zero Deadline: Reached() = true, want false")
	}

	for _, timeout := range []time.Duration{0, -time.Second} {
		dl := From(timeout)
		if dl.Set() {
			t.Errorf("From(%v): Set() = true, want false", timeout)
		}
		if dl.Reached() {
			t.Errorf("From(%v): Reached() = true, want false", timeout)
		}
	}
}

func TestLimited(t *testing.T) {
	dl := From(time.Hour)
	if !dl.Set() {
		t.Error("From(1h): Set() = false, want true")
	}
	if dl.Reached() {
		t.Error("From(1h): Reached() = true immediately, want false")
	}
}

func TestExpiry(t *testing.T) {
	dl := From(time.Nanosecond)
	if !dl.Set() {
		t.Error("From(1ns): Set() = false, want true")
	}
	deadline := time.Now().Add(time.Second)
	for !dl.Reached() {
		if time.Now().After(deadline) {
			t.Fatal("From(1ns): Reached() still false after 1s")
		}
	}
}
