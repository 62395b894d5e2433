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

// editdiff is a development tool that prints the edit script between two files, insertions in
// green and deletions in red. It is meant for eyeballing results, not for producing patches.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"veen.io/editscript"
)

type cfg struct {
	timeout time.Duration
	precise bool
	x, y    string
}

func main() {
	var c cfg
	flag.DurationVar(&c.timeout, "timeout", time.Second, "soft time budget, 0 for unlimited")
	flag.BoolVar(&c.precise, "precise", false, "disable the line-granularity pre-pass")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "error: usage: editdiff [flags] <x> <y>\n")
		os.Exit(1)
	}
	c.x = flag.Arg(0)
	c.y = flag.Arg(1)

	if err := run(c); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(c cfg) error {
	x, err := os.ReadFile(c.x)
	if err != nil {
		return fmt.Errorf("reading first file: %v", err)
	}
	y, err := os.ReadFile(c.y)
	if err != nil {
		return fmt.Errorf("reading second file: %v", err)
	}

	opts := []editscript.Option{editscript.Timeout(c.timeout)}
	if c.precise {
		opts = append(opts, editscript.Precise())
	}

	ins := color.New(color.FgGreen)
	del := color.New(color.FgRed, color.CrossedOut)
	for _, e := range editscript.Edits(x, y, opts...) {
		switch e.Op {
		case editscript.Equal:
			fmt.Printf("%s", e.Text)
		case editscript.Delete:
			del.Printf("%s", e.Text)
		case editscript.Insert:
			ins.Printf("%s", e.Text)
		default:
			panic("never reached")
		}
	}
	return nil
}
