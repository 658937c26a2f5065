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

package editscript_test

import (
	"fmt"
	"strings"

	"zev.io/editscript"
)

// Diff two line slices and render the script the way diff tools do.
func ExampleEngine_Diff() {
	old := []string{"a", "b", "c", "d", "e"}
	new := []string{"a", "X", "c", "d", "Y", "e"}

	ops, err := editscript.New().Diff(old, new, false)
	if err != nil {
		panic(err)
	}
	for _, op := range ops {
		switch op.Op {
		case editscript.Equal:
			fmt.Printf(" %s\n", op.Text)
		case editscript.Remove:
			fmt.Printf("-%s\n", op.Text)
		case editscript.Add:
			fmt.Printf("+%s\n", op.Text)
		}
	}
	// Output:
	//  a
	// -b
	// +X
	//  c
	//  d
	// +Y
	//  e
}

// Register a custom strategy that replaces the whole window, keeping only
// the trimmed prefix and suffix.
func ExampleEngine_Register() {
	e := editscript.New()
	e.Register("replaceAll", func(h *editscript.Handle, x, y []int, sx, sy editscript.Span, cfg *editscript.Config, debug bool) ([]editscript.Edit, error) {
		return append(h.RemoveRun(x, sx), h.AddRun(y, sy)...), nil
	})

	old := strings.Split("shared one two shared", " ")
	new := strings.Split("shared uno dos shared", " ")
	ops, err := e.Diff(old, new, false, editscript.Strategy("replaceAll"))
	if err != nil {
		panic(err)
	}
	for _, op := range ops {
		fmt.Println(op.Op, op.Text)
	}
	// Output:
	// Equal shared
	// Remove one
	// Remove two
	// Add uno
	// Add dos
	// Equal shared
}
